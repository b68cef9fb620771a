package constants

// Unit operational status (chỉ mang tính vận hành,
// không dùng để kiểm tra trùng lịch)
const (
	UnitStatusAvailable   = 0
	UnitStatusOccupied    = 1
	UnitStatusMaintenance = 2
	UnitStatusBlocked     = 3
)

// Reservation status
const (
	ReservationStatusPendingPayment = 0
	ReservationStatusConfirmed      = 1
	ReservationStatusCheckedIn      = 2
	ReservationStatusCheckedOut     = 3
	ReservationStatusCancelled      = 4
	ReservationStatusRefunded       = 5
)

// Payment status
const (
	PaymentStatusPending           = 0
	PaymentStatusPaid              = 1
	PaymentStatusFailed            = 2
	PaymentStatusRefunded          = 3
	PaymentStatusPartiallyRefunded = 4
)

// Ticket status
const (
	TicketStatusPending   = 0
	TicketStatusPaid      = 1
	TicketStatusCancelled = 2
)

// Ledger entry type
const (
	LedgerTypeCommission = 0
	LedgerTypePayout     = 1
)

// Trạng thái chung active/inactive
const (
	StatusInactive = 0
	StatusActive   = 1
)

// DateLayout là định dạng ngày dùng chung cho request và các mốc hiệu lực
const DateLayout = "02/01/2006"
