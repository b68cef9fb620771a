package models

import "time"

// Payment status constants
const (
	PaymentStatusPending           = 0
	PaymentStatusPaid              = 1
	PaymentStatusFailed            = 2
	PaymentStatusRefunded          = 3
	PaymentStatusPartiallyRefunded = 4
)

// Payment gắn với đúng một trong hai: ReservationID hoặc TicketID.
// Khi đã ở trạng thái kết thúc chỉ còn các trường refund được phép thay đổi.
type Payment struct {
	ID               uint    `json:"id" gorm:"primaryKey"`
	ReservationID    *uint   `json:"reservationId" gorm:"index"`
	TicketID         *uint   `json:"ticketId" gorm:"index"`
	Amount           float64 `json:"amount"`   // Đơn vị tiền chính (đồng), đổi sang đơn vị nhỏ tại biên gateway
	Currency         string  `json:"currency" gorm:"size:3"`
	Status           int     `json:"status"`
	GatewayOrderID   string  `json:"gatewayOrderId" gorm:"index;size:64"`
	GatewayPaymentID string  `json:"gatewayPaymentId" gorm:"size:64"`
	Receipt          string  `json:"receipt" gorm:"size:64"`
	Method           *string `json:"method,omitempty"`

	RefundID     string  `json:"refundId,omitempty" gorm:"size:64"`
	RefundAmount float64 `json:"refundAmount"`
	RefundReason string  `json:"refundReason,omitempty"`

	PaidAt    *time.Time `json:"paidAt,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

// IsTerminal báo trạng thái không còn chuyển tiếp được nữa.
// PAID chưa phải kết thúc vì còn có thể refund.
func (p *Payment) IsTerminal() bool {
	return p.Status == PaymentStatusFailed || p.Status == PaymentStatusRefunded
}
