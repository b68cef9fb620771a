package models

import "time"

// Ticket status constants
const (
	TicketStatusPending   = 0
	TicketStatusPaid      = 1
	TicketStatusCancelled = 2
)

// Ticket là vé dịch vụ trong ngày (hồ bơi, spa...), nhánh thanh toán
// thay thế cho reservation
type Ticket struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      *uint     `json:"userId"`
	ServiceName string    `json:"serviceName"`
	VisitDate   time.Time `json:"visitDate"`
	Quantity    int       `json:"quantity"`
	TotalPrice  float64   `json:"totalPrice"`
	Status      int       `json:"status"`
	GuestName   string    `json:"guestName,omitempty"`
	GuestPhone  string    `json:"guestPhone,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
