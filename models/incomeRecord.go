package models

import "time"

// IncomeRecord là bản ghi doanh thu phát sinh khi thanh toán thành công,
// chỉ ghi thêm, phục vụ báo cáo tài chính (phần tổng hợp nằm ngoài hệ thống này)
type IncomeRecord struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	PaymentID     uint      `json:"paymentId" gorm:"index"`
	ReservationID *uint     `json:"reservationId"`
	TicketID      *uint     `json:"ticketId"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency" gorm:"size:3"`
	Description   string    `json:"description"`
	RecordedAt    time.Time `json:"recordedAt"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
