package dto

import "time"

// InitiatePaymentRequest chọn đúng một trong hai: reservationId hoặc ticketId
type InitiatePaymentRequest struct {
	ReservationID *uint `json:"reservationId"`
	TicketID      *uint `json:"ticketId"`
}

// VerifyPaymentRequest là callback đồng bộ từ client sau khi thanh toán
// xong phía gateway
type VerifyPaymentRequest struct {
	OrderID   string `json:"orderId" binding:"required"`
	PaymentID string `json:"paymentId" binding:"required"`
	Signature string `json:"signature" binding:"required"`
}

// RefundRequest hoàn tiền một payment, amount nil nghĩa là hoàn toàn bộ
type RefundRequest struct {
	PaymentID uint     `json:"paymentId" binding:"required"`
	Amount    *float64 `json:"amount"`
	Reason    string   `json:"reason"`
}

// PaymentResponse là payment trả về cho client, giấu các trường gateway nội bộ
type PaymentResponse struct {
	ID             uint       `json:"id"`
	ReservationID  *uint      `json:"reservationId,omitempty"`
	TicketID       *uint      `json:"ticketId,omitempty"`
	Amount         float64    `json:"amount"`
	Currency       string     `json:"currency"`
	Status         int        `json:"status"`
	GatewayOrderID string     `json:"gatewayOrderId"`
	Method         *string    `json:"method,omitempty"`
	RefundAmount   float64    `json:"refundAmount,omitempty"`
	PaidAt         *time.Time `json:"paidAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// PayoutRequest rút tiền hoa hồng cho đối tác
type PayoutRequest struct {
	PartnerID uint    `json:"partnerId" binding:"required"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	Note      string  `json:"note"`
}
