package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"resort/errors"
	"resort/models"
	"resort/services/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentConfig cấu hình cho luồng thanh toán
type PaymentConfig struct {
	KeySecret     string // Bí mật ký xác thực callback đồng bộ
	WebhookSecret string // Bí mật ký webhook; rỗng = môi trường dev, bỏ qua xác thực
	Currency      string
}

// ConfirmationHook chạy trong cùng transaction ngay sau khi reservation
// được xác nhận, để thêm side effect mới (hoa hồng...) không phải sửa
// luồng chuyển trạng thái
type ConfirmationHook func(tx *gorm.DB, r *models.Reservation) error

// PaymentService sở hữu phép chuyển trạng thái thanh toán và đối soát
// sự kiện từ hai đường vào: callback đồng bộ và webhook bất đồng bộ
type PaymentService struct {
	db           *gorm.DB
	gateway      GatewayClient
	cfg          PaymentConfig
	logger       logger.Logger
	confirmHooks []ConfirmationHook
}

func NewPaymentService(db *gorm.DB, gateway GatewayClient, cfg PaymentConfig, lg logger.Logger) *PaymentService {
	if cfg.Currency == "" {
		cfg.Currency = "VND"
	}
	return &PaymentService{db: db, gateway: gateway, cfg: cfg, logger: lg}
}

// OnConfirmation đăng ký hook chạy sau khi đơn được xác nhận
func (s *PaymentService) OnConfirmation(hook ConfirmationHook) {
	s.confirmHooks = append(s.confirmHooks, hook)
}

// SignPayload ký payload bằng HMAC-SHA256, trả về chuỗi hex
func SignPayload(secret, payload string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

// verifySignature so sánh chữ ký theo thời gian hằng định
func verifySignature(secret, payload, signature string) bool {
	expected := SignPayload(secret, payload)
	return hmac.Equal([]byte(expected), []byte(signature))
}

// InitiatePayment tạo đơn thu hộ phía gateway cho một reservation đang chờ
// thanh toán. Tiền đổi sang đơn vị nhỏ nhất tại biên gateway.
func (s *PaymentService) InitiatePayment(ctx context.Context, reservationID uint) (*models.Payment, error) {
	var reservation models.Reservation
	if err := s.db.WithContext(ctx).First(&reservation, reservationID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewAppError(errors.ErrCodeNotFound, "Không tìm thấy reservation", err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn reservation", err)
	}
	if reservation.Status != models.ReservationStatusPendingPayment {
		return nil, errors.NewAppError(errors.ErrCodeInvalidTransition, "Reservation không ở trạng thái chờ thanh toán", nil)
	}
	if reservation.UnitID == 0 {
		return nil, errors.NewAppError(errors.ErrCodeValidation, "Reservation chưa được gán phòng", nil)
	}

	receipt := fmt.Sprintf("resv-%d-%s", reservation.ID, uuid.NewString()[:8])
	order, err := s.gateway.CreateOrder(ctx, ToMinorUnits(reservation.TotalPrice), s.cfg.Currency, receipt,
		map[string]string{"reservationId": fmt.Sprintf("%d", reservation.ID)})
	if err != nil {
		return nil, err
	}

	payment := models.Payment{
		ReservationID:  &reservation.ID,
		Amount:         reservation.TotalPrice,
		Currency:       s.cfg.Currency,
		Status:         models.PaymentStatusPending,
		GatewayOrderID: order.ID,
		Receipt:        receipt,
	}
	if err := s.db.WithContext(ctx).Create(&payment).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi tạo payment", err)
	}

	s.logger.Info("Khởi tạo payment %d cho reservation %d, gateway order %s", payment.ID, reservation.ID, order.ID)
	return &payment, nil
}

// InitiateTicketPayment tạo đơn thu hộ cho vé dịch vụ trong ngày
func (s *PaymentService) InitiateTicketPayment(ctx context.Context, ticketID uint) (*models.Payment, error) {
	var ticket models.Ticket
	if err := s.db.WithContext(ctx).First(&ticket, ticketID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewAppError(errors.ErrCodeNotFound, "Không tìm thấy vé", err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn vé", err)
	}
	if ticket.Status != models.TicketStatusPending {
		return nil, errors.NewAppError(errors.ErrCodeInvalidTransition, "Vé không ở trạng thái chờ thanh toán", nil)
	}

	receipt := fmt.Sprintf("tick-%d-%s", ticket.ID, uuid.NewString()[:8])
	order, err := s.gateway.CreateOrder(ctx, ToMinorUnits(ticket.TotalPrice), s.cfg.Currency, receipt,
		map[string]string{"ticketId": fmt.Sprintf("%d", ticket.ID)})
	if err != nil {
		return nil, err
	}

	payment := models.Payment{
		TicketID:       &ticket.ID,
		Amount:         ticket.TotalPrice,
		Currency:       s.cfg.Currency,
		Status:         models.PaymentStatusPending,
		GatewayOrderID: order.ID,
		Receipt:        receipt,
	}
	if err := s.db.WithContext(ctx).Create(&payment).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi tạo payment", err)
	}
	return &payment, nil
}

// VerifyPayment là đường vào đồng bộ: client nộp order id, payment id và
// chữ ký HMAC(secret, orderId + "|" + paymentId). Sai chữ ký thì payment
// chuyển FAILED chứ không chỉ trả lỗi.
func (s *PaymentService) VerifyPayment(ctx context.Context, orderID, gatewayPaymentID, signature string) (*models.Payment, error) {
	payload := orderID + "|" + gatewayPaymentID
	if !verifySignature(s.cfg.KeySecret, payload, signature) {
		s.failPayment(ctx, orderID, "chữ ký xác thực không khớp")
		return nil, errors.NewAppError(errors.ErrCodeInvalidSignature, "Chữ ký xác thực không hợp lệ", nil)
	}
	return s.capture(ctx, orderID, gatewayPaymentID, "gateway")
}

// HandleWebhook là đường vào bất đồng bộ: xác thực chữ ký HMAC trên raw
// body (bỏ qua nếu chưa cấu hình webhook secret) rồi phân loại sự kiện.
// Loại sự kiện không nhận diện được chỉ ghi log, không trả lỗi.
func (s *PaymentService) HandleWebhook(ctx context.Context, rawBody []byte, signature string) error {
	if s.cfg.WebhookSecret != "" {
		if !verifySignature(s.cfg.WebhookSecret, string(rawBody), signature) {
			return errors.NewAppError(errors.ErrCodeInvalidSignature, "Chữ ký webhook không hợp lệ", nil)
		}
	}

	event, err := DecodeGatewayEvent(rawBody)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Không thể parse body webhook", err)
	}

	switch e := event.(type) {
	case PaymentCapturedEvent:
		_, err := s.capture(ctx, e.OrderID, e.PaymentID, e.Method)
		return err
	case PaymentFailedEvent:
		s.failPayment(ctx, e.OrderID, e.Reason)
		return nil
	case UnknownGatewayEvent:
		s.logger.Warn("Bỏ qua sự kiện webhook không nhận diện được: %q", e.Event)
		return nil
	}
	return nil
}

// capture áp dụng PENDING -> PAID đúng một lần. Cả ba hiệu ứng: đánh dấu
// payment, xác nhận reservation (hoặc vé) và ghi sổ doanh thu nằm trong
// một transaction; hook hoa hồng cũng chạy trong đó nên chỉ chạy đúng lần
// chuyển trạng thái thật sự.
func (s *PaymentService) capture(ctx context.Context, orderID, gatewayPaymentID, method string) (*models.Payment, error) {
	var payment models.Payment
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).Where("gateway_order_id = ?", orderID).First(&payment).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.NewAppError(errors.ErrCodePaymentNotFound, "Không tìm thấy payment theo gateway order", err)
			}
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn payment", err)
		}

		// Cả hai đường vào có thể cùng bắn cho một payment:
		// đã PAID thì dừng sớm, không lặp lại side effect nào
		if payment.Status == models.PaymentStatusPaid {
			return nil
		}
		if payment.IsTerminal() {
			return errors.NewAppError(errors.ErrCodeInvalidTransition, "Payment đã ở trạng thái kết thúc", nil)
		}

		now := time.Now()
		payment.Status = models.PaymentStatusPaid
		payment.GatewayPaymentID = gatewayPaymentID
		payment.Method = &method
		payment.PaidAt = &now
		if err := tx.Save(&payment).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi cập nhật payment", err)
		}

		income := models.IncomeRecord{
			PaymentID:     payment.ID,
			ReservationID: payment.ReservationID,
			TicketID:      payment.TicketID,
			Amount:        payment.Amount,
			Currency:      payment.Currency,
			Description:   "Thu tiền qua cổng thanh toán",
			RecordedAt:    now,
		}
		if err := tx.Create(&income).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi ghi sổ doanh thu", err)
		}

		if payment.ReservationID != nil {
			var reservation models.Reservation
			if err := lockForUpdate(tx).First(&reservation, *payment.ReservationID).Error; err != nil {
				return errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn reservation", err)
			}
			state := models.GetReservationState(reservation.Status)
			if err := state.Confirm(&reservation); err != nil {
				return errors.NewAppError(errors.ErrCodeInvalidTransition, err.Error(), err)
			}
			if err := tx.Save(&reservation).Error; err != nil {
				return errors.NewAppError(errors.ErrCodeDBError, "Lỗi cập nhật reservation", err)
			}

			for _, hook := range s.confirmHooks {
				if err := hook(tx, &reservation); err != nil {
					return err
				}
			}
		} else if payment.TicketID != nil {
			if err := tx.Model(&models.Ticket{}).Where("id = ?", *payment.TicketID).
				UpdateColumn("status", models.TicketStatusPaid).Error; err != nil {
				return errors.NewAppError(errors.ErrCodeDBError, "Lỗi cập nhật vé", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Payment %d (order %s) đã thu tiền", payment.ID, orderID)
	return &payment, nil
}

// failPayment chuyển payment sang FAILED nếu còn PENDING.
// Payment đã PAID hoặc đã kết thúc thì giữ nguyên, chỉ ghi log.
func (s *PaymentService) failPayment(ctx context.Context, orderID, reason string) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var payment models.Payment
		if err := lockForUpdate(tx).Where("gateway_order_id = ?", orderID).First(&payment).Error; err != nil {
			return err
		}
		if payment.Status != models.PaymentStatusPending {
			s.logger.Warn("Bỏ qua báo thất bại cho payment %d đang ở trạng thái %d", payment.ID, payment.Status)
			return nil
		}
		return tx.Model(&payment).UpdateColumn("status", models.PaymentStatusFailed).Error
	})
	if err != nil {
		s.logger.Error("Không đánh dấu được payment thất bại (order %s): %v", orderID, err)
		return
	}
	s.logger.Info("Payment theo order %s chuyển FAILED: %s", orderID, reason)
}

// Refund hoàn tiền qua gateway rồi mới ghi nhận vào DB. Gateway lỗi thì
// payment giữ nguyên PAID, không bao giờ ghi nhận hoàn tiền khống.
func (s *PaymentService) Refund(ctx context.Context, paymentID uint, amount *float64, reason string) (*models.Payment, error) {
	var payment models.Payment
	if err := s.db.WithContext(ctx).First(&payment, paymentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewAppError(errors.ErrCodePaymentNotFound, "Không tìm thấy payment", err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn payment", err)
	}

	if payment.Status != models.PaymentStatusPaid && payment.Status != models.PaymentStatusPartiallyRefunded {
		return nil, errors.NewAppError(errors.ErrCodeInvalidTransition, "Chỉ hoàn tiền được cho payment đã thanh toán", nil)
	}
	if payment.GatewayPaymentID == "" {
		return nil, errors.NewAppError(errors.ErrCodeValidation, "Payment chưa có giao dịch gateway để hoàn", nil)
	}

	// Hoàn nhiều lần cộng dồn, tổng không được vượt số tiền đã thu
	remaining := payment.Amount - payment.RefundAmount
	refundAmount := remaining
	if amount != nil {
		refundAmount = *amount
	}
	if refundAmount <= 0 || refundAmount > remaining {
		return nil, errors.NewAppError(errors.ErrCodeInvalidAmount, "Số tiền hoàn không hợp lệ", nil)
	}

	refund, err := s.gateway.Refund(ctx, payment.GatewayPaymentID, ToMinorUnits(refundAmount),
		map[string]string{"reason": reason})
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).First(&payment, paymentID).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn payment", err)
		}

		// Giữ id và lý do của lần hoàn gần nhất, số tiền thì cộng dồn
		payment.RefundID = refund.ID
		payment.RefundAmount += refundAmount
		payment.RefundReason = reason
		if payment.RefundAmount >= payment.Amount {
			payment.Status = models.PaymentStatusRefunded
		} else {
			payment.Status = models.PaymentStatusPartiallyRefunded
		}
		if err := tx.Save(&payment).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi cập nhật payment", err)
		}

		// Hoàn đủ tiền thì reservation cũng chuyển REFUNDED
		if payment.Status == models.PaymentStatusRefunded && payment.ReservationID != nil {
			var reservation models.Reservation
			if err := lockForUpdate(tx).First(&reservation, *payment.ReservationID).Error; err != nil {
				return errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn reservation", err)
			}
			state := models.GetReservationState(reservation.Status)
			if err := state.Refund(&reservation); err != nil {
				return errors.NewAppError(errors.ErrCodeInvalidTransition, err.Error(), err)
			}
			if err := tx.Save(&reservation).Error; err != nil {
				return errors.NewAppError(errors.ErrCodeDBError, "Lỗi cập nhật reservation", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Hoàn %v cho payment %d, gateway refund %s (%s)", refundAmount, payment.ID, refund.ID, refund.Status)
	return &payment, nil
}
