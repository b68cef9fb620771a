package services

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"resort/errors"
	"resort/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeGateway thay cho cổng thanh toán thật trong test
type fakeGateway struct {
	orderCount  int
	refundCount int
	failNext    bool
}

func (g *fakeGateway) CreateOrder(ctx context.Context, amount int64, currency, receipt string, notes map[string]string) (*GatewayOrder, error) {
	if g.failNext {
		return nil, errors.NewAppError(errors.ErrCodeGatewayError, "gateway hỏng", nil)
	}
	g.orderCount++
	return &GatewayOrder{
		ID:       fmt.Sprintf("order_%d", g.orderCount),
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
		Status:   "created",
	}, nil
}

func (g *fakeGateway) Refund(ctx context.Context, gatewayPaymentID string, amount int64, notes map[string]string) (*GatewayRefund, error) {
	if g.failNext {
		return nil, errors.NewAppError(errors.ErrCodeGatewayError, "gateway hỏng", nil)
	}
	g.refundCount++
	return &GatewayRefund{
		ID:     fmt.Sprintf("rfnd_%d", g.refundCount),
		Status: "processed",
	}, nil
}

const (
	testKeySecret     = "key-secret"
	testWebhookSecret = "webhook-secret"
)

func newPaymentFixture(t *testing.T) (*PaymentService, *fakeGateway, *gorm.DB, *models.Reservation) {
	t.Helper()

	db := newTestDB(t)
	unitType := seedUnitType(t, db)
	unit := seedUnit(t, db, unitType.ID)

	reservation := models.Reservation{
		UnitTypeID:   unitType.ID,
		UnitID:       unit.UnitID,
		CheckInDate:  date(2026, time.September, 1),
		CheckOutDate: date(2026, time.September, 5),
		Adults:       2,
		Status:       models.ReservationStatusPendingPayment,
		TotalPrice:   19824,
	}
	require.NoError(t, db.Create(&reservation).Error)

	gateway := &fakeGateway{}
	svc := NewPaymentService(db, gateway, PaymentConfig{
		KeySecret:     testKeySecret,
		WebhookSecret: testWebhookSecret,
		Currency:      "VND",
	}, testLogger())

	return svc, gateway, db, &reservation
}

func capturedWebhookBody(orderID, paymentID string) []byte {
	body, _ := json.Marshal(map[string]interface{}{
		"event": "payment.captured",
		"payload": map[string]interface{}{
			"payment": map[string]interface{}{
				"id":       paymentID,
				"order_id": orderID,
				"method":   "card",
			},
		},
	})
	return body
}

func TestInitiatePayment(t *testing.T) {
	svc, gateway, db, reservation := newPaymentFixture(t)

	payment, err := svc.InitiatePayment(context.Background(), reservation.ID)
	require.NoError(t, err)

	assert.Equal(t, models.PaymentStatusPending, payment.Status)
	assert.Equal(t, "order_1", payment.GatewayOrderID)
	assert.Equal(t, 19824.0, payment.Amount)
	assert.Equal(t, 1, gateway.orderCount)

	// Reservation vẫn chờ thanh toán cho tới khi gateway báo thu tiền
	var fresh models.Reservation
	require.NoError(t, db.First(&fresh, reservation.ID).Error)
	assert.Equal(t, models.ReservationStatusPendingPayment, fresh.Status)
}

func TestInitiatePaymentRequiresPendingReservation(t *testing.T) {
	svc, _, db, reservation := newPaymentFixture(t)
	require.NoError(t, db.Model(reservation).Update("status", models.ReservationStatusCancelled).Error)

	_, err := svc.InitiatePayment(context.Background(), reservation.ID)
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidTransition))
}

func TestVerifyPaymentHappyPath(t *testing.T) {
	svc, _, db, reservation := newPaymentFixture(t)
	ctx := context.Background()

	payment, err := svc.InitiatePayment(ctx, reservation.ID)
	require.NoError(t, err)

	signature := SignPayload(testKeySecret, payment.GatewayOrderID+"|pay_1")
	verified, err := svc.VerifyPayment(ctx, payment.GatewayOrderID, "pay_1", signature)
	require.NoError(t, err)

	assert.Equal(t, models.PaymentStatusPaid, verified.Status)
	assert.Equal(t, "pay_1", verified.GatewayPaymentID)
	require.NotNil(t, verified.PaidAt)

	var fresh models.Reservation
	require.NoError(t, db.First(&fresh, reservation.ID).Error)
	assert.Equal(t, models.ReservationStatusConfirmed, fresh.Status)

	var incomeCount int64
	require.NoError(t, db.Model(&models.IncomeRecord{}).Count(&incomeCount).Error)
	assert.Equal(t, int64(1), incomeCount)
}

func TestVerifyPaymentTamperedSignature(t *testing.T) {
	svc, _, db, reservation := newPaymentFixture(t)
	ctx := context.Background()

	payment, err := svc.InitiatePayment(ctx, reservation.ID)
	require.NoError(t, err)

	// Chữ ký ký trên payment id khác với payment id nộp lên
	signature := SignPayload(testKeySecret, payment.GatewayOrderID+"|pay_khac")
	_, err = svc.VerifyPayment(ctx, payment.GatewayOrderID, "pay_1", signature)
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidSignature))

	// Payment chuyển FAILED, reservation không được xác nhận, không ghi sổ
	var freshPayment models.Payment
	require.NoError(t, db.First(&freshPayment, payment.ID).Error)
	assert.Equal(t, models.PaymentStatusFailed, freshPayment.Status)

	var fresh models.Reservation
	require.NoError(t, db.First(&fresh, reservation.ID).Error)
	assert.Equal(t, models.ReservationStatusPendingPayment, fresh.Status)

	var incomeCount int64
	require.NoError(t, db.Model(&models.IncomeRecord{}).Count(&incomeCount).Error)
	assert.Equal(t, int64(0), incomeCount)
}

func TestWebhookCaptureIdempotent(t *testing.T) {
	svc, _, db, reservation := newPaymentFixture(t)
	ctx := context.Background()

	payment, err := svc.InitiatePayment(ctx, reservation.ID)
	require.NoError(t, err)

	body := capturedWebhookBody(payment.GatewayOrderID, "pay_1")
	signature := SignPayload(testWebhookSecret, string(body))

	// Gateway retry cùng một sự kiện hai lần
	require.NoError(t, svc.HandleWebhook(ctx, body, signature))
	require.NoError(t, svc.HandleWebhook(ctx, body, signature))

	var freshPayment models.Payment
	require.NoError(t, db.First(&freshPayment, payment.ID).Error)
	assert.Equal(t, models.PaymentStatusPaid, freshPayment.Status)

	var fresh models.Reservation
	require.NoError(t, db.First(&fresh, reservation.ID).Error)
	assert.Equal(t, models.ReservationStatusConfirmed, fresh.Status)

	// Đúng một dòng sổ doanh thu dù nhận sự kiện hai lần
	var incomeCount int64
	require.NoError(t, db.Model(&models.IncomeRecord{}).Count(&incomeCount).Error)
	assert.Equal(t, int64(1), incomeCount)
}

func TestWebhookBadSignatureRejected(t *testing.T) {
	svc, _, db, reservation := newPaymentFixture(t)
	ctx := context.Background()

	payment, err := svc.InitiatePayment(ctx, reservation.ID)
	require.NoError(t, err)

	body := capturedWebhookBody(payment.GatewayOrderID, "pay_1")
	err = svc.HandleWebhook(ctx, body, "chu-ky-gia")
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidSignature))

	// Không có hiệu ứng nào được áp dụng
	var freshPayment models.Payment
	require.NoError(t, db.First(&freshPayment, payment.ID).Error)
	assert.Equal(t, models.PaymentStatusPending, freshPayment.Status)
}

func TestWebhookSkipsSignatureInDevMode(t *testing.T) {
	svc, _, _, reservation := newPaymentFixture(t)
	svc.cfg.WebhookSecret = ""
	ctx := context.Background()

	payment, err := svc.InitiatePayment(ctx, reservation.ID)
	require.NoError(t, err)

	body := capturedWebhookBody(payment.GatewayOrderID, "pay_1")
	assert.NoError(t, svc.HandleWebhook(ctx, body, ""))
}

func TestWebhookPaymentFailed(t *testing.T) {
	svc, _, db, reservation := newPaymentFixture(t)
	ctx := context.Background()

	payment, err := svc.InitiatePayment(ctx, reservation.ID)
	require.NoError(t, err)

	body, _ := json.Marshal(map[string]interface{}{
		"event": "payment.failed",
		"payload": map[string]interface{}{
			"payment": map[string]interface{}{
				"id":           "pay_1",
				"order_id":     payment.GatewayOrderID,
				"error_reason": "không đủ số dư",
			},
		},
	})
	signature := SignPayload(testWebhookSecret, string(body))
	require.NoError(t, svc.HandleWebhook(ctx, body, signature))

	var freshPayment models.Payment
	require.NoError(t, db.First(&freshPayment, payment.ID).Error)
	assert.Equal(t, models.PaymentStatusFailed, freshPayment.Status)

	// Khách có thể thử lại, reservation vẫn giữ chỗ chờ thanh toán
	var fresh models.Reservation
	require.NoError(t, db.First(&fresh, reservation.ID).Error)
	assert.Equal(t, models.ReservationStatusPendingPayment, fresh.Status)
}

func TestWebhookFailureAfterPaidIsIgnored(t *testing.T) {
	svc, _, db, reservation := newPaymentFixture(t)
	ctx := context.Background()

	payment, err := svc.InitiatePayment(ctx, reservation.ID)
	require.NoError(t, err)

	captured := capturedWebhookBody(payment.GatewayOrderID, "pay_1")
	require.NoError(t, svc.HandleWebhook(ctx, captured, SignPayload(testWebhookSecret, string(captured))))

	failed, _ := json.Marshal(map[string]interface{}{
		"event": "payment.failed",
		"payload": map[string]interface{}{
			"payment": map[string]interface{}{
				"id":       "pay_1",
				"order_id": payment.GatewayOrderID,
			},
		},
	})
	require.NoError(t, svc.HandleWebhook(ctx, failed, SignPayload(testWebhookSecret, string(failed))))

	// Sự kiện failed đến muộn không lật được trạng thái PAID
	var freshPayment models.Payment
	require.NoError(t, db.First(&freshPayment, payment.ID).Error)
	assert.Equal(t, models.PaymentStatusPaid, freshPayment.Status)
}

func TestWebhookUnknownEventIgnored(t *testing.T) {
	svc, _, _, _ := newPaymentFixture(t)

	body := []byte(`{"event":"payment.dispute.created","payload":{}}`)
	signature := SignPayload(testWebhookSecret, string(body))
	assert.NoError(t, svc.HandleWebhook(context.Background(), body, signature))
}

func TestCaptureRunsCommissionHookOnce(t *testing.T) {
	svc, _, db, reservation := newPaymentFixture(t)
	ctx := context.Background()

	partner := models.Partner{Name: "Đại lý A", CommissionRate: 10, Status: 1}
	require.NoError(t, db.Create(&partner).Error)
	require.NoError(t, db.Model(reservation).Update("partner_id", partner.ID).Error)

	commission := NewCommissionService(db, 100, testLogger())
	svc.OnConfirmation(commission.ConfirmationHook())

	payment, err := svc.InitiatePayment(ctx, reservation.ID)
	require.NoError(t, err)

	body := capturedWebhookBody(payment.GatewayOrderID, "pay_1")
	signature := SignPayload(testWebhookSecret, string(body))
	require.NoError(t, svc.HandleWebhook(ctx, body, signature))
	require.NoError(t, svc.HandleWebhook(ctx, body, signature))

	var freshPartner models.Partner
	require.NoError(t, db.First(&freshPartner, partner.ID).Error)
	assert.InDelta(t, 1982.4, freshPartner.TotalEarned, 1e-9)
	assert.Equal(t, int64(198), freshPartner.Points)

	var ledgerCount int64
	require.NoError(t, db.Model(&models.CommissionLedgerEntry{}).Count(&ledgerCount).Error)
	assert.Equal(t, int64(1), ledgerCount)

	var fresh models.Reservation
	require.NoError(t, db.First(&fresh, reservation.ID).Error)
	assert.InDelta(t, 1982.4, fresh.CommissionAmount, 1e-9)
}

func TestRefundFull(t *testing.T) {
	svc, gateway, db, reservation := newPaymentFixture(t)
	ctx := context.Background()

	payment, err := svc.InitiatePayment(ctx, reservation.ID)
	require.NoError(t, err)

	signature := SignPayload(testKeySecret, payment.GatewayOrderID+"|pay_1")
	_, err = svc.VerifyPayment(ctx, payment.GatewayOrderID, "pay_1", signature)
	require.NoError(t, err)

	refunded, err := svc.Refund(ctx, payment.ID, nil, "khách đổi lịch")
	require.NoError(t, err)

	assert.Equal(t, models.PaymentStatusRefunded, refunded.Status)
	assert.Equal(t, 19824.0, refunded.RefundAmount)
	assert.Equal(t, 1, gateway.refundCount)

	// Hoàn đủ tiền thì reservation cũng chuyển REFUNDED
	var fresh models.Reservation
	require.NoError(t, db.First(&fresh, reservation.ID).Error)
	assert.Equal(t, models.ReservationStatusRefunded, fresh.Status)
}

func TestRefundPartial(t *testing.T) {
	svc, _, db, reservation := newPaymentFixture(t)
	ctx := context.Background()

	payment, err := svc.InitiatePayment(ctx, reservation.ID)
	require.NoError(t, err)

	signature := SignPayload(testKeySecret, payment.GatewayOrderID+"|pay_1")
	_, err = svc.VerifyPayment(ctx, payment.GatewayOrderID, "pay_1", signature)
	require.NoError(t, err)

	amount := 5000.0
	refunded, err := svc.Refund(ctx, payment.ID, &amount, "đền bù sự cố")
	require.NoError(t, err)

	assert.Equal(t, models.PaymentStatusPartiallyRefunded, refunded.Status)
	assert.Equal(t, 5000.0, refunded.RefundAmount)

	// Hoàn một phần thì reservation vẫn giữ nguyên
	var fresh models.Reservation
	require.NoError(t, db.First(&fresh, reservation.ID).Error)
	assert.Equal(t, models.ReservationStatusConfirmed, fresh.Status)
}

func TestRefundGatewayFailureKeepsPaymentPaid(t *testing.T) {
	svc, gateway, db, reservation := newPaymentFixture(t)
	ctx := context.Background()

	payment, err := svc.InitiatePayment(ctx, reservation.ID)
	require.NoError(t, err)

	signature := SignPayload(testKeySecret, payment.GatewayOrderID+"|pay_1")
	_, err = svc.VerifyPayment(ctx, payment.GatewayOrderID, "pay_1", signature)
	require.NoError(t, err)

	gateway.failNext = true
	_, err = svc.Refund(ctx, payment.ID, nil, "thử hoàn")
	assert.True(t, errors.IsCode(err, errors.ErrCodeGatewayError))

	var freshPayment models.Payment
	require.NoError(t, db.First(&freshPayment, payment.ID).Error)
	assert.Equal(t, models.PaymentStatusPaid, freshPayment.Status)
}

func TestRefundRequiresPaidPayment(t *testing.T) {
	svc, _, _, reservation := newPaymentFixture(t)
	ctx := context.Background()

	payment, err := svc.InitiatePayment(ctx, reservation.ID)
	require.NoError(t, err)

	_, err = svc.Refund(ctx, payment.ID, nil, "chưa trả tiền")
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidTransition))
}

func TestRefundInvalidAmount(t *testing.T) {
	svc, _, _, reservation := newPaymentFixture(t)
	ctx := context.Background()

	payment, err := svc.InitiatePayment(ctx, reservation.ID)
	require.NoError(t, err)

	signature := SignPayload(testKeySecret, payment.GatewayOrderID+"|pay_1")
	_, err = svc.VerifyPayment(ctx, payment.GatewayOrderID, "pay_1", signature)
	require.NoError(t, err)

	tooMuch := 99999.0
	_, err = svc.Refund(ctx, payment.ID, &tooMuch, "quá tay")
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidAmount))
}

func TestRefundRepeatedPartialsCappedAtOriginal(t *testing.T) {
	svc, gateway, db, reservation := newPaymentFixture(t)
	ctx := context.Background()

	payment, err := svc.InitiatePayment(ctx, reservation.ID)
	require.NoError(t, err)

	signature := SignPayload(testKeySecret, payment.GatewayOrderID+"|pay_1")
	_, err = svc.VerifyPayment(ctx, payment.GatewayOrderID, "pay_1", signature)
	require.NoError(t, err)

	amount := 12000.0
	refunded, err := svc.Refund(ctx, payment.ID, &amount, "đền bù lần 1")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPartiallyRefunded, refunded.Status)

	// Chỉ còn 7824 chưa hoàn, lần hai 12000 nữa phải bị chặn
	_, err = svc.Refund(ctx, payment.ID, &amount, "đền bù lần 2")
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidAmount))
	assert.Equal(t, 1, gateway.refundCount)

	// Không truyền số tiền thì hoàn nốt phần còn lại, payment đóng hẳn
	refunded, err = svc.Refund(ctx, payment.ID, nil, "hoàn nốt")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusRefunded, refunded.Status)
	assert.InDelta(t, 19824.0, refunded.RefundAmount, 1e-9)
	assert.Equal(t, 2, gateway.refundCount)

	var fresh models.Reservation
	require.NoError(t, db.First(&fresh, reservation.ID).Error)
	assert.Equal(t, models.ReservationStatusRefunded, fresh.Status)
}

func TestTicketPaymentCapture(t *testing.T) {
	svc, _, db, _ := newPaymentFixture(t)
	ctx := context.Background()

	ticket := models.Ticket{
		ServiceName: "Hồ bơi",
		VisitDate:   date(2026, time.September, 3),
		Quantity:    2,
		TotalPrice:  400,
		Status:      models.TicketStatusPending,
		GuestName:   "Anh Tư",
		GuestPhone:  "0900000000",
	}
	require.NoError(t, db.Create(&ticket).Error)

	payment, err := svc.InitiateTicketPayment(ctx, ticket.ID)
	require.NoError(t, err)

	body := capturedWebhookBody(payment.GatewayOrderID, "pay_t1")
	signature := SignPayload(testWebhookSecret, string(body))
	require.NoError(t, svc.HandleWebhook(ctx, body, signature))

	var freshTicket models.Ticket
	require.NoError(t, db.First(&freshTicket, ticket.ID).Error)
	assert.Equal(t, models.TicketStatusPaid, freshTicket.Status)

	var incomeCount int64
	require.NoError(t, db.Model(&models.IncomeRecord{}).Count(&incomeCount).Error)
	assert.Equal(t, int64(1), incomeCount)
}

func TestSignPayloadDeterministic(t *testing.T) {
	a := SignPayload("secret", "order|payment")
	b := SignPayload("secret", "order|payment")
	c := SignPayload("secret-khac", "order|payment")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64) // hex của SHA-256
}
