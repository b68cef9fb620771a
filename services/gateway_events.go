package services

import "encoding/json"

// GatewayEvent là union đóng các loại sự kiện webhook đã biết,
// kèm biến thể UnknownGatewayEvent cho loại chưa nhận diện được
type GatewayEvent interface {
	isGatewayEvent()
}

// PaymentCapturedEvent báo tiền đã được thu
type PaymentCapturedEvent struct {
	OrderID   string
	PaymentID string
	Method    string
}

// PaymentFailedEvent báo thanh toán thất bại
type PaymentFailedEvent struct {
	OrderID   string
	PaymentID string
	Reason    string
}

// UnknownGatewayEvent là sự kiện không nhận diện được, ghi log rồi bỏ qua
type UnknownGatewayEvent struct {
	Event string
}

func (PaymentCapturedEvent) isGatewayEvent() {}
func (PaymentFailedEvent) isGatewayEvent()   {}
func (UnknownGatewayEvent) isGatewayEvent()  {}

type webhookEnvelope struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			ID          string `json:"id"`
			OrderID     string `json:"order_id"`
			Method      string `json:"method"`
			ErrorReason string `json:"error_reason"`
		} `json:"payment"`
	} `json:"payload"`
}

// DecodeGatewayEvent giải mã body webhook thành GatewayEvent.
// Chỉ gọi sau khi đã xác thực chữ ký trên raw body.
func DecodeGatewayEvent(raw []byte) (GatewayEvent, error) {
	var env webhookEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, err
	}

	switch env.Event {
	case "payment.captured":
		return PaymentCapturedEvent{
			OrderID:   env.Payload.Payment.OrderID,
			PaymentID: env.Payload.Payment.ID,
			Method:    env.Payload.Payment.Method,
		}, nil
	case "payment.failed":
		return PaymentFailedEvent{
			OrderID:   env.Payload.Payment.OrderID,
			PaymentID: env.Payload.Payment.ID,
			Reason:    env.Payload.Payment.ErrorReason,
		}, nil
	default:
		return UnknownGatewayEvent{Event: env.Event}, nil
	}
}
