package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"resort/errors"
)

// GatewayOrder là đơn thu hộ đã tạo phía cổng thanh toán
type GatewayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"` // Đơn vị tiền nhỏ nhất (xu)
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// GatewayRefund là kết quả hoàn tiền phía cổng thanh toán
type GatewayRefund struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// GatewayClient là hợp đồng với cổng thanh toán bên ngoài.
// Số tiền ở biên này luôn là đơn vị nhỏ nhất.
type GatewayClient interface {
	CreateOrder(ctx context.Context, amount int64, currency, receipt string, notes map[string]string) (*GatewayOrder, error)
	Refund(ctx context.Context, gatewayPaymentID string, amount int64, notes map[string]string) (*GatewayRefund, error)
}

// ToMinorUnits đổi tiền từ đơn vị chính sang đơn vị nhỏ nhất
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// FromMinorUnits đổi tiền từ đơn vị nhỏ nhất về đơn vị chính
func FromMinorUnits(amount int64) float64 {
	return float64(amount) / 100
}

// HTTPGatewayClient gọi API cổng thanh toán qua HTTP với basic auth
type HTTPGatewayClient struct {
	baseURL   string
	keyID     string
	keySecret string
	client    *http.Client
}

func NewHTTPGatewayClient(baseURL, keyID, keySecret string) *HTTPGatewayClient {
	return &HTTPGatewayClient{
		baseURL:   baseURL,
		keyID:     keyID,
		keySecret: keySecret,
		client:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (g *HTTPGatewayClient) CreateOrder(ctx context.Context, amount int64, currency, receipt string, notes map[string]string) (*GatewayOrder, error) {
	body := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
		"notes":    notes,
	}

	var order GatewayOrder
	if err := g.post(ctx, "/v1/orders", body, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (g *HTTPGatewayClient) Refund(ctx context.Context, gatewayPaymentID string, amount int64, notes map[string]string) (*GatewayRefund, error) {
	body := map[string]interface{}{
		"amount": amount,
		"notes":  notes,
	}

	var refund GatewayRefund
	path := fmt.Sprintf("/v1/payments/%s/refund", gatewayPaymentID)
	if err := g.post(ctx, path, body, &refund); err != nil {
		return nil, err
	}
	return &refund, nil
}

func (g *HTTPGatewayClient) post(ctx context.Context, path string, body interface{}, target interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeGatewayError, "Không thể tạo request cho cổng thanh toán", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return errors.NewAppError(errors.ErrCodeGatewayError, "Không thể tạo request cho cổng thanh toán", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(g.keyID, g.keySecret)

	resp, err := g.client.Do(req)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeGatewayError, "Gọi cổng thanh toán thất bại", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return errors.NewAppError(errors.ErrCodeGatewayError,
			fmt.Sprintf("Cổng thanh toán trả về mã %d", resp.StatusCode),
			fmt.Errorf("%s", string(raw)))
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return errors.NewAppError(errors.ErrCodeGatewayError, "Không thể parse phản hồi từ cổng thanh toán", err)
	}
	return nil
}
