package models

import "fmt"

// AdjustmentKind phân loại kiểu điều chỉnh giá
type AdjustmentKind int

const (
	AdjustmentPercentage AdjustmentKind = 0
	AdjustmentFixed      AdjustmentKind = 1
)

// Adjustment là kiểu điều chỉnh giá đóng: phần trăm hoặc số tiền cố định.
// Dùng chung cho RateRule và Coupon.
type Adjustment struct {
	Kind  AdjustmentKind `json:"kind"`
	Value float64        `json:"value"`
}

// Amount tính số tiền điều chỉnh trên subtotal cho trước.
// Percentage trả về subtotal*value/100, Fixed trả về value.
func (a Adjustment) Amount(subtotal float64) float64 {
	switch a.Kind {
	case AdjustmentPercentage:
		return subtotal * a.Value / 100
	case AdjustmentFixed:
		return a.Value
	}
	return 0
}

// Validate chấp nhận giá trị âm: rule giảm giá mùa thấp điểm là hợp lệ,
// coupon có ràng buộc không âm riêng ở tầng validator
func (a Adjustment) Validate() error {
	switch a.Kind {
	case AdjustmentPercentage:
		if a.Value < -100 || a.Value > 100 {
			return fmt.Errorf("invalid percentage value: %v, must be between -100 and 100", a.Value)
		}
	case AdjustmentFixed:
		return nil
	default:
		return fmt.Errorf("invalid adjustment kind: %d", a.Kind)
	}
	return nil
}
