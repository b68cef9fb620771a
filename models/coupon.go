package models

import (
	"fmt"
	"time"
)

type Coupon struct {
	ID               uint           `json:"id" gorm:"primaryKey"`
	Code             string         `json:"code" gorm:"unique;size:30"`      // Mã giảm giá duy nhất
	Name             string         `json:"name"`                            // Tên chương trình giảm giá
	Kind             AdjustmentKind `json:"kind"`                            // 0: phần trăm, 1: cố định
	Value            float64        `json:"value"`                           // Mức giảm
	FromDate         string         `json:"fromDate"`                        // Ngày bắt đầu hiệu lực
	ToDate           string         `json:"toDate"`                          // Ngày kết thúc hiệu lực
	MaxUses          int            `json:"maxUses"`                         // Số lượt dùng tối đa
	UsedCount        int            `json:"usedCount" gorm:"default:0"`      // Số lượt đã dùng
	MinBookingAmount float64        `json:"minBookingAmount"`                // Giá trị đơn tối thiểu
	Status           int            `json:"status" gorm:"default:1"`         // 0: Inactive, 1: Active
	CreatedAt        time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Adjustment trả về kiểu giảm giá đóng của coupon
func (cp *Coupon) Adjustment() Adjustment {
	return Adjustment{Kind: cp.Kind, Value: cp.Value}
}

func (cp *Coupon) ValidateStatus() error {
	if cp.Status < 0 || cp.Status > 1 {
		return fmt.Errorf("invalid Status: %d, must be either 0 or 1", cp.Status)
	}
	return nil
}
