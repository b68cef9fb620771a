package models

import (
	"fmt"
	"time"
)

// RateRule điều chỉnh giá theo thời vụ. UnitTypeID null nghĩa là áp dụng
// cho mọi loại phòng. Nhiều rule trùng khoảng có thể cùng tồn tại,
// rule tạo sau cùng thắng.
type RateRule struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	Name       string         `json:"name"`
	UnitTypeID *uint          `json:"unitTypeId"`                     // null = áp dụng toàn hệ thống
	FromDate   string         `json:"fromDate"`                       // Ngày bắt đầu hiệu lực
	ToDate     string         `json:"toDate"`                         // Ngày kết thúc hiệu lực
	Kind       AdjustmentKind `json:"kind"`                           // 0: phần trăm, 1: cố định
	Value      float64        `json:"value"`                          // Mức điều chỉnh
	Status     int            `json:"status" gorm:"default:1"`        // 0: Inactive, 1: Active
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Adjustment trả về kiểu điều chỉnh đóng của rule
func (r *RateRule) Adjustment() Adjustment {
	return Adjustment{Kind: r.Kind, Value: r.Value}
}

func (r *RateRule) ValidateStatus() error {
	if r.Status < 0 || r.Status > 1 {
		return fmt.Errorf("invalid Status: %d, must be either 0 or 1", r.Status)
	}
	return nil
}
