package models

import (
	"fmt"
	"time"
)

// Partner là đối tác giới thiệu, hưởng hoa hồng theo phần trăm trên đơn đã thanh toán
type Partner struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	PhoneNumber    string    `json:"phoneNumber"`
	CommissionRate float64   `json:"commissionRate"`              // Phần trăm hoa hồng
	Status         int       `json:"status" gorm:"default:1"`     // 0: Inactive, 1: Active
	TotalEarned    float64   `json:"totalEarned"`                 // Tổng hoa hồng tích lũy
	Points         int64     `json:"points"`                      // Điểm khả dụng
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (p *Partner) ValidateCommissionRate() error {
	if p.CommissionRate < 0 || p.CommissionRate > 100 {
		return fmt.Errorf("invalid CommissionRate: %v, must be between 0 and 100", p.CommissionRate)
	}
	return nil
}
