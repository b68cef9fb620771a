package models

import (
	"fmt"
	"time"
)

type Unit struct {
	UnitID     uint      `json:"id" gorm:"primaryKey"`
	UnitTypeID uint      `json:"unitTypeId" gorm:"index"`
	UnitName   string    `json:"unitName"`
	Floor      int       `json:"floor"`
	Enabled    bool      `json:"enabled" gorm:"default:true"` // Soft-disable thay vì xóa
	Status     int       `json:"status" gorm:"default:0"`     // Trạng thái vận hành, chỉ AVAILABLE mới nhận đặt
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	UnitType   UnitType  `json:"unitType" gorm:"foreignKey:UnitTypeID"`
}

func (u *Unit) ValidateStatus() error {
	if u.Status < 0 || u.Status > 3 {
		return fmt.Errorf("invalid status: %d, must be between 0 and 3", u.Status)
	}
	return nil
}
