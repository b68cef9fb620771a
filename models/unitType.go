package models

import (
	"fmt"
	"time"
)

type UnitType struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	Name              string    `json:"name"`                     // Tên loại phòng
	Description       string    `json:"description"`              // Mô tả loại phòng
	BasePrice         float64   `json:"basePrice"`                // Giá cơ bản mỗi đêm
	ExtraAdultPrice   float64   `json:"extraAdultPrice"`          // Giá mỗi người lớn thêm mỗi đêm
	ExtraChildPrice   float64   `json:"extraChildPrice"`          // Giá mỗi trẻ em thêm mỗi đêm
	FreeChildren      int       `json:"freeChildren"`             // Số trẻ em miễn phí
	MaxAdults         int       `json:"maxAdults"`                // Số người lớn tối đa
	MaxChildren       int       `json:"maxChildren"`              // Số trẻ em tối đa
	Visible           bool      `json:"visible" gorm:"default:true"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Units             []Unit    `json:"units" gorm:"foreignKey:UnitTypeID"` // Danh sách các phòng
}

func (t *UnitType) ValidateCapacity() error {
	if t.MaxAdults <= 0 {
		return fmt.Errorf("invalid MaxAdults: %d, must be positive", t.MaxAdults)
	}
	if t.MaxChildren < 0 {
		return fmt.Errorf("invalid MaxChildren: %d, must not be negative", t.MaxChildren)
	}
	return nil
}
