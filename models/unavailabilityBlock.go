package models

import "time"

// UnavailabilityBlock chặn lịch một phòng theo khoảng nửa mở [FromDate, ToDate),
// độc lập với vòng đời reservation. Do vận hành tạo/xóa.
type UnavailabilityBlock struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UnitID    uint      `gorm:"index" json:"unitId"`
	FromDate  time.Time `gorm:"index" json:"fromDate"`
	ToDate    time.Time `gorm:"index" json:"toDate"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
