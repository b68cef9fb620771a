package models

import (
	"time"
)

// Reservation status constants
const (
	ReservationStatusPendingPayment = 0
	ReservationStatusConfirmed      = 1
	ReservationStatusCheckedIn      = 2
	ReservationStatusCheckedOut     = 3
	ReservationStatusCancelled      = 4
	ReservationStatusRefunded       = 5
)

// BlockingStatuses là các trạng thái giữ phòng khi xét trùng lịch
var BlockingStatuses = []int{
	ReservationStatusPendingPayment,
	ReservationStatusConfirmed,
	ReservationStatusCheckedIn,
}

type Reservation struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       *uint     `json:"userId"`
	UnitTypeID   uint      `json:"unitTypeId" gorm:"index"`
	UnitType     UnitType  `json:"unitType" gorm:"foreignKey:UnitTypeID"`
	UnitID       uint      `json:"unitId" gorm:"index"`
	Unit         Unit      `json:"unit" gorm:"foreignKey:UnitID"`
	CheckInDate  time.Time `json:"checkInDate" gorm:"index"`  // Nửa mở: [checkIn, checkOut)
	CheckOutDate time.Time `json:"checkOutDate" gorm:"index"` // Ngày trả phòng không tính
	Adults       int       `json:"adults"`
	Children     int       `json:"children"`
	Status       int       `json:"status"`
	GuestName    string    `json:"guestName,omitempty"`
	GuestEmail   string    `json:"guestEmail,omitempty"`
	GuestPhone   string    `json:"guestPhone,omitempty"`

	// Bảng giá đã chốt tại thời điểm đặt, không tính lại
	BaseAmount       float64 `json:"baseAmount"`
	ExtraAdultAmount float64 `json:"extraAdultAmount"`
	ExtraChildAmount float64 `json:"extraChildAmount"`
	RuleAdjustment   float64 `json:"ruleAdjustment"`
	TaxAmount        float64 `json:"taxAmount"`
	DiscountAmount   float64 `json:"discountAmount"`
	TotalPrice       float64 `json:"totalPrice"`
	PriceOverridden  bool    `json:"priceOverridden"`

	CouponID         *uint   `json:"couponId"`
	PartnerID        *uint   `json:"partnerId"`
	CommissionAmount float64 `json:"commissionAmount"` // Hoa hồng đã chia, lưu để đối soát

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

type ReservationRequest struct {
	UserID        *uint    `json:"userId"`
	UnitTypeID    uint     `json:"unitTypeId"`
	UnitID        uint     `json:"unitId"`
	CheckInDate   string   `json:"checkInDate"`
	CheckOutDate  string   `json:"checkOutDate"`
	Adults        int      `json:"adults"`
	Children      int      `json:"children"`
	CouponCode    string   `json:"couponCode,omitempty"`
	PartnerID     *uint    `json:"partnerId,omitempty"`
	OverrideTotal *float64 `json:"overrideTotal,omitempty"`
	GuestName     string   `json:"guestName,omitempty"`
	GuestEmail    string   `json:"guestEmail,omitempty"`
	GuestPhone    string   `json:"guestPhone,omitempty"`
}
