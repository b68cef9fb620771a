package dto

import "time"

// ReservationResponse là bản ghi rút gọn cho danh sách đặt phòng
type ReservationResponse struct {
	ID              uint      `json:"id"`
	UnitTypeID      uint      `json:"unitTypeId"`
	UnitID          uint      `json:"unitId"`
	UnitName        string    `json:"unitName,omitempty"`
	CheckInDate     time.Time `json:"checkInDate"`
	CheckOutDate    time.Time `json:"checkOutDate"`
	Adults          int       `json:"adults"`
	Children        int       `json:"children"`
	Status          int       `json:"status"`
	GuestName       string    `json:"guestName,omitempty"`
	GuestPhone      string    `json:"guestPhone,omitempty"`
	TotalPrice      float64   `json:"totalPrice"`
	PriceOverridden bool      `json:"priceOverridden"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ReservationDetailResponse kèm bảng giá đã chốt tại thời điểm đặt
type ReservationDetailResponse struct {
	ReservationResponse
	BaseAmount       float64 `json:"baseAmount"`
	ExtraAdultAmount float64 `json:"extraAdultAmount"`
	ExtraChildAmount float64 `json:"extraChildAmount"`
	RuleAdjustment   float64 `json:"ruleAdjustment"`
	TaxAmount        float64 `json:"taxAmount"`
	DiscountAmount   float64 `json:"discountAmount"`
	CouponID         *uint   `json:"couponId,omitempty"`
	PartnerID        *uint   `json:"partnerId,omitempty"`
	CommissionAmount float64 `json:"commissionAmount"`
	GuestEmail       string  `json:"guestEmail,omitempty"`
}
