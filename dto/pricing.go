package dto

// QuoteRequest là DTO cho request báo giá
type QuoteRequest struct {
	UnitTypeID   uint   `json:"unitTypeId" binding:"required"`
	CheckInDate  string `json:"checkInDate" binding:"required"`
	CheckOutDate string `json:"checkOutDate" binding:"required"`
	Adults       int    `json:"adults" binding:"required,min=1"`
	Children     int    `json:"children" binding:"min=0"`
	CouponCode   string `json:"couponCode,omitempty"`
}

// PriceBreakdown là bảng giá chi tiết, giữ đủ các thành phần trung gian
// để đối soát và hiển thị
type PriceBreakdown struct {
	Nights           int     `json:"nights"`
	BaseAmount       float64 `json:"baseAmount"`
	ExtraAdultAmount float64 `json:"extraAdultAmount"`
	ExtraChildAmount float64 `json:"extraChildAmount"`
	RuleAdjustment   float64 `json:"ruleAdjustment"`
	RateRuleID       *uint   `json:"rateRuleId,omitempty"`
	Subtotal         float64 `json:"subtotal"` // Sau điều chỉnh rule, trước thuế
	TaxAmount        float64 `json:"taxAmount"`
	DiscountAmount   float64 `json:"discountAmount"`
	CouponID         *uint   `json:"couponId,omitempty"`
	Total            float64 `json:"total"`
	Overridden       bool    `json:"overridden"`
}
