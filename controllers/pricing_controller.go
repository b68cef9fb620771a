package controllers

import (
	"time"

	"resort/config"
	"resort/constants"
	"resort/dto"
	"resort/response"
	"resort/services"
	"resort/services/logger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PricingController struct {
	pricing *services.PricingService
}

func NewPricingController(db *gorm.DB) *PricingController {
	return &PricingController{
		pricing: services.NewPricingService(db, services.NewAvailabilityService(db), config.GetTaxRate(), logger.NewDefaultLogger(logger.InfoLevel)),
	}
}

// Quote báo giá chi tiết cho một kỳ lưu trú, không giữ chỗ
func (ctrl *PricingController) Quote(c *gin.Context) {
	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	checkIn, err := time.Parse(constants.DateLayout, req.CheckInDate)
	if err != nil {
		response.BadRequest(c, "Ngày nhận phòng không hợp lệ")
		return
	}

	checkOut, err := time.Parse(constants.DateLayout, req.CheckOutDate)
	if err != nil {
		response.BadRequest(c, "Ngày trả phòng không hợp lệ")
		return
	}

	breakdown, err := ctrl.pricing.Quote(c.Request.Context(), services.QuoteInput{
		UnitTypeID:  req.UnitTypeID,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Adults:      req.Adults,
		Children:    req.Children,
		CouponCode:  req.CouponCode,
		BookingDate: time.Now(),
	})
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, breakdown)
}
