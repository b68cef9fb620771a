package controllers

import (
	"resort/config"
	"resort/constants"
	"resort/models"
	"resort/response"
	"resort/validator"

	"github.com/gin-gonic/gin"
)

func GetCoupons(c *gin.Context) {
	var coupons []models.Coupon
	if err := config.DB.Order("created_at desc").Find(&coupons).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, coupons)
}

func GetCouponDetail(c *gin.Context) {
	id := c.Param("id")
	var coupon models.Coupon
	if err := config.DB.First(&coupon, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, coupon)
}

func CreateCoupon(c *gin.Context) {
	var coupon models.Coupon
	if err := c.ShouldBindJSON(&coupon); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateCoupon(&coupon); err != nil {
		response.FromError(c, err)
		return
	}

	var existing models.Coupon
	if err := config.DB.Where("code = ?", coupon.Code).First(&existing).Error; err == nil {
		response.Conflict(c, "Mã giảm giá đã tồn tại")
		return
	}

	coupon.UsedCount = 0
	if err := config.DB.Create(&coupon).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, coupon)
}

// UpdateCoupon sửa thông tin chương trình, không đụng vào số lượt đã dùng
func UpdateCoupon(c *gin.Context) {
	var coupon models.Coupon
	if err := c.ShouldBindJSON(&coupon); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var existing models.Coupon
	if err := config.DB.First(&existing, coupon.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := validator.ValidateCoupon(&coupon); err != nil {
		response.FromError(c, err)
		return
	}

	existing.Name = coupon.Name
	existing.Kind = coupon.Kind
	existing.Value = coupon.Value
	existing.FromDate = coupon.FromDate
	existing.ToDate = coupon.ToDate
	existing.MaxUses = coupon.MaxUses
	existing.MinBookingAmount = coupon.MinBookingAmount

	if err := config.DB.Save(&existing).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, existing)
}

func ChangeCouponStatus(c *gin.Context) {
	var input struct {
		ID     uint `json:"id" binding:"required"`
		Status int  `json:"status"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if input.Status != constants.StatusInactive && input.Status != constants.StatusActive {
		response.BadRequest(c, "Trạng thái không hợp lệ")
		return
	}

	var coupon models.Coupon
	if err := config.DB.First(&coupon, input.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := config.DB.Model(&coupon).Update("status", input.Status).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, coupon)
}
