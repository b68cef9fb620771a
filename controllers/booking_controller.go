package controllers

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"resort/config"
	"resort/constants"
	"resort/dto"
	"resort/models"
	"resort/response"
	"resort/services"
	"resort/services/logger"
	"resort/validator"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type BookingController struct {
	db       *gorm.DB
	redisCli *redis.Client
	booking  *services.BookingService
}

func NewBookingController(db *gorm.DB, redisCli *redis.Client) *BookingController {
	lg := logger.NewDefaultLogger(logger.InfoLevel)
	availability := services.NewAvailabilityService(db)
	pricing := services.NewPricingService(db, availability, config.GetTaxRate(), lg)
	return &BookingController{
		db:       db,
		redisCli: redisCli,
		booking:  services.NewBookingService(db, availability, pricing, lg),
	}
}

func toReservationResponse(r *models.Reservation) dto.ReservationResponse {
	return dto.ReservationResponse{
		ID:              r.ID,
		UnitTypeID:      r.UnitTypeID,
		UnitID:          r.UnitID,
		UnitName:        r.Unit.UnitName,
		CheckInDate:     r.CheckInDate,
		CheckOutDate:    r.CheckOutDate,
		Adults:          r.Adults,
		Children:        r.Children,
		Status:          r.Status,
		GuestName:       r.GuestName,
		GuestPhone:      r.GuestPhone,
		TotalPrice:      r.TotalPrice,
		PriceOverridden: r.PriceOverridden,
		CreatedAt:       r.CreatedAt,
	}
}

// CreateReservation đặt phòng: báo giá, giữ phòng và chờ thanh toán
func (ctrl *BookingController) CreateReservation(c *gin.Context) {
	var req models.ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateReservationRequest(&req); err != nil {
		response.FromError(c, err)
		return
	}

	checkIn, _ := time.Parse(constants.DateLayout, req.CheckInDate)
	checkOut, _ := time.Parse(constants.DateLayout, req.CheckOutDate)

	reservation, err := ctrl.booking.CreateReservation(c.Request.Context(), services.CreateReservationInput{
		UserID:        req.UserID,
		UnitTypeID:    req.UnitTypeID,
		UnitID:        req.UnitID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Adults:        req.Adults,
		Children:      req.Children,
		CouponCode:    req.CouponCode,
		PartnerID:     req.PartnerID,
		OverrideTotal: req.OverrideTotal,
		GuestName:     req.GuestName,
		GuestEmail:    req.GuestEmail,
		GuestPhone:    req.GuestPhone,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}

	ctrl.invalidateReservationCache()

	response.Success(c, reservation)
}

// GetReservations liệt kê reservation có phân trang, lọc theo trạng thái và phòng
func (ctrl *BookingController) GetReservations(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	statusFilter := c.DefaultQuery("status", "")
	unitIdFilter := c.DefaultQuery("unitId", "")

	cacheKey := fmt.Sprintf("reservations:p%d:l%d:s%s:u%s", page, limit, statusFilter, unitIdFilter)

	var cached struct {
		Data  []dto.ReservationResponse `json:"data"`
		Total int                       `json:"total"`
	}
	if err := services.GetFromRedis(config.Ctx, ctrl.redisCli, cacheKey, &cached); err == nil && cached.Total > 0 {
		response.SuccessWithPagination(c, cached.Data, page, limit, cached.Total)
		return
	}

	tx := ctrl.db.Model(&models.Reservation{}).Preload("Unit")
	if statusFilter != "" {
		if parsedStatus, err := strconv.Atoi(statusFilter); err == nil {
			tx = tx.Where("status = ?", parsedStatus)
		}
	}
	if unitIdFilter != "" {
		if parsedUnitId, err := strconv.Atoi(unitIdFilter); err == nil {
			tx = tx.Where("unit_id = ?", parsedUnitId)
		}
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var reservations []models.Reservation
	if err := tx.Order("created_at desc").Offset((page - 1) * limit).Limit(limit).Find(&reservations).Error; err != nil {
		response.ServerError(c)
		return
	}

	reservationResponses := make([]dto.ReservationResponse, 0, len(reservations))
	for i := range reservations {
		reservationResponses = append(reservationResponses, toReservationResponse(&reservations[i]))
	}

	cached.Data = reservationResponses
	cached.Total = int(total)
	if err := services.SetToRedis(config.Ctx, ctrl.redisCli, cacheKey, cached, 5*time.Minute); err != nil {
		log.Printf("Lỗi khi lưu danh sách reservation vào Redis: %v", err)
	}

	response.SuccessWithPagination(c, reservationResponses, page, limit, int(total))
}

func (ctrl *BookingController) GetReservationDetail(c *gin.Context) {
	id := c.Param("id")
	var reservation models.Reservation
	if err := ctrl.db.Preload("Unit").Preload("UnitType").First(&reservation, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	detail := dto.ReservationDetailResponse{
		ReservationResponse: toReservationResponse(&reservation),
		BaseAmount:          reservation.BaseAmount,
		ExtraAdultAmount:    reservation.ExtraAdultAmount,
		ExtraChildAmount:    reservation.ExtraChildAmount,
		RuleAdjustment:      reservation.RuleAdjustment,
		TaxAmount:           reservation.TaxAmount,
		DiscountAmount:      reservation.DiscountAmount,
		CouponID:            reservation.CouponID,
		PartnerID:           reservation.PartnerID,
		CommissionAmount:    reservation.CommissionAmount,
		GuestEmail:          reservation.GuestEmail,
	}

	response.Success(c, detail)
}

func (ctrl *BookingController) reservationTransition(c *gin.Context,
	op func(ctx *gin.Context, id uint) (*models.Reservation, error)) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		response.BadRequest(c, "ID reservation không hợp lệ")
		return
	}

	reservation, err := op(c, uint(id))
	if err != nil {
		response.FromError(c, err)
		return
	}

	ctrl.invalidateReservationCache()

	response.Success(c, reservation)
}

func (ctrl *BookingController) CheckIn(c *gin.Context) {
	ctrl.reservationTransition(c, func(ctx *gin.Context, id uint) (*models.Reservation, error) {
		return ctrl.booking.CheckIn(ctx.Request.Context(), id)
	})
}

func (ctrl *BookingController) CheckOut(c *gin.Context) {
	ctrl.reservationTransition(c, func(ctx *gin.Context, id uint) (*models.Reservation, error) {
		return ctrl.booking.CheckOut(ctx.Request.Context(), id)
	})
}

func (ctrl *BookingController) CancelReservation(c *gin.Context) {
	ctrl.reservationTransition(c, func(ctx *gin.Context, id uint) (*models.Reservation, error) {
		return ctrl.booking.Cancel(ctx.Request.Context(), id)
	})
}

// CreateBlock chặn lịch một phòng cho bảo trì hoặc giữ nội bộ
func (ctrl *BookingController) CreateBlock(c *gin.Context) {
	var req dto.BlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	fromDate, err := time.Parse(constants.DateLayout, req.FromDate)
	if err != nil {
		response.BadRequest(c, "Ngày bắt đầu không hợp lệ")
		return
	}

	toDate, err := time.Parse(constants.DateLayout, req.ToDate)
	if err != nil {
		response.BadRequest(c, "Ngày kết thúc không hợp lệ")
		return
	}

	block, err := ctrl.booking.CreateBlock(c.Request.Context(), req.UnitID, fromDate, toDate, req.Reason)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, block)
}

func (ctrl *BookingController) GetBlocks(c *gin.Context) {
	unitIdFilter := c.DefaultQuery("unitId", "")

	tx := ctrl.db.Model(&models.UnavailabilityBlock{})
	if unitIdFilter != "" {
		if parsedUnitId, err := strconv.Atoi(unitIdFilter); err == nil {
			tx = tx.Where("unit_id = ?", parsedUnitId)
		}
	}

	var blocks []models.UnavailabilityBlock
	if err := tx.Order("from_date").Find(&blocks).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, blocks)
}

func (ctrl *BookingController) DeleteBlock(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	if err := ctrl.booking.DeleteBlock(c.Request.Context(), uint(id)); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"deleted": id})
}

func (ctrl *BookingController) invalidateReservationCache() {
	if err := services.DeleteKeysByPattern(config.Ctx, ctrl.redisCli, "reservations:*"); err != nil {
		log.Printf("Lỗi khi xóa cache reservation: %v", err)
	}
}
