package controllers

import (
	"strconv"

	"resort/config"
	"resort/constants"
	"resort/dto"
	"resort/models"
	"resort/response"
	"resort/services"
	"resort/services/logger"
	"resort/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PartnerController struct {
	db         *gorm.DB
	commission *services.CommissionService
}

func NewPartnerController(db *gorm.DB) *PartnerController {
	return &PartnerController{
		db:         db,
		commission: services.NewCommissionService(db, config.GetPointUnit(), logger.NewDefaultLogger(logger.InfoLevel)),
	}
}

func (ctrl *PartnerController) GetPartners(c *gin.Context) {
	var partners []models.Partner
	if err := ctrl.db.Find(&partners).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, partners)
}

func (ctrl *PartnerController) GetPartnerDetail(c *gin.Context) {
	id := c.Param("id")
	var partner models.Partner
	if err := ctrl.db.First(&partner, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, partner)
}

func (ctrl *PartnerController) CreatePartner(c *gin.Context) {
	var partner models.Partner
	if err := c.ShouldBindJSON(&partner); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidatePartner(&partner); err != nil {
		response.FromError(c, err)
		return
	}

	partner.TotalEarned = 0
	partner.Points = 0
	if err := ctrl.db.Create(&partner).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, partner)
}

// UpdatePartner sửa hồ sơ đối tác, số dư tích lũy chỉ thay đổi qua sổ cái
func (ctrl *PartnerController) UpdatePartner(c *gin.Context) {
	var partner models.Partner
	if err := c.ShouldBindJSON(&partner); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var existing models.Partner
	if err := ctrl.db.First(&existing, partner.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := validator.ValidatePartner(&partner); err != nil {
		response.FromError(c, err)
		return
	}

	if err := ctrl.db.Model(&existing).Updates(map[string]interface{}{
		"name":            partner.Name,
		"email":           partner.Email,
		"phone_number":    partner.PhoneNumber,
		"commission_rate": partner.CommissionRate,
	}).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, existing)
}

func (ctrl *PartnerController) ChangePartnerStatus(c *gin.Context) {
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

	var partner models.Partner
	if err := ctrl.db.First(&partner, input.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := ctrl.db.Model(&partner).Update("status", input.Status).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, partner)
}

// Payout chi trả hoa hồng đã tích lũy cho đối tác
func (ctrl *PartnerController) Payout(c *gin.Context) {
	var req dto.PayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	entry, err := ctrl.commission.Payout(c.Request.Context(), req.PartnerID, req.Amount, req.Note)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, entry)
}

// GetLedger liệt kê sổ cái hoa hồng của một đối tác, mới nhất trước
func (ctrl *PartnerController) GetLedger(c *gin.Context) {
	partnerId, err := strconv.Atoi(c.Param("id"))
	if err != nil || partnerId <= 0 {
		response.BadRequest(c, "ID đối tác không hợp lệ")
		return
	}

	var entries []models.CommissionLedgerEntry
	if err := ctrl.db.Where("partner_id = ?", partnerId).
		Order("created_at desc").Limit(100).Find(&entries).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, entries)
}
