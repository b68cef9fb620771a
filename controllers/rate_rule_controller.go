package controllers

import (
	"resort/config"
	"resort/constants"
	"resort/models"
	"resort/response"
	"resort/validator"

	"github.com/gin-gonic/gin"
)

func GetRateRules(c *gin.Context) {
	var rules []models.RateRule

	tx := config.DB.Order("created_at desc")
	if unitTypeId := c.DefaultQuery("unitTypeId", ""); unitTypeId != "" {
		tx = tx.Where("unit_type_id = ? OR unit_type_id IS NULL", unitTypeId)
	}

	if err := tx.Find(&rules).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, rules)
}

func GetRateRuleDetail(c *gin.Context) {
	id := c.Param("id")
	var rule models.RateRule
	if err := config.DB.First(&rule, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, rule)
}

func CreateRateRule(c *gin.Context) {
	var rule models.RateRule
	if err := c.ShouldBindJSON(&rule); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateRateRule(&rule); err != nil {
		response.FromError(c, err)
		return
	}

	if rule.UnitTypeID != nil {
		var unitType models.UnitType
		if err := config.DB.First(&unitType, *rule.UnitTypeID).Error; err != nil {
			response.NotFound(c)
			return
		}
	}

	if err := config.DB.Create(&rule).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, rule)
}

func UpdateRateRule(c *gin.Context) {
	var rule models.RateRule
	if err := c.ShouldBindJSON(&rule); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var existing models.RateRule
	if err := config.DB.First(&existing, rule.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := validator.ValidateRateRule(&rule); err != nil {
		response.FromError(c, err)
		return
	}

	existing.Name = rule.Name
	existing.UnitTypeID = rule.UnitTypeID
	existing.FromDate = rule.FromDate
	existing.ToDate = rule.ToDate
	existing.Kind = rule.Kind
	existing.Value = rule.Value

	if err := config.DB.Save(&existing).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, existing)
}

func ChangeRateRuleStatus(c *gin.Context) {
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

	var rule models.RateRule
	if err := config.DB.First(&rule, input.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := config.DB.Model(&rule).Update("status", input.Status).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, rule)
}

func DeleteRateRule(c *gin.Context) {
	id := c.Param("id")
	if err := config.DB.Delete(&models.RateRule{}, id).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"deleted": id})
}
