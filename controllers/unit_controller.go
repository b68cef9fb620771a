package controllers

import (
	"strconv"

	"resort/config"
	"resort/models"
	"resort/response"
	"resort/services"

	"github.com/gin-gonic/gin"
)

func GetAllUnits(c *gin.Context) {
	unitTypeIdFilter := c.DefaultQuery("unitTypeId", "")

	tx := config.DB.Preload("UnitType")
	if unitTypeIdFilter != "" {
		if parsedUnitTypeId, err := strconv.Atoi(unitTypeIdFilter); err == nil {
			tx = tx.Where("unit_type_id = ?", parsedUnitTypeId)
		}
	}

	var units []models.Unit
	if err := tx.Find(&units).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, units)
}

func CreateUnit(c *gin.Context) {
	var unit models.Unit
	if err := c.ShouldBindJSON(&unit); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if unit.UnitTypeID == 0 {
		response.BadRequest(c, "ID loại phòng không được để trống")
		return
	}

	var unitType models.UnitType
	if err := config.DB.First(&unitType, unit.UnitTypeID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := unit.ValidateStatus(); err != nil {
		response.BadRequest(c, "Trạng thái phòng không hợp lệ")
		return
	}

	if err := config.DB.Create(&unit).Error; err != nil {
		response.ServerError(c)
		return
	}

	//Xóa redis
	rdb, redisErr := config.ConnectRedis()
	if redisErr == nil {
		_ = services.DeleteFromRedis(config.Ctx, rdb, "unitTypes:all")
	}

	response.Success(c, unit)
}

func GetUnitDetail(c *gin.Context) {
	id := c.Param("id")
	var unit models.Unit
	if err := config.DB.Preload("UnitType").First(&unit, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, unit)
}

// ChangeUnitStatus đổi trạng thái vận hành hoặc bật tắt phòng.
// Tắt phòng chỉ chặn booking mới, các reservation đang giữ phòng không bị đụng.
func ChangeUnitStatus(c *gin.Context) {
	var input struct {
		ID      uint  `json:"id" binding:"required"`
		Status  int   `json:"status"`
		Enabled *bool `json:"enabled"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var unit models.Unit
	if err := config.DB.First(&unit, input.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	unit.Status = input.Status
	if err := unit.ValidateStatus(); err != nil {
		response.BadRequest(c, "Trạng thái phòng không hợp lệ")
		return
	}
	if input.Enabled != nil {
		unit.Enabled = *input.Enabled
	}

	if err := config.DB.Save(&unit).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, unit)
}
