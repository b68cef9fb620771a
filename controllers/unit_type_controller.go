package controllers

import (
	"log"
	"time"

	"resort/config"
	"resort/models"
	"resort/response"
	"resort/services"
	"resort/validator"

	"github.com/gin-gonic/gin"
)

func GetAllUnitTypes(c *gin.Context) {
	cacheKey := "unitTypes:all"

	// Kết nối Redis
	rdb, err := config.ConnectRedis()
	if err != nil {
		response.ServerError(c)
		return
	}

	var unitTypes []models.UnitType

	// Lấy dữ liệu từ Redis
	err = services.GetFromRedis(config.Ctx, rdb, cacheKey, &unitTypes)
	if err == nil && len(unitTypes) > 0 {
		response.Success(c, unitTypes)
		return
	}

	// Lấy dữ liệu từ database
	if err := config.DB.Preload("Units").Where("visible = ?", true).Find(&unitTypes).Error; err != nil {
		response.ServerError(c)
		return
	}

	if err := services.SetToRedis(config.Ctx, rdb, cacheKey, unitTypes, 10*time.Minute); err != nil {
		log.Printf("Lỗi khi lưu danh sách loại phòng vào Redis: %v", err)
	}

	response.Success(c, unitTypes)
}

func CreateUnitType(c *gin.Context) {
	var unitType models.UnitType
	if err := c.ShouldBindJSON(&unitType); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateUnitType(&unitType); err != nil {
		response.FromError(c, err)
		return
	}

	if err := config.DB.Create(&unitType).Error; err != nil {
		response.ServerError(c)
		return
	}

	//Xóa redis
	rdb, redisErr := config.ConnectRedis()
	if redisErr == nil {
		_ = services.DeleteFromRedis(config.Ctx, rdb, "unitTypes:all")
	}

	response.Success(c, unitType)
}

func GetUnitTypeDetail(c *gin.Context) {
	id := c.Param("id")
	var unitType models.UnitType
	if err := config.DB.Preload("Units").First(&unitType, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, unitType)
}

func UpdateUnitType(c *gin.Context) {
	var unitType models.UnitType
	if err := c.ShouldBindJSON(&unitType); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var existing models.UnitType
	if err := config.DB.First(&existing, unitType.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := validator.ValidateUnitType(&unitType); err != nil {
		response.FromError(c, err)
		return
	}

	if err := config.DB.Model(&existing).Updates(map[string]interface{}{
		"name":              unitType.Name,
		"description":       unitType.Description,
		"base_price":        unitType.BasePrice,
		"extra_adult_price": unitType.ExtraAdultPrice,
		"extra_child_price": unitType.ExtraChildPrice,
		"free_children":     unitType.FreeChildren,
		"max_adults":        unitType.MaxAdults,
		"max_children":      unitType.MaxChildren,
	}).Error; err != nil {
		response.ServerError(c)
		return
	}

	//Xóa redis
	rdb, redisErr := config.ConnectRedis()
	if redisErr == nil {
		_ = services.DeleteFromRedis(config.Ctx, rdb, "unitTypes:all")
	}

	response.Success(c, existing)
}

func ChangeUnitTypeVisibility(c *gin.Context) {
	var input struct {
		ID      uint `json:"id" binding:"required"`
		Visible bool `json:"visible"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var unitType models.UnitType
	if err := config.DB.First(&unitType, input.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := config.DB.Model(&unitType).Update("visible", input.Visible).Error; err != nil {
		response.ServerError(c)
		return
	}

	//Xóa redis
	rdb, redisErr := config.ConnectRedis()
	if redisErr == nil {
		_ = services.DeleteFromRedis(config.Ctx, rdb, "unitTypes:all")
	}

	response.Success(c, unitType)
}
