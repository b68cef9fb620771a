package controllers

import (
	"strconv"
	"time"

	"resort/constants"
	"resort/dto"
	"resort/response"
	"resort/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AvailabilityController struct {
	service *services.AvailabilityService
}

func NewAvailabilityController(db *gorm.DB) *AvailabilityController {
	return &AvailabilityController{
		service: services.NewAvailabilityService(db),
	}
}

func parseStayQuery(c *gin.Context) (time.Time, time.Time, bool) {
	checkIn, err := time.Parse(constants.DateLayout, c.Query("fromDate"))
	if err != nil {
		response.BadRequest(c, "Ngày nhận phòng không hợp lệ")
		return time.Time{}, time.Time{}, false
	}

	checkOut, err := time.Parse(constants.DateLayout, c.Query("toDate"))
	if err != nil {
		response.BadRequest(c, "Ngày trả phòng không hợp lệ")
		return time.Time{}, time.Time{}, false
	}

	return checkIn, checkOut, true
}

// SearchAvailability liệt kê các phòng trống của một loại phòng
// trong khoảng [fromDate, toDate)
func (ctrl *AvailabilityController) SearchAvailability(c *gin.Context) {
	unitTypeId, err := strconv.Atoi(c.Query("unitTypeId"))
	if err != nil || unitTypeId <= 0 {
		response.BadRequest(c, "ID loại phòng không hợp lệ")
		return
	}

	checkIn, checkOut, ok := parseStayQuery(c)
	if !ok {
		return
	}

	units, err := ctrl.service.FindAvailableUnits(c.Request.Context(), uint(unitTypeId), checkIn, checkOut)
	if err != nil {
		response.FromError(c, err)
		return
	}

	unitInfos := make([]dto.UnitInfo, 0, len(units))
	for _, unit := range units {
		unitInfos = append(unitInfos, dto.UnitInfo{
			UnitID:     unit.UnitID,
			UnitTypeID: unit.UnitTypeID,
			Name:       unit.UnitName,
			Floor:      unit.Floor,
		})
	}

	response.Success(c, dto.AvailabilityResponse{
		UnitTypeID:     uint(unitTypeId),
		CheckInDate:    checkIn.Format(constants.DateLayout),
		CheckOutDate:   checkOut.Format(constants.DateLayout),
		AvailableCount: len(unitInfos),
		Units:          unitInfos,
	})
}

// CheckUnit kiểm tra một phòng cụ thể có trống trong khoảng ngày không
func (ctrl *AvailabilityController) CheckUnit(c *gin.Context) {
	unitId, err := strconv.Atoi(c.Query("unitId"))
	if err != nil || unitId <= 0 {
		response.BadRequest(c, "ID phòng không hợp lệ")
		return
	}

	checkIn, checkOut, ok := parseStayQuery(c)
	if !ok {
		return
	}

	available, err := ctrl.service.IsUnitAvailable(c.Request.Context(), uint(unitId), checkIn, checkOut)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{
		"unitId":    unitId,
		"available": available,
	})
}
