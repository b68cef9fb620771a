package controllers

import (
	"time"

	"resort/config"
	"resort/constants"
	"resort/models"
	"resort/response"

	"github.com/gin-gonic/gin"
)

// GetIncomeRecords liệt kê sổ doanh thu trong khoảng ngày, kèm tổng cộng
func GetIncomeRecords(c *gin.Context) {
	tx := config.DB.Model(&models.IncomeRecord{})

	if fromDate := c.DefaultQuery("fromDate", ""); fromDate != "" {
		parsed, err := time.Parse(constants.DateLayout, fromDate)
		if err != nil {
			response.BadRequest(c, "Ngày bắt đầu không hợp lệ")
			return
		}
		tx = tx.Where("recorded_at >= ?", parsed)
	}

	if toDate := c.DefaultQuery("toDate", ""); toDate != "" {
		parsed, err := time.Parse(constants.DateLayout, toDate)
		if err != nil {
			response.BadRequest(c, "Ngày kết thúc không hợp lệ")
			return
		}
		tx = tx.Where("recorded_at < ?", parsed.AddDate(0, 0, 1))
	}

	var records []models.IncomeRecord
	if err := tx.Order("recorded_at desc").Limit(200).Find(&records).Error; err != nil {
		response.ServerError(c)
		return
	}

	var total float64
	for _, record := range records {
		total += record.Amount
	}

	response.Success(c, gin.H{
		"records": records,
		"total":   total,
	})
}
