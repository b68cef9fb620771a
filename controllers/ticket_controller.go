package controllers

import (
	"resort/config"
	"resort/models"
	"resort/response"
	"resort/validator"

	"github.com/gin-gonic/gin"
)

func GetTickets(c *gin.Context) {
	var tickets []models.Ticket

	tx := config.DB.Order("created_at desc").Limit(100)
	if visitDate := c.DefaultQuery("visitDate", ""); visitDate != "" {
		tx = tx.Where("visit_date = ?", visitDate)
	}

	if err := tx.Find(&tickets).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, tickets)
}

func CreateTicket(c *gin.Context) {
	var ticket models.Ticket
	if err := c.ShouldBindJSON(&ticket); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateTicket(&ticket); err != nil {
		response.FromError(c, err)
		return
	}

	ticket.Status = models.TicketStatusPending
	if err := config.DB.Create(&ticket).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, ticket)
}

func GetTicketDetail(c *gin.Context) {
	id := c.Param("id")
	var ticket models.Ticket
	if err := config.DB.First(&ticket, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, ticket)
}

// CancelTicket hủy vé còn chờ thanh toán, vé đã trả tiền đi theo luồng refund
func CancelTicket(c *gin.Context) {
	id := c.Param("id")
	var ticket models.Ticket
	if err := config.DB.First(&ticket, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	if ticket.Status != models.TicketStatusPending {
		response.Conflict(c, "Chỉ hủy được vé đang chờ thanh toán")
		return
	}

	if err := config.DB.Model(&ticket).Update("status", models.TicketStatusCancelled).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, ticket)
}
