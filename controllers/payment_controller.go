package controllers

import (
	"strconv"

	"resort/dto"
	"resort/models"
	"resort/response"
	"resort/services"
	"resort/utils"
	"resort/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PaymentController struct {
	db       *gorm.DB
	payments *services.PaymentService
}

func NewPaymentController(db *gorm.DB, payments *services.PaymentService) *PaymentController {
	return &PaymentController{
		db:       db,
		payments: payments,
	}
}

func toPaymentResponse(p *models.Payment) dto.PaymentResponse {
	return dto.PaymentResponse{
		ID:             p.ID,
		ReservationID:  p.ReservationID,
		TicketID:       p.TicketID,
		Amount:         p.Amount,
		Currency:       p.Currency,
		Status:         p.Status,
		GatewayOrderID: p.GatewayOrderID,
		Method:         p.Method,
		RefundAmount:   p.RefundAmount,
		PaidAt:         p.PaidAt,
		CreatedAt:      p.CreatedAt,
	}
}

// InitiatePayment mở đơn thu hộ phía gateway cho reservation hoặc vé
func (ctrl *PaymentController) InitiatePayment(c *gin.Context) {
	var req dto.InitiatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if (req.ReservationID == nil) == (req.TicketID == nil) {
		response.BadRequest(c, "Phải chọn đúng một trong hai: reservationId hoặc ticketId")
		return
	}

	var payment *models.Payment
	var err error
	if req.ReservationID != nil {
		payment, err = ctrl.payments.InitiatePayment(c.Request.Context(), *req.ReservationID)
	} else {
		payment, err = ctrl.payments.InitiateTicketPayment(c.Request.Context(), *req.TicketID)
	}
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, toPaymentResponse(payment))
}

// VerifyPayment nhận callback đồng bộ từ client sau khi thanh toán phía gateway
func (ctrl *PaymentController) VerifyPayment(c *gin.Context) {
	var req dto.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	payment, err := ctrl.payments.VerifyPayment(c.Request.Context(), req.OrderID, req.PaymentID, req.Signature)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, toPaymentResponse(payment))
}

// Webhook nhận thông báo bất đồng bộ từ gateway. Chữ ký tính trên raw body
// nên phải đọc body nguyên văn trước khi parse.
func (ctrl *PaymentController) Webhook(c *gin.Context) {
	rawBody, err := c.GetRawData()
	if err != nil {
		response.BadRequest(c, "Không đọc được body")
		return
	}

	signature := c.GetHeader("X-Gateway-Signature")
	if err := ctrl.payments.HandleWebhook(c.Request.Context(), rawBody, signature); err != nil {
		utils.LogError("Xử lý webhook thất bại: %v", err)
		response.FromError(c, err)
		return
	}

	utils.LogInfo("Webhook gateway xử lý xong (%d bytes)", len(rawBody))
	response.Success(c, gin.H{"received": true})
}

func (ctrl *PaymentController) RefundPayment(c *gin.Context) {
	var req dto.RefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if req.Amount != nil {
		if err := validator.ValidateAmount(*req.Amount); err != nil {
			response.FromError(c, err)
			return
		}
	}

	payment, err := ctrl.payments.Refund(c.Request.Context(), req.PaymentID, req.Amount, req.Reason)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, toPaymentResponse(payment))
}

func (ctrl *PaymentController) GetPayments(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	tx := ctrl.db.Model(&models.Payment{})
	if statusFilter := c.DefaultQuery("status", ""); statusFilter != "" {
		if parsedStatus, err := strconv.Atoi(statusFilter); err == nil {
			tx = tx.Where("status = ?", parsedStatus)
		}
	}
	if reservationIdFilter := c.DefaultQuery("reservationId", ""); reservationIdFilter != "" {
		if parsedId, err := strconv.Atoi(reservationIdFilter); err == nil {
			tx = tx.Where("reservation_id = ?", parsedId)
		}
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var payments []models.Payment
	if err := tx.Order("created_at desc").Offset((page - 1) * limit).Limit(limit).Find(&payments).Error; err != nil {
		response.ServerError(c)
		return
	}

	paymentResponses := make([]dto.PaymentResponse, 0, len(payments))
	for i := range payments {
		paymentResponses = append(paymentResponses, toPaymentResponse(&payments[i]))
	}

	response.SuccessWithPagination(c, paymentResponses, page, limit, int(total))
}

func (ctrl *PaymentController) GetPaymentDetail(c *gin.Context) {
	id := c.Param("id")
	var payment models.Payment
	if err := ctrl.db.First(&payment, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, toPaymentResponse(&payment))
}
