package response

import (
	"log"
	"net/http"

	"resort/errors"

	"github.com/gin-gonic/gin"
)

// Response định nghĩa cấu trúc response
type Response struct {
	Code       int         `json:"code"`
	Mess       string      `json:"mess"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination định nghĩa cấu trúc phân trang
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// Success trả về response thành công
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Thành công",
		Data: data,
	})
}

// SuccessWithPagination trả về response thành công có phân trang
func SuccessWithPagination(c *gin.Context, data interface{}, page, limit, total int) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Thành công",
		Data: data,
		Pagination: &Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
		},
	})
}

// ServerError trả về response lỗi server
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Response{
		Code: 0,
		Mess: "Lỗi server",
	})
}

// Unauthorized trả về response chưa xác thực
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Response{
		Code: 0,
		Mess: "Chưa xác thực",
	})
}

// Forbidden trả về response không có quyền
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, Response{
		Code: 0,
		Mess: "Không có quyền truy cập",
	})
}

// NotFound trả về response không tìm thấy
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, Response{
		Code: 0,
		Mess: "Không tìm thấy",
	})
}

// BadRequest trả về response lỗi bad request
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: 0,
		Mess: message,
	})
}

// Conflict trả về response conflict (409)
func Conflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, Response{
		Code: 0,
		Mess: message,
	})
}

// FromError ánh xạ AppError sang HTTP status tương ứng.
// Lỗi chữ ký chỉ trả thông điệp chung, chi tiết được ghi log.
func FromError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		ServerError(c)
		return
	}

	switch appErr.Code {
	case errors.ErrCodeNotFound, errors.ErrCodeUnitTypeNotFound,
		errors.ErrCodeUnitNotFound, errors.ErrCodePaymentNotFound,
		errors.ErrCodeCouponNotFound, errors.ErrCodeDBNotFound:
		NotFound(c)
	case errors.ErrCodeNoAvailability, errors.ErrCodeCouponExhausted,
		errors.ErrCodeCouponExpired, errors.ErrCodeCouponInactive,
		errors.ErrCodeInvalidTransition, errors.ErrCodeDBDuplicate:
		Conflict(c, appErr.Message)
	case errors.ErrCodeValidation, errors.ErrCodeRequiredField,
		errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidRange,
		errors.ErrCodeOccupancyExceeded, errors.ErrCodeInvalidAmount,
		errors.ErrCodeBelowMinimum, errors.ErrCodeOverrideTooLow:
		BadRequest(c, appErr.Message)
	case errors.ErrCodeInvalidSignature:
		log.Printf("Chữ ký không hợp lệ: %v", err)
		BadRequest(c, "Yêu cầu không hợp lệ")
	case errors.ErrCodeUnauthorized, errors.ErrCodeInvalidToken,
		errors.ErrCodeMissingToken:
		Unauthorized(c)
	case errors.ErrCodeGatewayError:
		c.JSON(http.StatusBadGateway, Response{Code: 0, Mess: "Cổng thanh toán đang gặp sự cố"})
	default:
		ServerError(c)
	}
}
