package errors

import (
	"errors"
	"fmt"
)

// ErrorCode định nghĩa mã lỗi
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken ErrorCode = "MISSING_TOKEN"
	ErrCodeInvalidRole  ErrorCode = "INVALID_ROLE"

	// Validation errors
	ErrCodeValidation        ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField     ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat     ErrorCode = "INVALID_FORMAT"
	ErrCodeInvalidRange      ErrorCode = "INVALID_RANGE"
	ErrCodeOccupancyExceeded ErrorCode = "OCCUPANCY_EXCEEDED"
	ErrCodeInvalidAmount     ErrorCode = "INVALID_AMOUNT"
	ErrCodeOverrideTooLow    ErrorCode = "OVERRIDE_TOO_LOW"

	// Not found errors
	ErrCodeNotFound         ErrorCode = "NOT_FOUND"
	ErrCodeUnitTypeNotFound ErrorCode = "UNIT_TYPE_NOT_FOUND"
	ErrCodeUnitNotFound     ErrorCode = "UNIT_NOT_FOUND"
	ErrCodePaymentNotFound  ErrorCode = "PAYMENT_NOT_FOUND"
	ErrCodeCouponNotFound   ErrorCode = "COUPON_NOT_FOUND"

	// Conflict errors
	ErrCodeNoAvailability    ErrorCode = "NO_AVAILABILITY"
	ErrCodeCouponInactive    ErrorCode = "COUPON_INACTIVE"
	ErrCodeCouponExpired     ErrorCode = "COUPON_EXPIRED"
	ErrCodeCouponExhausted   ErrorCode = "COUPON_EXHAUSTED"
	ErrCodeBelowMinimum      ErrorCode = "BELOW_MINIMUM"
	ErrCodeInvalidTransition ErrorCode = "INVALID_TRANSITION"

	// Security errors
	ErrCodeInvalidSignature ErrorCode = "INVALID_SIGNATURE"

	// Upstream errors
	ErrCodeGatewayError ErrorCode = "GATEWAY_ERROR"

	// Database errors
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound  ErrorCode = "DB_NOT_FOUND"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"
)

// AppError định nghĩa lỗi của ứng dụng
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError tạo một AppError mới
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError kiểm tra xem error có phải là AppError không
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError lấy AppError từ error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsCode kiểm tra error có mang mã lỗi cho trước không
func IsCode(err error, code ErrorCode) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Code == code
}

var (
	// Reservation errors
	ErrReservationNotFound  = errors.New("reservation not found")
	ErrReservationCancelled = errors.New("reservation already cancelled")
	ErrReservationConfirmed = errors.New("reservation already confirmed")

	// Unit errors
	ErrUnitNotFound     = errors.New("unit not found")
	ErrUnitNotAvailable = errors.New("unit not available")

	// Payment errors
	ErrPaymentNotFound = errors.New("payment not found")
	ErrPaymentNotPaid  = errors.New("payment not paid")
	ErrPaymentRefunded = errors.New("payment already refunded")
	ErrInvalidAmount   = errors.New("invalid amount")

	// Validation errors
	ErrInvalidInput    = errors.New("invalid input")
	ErrMissingRequired = errors.New("missing required field")
	ErrInvalidFormat   = errors.New("invalid format")
)
