package validator

import (
	"regexp"
	"time"

	"resort/constants"
	"resort/errors"
	"resort/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations đăng ký các rule kiểm tra riêng vào binding
// engine của gin, gọi một lần lúc khởi động
func RegisterCustomValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("bookingdate", func(fl validator.FieldLevel) bool {
			_, err := time.Parse(constants.DateLayout, fl.Field().String())
			return err == nil
		})
	}
}

// ValidateReservationRequest validate dữ liệu đặt phòng trước khi báo giá
func ValidateReservationRequest(req *models.ReservationRequest) error {
	if req.UnitTypeID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID loại phòng không được để trống", nil)
	}

	if req.UnitID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Phải chọn phòng cụ thể trước khi đặt", nil)
	}

	checkInDate, err := time.Parse(constants.DateLayout, req.CheckInDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày nhận phòng không hợp lệ", err)
	}

	checkOutDate, err := time.Parse(constants.DateLayout, req.CheckOutDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày trả phòng không hợp lệ", err)
	}

	if !checkOutDate.After(checkInDate) {
		return errors.NewAppError(errors.ErrCodeInvalidRange, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}

	if req.Adults < 1 {
		return errors.NewAppError(errors.ErrCodeValidation, "Phải có ít nhất một người lớn", nil)
	}

	if req.Children < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Số trẻ em không được âm", nil)
	}

	if req.UserID == nil {
		if req.GuestName == "" {
			return errors.NewAppError(errors.ErrCodeRequiredField, "Tên khách không được để trống", nil)
		}
		if req.GuestPhone == "" {
			return errors.NewAppError(errors.ErrCodeRequiredField, "Số điện thoại khách không được để trống", nil)
		}
		if !isValidPhone(req.GuestPhone) {
			return errors.NewAppError(errors.ErrCodeValidation, "Số điện thoại khách không hợp lệ", nil)
		}
		if req.GuestEmail != "" && !isValidEmail(req.GuestEmail) {
			return errors.NewAppError(errors.ErrCodeValidation, "Email khách không hợp lệ", nil)
		}
	}

	return nil
}

// ValidateRateRule validate quy tắc điều chỉnh giá theo mùa
func ValidateRateRule(rule *models.RateRule) error {
	if rule.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên quy tắc giá không được để trống", nil)
	}

	fromDate, err := time.Parse(constants.DateLayout, rule.FromDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Định dạng ngày bắt đầu không hợp lệ", err)
	}

	toDate, err := time.Parse(constants.DateLayout, rule.ToDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Định dạng ngày kết thúc không hợp lệ", err)
	}

	if toDate.Before(fromDate) {
		return errors.NewAppError(errors.ErrCodeValidation, "Ngày kết thúc phải sau ngày bắt đầu", nil)
	}

	if err := rule.Adjustment().Validate(); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Mức điều chỉnh giá không hợp lệ", err)
	}

	return nil
}

// ValidateCoupon validate mã giảm giá
func ValidateCoupon(coupon *models.Coupon) error {
	if coupon.Code == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Mã giảm giá không được để trống", nil)
	}

	if !isValidCouponCode(coupon.Code) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Mã giảm giá chỉ gồm chữ in hoa, số và dấu gạch", nil)
	}

	fromDate, err := time.Parse(constants.DateLayout, coupon.FromDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Định dạng ngày bắt đầu không hợp lệ", err)
	}

	toDate, err := time.Parse(constants.DateLayout, coupon.ToDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Định dạng ngày kết thúc không hợp lệ", err)
	}

	if toDate.Before(fromDate) {
		return errors.NewAppError(errors.ErrCodeValidation, "Ngày kết thúc phải sau ngày bắt đầu", nil)
	}

	if coupon.MaxUses < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Số lượt dùng không được âm", nil)
	}

	if coupon.MinBookingAmount < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Giá trị đơn tối thiểu không được âm", nil)
	}

	// Coupon chỉ giảm giá, không được tăng
	if coupon.Value < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Mức giảm giá không được âm", nil)
	}
	if err := coupon.Adjustment().Validate(); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Mức giảm giá không hợp lệ", err)
	}

	return nil
}

// ValidateUnitType validate loại phòng
func ValidateUnitType(unitType *models.UnitType) error {
	if unitType.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên loại phòng không được để trống", nil)
	}

	if unitType.BasePrice < 0 || unitType.ExtraAdultPrice < 0 || unitType.ExtraChildPrice < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Giá không được âm", nil)
	}

	if unitType.FreeChildren < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Số trẻ em miễn phí không được âm", nil)
	}

	if err := unitType.ValidateCapacity(); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, "Sức chứa loại phòng không hợp lệ", err)
	}

	return nil
}

// ValidatePartner validate đối tác giới thiệu
func ValidatePartner(partner *models.Partner) error {
	if partner.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên đối tác không được để trống", nil)
	}

	if partner.Email != "" && !isValidEmail(partner.Email) {
		return errors.NewAppError(errors.ErrCodeValidation, "Email đối tác không hợp lệ", nil)
	}

	if partner.PhoneNumber != "" && !isValidPhone(partner.PhoneNumber) {
		return errors.NewAppError(errors.ErrCodeValidation, "Số điện thoại đối tác không hợp lệ", nil)
	}

	if err := partner.ValidateCommissionRate(); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Phần trăm hoa hồng không hợp lệ", err)
	}

	return nil
}

// ValidateTicket validate vé dịch vụ trong ngày
func ValidateTicket(ticket *models.Ticket) error {
	if ticket.ServiceName == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên dịch vụ không được để trống", nil)
	}

	if ticket.Quantity < 1 {
		return errors.NewAppError(errors.ErrCodeValidation, "Số lượng vé phải ít nhất là 1", nil)
	}

	if ticket.TotalPrice < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Tổng tiền không được âm", nil)
	}

	if ticket.UserID == nil {
		if ticket.GuestName == "" {
			return errors.NewAppError(errors.ErrCodeRequiredField, "Tên khách không được để trống", nil)
		}
		if ticket.GuestPhone == "" {
			return errors.NewAppError(errors.ErrCodeRequiredField, "Số điện thoại khách không được để trống", nil)
		}
	}

	return nil
}

// ValidateAmount validate số tiền
func ValidateAmount(amount float64) error {
	if amount < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Số tiền không được âm", nil)
	}
	return nil
}

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// isValidPhone kiểm tra số điện thoại hợp lệ
func isValidPhone(phone string) bool {
	phoneRegex := regexp.MustCompile(`^[0-9]{10}$`)
	return phoneRegex.MatchString(phone)
}

// isValidCouponCode kiểm tra định dạng mã giảm giá
func isValidCouponCode(code string) bool {
	codeRegex := regexp.MustCompile(`^[A-Z0-9_-]{3,30}$`)
	return codeRegex.MatchString(code)
}
