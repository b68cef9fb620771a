package services

import (
	"context"
	"math"
	"time"

	"resort/constants"
	"resort/dto"
	"resort/errors"
	"resort/models"
	"resort/services/logger"

	"gorm.io/gorm"
)

// PricingService tính bảng giá cho một kỳ lưu trú.
// Thứ tự các bước là cố định vì bước sau áp dụng trên subtotal của bước trước.
type PricingService struct {
	db           *gorm.DB
	availability *AvailabilityService
	taxRate      float64
	logger       logger.Logger
}

func NewPricingService(db *gorm.DB, availability *AvailabilityService, taxRate float64, lg logger.Logger) *PricingService {
	return &PricingService{db: db, availability: availability, taxRate: taxRate, logger: lg}
}

// QuoteInput là dữ liệu đầu vào cho báo giá
type QuoteInput struct {
	UnitTypeID  uint
	CheckIn     time.Time
	CheckOut    time.Time
	Adults      int
	Children    int
	CouponCode  string
	BookingDate time.Time // Mốc xét hiệu lực coupon, mặc định là hiện tại
}

// Quote tính bảng giá đầy đủ: giá cơ bản, phụ thu người thêm,
// điều chỉnh rule, thuế và giảm giá coupon
func (s *PricingService) Quote(ctx context.Context, in QuoteInput) (*dto.PriceBreakdown, error) {
	var unitType models.UnitType
	if err := s.db.WithContext(ctx).First(&unitType, in.UnitTypeID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewAppError(errors.ErrCodeUnitTypeNotFound, "Không tìm thấy loại phòng", err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn loại phòng", err)
	}

	nights := int(math.Ceil(in.CheckOut.Sub(in.CheckIn).Hours() / 24))
	if nights <= 0 {
		return nil, errors.NewAppError(errors.ErrCodeInvalidRange, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}

	if in.Adults < 1 {
		return nil, errors.NewAppError(errors.ErrCodeValidation, "Phải có ít nhất một người lớn", nil)
	}
	if in.Adults > unitType.MaxAdults || in.Children > unitType.MaxChildren {
		return nil, errors.NewAppError(errors.ErrCodeOccupancyExceeded, "Số khách vượt sức chứa của loại phòng", nil)
	}

	// Không báo giá cho loại phòng đã kín lịch; phép kiểm tra quyết định
	// vẫn chạy lại trong transaction lúc ghi reservation
	count, err := s.availability.CountAvailable(ctx, in.UnitTypeID, in.CheckIn, in.CheckOut)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, errors.NewAppError(errors.ErrCodeNoAvailability, "Loại phòng không còn phòng trống trong khoảng ngày này", nil)
	}

	breakdown := &dto.PriceBreakdown{Nights: nights}
	breakdown.BaseAmount = unitType.BasePrice * float64(nights)

	extraAdults := in.Adults - 1
	if extraAdults < 0 {
		extraAdults = 0
	}
	breakdown.ExtraAdultAmount = float64(extraAdults) * unitType.ExtraAdultPrice * float64(nights)

	extraChildren := in.Children - unitType.FreeChildren
	if extraChildren < 0 {
		extraChildren = 0
	}
	breakdown.ExtraChildAmount = float64(extraChildren) * unitType.ExtraChildPrice * float64(nights)

	subtotal := breakdown.BaseAmount + breakdown.ExtraAdultAmount + breakdown.ExtraChildAmount

	rule, err := s.selectRateRule(ctx, in.UnitTypeID, in.CheckIn, in.CheckOut)
	if err != nil {
		return nil, err
	}
	if rule != nil {
		breakdown.RuleAdjustment = rule.Adjustment().Amount(subtotal)
		breakdown.RateRuleID = &rule.ID
		subtotal += breakdown.RuleAdjustment
	}
	breakdown.Subtotal = subtotal

	// Thuế tính trên subtotal đã điều chỉnh rule, không tính trên giá gốc
	breakdown.TaxAmount = subtotal * s.taxRate

	if in.CouponCode != "" {
		bookingDate := in.BookingDate
		if bookingDate.IsZero() {
			bookingDate = time.Now()
		}
		coupon, discount, err := s.resolveCoupon(ctx, in.CouponCode, subtotal, bookingDate)
		if err != nil {
			return nil, err
		}
		breakdown.DiscountAmount = discount
		breakdown.CouponID = &coupon.ID
	}

	total := subtotal + breakdown.TaxAmount - breakdown.DiscountAmount
	if total < 0 {
		total = 0
	}
	breakdown.Total = total

	return breakdown, nil
}

// selectRateRule chọn rule áp dụng: đang active, scope khớp (rule theo loại
// phòng không được ưu tiên hơn rule toàn hệ thống), khoảng hiệu lực giao với
// kỳ lưu trú; giữa các rule khớp thì rule tạo sau cùng thắng.
func (s *PricingService) selectRateRule(ctx context.Context, unitTypeID uint, stayStart, stayEnd time.Time) (*models.RateRule, error) {
	var rules []models.RateRule
	if err := s.db.WithContext(ctx).
		Where("status = ? AND (unit_type_id IS NULL OR unit_type_id = ?)", constants.StatusActive, unitTypeID).
		Order("created_at desc").
		Find(&rules).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn rate rule", err)
	}

	for i := range rules {
		ruleStart, err := time.Parse(constants.DateLayout, rules[i].FromDate)
		if err != nil {
			s.logger.Warn("Bỏ qua rate rule %d: fromDate không hợp lệ (%q)", rules[i].ID, rules[i].FromDate)
			continue
		}
		ruleEnd, err := time.Parse(constants.DateLayout, rules[i].ToDate)
		if err != nil {
			s.logger.Warn("Bỏ qua rate rule %d: toDate không hợp lệ (%q)", rules[i].ID, rules[i].ToDate)
			continue
		}

		// ruleStart <= stayEnd AND ruleEnd >= stayStart
		if !ruleStart.After(stayEnd) && !ruleEnd.Before(stayStart) {
			return &rules[i], nil
		}
	}
	return nil, nil
}

// resolveCoupon kiểm tra coupon và tính số tiền giảm,
// đã chặn không cho giảm quá subtotal trước thuế
func (s *PricingService) resolveCoupon(ctx context.Context, code string, subtotal float64, bookingDate time.Time) (*models.Coupon, float64, error) {
	var coupon models.Coupon
	if err := s.db.WithContext(ctx).Where("code = ?", code).First(&coupon).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, 0, errors.NewAppError(errors.ErrCodeCouponNotFound, "Mã giảm giá không tồn tại", err)
		}
		return nil, 0, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn coupon", err)
	}

	if coupon.Status != constants.StatusActive {
		return nil, 0, errors.NewAppError(errors.ErrCodeCouponInactive, "Mã giảm giá đã bị khóa", nil)
	}

	fromDate, err := time.Parse(constants.DateLayout, coupon.FromDate)
	if err != nil {
		return nil, 0, errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày hiệu lực coupon không hợp lệ", err)
	}
	toDate, err := time.Parse(constants.DateLayout, coupon.ToDate)
	if err != nil {
		return nil, 0, errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày hết hạn coupon không hợp lệ", err)
	}
	// Hiệu lực tính trọn ngày kết thúc: [fromDate, toDate + 1 ngày)
	if bookingDate.Before(fromDate) || !bookingDate.Before(toDate.AddDate(0, 0, 1)) {
		return nil, 0, errors.NewAppError(errors.ErrCodeCouponExpired, "Mã giảm giá ngoài thời gian hiệu lực", nil)
	}

	if coupon.UsedCount >= coupon.MaxUses {
		return nil, 0, errors.NewAppError(errors.ErrCodeCouponExhausted, "Mã giảm giá đã hết lượt sử dụng", nil)
	}

	if subtotal < coupon.MinBookingAmount {
		return nil, 0, errors.NewAppError(errors.ErrCodeBelowMinimum, "Đơn chưa đạt giá trị tối thiểu của mã giảm giá", nil)
	}

	discount := coupon.Adjustment().Amount(subtotal)
	if discount > subtotal {
		discount = subtotal
	}
	return &coupon, discount, nil
}

// ApplyOverride thay tổng tiền bằng giá nhân viên nhập tay. Chỉ chấp nhận
// khi không thấp hơn một nửa giá tính được; các thành phần trung gian giữ
// nguyên để đối soát.
func ApplyOverride(breakdown *dto.PriceBreakdown, overrideTotal float64) error {
	if overrideTotal < 0.5*breakdown.Total {
		return errors.NewAppError(errors.ErrCodeOverrideTooLow, "Giá nhập tay thấp hơn 50% giá tính toán", nil)
	}
	breakdown.Total = overrideTotal
	breakdown.Overridden = true
	return nil
}
