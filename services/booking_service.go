package services

import (
	"context"
	"time"

	"resort/builders"
	"resort/constants"
	"resort/errors"
	"resort/models"
	"resort/services/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookingService tạo reservation và điều khiển vòng đời trạng thái của nó
type BookingService struct {
	db           *gorm.DB
	availability *AvailabilityService
	pricing      *PricingService
	logger       logger.Logger
}

func NewBookingService(db *gorm.DB, availability *AvailabilityService, pricing *PricingService, lg logger.Logger) *BookingService {
	return &BookingService{db: db, availability: availability, pricing: pricing, logger: lg}
}

// lockForUpdate khóa hàng được chọn trong transaction.
// SQLite (dùng trong test) không hỗ trợ FOR UPDATE nhưng transaction của nó
// vốn tuần tự hóa ghi nên bỏ qua được.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// CreateReservationInput là dữ liệu đầu vào tạo reservation.
// UnitID là bước gán phòng bắt buộc trước khi khởi tạo thanh toán.
type CreateReservationInput struct {
	UserID        *uint
	UnitTypeID    uint
	UnitID        uint
	CheckIn       time.Time
	CheckOut      time.Time
	Adults        int
	Children      int
	CouponCode    string
	PartnerID     *uint
	OverrideTotal *float64 // Giá nhân viên nhập tay, nil nếu dùng giá tính toán
	GuestName     string
	GuestEmail    string
	GuestPhone    string
}

// CreateReservation báo giá rồi ghi reservation ở trạng thái chờ thanh toán.
// Toàn bộ kiểm tra trùng lịch và trừ lượt coupon chạy lại bên trong
// transaction với khóa hàng phòng, không tin kết quả đọc trước đó.
func (s *BookingService) CreateReservation(ctx context.Context, in CreateReservationInput) (*models.Reservation, error) {
	breakdown, err := s.pricing.Quote(ctx, QuoteInput{
		UnitTypeID: in.UnitTypeID,
		CheckIn:    in.CheckIn,
		CheckOut:   in.CheckOut,
		Adults:     in.Adults,
		Children:   in.Children,
		CouponCode: in.CouponCode,
	})
	if err != nil {
		return nil, err
	}

	if in.OverrideTotal != nil {
		if err := ApplyOverride(breakdown, *in.OverrideTotal); err != nil {
			return nil, err
		}
	}

	reservation := builders.NewReservationBuilder().
		WithUser(in.UserID).
		WithUnit(in.UnitTypeID, in.UnitID).
		WithStay(in.CheckIn, in.CheckOut).
		WithOccupancy(in.Adults, in.Children).
		WithGuestInfo(in.GuestName, in.GuestPhone, in.GuestEmail).
		WithPartner(in.PartnerID).
		WithBreakdown(breakdown).
		WithStatus(models.ReservationStatusPendingPayment).
		Build()

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Khóa hàng phòng để hai booking cùng lúc không cùng vượt qua
		// phép kiểm tra trùng lịch
		var unit models.Unit
		if err := lockForUpdate(tx).Where("unit_id = ? AND enabled = ?", in.UnitID, true).First(&unit).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.NewAppError(errors.ErrCodeUnitNotFound, "Không tìm thấy phòng", err)
			}
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn phòng", err)
		}
		if unit.UnitTypeID != in.UnitTypeID {
			return errors.NewAppError(errors.ErrCodeValidation, "Phòng không thuộc loại phòng đã chọn", nil)
		}
		if unit.Status != constants.UnitStatusAvailable {
			return errors.NewAppError(errors.ErrCodeNoAvailability, "Phòng không ở trạng thái sẵn sàng nhận đặt", nil)
		}

		free, err := unitFreeInRange(tx, in.UnitID, in.CheckIn, in.CheckOut)
		if err != nil {
			return err
		}
		if !free {
			return errors.NewAppError(errors.ErrCodeNoAvailability, "Phòng đã được đặt hoặc bị chặn trong khoảng thời gian này", nil)
		}

		if breakdown.CouponID != nil {
			// Trừ lượt dùng bằng UPDATE có điều kiện để không vượt maxUses
			// khi nhiều người cùng dùng một mã
			res := tx.Model(&models.Coupon{}).
				Where("id = ? AND used_count < max_uses", *breakdown.CouponID).
				UpdateColumn("used_count", gorm.Expr("used_count + 1"))
			if res.Error != nil {
				return errors.NewAppError(errors.ErrCodeDBError, "Lỗi cập nhật lượt dùng coupon", res.Error)
			}
			if res.RowsAffected == 0 {
				return errors.NewAppError(errors.ErrCodeCouponExhausted, "Mã giảm giá đã hết lượt sử dụng", nil)
			}
		}

		if err := tx.Create(reservation).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi tạo reservation", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Tạo reservation %d cho phòng %d [%s, %s)", reservation.ID, reservation.UnitID,
		reservation.CheckInDate.Format("2006-01-02"), reservation.CheckOutDate.Format("2006-01-02"))
	return reservation, nil
}

// transition khóa reservation rồi áp dụng một phép chuyển trạng thái
// qua state machine
func (s *BookingService) transition(ctx context.Context, reservationID uint, op func(models.ReservationState, *models.Reservation) error) (*models.Reservation, error) {
	var reservation models.Reservation
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).First(&reservation, reservationID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.NewAppError(errors.ErrCodeNotFound, "Không tìm thấy reservation", err)
			}
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn reservation", err)
		}

		state := models.GetReservationState(reservation.Status)
		if err := op(state, &reservation); err != nil {
			return errors.NewAppError(errors.ErrCodeInvalidTransition, err.Error(), err)
		}

		if err := tx.Save(&reservation).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi cập nhật reservation", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

// CheckIn chuyển reservation sang trạng thái đã nhận phòng
func (s *BookingService) CheckIn(ctx context.Context, reservationID uint) (*models.Reservation, error) {
	return s.transition(ctx, reservationID, func(state models.ReservationState, r *models.Reservation) error {
		return state.CheckIn(r)
	})
}

// CheckOut chuyển reservation sang trạng thái đã trả phòng
func (s *BookingService) CheckOut(ctx context.Context, reservationID uint) (*models.Reservation, error) {
	return s.transition(ctx, reservationID, func(state models.ReservationState, r *models.Reservation) error {
		return state.CheckOut(r)
	})
}

// Cancel hủy reservation, trả phòng về quỹ trống
func (s *BookingService) Cancel(ctx context.Context, reservationID uint) (*models.Reservation, error) {
	return s.transition(ctx, reservationID, func(state models.ReservationState, r *models.Reservation) error {
		return state.Cancel(r)
	})
}

// ReleaseExpired hủy các reservation còn chờ thanh toán quá hạn ttl,
// được gọi từ job quét định kỳ. Trả về số đơn đã giải phóng.
func (s *BookingService) ReleaseExpired(ctx context.Context, ttl time.Duration) (int, error) {
	cutoff := time.Now().Add(-ttl)

	var expired []models.Reservation
	if err := s.db.WithContext(ctx).
		Where("status = ? AND created_at < ?", models.ReservationStatusPendingPayment, cutoff).
		Find(&expired).Error; err != nil {
		return 0, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn reservation quá hạn", err)
	}

	released := 0
	for _, r := range expired {
		if _, err := s.Cancel(ctx, r.ID); err != nil {
			// Đơn có thể vừa được thanh toán giữa lúc quét, bỏ qua
			s.logger.Warn("Không giải phóng được reservation %d: %v", r.ID, err)
			continue
		}
		released++
	}

	if released > 0 {
		s.logger.Info("Đã giải phóng %d reservation quá hạn thanh toán", released)
	}
	return released, nil
}

// CreateBlock chặn lịch một phòng. Ghi block cũng phải kiểm tra lại trùng
// lịch với reservation đang giữ phòng ngay tại thời điểm ghi.
func (s *BookingService) CreateBlock(ctx context.Context, unitID uint, from, to time.Time, reason string) (*models.UnavailabilityBlock, error) {
	if err := validateStayRange(from, to); err != nil {
		return nil, err
	}

	block := models.UnavailabilityBlock{
		UnitID:   unitID,
		FromDate: from,
		ToDate:   to,
		Reason:   reason,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var unit models.Unit
		if err := lockForUpdate(tx).Where("unit_id = ?", unitID).First(&unit).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.NewAppError(errors.ErrCodeUnitNotFound, "Không tìm thấy phòng", err)
			}
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn phòng", err)
		}

		var reservationCount int64
		if err := tx.Model(&models.Reservation{}).
			Where("unit_id = ? AND status IN ? AND check_in_date < ? AND check_out_date > ?",
				unitID, models.BlockingStatuses, to, from).
			Count(&reservationCount).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn reservation", err)
		}
		if reservationCount > 0 {
			return errors.NewAppError(errors.ErrCodeNoAvailability, "Khoảng thời gian này đã có khách đặt", nil)
		}

		if err := tx.Create(&block).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi tạo block", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &block, nil
}

// DeleteBlock gỡ block vận hành
func (s *BookingService) DeleteBlock(ctx context.Context, blockID uint) error {
	res := s.db.WithContext(ctx).Delete(&models.UnavailabilityBlock{}, blockID)
	if res.Error != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Lỗi xóa block", res.Error)
	}
	if res.RowsAffected == 0 {
		return errors.NewAppError(errors.ErrCodeNotFound, "Không tìm thấy block", nil)
	}
	return nil
}
