package services

import (
	"context"
	"time"

	"resort/constants"
	"resort/errors"
	"resort/models"

	"gorm.io/gorm"
)

// AvailabilityService kiểm tra trùng lịch trên khoảng nửa mở [checkIn, checkOut)
type AvailabilityService struct {
	db *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{db: db}
}

// OverlapsRange kiểm tra hai khoảng nửa mở [aStart, aEnd) và [bStart, bEnd)
// có giao nhau không: aStart < bEnd AND bStart < aEnd.
// Hai khoảng kề nhau (aEnd == bStart) không tính là giao.
func OverlapsRange(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

func validateStayRange(checkIn, checkOut time.Time) error {
	if !checkOut.After(checkIn) {
		return errors.NewAppError(errors.ErrCodeInvalidRange, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}
	return nil
}

// IsUnitAvailable kiểm tra một phòng có trống trong khoảng [checkIn, checkOut) không
func (s *AvailabilityService) IsUnitAvailable(ctx context.Context, unitID uint, checkIn, checkOut time.Time) (bool, error) {
	if err := validateStayRange(checkIn, checkOut); err != nil {
		return false, err
	}

	var unit models.Unit
	if err := s.db.WithContext(ctx).Where("unit_id = ? AND enabled = ?", unitID, true).First(&unit).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return false, errors.NewAppError(errors.ErrCodeUnitNotFound, "Không tìm thấy phòng", err)
		}
		return false, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn phòng", err)
	}
	if unit.Status != constants.UnitStatusAvailable {
		return false, nil
	}

	return unitFreeInRange(s.db.WithContext(ctx), unitID, checkIn, checkOut)
}

// unitFreeInRange chạy phép kiểm tra giao khoảng trên cả reservation đang giữ
// phòng lẫn block vận hành. Dùng chung cho đường đọc và đường ghi (gọi lại
// trong transaction với tx thay cho db).
func unitFreeInRange(tx *gorm.DB, unitID uint, checkIn, checkOut time.Time) (bool, error) {
	var reservationCount int64
	if err := tx.Model(&models.Reservation{}).
		Where("unit_id = ? AND status IN ? AND check_in_date < ? AND check_out_date > ?",
			unitID, models.BlockingStatuses, checkOut, checkIn).
		Count(&reservationCount).Error; err != nil {
		return false, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn reservation", err)
	}
	if reservationCount > 0 {
		return false, nil
	}

	var blockCount int64
	if err := tx.Model(&models.UnavailabilityBlock{}).
		Where("unit_id = ? AND from_date < ? AND to_date > ?", unitID, checkOut, checkIn).
		Count(&blockCount).Error; err != nil {
		return false, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn block", err)
	}
	return blockCount == 0, nil
}

// FindAvailableUnits liệt kê các phòng trống của một loại phòng trong khoảng ngày
func (s *AvailabilityService) FindAvailableUnits(ctx context.Context, unitTypeID uint, checkIn, checkOut time.Time) ([]models.Unit, error) {
	if err := validateStayRange(checkIn, checkOut); err != nil {
		return nil, err
	}

	var unitType models.UnitType
	if err := s.db.WithContext(ctx).First(&unitType, unitTypeID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewAppError(errors.ErrCodeUnitTypeNotFound, "Không tìm thấy loại phòng", err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn loại phòng", err)
	}

	// Chỉ phòng enabled và đang ở trạng thái vận hành sẵn sàng mới là ứng
	// viên; trong phép xét trùng lịch thì chỉ lịch đặt và block quyết định
	var units []models.Unit
	if err := s.db.WithContext(ctx).
		Where("unit_type_id = ? AND enabled = ? AND status = ?", unitTypeID, true, constants.UnitStatusAvailable).
		Find(&units).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn danh sách phòng", err)
	}

	available := make([]models.Unit, 0, len(units))
	for _, unit := range units {
		free, err := unitFreeInRange(s.db.WithContext(ctx), unit.UnitID, checkIn, checkOut)
		if err != nil {
			return nil, err
		}
		if free {
			available = append(available, unit)
		}
	}
	return available, nil
}

// CountAvailable đếm số phòng trống của một loại phòng, dùng cho trang tìm kiếm.
// Loại phòng chỉ được liệt kê khi count > 0.
func (s *AvailabilityService) CountAvailable(ctx context.Context, unitTypeID uint, checkIn, checkOut time.Time) (int, error) {
	units, err := s.FindAvailableUnits(ctx, unitTypeID, checkIn, checkOut)
	if err != nil {
		return 0, err
	}
	return len(units), nil
}
