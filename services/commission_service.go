package services

import (
	"context"
	"math"

	"resort/constants"
	"resort/errors"
	"resort/models"
	"resort/services/logger"

	"gorm.io/gorm"
)

// CommissionService chia hoa hồng cho đối tác giới thiệu khi đơn được xác nhận
type CommissionService struct {
	db        *gorm.DB
	pointUnit float64 // Số tiền quy đổi ra một điểm thưởng
	logger    logger.Logger
}

func NewCommissionService(db *gorm.DB, pointUnit float64, lg logger.Logger) *CommissionService {
	if pointUnit <= 0 {
		pointUnit = 100
	}
	return &CommissionService{db: db, pointUnit: pointUnit, logger: lg}
}

// ConfirmationHook gói Apply thành hook gắn vào luồng xác nhận thanh toán,
// chỉ chạy với đơn có đối tác giới thiệu
func (s *CommissionService) ConfirmationHook() ConfirmationHook {
	return func(tx *gorm.DB, r *models.Reservation) error {
		if r.PartnerID == nil {
			return nil
		}
		_, err := s.Apply(tx, r.ID, *r.PartnerID, r.TotalPrice)
		return err
	}
}

// CommissionResult là kết quả chia hoa hồng
type CommissionResult struct {
	Commission float64 `json:"commission"`
	Points     int64   `json:"points"`
}

// Apply chia hoa hồng trong transaction tx đang mở của luồng xác nhận đơn:
// cộng dồn cho đối tác, ghi sổ cái và đóng dấu số hoa hồng lên reservation.
// Đối tác không còn hoạt động thì bỏ qua trong im lặng, đây là chính sách
// kinh doanh chứ không phải lỗi.
func (s *CommissionService) Apply(tx *gorm.DB, reservationID, partnerID uint, bookingAmount float64) (*CommissionResult, error) {
	var partner models.Partner
	if err := lockForUpdate(tx).First(&partner, partnerID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			s.logger.Warn("Không tìm thấy đối tác %d khi chia hoa hồng cho reservation %d", partnerID, reservationID)
			return nil, nil
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn đối tác", err)
	}

	if partner.Status != constants.StatusActive {
		return nil, nil
	}

	commission := bookingAmount * partner.CommissionRate / 100
	points := int64(math.Floor(bookingAmount / s.pointUnit))

	if err := tx.Model(&models.Partner{}).Where("id = ?", partner.ID).
		UpdateColumns(map[string]interface{}{
			"total_earned": gorm.Expr("total_earned + ?", commission),
			"points":       gorm.Expr("points + ?", points),
		}).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi cộng hoa hồng cho đối tác", err)
	}

	entry := models.CommissionLedgerEntry{
		PartnerID:     partner.ID,
		ReservationID: &reservationID,
		Amount:        commission,
		Points:        points,
		Type:          models.LedgerTypeCommission,
		Description:   "Hoa hồng giới thiệu",
	}
	if err := tx.Create(&entry).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi ghi sổ hoa hồng", err)
	}

	if err := tx.Model(&models.Reservation{}).Where("id = ?", reservationID).
		UpdateColumn("commission_amount", commission).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi đóng dấu hoa hồng lên reservation", err)
	}

	return &CommissionResult{Commission: commission, Points: points}, nil
}

// Payout ghi nhận chi trả hoa hồng cho đối tác, trừ vào số dư tích lũy.
// UPDATE có điều kiện để số dư không âm khi chi trả đồng thời.
func (s *CommissionService) Payout(ctx context.Context, partnerID uint, amount float64, note string) (*models.CommissionLedgerEntry, error) {
	if amount <= 0 {
		return nil, errors.NewAppError(errors.ErrCodeInvalidAmount, "Số tiền chi trả phải dương", nil)
	}

	var entry models.CommissionLedgerEntry
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Partner{}).
			Where("id = ? AND total_earned >= ?", partnerID, amount).
			UpdateColumn("total_earned", gorm.Expr("total_earned - ?", amount))
		if res.Error != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi trừ số dư đối tác", res.Error)
		}
		if res.RowsAffected == 0 {
			return errors.NewAppError(errors.ErrCodeInvalidAmount, "Số dư đối tác không đủ để chi trả", nil)
		}

		entry = models.CommissionLedgerEntry{
			PartnerID:   partnerID,
			Amount:      -amount,
			Type:        models.LedgerTypePayout,
			Description: note,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi ghi sổ chi trả", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}
