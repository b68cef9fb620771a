package services

import (
	"context"
	"testing"
	"time"

	"resort/constants"
	"resort/errors"
	"resort/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newBookingFixture(t *testing.T) (*BookingService, *gorm.DB, models.UnitType, models.Unit) {
	t.Helper()

	db := newTestDB(t)
	unitType := seedUnitType(t, db)
	unit := seedUnit(t, db, unitType.ID)

	lg := testLogger()
	availability := NewAvailabilityService(db)
	svc := NewBookingService(db, availability, NewPricingService(db, availability, 0.18, lg), lg)
	return svc, db, unitType, unit
}

func baseReservationInput(unitTypeID, unitID uint) CreateReservationInput {
	return CreateReservationInput{
		UnitTypeID: unitTypeID,
		UnitID:     unitID,
		CheckIn:    date(2026, time.September, 1),
		CheckOut:   date(2026, time.September, 5),
		Adults:     2,
		Children:   2,
		GuestName:  "Chị Hoa",
		GuestPhone: "0911222333",
	}
}

func TestCreateReservation(t *testing.T) {
	svc, db, unitType, unit := newBookingFixture(t)

	reservation, err := svc.CreateReservation(context.Background(), baseReservationInput(unitType.ID, unit.UnitID))
	require.NoError(t, err)

	assert.Equal(t, models.ReservationStatusPendingPayment, reservation.Status)
	assert.Equal(t, 16800.0, reservation.BaseAmount+reservation.ExtraAdultAmount+reservation.ExtraChildAmount)
	assert.InDelta(t, 19824.0, reservation.TotalPrice, 1e-9)
	assert.False(t, reservation.PriceOverridden)

	var count int64
	require.NoError(t, db.Model(&models.Reservation{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreateReservationDoubleBooking(t *testing.T) {
	svc, _, unitType, unit := newBookingFixture(t)
	ctx := context.Background()

	_, err := svc.CreateReservation(ctx, baseReservationInput(unitType.ID, unit.UnitID))
	require.NoError(t, err)

	// Cùng phòng, khoảng ngày giao nhau
	in := baseReservationInput(unitType.ID, unit.UnitID)
	in.CheckIn = date(2026, time.September, 3)
	in.CheckOut = date(2026, time.September, 7)

	_, err = svc.CreateReservation(ctx, in)
	assert.True(t, errors.IsCode(err, errors.ErrCodeNoAvailability))

	// Nhận phòng đúng ngày đơn trước trả thì vẫn đặt được
	in.CheckIn = date(2026, time.September, 5)
	in.CheckOut = date(2026, time.September, 8)
	_, err = svc.CreateReservation(ctx, in)
	assert.NoError(t, err)
}

func TestCreateReservationWrongUnitType(t *testing.T) {
	svc, db, _, unit := newBookingFixture(t)

	other := models.UnitType{Name: "Suite", BasePrice: 9000, MaxAdults: 2, MaxChildren: 2, Visible: true}
	require.NoError(t, db.Create(&other).Error)
	suiteUnit := models.Unit{UnitTypeID: other.ID, UnitName: "S201", Floor: 2, Enabled: true}
	require.NoError(t, db.Create(&suiteUnit).Error)

	// Báo giá theo loại Suite nhưng gán phòng của loại khác
	in := baseReservationInput(other.ID, unit.UnitID)
	_, err := svc.CreateReservation(context.Background(), in)
	assert.True(t, errors.IsCode(err, errors.ErrCodeValidation))
}

func TestCreateReservationUnitUnderMaintenance(t *testing.T) {
	svc, db, unitType, unit := newBookingFixture(t)

	require.NoError(t, db.Model(&models.Unit{}).Where("unit_id = ?", unit.UnitID).
		UpdateColumn("status", constants.UnitStatusMaintenance).Error)

	_, err := svc.CreateReservation(context.Background(), baseReservationInput(unitType.ID, unit.UnitID))
	assert.True(t, errors.IsCode(err, errors.ErrCodeNoAvailability))
}

func TestCreateReservationCouponRedemption(t *testing.T) {
	svc, db, unitType, unit := newBookingFixture(t)
	ctx := context.Background()

	coupon := models.Coupon{
		Code:     "MOT-LUOT",
		Kind:     models.AdjustmentPercentage,
		Value:    10,
		FromDate: "01/01/2020",
		ToDate:   "31/12/2099",
		MaxUses:  1,
		Status:   1,
	}
	require.NoError(t, db.Create(&coupon).Error)

	in := baseReservationInput(unitType.ID, unit.UnitID)
	in.CouponCode = "MOT-LUOT"

	reservation, err := svc.CreateReservation(ctx, in)
	require.NoError(t, err)
	require.NotNil(t, reservation.CouponID)
	assert.Equal(t, 1680.0, reservation.DiscountAmount)

	var fresh models.Coupon
	require.NoError(t, db.First(&fresh, coupon.ID).Error)
	assert.Equal(t, 1, fresh.UsedCount)

	// Hết lượt thì đơn sau không đặt được bằng mã này
	in2 := baseReservationInput(unitType.ID, unit.UnitID)
	in2.CheckIn = date(2026, time.October, 1)
	in2.CheckOut = date(2026, time.October, 3)
	in2.CouponCode = "MOT-LUOT"

	_, err = svc.CreateReservation(ctx, in2)
	assert.True(t, errors.IsCode(err, errors.ErrCodeCouponExhausted))
}

func TestCreateReservationWithOverride(t *testing.T) {
	svc, _, unitType, unit := newBookingFixture(t)
	ctx := context.Background()

	override := 15000.0
	in := baseReservationInput(unitType.ID, unit.UnitID)
	in.OverrideTotal = &override

	reservation, err := svc.CreateReservation(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, 15000.0, reservation.TotalPrice)
	assert.True(t, reservation.PriceOverridden)

	// Dưới nửa giá tính toán thì từ chối
	tooLow := 5000.0
	in2 := baseReservationInput(unitType.ID, unit.UnitID)
	in2.CheckIn = date(2026, time.October, 1)
	in2.CheckOut = date(2026, time.October, 5)
	in2.OverrideTotal = &tooLow

	_, err = svc.CreateReservation(ctx, in2)
	assert.True(t, errors.IsCode(err, errors.ErrCodeOverrideTooLow))
}

func TestReservationLifecycle(t *testing.T) {
	svc, db, unitType, unit := newBookingFixture(t)
	ctx := context.Background()

	reservation, err := svc.CreateReservation(ctx, baseReservationInput(unitType.ID, unit.UnitID))
	require.NoError(t, err)

	// Chưa thanh toán thì không cho nhận phòng
	_, err = svc.CheckIn(ctx, reservation.ID)
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidTransition))

	require.NoError(t, db.Model(&models.Reservation{}).Where("id = ?", reservation.ID).
		UpdateColumn("status", models.ReservationStatusConfirmed).Error)

	checkedIn, err := svc.CheckIn(ctx, reservation.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReservationStatusCheckedIn, checkedIn.Status)

	checkedOut, err := svc.CheckOut(ctx, reservation.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReservationStatusCheckedOut, checkedOut.Status)

	// Đơn đã trả phòng không hủy được nữa
	_, err = svc.Cancel(ctx, reservation.ID)
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidTransition))
}

func TestCancelReleasesUnit(t *testing.T) {
	svc, _, unitType, unit := newBookingFixture(t)
	ctx := context.Background()

	reservation, err := svc.CreateReservation(ctx, baseReservationInput(unitType.ID, unit.UnitID))
	require.NoError(t, err)

	cancelled, err := svc.Cancel(ctx, reservation.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReservationStatusCancelled, cancelled.Status)

	// Phòng lại trống cho khoảng ngày cũ
	_, err = svc.CreateReservation(ctx, baseReservationInput(unitType.ID, unit.UnitID))
	assert.NoError(t, err)
}

func TestReleaseExpired(t *testing.T) {
	svc, db, unitType, unit := newBookingFixture(t)
	ctx := context.Background()

	stale, err := svc.CreateReservation(ctx, baseReservationInput(unitType.ID, unit.UnitID))
	require.NoError(t, err)

	freshIn := baseReservationInput(unitType.ID, unit.UnitID)
	freshIn.CheckIn = date(2026, time.October, 1)
	freshIn.CheckOut = date(2026, time.October, 3)
	fresh, err := svc.CreateReservation(ctx, freshIn)
	require.NoError(t, err)

	// Đẩy lùi thời điểm tạo của đơn cũ quá hạn giữ chỗ
	require.NoError(t, db.Model(&models.Reservation{}).Where("id = ?", stale.ID).
		UpdateColumn("created_at", time.Now().Add(-2*time.Hour)).Error)

	released, err := svc.ReleaseExpired(ctx, 30*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, released)

	var staleFresh, freshFresh models.Reservation
	require.NoError(t, db.First(&staleFresh, stale.ID).Error)
	require.NoError(t, db.First(&freshFresh, fresh.ID).Error)
	assert.Equal(t, models.ReservationStatusCancelled, staleFresh.Status)
	assert.Equal(t, models.ReservationStatusPendingPayment, freshFresh.Status)
}

func TestCreateBlock(t *testing.T) {
	svc, _, unitType, unit := newBookingFixture(t)
	ctx := context.Background()

	block, err := svc.CreateBlock(ctx, unit.UnitID, date(2026, time.September, 10), date(2026, time.September, 12), "Bảo trì điều hòa")
	require.NoError(t, err)
	assert.NotZero(t, block.ID)

	// Không chặn được khoảng đã có khách giữ phòng
	_, err = svc.CreateReservation(ctx, baseReservationInput(unitType.ID, unit.UnitID))
	require.NoError(t, err)

	_, err = svc.CreateBlock(ctx, unit.UnitID, date(2026, time.September, 4), date(2026, time.September, 6), "Bảo trì")
	assert.True(t, errors.IsCode(err, errors.ErrCodeNoAvailability))

	// Hai block giao nhau thì vẫn cho phép, chỉ là cùng một lý do vận hành
	_, err = svc.CreateBlock(ctx, unit.UnitID, date(2026, time.September, 11), date(2026, time.September, 13), "Sơn tường")
	assert.NoError(t, err)

	require.NoError(t, svc.DeleteBlock(ctx, block.ID))
	err = svc.DeleteBlock(ctx, block.ID)
	assert.True(t, errors.IsCode(err, errors.ErrCodeNotFound))
}

func TestCreateBlockOverlapWithReservationBlocksBooking(t *testing.T) {
	svc, _, unitType, unit := newBookingFixture(t)
	ctx := context.Background()

	_, err := svc.CreateBlock(ctx, unit.UnitID, date(2026, time.September, 3), date(2026, time.September, 6), "Bảo trì")
	require.NoError(t, err)

	_, err = svc.CreateReservation(ctx, baseReservationInput(unitType.ID, unit.UnitID))
	assert.True(t, errors.IsCode(err, errors.ErrCodeNoAvailability))
}
