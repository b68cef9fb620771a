package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"resort/models"
	"resort/services/logger"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.UnitType{},
		&models.Unit{},
		&models.Reservation{},
		&models.UnavailabilityBlock{},
		&models.RateRule{},
		&models.Coupon{},
		&models.Payment{},
		&models.IncomeRecord{},
		&models.Partner{},
		&models.CommissionLedgerEntry{},
		&models.Ticket{},
	))

	return db
}

func testLogger() logger.Logger {
	return logger.NewDefaultLogger(logger.ErrorLevel)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// seedUnitType tạo loại phòng chuẩn dùng chung cho các test:
// giá cơ bản 3000 một đêm, phụ thu người lớn 800, trẻ em 400, miễn phí 1 trẻ
func seedUnitType(t *testing.T, db *gorm.DB) models.UnitType {
	t.Helper()

	unitType := models.UnitType{
		Name:            "Deluxe",
		BasePrice:       3000,
		ExtraAdultPrice: 800,
		ExtraChildPrice: 400,
		FreeChildren:    1,
		MaxAdults:       4,
		MaxChildren:     3,
		Visible:         true,
	}
	require.NoError(t, db.Create(&unitType).Error)
	return unitType
}

func seedUnit(t *testing.T, db *gorm.DB, unitTypeID uint) models.Unit {
	t.Helper()

	unit := models.Unit{
		UnitTypeID: unitTypeID,
		UnitName:   "P101",
		Floor:      1,
		Enabled:    true,
	}
	require.NoError(t, db.Create(&unit).Error)
	return unit
}
