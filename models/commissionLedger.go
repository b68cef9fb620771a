package models

import "time"

// Ledger entry type
const (
	LedgerTypeCommission = 0
	LedgerTypePayout     = 1
)

// CommissionLedgerEntry là sổ cái hoa hồng, chỉ ghi thêm không sửa
type CommissionLedgerEntry struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	PartnerID     uint      `json:"partnerId" gorm:"index"`
	Partner       Partner   `json:"partner" gorm:"foreignKey:PartnerID"`
	ReservationID *uint     `json:"reservationId"`
	Amount        float64   `json:"amount"`
	Points        int64     `json:"points"`
	Type          int       `json:"type"` // 0: hoa hồng, 1: chi trả
	Description   string    `json:"description"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
