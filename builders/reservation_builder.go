package builders

import (
	"time"

	"resort/dto"
	"resort/models"
)

// ReservationBuilder giúp dựng reservation theo từng bước
type ReservationBuilder struct {
	reservation *models.Reservation
}

// NewReservationBuilder tạo instance mới của ReservationBuilder
func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		reservation: &models.Reservation{},
	}
}

// WithUser thêm thông tin user
func (b *ReservationBuilder) WithUser(userID *uint) *ReservationBuilder {
	b.reservation.UserID = userID
	return b
}

// WithUnit gán loại phòng và phòng cụ thể
func (b *ReservationBuilder) WithUnit(unitTypeID, unitID uint) *ReservationBuilder {
	b.reservation.UnitTypeID = unitTypeID
	b.reservation.UnitID = unitID
	return b
}

// WithStay gán khoảng lưu trú nửa mở [checkIn, checkOut)
func (b *ReservationBuilder) WithStay(checkIn, checkOut time.Time) *ReservationBuilder {
	b.reservation.CheckInDate = checkIn
	b.reservation.CheckOutDate = checkOut
	return b
}

// WithOccupancy gán số khách
func (b *ReservationBuilder) WithOccupancy(adults, children int) *ReservationBuilder {
	b.reservation.Adults = adults
	b.reservation.Children = children
	return b
}

// WithGuestInfo thêm thông tin khách
func (b *ReservationBuilder) WithGuestInfo(guestName, guestPhone, guestEmail string) *ReservationBuilder {
	b.reservation.GuestName = guestName
	b.reservation.GuestPhone = guestPhone
	b.reservation.GuestEmail = guestEmail
	return b
}

// WithPartner gán đối tác giới thiệu
func (b *ReservationBuilder) WithPartner(partnerID *uint) *ReservationBuilder {
	b.reservation.PartnerID = partnerID
	return b
}

// WithStatus thêm trạng thái
func (b *ReservationBuilder) WithStatus(status int) *ReservationBuilder {
	b.reservation.Status = status
	return b
}

// WithBreakdown chốt bảng giá vào reservation, từ đây không tính lại nữa
func (b *ReservationBuilder) WithBreakdown(breakdown *dto.PriceBreakdown) *ReservationBuilder {
	b.reservation.BaseAmount = breakdown.BaseAmount
	b.reservation.ExtraAdultAmount = breakdown.ExtraAdultAmount
	b.reservation.ExtraChildAmount = breakdown.ExtraChildAmount
	b.reservation.RuleAdjustment = breakdown.RuleAdjustment
	b.reservation.TaxAmount = breakdown.TaxAmount
	b.reservation.DiscountAmount = breakdown.DiscountAmount
	b.reservation.TotalPrice = breakdown.Total
	b.reservation.PriceOverridden = breakdown.Overridden
	b.reservation.CouponID = breakdown.CouponID
	return b
}

// Build tạo reservation hoàn chỉnh
func (b *ReservationBuilder) Build() *models.Reservation {
	return b.reservation
}
