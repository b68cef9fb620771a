package models

import "errors"

// ReservationState định nghĩa interface cho các trạng thái reservation
type ReservationState interface {
	Confirm(r *Reservation) error
	CheckIn(r *Reservation) error
	CheckOut(r *Reservation) error
	Cancel(r *Reservation) error
	Refund(r *Reservation) error
}

// PendingPaymentState trạng thái chờ thanh toán
type PendingPaymentState struct{}

func (s *PendingPaymentState) Confirm(r *Reservation) error {
	r.Status = ReservationStatusConfirmed
	return nil
}

func (s *PendingPaymentState) CheckIn(r *Reservation) error {
	return errors.New("cannot check in before payment")
}

func (s *PendingPaymentState) CheckOut(r *Reservation) error {
	return errors.New("cannot check out before payment")
}

func (s *PendingPaymentState) Cancel(r *Reservation) error {
	r.Status = ReservationStatusCancelled
	return nil
}

func (s *PendingPaymentState) Refund(r *Reservation) error {
	return errors.New("cannot refund unpaid reservation")
}

// ConfirmedState trạng thái đã xác nhận
type ConfirmedState struct{}

func (s *ConfirmedState) Confirm(r *Reservation) error {
	return errors.New("reservation already confirmed")
}

func (s *ConfirmedState) CheckIn(r *Reservation) error {
	r.Status = ReservationStatusCheckedIn
	return nil
}

func (s *ConfirmedState) CheckOut(r *Reservation) error {
	return errors.New("cannot check out before check in")
}

func (s *ConfirmedState) Cancel(r *Reservation) error {
	r.Status = ReservationStatusCancelled
	return nil
}

func (s *ConfirmedState) Refund(r *Reservation) error {
	r.Status = ReservationStatusRefunded
	return nil
}

// CheckedInState trạng thái đã nhận phòng
type CheckedInState struct{}

func (s *CheckedInState) Confirm(r *Reservation) error {
	return errors.New("reservation already confirmed")
}

func (s *CheckedInState) CheckIn(r *Reservation) error {
	return errors.New("reservation already checked in")
}

func (s *CheckedInState) CheckOut(r *Reservation) error {
	r.Status = ReservationStatusCheckedOut
	return nil
}

func (s *CheckedInState) Cancel(r *Reservation) error {
	r.Status = ReservationStatusCancelled
	return nil
}

func (s *CheckedInState) Refund(r *Reservation) error {
	r.Status = ReservationStatusRefunded
	return nil
}

// CheckedOutState trạng thái đã trả phòng (kết thúc)
type CheckedOutState struct{}

func (s *CheckedOutState) Confirm(r *Reservation) error {
	return errors.New("reservation already checked out")
}

func (s *CheckedOutState) CheckIn(r *Reservation) error {
	return errors.New("reservation already checked out")
}

func (s *CheckedOutState) CheckOut(r *Reservation) error {
	return errors.New("reservation already checked out")
}

func (s *CheckedOutState) Cancel(r *Reservation) error {
	return errors.New("cannot cancel checked out reservation")
}

func (s *CheckedOutState) Refund(r *Reservation) error {
	return errors.New("cannot refund checked out reservation")
}

// CancelledState trạng thái đã hủy (kết thúc)
type CancelledState struct{}

func (s *CancelledState) Confirm(r *Reservation) error {
	return errors.New("cannot confirm cancelled reservation")
}

func (s *CancelledState) CheckIn(r *Reservation) error {
	return errors.New("cannot check in cancelled reservation")
}

func (s *CancelledState) CheckOut(r *Reservation) error {
	return errors.New("cannot check out cancelled reservation")
}

func (s *CancelledState) Cancel(r *Reservation) error {
	return errors.New("reservation already cancelled")
}

func (s *CancelledState) Refund(r *Reservation) error {
	return errors.New("cannot refund cancelled reservation")
}

// RefundedState trạng thái đã hoàn tiền (kết thúc)
type RefundedState struct{}

func (s *RefundedState) Confirm(r *Reservation) error {
	return errors.New("cannot confirm refunded reservation")
}

func (s *RefundedState) CheckIn(r *Reservation) error {
	return errors.New("cannot check in refunded reservation")
}

func (s *RefundedState) CheckOut(r *Reservation) error {
	return errors.New("cannot check out refunded reservation")
}

func (s *RefundedState) Cancel(r *Reservation) error {
	return errors.New("reservation already refunded")
}

func (s *RefundedState) Refund(r *Reservation) error {
	return errors.New("reservation already refunded")
}

// GetReservationState trả về state tương ứng với trạng thái reservation
func GetReservationState(status int) ReservationState {
	switch status {
	case ReservationStatusPendingPayment:
		return &PendingPaymentState{}
	case ReservationStatusConfirmed:
		return &ConfirmedState{}
	case ReservationStatusCheckedIn:
		return &CheckedInState{}
	case ReservationStatusCheckedOut:
		return &CheckedOutState{}
	case ReservationStatusCancelled:
		return &CancelledState{}
	case ReservationStatusRefunded:
		return &RefundedState{}
	default:
		return &PendingPaymentState{}
	}
}
