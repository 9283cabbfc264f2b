package service

import "errors"

// ErrSeatUnavailable is the transient failure surfaced from
// CreateBooking: either the simulated backend rejected the request or
// a selected seat turned out to be occupied on the final check.  The
// caller should refresh the seat selection and retry; no booking
// record exists after this error.
var ErrSeatUnavailable = errors.New("seats no longer available")

// ErrPaymentFailed is surfaced from ConfirmPayment when the simulated
// payment leg fails.  The booking stays PENDING with payment status
// FAILED and the same booking id may be retried.
var ErrPaymentFailed = errors.New("payment failed")

// ErrDraftIncomplete is returned when CreateBooking is handed a draft
// that has not passed every stage up to payment.
var ErrDraftIncomplete = errors.New("booking draft is incomplete")
