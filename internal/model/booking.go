package model

import "time"

// BookingStatus is the lifecycle state of a finalized booking.
// Bookings are created PENDING, move to CONFIRMED when payment
// succeeds and to CANCELLED on cancellation.  Records are never
// deleted.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// PaymentStatus tracks the payment leg independently of the booking
// status.  A failed payment leaves the booking PENDING so the caller
// can retry with the same booking id.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// CustomerInfo carries the contact details collected during the info
// stage of the draft.  All three fields are validated before they are
// accepted into a draft.
type CustomerInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Booking is a finalized reservation of seats for a showtime.  It is
// immutable once created except for Status and PaymentStatus.
//
// Fields:
//  ID               – unique id allocated at creation.
//  MovieID          – movie in the external catalog.
//  Date             – screening date, e.g. "2024-06-01".
//  Showtime         – screening time label, e.g. "7:30 PM".
//  Seats            – seat ids, sorted, e.g. ["A1","A2"].
//  Customer         – contact details from the draft.
//  TotalAmountCents – sum of the per-seat prices.
//  Status           – pending, confirmed or cancelled.
//  PaymentStatus    – pending, paid or failed.
//  CreatedAt        – creation timestamp in UTC.
type Booking struct {
	ID               string        `json:"id"`
	MovieID          uint64        `json:"movie_id"`
	Date             string        `json:"date"`
	Showtime         string        `json:"showtime"`
	Seats            []string      `json:"seats"`
	Customer         CustomerInfo  `json:"customer"`
	TotalAmountCents uint32        `json:"total_amount_cents"`
	Status           BookingStatus `json:"status"`
	PaymentStatus    PaymentStatus `json:"payment_status"`
	CreatedAt        time.Time     `json:"created_at"`
}

// Clone returns a deep copy so callers can hand bookings across
// store boundaries without sharing the seats slice.
func (b *Booking) Clone() *Booking {
	cp := *b
	cp.Seats = append([]string(nil), b.Seats...)
	return &cp
}
