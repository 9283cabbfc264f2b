// Package queue defines the message payloads exchanged over the
// broker and the background consumer that drains them.
package queue

// BookingConfirmedEvent is published when a booking's payment is
// settled.  It carries enough for downstream consumers to log or
// notify without reading the record store.
type BookingConfirmedEvent struct {
	BookingID        string   `json:"booking_id"`
	MovieID          uint64   `json:"movie_id"`
	Date             string   `json:"date"`
	Showtime         string   `json:"showtime"`
	Seats            []string `json:"seats"`
	CustomerEmail    string   `json:"customer_email"`
	TotalAmountCents uint32   `json:"total_amount_cents"`
	ConfirmedAt      string   `json:"confirmed_at"`
}
