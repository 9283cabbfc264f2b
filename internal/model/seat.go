package model

import "fmt"

// SeatType classifies a seat and determines its price.  The hall
// layout assigns a type per row: front rows are standard, middle
// rows premium and the back rows VIP.
type SeatType string

const (
	SeatStandard SeatType = "standard"
	SeatPremium  SeatType = "premium"
	SeatVIP      SeatType = "vip"
)

// SeatStatus describes how a seat appears in a seat map for a
// particular showtime.  OCCUPIED is a read-only fact produced by the
// availability generator; SELECTED exists only inside a draft until
// the booking is finalized.
type SeatStatus string

const (
	SeatAvailable SeatStatus = "available"
	SeatSelected  SeatStatus = "selected"
	SeatOccupied  SeatStatus = "occupied"
	SeatReserved  SeatStatus = "reserved"
)

// Seat describes a single seat in the hall for a given showtime.
//
// Fields:
//  ID         – row label plus seat number, e.g. "A1".
//  RowLabel   – letter designating the row.
//  SeatNumber – number of the seat within the row (1-based).
//  Type       – standard, premium or vip.
//  Status     – availability for the showtime being viewed.
//  PriceCents – price derived from the seat type, in cents.
type Seat struct {
	ID         string     `json:"id"`
	RowLabel   string     `json:"row_label"`
	SeatNumber int        `json:"seat_number"`
	Type       SeatType   `json:"type"`
	Status     SeatStatus `json:"status"`
	PriceCents uint32     `json:"price_cents"`
}

// SeatID builds the canonical seat identifier from a row label and a
// 1-based seat number.
func SeatID(row string, number int) string {
	return fmt.Sprintf("%s%d", row, number)
}
