package seatmap

import (
	"github.com/screenseat/movie-booking/internal/model"
)

// Layout describes the single demo hall: 8 rows of 12 seats.  Row
// letters double as the first part of the seat id, so seat ids run
// A1..H12.  Seat types and prices are assigned per row band.
var rowLabels = []string{"A", "B", "C", "D", "E", "F", "G", "H"}

const seatsPerRow = 12

// Price per seat type in cents.
const (
	priceStandardCents uint32 = 1200
	pricePremiumCents  uint32 = 1800
	priceVIPCents      uint32 = 2500
)

// Generator produces the taken-seat set for a showtime.  MinTaken and
// MaxTaken bound the nominal number of occupied seats; collisions
// during selection are skipped rather than retried, so the actual
// count may come out slightly lower.
type Generator struct {
	MinTaken int
	MaxTaken int
}

// NewGenerator returns a Generator with the given occupancy bounds.
// Bounds are clamped to the hall size and to each other so a
// misconfigured environment cannot produce a panic.
func NewGenerator(minTaken, maxTaken int) *Generator {
	total := TotalSeats()
	if minTaken < 0 {
		minTaken = 0
	}
	if minTaken > total {
		minTaken = total
	}
	if maxTaken > total {
		maxTaken = total
	}
	if maxTaken < minTaken {
		maxTaken = minTaken
	}
	return &Generator{MinTaken: minTaken, MaxTaken: maxTaken}
}

// TotalSeats returns the number of seats in the hall.
func TotalSeats() int { return len(rowLabels) * seatsPerRow }

// SeatTypeForRow maps a row label to its seat type.  Front rows are
// standard, the middle band premium and the last two rows VIP.
func SeatTypeForRow(row string) model.SeatType {
	switch row {
	case "G", "H":
		return model.SeatVIP
	case "D", "E", "F":
		return model.SeatPremium
	default:
		return model.SeatStandard
	}
}

// PriceForType returns the ticket price in cents for a seat type.
func PriceForType(t model.SeatType) uint32 {
	switch t {
	case model.SeatVIP:
		return priceVIPCents
	case model.SeatPremium:
		return pricePremiumCents
	default:
		return priceStandardCents
	}
}

// PriceForSeat resolves a seat id to its price in cents.  Unknown ids
// price as standard; the draft layer rejects them before money is
// ever computed from one.
func PriceForSeat(seatID string) uint32 {
	if len(seatID) == 0 {
		return priceStandardCents
	}
	return PriceForType(SeatTypeForRow(seatID[:1]))
}

// seatIDAt maps a flat index in [0, TotalSeats) to a seat id, row
// major: index 0 is A1, index 12 is B1 and so on.
func seatIDAt(idx int) string {
	row := rowLabels[idx/seatsPerRow]
	num := idx%seatsPerRow + 1
	return model.SeatID(row, num)
}

// IsValidSeat reports whether a seat id exists in the hall layout.
func IsValidSeat(seatID string) bool {
	for i := 0; i < TotalSeats(); i++ {
		if seatIDAt(i) == seatID {
			return true
		}
	}
	return false
}

// TakenSeats returns the set of occupied seat ids for a showtime.
// The same (date, showtime) pair always yields the same set within a
// process.  Empty inputs yield an empty set.  The nominal count is
// drawn between MinTaken and MaxTaken; an index that collides with a
// seat already marked taken is skipped, which may leave the set
// slightly smaller than the nominal count.
func (g *Generator) TakenSeats(date, showtime string) map[string]struct{} {
	taken := make(map[string]struct{})
	if date == "" || showtime == "" {
		return taken
	}
	rng := newPRNG(seedFrom(date + showtime))
	count := g.MinTaken
	if span := g.MaxTaken - g.MinTaken; span > 0 {
		count += rng.intn(span + 1)
	}
	total := TotalSeats()
	for i := 0; i < count; i++ {
		id := seatIDAt(rng.intn(total))
		if _, dup := taken[id]; dup {
			continue // skip collisions instead of retrying
		}
		taken[id] = struct{}{}
	}
	return taken
}

// Grid materializes the full seat map for a showtime.  Seats present
// in the generator's taken set are OCCUPIED, seats in selected are
// SELECTED and everything else is AVAILABLE.  Rows are emitted in
// layout order so the output is stable.
func (g *Generator) Grid(date, showtime string, selected map[string]struct{}) []model.Seat {
	taken := g.TakenSeats(date, showtime)
	seats := make([]model.Seat, 0, TotalSeats())
	for i := 0; i < TotalSeats(); i++ {
		id := seatIDAt(i)
		row := rowLabels[i/seatsPerRow]
		typ := SeatTypeForRow(row)
		status := model.SeatAvailable
		if _, ok := taken[id]; ok {
			status = model.SeatOccupied
		} else if _, ok := selected[id]; ok {
			status = model.SeatSelected
		}
		seats = append(seats, model.Seat{
			ID:         id,
			RowLabel:   row,
			SeatNumber: i%seatsPerRow + 1,
			Type:       typ,
			Status:     status,
			PriceCents: PriceForType(typ),
		})
	}
	return seats
}
