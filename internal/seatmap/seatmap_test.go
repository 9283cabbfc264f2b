package seatmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/screenseat/movie-booking/internal/model"
)

func TestTakenSeatsDeterministic(t *testing.T) {
	g := NewGenerator(5, 25)
	first := g.TakenSeats("2024-06-01", "7:30 PM")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, g.TakenSeats("2024-06-01", "7:30 PM"))
	}
}

func TestTakenSeatsEmptyInputs(t *testing.T) {
	g := NewGenerator(5, 25)
	assert.Empty(t, g.TakenSeats("", "7:30 PM"))
	assert.Empty(t, g.TakenSeats("2024-06-01", ""))
	assert.Empty(t, g.TakenSeats("", ""))
}

func TestTakenSeatsWithinBounds(t *testing.T) {
	g := NewGenerator(5, 25)
	dates := []string{"2024-06-01", "2024-06-02", "2024-06-03", "2024-07-14"}
	times := []string{"10:00 AM", "1:15 PM", "4:30 PM", "7:30 PM", "10:45 PM"}
	for _, d := range dates {
		for _, st := range times {
			taken := g.TakenSeats(d, st)
			// Collisions are skipped, so the set can undershoot the
			// nominal minimum but never exceed the maximum.
			assert.LessOrEqual(t, len(taken), 25, "%s %s", d, st)
			assert.NotEmpty(t, taken, "%s %s", d, st)
			for id := range taken {
				assert.True(t, IsValidSeat(id), "generated invalid seat id %q", id)
			}
		}
	}
}

func TestTakenSeatsVariesAcrossSlots(t *testing.T) {
	g := NewGenerator(5, 25)
	a := g.TakenSeats("2024-06-01", "7:30 PM")
	b := g.TakenSeats("2024-06-02", "7:30 PM")
	assert.NotEqual(t, a, b)
}

func TestGeneratorClampsBounds(t *testing.T) {
	g := NewGenerator(-3, 10_000)
	taken := g.TakenSeats("2024-06-01", "7:30 PM")
	assert.LessOrEqual(t, len(taken), TotalSeats())

	// A minimum above the hall size is capped at the hall size, so the
	// nominal draw can never exceed the number of seats that exist.
	g = NewGenerator(200, 300)
	assert.Equal(t, TotalSeats(), g.MinTaken)
	assert.Equal(t, TotalSeats(), g.MaxTaken)
	taken = g.TakenSeats("2024-06-01", "7:30 PM")
	assert.LessOrEqual(t, len(taken), TotalSeats())
}

func TestSeatTypesAndPrices(t *testing.T) {
	assert.Equal(t, model.SeatStandard, SeatTypeForRow("A"))
	assert.Equal(t, model.SeatPremium, SeatTypeForRow("D"))
	assert.Equal(t, model.SeatVIP, SeatTypeForRow("H"))
	assert.Equal(t, uint32(1200), PriceForSeat("A1"))
	assert.Equal(t, uint32(1800), PriceForSeat("E7"))
	assert.Equal(t, uint32(2500), PriceForSeat("G12"))
}

func TestIsValidSeat(t *testing.T) {
	assert.True(t, IsValidSeat("A1"))
	assert.True(t, IsValidSeat("H12"))
	assert.False(t, IsValidSeat("A0"))
	assert.False(t, IsValidSeat("Z1"))
	assert.False(t, IsValidSeat("A13"))
	assert.False(t, IsValidSeat(""))
}

func TestGridStatuses(t *testing.T) {
	g := NewGenerator(5, 25)
	taken := g.TakenSeats("2024-06-01", "7:30 PM")

	// Pick one free seat to mark as selected.
	var free string
	for i := 0; i < TotalSeats(); i++ {
		if _, ok := taken[seatIDAt(i)]; !ok {
			free = seatIDAt(i)
			break
		}
	}
	require.NotEmpty(t, free)

	grid := g.Grid("2024-06-01", "7:30 PM", map[string]struct{}{free: {}})
	require.Len(t, grid, TotalSeats())
	for _, s := range grid {
		if _, occupied := taken[s.ID]; occupied {
			assert.Equal(t, model.SeatOccupied, s.Status, s.ID)
		} else if s.ID == free {
			assert.Equal(t, model.SeatSelected, s.Status, s.ID)
		} else {
			assert.Equal(t, model.SeatAvailable, s.Status, s.ID)
		}
		assert.Equal(t, PriceForType(s.Type), s.PriceCents)
	}
}

func TestPRNGDeterminism(t *testing.T) {
	a := newPRNG(seedFrom("2024-06-017:30 PM"))
	b := newPRNG(seedFrom("2024-06-017:30 PM"))
	for i := 0; i < 100; i++ {
		require.Equal(t, a.next(), b.next())
	}
}
