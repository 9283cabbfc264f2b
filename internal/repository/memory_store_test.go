package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/screenseat/movie-booking/internal/model"
)

func sampleBooking(id string) *model.Booking {
	return &model.Booking{
		ID:       id,
		MovieID:  42,
		Date:     "2024-06-01",
		Showtime: "7:30 PM",
		Seats:    []string{"A1", "A2"},
		Customer: model.CustomerInfo{
			Name: "Ada Lovelace", Email: "ada@example.com", Phone: "555-123-4567",
		},
		TotalAmountCents: 2400,
		Status:           model.BookingPending,
		PaymentStatus:    model.PaymentPending,
		CreatedAt:        time.Date(2024, 5, 30, 12, 0, 0, 0, time.UTC),
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	b := sampleBooking("bk-1")
	require.NoError(t, s.Create(ctx, b))

	got, err := s.GetByID(ctx, "bk-1")
	require.NoError(t, err)
	assert.Equal(t, b, got)

	// The store holds its own copy; mutating the fetched record must
	// not change what a later read sees.
	got.Seats[0] = "Z9"
	again, err := s.GetByID(ctx, "bk-1")
	require.NoError(t, err)
	assert.Equal(t, "A1", again.Seats[0])
}

func TestMemoryStoreNotFound(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	_, err := s.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
	_, err = s.Confirm(ctx, "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
	_, err = s.Cancel(ctx, "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestMemoryStoreConfirmIdempotent(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.Create(ctx, sampleBooking("bk-1")))

	first, err := s.Confirm(ctx, "bk-1")
	require.NoError(t, err)
	assert.Equal(t, model.BookingConfirmed, first.Status)
	assert.Equal(t, model.PaymentPaid, first.PaymentStatus)

	second, err := s.Confirm(ctx, "bk-1")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestMemoryStorePaymentFailureKeepsBookingPending(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.Create(ctx, sampleBooking("bk-1")))

	b, err := s.MarkPaymentFailed(ctx, "bk-1")
	require.NoError(t, err)
	assert.Equal(t, model.BookingPending, b.Status)
	assert.Equal(t, model.PaymentFailed, b.PaymentStatus)

	// A later confirm still succeeds: failed payments are retryable.
	b, err = s.Confirm(ctx, "bk-1")
	require.NoError(t, err)
	assert.Equal(t, model.BookingConfirmed, b.Status)
}

func TestMemoryStoreCancelKeepsRecord(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.Create(ctx, sampleBooking("bk-1")))

	b, err := s.Cancel(ctx, "bk-1")
	require.NoError(t, err)
	assert.Equal(t, model.BookingCancelled, b.Status)

	// Cancelled bookings stay readable and cannot be confirmed.
	got, err := s.GetByID(ctx, "bk-1")
	require.NoError(t, err)
	assert.Equal(t, model.BookingCancelled, got.Status)
	_, err = s.Confirm(ctx, "bk-1")
	assert.ErrorIs(t, err, ErrBookingCancelled)
}
