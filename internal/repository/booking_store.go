package repository

import (
	"context"

	"github.com/screenseat/movie-booking/internal/model"
)

// BookingStore is the injected record store for finalized bookings.
// Create/GetByID/Confirm/Cancel cover the whole lifecycle: records
// are created PENDING, flip to CONFIRMED or CANCELLED and are never
// deleted.  Implementations must make Confirm idempotent: confirming
// an already-confirmed booking returns the confirmed record with no
// error and no further mutation.
type BookingStore interface {
	// Create stores a new booking.  The caller supplies the id.
	Create(ctx context.Context, b *model.Booking) error

	// GetByID returns the booking or ErrBookingNotFound.
	GetByID(ctx context.Context, id string) (*model.Booking, error)

	// Confirm marks the booking CONFIRMED with payment PAID.  It
	// returns ErrBookingNotFound for unknown ids and
	// ErrBookingCancelled when the booking has been cancelled.
	Confirm(ctx context.Context, id string) (*model.Booking, error)

	// MarkPaymentFailed records a failed payment attempt.  The
	// booking stays PENDING so the payment can be retried.
	MarkPaymentFailed(ctx context.Context, id string) (*model.Booking, error)

	// Cancel marks the booking CANCELLED.  The record is kept.
	Cancel(ctx context.Context, id string) (*model.Booking, error)
}
