package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/screenseat/movie-booking/internal/draft"
	"github.com/screenseat/movie-booking/internal/model"
	"github.com/screenseat/movie-booking/internal/queue"
	"github.com/screenseat/movie-booking/internal/repository"
)

// Availability yields the occupied-seat set for a screening slot.
type Availability interface {
	TakenSeats(date, showtime string) map[string]struct{}
}

// BookingService finalizes drafts into booking records and drives the
// payment and cancellation operations on top of the injected store.
// CreateNet and PayNet carry independent failure rates so seat
// rejection and payment failure can be tuned (or pinned) separately.
type BookingService struct {
	Store        repository.BookingStore
	Availability Availability
	CreateNet    Network
	PayNet       Network

	// Price resolves a seat id to its price in cents.
	Price func(seatID string) uint32
	// NewID allocates booking ids; unique within the session is all
	// that is required.  Defaults to uuid.NewString.
	NewID func() string
	// Now supplies creation timestamps.  Defaults to time.Now.
	Now func() time.Time
	// Publish emits the confirmation event.  Failures are logged and
	// ignored; a nil Publish disables events.
	Publish func(ctx context.Context, ev queue.BookingConfirmedEvent) error
}

// NewBookingService wires a BookingService with production defaults
// for id allocation, clock and event publishing.
func NewBookingService(store repository.BookingStore, avail Availability, createNet, payNet Network, price func(string) uint32) *BookingService {
	return &BookingService{
		Store:        store,
		Availability: avail,
		CreateNet:    createNet,
		PayNet:       payNet,
		Price:        price,
		NewID:        uuid.NewString,
		Now:          time.Now,
		Publish:      queue.PublishBookingConfirmed,
	}
}

// CreateBooking submits a completed draft.  It re-checks every
// selected seat against the availability generator, waits out the
// simulated round trip and either creates a PENDING booking or
// returns ErrSeatUnavailable with no record created.
func (s *BookingService) CreateBooking(ctx context.Context, d draft.Draft) (*model.Booking, error) {
	if d.MovieID == 0 || d.Date == "" || d.Showtime == "" || len(d.Seats) == 0 || d.Customer == nil {
		return nil, ErrDraftIncomplete
	}
	// Final availability check before money changes hands.  The taken
	// set for a slot is stable, but the draft may have been built
	// against a different slot earlier in its life.
	taken := s.Availability.TakenSeats(d.Date, d.Showtime)
	for id := range d.Seats {
		if _, occupied := taken[id]; occupied {
			return nil, ErrSeatUnavailable
		}
	}
	if err := s.CreateNet.Wait(ctx); err != nil {
		return nil, err
	}
	if s.CreateNet.Drop() {
		return nil, ErrSeatUnavailable
	}
	seats := d.SeatIDs()
	var total uint32
	for _, id := range seats {
		total += s.Price(id)
	}
	b := &model.Booking{
		ID:               s.NewID(),
		MovieID:          d.MovieID,
		Date:             d.Date,
		Showtime:         d.Showtime,
		Seats:            seats,
		Customer:         *d.Customer,
		TotalAmountCents: total,
		Status:           model.BookingPending,
		PaymentStatus:    model.PaymentPending,
		CreatedAt:        s.Now().UTC(),
	}
	if err := s.Store.Create(ctx, b); err != nil {
		return nil, err
	}
	return b.Clone(), nil
}

// ConfirmPayment settles the payment leg of a pending booking.  The
// call is idempotent: a booking that is already confirmed is returned
// as-is without touching the simulated network again.  On a simulated
// failure the booking keeps status PENDING with payment FAILED and
// ErrPaymentFailed is returned so the caller can retry the same id.
func (s *BookingService) ConfirmPayment(ctx context.Context, id string) (*model.Booking, error) {
	b, err := s.Store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Status == model.BookingCancelled {
		return nil, repository.ErrBookingCancelled
	}
	if b.Status == model.BookingConfirmed {
		return b, nil
	}
	if err := s.PayNet.Wait(ctx); err != nil {
		return nil, err
	}
	if s.PayNet.Drop() {
		if _, markErr := s.Store.MarkPaymentFailed(ctx, id); markErr != nil {
			log.Printf("booking %s: mark payment failed: %v", id, markErr)
		}
		return nil, ErrPaymentFailed
	}
	confirmed, err := s.Store.Confirm(ctx, id)
	if err != nil {
		return nil, err
	}
	s.publishConfirmed(ctx, confirmed)
	return confirmed, nil
}

// GetBooking looks up a booking by id.
func (s *BookingService) GetBooking(ctx context.Context, id string) (*model.Booking, error) {
	return s.Store.GetByID(ctx, id)
}

// CancelBooking marks a booking CANCELLED.  The record stays in the
// store so the confirmation view keeps working.
func (s *BookingService) CancelBooking(ctx context.Context, id string) (*model.Booking, error) {
	return s.Store.Cancel(ctx, id)
}

// publishConfirmed emits the booking.confirmed event.  Publishing is
// best-effort: a broker outage must not fail a booking the customer
// already paid for.
func (s *BookingService) publishConfirmed(ctx context.Context, b *model.Booking) {
	if s.Publish == nil {
		return
	}
	ev := queue.BookingConfirmedEvent{
		BookingID:        b.ID,
		MovieID:          b.MovieID,
		Date:             b.Date,
		Showtime:         b.Showtime,
		Seats:            append([]string(nil), b.Seats...),
		CustomerEmail:    b.Customer.Email,
		TotalAmountCents: b.TotalAmountCents,
		ConfirmedAt:      s.Now().UTC().Format(time.RFC3339),
	}
	if err := s.Publish(ctx, ev); err != nil {
		log.Printf("booking %s: publish confirmed event: %v", b.ID, err)
	}
}
