package repository

import (
	"context"
	"sync"

	"github.com/screenseat/movie-booking/internal/model"
)

// MemoryStore keeps bookings in a process-local map.  It is the
// default backend: the flow only promises session-scoped persistence,
// so a map behind a RWMutex is enough.  Values are cloned on the way
// in and out so callers never share the stored record.
type MemoryStore struct {
	mu       sync.RWMutex
	bookings map[string]*model.Booking
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{bookings: make(map[string]*model.Booking)}
}

// Create stores a new booking under its id.
func (s *MemoryStore) Create(ctx context.Context, b *model.Booking) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings[b.ID] = b.Clone()
	return nil
}

// GetByID returns a copy of the stored booking.
func (s *MemoryStore) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	return b.Clone(), nil
}

// Confirm flips the booking to CONFIRMED/PAID.  Re-confirming an
// already-confirmed booking is a no-op success.
func (s *MemoryStore) Confirm(ctx context.Context, id string) (*model.Booking, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	switch b.Status {
	case model.BookingCancelled:
		return nil, ErrBookingCancelled
	case model.BookingConfirmed:
		return b.Clone(), nil
	}
	b.Status = model.BookingConfirmed
	b.PaymentStatus = model.PaymentPaid
	return b.Clone(), nil
}

// MarkPaymentFailed records the failed attempt while leaving the
// booking PENDING for a retry.
func (s *MemoryStore) MarkPaymentFailed(ctx context.Context, id string) (*model.Booking, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	if b.Status == model.BookingCancelled {
		return nil, ErrBookingCancelled
	}
	if b.Status == model.BookingConfirmed {
		return b.Clone(), nil
	}
	b.PaymentStatus = model.PaymentFailed
	return b.Clone(), nil
}

// Cancel marks the booking CANCELLED without removing it.
func (s *MemoryStore) Cancel(ctx context.Context, id string) (*model.Booking, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	b.Status = model.BookingCancelled
	return b.Clone(), nil
}
