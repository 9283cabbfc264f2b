package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/screenseat/movie-booking/internal/model"
)

// RedisStore persists bookings as JSON blobs under booking:<id>.
// One serialized record per key, no indexes.  Records never expire;
// cancelled bookings are kept like the rest.
type RedisStore struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisStore binds a store to an existing Redis client.
func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb, prefix: "booking:"}
}

func (s *RedisStore) key(id string) string { return s.prefix + id }

func (s *RedisStore) load(ctx context.Context, id string) (*model.Booking, error) {
	raw, err := s.rdb.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}
	var b model.Booking
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, fmt.Errorf("decode booking %s: %w", id, err)
	}
	return &b, nil
}

func (s *RedisStore) save(ctx context.Context, b *model.Booking) error {
	raw, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("encode booking %s: %w", b.ID, err)
	}
	if err := s.rdb.Set(ctx, s.key(b.ID), raw, 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Create stores a new booking blob.
func (s *RedisStore) Create(ctx context.Context, b *model.Booking) error {
	return s.save(ctx, b)
}

// GetByID loads and decodes a booking.
func (s *RedisStore) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	return s.load(ctx, id)
}

// Confirm loads, mutates and writes back.  A single server process
// owns the flow, so read-modify-write without WATCH is acceptable
// here.
func (s *RedisStore) Confirm(ctx context.Context, id string) (*model.Booking, error) {
	b, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	switch b.Status {
	case model.BookingCancelled:
		return nil, ErrBookingCancelled
	case model.BookingConfirmed:
		return b, nil
	}
	b.Status = model.BookingConfirmed
	b.PaymentStatus = model.PaymentPaid
	if err := s.save(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// MarkPaymentFailed records a failed attempt; the booking stays
// PENDING.
func (s *RedisStore) MarkPaymentFailed(ctx context.Context, id string) (*model.Booking, error) {
	b, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Status == model.BookingCancelled {
		return nil, ErrBookingCancelled
	}
	if b.Status == model.BookingConfirmed {
		return b, nil
	}
	b.PaymentStatus = model.PaymentFailed
	if err := s.save(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Cancel marks the booking CANCELLED and keeps the blob.
func (s *RedisStore) Cancel(ctx context.Context, id string) (*model.Booking, error) {
	b, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	b.Status = model.BookingCancelled
	if err := s.save(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}
