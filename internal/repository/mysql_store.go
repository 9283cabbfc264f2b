package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/screenseat/movie-booking/internal/model"
)

// MySQLStore persists bookings in two tables: bookings carries the
// record itself and booking_seats one row per reserved seat.  All
// timestamps are stored in UTC.  The schema:
//
//  bookings(id VARCHAR(36) PK, movie_id, show_date, showtime,
//           customer_name, customer_email, customer_phone,
//           total_amount_cents, status, payment_status, created_at)
//  booking_seats(booking_id FK, seat_id, PRIMARY KEY(booking_id, seat_id))
type MySQLStore struct {
	db *sql.DB
}

// NewMySQLStore returns a store bound to the given database handle.
func NewMySQLStore(db *sql.DB) *MySQLStore { return &MySQLStore{db: db} }

// Create inserts the booking and its seats inside one transaction so
// a partial record can never be observed.
func (s *MySQLStore) Create(ctx context.Context, b *model.Booking) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	const ins = `INSERT INTO bookings
        (id, movie_id, show_date, showtime, customer_name, customer_email, customer_phone,
         total_amount_cents, status, payment_status, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	if _, err := tx.ExecContext(ctx, ins,
		b.ID, b.MovieID, b.Date, b.Showtime,
		b.Customer.Name, b.Customer.Email, b.Customer.Phone,
		b.TotalAmountCents, string(b.Status), string(b.PaymentStatus), b.CreatedAt.UTC(),
	); err != nil {
		return err
	}
	if len(b.Seats) > 0 {
		query := `INSERT INTO booking_seats (booking_id, seat_id) VALUES `
		args := make([]interface{}, 0, len(b.Seats)*2)
		placeholders := make([]string, 0, len(b.Seats))
		for _, seat := range b.Seats {
			placeholders = append(placeholders, "(?, ?)")
			args = append(args, b.ID, seat)
		}
		query += strings.Join(placeholders, ",")
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// GetByID loads a booking and its seats.  Seats are ordered by id so
// the output matches the sorted slice the booking was created with.
func (s *MySQLStore) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	const q = `SELECT id, movie_id, show_date, showtime,
                      customer_name, customer_email, customer_phone,
                      total_amount_cents, status, payment_status, created_at
               FROM bookings WHERE id = ?`
	var b model.Booking
	var status, payStatus string
	err := s.db.QueryRowContext(ctx, q, id).Scan(
		&b.ID, &b.MovieID, &b.Date, &b.Showtime,
		&b.Customer.Name, &b.Customer.Email, &b.Customer.Phone,
		&b.TotalAmountCents, &status, &payStatus, &b.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	b.Status = model.BookingStatus(status)
	b.PaymentStatus = model.PaymentStatus(payStatus)
	const seatQ = `SELECT seat_id FROM booking_seats WHERE booking_id = ? ORDER BY seat_id`
	rows, err := s.db.QueryContext(ctx, seatQ, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	b.Seats = []string{}
	for rows.Next() {
		var seat string
		if err := rows.Scan(&seat); err != nil {
			return nil, err
		}
		b.Seats = append(b.Seats, seat)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &b, nil
}

// Confirm updates the row only while it is still pending; an
// already-confirmed booking passes through unchanged, which keeps the
// operation idempotent, and a cancelled one reports
// ErrBookingCancelled.
func (s *MySQLStore) Confirm(ctx context.Context, id string) (*model.Booking, error) {
	const upd = `UPDATE bookings SET status = ?, payment_status = ?
                 WHERE id = ? AND status = ?`
	if _, err := s.db.ExecContext(ctx, upd,
		string(model.BookingConfirmed), string(model.PaymentPaid),
		id, string(model.BookingPending),
	); err != nil {
		return nil, err
	}
	b, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Status == model.BookingCancelled {
		return nil, ErrBookingCancelled
	}
	return b, nil
}

// MarkPaymentFailed flags the payment leg of a still-pending booking.
func (s *MySQLStore) MarkPaymentFailed(ctx context.Context, id string) (*model.Booking, error) {
	const upd = `UPDATE bookings SET payment_status = ?
                 WHERE id = ? AND status = ?`
	if _, err := s.db.ExecContext(ctx, upd,
		string(model.PaymentFailed), id, string(model.BookingPending),
	); err != nil {
		return nil, err
	}
	b, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Status == model.BookingCancelled {
		return nil, ErrBookingCancelled
	}
	return b, nil
}

// Cancel marks the booking CANCELLED; the row is kept.
func (s *MySQLStore) Cancel(ctx context.Context, id string) (*model.Booking, error) {
	const upd = `UPDATE bookings SET status = ? WHERE id = ?`
	res, err := s.db.ExecContext(ctx, upd, string(model.BookingCancelled), id)
	if err != nil {
		return nil, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		// Distinguish "no such booking" from "already cancelled".
		if _, getErr := s.GetByID(ctx, id); getErr != nil {
			return nil, getErr
		}
	}
	return s.GetByID(ctx, id)
}
