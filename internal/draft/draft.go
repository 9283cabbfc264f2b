// Package draft implements the booking state machine.  A Draft is an
// in-progress, unconfirmed booking owned by a single session; it is
// advanced only through the transitions defined here and discarded on
// reset or successful finalization.
package draft

import (
	"fmt"
	"sort"

	"github.com/screenseat/movie-booking/internal/model"
)

// Stage is the position of a draft in the linear booking flow.
type Stage string

const (
	StageMovie        Stage = "movie"
	StageDatetime     Stage = "datetime"
	StageSeats        Stage = "seats"
	StageInfo         Stage = "info"
	StagePayment      Stage = "payment"
	StageConfirmation Stage = "confirmation"
)

// Draft holds the selections made so far.  Seats is a set of seat
// ids.  Customer is nil until the info stage has been passed.
type Draft struct {
	MovieID  uint64
	Date     string
	Showtime string
	Seats    map[string]struct{}
	Customer *model.CustomerInfo
	Stage    Stage
}

// New returns an empty draft at the movie stage.
func New() Draft {
	return Draft{Seats: map[string]struct{}{}, Stage: StageMovie}
}

// SeatIDs returns the selected seats as a sorted slice.
func (d Draft) SeatIDs() []string {
	ids := make([]string, 0, len(d.Seats))
	for id := range d.Seats {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// clone copies the draft so a transition can be rejected without
// leaving the original partially mutated.
func (d Draft) clone() Draft {
	cp := d
	cp.Seats = make(map[string]struct{}, len(d.Seats))
	for id := range d.Seats {
		cp.Seats[id] = struct{}{}
	}
	if d.Customer != nil {
		c := *d.Customer
		cp.Customer = &c
	}
	return cp
}

// Action is the tagged union of draft transitions.  Each concrete
// action is handled by Machine.Apply.
type Action interface{ isAction() }

// SelectMovie sets the movie and clears date, showtime and seats.
type SelectMovie struct{ MovieID uint64 }

// SelectShowtime sets the screening slot.  Previously selected seats
// that are taken under the new slot are pruned.
type SelectShowtime struct {
	Date     string
	Showtime string
}

// ToggleSeat adds or removes a seat from the selection.
type ToggleSeat struct{ SeatID string }

// SetCustomerInfo records validated contact details and advances to
// the payment stage.
type SetCustomerInfo struct{ Info model.CustomerInfo }

// Reset returns the draft to its initial state.
type Reset struct{}

func (SelectMovie) isAction()     {}
func (SelectShowtime) isAction()  {}
func (ToggleSeat) isAction()      {}
func (SetCustomerInfo) isAction() {}
func (Reset) isAction()           {}

// Availability yields the taken-seat set for a screening slot.  The
// seatmap generator satisfies this; tests substitute fixed sets.
type Availability interface {
	TakenSeats(date, showtime string) map[string]struct{}
}

// SeatValidator reports whether a seat id exists in the hall layout.
type SeatValidator func(seatID string) bool

// Machine applies actions to drafts.  It is stateless; all mutable
// state lives in the Draft values passed through Apply.
type Machine struct {
	Availability Availability
	ValidSeat    SeatValidator
	MaxSeats     int
}

// NewMachine builds a Machine.  maxSeats falls back to 8 when not
// positive, matching the default per-booking limit.
func NewMachine(avail Availability, validSeat SeatValidator, maxSeats int) *Machine {
	if maxSeats <= 0 {
		maxSeats = 8
	}
	return &Machine{Availability: avail, ValidSeat: validSeat, MaxSeats: maxSeats}
}

// Apply processes a single action and returns the resulting draft.
// On error the returned draft is the input unchanged; a rejected
// transition never partially mutates state.
func (m *Machine) Apply(d Draft, a Action) (Draft, error) {
	switch act := a.(type) {
	case SelectMovie:
		if act.MovieID == 0 {
			return d, FieldErrors{"movie_id": "movie id is required"}
		}
		next := d.clone()
		next.MovieID = act.MovieID
		next.Date = ""
		next.Showtime = ""
		next.Seats = map[string]struct{}{}
		next.Stage = StageDatetime
		return next, nil

	case SelectShowtime:
		if d.MovieID == 0 {
			return d, ErrNoMovie
		}
		fe := FieldErrors{}
		if act.Date == "" {
			fe["date"] = "date is required"
		}
		if act.Showtime == "" {
			fe["showtime"] = "showtime is required"
		}
		if len(fe) > 0 {
			return d, fe
		}
		next := d.clone()
		next.Date = act.Date
		next.Showtime = act.Showtime
		// Seats picked under the previous slot may be occupied in the
		// new one; drop only those.
		taken := m.Availability.TakenSeats(act.Date, act.Showtime)
		for id := range next.Seats {
			if _, occupied := taken[id]; occupied {
				delete(next.Seats, id)
			}
		}
		next.Stage = StageSeats
		return next, nil

	case ToggleSeat:
		if d.Date == "" || d.Showtime == "" {
			return d, ErrNoShowtime
		}
		if m.ValidSeat != nil && !m.ValidSeat(act.SeatID) {
			return d, FieldErrors{"seat_id": fmt.Sprintf("unknown seat %q", act.SeatID)}
		}
		if _, selected := d.Seats[act.SeatID]; selected {
			next := d.clone()
			delete(next.Seats, act.SeatID)
			return next, nil
		}
		taken := m.Availability.TakenSeats(d.Date, d.Showtime)
		if _, occupied := taken[act.SeatID]; occupied {
			return d, ErrSeatTaken
		}
		if len(d.Seats) >= m.MaxSeats {
			return d, FieldErrors{"seats": fmt.Sprintf("at most %d seats per booking", m.MaxSeats)}
		}
		next := d.clone()
		next.Seats[act.SeatID] = struct{}{}
		return next, nil

	case SetCustomerInfo:
		if len(d.Seats) == 0 {
			return d, ErrNoSeats
		}
		if fe := ValidateCustomerInfo(act.Info); len(fe) > 0 {
			return d, fe
		}
		next := d.clone()
		info := act.Info
		next.Customer = &info
		next.Stage = StagePayment
		return next, nil

	case Reset:
		return New(), nil

	default:
		return d, fmt.Errorf("draft: unknown action %T", a)
	}
}
