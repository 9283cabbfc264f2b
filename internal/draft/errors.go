package draft

import (
	"errors"
	"sort"
	"strings"
)

// Sentinel errors returned by Apply.  Handlers translate these into
// HTTP responses; none of them is fatal.
var (
	// ErrNoMovie is returned when a transition requires a selected
	// movie and none has been chosen yet.
	ErrNoMovie = errors.New("no movie selected")

	// ErrNoShowtime is returned when seats are toggled before a
	// screening slot has been picked.
	ErrNoShowtime = errors.New("no showtime selected")

	// ErrNoSeats is returned when customer info is submitted with an
	// empty seat selection.
	ErrNoSeats = errors.New("no seats selected")

	// ErrSeatTaken is returned when the toggled seat is occupied for
	// the active showtime.  The draft is left unchanged.
	ErrSeatTaken = errors.New("seat is no longer available")
)

// FieldErrors maps a field name to a human-readable message.  It is
// returned by validating transitions so callers can render errors
// next to the offending input.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+fe[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
