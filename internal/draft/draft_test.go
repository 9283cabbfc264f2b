package draft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/screenseat/movie-booking/internal/model"
)

// fixedAvail serves a canned taken set per (date, showtime) key.
type fixedAvail map[string]map[string]struct{}

func (f fixedAvail) TakenSeats(date, showtime string) map[string]struct{} {
	if s, ok := f[date+"|"+showtime]; ok {
		return s
	}
	return map[string]struct{}{}
}

func seatSet(ids ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func testMachine(avail fixedAvail, maxSeats int) *Machine {
	valid := func(id string) bool { return id != "ZZ99" }
	return NewMachine(avail, valid, maxSeats)
}

func validInfo() model.CustomerInfo {
	return model.CustomerInfo{Name: "Ada Lovelace", Email: "ada@example.com", Phone: "+1 (555) 123-4567"}
}

func TestHappyPathThroughStages(t *testing.T) {
	m := testMachine(fixedAvail{}, 8)
	d := New()
	require.Equal(t, StageMovie, d.Stage)

	d, err := m.Apply(d, SelectMovie{MovieID: 42})
	require.NoError(t, err)
	assert.Equal(t, StageDatetime, d.Stage)

	d, err = m.Apply(d, SelectShowtime{Date: "2024-06-01", Showtime: "7:30 PM"})
	require.NoError(t, err)
	assert.Equal(t, StageSeats, d.Stage)

	d, err = m.Apply(d, ToggleSeat{SeatID: "A1"})
	require.NoError(t, err)
	d, err = m.Apply(d, ToggleSeat{SeatID: "A2"})
	require.NoError(t, err)
	assert.Equal(t, []string{"A1", "A2"}, d.SeatIDs())

	d, err = m.Apply(d, SetCustomerInfo{Info: validInfo()})
	require.NoError(t, err)
	assert.Equal(t, StagePayment, d.Stage)
	require.NotNil(t, d.Customer)
	assert.Equal(t, "Ada Lovelace", d.Customer.Name)
}

func TestSelectMovieClearsDownstreamFields(t *testing.T) {
	m := testMachine(fixedAvail{}, 8)
	d := New()
	d, _ = m.Apply(d, SelectMovie{MovieID: 1})
	d, _ = m.Apply(d, SelectShowtime{Date: "2024-06-01", Showtime: "7:30 PM"})
	d, _ = m.Apply(d, ToggleSeat{SeatID: "B3"})

	d, err := m.Apply(d, SelectMovie{MovieID: 2})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), d.MovieID)
	assert.Empty(t, d.Date)
	assert.Empty(t, d.Showtime)
	assert.Empty(t, d.Seats)
	assert.Equal(t, StageDatetime, d.Stage)
}

func TestSelectShowtimePrunesNewlyTakenSeats(t *testing.T) {
	avail := fixedAvail{
		"2024-06-02|7:30 PM": seatSet("A1", "C4"),
	}
	m := testMachine(avail, 8)
	d := New()
	d, _ = m.Apply(d, SelectMovie{MovieID: 42})
	d, _ = m.Apply(d, SelectShowtime{Date: "2024-06-01", Showtime: "7:30 PM"})
	d, _ = m.Apply(d, ToggleSeat{SeatID: "A1"})
	d, _ = m.Apply(d, ToggleSeat{SeatID: "B2"})

	// Switching to a slot where A1 is occupied keeps only B2.
	d, err := m.Apply(d, SelectShowtime{Date: "2024-06-02", Showtime: "7:30 PM"})
	require.NoError(t, err)
	assert.Equal(t, []string{"B2"}, d.SeatIDs())
}

func TestToggleSeatIsItsOwnInverse(t *testing.T) {
	m := testMachine(fixedAvail{}, 8)
	d := New()
	d, _ = m.Apply(d, SelectMovie{MovieID: 42})
	d, _ = m.Apply(d, SelectShowtime{Date: "2024-06-01", Showtime: "7:30 PM"})
	d, _ = m.Apply(d, ToggleSeat{SeatID: "A1"})
	before := d.SeatIDs()

	d, err := m.Apply(d, ToggleSeat{SeatID: "B5"})
	require.NoError(t, err)
	d, err = m.Apply(d, ToggleSeat{SeatID: "B5"})
	require.NoError(t, err)
	assert.Equal(t, before, d.SeatIDs())
}

func TestToggleTakenSeatIsRejectedWithoutMutation(t *testing.T) {
	avail := fixedAvail{"2024-06-01|7:30 PM": seatSet("A1")}
	m := testMachine(avail, 8)
	d := New()
	d, _ = m.Apply(d, SelectMovie{MovieID: 42})
	d, _ = m.Apply(d, SelectShowtime{Date: "2024-06-01", Showtime: "7:30 PM"})

	next, err := m.Apply(d, ToggleSeat{SeatID: "A1"})
	assert.ErrorIs(t, err, ErrSeatTaken)
	assert.Equal(t, d.SeatIDs(), next.SeatIDs())
}

func TestSeatLimitAlwaysReported(t *testing.T) {
	m := testMachine(fixedAvail{}, 3)
	d := New()
	d, _ = m.Apply(d, SelectMovie{MovieID: 42})
	d, _ = m.Apply(d, SelectShowtime{Date: "2024-06-01", Showtime: "7:30 PM"})
	for _, id := range []string{"A1", "A2", "A3"} {
		var err error
		d, err = m.Apply(d, ToggleSeat{SeatID: id})
		require.NoError(t, err)
	}

	next, err := m.Apply(d, ToggleSeat{SeatID: "A4"})
	var fe FieldErrors
	require.ErrorAs(t, err, &fe)
	assert.Contains(t, fe, "seats")
	assert.Len(t, next.Seats, 3)

	// Deselecting is still allowed at the limit.
	next, err = m.Apply(next, ToggleSeat{SeatID: "A3"})
	require.NoError(t, err)
	assert.Len(t, next.Seats, 2)
}

func TestToggleUnknownSeat(t *testing.T) {
	m := testMachine(fixedAvail{}, 8)
	d := New()
	d, _ = m.Apply(d, SelectMovie{MovieID: 42})
	d, _ = m.Apply(d, SelectShowtime{Date: "2024-06-01", Showtime: "7:30 PM"})
	_, err := m.Apply(d, ToggleSeat{SeatID: "ZZ99"})
	var fe FieldErrors
	require.ErrorAs(t, err, &fe)
	assert.Contains(t, fe, "seat_id")
}

func TestStageSequencingErrors(t *testing.T) {
	m := testMachine(fixedAvail{}, 8)
	d := New()

	_, err := m.Apply(d, SelectShowtime{Date: "2024-06-01", Showtime: "7:30 PM"})
	assert.ErrorIs(t, err, ErrNoMovie)

	_, err = m.Apply(d, ToggleSeat{SeatID: "A1"})
	assert.ErrorIs(t, err, ErrNoShowtime)

	_, err = m.Apply(d, SetCustomerInfo{Info: validInfo()})
	assert.ErrorIs(t, err, ErrNoSeats)
}

func TestSetCustomerInfoValidation(t *testing.T) {
	m := testMachine(fixedAvail{}, 8)
	d := New()
	d, _ = m.Apply(d, SelectMovie{MovieID: 42})
	d, _ = m.Apply(d, SelectShowtime{Date: "2024-06-01", Showtime: "7:30 PM"})
	d, _ = m.Apply(d, ToggleSeat{SeatID: "A1"})

	next, err := m.Apply(d, SetCustomerInfo{Info: model.CustomerInfo{
		Name: "", Email: "x@y.com", Phone: "555-1234",
	}})
	var fe FieldErrors
	require.ErrorAs(t, err, &fe)
	assert.Contains(t, fe, "name")
	assert.NotContains(t, fe, "email")
	// The rejected transition does not advance the stage or store info.
	assert.Equal(t, StageSeats, next.Stage)
	assert.Nil(t, next.Customer)
}

func TestReset(t *testing.T) {
	m := testMachine(fixedAvail{}, 8)
	d := New()
	d, _ = m.Apply(d, SelectMovie{MovieID: 42})
	d, _ = m.Apply(d, SelectShowtime{Date: "2024-06-01", Showtime: "7:30 PM"})
	d, _ = m.Apply(d, ToggleSeat{SeatID: "A1"})

	d, err := m.Apply(d, Reset{})
	require.NoError(t, err)
	assert.Equal(t, StageMovie, d.Stage)
	assert.Zero(t, d.MovieID)
	assert.Empty(t, d.Seats)
}
