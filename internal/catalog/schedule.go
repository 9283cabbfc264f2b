package catalog

import "time"

// Showtimes is the fixed set of daily screening slots.  Every movie
// screens at every slot; the availability generator makes each
// (date, showtime) pair look differently sold.
var Showtimes = []string{"10:00 AM", "1:15 PM", "4:30 PM", "7:30 PM", "10:45 PM"}

// Schedule produces the dates a customer can book.  Now is
// injectable so tests can pin "today".
type Schedule struct {
	Days int
	Now  func() time.Time
}

// NewSchedule returns a Schedule covering the next days starting
// today.  days falls back to 7 when not positive.
func NewSchedule(days int) *Schedule {
	if days <= 0 {
		days = 7
	}
	return &Schedule{Days: days, Now: time.Now}
}

// Dates returns the selectable dates as YYYY-MM-DD strings, starting
// with today.
func (s *Schedule) Dates() []string {
	today := s.Now()
	dates := make([]string, 0, s.Days)
	for i := 0; i < s.Days; i++ {
		dates = append(dates, today.AddDate(0, 0, i).Format("2006-01-02"))
	}
	return dates
}

// ValidSlot reports whether the pair names a bookable screening: a
// date inside the schedule window and a known showtime label.
func (s *Schedule) ValidSlot(date, showtime string) bool {
	okTime := false
	for _, st := range Showtimes {
		if st == showtime {
			okTime = true
			break
		}
	}
	if !okTime {
		return false
	}
	for _, d := range s.Dates() {
		if d == date {
			return true
		}
	}
	return false
}
