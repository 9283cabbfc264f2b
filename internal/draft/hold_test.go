package draft

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHoldTimerExpires(t *testing.T) {
	var mu sync.Mutex
	expired := map[string]bool{}
	h := NewHoldTimer(20*time.Millisecond, func(sessionID, seatID string) {
		mu.Lock()
		expired[sessionID+"|"+seatID] = true
		mu.Unlock()
	})

	h.Track("s1", "A1")
	h.Track("s1", "A2")
	h.Release("s1", "A2") // released before expiry, must not fire

	time.Sleep(100 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	assert.True(t, expired["s1|A1"])
	assert.False(t, expired["s1|A2"])
}

func TestHoldTimerReleaseSession(t *testing.T) {
	var mu sync.Mutex
	fired := 0
	h := NewHoldTimer(20*time.Millisecond, func(sessionID, seatID string) {
		mu.Lock()
		fired++
		mu.Unlock()
	})
	h.Track("s1", "A1")
	h.Track("s1", "B2")
	h.Track("s2", "A1")
	h.ReleaseSession("s1")

	time.Sleep(100 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, fired) // only s2's hold expires
}

func TestNilHoldTimerIsSafe(t *testing.T) {
	var h *HoldTimer
	h.Track("s1", "A1")
	h.Release("s1", "A1")
	h.ReleaseSession("s1")
}

func TestSessionStoreIsolation(t *testing.T) {
	s := NewSessionStore()
	d := New()
	d.MovieID = 42
	s.Put("a", d)

	// Mutating the returned copy must not leak into the store.
	got := s.Get("a")
	got.Seats["A1"] = struct{}{}
	assert.Empty(t, s.Get("a").Seats)

	// Unknown sessions start fresh at the movie stage.
	assert.Equal(t, StageMovie, s.Get("b").Stage)

	s.Drop("a")
	assert.Zero(t, s.Get("a").MovieID)
}
