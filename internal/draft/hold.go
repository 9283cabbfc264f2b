package draft

import (
	"sync"
	"time"
)

// HoldTimer deselects seats that sat in a draft for longer than the
// configured TTL.  It is an independent convenience on top of the
// state machine: expiry simply feeds a ToggleSeat back through the
// owning session, it does not introduce a new stage.  A zero TTL
// disables the component entirely.
type HoldTimer struct {
	ttl    time.Duration
	expire func(sessionID, seatID string)

	mu     sync.Mutex
	timers map[string]*time.Timer
}

// NewHoldTimer builds a HoldTimer that calls expire when a seat's
// hold runs out.  expire must be safe to call from a timer goroutine.
func NewHoldTimer(ttl time.Duration, expire func(sessionID, seatID string)) *HoldTimer {
	return &HoldTimer{
		ttl:    ttl,
		expire: expire,
		timers: make(map[string]*time.Timer),
	}
}

func (h *HoldTimer) key(sessionID, seatID string) string { return sessionID + "|" + seatID }

// Track starts (or restarts) the hold countdown for a seat.
func (h *HoldTimer) Track(sessionID, seatID string) {
	if h == nil || h.ttl <= 0 {
		return
	}
	k := h.key(sessionID, seatID)
	h.mu.Lock()
	defer h.mu.Unlock()
	if t, ok := h.timers[k]; ok {
		t.Stop()
	}
	h.timers[k] = time.AfterFunc(h.ttl, func() {
		h.mu.Lock()
		delete(h.timers, k)
		h.mu.Unlock()
		h.expire(sessionID, seatID)
	})
}

// Release stops the countdown for a seat, e.g. when the user toggles
// it off or the draft is finalized.
func (h *HoldTimer) Release(sessionID, seatID string) {
	if h == nil || h.ttl <= 0 {
		return
	}
	k := h.key(sessionID, seatID)
	h.mu.Lock()
	defer h.mu.Unlock()
	if t, ok := h.timers[k]; ok {
		t.Stop()
		delete(h.timers, k)
	}
}

// ReleaseSession stops every countdown belonging to a session.
func (h *HoldTimer) ReleaseSession(sessionID string) {
	if h == nil || h.ttl <= 0 {
		return
	}
	prefix := sessionID + "|"
	h.mu.Lock()
	defer h.mu.Unlock()
	for k, t := range h.timers {
		if len(k) > len(prefix) && k[:len(prefix)] == prefix {
			t.Stop()
			delete(h.timers, k)
		}
	}
}
