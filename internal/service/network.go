// Package service wires the draft flow to the booking record store.
// Booking creation and payment confirmation run against a simulated
// network: a configurable delay plus an independent random failure
// rate stand in for a real ticketing backend.
package service

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// Network is the latency and failure strategy injected into the
// booking service.  Wait blocks for the simulated round trip and
// Drop decides whether this call fails.  Tests pin the failure rate
// to 0 or 1 instead of relying on real randomness.
type Network interface {
	Wait(ctx context.Context) error
	Drop() bool
}

// SimulatedNetwork implements Network with a fixed delay and a
// failure probability in [0, 1].  The rand source is guarded by a
// mutex because handlers run concurrently.
type SimulatedNetwork struct {
	Delay       time.Duration
	FailureRate float64

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulatedNetwork builds a SimulatedNetwork seeded from the
// clock.  The seed only shapes which calls fail, never whether data
// is valid, so a time seed is fine here.
func NewSimulatedNetwork(delay time.Duration, failureRate float64) *SimulatedNetwork {
	return &SimulatedNetwork{
		Delay:       delay,
		FailureRate: failureRate,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Wait sleeps for the configured delay or until the context ends.
func (n *SimulatedNetwork) Wait(ctx context.Context) error {
	if n.Delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(n.Delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Drop returns true with probability FailureRate.
func (n *SimulatedNetwork) Drop() bool {
	if n.FailureRate <= 0 {
		return false
	}
	if n.FailureRate >= 1 {
		return true
	}
	n.mu.Lock()
	v := n.rng.Float64()
	n.mu.Unlock()
	return v < n.FailureRate
}
