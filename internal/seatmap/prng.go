// Package seatmap owns the hall layout and derives deterministic,
// pseudo-random seat occupancy for a (date, showtime) pair.  The
// occupancy is demo data: it is stable within a running process but
// carries no meaning across restarts.
package seatmap

// prng is a splitmix64 sequence.  It is deliberately not a
// cryptographic source; the generator only needs a cheap, portable
// stream that is fully determined by its integer seed.
type prng struct {
	state uint64
}

func newPRNG(seed uint64) *prng { return &prng{state: seed} }

// next returns the next 64-bit value of the sequence.
func (p *prng) next() uint64 {
	p.state += 0x9e3779b97f4a7c15
	z := p.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// intn returns a value in [0, n).  n must be positive.
func (p *prng) intn(n int) int {
	return int(p.next() % uint64(n))
}

// seedFrom folds the characters of a key into a 64-bit seed.  The
// exact mixing does not matter as long as it is stable; a multiply
// and add per byte spreads short keys well enough.
func seedFrom(key string) uint64 {
	var s uint64
	for i := 0; i < len(key); i++ {
		s = s*31 + uint64(key[i])
	}
	return s
}
