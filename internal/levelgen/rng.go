package levelgen

// RNG is a splitmix64 generator. Level generation depends on the exact
// sequence, so the algorithm is fixed here rather than delegated to
// math/rand: every operation is wrap-around uint64 arithmetic, which makes
// the stream identical on every platform and Go release.
type RNG struct {
	state uint64
}

// NewRNG creates a generator seeded with the given value.
func NewRNG(seed uint64) *RNG {
	return &RNG{state: seed}
}

// Next returns the next value in the stream.
func (r *RNG) Next() uint64 {
	r.state += 0x9E3779B97F4A7C15
	z := r.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// IntRange returns a value in [lo, hi], inclusive on both ends. The modulo
// reduction has negligible bias for the small ranges used in generation.
// lo > hi returns lo.
func (r *RNG) IntRange(lo, hi int64) int64 {
	if lo >= hi {
		return lo
	}
	span := uint64(hi - lo + 1)
	return lo + int64(r.Next()%span)
}

// Percent returns a value in [0, 99].
func (r *RNG) Percent() int64 {
	return r.IntRange(0, 99)
}
