package generator

import "math/rand/v2"

// Source produces the values returned for GetRandom.
type Source interface {
	Int() int
}

// RandomSource draws uniformly over the whole int range, both endpoints
// included.
type RandomSource struct{}

// Compile-time verification that RandomSource implements Source.
var _ Source = RandomSource{}

// NewRandomSource returns a Source backed by the runtime's random generator.
func NewRandomSource() RandomSource {
	return RandomSource{}
}

// Int returns a uniformly distributed int in [math.MinInt, math.MaxInt].
//
// rand.Int is non-negative only, so the bits come from Uint64; on 32-bit
// builds the conversion keeps the low 32 bits, which are uniform as well.
func (RandomSource) Int() int {
	return int(uint(rand.Uint64()))
}

// FixedSource always returns the same value.
type FixedSource int

// Int implements Source.
func (f FixedSource) Int() int {
	return int(f)
}
