package transforms

import "math/rand/v2"

// Range is a closed interval [Lo, Hi] a randomized transform samples from.
type Range struct {
	Lo, Hi float64
}

// Sym returns the symmetric range [-v, v].
func Sym(v float64) Range {
	if v < 0 {
		v = -v
	}
	return Range{Lo: -v, Hi: v}
}

// normalized returns the range with Lo <= Hi.
func (r Range) normalized() Range {
	if r.Lo > r.Hi {
		r.Lo, r.Hi = r.Hi, r.Lo
	}
	return r
}

// Option configures optional transform behavior.
type Option func(*options)

type options struct {
	rng *rand.Rand
}

// WithRand supplies an explicit random generator, making the transform's
// sampling deterministic for a fixed seed. Without it transforms draw from
// the process-wide math/rand/v2 generator.
func WithRand(r *rand.Rand) Option {
	return func(o *options) { o.rng = r }
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// uniform samples from [lo, hi) using rng, or the global generator when rng
// is nil.
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	var u float64
	if rng != nil {
		u = rng.Float64()
	} else {
		u = rand.Float64()
	}
	return lo + u*(hi-lo)
}

// intn samples from [0, n) using rng, or the global generator when rng is
// nil. n must be positive.
func intn(rng *rand.Rand, n int) int {
	if rng != nil {
		return rng.IntN(n)
	}
	return rand.IntN(n)
}

// uniformInt samples an integer from [lo, hi] inclusive.
func uniformInt(rng *rand.Rand, lo, hi int) int {
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo + intn(rng, hi-lo+1)
}

// fires draws the probability gate: the transform fires when a uniform draw
// from [0, 1) does not exceed prob.
func fires(rng *rand.Rand, prob float64) bool {
	return uniform(rng, 0, 1) <= prob
}

// validProb reports whether p is a usable probability.
func validProb(p float64) bool {
	return p >= 0 && p <= 1
}
