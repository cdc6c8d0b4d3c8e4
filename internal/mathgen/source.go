package mathgen

import "math/rand/v2"

// Source supplies the random draws used by a Generator.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	// IntN returns a value in [0, n). n is always > 0.
	IntN(n int) int
}

// newDefaultSource returns an independently seeded PCG source so that
// separate generators never share random state.
func newDefaultSource() Source {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// between returns a uniform value in [lo, hi]. If hi < lo it returns lo.
func between(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.IntN(hi-lo+1)
}
