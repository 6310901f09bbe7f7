package random

import (
	crand "crypto/rand"
	"math/big"
	mrand "math/rand/v2"
)

// Source draws uniformly distributed values from inclusive ranges.
// Implementations are not safe for concurrent use unless documented
// otherwise; each stream owns its own source.
type Source interface {
	// Int64InRange returns a uniform value in [lo, hi]. Both bounds are
	// inclusive and lo == hi is legal (the single value is returned).
	Int64InRange(lo, hi int64) int64

	// IntInRange is Int64InRange at int width.
	IntInRange(lo, hi int) int
}

// NewSource returns a fresh source of the requested security level.
// Insecure sources are seeded from the process-wide generator.
func NewSource(security Security) Source {
	if security == Secure {
		return secureSource{}
	}
	return &insecureSource{r: mrand.New(mrand.NewPCG(mrand.Uint64(), mrand.Uint64()))}
}

// NewSeededSource returns an insecure source with a fixed seed, for
// deterministic tests. Same seed, same sequence.
func NewSeededSource(seed uint64) Source {
	return &insecureSource{r: mrand.New(mrand.NewPCG(seed, seed))}
}

// insecureSource wraps a PCG generator. Fast, statistically weak, and
// confined to the stream that created it, so no locking is needed.
type insecureSource struct {
	r *mrand.Rand
}

func (s *insecureSource) Int64InRange(lo, hi int64) int64 {
	if lo == hi {
		return lo
	}
	// Width in uint64 space so hi-lo+1 cannot overflow. A width of zero
	// means the full int64 range was requested.
	width := uint64(hi) - uint64(lo) + 1
	if width == 0 {
		return int64(s.r.Uint64())
	}
	// Uint64N is rejection-corrected internally; the wraparound addition
	// is exact because the true result always fits in [lo, hi].
	return lo + int64(s.r.Uint64N(width))
}

func (s *insecureSource) IntInRange(lo, hi int) int {
	return int(s.Int64InRange(int64(lo), int64(hi)))
}

// secureSource draws from crypto/rand. Stateless; safe for concurrent use.
type secureSource struct{}

func (secureSource) Int64InRange(lo, hi int64) int64 {
	if lo == hi {
		return lo
	}
	// big.Int arithmetic keeps hi-lo+1 exact even for the full int64 range.
	width := new(big.Int).Sub(big.NewInt(hi), big.NewInt(lo))
	width.Add(width, big.NewInt(1))
	n, err := crand.Int(crand.Reader, width)
	if err != nil {
		// crypto/rand.Reader does not fail on supported platforms.
		panic("random: crypto source failed: " + err.Error())
	}
	return n.Add(n, big.NewInt(lo)).Int64()
}

func (s secureSource) IntInRange(lo, hi int) int {
	return int(s.Int64InRange(int64(lo), int64(hi)))
}
