// Package random generates bounded random test values for parameterized tests.
//
// Each stream constructor takes an immutable spec describing the bounds, the
// character pool strategy (strings only), how many values to produce, and
// which random source quality to use. Specs are validated when the stream is
// created, never at construction time, so a malformed spec is inert until a
// stream is requested from it.
package random

// Security selects the quality of the underlying random generator.
type Security int

const (
	// Insecure uses a fast, statistically weak generator. This is the
	// default and is sufficient for test-case diversity.
	Insecure Security = iota

	// Secure uses a cryptographically strong generator. Markedly slower;
	// use only when a test specifically needs crypto-quality randomness.
	Secure
)

// String returns the lowercase name of the security level.
func (s Security) String() string {
	switch s {
	case Insecure:
		return "insecure"
	case Secure:
		return "secure"
	default:
		return "unknown"
	}
}

// CountStrategy controls whether a stream's length is fixed or randomized.
type CountStrategy int

const (
	// Fixed produces exactly Cardinality.Count values.
	Fixed CountStrategy = iota

	// Random draws the stream length once, uniformly from
	// [Cardinality.MinCount, Cardinality.MaxCount], before the first value
	// is produced. The length is not re-rolled per element.
	Random
)

// Cardinality describes how many values a stream yields.
// The zero value is invalid; use Exactly or Between.
type Cardinality struct {
	Strategy CountStrategy
	Count    int
	MinCount int
	MaxCount int
}

// Exactly returns a fixed cardinality of n values.
func Exactly(n int) Cardinality {
	return Cardinality{Strategy: Fixed, Count: n}
}

// Between returns a randomized cardinality drawn once from [min, max].
func Between(min, max int) Cardinality {
	return Cardinality{Strategy: Random, MinCount: min, MaxCount: max}
}

// resolve determines the stream length. Must be called after validation.
func (c Cardinality) resolve(src Source) int {
	if c.Strategy == Random {
		return src.IntInRange(c.MinCount, c.MaxCount)
	}
	return c.Count
}
