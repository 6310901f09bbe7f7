// Package proptest provides property-based testing infrastructure and generators.
package proptest

import (
	"math"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
)

// TestParameters returns the standard test parameters for property tests.
// Default: 1000 iterations for a good balance between coverage and speed.
func TestParameters() *gopter.TestParameters {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 1000
	return params
}

// FastTestParameters returns reduced-iteration parameters for property tests
// whose bodies are expensive, such as those that drain whole streams.
func FastTestParameters() *gopter.TestParameters {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 100
	return params
}

// Count generates valid stream cardinalities.
func Count() gopter.Gen {
	return gen.IntRange(1, 50)
}

// Length generates valid string body lengths.
func Length() gopter.Gen {
	return gen.IntRange(0, 64)
}

// Seed generates seeds for deterministic random sources.
func Seed() gopter.Gen {
	return gen.UInt64()
}

// Bound generates int64 bounds, biased toward small values and the extremes.
func Bound() gopter.Gen {
	return gen.Frequency(map[int]gopter.Gen{
		6: gen.Int64(),
		3: gen.Int64Range(-10, 10),
		1: gen.OneConstOf(int64(math.MinInt64), int64(math.MaxInt64)),
	})
}
