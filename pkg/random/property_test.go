package random

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"

	"github.com/nomagicln/randkit/internal/proptest"
)

// TestPropertyInt64InRange checks that every drawn value lies inside its
// inclusive bounds, across the full int64 range including extremes.
func TestPropertyInt64InRange(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping property test in short mode")
	}

	properties := gopter.NewProperties(proptest.TestParameters())

	properties.Property("insecure draws stay in [lo, hi]", prop.ForAll(
		func(a, b int64, seed uint64) bool {
			lo, hi := a, b
			if lo > hi {
				lo, hi = hi, lo
			}
			src := NewSeededSource(seed)
			v := src.Int64InRange(lo, hi)
			return v >= lo && v <= hi
		},
		proptest.Bound(),
		proptest.Bound(),
		proptest.Seed(),
	))

	properties.TestingRun(t)
}

func TestPropertySecureInt64InRange(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping property test in short mode")
	}

	properties := gopter.NewProperties(proptest.FastTestParameters())

	properties.Property("secure draws stay in [lo, hi]", prop.ForAll(
		func(a, b int64) bool {
			lo, hi := a, b
			if lo > hi {
				lo, hi = hi, lo
			}
			src := NewSource(Secure)
			v := src.Int64InRange(lo, hi)
			return v >= lo && v <= hi
		},
		proptest.Bound(),
		proptest.Bound(),
	))

	properties.TestingRun(t)
}

// TestPropertyStreamLength checks that fixed cardinality yields exactly the
// requested number of elements and that string lengths respect the bounds.
func TestPropertyStreamLength(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping property test in short mode")
	}

	properties := gopter.NewProperties(proptest.FastTestParameters())

	properties.Property("fixed count yields exactly count strings", prop.ForAll(
		func(count, lenA, lenB int) bool {
			minLen, maxLen := lenA, lenB
			if minLen > maxLen {
				minLen, maxLen = maxLen, minLen
			}
			seq, err := Strings(StringSpec{
				MinLength:   minLen,
				MaxLength:   maxLen,
				Type:        Alphanumeric,
				Cardinality: Exactly(count),
			})
			if err != nil {
				return false
			}
			n := 0
			for s := range seq {
				if len(s) < minLen || len(s) > maxLen {
					return false
				}
				n++
			}
			return n == count
		},
		proptest.Count(),
		proptest.Length(),
		proptest.Length(),
	))

	properties.TestingRun(t)
}
