// Package params feeds random value streams into parameterized subtests.
//
// Each generated value becomes one subtest, so failures report the exact
// input that broke the assertion. An invalid spec fails the parent test
// before any subtest runs.
package params

import (
	"fmt"
	"testing"

	"github.com/nomagicln/randkit/pkg/random"
)

// Ints runs fn as one subtest per generated int.
func Ints(t *testing.T, spec random.IntSpec, fn func(t *testing.T, value int)) {
	t.Helper()
	seq, err := random.Ints(spec)
	if err != nil {
		t.Fatalf("invalid int spec: %v", err)
	}
	i := 0
	for v := range seq {
		t.Run(fmt.Sprintf("%d_%d", i, v), func(t *testing.T) {
			fn(t, v)
		})
		i++
	}
}

// Int64s runs fn as one subtest per generated int64.
func Int64s(t *testing.T, spec random.Int64Spec, fn func(t *testing.T, value int64)) {
	t.Helper()
	seq, err := random.Int64s(spec)
	if err != nil {
		t.Fatalf("invalid int64 spec: %v", err)
	}
	i := 0
	for v := range seq {
		t.Run(fmt.Sprintf("%d_%d", i, v), func(t *testing.T) {
			fn(t, v)
		})
		i++
	}
}

// Strings runs fn as one subtest per generated string. Subtest names carry
// the index only; generated strings may contain characters that testing
// would mangle in names.
func Strings(t *testing.T, spec random.StringSpec, fn func(t *testing.T, value string)) {
	t.Helper()
	seq, err := random.Strings(spec)
	if err != nil {
		t.Fatalf("invalid string spec: %v", err)
	}
	i := 0
	for v := range seq {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			fn(t, v)
		})
		i++
	}
}
