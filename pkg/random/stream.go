package random

import (
	"iter"
	"strings"
)

// Ints returns a lazy, finite, single-pass stream of random ints. The spec
// is validated here; on failure no elements are produced and the error
// carries the violated invariant. The stream length is fixed before the
// first element is yielded.
func Ints(spec IntSpec) (iter.Seq[int], error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}
	src := spec.source()
	n := spec.Cardinality.resolve(src)
	return func(yield func(int) bool) {
		for range n {
			if !yield(src.IntInRange(spec.Min, spec.Max)) {
				return
			}
		}
	}, nil
}

// Int64s returns a lazy, finite, single-pass stream of random int64s with
// the same contract as Ints.
func Int64s(spec Int64Spec) (iter.Seq[int64], error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}
	src := spec.source()
	n := spec.Cardinality.resolve(src)
	return func(yield func(int64) bool) {
		for range n {
			if !yield(src.Int64InRange(spec.Min, spec.Max)) {
				return
			}
		}
	}, nil
}

// Strings returns a lazy, finite, single-pass stream of random strings with
// the same contract as Ints. The character pool is resolved once per stream.
func Strings(spec StringSpec) (iter.Seq[string], error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}
	src := spec.source()
	pool := spec.pool()
	n := spec.Cardinality.resolve(src)
	return func(yield func(string) bool) {
		for range n {
			if !yield(nextString(src, pool, spec)) {
				return
			}
		}
	}, nil
}

func nextString(src Source, pool []rune, spec StringSpec) string {
	length := src.IntInRange(spec.MinLength, spec.MaxLength)
	var b strings.Builder
	b.Grow(len(spec.Prefix) + length + len(spec.Suffix))
	b.WriteString(spec.Prefix)
	for range length {
		b.WriteRune(pool[src.IntInRange(0, len(pool)-1)])
	}
	b.WriteString(spec.Suffix)
	return b.String()
}
