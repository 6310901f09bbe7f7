package params

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nomagicln/randkit/pkg/random"
)

func TestIntsRunsOneSubtestPerValue(t *testing.T) {
	ran := 0
	Ints(t, random.IntSpec{Min: 60, Max: 70, Cardinality: random.Exactly(25)}, func(t *testing.T, v int) {
		ran++
		assert.GreaterOrEqual(t, v, 60)
		assert.LessOrEqual(t, v, 70)
	})
	assert.Equal(t, 25, ran)
}

func TestInt64sRunsOneSubtestPerValue(t *testing.T) {
	ran := 0
	Int64s(t, random.Int64Spec{Min: -3, Max: 3, Cardinality: random.Exactly(10)}, func(t *testing.T, v int64) {
		ran++
		assert.GreaterOrEqual(t, v, int64(-3))
		assert.LessOrEqual(t, v, int64(3))
	})
	assert.Equal(t, 10, ran)
}

func TestStringsRandomCountWithinRange(t *testing.T) {
	ran := 0
	spec := random.StringSpec{
		MinLength: 2, MaxLength: 4,
		Type:        random.Alphabetic,
		Cardinality: random.Between(3, 8),
	}
	Strings(t, spec, func(t *testing.T, v string) {
		ran++
		assert.GreaterOrEqual(t, len(v), 2)
		assert.LessOrEqual(t, len(v), 4)
	})
	assert.GreaterOrEqual(t, ran, 3)
	assert.LessOrEqual(t, ran, 8)
}
