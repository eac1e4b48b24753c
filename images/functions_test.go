package images

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min      float64
		max      float64
		expected float64
	}{
		{name: "Within range", value: 0.5, min: 0, max: 1, expected: 0.5},
		{name: "Below minimum", value: -10, min: 0, max: 255, expected: 0},
		{name: "Above maximum", value: 300.5, min: 0, max: 255, expected: 255},
		{name: "At minimum", value: 0, min: 0, max: 1, expected: 0},
		{name: "At maximum", value: 1, min: 0, max: 1, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Clamp(tt.value, tt.min, tt.max))
		})
	}
}

func TestParallel_CoversAllIndices(t *testing.T) {
	const n = 1000
	hits := make([]int, n)

	Parallel(n, func(start, end int) {
		for i := start; i < end; i++ {
			hits[i]++
		}
	})

	for i, h := range hits {
		assert.Equal(t, 1, h, "Index %d should be processed exactly once", i)
	}
}

func TestParallel_SmallWorkloadRunsSerially(t *testing.T) {
	// Below the partition threshold the callback gets the whole range.
	var calls int
	Parallel(1, func(start, end int) {
		calls++
		assert.Equal(t, 0, start)
		assert.Equal(t, 1, end)
	})
	assert.Equal(t, 1, calls)
}

func TestParallel_ZeroWork(t *testing.T) {
	Parallel(0, func(start, end int) {
		assert.Equal(t, start, end, "Zero work should produce an empty range")
	})
}
