package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuartilesLinearInterpolation(t *testing.T) {
	lower, median, upper := Quartiles([]float64{4, 2, 1, 3})

	assert.InDelta(t, 1.75, lower, 1e-9)
	assert.InDelta(t, 2.5, median, 1e-9)
	assert.InDelta(t, 3.25, upper, 1e-9)
}

func TestQuartilesEdgeCases(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		lower, median, upper := Quartiles(nil)
		assert.Zero(t, lower)
		assert.Zero(t, median)
		assert.Zero(t, upper)
	})

	t.Run("single value", func(t *testing.T) {
		lower, median, upper := Quartiles([]float64{5})
		assert.Equal(t, 5.0, lower)
		assert.Equal(t, 5.0, median)
		assert.Equal(t, 5.0, upper)
	})
}

func TestQuartilesDoesNotMutateInput(t *testing.T) {
	costs := []float64{3, 1, 2}
	Quartiles(costs)
	assert.Equal(t, []float64{3, 1, 2}, costs)
}

func TestStandardDeviationSample(t *testing.T) {
	// Sample std (ddof=1) of the classic example set
	std := StandardDeviation([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	assert.InDelta(t, 2.13809, std, 1e-4)

	std = StandardDeviation([]float64{1, 3})
	assert.InDelta(t, 1.41421, std, 1e-4)
}

func TestStandardDeviationFewerThanTwo(t *testing.T) {
	assert.Zero(t, StandardDeviation(nil))
	assert.Zero(t, StandardDeviation([]float64{42}))
}
