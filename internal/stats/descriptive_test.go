package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 5.0, Mean([]float64{5}))
	assert.Equal(t, 2.5, Mean([]float64{1, 2, 3, 4}))
}

func TestVarianceAndStdDev(t *testing.T) {
	assert.Equal(t, 0.0, Variance([]float64{7}))

	// Sample variance of {2, 4, 4, 4, 5, 5, 7, 9} is 32/7
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	assert.InDelta(t, 32.0/7.0, Variance(values), 1e-9)
	assert.InDelta(t, 2.13808993, StdDev(values), 1e-6)
}

func TestMinMax(t *testing.T) {
	values := []float64{3.2, -1.5, 8.0, 0}
	assert.Equal(t, -1.5, Min(values))
	assert.Equal(t, 8.0, Max(values))
	assert.Equal(t, 0.0, Min(nil))
	assert.Equal(t, 0.0, Max(nil))
}

func TestQuantile(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}

	t.Run("exact ranks", func(t *testing.T) {
		assert.Equal(t, 1.0, Quantile(values, 0))
		assert.Equal(t, 3.0, Quantile(values, 0.5))
		assert.Equal(t, 5.0, Quantile(values, 1))
	})

	t.Run("interpolated", func(t *testing.T) {
		assert.InDelta(t, 1.4, Quantile(values, 0.1), 1e-9)
		assert.InDelta(t, 4.6, Quantile(values, 0.9), 1e-9)
	})

	t.Run("clamps out-of-range q", func(t *testing.T) {
		assert.Equal(t, 1.0, Quantile(values, -0.3))
		assert.Equal(t, 5.0, Quantile(values, 1.7))
	})

	t.Run("does not mutate input", func(t *testing.T) {
		unsorted := []float64{9, 1, 5}
		Quantile(unsorted, 0.5)
		assert.Equal(t, []float64{9, 1, 5}, unsorted)
	})
}

func TestMedian(t *testing.T) {
	assert.Equal(t, 3.0, Median([]float64{5, 1, 3}))
	assert.Equal(t, 2.5, Median([]float64{4, 1, 2, 3}))
}

func TestPercentile(t *testing.T) {
	values := []float64{10, 20, 30, 40, 50}
	assert.Equal(t, 30.0, Percentile(values, 50))
	assert.Equal(t, 50.0, Percentile(values, 100))
	assert.Equal(t, 0.0, Percentile(nil, 50))
}

func TestDescribe(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, Summary{}, Describe(nil))
	})

	t.Run("fare-like column", func(t *testing.T) {
		values := []float64{8.5, 12.0, 15.5, 22.0, 45.0}
		s := Describe(values)

		assert.Equal(t, 5, s.Count)
		assert.InDelta(t, 20.6, s.Mean, 1e-9)
		assert.Equal(t, 8.5, s.Min)
		assert.Equal(t, 45.0, s.Max)
		assert.Equal(t, 15.5, s.Median)
		assert.InDelta(t, 12.0, s.P25, 1e-9)
		assert.InDelta(t, 22.0, s.P75, 1e-9)
	})
}
