package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeanIgnoresMissing(t *testing.T) {
	assert.InDelta(t, 7.5, Mean([]float64{10, 5, Missing}), 1e-12)
	assert.True(t, math.IsNaN(Mean([]float64{Missing, Missing})))
	assert.True(t, math.IsNaN(Mean(nil)))
}

func TestVarianceIsSample(t *testing.T) {
	x := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	assert.InDelta(t, 32.0/7.0, Variance(x), 1e-12)
	assert.InDelta(t, math.Sqrt(32.0/7.0), Std(x), 1e-12)

	assert.True(t, math.IsNaN(Variance([]float64{3})))
	assert.True(t, math.IsNaN(Std([]float64{Missing, 3})))
	assert.InDelta(t, 2.0, Variance([]float64{1, Missing, 3}), 1e-12)
}

func TestMinMax(t *testing.T) {
	lo, hi := MinMax([]float64{Missing, 3, -1, 8})
	assert.Equal(t, -1.0, lo)
	assert.Equal(t, 8.0, hi)

	lo, hi = MinMax([]float64{Missing})
	assert.True(t, math.IsNaN(lo))
	assert.True(t, math.IsNaN(hi))
}

func TestMedianPercentile(t *testing.T) {
	x := []float64{5, 1, Missing, 3, 2, 4}
	assert.Equal(t, 3.0, Median(x))
	assert.Equal(t, 2.5, Median([]float64{1, 2, 3, 4}))
	assert.Equal(t, 1.0, Percentile(x, 0))
	assert.Equal(t, 5.0, Percentile(x, 100))
	assert.Equal(t, 2.0, Percentile(x, 25))
	assert.True(t, math.IsNaN(Median(nil)))
	// input untouched
	assert.Equal(t, 5.0, x[0])
}

func TestSumCountMissing(t *testing.T) {
	x := []float64{1, Missing, 2, Missing}
	assert.Equal(t, 3.0, Sum(x))
	assert.Equal(t, 2, CountMissing(x))
	assert.Equal(t, []float64{1, 2}, Present(x))
}

func TestPairwiseAndCorrelation(t *testing.T) {
	xs, ys := PairwisePresent([]float64{1, 2, Missing, 4}, []float64{2, Missing, 6, 8})
	assert.Equal(t, []float64{1, 4}, xs)
	assert.Equal(t, []float64{2, 8}, ys)

	assert.InDelta(t, 1.0, Correlation([]float64{1, 2, 3}, []float64{2, 4, 6}), 1e-12)
	assert.InDelta(t, -1.0, Correlation([]float64{1, 2, 3}, []float64{3, 2, 1}), 1e-12)
	assert.True(t, math.IsNaN(Correlation([]float64{1}, []float64{1})))
}
