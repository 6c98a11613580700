package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Missing is the sentinel used for absent values.
var Missing = math.NaN()

// IsMissing reports whether v is the missing sentinel.
func IsMissing(v float64) bool { return math.IsNaN(v) }

// Present returns the non-missing values of x (allocates a copy).
func Present(x []float64) []float64 {
	out := make([]float64, 0, len(x))
	for _, v := range x {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// CountMissing returns the number of missing values in x.
func CountMissing(x []float64) int {
	n := 0
	for _, v := range x {
		if math.IsNaN(v) {
			n++
		}
	}
	return n
}

// Mean computes the average of the present values, or NaN if there are none.
func Mean(x []float64) float64 {
	p := Present(x)
	if len(p) == 0 {
		return Missing
	}
	return stat.Mean(p, nil)
}

// Variance computes the sample variance (n-1 denominator) of the present values.
// Fewer than two present values yield NaN.
func Variance(x []float64) float64 {
	p := Present(x)
	if len(p) < 2 {
		return Missing
	}
	return stat.Variance(p, nil)
}

// Std computes the sample standard deviation.
func Std(x []float64) float64 {
	return math.Sqrt(Variance(x))
}

// MinMax returns the minimum and maximum present values, or NaN, NaN.
func MinMax(x []float64) (float64, float64) {
	p := Present(x)
	if len(p) == 0 {
		return Missing, Missing
	}
	return floats.Min(p), floats.Max(p)
}

// Sum returns the sum of the present values.
func Sum(x []float64) float64 {
	return floats.Sum(Present(x))
}

// Median returns the median of the present values.
func Median(x []float64) float64 {
	p := Present(x)
	n := len(p)
	if n == 0 {
		return Missing
	}
	sort.Float64s(p)
	mid := n >> 1
	if n&1 == 0 {
		return (p[mid-1] + p[mid]) * 0.5
	}
	return p[mid]
}

// Percentile returns the p-th percentile (0 <= p <= 100) of the present values
// using linear interpolation between closest ranks.
func Percentile(x []float64, p float64) float64 {
	cp := Present(x)
	n := len(cp)
	if n == 0 {
		return Missing
	}
	sort.Float64s(cp)
	if p <= 0 {
		return cp[0]
	}
	if p >= 100 {
		return cp[n-1]
	}
	rank := p / 100 * float64(n-1)
	lower := int(rank)
	upper := lower + 1
	weight := rank - float64(lower)
	if upper >= n {
		return cp[lower]
	}
	return cp[lower]*(1-weight) + cp[upper]*weight
}

// PairwisePresent returns the pairs (x[i], y[i]) where neither value is missing.
func PairwisePresent(x, y []float64) ([]float64, []float64) {
	n := min(len(x), len(y))
	xs := make([]float64, 0, n)
	ys := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		xs = append(xs, x[i])
		ys = append(ys, y[i])
	}
	return xs, ys
}

// Correlation computes the Pearson correlation over rows where both values are present.
func Correlation(x, y []float64) float64 {
	xs, ys := PairwisePresent(x, y)
	if len(xs) < 2 {
		return Missing
	}
	return stat.Correlation(xs, ys, nil)
}
