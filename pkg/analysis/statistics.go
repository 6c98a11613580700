package analysis

import (
	"edakit/pkg/stats"
)

// columns selects headers (optionally restricted to rows) and returns one
// slice per header.
func (a *Analysis) columns(headers []string, rows []int) ([][]float64, error) {
	m, err := a.ds.Select(headers, rows...)
	if err != nil {
		return nil, err
	}
	out := make([][]float64, len(headers))
	for j := range headers {
		out[j] = m.Col(j)
	}
	return out, nil
}

func (a *Analysis) reduce(headers []string, rows []int, f func([]float64) float64) ([]float64, error) {
	cols, err := a.columns(headers, rows)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(cols))
	for j, c := range cols {
		out[j] = f(c)
	}
	return out, nil
}

func minimum(x []float64) float64 { lo, _ := stats.MinMax(x); return lo }
func maximum(x []float64) float64 { _, hi := stats.MinMax(x); return hi }

func spread(x []float64) float64 {
	lo, hi := stats.MinMax(x)
	return hi - lo
}

// Minimum returns the smallest present value of each header.
// rows restricts the computation to those row indices.
func (a *Analysis) Minimum(headers []string, rows ...int) ([]float64, error) {
	return a.reduce(headers, rows, minimum)
}

// Maximum returns the largest present value of each header.
func (a *Analysis) Maximum(headers []string, rows ...int) ([]float64, error) {
	return a.reduce(headers, rows, maximum)
}

// Range returns max - min of each header.
func (a *Analysis) Range(headers []string, rows ...int) ([]float64, error) {
	return a.reduce(headers, rows, spread)
}

// Extent returns the minimum and the maximum of each header.
func (a *Analysis) Extent(headers []string, rows ...int) (mins, maxes []float64, err error) {
	cols, err := a.columns(headers, rows)
	if err != nil {
		return nil, nil, err
	}
	mins = make([]float64, len(cols))
	maxes = make([]float64, len(cols))
	for j, c := range cols {
		mins[j], maxes[j] = stats.MinMax(c)
	}
	return mins, maxes, nil
}

// Mean returns the arithmetic mean of the present values of each header.
func (a *Analysis) Mean(headers []string, rows ...int) ([]float64, error) {
	return a.reduce(headers, rows, stats.Mean)
}

// Median returns the median of the present values of each header.
func (a *Analysis) Median(headers []string, rows ...int) ([]float64, error) {
	return a.reduce(headers, rows, stats.Median)
}

// Variance returns the sample variance (n-1) of each header.
func (a *Analysis) Variance(headers []string, rows ...int) ([]float64, error) {
	return a.reduce(headers, rows, stats.Variance)
}

// Std returns the sample standard deviation of each header.
func (a *Analysis) Std(headers []string, rows ...int) ([]float64, error) {
	return a.reduce(headers, rows, stats.Std)
}

// Correlation returns the Pearson correlation of x and y over rows where both are present.
func (a *Analysis) Correlation(x, y string) (float64, error) {
	cols, err := a.columns([]string{x, y}, nil)
	if err != nil {
		return 0, err
	}
	return stats.Correlation(cols[0], cols[1]), nil
}

// Summary holds the descriptive statistics of one header.
type Summary struct {
	Header   string
	Count    int
	Missing  int
	Min      float64
	Max      float64
	Range    float64
	Mean     float64
	Median   float64
	Variance float64
	Std      float64
}

// Describe summarizes each header. With no headers every numeric column is described.
func (a *Analysis) Describe(headers ...string) ([]Summary, error) {
	if len(headers) == 0 {
		headers = a.ds.NumericHeaders()
	}
	cols, err := a.columns(headers, nil)
	if err != nil {
		return nil, err
	}
	out := make([]Summary, len(cols))
	for j, c := range cols {
		missing := stats.CountMissing(c)
		lo, hi := stats.MinMax(c)
		out[j] = Summary{
			Header:   headers[j],
			Count:    len(c) - missing,
			Missing:  missing,
			Min:      lo,
			Max:      hi,
			Range:    hi - lo,
			Mean:     stats.Mean(c),
			Median:   stats.Median(c),
			Variance: stats.Variance(c),
			Std:      stats.Std(c),
		}
	}
	return out, nil
}
