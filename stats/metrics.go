package stats

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/andys/dataforge/dataset"
)

// Summary maps metric names (mean, median, std, min, max, q25, q75) to
// computed values. It is recomputed on each call and never persisted.
type Summary map[string]float64

// ErrEmptyTable is returned when a summary is requested for a table with no
// rows.
var ErrEmptyTable = errors.New("table is empty")

// Calculate summarizes one numeric column of t. The standard deviation is the
// sample standard deviation (n-1 divisor); a single-row column reports 0 so
// the summary never contains NaN. Quantiles interpolate linearly between
// closest ranks, and the median is the 0.5 quantile.
func Calculate(t dataset.Table, column string) (Summary, error) {
	if len(t) == 0 {
		return nil, ErrEmptyTable
	}
	values, err := t.Column(column)
	if err != nil {
		return nil, fmt.Errorf("failed to extract column %q: %w", column, err)
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	return Summary{
		"mean":   mean(values),
		"median": quantile(sorted, 0.5),
		"std":    stdDev(values),
		"min":    sorted[0],
		"max":    sorted[len(sorted)-1],
		"q25":    quantile(sorted, 0.25),
		"q75":    quantile(sorted, 0.75),
	}, nil
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// stdDev is the sample standard deviation. Fewer than two values give 0.
func stdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	m := mean(values)
	var ss float64
	for _, v := range values {
		d := v - m
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(values)-1))
}

// quantile expects sorted to be non-empty and ascending.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
