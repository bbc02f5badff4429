package stats

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/andys/dataforge/dataset"
	"github.com/andys/dataforge/utils"
)

// Aggregate functions accepted by AggregateBy.
const (
	AggSum   = "sum"
	AggMean  = "mean"
	AggCount = "count"
)

// ErrUnknownFunc is returned for an unrecognised aggregate function name.
var ErrUnknownFunc = errors.New("unknown aggregate function")

// Analyzer holds a loaded table and answers questions about it. Load then
// query; there is no incremental update.
type Analyzer struct {
	table dataset.Table
	log   *slog.Logger
}

// NewAnalyzer creates an analyzer with no table loaded. A nil logger falls
// back to slog.Default().
func NewAnalyzer(log *slog.Logger) *Analyzer {
	if log == nil {
		log = slog.Default()
	}
	return &Analyzer{log: log}
}

// Load replaces the analyzer's table.
func (a *Analyzer) Load(t dataset.Table) {
	a.table = t
	a.log.Debug("loaded table", "rows", len(t))
}

// Statistics describes the loaded table. An empty table yields zero-value
// statistics rather than an error, so callers can render "no data".
type Statistics struct {
	Rows    int
	Columns []string
	Numeric map[string]Summary
}

// Statistics reports row count, column names and a Summary per numeric
// column.
func (a *Analyzer) Statistics() Statistics {
	st := Statistics{
		Rows:    len(a.table),
		Columns: a.table.Columns(),
		Numeric: make(map[string]Summary),
	}
	if len(a.table) == 0 {
		return st
	}
	for _, col := range dataset.NumericColumns() {
		summary, err := Calculate(a.table, col)
		if err != nil {
			continue
		}
		st.Numeric[col] = summary
	}
	return st
}

// Filter returns the rows whose named column equals value.
func (a *Analyzer) Filter(column string, value any) (dataset.Table, error) {
	if !dataset.ValidColumn(column) {
		return nil, fmt.Errorf("%w: %s", dataset.ErrUnknownColumn, column)
	}
	filtered := make(dataset.Table, 0)
	for _, r := range a.table {
		got, err := r.Field(column)
		if err != nil {
			return nil, err
		}
		if got == value {
			filtered = append(filtered, r)
		}
	}
	a.log.Debug("filtered table", "column", column, "rows", len(filtered))
	return filtered, nil
}

// GroupResult is one group's aggregated value.
type GroupResult struct {
	Key   string
	Value float64
}

// AggregateBy groups rows by groupColumn and aggregates aggColumn with fn
// (AggSum, AggMean or AggCount). Results are ordered by group key.
func (a *Analyzer) AggregateBy(groupColumn, aggColumn, fn string) ([]GroupResult, error) {
	switch fn {
	case AggSum, AggMean, AggCount:
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFunc, fn)
	}
	if !dataset.ValidColumn(groupColumn) {
		return nil, fmt.Errorf("%w: %s", dataset.ErrUnknownColumn, groupColumn)
	}
	values, err := a.table.Column(aggColumn)
	if err != nil {
		return nil, fmt.Errorf("failed to extract column %q: %w", aggColumn, err)
	}

	sums := make(map[string]float64)
	counts := make(map[string]float64)
	keys := make([]string, 0)
	for i, r := range a.table {
		field, err := r.Field(groupColumn)
		if err != nil {
			return nil, err
		}
		key := fmt.Sprintf("%v", field)
		if _, seen := counts[key]; !seen {
			keys = append(keys, key)
		}
		counts[key]++
		sums[key] += values[i]
	}
	sort.Strings(keys)

	results := make([]GroupResult, 0, len(keys))
	for _, key := range keys {
		var v float64
		switch fn {
		case AggSum:
			v = sums[key]
		case AggMean:
			v = utils.SafeDivide(sums[key], counts[key], 0)
		case AggCount:
			v = counts[key]
		}
		results = append(results, GroupResult{Key: key, Value: v})
	}
	a.log.Debug("aggregated table", "group", groupColumn, "column", aggColumn, "func", fn, "groups", len(results))
	return results, nil
}
