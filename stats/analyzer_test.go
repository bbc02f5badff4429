package stats

import (
	"testing"
	"time"

	"github.com/frankban/quicktest"

	"github.com/andys/dataforge/dataset"
)

func loadedAnalyzer() *Analyzer {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	a := NewAnalyzer(nil)
	a.Load(dataset.Table{
		{ID: 1, Category: "A", Value: 1, Score: 0.1, Status: "active", CreatedAt: base},
		{ID: 2, Category: "A", Value: 2, Score: 0.2, Status: "inactive", CreatedAt: base},
		{ID: 3, Category: "B", Value: 3, Score: 0.3, Status: "active", CreatedAt: base},
		{ID: 4, Category: "B", Value: 4, Score: 0.4, Status: "active", CreatedAt: base},
	})
	return a
}

func TestAggregateBy_Sum(t *testing.T) {
	c := quicktest.New(t)
	groups, err := loadedAnalyzer().AggregateBy(dataset.ColumnCategory, dataset.ColumnValue, AggSum)
	c.Assert(err, quicktest.IsNil)
	c.Assert(groups, quicktest.DeepEquals, []GroupResult{
		{Key: "A", Value: 3},
		{Key: "B", Value: 7},
	})
}

func TestAggregateBy_Mean(t *testing.T) {
	c := quicktest.New(t)
	groups, err := loadedAnalyzer().AggregateBy(dataset.ColumnCategory, dataset.ColumnValue, AggMean)
	c.Assert(err, quicktest.IsNil)
	c.Assert(groups, quicktest.DeepEquals, []GroupResult{
		{Key: "A", Value: 1.5},
		{Key: "B", Value: 3.5},
	})
}

func TestAggregateBy_Count(t *testing.T) {
	c := quicktest.New(t)
	groups, err := loadedAnalyzer().AggregateBy(dataset.ColumnStatus, dataset.ColumnValue, AggCount)
	c.Assert(err, quicktest.IsNil)
	c.Assert(groups, quicktest.DeepEquals, []GroupResult{
		{Key: "active", Value: 3},
		{Key: "inactive", Value: 1},
	})
}

func TestAggregateBy_UnknownFunction(t *testing.T) {
	c := quicktest.New(t)
	_, err := loadedAnalyzer().AggregateBy(dataset.ColumnCategory, dataset.ColumnValue, "max")
	c.Assert(err, quicktest.ErrorIs, ErrUnknownFunc)
}

func TestAggregateBy_UnknownColumns(t *testing.T) {
	c := quicktest.New(t)
	a := loadedAnalyzer()

	_, err := a.AggregateBy("region", dataset.ColumnValue, AggSum)
	c.Assert(err, quicktest.ErrorIs, dataset.ErrUnknownColumn)

	_, err = a.AggregateBy(dataset.ColumnCategory, "price", AggSum)
	c.Assert(err, quicktest.ErrorIs, dataset.ErrUnknownColumn)
}

func TestAggregateBy_EmptyTable(t *testing.T) {
	c := quicktest.New(t)
	a := NewAnalyzer(nil)
	a.Load(dataset.Table{})
	groups, err := a.AggregateBy(dataset.ColumnCategory, dataset.ColumnValue, AggSum)
	c.Assert(err, quicktest.IsNil)
	c.Assert(groups, quicktest.HasLen, 0)
}

func TestFilter_ByCategory(t *testing.T) {
	c := quicktest.New(t)
	filtered, err := loadedAnalyzer().Filter(dataset.ColumnCategory, "A")
	c.Assert(err, quicktest.IsNil)
	c.Assert(filtered, quicktest.HasLen, 2)
	for _, r := range filtered {
		c.Assert(r.Category, quicktest.Equals, "A")
	}
}

func TestFilter_ByNumericValue(t *testing.T) {
	c := quicktest.New(t)
	filtered, err := loadedAnalyzer().Filter(dataset.ColumnValue, 3.0)
	c.Assert(err, quicktest.IsNil)
	c.Assert(filtered, quicktest.HasLen, 1)
	c.Assert(filtered[0].ID, quicktest.Equals, 3)
}

func TestFilter_NoMatches(t *testing.T) {
	c := quicktest.New(t)
	filtered, err := loadedAnalyzer().Filter(dataset.ColumnCategory, "Z")
	c.Assert(err, quicktest.IsNil)
	c.Assert(filtered, quicktest.HasLen, 0)
}

func TestFilter_UnknownColumn(t *testing.T) {
	c := quicktest.New(t)
	_, err := loadedAnalyzer().Filter("region", "A")
	c.Assert(err, quicktest.ErrorIs, dataset.ErrUnknownColumn)
}

func TestStatistics_DescribesTable(t *testing.T) {
	c := quicktest.New(t)
	st := loadedAnalyzer().Statistics()

	c.Assert(st.Rows, quicktest.Equals, 4)
	c.Assert(st.Columns, quicktest.DeepEquals,
		[]string{"id", "category", "value", "score", "status", "created_at"})
	for _, column := range dataset.NumericColumns() {
		summary, ok := st.Numeric[column]
		c.Assert(ok, quicktest.IsTrue, quicktest.Commentf("column %q", column))
		c.Assert(summary["min"] <= summary["max"], quicktest.IsTrue)
	}
}

func TestStatistics_EmptyTable(t *testing.T) {
	c := quicktest.New(t)
	st := NewAnalyzer(nil).Statistics()
	c.Assert(st.Rows, quicktest.Equals, 0)
	c.Assert(st.Numeric, quicktest.HasLen, 0)
}
