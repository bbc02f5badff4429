package dataset

import (
	"errors"
	"fmt"
	"time"
)

// Record is one synthetic row of generated tabular data. Records are
// immutable once created; there is no lifecycle beyond being read.
type Record struct {
	ID        int
	Category  string
	Value     float64
	Score     float64
	Status    string
	CreatedAt time.Time
}

// Table is an ordered collection of Records.
type Table []Record

// Column names recognised by Column and Field.
const (
	ColumnID        = "id"
	ColumnCategory  = "category"
	ColumnValue     = "value"
	ColumnScore     = "score"
	ColumnStatus    = "status"
	ColumnCreatedAt = "created_at"
)

// ErrUnknownColumn is returned when a column name does not exist.
var ErrUnknownColumn = errors.New("unknown column")

var numericColumns = map[string]func(Record) float64{
	ColumnID:    func(r Record) float64 { return float64(r.ID) },
	ColumnValue: func(r Record) float64 { return r.Value },
	ColumnScore: func(r Record) float64 { return r.Score },
}

// Columns lists all column names in declaration order.
func (t Table) Columns() []string {
	return []string{ColumnID, ColumnCategory, ColumnValue, ColumnScore, ColumnStatus, ColumnCreatedAt}
}

// NumericColumns lists the column names that Column can extract.
func NumericColumns() []string {
	return []string{ColumnID, ColumnValue, ColumnScore}
}

// ValidColumn reports whether name is a known column.
func ValidColumn(name string) bool {
	switch name {
	case ColumnID, ColumnCategory, ColumnValue, ColumnScore, ColumnStatus, ColumnCreatedAt:
		return true
	}
	return false
}

// Column extracts the named numeric column as a float64 slice. The name is
// checked before the table is walked, so an unknown column fails even on an
// empty table.
func (t Table) Column(name string) ([]float64, error) {
	get, ok := numericColumns[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownColumn, name)
	}
	out := make([]float64, len(t))
	for i, r := range t {
		out[i] = get(r)
	}
	return out, nil
}

// Field returns the named field of r as a generic value.
func (r Record) Field(name string) (any, error) {
	switch name {
	case ColumnID:
		return r.ID, nil
	case ColumnCategory:
		return r.Category, nil
	case ColumnValue:
		return r.Value, nil
	case ColumnScore:
		return r.Score, nil
	case ColumnStatus:
		return r.Status, nil
	case ColumnCreatedAt:
		return r.CreatedAt, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownColumn, name)
}
