package domain

import (
	"github.com/bxcodec/faker/v4"

	"github.com/orayew2002/rast-columns/excel"
)

// Column is one signed grid column with its header label.
// Title is free text shown under the label (may be empty).
type Column struct {
	Index int64
	Label string
	Title string
}

// Columns returns n consecutive columns starting at index start.
// The run stops early rather than wrapping past math.MaxInt64.
func Columns(start int64, n int) []Column {
	cols := make([]Column, 0, max(n, 0))
	for i := 0; i < n; i++ {
		idx := start + int64(i)
		if idx < start {
			break
		}
		cols = append(cols, Column{Index: idx, Label: excel.ColumnName(idx)})
	}
	return cols
}

// GenerateColumns is Columns with random titles, for sample workbooks.
func GenerateColumns(start int64, n int) []Column {
	cols := Columns(start, n)
	for i := range cols {
		cols[i].Title = faker.Word()
	}
	return cols
}

// Labels returns the label of every column, in order.
func Labels(cols []Column) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.Label
	}
	return out
}
