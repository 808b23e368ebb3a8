package dataset

import (
	"context"
	"strings"
)

// RawRow is one row of a delimited source, keyed by column name. Cells
// absent from a ragged row have no key. Values are the raw text as read;
// coercion happens in the cleansing stage.
type RawRow map[string]string

// Get returns the trimmed cell value for the named column and whether
// the cell exists.
func (r RawRow) Get(column string) (string, bool) {
	v, ok := r[column]
	return strings.TrimSpace(v), ok
}

// Table is an ordered row set read from a tabular source. Headers keeps
// the source column order; Rows keeps the source row order.
type Table struct {
	Headers []string
	Rows    []RawRow
}

// HasColumn reports whether the table carries the named column.
func (t *Table) HasColumn(name string) bool {
	for _, h := range t.Headers {
		if h == name {
			return true
		}
	}
	return false
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Source reads a tabular file into a Table. The first row of the file is
// the header row. Implementations return a data-load error when the file
// is absent, unreadable, or not decodable.
type Source interface {
	Read(ctx context.Context, path string) (*Table, error)
}

// newTable builds a Table from a header row and data rows, trimming
// header whitespace and skipping fully empty data rows. Ragged rows are
// tolerated: short rows simply lack the trailing columns.
func newTable(headers []string, records [][]string) *Table {
	cleaned := make([]string, len(headers))
	for i, h := range headers {
		cleaned[i] = strings.TrimSpace(h)
	}

	t := &Table{Headers: cleaned}
	for _, record := range records {
		empty := true
		for _, cell := range record {
			if strings.TrimSpace(cell) != "" {
				empty = false
				break
			}
		}
		if empty {
			continue
		}

		row := make(RawRow, len(cleaned))
		for i, name := range cleaned {
			if i < len(record) {
				row[name] = record[i]
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}
