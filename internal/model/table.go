// Copyright (c) 2026 The tablediff Authors.
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"sort"
	"strings"
)

// Column is one column of a table: its header name, its original ordinal
// position, and the type inferred from the data. Immutable once the table
// is built.
type Column struct {
	Name  string   `json:"name" yaml:"name"`
	Index int      `json:"index" yaml:"index"`
	Type  CellType `json:"-" yaml:"-"`
}

// Row is one row of a table. Key and KeyHash are derived once by the key
// resolver. SourceLine is the 1-based line or record number in the source
// file and is used for diagnostics only.
type Row struct {
	Cells      []CellValue
	Key        string
	KeyHash    uint64
	SourceLine int
}

// Cell returns the cell at the given column index, or the null value when
// the index is out of range.
func (r *Row) Cell(idx int) CellValue {
	if idx < 0 || idx >= len(r.Cells) {
		return NullValue()
	}
	return r.Cells[idx]
}

// Table is the normalized in-memory representation every parser produces.
// Rows always have exactly len(Columns) cells; AddRow pads short rows with
// nulls and truncates long ones. KeyColumns holds the resolved key column
// indices, set once by the key resolver and never re-resolved mid-diff.
type Table struct {
	Columns    []Column
	Rows       []Row
	KeyColumns []int
}

// NewTable creates an empty table with the given column definitions.
func NewTable(columns []Column) *Table {
	return &Table{Columns: columns}
}

// AddRow appends a row, normalizing the cell count to the column count.
func (t *Table) AddRow(cells []CellValue, sourceLine int) {
	switch {
	case len(cells) < len(t.Columns):
		padded := make([]CellValue, len(t.Columns))
		copy(padded, cells)
		for i := len(cells); i < len(padded); i++ {
			padded[i] = NullValue()
		}
		cells = padded
	case len(cells) > len(t.Columns):
		cells = cells[:len(t.Columns)]
	}
	t.Rows = append(t.Rows, Row{Cells: cells, SourceLine: sourceLine})
}

// ColumnIndex returns the position of the named column, or -1 when absent.
func (t *Table) ColumnIndex(name string) int {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return i
		}
	}
	return -1
}

// Column returns the named column, or nil when absent.
func (t *Table) Column(name string) *Column {
	if i := t.ColumnIndex(name); i >= 0 {
		return &t.Columns[i]
	}
	return nil
}

// ColumnNames returns the header names in schema order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int { return len(t.Rows) }

// ColumnCount returns the number of columns.
func (t *Table) ColumnCount() int { return len(t.Columns) }

// InferTypes computes each column's type by widening over its cells.
func (t *Table) InferTypes() {
	for ci := range t.Columns {
		inferred := TypeNull
		for ri := range t.Rows {
			inferred = inferred.Widen(t.Rows[ri].Cell(ci).Type)
		}
		t.Columns[ci].Type = inferred
	}
}

// SortByColumn stably sorts rows by the named column as a pre-diff
// normalization step. Unknown columns leave the order untouched and return
// false.
func (t *Table) SortByColumn(name string) bool {
	ci := t.ColumnIndex(name)
	if ci < 0 {
		return false
	}
	sort.SliceStable(t.Rows, func(i, j int) bool {
		return compareCells(t.Rows[i].Cell(ci), t.Rows[j].Cell(ci)) < 0
	})
	return true
}

// compareCells orders two cells of (usually) the same column. Numerics sort
// numerically, strings lexically, temporals chronologically. Mismatched
// kinds compare equal so the stable sort keeps their original order.
func compareCells(a, b CellValue) int {
	if an, aok := a.Numeric(); aok {
		if bn, bok := b.Numeric(); bok {
			switch {
			case an < bn:
				return -1
			case an > bn:
				return 1
			default:
				return 0
			}
		}
	}
	if a.Type == TypeString && b.Type == TypeString {
		return strings.Compare(a.Str, b.Str)
	}
	if (a.Type == TypeDate || a.Type == TypeDateTime) &&
		(b.Type == TypeDate || b.Type == TypeDateTime) {
		switch {
		case a.Time.Before(b.Time):
			return -1
		case a.Time.After(b.Time):
			return 1
		default:
			return 0
		}
	}
	return 0
}
