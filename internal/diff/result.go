// Copyright (c) 2026 The tablediff Authors.
// SPDX-License-Identifier: Apache-2.0

package diff

import (
	"fmt"

	"github.com/tablediff/tablediff/internal/model"
)

// SchemaChangeKind discriminates SchemaChange variants.
type SchemaChangeKind string

// Schema change kinds.
const (
	ColumnAdded       SchemaChangeKind = "column_added"
	ColumnRemoved     SchemaChangeKind = "column_removed"
	ColumnRenamed     SchemaChangeKind = "column_renamed"
	ColumnMoved       SchemaChangeKind = "column_moved"
	ColumnTypeChanged SchemaChangeKind = "column_type_changed"
)

// SchemaChange is one difference between the old and new column lists.
// Which fields are meaningful depends on Kind.
type SchemaChange struct {
	Kind      SchemaChangeKind
	Name      string // added, removed, moved, type_changed
	OldName   string // renamed
	NewName   string // renamed
	Index     int    // added, removed, renamed
	FromIndex int    // moved
	ToIndex   int    // moved
	OldType   model.CellType
	NewType   model.CellType
}

// String renders the change the way the terminal output prints it.
func (c SchemaChange) String() string {
	switch c.Kind {
	case ColumnAdded:
		return fmt.Sprintf("+ %s (new column at position %d)", c.Name, c.Index)
	case ColumnRemoved:
		return fmt.Sprintf("- %s (removed from position %d)", c.Name, c.Index)
	case ColumnRenamed:
		return fmt.Sprintf("~ %s -> %s (renamed at position %d)", c.OldName, c.NewName, c.Index)
	case ColumnMoved:
		return fmt.Sprintf("> %s (moved from %d to %d)", c.Name, c.FromIndex, c.ToIndex)
	case ColumnTypeChanged:
		return fmt.Sprintf("! %s (type %s -> %s)", c.Name, c.OldType, c.NewType)
	default:
		return string(c.Kind)
	}
}

// CellChange is one differing cell within a matched row pair.
type CellChange struct {
	Column   string
	OldValue model.CellValue
	NewValue model.CellValue
}

// RowChangeKind discriminates RowChange variants.
type RowChangeKind string

// Row change kinds.
const (
	RowAdded    RowChangeKind = "added"
	RowRemoved  RowChangeKind = "removed"
	RowModified RowChangeKind = "modified"
)

// RowChange is one added, removed, or modified row. Added carries the
// new-side row, Removed the old-side row. Modified carries both plus the
// ordered cell changes; it is only ever produced with at least one change.
type RowChange struct {
	Kind    RowChangeKind
	Key     string
	Row     *model.Row // added/removed
	OldRow  *model.Row // modified
	NewRow  *model.Row // modified
	Changes []CellChange
}

// Stats are the derived counts for a diff. Never mutated independently of
// the row changes they summarize.
type Stats struct {
	RowsAdded     int `json:"rowsAdded" yaml:"rowsAdded"`
	RowsRemoved   int `json:"rowsRemoved" yaml:"rowsRemoved"`
	RowsModified  int `json:"rowsModified" yaml:"rowsModified"`
	RowsUnchanged int `json:"rowsUnchanged" yaml:"rowsUnchanged"`
	CellsChanged  int `json:"cellsChanged" yaml:"cellsChanged"`
	OldRowCount   int `json:"oldRowCount" yaml:"oldRowCount"`
	NewRowCount   int `json:"newRowCount" yaml:"newRowCount"`
}

// HasChanges reports whether any row-level change was counted.
func (s Stats) HasChanges() bool {
	return s.RowsAdded > 0 || s.RowsRemoved > 0 || s.RowsModified > 0
}

// Result is the complete, ordered description of what changed between two
// tables. It is built once by the engine and read-only thereafter; renderers
// must not re-derive or re-sort anything.
type Result struct {
	SchemaChanges []SchemaChange
	RowChanges    []RowChange
	Stats         Stats

	// WholeRowKeys records that matching used whole-row identity because no
	// key columns were configured.
	WholeRowKeys bool
}

// HasChanges reports whether the diff found any schema or row change. The
// caller maps this to process exit status.
func (r *Result) HasChanges() bool {
	return len(r.SchemaChanges) > 0 || r.Stats.HasChanges()
}

// AddedRows returns the added rows in result order.
func (r *Result) AddedRows() []*model.Row {
	var rows []*model.Row
	for i := range r.RowChanges {
		if r.RowChanges[i].Kind == RowAdded {
			rows = append(rows, r.RowChanges[i].Row)
		}
	}
	return rows
}

// RemovedRows returns the removed rows in result order.
func (r *Result) RemovedRows() []*model.Row {
	var rows []*model.Row
	for i := range r.RowChanges {
		if r.RowChanges[i].Kind == RowRemoved {
			rows = append(rows, r.RowChanges[i].Row)
		}
	}
	return rows
}

// ModifiedRows returns the modified row changes in result order.
func (r *Result) ModifiedRows() []*RowChange {
	var rows []*RowChange
	for i := range r.RowChanges {
		if r.RowChanges[i].Kind == RowModified {
			rows = append(rows, &r.RowChanges[i])
		}
	}
	return rows
}
