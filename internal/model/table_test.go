// Copyright (c) 2026 The tablediff Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTable() *Table {
	t := NewTable([]Column{
		{Name: "id", Index: 0},
		{Name: "name", Index: 1},
		{Name: "score", Index: 2},
	})
	t.AddRow([]CellValue{IntValue(2), StringValue("beta"), FloatValue(7.5)}, 2)
	t.AddRow([]CellValue{IntValue(1), StringValue("alpha"), IntValue(9)}, 3)
	t.AddRow([]CellValue{IntValue(3), StringValue("gamma"), NullValue()}, 4)
	return t
}

func TestAddRowNormalizesCellCount(t *testing.T) {
	tbl := NewTable([]Column{{Name: "a", Index: 0}, {Name: "b", Index: 1}})

	tbl.AddRow([]CellValue{IntValue(1)}, 2)
	tbl.AddRow([]CellValue{IntValue(1), IntValue(2), IntValue(3)}, 3)

	require.Equal(t, 2, tbl.RowCount())
	assert.Len(t, tbl.Rows[0].Cells, 2)
	assert.True(t, tbl.Rows[0].Cells[1].IsNull(), "short row is padded with nulls")
	assert.Len(t, tbl.Rows[1].Cells, 2)
	assert.Equal(t, int64(2), tbl.Rows[1].Cells[1].Int, "long row is truncated")
}

func TestColumnLookup(t *testing.T) {
	tbl := newTestTable()

	assert.Equal(t, 1, tbl.ColumnIndex("name"))
	assert.Equal(t, -1, tbl.ColumnIndex("missing"))
	require.NotNil(t, tbl.Column("score"))
	assert.Nil(t, tbl.Column("missing"))
	assert.Equal(t, []string{"id", "name", "score"}, tbl.ColumnNames())
}

func TestRowCellOutOfRange(t *testing.T) {
	tbl := newTestTable()

	assert.True(t, tbl.Rows[0].Cell(-1).IsNull())
	assert.True(t, tbl.Rows[0].Cell(99).IsNull())
	assert.Equal(t, "beta", tbl.Rows[0].Cell(1).Str)
}

func TestInferTypes(t *testing.T) {
	tbl := newTestTable()
	tbl.InferTypes()

	assert.Equal(t, TypeInt, tbl.Column("id").Type)
	assert.Equal(t, TypeString, tbl.Column("name").Type)
	// score holds a float, an int and a null: widens to float.
	assert.Equal(t, TypeFloat, tbl.Column("score").Type)
}

func TestSortByColumn(t *testing.T) {
	tbl := newTestTable()

	require.True(t, tbl.SortByColumn("id"))
	assert.Equal(t, int64(1), tbl.Rows[0].Cells[0].Int)
	assert.Equal(t, int64(3), tbl.Rows[2].Cells[0].Int)

	require.True(t, tbl.SortByColumn("name"))
	assert.Equal(t, "alpha", tbl.Rows[0].Cells[1].Str)

	assert.False(t, tbl.SortByColumn("missing"))
}
