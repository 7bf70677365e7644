// Copyright (c) 2026 The tablediff Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tablediff/tablediff/internal/model"
)

func TestDiffAgainstSelfIsEmpty(t *testing.T) {
	tbl := buildTable(t, []string{"id", "name", "score"},
		[]interface{}{1, "alpha", 1.5},
		[]interface{}{2, "beta", nil},
		[]interface{}{3, "GAMMA", 0.0},
	)

	res, err := Compute(tbl, tbl, Options{KeyColumns: []string{"id"}})
	require.NoError(t, err)

	assert.False(t, res.HasChanges())
	assert.Empty(t, res.SchemaChanges)
	assert.Empty(t, res.RowChanges)
	assert.Equal(t, 3, res.Stats.RowsUnchanged)
}

func TestDiffSymmetry(t *testing.T) {
	oldT := buildTable(t, []string{"id", "v"},
		[]interface{}{1, "a"},
		[]interface{}{2, "b"},
	)
	newT := buildTable(t, []string{"id", "v"},
		[]interface{}{2, "b"},
		[]interface{}{3, "c"},
	)

	forward, err := Compute(oldT, newT, Options{KeyColumns: []string{"id"}})
	require.NoError(t, err)
	backward, err := Compute(newT, oldT, Options{KeyColumns: []string{"id"}})
	require.NoError(t, err)

	assert.Equal(t, forward.Stats.RowsAdded, backward.Stats.RowsRemoved)
	assert.Equal(t, forward.Stats.RowsRemoved, backward.Stats.RowsAdded)
	assert.Equal(t, forward.Stats.RowsModified, backward.Stats.RowsModified)
}

func TestDiffNumericToleranceEndToEnd(t *testing.T) {
	oldT := buildTable(t, []string{"id", "value"}, []interface{}{1, 10.0})
	newT := buildTable(t, []string{"id", "value"}, []interface{}{1, 10.0005})

	loose, err := Compute(oldT, newT, Options{KeyColumns: []string{"id"}, NumericTolerance: 0.001})
	require.NoError(t, err)
	assert.False(t, loose.HasChanges())

	strict, err := Compute(oldT, newT, Options{KeyColumns: []string{"id"}})
	require.NoError(t, err)
	assert.True(t, strict.HasChanges())
	assert.Equal(t, 1, strict.Stats.RowsModified)
}

func TestDiffToleranceMonotonicity(t *testing.T) {
	// Widening the tolerance can only absorb more deltas, never surface new
	// ones: the modified count is non-increasing over an increasing sweep.
	oldT := buildTable(t, []string{"id", "value"},
		[]interface{}{1, 100.0},
		[]interface{}{2, 100.0},
		[]interface{}{3, 100.0},
		[]interface{}{4, 100.0},
		[]interface{}{5, 100.0},
	)
	newT := buildTable(t, []string{"id", "value"},
		[]interface{}{1, 100.0005},
		[]interface{}{2, 100.01},
		[]interface{}{3, 100.5},
		[]interface{}{4, 102.0},
		[]interface{}{5, 110.0},
	)

	prevModified := oldT.RowCount() + 1
	prevCells := prevModified
	for _, tol := range []float64{0, 0.001, 0.05, 1, 5, 100} {
		res, err := Compute(oldT, newT, Options{KeyColumns: []string{"id"}, NumericTolerance: tol})
		require.NoError(t, err)
		assert.LessOrEqual(t, res.Stats.RowsModified, prevModified, "tolerance %g", tol)
		assert.LessOrEqual(t, res.Stats.CellsChanged, prevCells, "tolerance %g", tol)
		prevModified = res.Stats.RowsModified
		prevCells = res.Stats.CellsChanged
	}

	// The sweep's extremes: everything differs at zero, nothing at 100.
	strict, err := Compute(oldT, newT, Options{KeyColumns: []string{"id"}})
	require.NoError(t, err)
	assert.Equal(t, 5, strict.Stats.RowsModified)
	loose, err := Compute(oldT, newT, Options{KeyColumns: []string{"id"}, NumericTolerance: 100})
	require.NoError(t, err)
	assert.Equal(t, 0, loose.Stats.RowsModified)
}

func TestDiffUnknownKeyColumn(t *testing.T) {
	oldT := buildTable(t, []string{"id"}, []interface{}{1})
	newT := buildTable(t, []string{"id"}, []interface{}{1})

	_, err := Compute(oldT, newT, Options{KeyColumns: []string{"nope"}})
	require.Error(t, err)
	var cfgErr *model.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestDiffStatsOnly(t *testing.T) {
	oldT := buildTable(t, []string{"id", "v"},
		[]interface{}{1, "a"},
		[]interface{}{2, "b"},
	)
	newT := buildTable(t, []string{"id", "v"},
		[]interface{}{1, "A"},
		[]interface{}{3, "c"},
	)

	res, err := Compute(oldT, newT, Options{KeyColumns: []string{"id"}, StatsOnly: true})
	require.NoError(t, err)

	// Counts stay exact even though the detail is dropped.
	assert.Nil(t, res.RowChanges)
	assert.Equal(t, 1, res.Stats.RowsModified)
	assert.Equal(t, 1, res.Stats.RowsRemoved)
	assert.Equal(t, 1, res.Stats.RowsAdded)
	assert.Equal(t, 1, res.Stats.CellsChanged)
	assert.True(t, res.HasChanges())
}

func TestDiffStatsAccounting(t *testing.T) {
	oldT := buildTable(t, []string{"id", "v"},
		[]interface{}{1, "a"},
		[]interface{}{2, "b"},
		[]interface{}{3, "c"},
		[]interface{}{4, "d"},
	)
	newT := buildTable(t, []string{"id", "v"},
		[]interface{}{1, "a"},
		[]interface{}{2, "B"},
		[]interface{}{4, "d"},
		[]interface{}{5, "e"},
	)

	res, err := Compute(oldT, newT, Options{KeyColumns: []string{"id"}})
	require.NoError(t, err)

	assert.Equal(t, 4, res.Stats.OldRowCount)
	assert.Equal(t, 4, res.Stats.NewRowCount)
	// Every old row is accounted for exactly once.
	assert.Equal(t, res.Stats.OldRowCount,
		res.Stats.RowsUnchanged+res.Stats.RowsModified+res.Stats.RowsRemoved)
	assert.Equal(t, res.Stats.NewRowCount,
		res.Stats.RowsUnchanged+res.Stats.RowsModified+res.Stats.RowsAdded)
}

func TestDiffKeyNormalizationFollowsTolerances(t *testing.T) {
	oldT := buildTable(t, []string{"id", "v"}, []interface{}{"Acme", 1})
	newT := buildTable(t, []string{"id", "v"}, []interface{}{" ACME ", 1})

	strict, err := Compute(oldT, newT, Options{KeyColumns: []string{"id"}})
	require.NoError(t, err)
	assert.Equal(t, 1, strict.Stats.RowsRemoved)
	assert.Equal(t, 1, strict.Stats.RowsAdded)

	relaxed, err := Compute(oldT, newT, Options{
		KeyColumns:       []string{"id"},
		IgnoreCase:       true,
		IgnoreWhitespace: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, relaxed.Stats.RowsRemoved)
	assert.Equal(t, 0, relaxed.Stats.RowsAdded)
	assert.Equal(t, 1, relaxed.Stats.RowsUnchanged)
}
