// Copyright (c) 2026 The tablediff Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tablediff/tablediff/internal/diff"
)

func TestTerminalRender(t *testing.T) {
	res, rc := fixtureResult(t)

	var buf bytes.Buffer
	require.NoError(t, (&Terminal{}).Render(&buf, res, rc))
	out := buf.String()

	assert.Contains(t, out, "tablediff: old.csv -> new.csv")
	assert.Contains(t, out, "Summary: +1 added, -1 removed, ~1 modified (out of 3 -> 3 rows)")
	assert.Contains(t, out, "Added Rows:")
	assert.Contains(t, out, "Removed Rows:")
	assert.Contains(t, out, "Modified Rows:")
	assert.Contains(t, out, "delta")
	assert.Contains(t, out, "gamma")
	assert.Contains(t, out, "name: beta -> BETA")
	assert.NotContains(t, out, "\x1b[", "no ANSI escapes without color")
}

func TestTerminalRenderColor(t *testing.T) {
	res, rc := fixtureResult(t)
	rc.Color = true

	var buf bytes.Buffer
	require.NoError(t, (&Terminal{}).Render(&buf, res, rc))

	assert.Contains(t, buf.String(), "\x1b[1m", "bold escapes expected with color on")
}

func TestTerminalRenderNoChanges(t *testing.T) {
	tbl := fixtureTable(t, []interface{}{1, "alpha", 1.5})
	res, err := diff.Compute(tbl, tbl, diff.Options{KeyColumns: []string{"id"}})
	require.NoError(t, err)

	var buf bytes.Buffer
	rc := Context{OldPath: "a.csv", NewPath: "a.csv", OldTable: tbl, NewTable: tbl}
	require.NoError(t, (&Terminal{}).Render(&buf, res, rc))

	assert.Contains(t, buf.String(), "No differences found.")
	assert.NotContains(t, buf.String(), "Summary:")
}

func TestTerminalRenderPercentChange(t *testing.T) {
	oldT := fixtureTable(t, []interface{}{1, "alpha", 100.0})
	newT := fixtureTable(t, []interface{}{1, "alpha", 150.0})

	res, err := diff.Compute(oldT, newT, diff.Options{KeyColumns: []string{"id"}})
	require.NoError(t, err)

	var buf bytes.Buffer
	rc := Context{OldPath: "o.csv", NewPath: "n.csv", OldTable: oldT, NewTable: newT}
	require.NoError(t, (&Terminal{}).Render(&buf, res, rc))

	assert.Contains(t, buf.String(), "score: 100 -> 150 (+50.0%)")
}

func TestTerminalRenderSchemaChanges(t *testing.T) {
	oldT := fixtureTable(t, []interface{}{1, "alpha", 1.5})
	newT := fixtureTable(t, []interface{}{1, "alpha", 1.5})
	newT.Columns[2].Name = "points"

	res, err := diff.Compute(oldT, newT, diff.Options{KeyColumns: []string{"id"}})
	require.NoError(t, err)

	var buf bytes.Buffer
	rc := Context{OldPath: "o.csv", NewPath: "n.csv", OldTable: oldT, NewTable: newT}
	require.NoError(t, (&Terminal{}).Render(&buf, res, rc))

	out := buf.String()
	assert.Contains(t, out, "Schema Changes:")
	assert.True(t, strings.Contains(out, "score -> points"), out)
}
