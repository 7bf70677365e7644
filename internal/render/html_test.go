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

func TestHTMLRender(t *testing.T) {
	res, rc := fixtureResult(t)

	var buf bytes.Buffer
	require.NoError(t, (&HTML{}).Render(&buf, res, rc))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "old.csv")
	assert.Contains(t, out, "new.csv")
	assert.Contains(t, out, "delta")
	assert.Contains(t, out, "gamma")
}

func TestHTMLRenderEscapesCellContent(t *testing.T) {
	oldT := fixtureTable(t, []interface{}{1, "<script>alert(1)</script>", 1.0})
	newT := fixtureTable(t, []interface{}{2, "safe", 2.0})

	res, err := diff.Compute(oldT, newT, diff.Options{KeyColumns: []string{"id"}})
	require.NoError(t, err)

	var buf bytes.Buffer
	rc := Context{OldPath: "o.csv", NewPath: "n.csv", OldTable: oldT, NewTable: newT}
	require.NoError(t, (&HTML{}).Render(&buf, res, rc))

	assert.NotContains(t, buf.String(), "<script>alert(1)</script>")
}
