// Copyright (c) 2026 The tablediff Authors.
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/dustin/go-humanize"

	"github.com/tablediff/tablediff/internal/diff"
	"github.com/tablediff/tablediff/internal/model"
)

// Terminal renders a human-readable report: header, schema changes,
// summary, added/removed row tables, and per-cell modifications.
type Terminal struct{}

// Render implements Renderer.
func (t *Terminal) Render(w io.Writer, res *diff.Result, rc Context) error {
	st := newStyles(rc.Color)

	fmt.Fprintln(w, st.rule.Render(ruleLine))
	fmt.Fprintf(w, " tablediff: %s -> %s\n", rc.OldPath, rc.NewPath)
	fmt.Fprintln(w, st.rule.Render(ruleLine))
	fmt.Fprintln(w)

	if !res.HasChanges() {
		fmt.Fprintln(w, "No differences found.")
		return nil
	}

	if len(res.SchemaChanges) > 0 {
		fmt.Fprintln(w, st.heading.Render("Schema Changes:"))
		for _, c := range res.SchemaChanges {
			fmt.Fprintf(w, "  %s\n", c)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Summary: +%d added, -%d removed, ~%d modified (out of %s -> %s rows)\n\n",
		res.Stats.RowsAdded, res.Stats.RowsRemoved, res.Stats.RowsModified,
		humanize.Comma(int64(res.Stats.OldRowCount)),
		humanize.Comma(int64(res.Stats.NewRowCount)))

	if added := res.AddedRows(); len(added) > 0 {
		fmt.Fprintln(w, st.heading.Render("Added Rows:"))
		fmt.Fprintln(w, rowTable(rc.NewTable, added, st.added, st.header))
		fmt.Fprintln(w)
	}
	if removed := res.RemovedRows(); len(removed) > 0 {
		fmt.Fprintln(w, st.heading.Render("Removed Rows:"))
		fmt.Fprintln(w, rowTable(rc.OldTable, removed, st.removed, st.header))
		fmt.Fprintln(w)
	}
	if modified := res.ModifiedRows(); len(modified) > 0 {
		fmt.Fprintln(w, st.heading.Render("Modified Rows:"))
		for _, change := range modified {
			fmt.Fprintf(w, "  %s:\n", change.Key)
			for _, cc := range change.Changes {
				writeCellChange(w, cc, st)
			}
		}
		fmt.Fprintln(w)
	}

	return nil
}

const ruleLine = "----------------------------------------------------------------"

type styles struct {
	rule    lipgloss.Style
	heading lipgloss.Style
	header  lipgloss.Style
	added   lipgloss.Style
	removed lipgloss.Style
	changed lipgloss.Style
}

// newStyles builds the style set. Every style stays plain when color is off:
// lipgloss renders its sequences unconditionally, so piped output would
// otherwise carry escapes.
func newStyles(color bool) styles {
	st := styles{
		rule:    lipgloss.NewStyle(),
		heading: lipgloss.NewStyle(),
		header:  lipgloss.NewStyle(),
		added:   lipgloss.NewStyle(),
		removed: lipgloss.NewStyle(),
		changed: lipgloss.NewStyle(),
	}
	if color {
		st.heading = st.heading.Bold(true)
		st.header = st.header.Bold(true)
		st.added = st.added.Foreground(lipgloss.Color("2"))
		st.removed = st.removed.Foreground(lipgloss.Color("1"))
		st.changed = st.changed.Foreground(lipgloss.Color("3"))
	}
	return st
}

// rowTable lays out full rows under the table's column headers.
func rowTable(tbl *model.Table, rows []*model.Row, cellStyle, headerStyle lipgloss.Style) string {
	data := make([][]string, len(rows))
	for i, row := range rows {
		cells := make([]string, len(row.Cells))
		for ci, c := range row.Cells {
			cells[ci] = c.Display()
		}
		data[i] = cells
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return cellStyle.Padding(0, 1)
		}).
		Headers(tbl.ColumnNames()...).
		Rows(data...).
		String()
}

func writeCellChange(w io.Writer, cc diff.CellChange, st styles) {
	suffix := ""
	if pct, ok := diff.PercentChange(cc.OldValue, cc.NewValue); ok && pct != 0 {
		suffix = fmt.Sprintf(" (%+.1f%%)", pct)
	}
	fmt.Fprintf(w, "    %s: %s -> %s%s\n",
		cc.Column,
		st.removed.Render(cc.OldValue.Display()),
		st.added.Render(cc.NewValue.Display()),
		suffix)
}
