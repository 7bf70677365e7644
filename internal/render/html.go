// Copyright (c) 2026 The tablediff Authors.
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"html/template"
	"io"

	"github.com/tablediff/tablediff/internal/diff"
	"github.com/tablediff/tablediff/internal/model"
)

// HTML renders a standalone report page.
type HTML struct{}

type htmlData struct {
	OldPath       string
	NewPath       string
	HasChanges    bool
	SchemaChanges []string
	Stats         diff.Stats
	Headers       []string
	OldHeaders    []string
	Added         [][]string
	Removed       [][]string
	Modified      []htmlModified
}

type htmlModified struct {
	Key     string
	Changes []htmlCellChange
}

type htmlCellChange struct {
	Column string
	Old    string
	New    string
}

// Render implements Renderer.
func (h *HTML) Render(w io.Writer, res *diff.Result, rc Context) error {
	data := htmlData{
		OldPath:    rc.OldPath,
		NewPath:    rc.NewPath,
		HasChanges: res.HasChanges(),
		Stats:      res.Stats,
		Headers:    rc.NewTable.ColumnNames(),
		OldHeaders: rc.OldTable.ColumnNames(),
	}
	for _, c := range res.SchemaChanges {
		data.SchemaChanges = append(data.SchemaChanges, c.String())
	}
	for _, row := range res.AddedRows() {
		data.Added = append(data.Added, displayCells(row))
	}
	for _, row := range res.RemovedRows() {
		data.Removed = append(data.Removed, displayCells(row))
	}
	for _, c := range res.ModifiedRows() {
		m := htmlModified{Key: c.Key}
		for _, cc := range c.Changes {
			m.Changes = append(m.Changes, htmlCellChange{
				Column: cc.Column,
				Old:    cc.OldValue.Display(),
				New:    cc.NewValue.Display(),
			})
		}
		data.Modified = append(data.Modified, m)
	}
	return htmlTemplate.Execute(w, data)
}

func displayCells(row *model.Row) []string {
	cells := make([]string, len(row.Cells))
	for i, c := range row.Cells {
		cells[i] = c.Display()
	}
	return cells
}

var htmlTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>tablediff: {{.OldPath}} vs {{.NewPath}}</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; margin: 1em 0; }
th, td { border: 1px solid #ccc; padding: 4px 8px; text-align: left; }
th { background: #f0f0f0; }
.added { background: #e6ffe6; }
.removed { background: #ffe6e6; }
.old { color: #a00; text-decoration: line-through; }
.new { color: #080; }
</style>
</head>
<body>
<h1>tablediff</h1>
<p><code>{{.OldPath}}</code> &rarr; <code>{{.NewPath}}</code></p>
{{- if not .HasChanges}}
<p>No differences found.</p>
{{- else}}
{{- if .SchemaChanges}}
<h2>Schema Changes</h2>
<ul>
{{- range .SchemaChanges}}
<li>{{.}}</li>
{{- end}}
</ul>
{{- end}}
<h2>Summary</h2>
<p>+{{.Stats.RowsAdded}} added, -{{.Stats.RowsRemoved}} removed,
~{{.Stats.RowsModified}} modified ({{.Stats.OldRowCount}} &rarr; {{.Stats.NewRowCount}} rows,
{{.Stats.CellsChanged}} cells changed)</p>
{{- if .Added}}
<h2>Added Rows</h2>
<table>
<tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr>
{{- range .Added}}
<tr class="added">{{range .}}<td>{{.}}</td>{{end}}</tr>
{{- end}}
</table>
{{- end}}
{{- if .Removed}}
<h2>Removed Rows</h2>
<table>
<tr>{{range .OldHeaders}}<th>{{.}}</th>{{end}}</tr>
{{- range .Removed}}
<tr class="removed">{{range .}}<td>{{.}}</td>{{end}}</tr>
{{- end}}
</table>
{{- end}}
{{- if .Modified}}
<h2>Modified Rows</h2>
{{- range .Modified}}
<h3>{{.Key}}</h3>
<table>
<tr><th>Column</th><th>Old</th><th>New</th></tr>
{{- range .Changes}}
<tr><td>{{.Column}}</td><td class="old">{{.Old}}</td><td class="new">{{.New}}</td></tr>
{{- end}}
</table>
{{- end}}
{{- end}}
{{- end}}
</body>
</html>
`))
