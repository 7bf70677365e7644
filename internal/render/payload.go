// Copyright (c) 2026 The tablediff Authors.
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"github.com/tablediff/tablediff/internal/diff"
	"github.com/tablediff/tablediff/internal/model"
)

// payload is the serialized shape shared by the JSON and YAML renderers.
type payload struct {
	OldFile       string         `json:"oldFile" yaml:"oldFile"`
	NewFile       string         `json:"newFile" yaml:"newFile"`
	WholeRowKeys  bool           `json:"wholeRowKeys" yaml:"wholeRowKeys"`
	SchemaChanges []schemaChange `json:"schemaChanges" yaml:"schemaChanges"`
	RowChanges    []rowChange    `json:"rowChanges" yaml:"rowChanges"`
	Stats         diff.Stats     `json:"stats" yaml:"stats"`
}

type schemaChange struct {
	Kind      string `json:"kind" yaml:"kind"`
	Name      string `json:"name,omitempty" yaml:"name,omitempty"`
	OldName   string `json:"oldName,omitempty" yaml:"oldName,omitempty"`
	NewName   string `json:"newName,omitempty" yaml:"newName,omitempty"`
	Index     int    `json:"index" yaml:"index"`
	FromIndex int    `json:"fromIndex,omitempty" yaml:"fromIndex,omitempty"`
	ToIndex   int    `json:"toIndex,omitempty" yaml:"toIndex,omitempty"`
	OldType   string `json:"oldType,omitempty" yaml:"oldType,omitempty"`
	NewType   string `json:"newType,omitempty" yaml:"newType,omitempty"`
}

type rowChange struct {
	Kind    string                     `json:"kind" yaml:"kind"`
	Key     string                     `json:"key" yaml:"key"`
	Row     map[string]model.CellValue `json:"row,omitempty" yaml:"row,omitempty"`
	Changes []cellChange               `json:"changes,omitempty" yaml:"changes,omitempty"`
}

type cellChange struct {
	Column   string          `json:"column" yaml:"column"`
	OldValue model.CellValue `json:"oldValue" yaml:"oldValue"`
	NewValue model.CellValue `json:"newValue" yaml:"newValue"`
}

// buildPayload flattens a result for serialization. Row contents become
// column-name keyed maps; both encoders emit map keys sorted, so repeated
// runs serialize byte-identically.
func buildPayload(res *diff.Result, rc Context) payload {
	p := payload{
		OldFile:       rc.OldPath,
		NewFile:       rc.NewPath,
		WholeRowKeys:  res.WholeRowKeys,
		SchemaChanges: []schemaChange{},
		RowChanges:    []rowChange{},
		Stats:         res.Stats,
	}

	for _, c := range res.SchemaChanges {
		sc := schemaChange{
			Kind:      string(c.Kind),
			Name:      c.Name,
			OldName:   c.OldName,
			NewName:   c.NewName,
			Index:     c.Index,
			FromIndex: c.FromIndex,
			ToIndex:   c.ToIndex,
		}
		if c.Kind == diff.ColumnTypeChanged {
			sc.OldType = c.OldType.String()
			sc.NewType = c.NewType.String()
		}
		p.SchemaChanges = append(p.SchemaChanges, sc)
	}

	for _, c := range res.RowChanges {
		out := rowChange{Kind: string(c.Kind), Key: c.Key}
		switch c.Kind {
		case diff.RowAdded:
			out.Row = rowMap(rc.NewTable, c.Row)
		case diff.RowRemoved:
			out.Row = rowMap(rc.OldTable, c.Row)
		case diff.RowModified:
			for _, cc := range c.Changes {
				out.Changes = append(out.Changes, cellChange{
					Column:   cc.Column,
					OldValue: cc.OldValue,
					NewValue: cc.NewValue,
				})
			}
		}
		p.RowChanges = append(p.RowChanges, out)
	}

	return p
}

func rowMap(t *model.Table, row *model.Row) map[string]model.CellValue {
	m := make(map[string]model.CellValue, len(t.Columns))
	for i, col := range t.Columns {
		m[col.Name] = row.Cell(i)
	}
	return m
}
