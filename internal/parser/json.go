// Copyright (c) 2026 The tablediff Authors.
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"errors"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/tablediff/tablediff/internal/model"
)

// JSONParser reads an array of flat objects (or a single object) into a
// table. The column list is the union of keys across all objects in
// first-seen order; nested arrays and objects are kept as their raw JSON
// text.
type JSONParser struct{}

// Supports implements Parser.
func (p *JSONParser) Supports(ext string) bool {
	return ext == "json"
}

// Parse implements Parser.
func (p *JSONParser) Parse(name string, data []byte, _ Options) (*model.Table, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("invalid JSON")
	}

	parsed := gjson.ParseBytes(data)
	var items []gjson.Result
	switch {
	case parsed.IsArray():
		items = parsed.Array()
	case parsed.IsObject():
		items = []gjson.Result{parsed}
	default:
		return nil, errors.New("JSON must be an array of objects or an object")
	}
	if len(items) == 0 {
		return nil, errors.New("JSON array is empty")
	}

	// Union of keys across all objects, first-seen order.
	var names []string
	seen := make(map[string]bool)
	for _, item := range items {
		item.ForEach(func(key, _ gjson.Result) bool {
			if k := key.String(); !seen[k] {
				seen[k] = true
				names = append(names, k)
			}
			return true
		})
	}
	if len(names) == 0 {
		return nil, errors.New("no object keys found in JSON")
	}

	columns := make([]model.Column, len(names))
	for i, n := range names {
		columns[i] = model.Column{Name: n, Index: i}
	}
	table := model.NewTable(columns)

	for i, item := range items {
		fields := make(map[string]gjson.Result, len(names))
		item.ForEach(func(key, value gjson.Result) bool {
			fields[key.String()] = value
			return true
		})
		cells := make([]model.CellValue, len(names))
		for ci, n := range names {
			if v, ok := fields[n]; ok {
				cells[ci] = jsonCell(v)
			} else {
				cells[ci] = model.NullValue()
			}
		}
		table.AddRow(cells, i+1)
	}

	table.InferTypes()
	return table, nil
}

// jsonCell converts one gjson value to a typed cell.
func jsonCell(r gjson.Result) model.CellValue {
	switch r.Type {
	case gjson.Null:
		return model.NullValue()
	case gjson.True:
		return model.BoolValue(true)
	case gjson.False:
		return model.BoolValue(false)
	case gjson.Number:
		// Integers have no fraction or exponent in their raw form.
		if !strings.ContainsAny(r.Raw, ".eE") {
			return model.IntValue(r.Int())
		}
		return model.FloatValue(r.Float())
	case gjson.String:
		if v, ok := parseTemporal(r.Str); ok {
			return v
		}
		return model.StringValue(r.Str)
	default:
		// Nested array or object: keep its JSON text.
		return model.StringValue(r.Raw)
	}
}
