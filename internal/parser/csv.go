// Copyright (c) 2026 The tablediff Authors.
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/tablediff/tablediff/internal/model"
)

// CSVParser reads delimiter-separated text with a header row. The delimiter
// is a comma, or a tab for .tsv files.
type CSVParser struct{}

// Supports implements Parser.
func (p *CSVParser) Supports(ext string) bool {
	switch ext {
	case "csv", "tsv", "txt":
		return true
	}
	return false
}

// Parse implements Parser.
func (p *CSVParser) Parse(name string, data []byte, _ Options) (*model.Table, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = false
	if strings.ToLower(filepath.Ext(name)) == ".tsv" {
		r.Comma = '\t'
	}

	header, err := r.Read()
	if err == io.EOF {
		return nil, errors.New("file is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	columns := make([]model.Column, len(header))
	for i, h := range header {
		columns[i] = model.Column{Name: strings.TrimSpace(h), Index: i}
	}
	table := model.NewTable(columns)

	// Line 1 is the header, so data rows start at 2.
	line := 1
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", line, err)
		}
		cells := make([]model.CellValue, len(record))
		for i, field := range record {
			cells[i] = ParseScalar(field)
		}
		table.AddRow(cells, line)
	}

	table.InferTypes()
	return table, nil
}
