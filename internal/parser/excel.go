// Copyright (c) 2026 The tablediff Authors.
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/tablediff/tablediff/internal/model"
)

// ExcelParser reads one worksheet of an .xlsx workbook. Legacy OLE2 .xls
// files are rejected with a clear error.
type ExcelParser struct{}

// Supports implements Parser.
func (p *ExcelParser) Supports(ext string) bool {
	switch ext {
	case "xlsx", "xlsm", "xls":
		return true
	}
	return false
}

// Parse implements Parser.
func (p *ExcelParser) Parse(name string, data []byte, opts Options) (*model.Table, error) {
	if len(data) >= 4 && bytes.Equal(data[:4], []byte{0xD0, 0xCF, 0x11, 0xE0}) {
		return nil, errors.New("legacy .xls format is not supported; save as .xlsx")
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := opts.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheet)
	}

	header := rows[0]
	columns := make([]model.Column, len(header))
	for i, h := range header {
		columns[i] = model.Column{Name: strings.TrimSpace(h), Index: i}
	}
	table := model.NewTable(columns)

	for i, row := range rows[1:] {
		cells := make([]model.CellValue, len(row))
		for ci, field := range row {
			cells[ci] = ParseScalar(field)
		}
		// Sheet row numbers are 1-based and row 1 is the header.
		table.AddRow(cells, i+2)
	}

	table.InferTypes()
	return table, nil
}
