// Copyright (c) 2026 The tablediff Authors.
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"bytes"
	"context"
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet/file"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"

	"github.com/tablediff/tablediff/internal/model"
)

// ParquetParser reads a Parquet file through the Arrow bridge and flattens
// the columnar batches into rows of typed cells.
type ParquetParser struct{}

// Supports implements Parser.
func (p *ParquetParser) Supports(ext string) bool {
	return ext == "parquet"
}

// Parse implements Parser.
func (p *ParquetParser) Parse(name string, data []byte, _ Options) (*model.Table, error) {
	rdr, err := file.NewParquetReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}
	defer rdr.Close()

	arrowRdr, err := pqarrow.NewFileReader(rdr, pqarrow.ArrowReadProperties{}, memory.DefaultAllocator)
	if err != nil {
		return nil, fmt.Errorf("failed to create arrow reader: %w", err)
	}

	tbl, err := arrowRdr.ReadTable(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to read parquet data: %w", err)
	}
	defer tbl.Release()

	schema := tbl.Schema()
	columns := make([]model.Column, schema.NumFields())
	for i := 0; i < schema.NumFields(); i++ {
		columns[i] = model.Column{Name: schema.Field(i).Name, Index: i}
	}
	table := model.NewTable(columns)

	// Flatten column-major chunks into row-major cells.
	numRows := int(tbl.NumRows())
	cellsByColumn := make([][]model.CellValue, tbl.NumCols())
	for ci := 0; ci < int(tbl.NumCols()); ci++ {
		cellsByColumn[ci] = make([]model.CellValue, 0, numRows)
		for _, chunk := range tbl.Column(ci).Data().Chunks() {
			for i := 0; i < chunk.Len(); i++ {
				cellsByColumn[ci] = append(cellsByColumn[ci], arrowCell(chunk, i))
			}
		}
	}
	for ri := 0; ri < numRows; ri++ {
		cells := make([]model.CellValue, len(cellsByColumn))
		for ci := range cellsByColumn {
			cells[ci] = cellsByColumn[ci][ri]
		}
		table.AddRow(cells, ri+1)
	}

	table.InferTypes()
	return table, nil
}

// arrowCell converts one element of an Arrow array to a typed cell. Types
// without a direct CellValue mapping fall back to their string form.
func arrowCell(arr arrow.Array, i int) model.CellValue {
	if arr.IsNull(i) {
		return model.NullValue()
	}
	switch a := arr.(type) {
	case *array.Boolean:
		return model.BoolValue(a.Value(i))
	case *array.Int8:
		return model.IntValue(int64(a.Value(i)))
	case *array.Int16:
		return model.IntValue(int64(a.Value(i)))
	case *array.Int32:
		return model.IntValue(int64(a.Value(i)))
	case *array.Int64:
		return model.IntValue(a.Value(i))
	case *array.Uint8:
		return model.IntValue(int64(a.Value(i)))
	case *array.Uint16:
		return model.IntValue(int64(a.Value(i)))
	case *array.Uint32:
		return model.IntValue(int64(a.Value(i)))
	case *array.Uint64:
		return model.IntValue(int64(a.Value(i)))
	case *array.Float32:
		return model.FloatValue(float64(a.Value(i)))
	case *array.Float64:
		return model.FloatValue(a.Value(i))
	case *array.String:
		return model.StringValue(a.Value(i))
	case *array.LargeString:
		return model.StringValue(a.Value(i))
	case *array.Date32:
		return model.DateValue(a.Value(i).ToTime())
	case *array.Date64:
		return model.DateValue(a.Value(i).ToTime())
	case *array.Timestamp:
		unit := a.DataType().(*arrow.TimestampType).Unit
		return model.DateTimeValue(a.Value(i).ToTime(unit))
	default:
		return model.StringValue(arr.ValueStr(i))
	}
}
