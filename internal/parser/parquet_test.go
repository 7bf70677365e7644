// Copyright (c) 2026 The tablediff Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package parser

import (
	"bytes"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tablediff/tablediff/internal/model"
)

// buildParquet writes a small three-column file through the Arrow bridge.
func buildParquet(t *testing.T) []byte {
	t.Helper()
	pool := memory.DefaultAllocator
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "id", Type: arrow.PrimitiveTypes.Int64},
		{Name: "name", Type: arrow.BinaryTypes.String, Nullable: true},
		{Name: "score", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
	}, nil)

	bld := array.NewRecordBuilder(pool, schema)
	defer bld.Release()
	bld.Field(0).(*array.Int64Builder).AppendValues([]int64{1, 2, 3}, nil)
	bld.Field(1).(*array.StringBuilder).AppendValues([]string{"alpha", "beta", ""}, []bool{true, true, false})
	bld.Field(2).(*array.Float64Builder).AppendValues([]float64{1.5, 0, 9}, []bool{true, false, true})

	rec := bld.NewRecord()
	defer rec.Release()
	tbl := array.NewTableFromRecords(schema, []arrow.Record{rec})
	defer tbl.Release()

	var buf bytes.Buffer
	require.NoError(t, pqarrow.WriteTable(tbl, &buf, 1024,
		parquet.NewWriterProperties(), pqarrow.DefaultWriterProps()))
	return buf.Bytes()
}

func TestParquetParse(t *testing.T) {
	data := buildParquet(t)
	require.Equal(t, "parquet", DetectFormat(data))

	tbl, err := (&ParquetParser{}).Parse("test.parquet", data, Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "name", "score"}, tbl.ColumnNames())
	require.Equal(t, 3, tbl.RowCount())

	assert.Equal(t, model.IntValue(1), tbl.Rows[0].Cells[0])
	assert.Equal(t, model.StringValue("beta"), tbl.Rows[1].Cells[1])
	assert.True(t, tbl.Rows[2].Cells[1].IsNull())
	assert.True(t, tbl.Rows[1].Cells[2].IsNull())
	assert.Equal(t, model.FloatValue(9), tbl.Rows[2].Cells[2])

	assert.Equal(t, model.TypeInt, tbl.Column("id").Type)
	assert.Equal(t, model.TypeFloat, tbl.Column("score").Type)
}

func TestParquetParseGarbage(t *testing.T) {
	_, err := (&ParquetParser{}).Parse("bad.parquet", []byte("PAR1 not really"), Options{})
	assert.Error(t, err)
}
