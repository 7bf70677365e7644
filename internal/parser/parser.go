// Copyright (c) 2026 The tablediff Authors.
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tablediff/tablediff/internal/log"
	"github.com/tablediff/tablediff/internal/model"
)

// Options carries the parse-time configuration shared by all formats.
type Options struct {
	// Sheet selects the Excel worksheet; empty means the first sheet.
	Sheet string
	// SortBy names a column to stably sort rows by before diffing, as an
	// order normalization. Unknown names are logged and ignored.
	SortBy string
}

// Parser reads one format into a normalized table.
type Parser interface {
	// Parse converts raw file bytes into a Table. name is used for
	// diagnostics only.
	Parse(name string, data []byte, opts Options) (*model.Table, error)
	// Supports reports whether the parser handles the extension (without
	// the dot, lowercase).
	Supports(ext string) bool
}

// parsers in dispatch order.
var parsers = []Parser{
	&CSVParser{},
	&JSONParser{},
	&ExcelParser{},
	&ParquetParser{},
}

// ForFile selects a parser by the file's extension, falling back to content
// sniffing for extensionless or unknown files.
func ForFile(name string, data []byte) (Parser, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if ext == "" {
		ext = DetectFormat(data)
		log.Debugf("sniffed format: name=%s format=%s", name, ext)
	}
	for _, p := range parsers {
		if p.Supports(ext) {
			return p, nil
		}
	}
	return nil, fmt.Errorf("unsupported file format: %q", ext)
}

// Parse reads a file's bytes into a table using the appropriate parser.
func Parse(name string, data []byte, opts Options) (*model.Table, error) {
	p, err := ForFile(name, data)
	if err != nil {
		return nil, err
	}
	t, err := p.Parse(name, data, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	if opts.SortBy != "" && !t.SortByColumn(opts.SortBy) {
		log.Warnf("sort-by column not found: %s", opts.SortBy)
	}
	return t, nil
}

// DetectFormat sniffs the file content and returns an extension-style format
// name. Parquet and Excel have magic headers; JSON starts with a bracket or
// brace; everything else is treated as CSV.
func DetectFormat(data []byte) string {
	switch {
	case len(data) >= 4 && bytes.Equal(data[:4], []byte("PAR1")):
		return "parquet"
	case len(data) >= 4 && bytes.Equal(data[:4], []byte{'P', 'K', 0x03, 0x04}):
		return "xlsx"
	case len(data) >= 4 && bytes.Equal(data[:4], []byte{0xD0, 0xCF, 0x11, 0xE0}):
		// Legacy OLE2 .xls container, which the Excel parser rejects with a
		// clear error rather than misreading as CSV.
		return "xls"
	}
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && (trimmed[0] == '[' || trimmed[0] == '{') {
		return "json"
	}
	return "csv"
}
