// Copyright (c) 2026 The tablediff Authors.
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"fmt"
	"strings"

	"github.com/zeebo/xxh3"
	"golang.org/x/text/cases"
)

// keySeparator joins composite key components. Components are escaped so the
// separator can never occur inside a normalized component.
const keySeparator = "|"

// ConfigError reports a key column name that does not exist in a table's
// schema. It is fatal and surfaced before any diffing starts.
type ConfigError struct {
	Column string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("unknown key column %q", e.Column)
}

// KeyOptions configures composite key construction. Columns empty means
// whole-row identity mode: the full row content becomes the key, so any cell
// edit makes a row unmatchable. FoldCase and TrimSpace mirror the cell
// comparison tolerances so that keys and cells normalize identically.
type KeyOptions struct {
	Columns   []string
	FoldCase  bool
	TrimSpace bool
}

// KeyResolver derives each row's composite key string and 64-bit hash.
type KeyResolver struct {
	opts KeyOptions
}

// NewKeyResolver creates a resolver for the given options.
func NewKeyResolver(opts KeyOptions) *KeyResolver {
	return &KeyResolver{opts: opts}
}

// WholeRow reports whether the resolver is in whole-row identity mode.
func (kr *KeyResolver) WholeRow() bool { return len(kr.opts.Columns) == 0 }

// Resolve computes Key and KeyHash for every row of the table and records
// the resolved key column indices on the table. Explicit key column names
// are resolved at call time; an unknown name is a *ConfigError.
func (kr *KeyResolver) Resolve(t *Table) error {
	indices := make([]int, 0, len(kr.opts.Columns))
	for _, name := range kr.opts.Columns {
		idx := t.ColumnIndex(name)
		if idx < 0 {
			return &ConfigError{Column: name}
		}
		indices = append(indices, idx)
	}
	t.KeyColumns = indices

	caser := cases.Fold()
	for ri := range t.Rows {
		row := &t.Rows[ri]
		row.Key = kr.buildKey(row, indices, caser)
		row.KeyHash = xxh3.HashString(row.Key)
	}
	return nil
}

// buildKey joins the normalized, escaped key components. Whole-row mode uses
// every cell in column order.
func (kr *KeyResolver) buildKey(row *Row, indices []int, caser cases.Caser) string {
	var parts []string
	if len(indices) == 0 {
		parts = make([]string, len(row.Cells))
		for i, cell := range row.Cells {
			parts[i] = escapeKeyPart(kr.normalize(cell.Display(), caser))
		}
	} else {
		parts = make([]string, len(indices))
		for i, idx := range indices {
			parts[i] = escapeKeyPart(kr.normalize(row.Cell(idx).Display(), caser))
		}
	}
	return strings.Join(parts, keySeparator)
}

func (kr *KeyResolver) normalize(s string, caser cases.Caser) string {
	if kr.opts.TrimSpace {
		s = strings.TrimSpace(s)
	}
	if kr.opts.FoldCase {
		s = caser.String(s)
	}
	return s
}

// escapeKeyPart backslash-escapes the separator and the escape character
// itself, so joined keys are unambiguous.
func escapeKeyPart(s string) string {
	if !strings.ContainsAny(s, `\`+keySeparator) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 2)
	for _, r := range s {
		if r == '\\' || r == '|' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
