// Copyright (c) 2026 The tablediff Authors.
// SPDX-License-Identifier: Apache-2.0

package diff

// Options is the engine configuration, threaded explicitly from the CLI
// layer into each engine call. Zero value means exact comparison with
// whole-row identity matching.
type Options struct {
	// KeyColumns are the ordered key column names. Empty enables whole-row
	// identity matching.
	KeyColumns []string

	// IgnoreCase compares strings under Unicode case folding. It also applies
	// to key construction.
	IgnoreCase bool

	// IgnoreWhitespace trims leading/trailing whitespace before comparing.
	// It also applies to key construction.
	IgnoreWhitespace bool

	// CollapseWhitespace additionally collapses internal whitespace runs to a
	// single space. Only meaningful with IgnoreWhitespace.
	CollapseWhitespace bool

	// NumericTolerance treats two numeric values as equal when their absolute
	// difference is at most this value. Zero means exact.
	NumericTolerance float64

	// IgnoreColumns are excluded from cell comparison and from RowChange
	// output entirely.
	IgnoreColumns []string

	// Renames maps old column names to new ones, explicitly disambiguating
	// rename detection.
	Renames map[string]string

	// CoerceTypes compares values of mismatched types by parsing strings as
	// numbers or booleans ("1" equals 1). Off by default: type mismatches
	// are always changes.
	CoerceTypes bool

	// StatsOnly suppresses detailed RowChange contents in the Result while
	// keeping the stats exact.
	StatsOnly bool
}

// ignoreSet returns the ignored columns as a set.
func (o Options) ignoreSet() map[string]struct{} {
	if len(o.IgnoreColumns) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(o.IgnoreColumns))
	for _, name := range o.IgnoreColumns {
		set[name] = struct{}{}
	}
	return set
}
