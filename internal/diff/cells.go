// Copyright (c) 2026 The tablediff Authors.
// SPDX-License-Identifier: Apache-2.0

package diff

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"github.com/tablediff/tablediff/internal/model"
)

// Comparator decides cell equality under the configured tolerances. It is
// stateless and safe for concurrent use.
type Comparator struct {
	ignoreCase       bool
	ignoreWhitespace bool
	collapseRuns     bool
	coerceTypes      bool
	tolerance        float64
}

// NewComparator builds a comparator from engine options.
func NewComparator(opts Options) *Comparator {
	return &Comparator{
		ignoreCase:       opts.IgnoreCase,
		ignoreWhitespace: opts.IgnoreWhitespace,
		collapseRuns:     opts.CollapseWhitespace,
		coerceTypes:      opts.CoerceTypes,
		tolerance:        opts.NumericTolerance,
	}
}

// Equal reports whether two cells are the same under the active tolerances.
// Two nulls are equal; null against anything else is a change. Numeric pairs
// are decided entirely by the tolerance rule (tolerance zero is exact).
// Mismatched types are always different unless coercion is enabled.
func (c *Comparator) Equal(a, b model.CellValue) bool {
	if a.IsNull() || b.IsNull() {
		return a.IsNull() && b.IsNull()
	}

	if an, aok := a.Numeric(); aok {
		if bn, bok := b.Numeric(); bok {
			return c.numericEqual(an, bn)
		}
	}

	if a.Type == model.TypeString && b.Type == model.TypeString {
		return c.normalize(a.Str) == c.normalize(b.Str)
	}

	if c.coerceTypes && a.Type != b.Type {
		ca, aok := coerce(a)
		cb, bok := coerce(b)
		// Recurse only when coercion changed a side, otherwise a pair like
		// Bool vs Int would re-enter with identical arguments.
		if aok && bok && (ca.Type != a.Type || cb.Type != b.Type) {
			return c.Equal(ca, cb)
		}
	}

	return a.Equal(b)
}

func (c *Comparator) numericEqual(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	return math.Abs(a-b) <= c.tolerance
}

// normalize applies the whitespace and case tolerances to a string.
func (c *Comparator) normalize(s string) string {
	if c.ignoreWhitespace {
		if c.collapseRuns {
			s = strings.Join(strings.Fields(s), " ")
		} else {
			s = strings.TrimSpace(s)
		}
	}
	if c.ignoreCase {
		s = cases.Fold().String(s)
	}
	return s
}

// coerce converts a string cell to its numeric or boolean reading. Non-string
// cells pass through untouched.
func coerce(v model.CellValue) (model.CellValue, bool) {
	if v.Type != model.TypeString {
		return v, true
	}
	s := strings.TrimSpace(v.Str)
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return model.IntValue(i), true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return model.FloatValue(f), true
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return model.BoolValue(b), true
	}
	return v, false
}

// PercentChange computes the relative numeric delta between two cells for
// display. The second return is false when either side is non-numeric or the
// change is undefined (old is zero, new is not).
func PercentChange(oldV, newV model.CellValue) (float64, bool) {
	a, aok := oldV.Numeric()
	b, bok := newV.Numeric()
	if !aok || !bok {
		return 0, false
	}
	if a == 0 {
		if b == 0 {
			return 0, true
		}
		return 0, false
	}
	return (b - a) / a * 100, true
}
