// Copyright (c) 2026 The tablediff Authors.
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"
)

// CellType is the inferred type of a column or the concrete type of a cell.
type CellType int

// Cell types, ordered roughly by "width". TypeMixed only ever appears as a
// column's inferred type, never on an individual cell.
const (
	TypeNull CellType = iota
	TypeBool
	TypeInt
	TypeFloat
	TypeString
	TypeDate
	TypeDateTime
	TypeMixed
)

// String returns the lowercase name used in output and logs.
func (t CellType) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeBool:
		return "bool"
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeString:
		return "string"
	case TypeDate:
		return "date"
	case TypeDateTime:
		return "datetime"
	case TypeMixed:
		return "mixed"
	default:
		return "unknown"
	}
}

// Widen merges two inferred types into the narrowest type that can hold both.
// Null yields the other type, Int and Float widen to Float, Date and DateTime
// widen to DateTime, anything else degrades to Mixed.
func (t CellType) Widen(other CellType) CellType {
	if t == other {
		return t
	}
	switch {
	case t == TypeNull:
		return other
	case other == TypeNull:
		return t
	case (t == TypeInt && other == TypeFloat) || (t == TypeFloat && other == TypeInt):
		return TypeFloat
	case (t == TypeDate && other == TypeDateTime) || (t == TypeDateTime && other == TypeDate):
		return TypeDateTime
	default:
		return TypeMixed
	}
}

// Display layouts for temporal cell values.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
)

// CellValue is a typed scalar cell. The zero value is Null. Values are
// immutable once a Table is built.
type CellValue struct {
	Type  CellType
	Bool  bool
	Int   int64
	Float float64
	Str   string
	Time  time.Time
}

// NullValue returns the null cell.
func NullValue() CellValue { return CellValue{Type: TypeNull} }

// BoolValue wraps a bool.
func BoolValue(b bool) CellValue { return CellValue{Type: TypeBool, Bool: b} }

// IntValue wraps an int64.
func IntValue(i int64) CellValue { return CellValue{Type: TypeInt, Int: i} }

// FloatValue wraps a float64.
func FloatValue(f float64) CellValue { return CellValue{Type: TypeFloat, Float: f} }

// StringValue wraps a string.
func StringValue(s string) CellValue { return CellValue{Type: TypeString, Str: s} }

// DateValue wraps a calendar date.
func DateValue(t time.Time) CellValue { return CellValue{Type: TypeDate, Time: t} }

// DateTimeValue wraps a timestamp.
func DateTimeValue(t time.Time) CellValue { return CellValue{Type: TypeDateTime, Time: t} }

// IsNull reports whether the value is null.
func (v CellValue) IsNull() bool { return v.Type == TypeNull }

// Numeric returns the value as a float64 when the cell is Int or Float.
func (v CellValue) Numeric() (float64, bool) {
	switch v.Type {
	case TypeInt:
		return float64(v.Int), true
	case TypeFloat:
		return v.Float, true
	default:
		return 0, false
	}
}

// Equal is exact, type-aware equality. Int and Float cross-compare
// numerically; every other cross-type pair is unequal. NaN equals NaN so
// that a table diffed against itself is empty.
func (v CellValue) Equal(o CellValue) bool {
	if v.Type != o.Type {
		// Int vs Float is the one permitted cross-type comparison.
		a, aok := v.Numeric()
		b, bok := o.Numeric()
		return aok && bok && a == b
	}
	switch v.Type {
	case TypeNull:
		return true
	case TypeBool:
		return v.Bool == o.Bool
	case TypeInt:
		return v.Int == o.Int
	case TypeFloat:
		if math.IsNaN(v.Float) && math.IsNaN(o.Float) {
			return true
		}
		return v.Float == o.Float
	case TypeString:
		return v.Str == o.Str
	case TypeDate, TypeDateTime:
		return v.Time.Equal(o.Time)
	default:
		return false
	}
}

// Display returns the human-readable form used by key construction and by
// every renderer. Null displays as "NULL".
func (v CellValue) Display() string {
	switch v.Type {
	case TypeNull:
		return "NULL"
	case TypeBool:
		return strconv.FormatBool(v.Bool)
	case TypeInt:
		return strconv.FormatInt(v.Int, 10)
	case TypeFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case TypeString:
		return v.Str
	case TypeDate:
		return v.Time.Format(DateLayout)
	case TypeDateTime:
		return v.Time.Format(DateTimeLayout)
	default:
		return fmt.Sprintf("<%s>", v.Type)
	}
}

// String implements fmt.Stringer.
func (v CellValue) String() string { return v.Display() }

// MarshalJSON emits the native JSON form: null, boolean, number, or string.
// Dates and datetimes marshal as their display strings.
func (v CellValue) MarshalJSON() ([]byte, error) {
	switch v.Type {
	case TypeNull:
		return []byte("null"), nil
	case TypeBool:
		return json.Marshal(v.Bool)
	case TypeInt:
		return json.Marshal(v.Int)
	case TypeFloat:
		if math.IsNaN(v.Float) || math.IsInf(v.Float, 0) {
			return json.Marshal(v.Display())
		}
		return json.Marshal(v.Float)
	default:
		return json.Marshal(v.Display())
	}
}

// MarshalYAML mirrors MarshalJSON for the yaml renderer.
func (v CellValue) MarshalYAML() (interface{}, error) {
	switch v.Type {
	case TypeNull:
		return nil, nil
	case TypeBool:
		return v.Bool, nil
	case TypeInt:
		return v.Int, nil
	case TypeFloat:
		return v.Float, nil
	default:
		return v.Display(), nil
	}
}
