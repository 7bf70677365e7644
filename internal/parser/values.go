// Copyright (c) 2026 The tablediff Authors.
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"strconv"
	"strings"
	"time"

	"github.com/tablediff/tablediff/internal/model"
)

// datetimeLayouts are the timestamp forms recognized during scalar
// inference, tried in order.
var datetimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseScalar infers a typed cell from its string form. Empty strings,
// "null" and "NA" are null; "true"/"yes" and "false"/"no" are booleans;
// then integer, float, date (2006-01-02), datetime, and finally string.
func ParseScalar(s string) model.CellValue {
	trimmed := strings.TrimSpace(s)

	if trimmed == "" || strings.EqualFold(trimmed, "null") || trimmed == "NA" {
		return model.NullValue()
	}

	if strings.EqualFold(trimmed, "true") || strings.EqualFold(trimmed, "yes") {
		return model.BoolValue(true)
	}
	if strings.EqualFold(trimmed, "false") || strings.EqualFold(trimmed, "no") {
		return model.BoolValue(false)
	}

	if i, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return model.IntValue(i)
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return model.FloatValue(f)
	}

	if d, err := time.Parse(model.DateLayout, trimmed); err == nil {
		return model.DateValue(d)
	}
	for _, layout := range datetimeLayouts {
		if dt, err := time.Parse(layout, trimmed); err == nil {
			return model.DateTimeValue(dt)
		}
	}

	return model.StringValue(trimmed)
}

// parseTemporal recognizes date/datetime strings coming from JSON fields.
func parseTemporal(s string) (model.CellValue, bool) {
	if d, err := time.Parse(model.DateLayout, s); err == nil {
		return model.DateValue(d), true
	}
	for _, layout := range datetimeLayouts {
		if dt, err := time.Parse(layout, s); err == nil {
			return model.DateTimeValue(dt), true
		}
	}
	return model.CellValue{}, false
}
