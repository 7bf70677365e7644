// Copyright (c) 2026 The tablediff Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package diff

import (
	"embed"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/tablediff/tablediff/internal/model"
)

//go:embed testdata/*.yaml
var testDataFS embed.FS

// testEqualCase is one comparator case from testdata/cells.yaml.
type testEqualCase struct {
	Name               string      `yaml:"name"`
	Old                interface{} `yaml:"old"`
	New                interface{} `yaml:"new"`
	IgnoreCase         bool        `yaml:"ignoreCase"`
	IgnoreWhitespace   bool        `yaml:"ignoreWhitespace"`
	CollapseWhitespace bool        `yaml:"collapseWhitespace"`
	Tolerance          float64     `yaml:"tolerance"`
	CoerceTypes        bool        `yaml:"coerceTypes"`
	Want               bool        `yaml:"want"`
}

// cellFromYAML maps a native YAML scalar onto a typed cell.
func cellFromYAML(t *testing.T, v interface{}) model.CellValue {
	t.Helper()
	switch x := v.(type) {
	case nil:
		return model.NullValue()
	case bool:
		return model.BoolValue(x)
	case int:
		return model.IntValue(int64(x))
	case int64:
		return model.IntValue(x)
	case float64:
		return model.FloatValue(x)
	case string:
		return model.StringValue(x)
	default:
		t.Fatalf("unsupported scalar %T", v)
		return model.CellValue{}
	}
}

func TestComparatorEqual(t *testing.T) {
	data, err := testDataFS.ReadFile("testdata/cells.yaml")
	require.NoError(t, err)

	var cases []testEqualCase
	require.NoError(t, yaml.Unmarshal(data, &cases))
	require.NotEmpty(t, cases)

	for _, tt := range cases {
		t.Run(tt.Name, func(t *testing.T) {
			cmp := NewComparator(Options{
				IgnoreCase:         tt.IgnoreCase,
				IgnoreWhitespace:   tt.IgnoreWhitespace,
				CollapseWhitespace: tt.CollapseWhitespace,
				NumericTolerance:   tt.Tolerance,
				CoerceTypes:        tt.CoerceTypes,
			})
			a := cellFromYAML(t, tt.Old)
			b := cellFromYAML(t, tt.New)
			assert.Equal(t, tt.Want, cmp.Equal(a, b))
			assert.Equal(t, tt.Want, cmp.Equal(b, a), "equality must be symmetric")
		})
	}
}

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name   string
		oldV   model.CellValue
		newV   model.CellValue
		want   float64
		wantOk bool
	}{
		{name: "increase", oldV: model.IntValue(100), newV: model.IntValue(150), want: 50, wantOk: true},
		{name: "decrease", oldV: model.FloatValue(10), newV: model.FloatValue(5), want: -50, wantOk: true},
		{name: "both zero", oldV: model.IntValue(0), newV: model.IntValue(0), want: 0, wantOk: true},
		{name: "undefined from zero", oldV: model.IntValue(0), newV: model.IntValue(5), wantOk: false},
		{name: "non-numeric side", oldV: model.StringValue("x"), newV: model.IntValue(1), wantOk: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := PercentChange(tt.oldV, tt.newV)
			assert.Equal(t, tt.wantOk, ok)
			if ok {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}
