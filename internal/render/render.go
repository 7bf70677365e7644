// Copyright (c) 2026 The tablediff Authors.
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"fmt"
	"io"

	"github.com/tablediff/tablediff/internal/diff"
	"github.com/tablediff/tablediff/internal/model"
)

// Context carries everything a renderer needs besides the result itself.
type Context struct {
	OldPath  string
	NewPath  string
	OldTable *model.Table
	NewTable *model.Table
	Color    bool
}

// Renderer writes one representation of a diff result.
type Renderer interface {
	Render(w io.Writer, res *diff.Result, rc Context) error
}

// For returns the renderer for a format name.
func For(format string) (Renderer, error) {
	switch format {
	case "terminal":
		return &Terminal{}, nil
	case "json":
		return &JSON{}, nil
	case "yaml":
		return &YAML{}, nil
	case "html":
		return &HTML{}, nil
	case "unified":
		return &Unified{}, nil
	default:
		return nil, fmt.Errorf("unknown output format: %q", format)
	}
}
