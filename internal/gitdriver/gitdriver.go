// Copyright (c) 2026 The tablediff Authors.
// SPDX-License-Identifier: Apache-2.0

package gitdriver

import (
	"context"
	"fmt"
	"io"

	"github.com/tablediff/tablediff/internal/diff"
	"github.com/tablediff/tablediff/internal/log"
	"github.com/tablediff/tablediff/internal/parser"
	"github.com/tablediff/tablediff/internal/render"
	"github.com/tablediff/tablediff/internal/source"
)

// Args are the positional arguments git passes an external diff driver:
// path old-file old-hex old-mode new-file new-hex new-mode.
type Args struct {
	Path    string
	OldFile string
	OldHex  string
	OldMode string
	NewFile string
	NewHex  string
	NewMode string
}

// ParseArgs reads the git driver argument convention. Returns false when the
// argument count does not match.
func ParseArgs(args []string) (Args, bool) {
	if len(args) < 7 {
		return Args{}, false
	}
	return Args{
		Path:    args[0],
		OldFile: args[1],
		OldHex:  args[2],
		OldMode: args[3],
		NewFile: args[4],
		NewHex:  args[5],
		NewMode: args[6],
	}, true
}

// Run diffs the two blob files git materialized and writes a unified diff.
// The repo path supplies the format extension because git hands us
// extensionless temp files. Returns whether changes were found.
func (a Args) Run(ctx context.Context, w io.Writer, opts diff.Options, popts parser.Options) (bool, error) {
	log.Debugf("git driver: path=%s old=%s new=%s", a.Path, a.OldFile, a.NewFile)

	oldData, err := source.Load(ctx, a.OldFile)
	if err != nil {
		return false, err
	}
	newData, err := source.Load(ctx, a.NewFile)
	if err != nil {
		return false, err
	}

	oldTable, err := parser.Parse(a.Path, oldData, popts)
	if err != nil {
		return false, fmt.Errorf("old side: %w", err)
	}
	newTable, err := parser.Parse(a.Path, newData, popts)
	if err != nil {
		return false, fmt.Errorf("new side: %w", err)
	}

	result, err := diff.Compute(oldTable, newTable, opts)
	if err != nil {
		return false, err
	}

	u := &render.Unified{}
	err = u.Render(w, result, render.Context{
		OldPath:  "a/" + a.Path,
		NewPath:  "b/" + a.Path,
		OldTable: oldTable,
		NewTable: newTable,
	})
	return result.HasChanges(), err
}
