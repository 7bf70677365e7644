// Copyright (c) 2026 The tablediff Authors.
// SPDX-License-Identifier: Apache-2.0

package diff

import (
	"fmt"

	"github.com/tablediff/tablediff/internal/log"
	"github.com/tablediff/tablediff/internal/model"
)

// Engine computes the semantic diff of two tables. It holds no state across
// calls beyond its options; all per-diff indices are local to Diff.
type Engine struct {
	opts Options
	cmp  *Comparator
}

// New creates an engine for the given options.
func New(opts Options) *Engine {
	return &Engine{opts: opts, cmp: NewComparator(opts)}
}

// Diff compares old against new and returns the complete Result, or an error
// before any result exists. The only error path is key resolution: a key
// column name unknown to either table is a *model.ConfigError. Once keys
// resolve, the engine always runs to completion.
func (e *Engine) Diff(oldT, newT *model.Table) (*Result, error) {
	resolver := model.NewKeyResolver(model.KeyOptions{
		Columns:   e.opts.KeyColumns,
		FoldCase:  e.opts.IgnoreCase,
		TrimSpace: e.opts.IgnoreWhitespace,
	})
	if err := resolver.Resolve(oldT); err != nil {
		return nil, fmt.Errorf("old table: %w", err)
	}
	if err := resolver.Resolve(newT); err != nil {
		return nil, fmt.Errorf("new table: %w", err)
	}

	result := &Result{WholeRowKeys: resolver.WholeRow()}
	result.Stats.OldRowCount = oldT.RowCount()
	result.Stats.NewRowCount = newT.RowCount()

	result.SchemaChanges = CompareSchemas(oldT, newT, e.opts.Renames)

	m := &matcher{cmp: e.cmp, ignore: e.opts.ignoreSet()}
	result.RowChanges = m.matchRows(oldT, newT, &result.Stats)

	log.Debugf("diff complete: +%d -%d ~%d cells=%d",
		result.Stats.RowsAdded, result.Stats.RowsRemoved,
		result.Stats.RowsModified, result.Stats.CellsChanged)

	// Stats-only drops the row detail after counting, so the counts stay
	// exact while the payload shrinks.
	if e.opts.StatsOnly {
		result.RowChanges = nil
	}

	return result, nil
}

// Compute is the convenience entry point used by the CLI and the git driver.
func Compute(oldT, newT *model.Table, opts Options) (*Result, error) {
	return New(opts).Diff(oldT, newT)
}
