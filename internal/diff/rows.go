// Copyright (c) 2026 The tablediff Authors.
// SPDX-License-Identifier: Apache-2.0

package diff

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/tablediff/tablediff/internal/model"
)

// rowIndex is the read-only hash index over one table's rows. Only the first
// occurrence of each key is indexed; later rows sharing a key are flagged as
// duplicates and never participate in matching. Buckets hold candidate row
// indices for one hash; key-string equality resolves hash collisions.
type rowIndex struct {
	buckets map[uint64][]int
	dup     []bool
}

func buildRowIndex(t *model.Table) *rowIndex {
	idx := &rowIndex{
		buckets: make(map[uint64][]int, len(t.Rows)),
		dup:     make([]bool, len(t.Rows)),
	}
	for i := range t.Rows {
		row := &t.Rows[i]
		if idx.lookup(t, row) >= 0 {
			idx.dup[i] = true
			continue
		}
		idx.buckets[row.KeyHash] = append(idx.buckets[row.KeyHash], i)
	}
	return idx
}

// lookup returns the indexed row with the same key, or -1.
func (idx *rowIndex) lookup(t *model.Table, row *model.Row) int {
	for _, cand := range idx.buckets[row.KeyHash] {
		if t.Rows[cand].Key == row.Key {
			return cand
		}
	}
	return -1
}

// matchSlot is one old row's outcome, filled during the parallel probe phase
// into a pre-sized slice so the merge phase can restore old-table order.
type matchSlot struct {
	newIdx  int // -1 when unmatched
	changes []CellChange
}

// matcher pairs old and new rows by resolved key and compares the cells of
// each matched pair.
type matcher struct {
	cmp    *Comparator
	ignore map[string]struct{}
}

// matchRows partitions rows into Removed/Modified (old-table order) followed
// by Added (new-table order), updating stats as it goes. The per-row probe
// and cell comparison are independent, so they fan out across CPUs; the
// ordered merge afterwards is what makes the output deterministic.
func (m *matcher) matchRows(oldT, newT *model.Table, stats *Stats) []RowChange {
	newIdx := buildRowIndex(newT)
	oldIdx := buildRowIndex(oldT)

	// Column alignment by name, computed once: new column position -> old
	// column position. Comparing by name keeps moved columns aligned.
	align := make([]int, len(newT.Columns))
	for ni, c := range newT.Columns {
		align[ni] = oldT.ColumnIndex(c.Name)
	}

	slots := make([]matchSlot, len(oldT.Rows))
	workers := runtime.GOMAXPROCS(0)
	if workers > len(oldT.Rows) {
		workers = len(oldT.Rows)
	}
	if workers > 1 {
		var g errgroup.Group
		chunk := (len(oldT.Rows) + workers - 1) / workers
		for w := 0; w < workers; w++ {
			lo := w * chunk
			hi := min(lo+chunk, len(oldT.Rows))
			g.Go(func() error {
				m.probeRange(oldT, newT, oldIdx, newIdx, align, slots, lo, hi)
				return nil
			})
		}
		// Workers never return errors; Wait is just the join point.
		_ = g.Wait()
	} else {
		m.probeRange(oldT, newT, oldIdx, newIdx, align, slots, 0, len(oldT.Rows))
	}

	// Ordered merge. Old-side pass emits Removed and Modified in old-table
	// order, then the new-side pass emits Added in new-table order.
	matchedNew := make([]bool, len(newT.Rows))
	var changes []RowChange
	for i := range oldT.Rows {
		row := &oldT.Rows[i]
		slot := slots[i]
		if slot.newIdx < 0 {
			stats.RowsRemoved++
			changes = append(changes, RowChange{Kind: RowRemoved, Key: row.Key, Row: row})
			continue
		}
		matchedNew[slot.newIdx] = true
		if len(slot.changes) == 0 {
			stats.RowsUnchanged++
			continue
		}
		stats.RowsModified++
		stats.CellsChanged += len(slot.changes)
		changes = append(changes, RowChange{
			Kind:    RowModified,
			Key:     row.Key,
			OldRow:  row,
			NewRow:  &newT.Rows[slot.newIdx],
			Changes: slot.changes,
		})
	}
	for i := range newT.Rows {
		if matchedNew[i] {
			continue
		}
		row := &newT.Rows[i]
		stats.RowsAdded++
		changes = append(changes, RowChange{Kind: RowAdded, Key: row.Key, Row: row})
	}
	return changes
}

// probeRange resolves old rows [lo, hi) against the new-table index and
// compares cells for each match. Reads only; results land in slots.
func (m *matcher) probeRange(oldT, newT *model.Table, oldIdx, newIdx *rowIndex, align []int, slots []matchSlot, lo, hi int) {
	for i := lo; i < hi; i++ {
		slots[i].newIdx = -1
		// A later duplicate on the old side is always Removed.
		if oldIdx.dup[i] {
			continue
		}
		row := &oldT.Rows[i]
		ni := newIdx.lookup(newT, row)
		if ni < 0 {
			continue
		}
		slots[i].newIdx = ni
		slots[i].changes = m.compareCells(oldT, newT, row, &newT.Rows[ni], align)
	}
}

// compareCells walks the new-schema column order and emits a CellChange for
// every aligned, non-ignored column whose values differ. Columns present on
// only one side are the schema differ's business, not ours.
func (m *matcher) compareCells(oldT, newT *model.Table, oldRow, newRow *model.Row, align []int) []CellChange {
	var changes []CellChange
	for ni := range newT.Columns {
		oi := align[ni]
		if oi < 0 {
			continue
		}
		name := newT.Columns[ni].Name
		if _, skip := m.ignore[name]; skip {
			continue
		}
		oldV := oldRow.Cell(oi)
		newV := newRow.Cell(ni)
		if !m.cmp.Equal(oldV, newV) {
			changes = append(changes, CellChange{Column: name, OldValue: oldV, NewValue: newV})
		}
	}
	return changes
}
