// Copyright (c) 2026 The tablediff Authors.
// SPDX-License-Identifier: Apache-2.0

package diff

import (
	"github.com/tablediff/tablediff/internal/model"
)

// CompareSchemas produces the ordered schema delta between two column lists.
//
// Precedence: a column present in both by exact name at the same position is
// unchanged; at a different position it is Moved. A removed/added name pair
// becomes Renamed only when the caller listed it in renames, or under the
// last-resort heuristic: the pair is the sole removal AND the sole addition
// AND sits at the same ordinal position AND has the same inferred type.
// Everything left is Removed or Added.
//
// Output order is fixed and independent of any map iteration: removals in
// old-schema order, additions in new-schema order, renames then moves in
// old-schema order, type changes in old-schema order.
func CompareSchemas(oldT, newT *model.Table, renames map[string]string) []SchemaChange {
	newIndex := make(map[string]int, len(newT.Columns))
	for i, c := range newT.Columns {
		newIndex[c.Name] = i
	}
	oldIndex := make(map[string]int, len(oldT.Columns))
	for i, c := range oldT.Columns {
		oldIndex[c.Name] = i
	}

	// Candidate removals in old-schema order, additions in new-schema order.
	var removed []int
	for i, c := range oldT.Columns {
		if _, ok := newIndex[c.Name]; !ok {
			removed = append(removed, i)
		}
	}
	var added []int
	for i, c := range newT.Columns {
		if _, ok := oldIndex[c.Name]; !ok {
			added = append(added, i)
		}
	}

	// Explicit renames consume a removed/added pair.
	var renamed []SchemaChange
	consumedOld := make(map[int]bool)
	consumedNew := make(map[int]bool)
	for _, oi := range removed {
		oldName := oldT.Columns[oi].Name
		newName, ok := renames[oldName]
		if !ok {
			continue
		}
		for _, ni := range added {
			if consumedNew[ni] || newT.Columns[ni].Name != newName {
				continue
			}
			renamed = append(renamed, SchemaChange{
				Kind:    ColumnRenamed,
				OldName: oldName,
				NewName: newName,
				Index:   oi,
			})
			consumedOld[oi] = true
			consumedNew[ni] = true
			break
		}
	}

	removed = without(removed, consumedOld)
	added = without(added, consumedNew)

	// Heuristic rename detection, deliberately narrow: it fires only when the
	// schema delta is exactly one removal and one addition at the same
	// position with the same inferred type.
	if len(removed) == 1 && len(added) == 1 {
		oi, ni := removed[0], added[0]
		if oi == ni && oldT.Columns[oi].Type == newT.Columns[ni].Type {
			renamed = append(renamed, SchemaChange{
				Kind:    ColumnRenamed,
				OldName: oldT.Columns[oi].Name,
				NewName: newT.Columns[ni].Name,
				Index:   oi,
			})
			removed = nil
			added = nil
		}
	}

	var changes []SchemaChange
	for _, oi := range removed {
		changes = append(changes, SchemaChange{
			Kind:  ColumnRemoved,
			Name:  oldT.Columns[oi].Name,
			Index: oi,
		})
	}
	for _, ni := range added {
		changes = append(changes, SchemaChange{
			Kind:  ColumnAdded,
			Name:  newT.Columns[ni].Name,
			Index: ni,
		})
	}
	changes = append(changes, renamed...)

	// Moves and type changes for columns present on both sides, old order.
	for oi, c := range oldT.Columns {
		ni, ok := newIndex[c.Name]
		if !ok {
			continue
		}
		if oi != ni {
			changes = append(changes, SchemaChange{
				Kind:      ColumnMoved,
				Name:      c.Name,
				FromIndex: oi,
				ToIndex:   ni,
			})
		}
	}
	for _, c := range oldT.Columns {
		ni, ok := newIndex[c.Name]
		if !ok {
			continue
		}
		if nc := newT.Columns[ni]; c.Type != nc.Type {
			changes = append(changes, SchemaChange{
				Kind:    ColumnTypeChanged,
				Name:    c.Name,
				OldType: c.Type,
				NewType: nc.Type,
			})
		}
	}

	return changes
}

func without(indices []int, consumed map[int]bool) []int {
	var kept []int
	for _, i := range indices {
		if !consumed[i] {
			kept = append(kept, i)
		}
	}
	return kept
}
