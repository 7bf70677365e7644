// Copyright (c) 2026 The tablediff Authors.
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/tablediff/tablediff/internal/diff"
	"github.com/tablediff/tablediff/internal/model"
)

// Unified renders a git-style textual diff. This is the format the git
// diff-driver mode emits.
type Unified struct{}

// Render implements Renderer.
func (u *Unified) Render(w io.Writer, res *diff.Result, rc Context) error {
	fmt.Fprintf(w, "--- %s\n", rc.OldPath)
	fmt.Fprintf(w, "+++ %s\n", rc.NewPath)

	if !res.HasChanges() {
		return nil
	}

	oldHeader := strings.Join(rc.OldTable.ColumnNames(), ",")
	newHeader := strings.Join(rc.NewTable.ColumnNames(), ",")
	if oldHeader != newHeader {
		fmt.Fprintln(w, "@@ -1 +1 @@ header")
		fmt.Fprintf(w, "-%s\n", oldHeader)
		fmt.Fprintf(w, "+%s\n", newHeader)
	}

	for _, c := range res.RowChanges {
		switch c.Kind {
		case diff.RowAdded:
			fmt.Fprintf(w, "@@ +%d @@\n", c.Row.SourceLine)
			fmt.Fprintf(w, "+%s\n", joinCells(c.Row))
		case diff.RowRemoved:
			fmt.Fprintf(w, "@@ -%d @@\n", c.Row.SourceLine)
			fmt.Fprintf(w, "-%s\n", joinCells(c.Row))
		case diff.RowModified:
			fmt.Fprintf(w, "@@ -%d,1 +%d,1 @@\n", c.OldRow.SourceLine, c.NewRow.SourceLine)
			fmt.Fprintf(w, "-%s\n", joinCells(c.OldRow))
			fmt.Fprintf(w, "+%s\n", joinCells(c.NewRow))
		}
	}

	return nil
}

func joinCells(row *model.Row) string {
	parts := make([]string, len(row.Cells))
	for i, c := range row.Cells {
		parts[i] = c.Display()
	}
	return strings.Join(parts, ",")
}
