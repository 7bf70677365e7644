// Copyright (c) 2026 The tablediff Authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/tablediff/tablediff/internal/version"
)

// Outcome carries the diff disposition out of the CLI action so main can map
// it to an exit code without re-running the comparison.
type Outcome struct {
	HasChanges bool
}

func InitApp(ctx context.Context) (*cli.Command, *Outcome) {
	outcome := &Outcome{}

	app := &cli.Command{
		Name:      "tablediff",
		Usage:     "semantic diff for tabular data (CSV, TSV, Excel, Parquet, JSON)",
		ArgsUsage: "OLD NEW",
		Version:   version.Version,
		Flags:     newFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return run(ctx, cmd, outcome)
		},
	}

	// Make sure flags are sorted for the --help text.
	sort.Slice(app.Flags, func(i, j int) bool {
		return app.Flags[i].Names()[0] < app.Flags[j].Names()[0]
	})

	return app, outcome
}
