// Copyright (c) 2026 The tablediff Authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/tablediff/tablediff/internal/diff"
	"github.com/tablediff/tablediff/internal/gitdriver"
	"github.com/tablediff/tablediff/internal/log"
	"github.com/tablediff/tablediff/internal/parser"
	"github.com/tablediff/tablediff/internal/render"
	"github.com/tablediff/tablediff/internal/source"
)

// run is the action behind the root command. It loads both inputs, computes
// the diff, renders it to stdout, and records whether changes were found.
func run(ctx context.Context, cmd *cli.Command, outcome *Outcome) error {
	opts, err := buildOptions(cmd)
	if err != nil {
		return err
	}
	popts := parser.Options{
		Sheet:  cmd.String("sheet"),
		SortBy: cmd.String("sort-by"),
	}

	if cmd.Bool("git-driver") {
		ga, ok := gitdriver.ParseArgs(cmd.Args().Slice())
		if !ok {
			return fmt.Errorf("git-driver expects the seven arguments git passes to an external diff driver")
		}
		changed, err := ga.Run(ctx, os.Stdout, opts, popts)
		if err != nil {
			return err
		}
		outcome.HasChanges = changed
		return nil
	}

	args := cmd.Args().Slice()
	if len(args) != 2 {
		return fmt.Errorf("expected OLD and NEW inputs, got %d argument(s)", len(args))
	}
	oldSpec, newSpec := args[0], args[1]
	if oldSpec == "-" && newSpec == "-" {
		return fmt.Errorf("only one input may read from stdin")
	}

	oldData, err := source.Load(ctx, oldSpec)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", oldSpec, err)
	}
	newData, err := source.Load(ctx, newSpec)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", newSpec, err)
	}
	log.Debugf("inputs loaded: old=%s (%d bytes) new=%s (%d bytes)",
		oldSpec, len(oldData), newSpec, len(newData))

	if cmd.Bool("raw-json") {
		changed, err := render.RawJSON(os.Stdout, oldData, newData, colorEnabled(cmd))
		if err != nil {
			return err
		}
		outcome.HasChanges = changed
		return nil
	}

	oldTable, err := parser.Parse(oldSpec, oldData, popts)
	if err != nil {
		return err
	}
	newTable, err := parser.Parse(newSpec, newData, popts)
	if err != nil {
		return err
	}

	result, err := diff.Compute(oldTable, newTable, opts)
	if err != nil {
		return err
	}

	r, err := render.For(cmd.String("format"))
	if err != nil {
		return err
	}
	rc := render.Context{
		OldPath:  oldSpec,
		NewPath:  newSpec,
		OldTable: oldTable,
		NewTable: newTable,
		Color:    colorEnabled(cmd),
	}
	if err := r.Render(os.Stdout, result, rc); err != nil {
		return fmt.Errorf("failed to render output: %w", err)
	}

	outcome.HasChanges = result.HasChanges()
	return nil
}

// buildOptions assembles engine options from the parsed flags.
func buildOptions(cmd *cli.Command) (diff.Options, error) {
	renames, err := parseRenames(cmd.String("rename"))
	if err != nil {
		return diff.Options{}, err
	}
	tolerance := cmd.Float("numeric-tolerance")
	if tolerance < 0 {
		return diff.Options{}, fmt.Errorf("numeric-tolerance must be non-negative, got %g", tolerance)
	}
	return diff.Options{
		KeyColumns:         splitList(cmd.String("key")),
		IgnoreCase:         cmd.Bool("ignore-case"),
		IgnoreWhitespace:   cmd.Bool("ignore-whitespace"),
		CollapseWhitespace: cmd.Bool("collapse-whitespace"),
		NumericTolerance:   tolerance,
		IgnoreColumns:      splitList(cmd.String("ignore-column")),
		Renames:            renames,
		CoerceTypes:        cmd.Bool("coerce-types"),
		StatsOnly:          cmd.Bool("stats-only"),
	}, nil
}

// colorEnabled resolves the color setting: an explicit flag wins, otherwise
// color is on when stdout is a terminal.
func colorEnabled(cmd *cli.Command) bool {
	if cmd.IsSet("color") {
		return cmd.Bool("color")
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
