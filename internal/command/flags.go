// Copyright (c) 2026 The tablediff Authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"strings"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

// configFile is the optional per-project config file searched in the CWD.
// Flag values resolve explicit flag > TABLEDIFF_* env var > config file.
const configFile = ".tablediff.yaml"

// flagSources builds the standard value-source chain for a flag.
func flagSources(name string) cli.ValueSourceChain {
	env := "TABLEDIFF_" + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
	return cli.NewValueSourceChain(
		cli.EnvVar(env),
		yaml.YAML(name, altsrc.StringSourcer(configFile)),
	)
}

func newFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "key",
			Aliases: []string{"k"},
			Usage:   "comma-separated list of key column(s) used to match rows",
			Sources: flagSources("key"),
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "output format (terminal, json, yaml, html, unified)",
			Value:   "terminal",
			Sources: flagSources("format"),
			Validator: func(value string) error {
				switch value {
				case "terminal", "json", "yaml", "html", "unified":
					return nil
				}
				return fmt.Errorf("unknown output format: %q", value)
			},
		},
		&cli.BoolFlag{
			Name:    "ignore-case",
			Usage:   "compare string cells case-insensitively",
			Sources: flagSources("ignore-case"),
		},
		&cli.BoolFlag{
			Name:    "ignore-whitespace",
			Usage:   "trim leading and trailing whitespace before comparing",
			Sources: flagSources("ignore-whitespace"),
		},
		&cli.BoolFlag{
			Name:    "collapse-whitespace",
			Usage:   "collapse internal runs of whitespace before comparing",
			Sources: flagSources("collapse-whitespace"),
		},
		&cli.FloatFlag{
			Name:    "numeric-tolerance",
			Aliases: []string{"t"},
			Usage:   "treat numeric cells within this absolute delta as equal",
			Sources: flagSources("numeric-tolerance"),
		},
		&cli.StringFlag{
			Name:    "ignore-column",
			Aliases: []string{"i"},
			Usage:   "comma-separated list of columns to exclude from comparison",
			Sources: flagSources("ignore-column"),
		},
		&cli.StringFlag{
			Name:    "rename",
			Aliases: []string{"r"},
			Usage:   "comma-separated old=new column rename mappings",
			Sources: flagSources("rename"),
		},
		&cli.StringFlag{
			Name:    "sort-by",
			Usage:   "sort both inputs by this column before diffing",
			Sources: flagSources("sort-by"),
		},
		&cli.StringFlag{
			Name:    "sheet",
			Usage:   "Excel worksheet to read (defaults to the first sheet)",
			Sources: flagSources("sheet"),
		},
		&cli.BoolFlag{
			Name:    "stats-only",
			Usage:   "report change counts without row-level detail",
			Sources: flagSources("stats-only"),
		},
		&cli.BoolFlag{
			Name:    "coerce-types",
			Usage:   "coerce string cells to numbers and booleans before comparing",
			Sources: flagSources("coerce-types"),
		},
		&cli.BoolFlag{
			Name:        "color",
			Aliases:     []string{"c"},
			Usage:       "colored terminal output (defaults to on for a TTY)",
			Sources:     flagSources("color"),
			HideDefault: true,
		},
		&cli.BoolFlag{
			Name:    "raw-json",
			Usage:   "structural JSON diff of the raw documents, bypassing the table model",
			Sources: flagSources("raw-json"),
		},
		&cli.BoolFlag{
			Name:        "git-driver",
			Usage:       "run as a git external diff driver",
			Hidden:      true,
			HideDefault: true,
		},
	}
}

// splitList splits a comma-separated flag value, trimming each element and
// dropping empties.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// parseRenames parses comma-separated old=new pairs into a mapping.
func parseRenames(s string) (map[string]string, error) {
	parts := splitList(s)
	if len(parts) == 0 {
		return nil, nil
	}
	renames := make(map[string]string, len(parts))
	for _, part := range parts {
		oldName, newName, ok := strings.Cut(part, "=")
		if !ok || oldName == "" || newName == "" {
			return nil, fmt.Errorf("invalid rename mapping (want old=new): %q", part)
		}
		renames[oldName] = newName
	}
	return renames, nil
}
