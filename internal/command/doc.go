// Copyright (c) 2026 The tablediff Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command assembles the tablediff CLI: flag definitions, the
// value-source chain that layers environment variables over the optional
// .tablediff.yaml config file, and the action that wires sources, parsers,
// the diff engine and renderers together.
package command
