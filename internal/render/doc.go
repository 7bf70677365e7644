// Copyright (c) 2026 The tablediff Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package render turns a finished diff result into output: a colored
// terminal report, JSON, YAML, a standalone HTML page, or a git-style
// unified diff. Renderers treat the result as read-only and never re-sort.
package render
