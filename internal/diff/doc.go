// Copyright (c) 2026 The tablediff Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package diff is the core engine: it resolves row keys, compares schemas,
// matches rows between the old and new tables, compares cells under the
// configured tolerances, and aggregates everything into one deterministic
// Result.
package diff
