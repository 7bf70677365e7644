// Copyright (c) 2026 The tablediff Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package parser turns raw file bytes (CSV/TSV, JSON, Excel, Parquet) into
// the normalized model.Table the diff engine consumes. Format selection is
// by file extension with content sniffing as a fallback.
package parser
