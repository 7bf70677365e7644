// Copyright (c) 2026 The tablediff Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package model holds the normalized in-memory representation of a tabular
// dataset (tables, columns, typed cell values) and the composite-key
// resolution used to match rows across two versions of a dataset.
package model
