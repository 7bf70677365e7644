// Copyright (c) 2026 The tablediff Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package source acquires raw input bytes before parsing: local files,
// stdin via "-", and s3:// object URIs.
package source
