// Copyright (c) 2026 The tablediff Authors.
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"encoding/json"
	"io"

	"github.com/tablediff/tablediff/internal/diff"
)

// JSON renders the result as an indented JSON document.
type JSON struct{}

// Render implements Renderer.
func (j *JSON) Render(w io.Writer, res *diff.Result, rc Context) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(buildPayload(res, rc))
}
