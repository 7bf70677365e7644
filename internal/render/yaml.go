// Copyright (c) 2026 The tablediff Authors.
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"io"

	"gopkg.in/yaml.v2"

	"github.com/tablediff/tablediff/internal/diff"
)

// YAML renders the same payload shape as the JSON renderer.
type YAML struct{}

// Render implements Renderer.
func (y *YAML) Render(w io.Writer, res *diff.Result, rc Context) error {
	out, err := yaml.Marshal(buildPayload(res, rc))
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
