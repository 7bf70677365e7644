// Copyright (c) 2026 The tablediff Authors.
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"
)

// RawJSON structurally diffs two JSON documents and writes an annotated
// document to w. It serves JSON inputs that are not arrays of flat records
// and therefore cannot go through the tabular engine. Returns whether the
// documents differ.
func RawJSON(w io.Writer, oldData, newData []byte, color bool) (bool, error) {
	delta, err := gojsondiff.New().Compare(oldData, newData)
	if err != nil {
		return false, fmt.Errorf("failed to compare JSON documents: %w", err)
	}

	if !delta.Modified() {
		fmt.Fprintln(w, "The documents are identical.")
		return false, nil
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(oldData, &doc); err != nil {
		return false, fmt.Errorf("failed to unmarshal old document: %w", err)
	}

	f := formatter.NewAsciiFormatter(doc, formatter.AsciiFormatterConfig{
		ShowArrayIndex: true,
		Coloring:       color,
	})
	out, err := f.Format(delta)
	if err != nil {
		return false, err
	}

	fmt.Fprint(w, out)
	return true, nil
}
