// Copyright (c) 2026 The tablediff Authors.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tablediff/tablediff/internal/log"
)

// Load reads the bytes behind one input spec. "-" reads stdin, s3://bucket/key
// fetches the object, anything else is a local path.
func Load(ctx context.Context, spec string) ([]byte, error) {
	switch {
	case spec == "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	case strings.HasPrefix(spec, "s3://"):
		return loadS3(ctx, spec)
	default:
		data, err := os.ReadFile(spec)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", spec, err)
		}
		log.Debugf("file loaded: path=%s bytes=%d", spec, len(data))
		return data, nil
	}
}

// splitS3URI splits s3://bucket/key into its parts.
func splitS3URI(uri string) (bucket, key string, err error) {
	rest := strings.TrimPrefix(uri, "s3://")
	bucket, key, found := strings.Cut(rest, "/")
	if !found || bucket == "" || key == "" {
		return "", "", fmt.Errorf("invalid S3 URI: %s", uri)
	}
	return bucket, key, nil
}
