// Copyright (c) 2026 The tablediff Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestHandleVersion(t *testing.T) {
	assert.True(t, handleVersion([]string{"tablediff", "--version"}))
	assert.True(t, handleVersion([]string{"tablediff", "-v"}))
	assert.False(t, handleVersion([]string{"tablediff", "a.csv", "b.csv"}))
}

func TestRealMainExitCodes(t *testing.T) {
	same := writeTemp(t, "same.csv", "id,name\n1,alpha\n2,beta\n")
	changed := writeTemp(t, "changed.csv", "id,name\n1,alpha\n2,gamma\n")

	tests := []struct {
		name     string
		args     []string
		expected int
	}{
		{
			name:     "identical inputs",
			args:     []string{"tablediff", "--key", "id", same, same},
			expected: 0,
		},
		{
			name:     "differing inputs",
			args:     []string{"tablediff", "--key", "id", same, changed},
			expected: 1,
		},
		{
			name:     "missing input file",
			args:     []string{"tablediff", same, filepath.Join(t.TempDir(), "absent.csv")},
			expected: 2,
		},
		{
			name:     "unknown key column",
			args:     []string{"tablediff", "--key", "nope", same, changed},
			expected: 2,
		},
		{
			name:     "version short-circuits",
			args:     []string{"tablediff", "--version"},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, realMain(tt.args))
		})
	}
}
