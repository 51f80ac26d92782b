// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAtomicWriteFile(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"text", []byte("ui.theme = \"dark\"\n")},
		{"empty", []byte{}},
		{"large", make([]byte, 1<<20)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nexus.toml")
			require.NoError(t, AtomicWriteFile(path, tt.data, 0644))

			got, err := os.ReadFile(path)
			require.NoError(t, err)
			require.Equal(t, len(tt.data), len(got))
			require.Equal(t, tt.data, got)
		})
	}
}

func TestAtomicWriteFile_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "station", "deep", "nexus.toml")
	require.NoError(t, AtomicWriteFile(path, []byte("x"), 0644))
	require.FileExists(t, path)
}

func TestAtomicWriteFile_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nexus.toml")
	require.NoError(t, AtomicWriteFile(path, []byte("initial"), 0644))
	require.NoError(t, AtomicWriteFile(path, []byte("updated"), 0644))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "updated", string(got))
}

func TestAtomicWriteFile_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nexus.toml")
	for i := 0; i < 3; i++ {
		require.NoError(t, AtomicWriteFile(path, []byte("v"), 0644))
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "nexus.toml", entries[0].Name())
}

func TestAtomicWriteFile_IntoDirectoryFails(t *testing.T) {
	dir := t.TempDir()
	require.Error(t, AtomicWriteFile(dir, []byte("x"), 0644))

	// The temp file lived beside dir and must be gone.
	entries, err := os.ReadDir(filepath.Dir(dir))
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestAtomicWriteFileWithDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "newdir", "nexus.toml")
	require.NoError(t, AtomicWriteFileWithDir(path, []byte("test"), 0600, 0700))

	info, err := os.Stat(path)
	require.NoError(t, err)
	if runtime.GOOS != "windows" {
		require.Equal(t, os.FileMode(0600), info.Mode().Perm())
	}
}
