// Copyright (c) 2026, CTL Kit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fsx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0666))

	ex, err := FileExists(path)
	require.NoError(t, err)
	assert.True(t, ex)

	ex, err = FileExists(filepath.Join(dir, "missing.txt"))
	require.NoError(t, err)
	assert.False(t, ex)

	// a directory is not a file
	ex, err = FileExists(dir)
	require.NoError(t, err)
	assert.False(t, ex)
}

func TestDirExists(t *testing.T) {
	dir := t.TempDir()
	ex, err := DirExists(dir)
	require.NoError(t, err)
	assert.True(t, ex)

	ex, err = DirExists(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.False(t, ex)
}

func TestTrimExt(t *testing.T) {
	assert.Equal(t, "ACESlib.Utilities", TrimExt("transforms/ctl/lib/ACESlib.Utilities.ctl"))
	assert.Equal(t, "RRT", TrimExt("RRT.ctl"))
	assert.Equal(t, "noext", TrimExt("dir/noext"))
}
