// Copyright (c) 2026, CTL Kit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fsx provides filesystem helpers used across the harness.
package fsx

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// FileExists checks whether the given file exists, returning true if so,
// false if not, and an error if there was an error in accessing the file.
func FileExists(filePath string) (bool, error) {
	fileInfo, err := os.Stat(filePath)
	if err == nil {
		return !fileInfo.IsDir(), nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// DirExists checks whether the given directory exists, returning true
// if so, false if not, and an error if there was an error in accessing it.
func DirExists(path string) (bool, error) {
	fileInfo, err := os.Stat(path)
	if err == nil {
		return fileInfo.IsDir(), nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// TrimExt returns the file name without its directory or extension,
// e.g., "lib/ACESlib.Utilities.ctl" becomes "ACESlib.Utilities".
func TrimExt(filePath string) string {
	base := filepath.Base(filePath)
	return base[:len(base)-len(filepath.Ext(base))]
}
