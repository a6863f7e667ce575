// Copyright (c) 2026, CTL Kit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ctltest

import (
	"os/exec"
	"runtime"
	"testing"
)

// Skips records tests excluded on particular platforms: the outer key
// is the test name as reported by testing.TB.Name, the inner key is a
// GOOS value ("*" excludes the test everywhere), and the value is the
// reason for the exclusion, logged when the test is skipped.
type Skips map[string]map[string]string

// SkipIfExcluded skips the running test if the table excludes it on the
// current platform.
func (s Skips) SkipIfExcluded(t testing.TB) {
	t.Helper()
	plats, ok := s[t.Name()]
	if !ok {
		return
	}
	if reason, ok := plats[runtime.GOOS]; ok {
		t.Skipf("skipped on %s: %s", runtime.GOOS, reason)
	}
	if reason, ok := plats["*"]; ok {
		t.Skip("skipped: " + reason)
	}
}

// RequireRenderer skips the running test if the configured render
// command cannot be found, so transform tests pass on machines without
// a ctlrender installation.
func RequireRenderer(t testing.TB, cfg *Config) {
	t.Helper()
	if _, err := exec.LookPath(cfg.Command); err != nil {
		t.Skipf("renderer %q not available: %v", cfg.Command, err)
	}
}
