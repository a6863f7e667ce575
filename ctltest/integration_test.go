// Copyright (c) 2026, CTL Kit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ctltest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ctlkit/ctltest/base/iox/exrx"
	"github.com/ctlkit/ctltest/ctlscript"
)

// TestRendererIntegration drives a real ctlrender installation with an
// identity transform, skipping when none is available. The tolerance is
// loose because ctlrender may write half-precision output.
func TestRendererIntegration(t *testing.T) {
	cfg := (&Config{}).Defaults()
	RequireRenderer(t, cfg)

	cfg.Root = t.TempDir()
	cfg.Tolerance = exrx.Tolerance{Relative: 1e-3, Absolute: 1e-3}
	src := ctlscript.Float("Identity", "", "rIn", "gIn", "bIn", "aIn")
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Root, "identity.ctl"), []byte(src), 0666))

	fc := NewFileCase(t, cfg, "identity.ctl")
	fc.Testdata = t.TempDir()

	o := Options{Samples: 256}
	writeReferenceRamp(t, &fc.Harness, o)
	fc.Assert(o)
}
