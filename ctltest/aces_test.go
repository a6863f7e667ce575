// Copyright (c) 2026, CTL Kit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ctltest

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ctlkit/ctltest/base/fsx"
	"github.com/ctlkit/ctltest/ramp"
)

// Tests for the ACES reference transforms. They need a ctlrender
// installation and an aces-dev checkout under [Config.Root], and skip
// otherwise.

var acesSkips = Skips{
	"TestACESDarkSurroundToDimSurround": {
		"linux": "large precision loss, under investigation",
	},
	"TestACESDimSurroundToDarkSurround": {
		"linux": "large precision loss, under investigation",
	},
	"TestACESDarkSurroundToDimSurroundInversion": {
		"*": "large precision loss, under investigation",
	},
	"TestACESDimSurroundToDarkSurroundInversion": {
		"*": "large precision loss, under investigation",
	},
	"TestACESRollWhiteFwdInversion": {
		"*": "inversion does not round-trip",
	},
	"TestACESRollWhiteRevInversion": {
		"*": "inversion does not round-trip",
	},
}

func acesConfig(t *testing.T) *Config {
	t.Helper()
	cfg, err := LoadConfig()
	require.NoError(t, err)
	RequireRenderer(t, cfg)
	ok, err := fsx.DirExists(filepath.Join(cfg.Root, "transforms", "ctl"))
	require.NoError(t, err)
	if !ok {
		t.Skipf("no CTL codebase under %s", cfg.Root)
	}
	return cfg
}

func odtCommonCase(t *testing.T) *FuncCase {
	t.Helper()
	return NewFuncCase(t, acesConfig(t),
		filepath.Join("transforms", "ctl", "lib", "ACESlib.ODT_Common.ctl"),
		"ACESlib.Utilities", "ACESlib.Transform_Common")
}

// loosen returns the case with the relative tolerance scaled for the
// inversion round trips, which accumulate error from both directions.
func loosen(fc *FuncCase, factor float64) *FuncCase {
	cfg := *fc.Config
	cfg.Tolerance.Relative *= factor
	fc.Config = &cfg
	return fc
}

func TestACESRRT(t *testing.T) {
	fc := NewFileCase(t, acesConfig(t),
		filepath.Join("transforms", "ctl", "rrt", "RRT.ctl"))
	fc.Assert(Options{
		Space: ramp.Log10,
		Start: [3]float32{0x1p-14, 0x1p-14, 0x1p-14},
		End:   [3]float32{65504, 65504, 65504},
	})
}

func TestACESYLinCV(t *testing.T) {
	fc := odtCommonCase(t)
	fc.AssertFloat(Options{},
		"Y_2_linCV(rIn, CINEMA_WHITE, CINEMA_BLACK)",
		"Y_2_linCV(gIn, CINEMA_WHITE, CINEMA_BLACK)",
		"Y_2_linCV(bIn, CINEMA_WHITE, CINEMA_BLACK)",
		"aIn")
}

func TestACESYLinCVInversion(t *testing.T) {
	fc := loosen(odtCommonCase(t), 10)
	fc.AssertFloatInverts(Options{Suffix: "inversion"},
		"linCV_2_Y(Y_2_linCV(rIn, CINEMA_WHITE, CINEMA_BLACK), CINEMA_WHITE, CINEMA_BLACK)",
		"linCV_2_Y(Y_2_linCV(gIn, CINEMA_WHITE, CINEMA_BLACK), CINEMA_WHITE, CINEMA_BLACK)",
		"linCV_2_Y(Y_2_linCV(bIn, CINEMA_WHITE, CINEMA_BLACK), CINEMA_WHITE, CINEMA_BLACK)",
		"aIn")
}

func TestACESLinCVToY(t *testing.T) {
	fc := odtCommonCase(t)
	fc.AssertFloat(Options{},
		"linCV_2_Y(rIn, CINEMA_WHITE, CINEMA_BLACK)",
		"linCV_2_Y(gIn, CINEMA_WHITE, CINEMA_BLACK)",
		"linCV_2_Y(bIn, CINEMA_WHITE, CINEMA_BLACK)",
		"aIn")
}

func TestACESLinCVToYInversion(t *testing.T) {
	fc := loosen(odtCommonCase(t), 10)
	fc.AssertFloatInverts(Options{Suffix: "inversion"},
		"Y_2_linCV(linCV_2_Y(rIn, CINEMA_WHITE, CINEMA_BLACK), CINEMA_WHITE, CINEMA_BLACK)",
		"Y_2_linCV(linCV_2_Y(gIn, CINEMA_WHITE, CINEMA_BLACK), CINEMA_WHITE, CINEMA_BLACK)",
		"Y_2_linCV(linCV_2_Y(bIn, CINEMA_WHITE, CINEMA_BLACK), CINEMA_WHITE, CINEMA_BLACK)",
		"aIn")
}

func TestACESDarkSurroundToDimSurround(t *testing.T) {
	acesSkips.SkipIfExcluded(t)
	fc := odtCommonCase(t)
	fc.AssertFloat3(Options{}, "darkSurround_to_dimSurround(rgbIn)", "aIn")
}

func TestACESDarkSurroundToDimSurroundInversion(t *testing.T) {
	acesSkips.SkipIfExcluded(t)
	fc := odtCommonCase(t)
	fc.AssertFloat3Inverts(Options{Suffix: "inversion"},
		"darkSurround_to_dimSurround(dimSurround_to_darkSurround(rgbIn))", "aIn")
}

func TestACESDimSurroundToDarkSurround(t *testing.T) {
	acesSkips.SkipIfExcluded(t)
	fc := odtCommonCase(t)
	fc.AssertFloat3(Options{}, "dimSurround_to_darkSurround(rgbIn)", "aIn")
}

func TestACESDimSurroundToDarkSurroundInversion(t *testing.T) {
	acesSkips.SkipIfExcluded(t)
	fc := odtCommonCase(t)
	fc.AssertFloat3Inverts(Options{Suffix: "inversion"},
		"dimSurround_to_darkSurround(darkSurround_to_dimSurround(rgbIn))", "aIn")
}

func TestACESRollWhiteFwd(t *testing.T) {
	fc := odtCommonCase(t)
	fc.AssertFloat(Options{},
		"roll_white_fwd(rIn, 0.9, 0.125)",
		"roll_white_fwd(gIn, 0.9, 0.125)",
		"roll_white_fwd(bIn, 0.9, 0.125)",
		"aIn")
	fc.AssertFloat(Options{Suffix: "white_width_variation"},
		"roll_white_fwd(rIn, 0.9, 0.125)",
		"roll_white_fwd(rIn, 0.75, 0.25)",
		"roll_white_fwd(rIn, 0.5, 0.5)",
		"aIn")
}

func TestACESRollWhiteFwdInversion(t *testing.T) {
	acesSkips.SkipIfExcluded(t)
	fc := odtCommonCase(t)
	fc.AssertFloatInverts(Options{Suffix: "inversion"},
		"roll_white_fwd(roll_white_rev(rIn, 0.9, 0.125), 0.9, 0.125)",
		"roll_white_fwd(roll_white_rev(gIn, 0.9, 0.125), 0.9, 0.125)",
		"roll_white_fwd(roll_white_rev(bIn, 0.9, 0.125), 0.9, 0.125)",
		"aIn")
}

func TestACESRollWhiteRev(t *testing.T) {
	fc := odtCommonCase(t)
	fc.AssertFloat(Options{},
		"roll_white_rev(rIn, 0.9, 0.125)",
		"roll_white_rev(gIn, 0.9, 0.125)",
		"roll_white_rev(bIn, 0.9, 0.125)",
		"aIn")
}

func TestACESRollWhiteRevInversion(t *testing.T) {
	acesSkips.SkipIfExcluded(t)
	fc := odtCommonCase(t)
	fc.AssertFloatInverts(Options{Suffix: "inversion"},
		"roll_white_rev(roll_white_fwd(rIn, 0.9, 0.125), 0.9, 0.125)",
		"roll_white_rev(roll_white_fwd(gIn, 0.9, 0.125), 0.9, 0.125)",
		"roll_white_rev(roll_white_fwd(bIn, 0.9, 0.125), 0.9, 0.125)",
		"aIn")
}
