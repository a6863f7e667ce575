// Copyright (c) 2026, CTL Kit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exrx

import (
	"fmt"
	"io/fs"
	"math"

	"github.com/mrjoshuak/go-openexr/exr"

	"github.com/ctlkit/ctltest/base/fsx"
)

// Tolerance is the allowed elementwise deviation between a reference
// and an assessment image: a test value passes when
// |test - ref| <= Absolute + Relative*|ref|.
type Tolerance struct {

	// Relative is the relative tolerance, scaled by the magnitude of
	// the reference value.
	Relative float64

	// Absolute is the absolute tolerance.
	Absolute float64
}

// DefaultTolerance is the tolerance used for image comparison unless a
// test overrides it.
var DefaultTolerance = Tolerance{Relative: 1e-7, Absolute: 1e-7}

// MissingFileError indicates that an expected image file does not
// exist. It unwraps to [fs.ErrNotExist].
type MissingFileError struct {
	Path string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("image file %q does not exist", e.Path)
}

func (e *MissingFileError) Unwrap() error { return fs.ErrNotExist }

// ToleranceError indicates that two images differ beyond the given
// tolerance, carrying the first offending element for diagnostics.
type ToleranceError struct {

	// X, Y are the pixel coordinates of the first offending element.
	X, Y int

	// Channel is the channel name of the first offending element.
	Channel string

	// Ref and Test are the reference and assessment values there.
	Ref, Test float64

	// Tolerance is the tolerance the comparison was made with.
	Tolerance Tolerance
}

func (e *ToleranceError) Error() string {
	return fmt.Sprintf("images differ beyond tolerance (rel %g, abs %g): channel %s at (%d, %d): reference %g, got %g",
		e.Tolerance.Relative, e.Tolerance.Absolute, e.Channel, e.X, e.Y, e.Ref, e.Test)
}

// CompareImages compares the assessment image against the reference
// image elementwise over the R, G, B, and A channels, returning nil if
// every element is within the given tolerance and a [ToleranceError]
// for the first element that is not. Mismatched bounds fail
// immediately.
func CompareImages(ref, test *exr.RGBAImage, tol Tolerance) error {
	rb := ref.Bounds()
	tb := test.Bounds()
	if rb != tb {
		return fmt.Errorf("exrx: image bounds differ: reference %v, test %v", rb, tb)
	}
	for y := rb.Min.Y; y < rb.Max.Y; y++ {
		for x := rb.Min.X; x < rb.Max.X; x++ {
			rr, rg, rbv, ra := ref.RGBA(x, y)
			tr, tg, tbv, ta := test.RGBA(x, y)
			chans := [4]struct {
				name      string
				ref, test float32
			}{
				{"R", rr, tr},
				{"G", rg, tg},
				{"B", rbv, tbv},
				{"A", ra, ta},
			}
			for _, ch := range chans {
				r := float64(ch.ref)
				v := float64(ch.test)
				if math.Abs(v-r) > tol.Absolute+tol.Relative*math.Abs(r) {
					return &ToleranceError{X: x, Y: y, Channel: ch.name, Ref: r, Test: v, Tolerance: tol}
				}
			}
		}
	}
	return nil
}

// CompareFiles compares the image at testPath against the reference
// image at refPath within the given tolerance, returning a
// [MissingFileError] if either file does not exist.
func CompareFiles(refPath, testPath string, tol Tolerance) error {
	for _, path := range []string{refPath, testPath} {
		ex, err := fsx.FileExists(path)
		if err != nil {
			return err
		}
		if !ex {
			return &MissingFileError{Path: path}
		}
	}
	ref, err := Open(refPath)
	if err != nil {
		return err
	}
	test, err := Open(testPath)
	if err != nil {
		return err
	}
	return CompareImages(ref, test, tol)
}
