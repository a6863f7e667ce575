// Copyright (c) 2026, CTL Kit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exrx

import "errors"

// TestingT is an interface wrapper around *testing.T.
type TestingT interface {
	Errorf(format string, args ...any)
}

// UpdateReferenceImages indicates whether tests are regenerating the
// stored reference images instead of comparing against them.
// It is automatically set if the build tag "update" is specified, or if
// the environment variable "CTLTEST_UPDATE_REFERENCE" is set to "true".
// It should only be set when a transform has intentionally changed, and
// it should only be set once and then turned back off.
var UpdateReferenceImages = updateReferenceImages

// AssertClose asserts that the image at testPath is elementwise within
// the given tolerance of the reference image at refPath, failing the
// test with diagnostics if either file is missing or any element is
// out of tolerance. In reference-update mode ([UpdateReferenceImages])
// the assertion is skipped, because the reference and assessment paths
// then coincide.
func AssertClose(t TestingT, refPath, testPath string, tol Tolerance) {
	if UpdateReferenceImages {
		return
	}
	err := CompareFiles(refPath, testPath, tol)
	if err == nil {
		return
	}
	var mfe *MissingFileError
	if errors.As(err, &mfe) {
		t.Errorf("AssertClose: %v", mfe)
		return
	}
	var te *ToleranceError
	if errors.As(err, &te) {
		t.Errorf("AssertClose: %s does not match reference %s: %v", testPath, refPath, te)
		return
	}
	t.Errorf("AssertClose: error comparing %s against %s: %v", testPath, refPath, err)
}
