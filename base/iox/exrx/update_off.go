// Copyright (c) 2026, CTL Kit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !update

package exrx

import "os"

var updateReferenceImages = os.Getenv("CTLTEST_UPDATE_REFERENCE") == "true"
