// Copyright (c) 2026, CTL Kit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ramp

import (
	"fmt"

	"github.com/ctlkit/ctltest/base/casemap"
)

// Space is the spacing of ramp samples between the start and end
// values.
type Space int32

const (
	// Linear spaces samples evenly.
	Linear Space = iota

	// Log2 spaces samples evenly in base-2 log space.
	Log2

	// Log10 spaces samples evenly in base-10 log space.
	Log10
)

func (s Space) String() string {
	switch s {
	case Linear:
		return "linear"
	case Log2:
		return "log2"
	case Log10:
		return "log10"
	}
	return fmt.Sprintf("Space(%d)", int32(s))
}

// spaces maps space names to values, case-insensitively, so that
// "Linear", "linear", and "LINEAR" all parse the same way.
var spaces = func() *casemap.Map[Space] {
	cm := casemap.New[Space]()
	cm.Set("Linear", Linear)
	cm.Set("Log2", Log2)
	cm.Set("Log10", Log10)
	return cm
}()

// ParseSpace returns the [Space] with the given name, ignoring case.
func ParseSpace(name string) (Space, error) {
	s, err := spaces.Get(name)
	if err != nil {
		return Linear, fmt.Errorf("ramp: unknown space %q (valid: %v)", name, spaces.Keys())
	}
	return s, nil
}
