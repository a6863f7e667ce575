// Copyright (c) 2026, CTL Kit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ctlscript generates the minimal CTL wrapper scripts used to
// probe a single function: each script has the fixed 4-in/4-out
// varying-float main signature that ctlrender drives with image
// channels, with the function under test substituted into the output
// expressions.
package ctlscript

import (
	"fmt"
	"strings"
)

// Imports returns CTL import declarations for the given module names,
// one per line, in the given order. Duplicates are preserved: CTL
// tolerates repeated imports and callers control the order because
// later modules may depend on earlier ones.
func Imports(names ...string) string {
	lines := make([]string, len(names))
	for i, name := range names {
		lines[i] = fmt.Sprintf("import %q;", name)
	}
	return strings.Join(lines, "\n")
}

const floatTemplate = `// %s - "float" Output Function

%s

void main
(
    input varying float rIn,
    input varying float gIn,
    input varying float bIn,
    input varying float aIn,
    output varying float rOut,
    output varying float gOut,
    output varying float bOut,
    output varying float aOut
)
{
    rOut = %s;
    gOut = %s;
    bOut = %s;
    aOut = %s;
}
`

// Float returns the wrapper script for a function with scalar outputs:
// three independent expressions map rIn, gIn, bIn to rOut, gOut, bOut,
// and aOut is the caller-supplied alpha expression (usually "aIn").
// The name labels the script's header comment, imports is the
// declaration block from [Imports].
func Float(name, imports, rOut, gOut, bOut, aOut string) string {
	return fmt.Sprintf(floatTemplate, name, imports, rOut, gOut, bOut, aOut)
}

const float3Template = `// %s - "float3" Output Function

%s

void main
(
    input varying float rIn,
    input varying float gIn,
    input varying float bIn,
    input varying float aIn,
    output varying float rOut,
    output varying float gOut,
    output varying float bOut,
    output varying float aOut
)
{
    float rgbIn[3] = {rIn, gIn, bIn};

    float rgb[3];
    rgb = %s;

    rOut = rgb[0];
    gOut = rgb[1];
    bOut = rgb[2];
    aOut = %s;
}
`

// Float3 returns the wrapper script for a function with a 3-vector
// output: rIn, gIn, bIn are packed into the rgbIn array, the single
// rgbOut expression produces a float[3] result unpacked into rOut,
// gOut, bOut, and aOut is the caller-supplied alpha expression.
func Float3(name, imports, rgbOut, aOut string) string {
	return fmt.Sprintf(float3Template, name, imports, rgbOut, aOut)
}
