// Copyright (c) 2026, CTL Kit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ramp generates the synthetic gradient images used as probe
// inputs for CTL transform tests: single-row RGB images whose channels
// vary linearly or logarithmically between configurable start and end
// values.
package ramp

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/mrjoshuak/go-openexr/exr"

	"github.com/ctlkit/ctltest/base/interleave"
)

// DefaultSamples is the number of ramp samples used when
// [Spec.Samples] is zero.
const DefaultSamples = 1024

// RangeError indicates that a logarithmic ramp was requested with a
// non-positive start or end value, which has no logarithm.
type RangeError struct {

	// Space is the requested ramp space.
	Space Space

	// Channel is the index of the offending channel.
	Channel int

	// Start and End are the offending channel's range.
	Start, End float32
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("ramp: %s ramp requires a strictly positive range: channel %d has start %g, end %g",
		e.Space, e.Channel, e.Start, e.End)
}

// Spec specifies a ramp image: the sample spacing, the per-channel
// start and end values, and the number of samples.
type Spec struct {

	// Space is the sample spacing: [Linear], [Log2], or [Log10].
	Space Space

	// Start holds the first sample's R, G, B values.
	Start [3]float32

	// End holds the last sample's R, G, B values.
	End [3]float32

	// Samples is the number of samples (the image width).
	// [DefaultSamples] is used if it is zero.
	Samples int
}

// Unit returns the default probe ramp: linear from (0,0,0) to (1,1,1)
// over [DefaultSamples] samples.
func Unit() Spec {
	return Spec{Start: [3]float32{0, 0, 0}, End: [3]float32{1, 1, 1}}
}

// samples returns the effective sample count.
func (sp Spec) samples() int {
	if sp.Samples == 0 {
		return DefaultSamples
	}
	return sp.Samples
}

// Channels generates the three ramp channel slices. The first sample
// of each channel equals Start and the last equals End; log-spaced
// ramps additionally require all Start and End values to be strictly
// positive, returning a [RangeError] otherwise.
func (sp Spec) Channels() (r, g, b []float32, err error) {
	n := sp.samples()
	if n < 1 {
		return nil, nil, nil, fmt.Errorf("ramp: samples must be positive, got %d", n)
	}
	if sp.Space == Log2 || sp.Space == Log10 {
		for c := 0; c < 3; c++ {
			if sp.Start[c] <= 0 || sp.End[c] <= 0 {
				return nil, nil, nil, &RangeError{Space: sp.Space, Channel: c, Start: sp.Start[c], End: sp.End[c]}
			}
		}
	}
	chans := make([][]float32, 3)
	for c := 0; c < 3; c++ {
		chans[c] = sp.channel(c, n)
	}
	return chans[0], chans[1], chans[2], nil
}

// channel generates the values for one channel; the range has already
// been validated.
func (sp Spec) channel(c, n int) []float32 {
	start, end := sp.Start[c], sp.End[c]
	vals := make([]float32, n)
	if n == 1 {
		vals[0] = start
		return vals
	}
	switch sp.Space {
	case Log2:
		ls, le := math32.Log2(start), math32.Log2(end)
		for j := range vals {
			t := float32(j) / float32(n-1)
			vals[j] = math32.Pow(2, ls+(le-ls)*t)
		}
	case Log10:
		ls, le := math32.Log10(start), math32.Log10(end)
		for j := range vals {
			t := float32(j) / float32(n-1)
			vals[j] = math32.Pow(10, ls+(le-ls)*t)
		}
	default:
		for j := range vals {
			t := float32(j) / float32(n-1)
			vals[j] = start + (end-start)*t
		}
	}
	// log-space interpolation drifts off the endpoints by float
	// rounding; the boundary contract is exact
	vals[0] = start
	vals[n-1] = end
	return vals
}

// Image generates the ramp as a single-row RGBA image of width
// [Spec.Samples], with the given constant alpha value. The ramp itself
// is the three color channels; alpha is supplied by the caller.
func (sp Spec) Image(alpha float32) (*exr.RGBAImage, error) {
	r, g, b, err := sp.Channels()
	if err != nil {
		return nil, err
	}
	px, err := interleave.Stack(r, g, b)
	if err != nil {
		return nil, err
	}
	img := exr.NewRGBAImage(exr.RectFromSize(len(px), 1))
	for x, p := range px {
		img.SetRGBA(x, 0, p[0], p[1], p[2], alpha)
	}
	return img, nil
}
