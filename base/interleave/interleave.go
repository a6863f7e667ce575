// Copyright (c) 2026, CTL Kit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package interleave converts between separate per-channel sample
// slices and interleaved sample-major pixel data, the two layouts used
// when moving ramp data in and out of image files.
package interleave

import "fmt"

// Stack interleaves the given same-length channel slices along a
// trailing channel axis: the result has one entry per sample, each a
// vector with one component per channel, so that result[j][c] ==
// channels[c][j]. It is the inverse of [Split].
func Stack(channels ...[]float32) ([][]float32, error) {
	if len(channels) == 0 {
		return nil, nil
	}
	n := len(channels[0])
	for c, ch := range channels {
		if len(ch) != n {
			return nil, fmt.Errorf("interleave.Stack: channel %d has %d samples, expected %d", c, len(ch), n)
		}
	}
	samples := make([][]float32, n)
	for j := range samples {
		px := make([]float32, len(channels))
		for c, ch := range channels {
			px[c] = ch[j]
		}
		samples[j] = px
	}
	return samples, nil
}

// Split separates interleaved sample-major pixel data into per-channel
// slices, ordered by component index, so that result[c][j] ==
// samples[j][c]. All samples must have the same component count.
// It is the inverse of [Stack].
func Split(samples [][]float32) ([][]float32, error) {
	if len(samples) == 0 {
		return nil, nil
	}
	nc := len(samples[0])
	for j, px := range samples {
		if len(px) != nc {
			return nil, fmt.Errorf("interleave.Split: sample %d has %d components, expected %d", j, len(px), nc)
		}
	}
	channels := make([][]float32, nc)
	for c := range channels {
		ch := make([]float32, len(samples))
		for j, px := range samples {
			ch[j] = px[c]
		}
		channels[c] = ch
	}
	return channels, nil
}
