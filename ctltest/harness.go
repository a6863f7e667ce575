// Copyright (c) 2026, CTL Kit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ctltest is the test harness for CTL color transforms: it
// generates probe ramp images, renders them through transforms with the
// external ctlrender interpreter, and asserts the results against
// stored reference images within a configurable tolerance.
//
// Tests embed a [FileCase] to exercise a complete transform file, or a
// [FuncCase] to exercise a single CTL function through a generated
// wrapper script. Reference images live under testdata and are
// regenerated by running the tests with [exrx.UpdateReferenceImages]
// on (the "update" build tag or CTLTEST_UPDATE_REFERENCE=true).
package ctltest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ctlkit/ctltest/base/iox/exrx"
	"github.com/ctlkit/ctltest/ramp"
	"github.com/ctlkit/ctltest/render"
)

// Options selects the probe ramp a test renders. The zero value is the
// default probe: a linear ramp from (0,0,0) to (1,1,1) over
// [ramp.DefaultSamples] samples, with no file name suffix.
type Options struct {

	// Space is the ramp sample spacing.
	Space ramp.Space

	// Start holds the ramp's first R, G, B values.
	Start [3]float32

	// End holds the ramp's last R, G, B values. The zero value means
	// (1,1,1).
	End [3]float32

	// Samples is the ramp sample count; [ramp.DefaultSamples] is used
	// if it is zero.
	Samples int

	// Suffix distinguishes the image files of multiple renders within
	// one test, for example "inverse".
	Suffix string
}

// spec returns the ramp specification for the options.
func (o Options) spec() ramp.Spec {
	sp := ramp.Unit()
	sp.Space = o.Space
	sp.Start = o.Start
	if o.End != ([3]float32{}) {
		sp.End = o.End
	}
	sp.Samples = o.Samples
	return sp
}

// fileName returns the image file name for the given test name and
// kind ("" for the input image, "reference", or "test").
func (o Options) fileName(name, kind string) string {
	s := name
	if kind != "" {
		s += "_" + kind
	}
	s += "_" + o.Space.String() + "_ramp"
	if o.Suffix != "" {
		s += "_" + o.Suffix
	}
	return s + ".exr"
}

// Harness drives one test's render-and-compare cycle. It owns a
// per-test scratch directory for generated inputs and outputs, and
// resolves the reference images under [Harness.Testdata]. Use it
// through [FileCase] or [FuncCase].
type Harness struct {

	// Name labels all files the harness generates. It defaults to the
	// test name with subtest separators flattened.
	Name string

	// Config is the harness configuration.
	Config *Config

	// Dir is the scratch directory for generated images and scripts,
	// removed when the test ends.
	Dir string

	// Testdata is the directory holding reference images, relative to
	// the test's working directory. It defaults to "testdata".
	Testdata string

	// ModulePath overrides [Config.ModulePath] when set.
	ModulePath string

	t testing.TB
}

// NewHarness returns a harness for the given test, with a fresh scratch
// directory. A nil config means the environment/built-in defaults.
func NewHarness(t testing.TB, cfg *Config) *Harness {
	if cfg == nil {
		cfg = (&Config{}).Defaults()
	}
	return &Harness{
		Name:     strings.ReplaceAll(t.Name(), "/", "_"),
		Config:   cfg,
		Dir:      t.TempDir(),
		Testdata: "testdata",
		t:        t,
	}
}

// InputPath returns the path the probe ramp image is written to.
func (h *Harness) InputPath(o Options) string {
	return filepath.Join(h.Dir, o.fileName(h.Name, ""))
}

// ReferencePath returns the path of the stored reference image.
func (h *Harness) ReferencePath(o Options) string {
	return filepath.Join(h.Testdata, o.fileName(h.Name, "reference"))
}

// AssessmentPath returns the path the rendered output is written to.
// In reference-update mode it coincides with [Harness.ReferencePath],
// so that rendering writes the new reference directly.
func (h *Harness) AssessmentPath(o Options) string {
	if exrx.UpdateReferenceImages {
		return h.ReferencePath(o)
	}
	return filepath.Join(h.Dir, o.fileName(h.Name, "test"))
}

// WriteRamp generates the probe ramp image with alpha 1 and writes it
// to [Harness.InputPath], returning the path.
func (h *Harness) WriteRamp(o Options) string {
	h.t.Helper()
	img, err := o.spec().Image(1)
	if err != nil {
		h.t.Fatal(err)
	}
	path := h.InputPath(o)
	if err := exrx.Save(img, path); err != nil {
		h.t.Fatal(err)
	}
	return path
}

// renderer returns the render configuration for this harness.
func (h *Harness) renderer() *render.Config {
	mp := h.ModulePath
	if mp == "" {
		mp = h.Config.ModulePath
	}
	return &render.Config{Command: h.Config.Command, ModulePath: mp}
}

// RenderRamp writes the probe ramp, renders it through the given CTL
// script files in order, and returns the reference and assessment image
// paths for comparison. It fails the test if the ramp cannot be
// generated or the renderer fails.
func (h *Harness) RenderRamp(o Options, ctls ...string) (ref, test string) {
	h.t.Helper()
	in := h.WriteRamp(o)
	ref = h.ReferencePath(o)
	test = h.AssessmentPath(o)
	if exrx.UpdateReferenceImages {
		if err := os.MkdirAll(filepath.Dir(test), 0777); err != nil {
			h.t.Fatal(err)
		}
	}
	if _, err := h.renderer().Render(in, test, ctls...); err != nil {
		h.t.Fatal(err)
	}
	return ref, test
}

// AssertRamp renders the probe ramp through the given CTL script files
// and asserts the result against the reference image within the
// configured tolerance.
func (h *Harness) AssertRamp(o Options, ctls ...string) {
	h.t.Helper()
	ref, test := h.RenderRamp(o, ctls...)
	exrx.AssertClose(h.t, ref, test, h.Config.Tolerance)
}

// AssertRampInverts renders the probe ramp through the given CTL script
// files and asserts the result against the input ramp itself, for
// forward-then-inverse round trips. There is no stored reference image,
// so reference-update mode does not apply.
func (h *Harness) AssertRampInverts(o Options, ctls ...string) {
	h.t.Helper()
	in := h.WriteRamp(o)
	test := filepath.Join(h.Dir, o.fileName(h.Name, "test"))
	if _, err := h.renderer().Render(in, test, ctls...); err != nil {
		h.t.Fatal(err)
	}
	if err := exrx.CompareFiles(in, test, h.Config.Tolerance); err != nil {
		h.t.Errorf("round trip does not reproduce the input ramp: %v", err)
	}
}
