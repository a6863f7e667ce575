// Copyright (c) 2026, CTL Kit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ctltest

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/ctlkit/ctltest/base/fsx"
	"github.com/ctlkit/ctltest/ctlscript"
)

// FileCase tests a complete CTL transform file: the probe ramp is
// rendered through the file as-is and compared against the reference
// image.
type FileCase struct {
	Harness

	// CTLFile is the transform's path, relative to [Config.Root].
	CTLFile string
}

// NewFileCase returns a test case for the given transform file,
// relative to [Config.Root]. A nil config means the environment
// defaults.
func NewFileCase(t testing.TB, cfg *Config, ctlFile string) *FileCase {
	return &FileCase{Harness: *NewHarness(t, cfg), CTLFile: ctlFile}
}

// CTLPath returns the full path of the transform under test, failing
// the test if the file does not exist.
func (fc *FileCase) CTLPath() string {
	fc.t.Helper()
	path := filepath.Join(fc.Config.Root, fc.CTLFile)
	ok, err := fsx.FileExists(path)
	if err != nil {
		fc.t.Fatal(err)
	}
	if !ok {
		fc.t.Fatalf("CTL file %s does not exist", path)
	}
	return path
}

// Assert renders the probe ramp through the transform and asserts the
// result against the reference image.
func (fc *FileCase) Assert(o Options) {
	fc.t.Helper()
	fc.AssertRamp(o, fc.CTLPath())
}

// FuncCase tests a single CTL function: a wrapper script is generated
// around the function under test, the probe ramp is rendered through
// it, and the result is compared against the reference image.
type FuncCase struct {
	Harness

	// Declaration is the path, relative to [Config.Root], of the CTL
	// module declaring the function under test. Its directory is added
	// to the module path so the generated script's import resolves.
	Declaration string

	// Imports are additional module names the generated scripts import
	// before the declaration module itself.
	Imports []string
}

// NewFuncCase returns a test case for a function declared in the given
// CTL module, relative to [Config.Root], failing the test if the module
// file does not exist. A nil config means the environment defaults.
func NewFuncCase(t testing.TB, cfg *Config, declaration string, imports ...string) *FuncCase {
	fc := &FuncCase{Harness: *NewHarness(t, cfg), Declaration: declaration, Imports: imports}
	fc.ModulePath = fc.Config.ModulePath + string(os.PathListSeparator) + filepath.Dir(fc.DeclarationPath())
	return fc
}

// DeclarationPath returns the full path of the declaring module,
// failing the test if the file does not exist.
func (fc *FuncCase) DeclarationPath() string {
	fc.t.Helper()
	path := filepath.Join(fc.Config.Root, fc.Declaration)
	ok, err := fsx.FileExists(path)
	if err != nil {
		fc.t.Fatal(err)
	}
	if !ok {
		fc.t.Fatalf("CTL module %s does not exist", path)
	}
	return path
}

// DeclarationImport returns the declaring module's import name, the
// file name without directory or extension.
func (fc *FuncCase) DeclarationImport() string {
	return fsx.TrimExt(fc.Declaration)
}

// imports returns the generated scripts' import block: the extra
// imports in order, then the declaration module.
func (fc *FuncCase) imports() string {
	names := append(slices.Clone(fc.Imports), fc.DeclarationImport())
	return ctlscript.Imports(names...)
}

// writeScript writes a generated wrapper script to the scratch
// directory and returns its path.
func (fc *FuncCase) writeScript(src string) string {
	fc.t.Helper()
	path := filepath.Join(fc.Dir, fc.Name+".ctl")
	if err := os.WriteFile(path, []byte(src), 0666); err != nil {
		fc.t.Fatal(err)
	}
	return path
}

// AssertFloat renders the probe ramp through a generated scalar wrapper
// script and asserts the result against the reference image. The rOut,
// gOut, bOut expressions map the rIn, gIn, bIn channels independently;
// aOut maps the alpha channel (usually "aIn").
func (fc *FuncCase) AssertFloat(o Options, rOut, gOut, bOut, aOut string) {
	fc.t.Helper()
	src := ctlscript.Float(fc.Name, fc.imports(), rOut, gOut, bOut, aOut)
	fc.AssertRamp(o, fc.writeScript(src))
}

// AssertFloat3 renders the probe ramp through a generated 3-vector
// wrapper script and asserts the result against the reference image.
// The rgbOut expression maps the rgbIn array to a float[3] result;
// aOut maps the alpha channel (usually "aIn").
func (fc *FuncCase) AssertFloat3(o Options, rgbOut, aOut string) {
	fc.t.Helper()
	src := ctlscript.Float3(fc.Name, fc.imports(), rgbOut, aOut)
	fc.AssertRamp(o, fc.writeScript(src))
}

// AssertFloatInverts renders the probe ramp through a generated scalar
// wrapper script and asserts the result against the input ramp itself.
// The expressions are expected to compose a function with its inverse.
func (fc *FuncCase) AssertFloatInverts(o Options, rOut, gOut, bOut, aOut string) {
	fc.t.Helper()
	src := ctlscript.Float(fc.Name, fc.imports(), rOut, gOut, bOut, aOut)
	fc.AssertRampInverts(o, fc.writeScript(src))
}

// AssertFloat3Inverts is [FuncCase.AssertFloatInverts] for a 3-vector
// round-trip expression.
func (fc *FuncCase) AssertFloat3Inverts(o Options, rgbOut, aOut string) {
	fc.t.Helper()
	src := ctlscript.Float3(fc.Name, fc.imports(), rgbOut, aOut)
	fc.AssertRampInverts(o, fc.writeScript(src))
}
