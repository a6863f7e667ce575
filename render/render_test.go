// Copyright (c) 2026, CTL Kit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ctlkit/ctltest/base/exec"
)

// fakeRenderer writes a shell script standing in for ctlrender and
// returns its path.
func fakeRenderer(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake renderer uses sh")
	}
	path := filepath.Join(t.TempDir(), "fake-ctlrender")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0755))
	return path
}

func TestRenderArgumentOrder(t *testing.T) {
	cmd := fakeRenderer(t, `echo "$@"`)

	c := &Config{Command: cmd, Exec: exec.Silent()}
	res, err := c.Render("in.exr", "out.exr", "a.ctl", "b.ctl")
	require.NoError(t, err)
	assert.Equal(t, "-verbose -force -ctl a.ctl -ctl b.ctl in.exr out.exr", res.Stdout)
}

func TestRenderCustomArgs(t *testing.T) {
	cmd := fakeRenderer(t, `echo "$@"`)

	c := &Config{Command: cmd, Args: []string{"-force"}, Exec: exec.Silent()}
	res, err := c.Render("in.exr", "out.exr", "a.ctl")
	require.NoError(t, err)
	assert.Equal(t, "-force -ctl a.ctl in.exr out.exr", res.Stdout)
}

func TestRenderModulePath(t *testing.T) {
	cmd := fakeRenderer(t, `echo "$CTL_MODULE_PATH"`)

	before := os.Getenv(ModulePathEnv)

	c := &Config{Command: cmd, ModulePath: "/ctl/lib", Exec: exec.Silent()}
	res, err := c.Render("in.exr", "out.exr")
	require.NoError(t, err)
	assert.Equal(t, "/ctl/lib", res.Stdout)

	// the parent environment is left untouched
	assert.Equal(t, before, os.Getenv(ModulePathEnv))
}

func TestRenderInheritsModulePath(t *testing.T) {
	cmd := fakeRenderer(t, `echo "$CTL_MODULE_PATH"`)
	t.Setenv(ModulePathEnv, "/from/env")

	c := &Config{Command: cmd, Exec: exec.Silent()}
	res, err := c.Render("in.exr", "out.exr")
	require.NoError(t, err)
	assert.Equal(t, "/from/env", res.Stdout)
}

func TestRenderFailure(t *testing.T) {
	cmd := fakeRenderer(t, `echo "cannot open a.ctl" >&2; exit 1`)

	c := &Config{Command: cmd, Exec: exec.Silent()}
	_, err := c.Render("in.exr", "out.exr", "a.ctl")
	require.Error(t, err)

	var pe *ProcessError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 1, pe.Result.ExitCode)
	assert.Contains(t, pe.Result.Stderr, "cannot open a.ctl")
	assert.Contains(t, pe.Error(), "exited with code 1")
}

func TestRenderMissingExecutable(t *testing.T) {
	c := &Config{Command: "ctltest-no-such-renderer", Exec: exec.Silent()}
	_, err := c.Render("in.exr", "out.exr")
	require.Error(t, err)

	var pe *ProcessError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, -1, pe.Result.ExitCode)
}
