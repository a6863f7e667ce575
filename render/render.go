// Copyright (c) 2026, CTL Kit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render invokes the external ctlrender interpreter: it builds
// the command line for a set of CTL script files over an input image
// and captures the result of the subprocess.
package render

import (
	"fmt"

	"github.com/ctlkit/ctltest/base/exec"
)

// DefaultCommand is the name of the ctlrender executable, resolved
// through PATH unless [Config.Command] overrides it.
const DefaultCommand = "ctlrender"

// ModulePathEnv is the environment variable ctlrender uses to resolve
// CTL import declarations.
const ModulePathEnv = "CTL_MODULE_PATH"

// DefaultArgs are the base ctlrender invocation arguments: -verbose
// for diagnostics and -force to overwrite existing output files.
func DefaultArgs() []string {
	return []string{"-verbose", "-force"}
}

// ProcessError indicates that the external render process failed,
// carrying the exit code and captured output for diagnostics.
type ProcessError struct {

	// Result holds the command, exit code, and captured output.
	Result *exec.Result
}

func (e *ProcessError) Error() string {
	msg := fmt.Sprintf("render: %q exited with code %d", e.Result.Cmd, e.Result.ExitCode)
	if e.Result.Stderr != "" {
		msg += "\nstderr: " + e.Result.Stderr
	}
	if e.Result.Stdout != "" {
		msg += "\nstdout: " + e.Result.Stdout
	}
	return msg
}

// Config configures ctlrender invocation.
type Config struct {

	// Command is the renderer executable. [DefaultCommand] is used if
	// it is empty.
	Command string

	// Args are the base invocation arguments, placed before the -ctl
	// pairs. [DefaultArgs] is used if it is nil.
	Args []string

	// ModulePath is the directory the renderer searches for imported
	// CTL modules. If it is set, it is passed to the child process as
	// CTL_MODULE_PATH; if it is empty, the caller's environment wins.
	// The parent process environment is never modified.
	ModulePath string

	// Exec is the subprocess configuration to run the renderer with.
	// [exec.Minor] is used if it is nil.
	Exec *exec.Config
}

// Render runs ctlrender over the input image with the given CTL script
// files, writing the output image. The argument order is the base
// arguments, one -ctl pair per script in the given order (the renderer
// applies them in sequence), then the input and output paths.
//
// Render blocks until the renderer exits; there is no timeout, so a
// hung renderer hangs the caller. On success it returns the captured
// [exec.Result]; a renderer that could not be started or exited
// non-zero is returned as a *[ProcessError], in which case the output
// file may not exist.
func (c *Config) Render(input, output string, ctls ...string) (*exec.Result, error) {
	cmd := c.Command
	if cmd == "" {
		cmd = DefaultCommand
	}
	base := c.Args
	if base == nil {
		base = DefaultArgs()
	}

	args := make([]string, 0, len(base)+2*len(ctls)+2)
	args = append(args, base...)
	for _, ctl := range ctls {
		args = append(args, "-ctl", ctl)
	}
	args = append(args, input, output)

	xc := c.Exec
	if xc == nil {
		xc = exec.Minor()
	}
	if c.ModulePath != "" {
		xc = xc.SetEnv(ModulePathEnv, c.ModulePath)
	}

	res, err := xc.Exec(cmd, args...)
	if err != nil || res.ExitCode != 0 {
		return res, &ProcessError{Result: res}
	}
	return res, nil
}

// Render runs ctlrender with a default [Config].
func Render(input, output string, ctls ...string) (*exec.Result, error) {
	return (&Config{}).Render(input, output, ctls...)
}
