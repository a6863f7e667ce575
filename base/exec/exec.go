// Copyright (c) 2026, CTL Kit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package exec provides an easy way to execute external programs with
// explicit configuration of environment, directory, and verbosity, and
// an explicit [Result] capturing the exit code and output instead of
// hiding them inside an error.
package exec

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Config contains the configuration information that controls the
// behavior of exec. It is used in the Run, Output, and Exec methods.
type Config struct {

	// Dir is the directory to execute commands in. If it is unset,
	// commands are run in the current directory.
	Dir string

	// Env contains variables set in the environment of the child
	// process, in addition to the parent environment. The parent
	// environment itself is never modified.
	Env map[string]string

	// Echo is the writer for echoing the command before running it.
	// It can be set to nil to disable echoing.
	Echo io.Writer

	// PrintOnly indicates whether to only print commands that would be
	// run and not actually run them.
	PrintOnly bool
}

// Result is the outcome of executing a command: the exit code and the
// captured standard output and standard error text.
type Result struct {

	// Cmd is the command that was run, with arguments, for diagnostics.
	Cmd string

	// ExitCode is the exit code the command returned. It is 0 on
	// success and -1 if the command did not run at all.
	ExitCode int

	// Stdout is the captured standard output, with a trailing newline
	// removed.
	Stdout string

	// Stderr is the captured standard error, with a trailing newline
	// removed.
	Stderr string
}

// Err returns nil if the command exited with code 0, and an *[Error]
// wrapping this result otherwise.
func (r *Result) Err() error {
	if r.ExitCode == 0 {
		return nil
	}
	return &Error{Result: r}
}

// Error is the error returned for a command that exited non-zero,
// carrying the full [Result] for diagnostics.
type Error struct {
	Result *Result
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("command %q exited with code %d", e.Result.Cmd, e.Result.ExitCode)
	if e.Result.Stderr != "" {
		msg += ": " + e.Result.Stderr
	}
	return msg
}

// Exec executes the command with the given arguments, waiting for it to
// complete, and returns the [Result]. The returned error is non-nil only
// if the command could not be started at all (for example, the executable
// was not found); a non-zero exit code is reported through
// [Result.ExitCode], which callers convert with [Result.Err] as needed.
func (c *Config) Exec(cmd string, args ...string) (*Result, error) {
	res := &Result{Cmd: cmdString(cmd, args...)}

	if c.Echo != nil {
		fmt.Fprintln(c.Echo, res.Cmd)
	}
	if c.PrintOnly {
		return res, nil
	}

	cm := exec.Command(cmd, args...)
	cm.Dir = c.Dir
	cm.Env = os.Environ()
	for k, v := range c.Env {
		cm.Env = append(cm.Env, k+"="+v)
	}

	outBuf := &bytes.Buffer{}
	errBuf := &bytes.Buffer{}
	cm.Stdout = outBuf
	cm.Stderr = errBuf

	err := cm.Run()
	res.Stdout = strings.TrimSuffix(outBuf.String(), "\n")
	res.Stderr = strings.TrimSuffix(errBuf.String(), "\n")

	if err != nil {
		if ee, ok := err.(*exec.ExitError); ok {
			res.ExitCode = ee.ExitCode()
			return res, nil
		}
		res.ExitCode = -1
		return res, fmt.Errorf("error starting %q: %w", res.Cmd, err)
	}
	return res, nil
}

// Run runs the given command with the given arguments, returning an
// error for both a failure to start and a non-zero exit code.
func (c *Config) Run(cmd string, args ...string) error {
	res, err := c.Exec(cmd, args...)
	if err != nil {
		return err
	}
	return res.Err()
}

// Output runs the command and returns the text from stdout, with an
// error as in [Config.Run].
func (c *Config) Output(cmd string, args ...string) (string, error) {
	res, err := c.Exec(cmd, args...)
	if err != nil {
		return res.Stdout, err
	}
	return res.Stdout, res.Err()
}

// SetDir sets [Config.Dir]: the directory to execute commands in.
func (c *Config) SetDir(dir string) *Config {
	c.Dir = dir
	return c
}

// SetEnv sets the given environment variable for child processes.
func (c *Config) SetEnv(key, val string) *Config {
	if c.Env == nil {
		c.Env = map[string]string{}
	}
	c.Env[key] = val
	return c
}

// SetEcho sets [Config.Echo]: the writer for echoing commands.
func (c *Config) SetEcho(w io.Writer) *Config {
	c.Echo = w
	return c
}

// SetPrintOnly sets [Config.PrintOnly]: whether to only print commands.
func (c *Config) SetPrintOnly(printOnly bool) *Config {
	c.PrintOnly = printOnly
	return c
}

// cmdString returns the command with its arguments as a single string.
func cmdString(cmd string, args ...string) string {
	if len(args) == 0 {
		return cmd
	}
	return cmd + " " + strings.Join(args, " ")
}
