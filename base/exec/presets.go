// Copyright (c) 2026, CTL Kit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exec

import (
	"log/slog"
	"os"

	"github.com/ctlkit/ctltest/base/logx"
)

// Major returns a default [Config] for major commands: those whose
// invocation the user should normally see. The command is echoed to
// stderr when [logx.UserLevel] is info or below.
func Major() *Config {
	c := &Config{}
	if logx.UserLevel <= slog.LevelInfo {
		c.Echo = os.Stderr
	}
	return c
}

// Minor returns a default [Config] for minor commands: internal steps
// only shown at debug verbosity.
func Minor() *Config {
	c := &Config{}
	if logx.UserLevel <= slog.LevelDebug {
		c.Echo = os.Stderr
	}
	return c
}

// Verbose returns a default [Config] that always echoes commands.
func Verbose() *Config {
	return &Config{Echo: os.Stderr}
}

// Silent returns a default [Config] that never echoes commands.
func Silent() *Config {
	return &Config{}
}
