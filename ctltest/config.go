// Copyright (c) 2026, CTL Kit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ctltest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/ctlkit/ctltest/base/iox/exrx"
	"github.com/ctlkit/ctltest/render"
)

// ConfigFile is the name of the optional TOML configuration file
// looked up in the current directory by [LoadConfig].
const ConfigFile = "ctltest.toml"

// Config holds the harness-wide configuration: where the CTL codebase
// under test lives, how to invoke the renderer, and the comparison
// tolerance.
type Config struct {

	// Root is the directory containing the CTL codebase's
	// transforms/ctl tree. CTL file paths in test cases are relative
	// to it.
	Root string `toml:"root"`

	// Command is the ctlrender executable to invoke.
	Command string `toml:"command"`

	// ModulePath is the directory ctlrender searches for imported CTL
	// modules. It defaults to the standard library directory under
	// Root.
	ModulePath string `toml:"module-path"`

	// Tolerance is the image comparison tolerance.
	Tolerance exrx.Tolerance `toml:"tolerance"`
}

// Defaults fills any unset fields from the environment (CTL_ROOT,
// CTLRENDER, CTL_MODULE_PATH) and built-in defaults, resolved at the
// call site instead of mutating the process environment.
func (c *Config) Defaults() *Config {
	if c.Root == "" {
		c.Root = os.Getenv("CTL_ROOT")
	}
	if c.Root == "" {
		c.Root = "."
	}
	if c.Command == "" {
		c.Command = os.Getenv("CTLRENDER")
	}
	if c.Command == "" {
		c.Command = render.DefaultCommand
	}
	if c.ModulePath == "" {
		c.ModulePath = os.Getenv(render.ModulePathEnv)
	}
	if c.ModulePath == "" {
		c.ModulePath = filepath.Join(c.Root, "transforms", "ctl", "lib")
	}
	if c.Tolerance == (exrx.Tolerance{}) {
		c.Tolerance = exrx.DefaultTolerance
	}
	return c
}

// OpenConfig reads the given TOML configuration file and fills unset
// fields with [Config.Defaults].
func OpenConfig(filename string) (*Config, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	c := &Config{}
	if err := toml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("ctltest: error parsing %s: %w", filename, err)
	}
	return c.Defaults(), nil
}

// LoadConfig returns the configuration from [ConfigFile] in the
// current directory if it exists, and the environment/built-in
// defaults otherwise.
func LoadConfig() (*Config, error) {
	c, err := OpenConfig(ConfigFile)
	if err == nil {
		return c, nil
	}
	if os.IsNotExist(err) {
		return (&Config{}).Defaults(), nil
	}
	return nil, err
}
