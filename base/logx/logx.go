// Copyright (c) 2026, CTL Kit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides leveled logging for the harness, built on
// [log/slog]. The verbosity seen by the user is controlled by a single
// [UserLevel] variable, which command-line tools typically map to
// -v / -q style flags.
package logx

import (
	"fmt"
	"log/slog"
	"os"
)

// UserLevel is the verbosity level that the user has selected.
// Any messages at this level or above it will be shown.
var UserLevel = defaultUserLevel

// UserLevelFromString sets [UserLevel] from a string name
// (debug, info, warn, error); unknown names are ignored.
func UserLevelFromString(level string) {
	switch level {
	case "debug":
		UserLevel = slog.LevelDebug
	case "info":
		UserLevel = slog.LevelInfo
	case "warn":
		UserLevel = slog.LevelWarn
	case "error":
		UserLevel = slog.LevelError
	}
}

// print prints the given message to stderr if the given level
// is at or above [UserLevel].
func print(level slog.Level, msg string) {
	if UserLevel > level {
		return
	}
	fmt.Fprintln(os.Stderr, msg)
}

// PrintlnInfo prints the given message at [slog.LevelInfo].
func PrintlnInfo(a ...any) { print(slog.LevelInfo, fmt.Sprint(a...)) }

// PrintlnWarn prints the given message at [slog.LevelWarn].
func PrintlnWarn(a ...any) { print(slog.LevelWarn, fmt.Sprint(a...)) }

// PrintlnError prints the given message at [slog.LevelError].
func PrintlnError(a ...any) { print(slog.LevelError, fmt.Sprint(a...)) }
