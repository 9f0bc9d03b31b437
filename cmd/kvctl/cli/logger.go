// Copyright 2026 The Kodeventure Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"log/slog"
	"os"

	"golang.org/x/term"
)

// NewLogger creates the structured logger for command execution. When
// stderr is a terminal, uses slog.TextHandler for human-readable output.
// When stderr is piped or redirected (scripts, CI), uses slog.JSONHandler
// for machine-parseable output.
//
// Diagnostics go through this logger; command results go to stdout.
func NewLogger() *slog.Logger {
	var handler slog.Handler
	options := &slog.HandlerOptions{Level: slog.LevelInfo}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		handler = slog.NewTextHandler(os.Stderr, options)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, options)
	}
	return slog.New(handler)
}
