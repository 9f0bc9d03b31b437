// Copyright 2026 The Kodeventure Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Result lines are styled only when stdout is a terminal; piped output
// stays plain so it can be captured and compared by scripts.
var styled = term.IsTerminal(int(os.Stdout.Fd()))

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	secretStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)

// Success renders a confirmation line.
func Success(s string) string {
	if !styled {
		return s
	}
	return successStyle.Render(s)
}

// Secret renders a generated token so it stands out from surrounding
// output. Tokens are transcribed by hand at game setup; legibility
// matters more than ceremony.
func Secret(s string) string {
	if !styled {
		return s
	}
	return secretStyle.Render(s)
}
