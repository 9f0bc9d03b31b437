// Copyright 2026 The Kodeventure Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// PromptLine reads one line from stdin, printing prompt to stderr first
// when stdin is a terminal. Piped input works too — the prompt is simply
// omitted so scripts can feed values without noise on stderr.
func PromptLine(prompt string) (string, error) {
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	return readLine(os.Stdin, os.Stderr, prompt, interactive)
}

// readLine is the testable core of PromptLine.
func readLine(in io.Reader, out io.Writer, prompt string, interactive bool) (string, error) {
	if interactive {
		fmt.Fprint(out, prompt)
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading input: %w", err)
	}

	line = strings.TrimSpace(line)
	if line == "" && errors.Is(err, io.EOF) {
		return "", fmt.Errorf("no input")
	}
	return line, nil
}
