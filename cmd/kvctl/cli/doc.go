// Copyright 2026 The Kodeventure Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command dispatch framework for kvctl: a small
// command tree with pflag flag parsing, structured help output, and
// typo suggestions for unknown commands and flags. It also carries the
// shared pieces every command needs — the server connection flags, the
// stderr logger, stdin prompting, and terminal styling.
//
// Commands are assembled into a tree in cmd/kvctl/commands. Dispatch
// happens before any network I/O: an unrecognized command name never
// reaches the game server.
package cli
