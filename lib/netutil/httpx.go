// Copyright 2026 The Kodeventure Authors
// SPDX-License-Identifier: Apache-2.0

// Package netutil provides HTTP I/O helpers for the game-server client.
//
// All response body reads are bounded at MaxResponseSize so a misbehaving
// server cannot exhaust memory. The game server's API responses are JSON
// documents of a few kilobytes at most; the bound is generous so it never
// interferes with normal operation.
package netutil

import (
	"io"
)

// MaxResponseSize is the bound on API response body reads: 64 MB.
const MaxResponseSize int64 = 64 << 20

// ReadBody reads an API response body up to MaxResponseSize bytes. Use
// instead of io.ReadAll when reading HTTP response bodies.
func ReadBody(body io.Reader) ([]byte, error) {
	return io.ReadAll(io.LimitReader(body, MaxResponseSize))
}

// ErrorBody reads an HTTP error response body and returns it as a string
// for diagnostic messages. Read errors are ignored — a partial or empty
// body is still useful in an error message.
func ErrorBody(body io.Reader) string {
	data, _ := io.ReadAll(io.LimitReader(body, MaxResponseSize))
	return string(data)
}
