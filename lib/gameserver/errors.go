// Copyright 2026 The Kodeventure Authors
// SPDX-License-Identifier: Apache-2.0

package gameserver

import (
	"fmt"
)

// APIError is returned when the server responds with any status other
// than 200. Body is the raw response text, surfaced verbatim.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("server returned %d", e.StatusCode)
	}
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Body)
}

// PlayerError is an application-level failure embedded in a 200 response
// to player creation (the "errors" field). Message is the field's value
// rendered as compact JSON.
type PlayerError struct {
	Message string
}

func (e *PlayerError) Error() string {
	return e.Message
}
