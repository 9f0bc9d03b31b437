// Copyright 2026 The Kodeventure Authors
// SPDX-License-Identifier: Apache-2.0

// Package gameserver is a typed HTTP client for the Kodeventure game
// server's admin API. Every operation is a single request/response round
// trip: no retries, no pooling beyond the standard transport, no local
// state between calls.
//
// Success is exactly HTTP 200. Any other status is returned as an
// [*APIError] carrying the raw response body, which is what the admin
// wants to see — the server writes human-readable failure text. A 200
// response to player creation may still embed an application-level
// failure in its "errors" field; that surfaces as a [*PlayerError].
package gameserver
