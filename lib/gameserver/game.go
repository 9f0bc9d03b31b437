// Copyright 2026 The Kodeventure Authors
// SPDX-License-Identifier: Apache-2.0

package gameserver

import (
	"context"
	"net/http"
)

// StartGame begins the game session.
func (client *Client) StartGame(ctx context.Context) error {
	return client.transition(ctx, "/game/start")
}

// PauseGame suspends a running game session.
func (client *Client) PauseGame(ctx context.Context) error {
	return client.transition(ctx, "/game/pause")
}

// UnpauseGame resumes a paused game session.
func (client *Client) UnpauseGame(ctx context.Context) error {
	return client.transition(ctx, "/game/unpause")
}

// StopGame ends the game session.
func (client *Client) StopGame(ctx context.Context) error {
	return client.transition(ctx, "/game/stop")
}

// transition posts a bodyless authenticated state change. The server's
// session state machine does all the validation; the client just reports
// what came back.
func (client *Client) transition(ctx context.Context, path string) error {
	_, err := client.do(ctx, http.MethodPost, path, nil, true)
	return err
}
