// Copyright 2026 The Kodeventure Authors
// SPDX-License-Identifier: Apache-2.0

package gameserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// NewPlayerRequest is the body of a player-creation call. The shape is
// owned by the server; this client only fills it in.
type NewPlayerRequest struct {
	// Token is the secret the player uses to identify themselves.
	Token string `json:"token"`

	// ServerToken is the secret the player's own quest server presents
	// back to the game server.
	ServerToken string `json:"server_token"`

	// Name is the player's display name.
	Name string `json:"name"`

	// Score starts at zero.
	Score int `json:"score"`

	// Titles and Loot start empty. They must serialize as [] rather
	// than null — the server treats null as a malformed record.
	Titles []string `json:"titles"`
	Loot   []string `json:"loot"`
}

// NewPlayer builds a creation request for a fresh player: zero score,
// no titles, no loot.
func NewPlayer(name, token, serverToken string) NewPlayerRequest {
	return NewPlayerRequest{
		Token:       token,
		ServerToken: serverToken,
		Name:        name,
		Score:       0,
		Titles:      []string{},
		Loot:        []string{},
	}
}

// CreatePlayer registers a new player. A 200 response whose body carries
// an "errors" field is an application-level rejection and returns a
// [*PlayerError].
func (client *Client) CreatePlayer(ctx context.Context, player NewPlayerRequest) error {
	body, err := client.do(ctx, http.MethodPost, "/user", player, true)
	if err != nil {
		return err
	}

	var result struct {
		Errors json.RawMessage `json:"errors"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("gameserver: decoding create-player response: %w", err)
	}
	if len(result.Errors) > 0 {
		return &PlayerError{Message: string(result.Errors)}
	}
	return nil
}

// ListPlayers fetches the full player collection. Records are returned
// as raw JSON — this client never interprets their fields.
func (client *Client) ListPlayers(ctx context.Context) ([]json.RawMessage, error) {
	body, err := client.do(ctx, http.MethodGet, "/users", nil, true)
	if err != nil {
		return nil, err
	}

	var players []json.RawMessage
	if err := json.Unmarshal(body, &players); err != nil {
		return nil, fmt.Errorf("gameserver: decoding player list: %w", err)
	}
	return players, nil
}
