// Copyright 2026 The Kodeventure Authors
// SPDX-License-Identifier: Apache-2.0

// Package playertoken generates the short identifiers issued to newly
// created players. A token is four letters drawn uniformly from A-Z and
// a-z. Tokens are not checked for uniqueness: with 52^4 possible values
// the collision probability is negligible for the player populations
// the game server is designed for (a few dozen at most).
package playertoken

import (
	"crypto/rand"
	"fmt"
)

// Length is the number of characters in a token.
const Length = 4

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// New returns a fresh token: Length characters drawn uniformly from the
// 52-letter alphabet. Uses crypto/rand with rejection sampling so every
// letter is equally likely.
func New() (string, error) {
	// Largest multiple of len(alphabet) that fits in a byte. Bytes at or
	// above this value are rejected to avoid modulo bias.
	const limit = byte(256 / len(alphabet) * len(alphabet))

	token := make([]byte, 0, Length)
	buffer := make([]byte, Length)

	for len(token) < Length {
		if _, err := rand.Read(buffer); err != nil {
			return "", fmt.Errorf("reading random bytes: %w", err)
		}
		for _, b := range buffer {
			if b >= limit {
				continue
			}
			token = append(token, alphabet[int(b)%len(alphabet)])
			if len(token) == Length {
				break
			}
		}
	}

	return string(token), nil
}
