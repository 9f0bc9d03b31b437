// Copyright 2026 The Kodeventure Authors
// SPDX-License-Identifier: Apache-2.0

package playertoken

import (
	"strings"
	"testing"
)

func TestNew_LengthAndAlphabet(t *testing.T) {
	for range 1000 {
		token, err := New()
		if err != nil {
			t.Fatalf("New() error: %v", err)
		}
		if len(token) != Length {
			t.Fatalf("len(%q) = %d, want %d", token, len(token), Length)
		}
		for _, r := range token {
			if !strings.ContainsRune(alphabet, r) {
				t.Fatalf("token %q contains %q, not in alphabet", token, r)
			}
		}
	}
}

func TestNew_NotConstant(t *testing.T) {
	// Two independent draws may legitimately collide, but 64 draws
	// producing a single distinct value means the random source is broken.
	seen := make(map[string]bool)
	for range 64 {
		token, err := New()
		if err != nil {
			t.Fatalf("New() error: %v", err)
		}
		seen[token] = true
	}
	if len(seen) < 2 {
		t.Errorf("64 draws produced %d distinct tokens", len(seen))
	}
}

func TestNew_CoversFullAlphabet(t *testing.T) {
	// With 4000 letters drawn, every one of the 52 symbols should appear.
	// The chance of missing any particular letter is (51/52)^4000, far
	// below what a flaky test tolerance needs to worry about. Catches
	// rejection-sampling bugs that clip part of the alphabet.
	counts := make(map[rune]int)
	for range 1000 {
		token, err := New()
		if err != nil {
			t.Fatalf("New() error: %v", err)
		}
		for _, r := range token {
			counts[r]++
		}
	}
	if len(counts) != len(alphabet) {
		t.Errorf("observed %d distinct letters, want %d", len(counts), len(alphabet))
	}
}
