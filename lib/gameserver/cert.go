// Copyright 2026 The Kodeventure Authors
// SPDX-License-Identifier: Apache-2.0

package gameserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// CertBundle is the TLS material returned by certificate provisioning:
// PEM text for the private key, public key, and certificate.
type CertBundle struct {
	Private string `json:"private"`
	Public  string `json:"public"`
	Cert    string `json:"cert"`
}

// ProvisionCert asks the server to generate a fresh certificate bundle.
// This is the one unauthenticated call: it exists so a new deployment can
// bootstrap TLS before any token has been configured.
func (client *Client) ProvisionCert(ctx context.Context) (*CertBundle, error) {
	body, err := client.do(ctx, http.MethodPost, "/cert", nil, false)
	if err != nil {
		return nil, err
	}

	var bundle CertBundle
	if err := json.Unmarshal(body, &bundle); err != nil {
		return nil, fmt.Errorf("gameserver: decoding certificate bundle: %w", err)
	}
	return &bundle, nil
}
