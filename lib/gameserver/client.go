// Copyright 2026 The Kodeventure Authors
// SPDX-License-Identifier: Apache-2.0

package gameserver

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/kodeventure/kvctl/lib/netutil"
)

// defaultTimeout bounds each request when the configuration does not
// specify one. The original client left this to the transport default
// (effectively unbounded); an explicit bound is deliberate here.
const defaultTimeout = 30 * time.Second

// Config holds configuration for creating a game-server Client.
type Config struct {
	// BaseURL is the game server base URL, e.g. "https://localhost:3001".
	// Required.
	BaseURL string

	// Token is the shared admin token sent in the Authorization header
	// on authenticated calls. Required for everything except certificate
	// provisioning.
	Token string

	// Timeout bounds each request. Defaults to 30s. Ignored when
	// HTTPClient is set.
	Timeout time.Duration

	// InsecureSkipVerify disables TLS certificate verification. Only
	// useful against a server running a self-signed certificate before
	// provision-cert has run. NewClient logs a warning when set.
	// Ignored when HTTPClient is set.
	InsecureSkipVerify bool

	// HTTPClient is used for all HTTP requests. Defaults to a client
	// built from Timeout and InsecureSkipVerify. Inject a custom client
	// in tests.
	HTTPClient *http.Client

	// Logger is used for structured logging. Defaults to slog.Default().
	Logger *slog.Logger
}

// Client issues admin API requests against a single game server.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a game-server client from the given configuration.
func NewClient(config Config) (*Client, error) {
	baseURL := strings.TrimRight(config.BaseURL, "/")
	if baseURL == "" {
		return nil, fmt.Errorf("gameserver: base URL is required")
	}
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		return nil, fmt.Errorf("gameserver: base URL %q must use http or https", config.BaseURL)
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		timeout := config.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
		if config.InsecureSkipVerify {
			transport := http.DefaultTransport.(*http.Transport).Clone()
			transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
			httpClient.Transport = transport
			logger.Warn("TLS certificate verification is DISABLED; connections to the game server can be intercepted",
				"server", baseURL,
			)
		}
	}

	return &Client{
		baseURL:    baseURL,
		token:      config.Token,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// do executes one admin API request and returns the response body.
// requestBody, when non-nil, is JSON-encoded. authenticated controls
// whether the Authorization header carries the admin token — the server
// expects the bare token, not an RFC 6750 "Bearer" prefix.
func (client *Client) do(ctx context.Context, method, path string, requestBody any, authenticated bool) ([]byte, error) {
	var bodyReader io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return nil, fmt.Errorf("gameserver: encoding request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	url := client.baseURL + path
	request, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("gameserver: creating request: %w", err)
	}

	if authenticated {
		if client.token == "" {
			return nil, fmt.Errorf("gameserver: %s %s requires an admin token", method, path)
		}
		request.Header.Set("Authorization", client.token)
	}
	if requestBody != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	client.logger.Debug("sending request", "method", method, "path", path, "authenticated", authenticated)

	response, err := client.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("gameserver: %s %s: %w", method, url, err)
	}
	defer response.Body.Close()

	// The server signals success with exactly 200; everything else is a
	// failure whose body is the diagnostic.
	if response.StatusCode != http.StatusOK {
		return nil, &APIError{
			StatusCode: response.StatusCode,
			Body:       netutil.ErrorBody(response.Body),
		}
	}

	body, err := netutil.ReadBody(response.Body)
	if err != nil {
		return nil, fmt.Errorf("gameserver: reading response body: %w", err)
	}
	return body, nil
}
