// Copyright 2026 The Kodeventure Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/pflag"

	"github.com/kodeventure/kvctl/lib/config"
	"github.com/kodeventure/kvctl/lib/gameserver"
)

// ServerConnection manages the flags shared by every command that talks
// to the game server. Zero-value flags defer to the resolved
// configuration (environment, config file, defaults); a set flag always
// wins.
//
// Embed one in a command's params struct and call AddFlags during flag
// registration.
type ServerConnection struct {
	ServerURL          string
	AuthToken          string
	Timeout            time.Duration
	InsecureSkipVerify bool
	ConfigPath         string
}

// AddFlags registers the connection flags on flagSet.
func (sc *ServerConnection) AddFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&sc.ServerURL, "server", "",
		fmt.Sprintf("game server base URL (default %s)", config.DefaultServerURL))
	flagSet.StringVar(&sc.AuthToken, "token", "",
		"admin auth token (default from config)")
	flagSet.DurationVar(&sc.Timeout, "timeout", 0,
		fmt.Sprintf("request timeout (default %s)", config.DefaultTimeout))
	flagSet.BoolVar(&sc.InsecureSkipVerify, "insecure-skip-verify", false,
		"skip TLS certificate verification toward the server (DANGEROUS: allows interception)")
	flagSet.StringVar(&sc.ConfigPath, "config", "",
		"path to config file (default $KVCTL_CONFIG)")
}

// Resolve loads the configuration and applies any set connection flags
// on top of it.
func (sc *ServerConnection) Resolve() (*config.Config, error) {
	cfg, err := config.Load(sc.ConfigPath)
	if err != nil {
		return nil, err
	}

	if sc.ServerURL != "" {
		cfg.ServerURL = sc.ServerURL
	}
	if sc.AuthToken != "" {
		cfg.AuthToken = sc.AuthToken
	}
	if sc.Timeout > 0 {
		cfg.Timeout = config.Duration(sc.Timeout)
	}
	if sc.InsecureSkipVerify {
		cfg.InsecureSkipVerify = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Client resolves the configuration and builds a game-server client from
// it. The resolved config is returned alongside for commands that need
// more than the client (e.g., the certificate output directory).
func (sc *ServerConnection) Client(logger *slog.Logger) (*gameserver.Client, *config.Config, error) {
	cfg, err := sc.Resolve()
	if err != nil {
		return nil, nil, err
	}

	client, err := gameserver.NewClient(gameserver.Config{
		BaseURL:            cfg.ServerURL,
		Token:              cfg.AuthToken,
		Timeout:            time.Duration(cfg.Timeout),
		InsecureSkipVerify: cfg.InsecureSkipVerify,
		Logger:             logger,
	})
	if err != nil {
		return nil, nil, err
	}
	return client, cfg, nil
}
