// Copyright 2026 The Kodeventure Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for kvctl.
//
// Values are resolved in precedence order: command-line flags (applied by
// the caller), then environment variables, then the config file, then
// built-in defaults. The config file is YAML, located via the --config
// flag or the KVCTL_CONFIG environment variable; a missing file is not an
// error — the defaults are a complete working configuration for a local
// game server.
//
// A .env file in the working directory is loaded into the environment
// before the KVCTL_* variables are read, so deployments can keep the
// admin token out of shell history.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Defaults match the game server's out-of-the-box setup.
const (
	DefaultServerURL     = "http://localhost:3001"
	DefaultAuthToken     = "dungeon-master-key"
	DefaultTimeout       = 30 * time.Second
	DefaultCertOutputDir = "."
)

// Config holds the client configuration for kvctl.
type Config struct {
	// ServerURL is the game server base URL.
	ServerURL string `yaml:"server_url"`

	// AuthToken is the shared admin token sent in the Authorization
	// header on authenticated calls.
	AuthToken string `yaml:"auth_token"`

	// Timeout bounds each request. The server never streams, so a
	// request that outlives this is stuck, not slow.
	Timeout Duration `yaml:"timeout"`

	// InsecureSkipVerify disables TLS certificate verification toward
	// the server. Opt-in only; the client warns loudly when set.
	InsecureSkipVerify bool `yaml:"insecure_skip_verify"`

	// CertOutputDir is where provision-cert writes the certificate
	// bundle files.
	CertOutputDir string `yaml:"cert_output_dir"`
}

// Duration is a time.Duration that unmarshals from YAML strings like
// "30s" or "1m".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("parsing duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Default returns the built-in default configuration.
func Default() *Config {
	return &Config{
		ServerURL:     DefaultServerURL,
		AuthToken:     DefaultAuthToken,
		Timeout:       Duration(DefaultTimeout),
		CertOutputDir: DefaultCertOutputDir,
	}
}

// Load resolves the configuration. path is the --config flag value; when
// empty, KVCTL_CONFIG is consulted. A nonexistent file is only an error
// when it was named explicitly.
func Load(path string) (*Config, error) {
	// Ignore a missing .env; it is an optional convenience.
	_ = godotenv.Load()

	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = os.Getenv("KVCTL_CONFIG")
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing %s: %w", path, err)
			}
		case os.IsNotExist(err) && !explicit:
			// KVCTL_CONFIG pointing at a missing file falls back to
			// defaults, same as no config at all.
		default:
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
	}

	if err := cfg.applyEnvironment(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnvironment overrides config-file values with KVCTL_* variables.
func (c *Config) applyEnvironment() error {
	if v := os.Getenv("KVCTL_SERVER_URL"); v != "" {
		c.ServerURL = v
	}
	if v := os.Getenv("KVCTL_AUTH_TOKEN"); v != "" {
		c.AuthToken = v
	}
	if v := os.Getenv("KVCTL_TIMEOUT"); v != "" {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parsing KVCTL_TIMEOUT %q: %w", v, err)
		}
		c.Timeout = Duration(parsed)
	}
	if v := os.Getenv("KVCTL_INSECURE_SKIP_VERIFY"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parsing KVCTL_INSECURE_SKIP_VERIFY %q: %w", v, err)
		}
		c.InsecureSkipVerify = parsed
	}
	if v := os.Getenv("KVCTL_CERT_OUTPUT_DIR"); v != "" {
		c.CertOutputDir = v
	}
	return nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.ServerURL == "" {
		errs = append(errs, fmt.Errorf("server_url is required"))
	} else if parsed, err := url.Parse(c.ServerURL); err != nil {
		errs = append(errs, fmt.Errorf("invalid server_url %q: %w", c.ServerURL, err))
	} else if parsed.Scheme != "http" && parsed.Scheme != "https" {
		errs = append(errs, fmt.Errorf("server_url %q must use http or https", c.ServerURL))
	}

	if c.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("timeout must be positive"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
