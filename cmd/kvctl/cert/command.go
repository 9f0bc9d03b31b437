// Copyright 2026 The Kodeventure Authors
// SPDX-License-Identifier: Apache-2.0

// Package cert implements the provision-cert command.
package cert

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/kodeventure/kvctl/cmd/kvctl/cli"
)

// Fixed bundle file names; the game server's own config expects them.
const (
	privateKeyFile  = "server.key"
	publicKeyFile   = "server.pub"
	certificateFile = "server.crt"
)

// ProvisionCertCommand returns the "provision-cert" command. This is the
// one unauthenticated call — it bootstraps TLS for a fresh deployment,
// before a token has been configured. Existing bundle files are
// overwritten. A failed write aborts immediately; files already written
// stay on disk (no rollback), which is fine since the next successful
// run overwrites the whole bundle.
func ProvisionCertCommand() *cli.Command {
	var params struct {
		conn      cli.ServerConnection
		outputDir string
	}

	return &cli.Command{
		Name:    "provision-cert",
		Summary: "Request a TLS certificate bundle from the server",
		Description: `Request a fresh TLS certificate bundle and write it to disk.

Writes server.key (private key, mode 0600), server.pub (public key), and
server.crt (certificate) into the output directory, overwriting any
existing files of those names.`,
		Usage: "kvctl provision-cert [flags]",
		Examples: []cli.Example{
			{
				Description: "Write the bundle into the server's config directory",
				Command:     "kvctl provision-cert --output-dir /etc/kodeventure",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("provision-cert", pflag.ContinueOnError)
			params.conn.AddFlags(flagSet)
			flagSet.StringVar(&params.outputDir, "output-dir", "", "directory for the bundle files (default from config)")
			return flagSet
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}

			client, cfg, err := params.conn.Client(logger)
			if err != nil {
				return err
			}

			outputDir := params.outputDir
			if outputDir == "" {
				outputDir = cfg.CertOutputDir
			}

			bundle, err := client.ProvisionCert(ctx)
			if err != nil {
				return err
			}

			files := []struct {
				name    string
				content string
				mode    os.FileMode
			}{
				{privateKeyFile, bundle.Private, 0o600},
				{publicKeyFile, bundle.Public, 0o644},
				{certificateFile, bundle.Cert, 0o644},
			}

			for _, file := range files {
				path := filepath.Join(outputDir, file.name)
				if err := os.WriteFile(path, []byte(file.content), file.mode); err != nil {
					return fmt.Errorf("writing %s: %w", path, err)
				}
				fmt.Println(cli.Success("Wrote " + path))
			}
			return nil
		},
	}
}
