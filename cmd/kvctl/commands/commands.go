// Copyright 2026 The Kodeventure Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete kvctl command tree.
package commands

import (
	"context"
	"fmt"
	"log/slog"

	certcmd "github.com/kodeventure/kvctl/cmd/kvctl/cert"
	"github.com/kodeventure/kvctl/cmd/kvctl/cli"
	gamecmd "github.com/kodeventure/kvctl/cmd/kvctl/game"
	playercmd "github.com/kodeventure/kvctl/cmd/kvctl/player"
	"github.com/kodeventure/kvctl/lib/version"
)

// Root builds and returns the kvctl command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "kvctl",
		Description: `kvctl: Kodeventure game server admin client.

Register players, drive the game session state machine, and provision
TLS certificates. Every command is a single request against the
configured game server.`,
		Subcommands: []*cli.Command{
			playercmd.AddUserCommand(),
			playercmd.ListUsersCommand(),
			certcmd.ProvisionCertCommand(),
			gamecmd.StartGameCommand(),
			gamecmd.PauseGameCommand(),
			gamecmd.UnpauseGameCommand(),
			gamecmd.StopGameCommand(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(_ context.Context, _ []string, _ *slog.Logger) error {
					fmt.Printf("kvctl %s\n", version.Full())
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Register a player and hand out their tokens",
				Command:     "kvctl add-user",
			},
			{
				Description: "See the scoreboard",
				Command:     "kvctl list-users",
			},
			{
				Description: "Kick off the game",
				Command:     "kvctl start-game",
			},
		},
	}
}
