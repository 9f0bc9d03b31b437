// Copyright 2026 The Kodeventure Authors
// SPDX-License-Identifier: Apache-2.0

// Package player implements the player management commands: add-user
// and list-users.
package player

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/kodeventure/kvctl/cmd/kvctl/cli"
	"github.com/kodeventure/kvctl/lib/gameserver"
	"github.com/kodeventure/kvctl/lib/playertoken"
)

// AddUserCommand returns the "add-user" command. It registers a new
// player and prints the two generated tokens — the only time they are
// ever shown, so the game master is expected to hand them to the player
// immediately.
func AddUserCommand() *cli.Command {
	var params struct {
		conn cli.ServerConnection
		name string
	}

	return &cli.Command{
		Name:    "add-user",
		Summary: "Register a new player",
		Description: `Register a new player on the game server.

Prompts for the player's display name (or takes it from --name) and
generates two independent four-letter tokens: the player token the
player authenticates with, and the server token their quest server
presents back. Both are printed on success. Tokens are random but not
checked for uniqueness; the population is small enough that collisions
are not a practical concern.`,
		Usage: "kvctl add-user [flags]",
		Examples: []cli.Example{
			{
				Description: "Register a player interactively",
				Command:     "kvctl add-user",
			},
			{
				Description: "Register a player non-interactively",
				Command:     "kvctl add-user --name Ada",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("add-user", pflag.ContinueOnError)
			params.conn.AddFlags(flagSet)
			flagSet.StringVar(&params.name, "name", "", "player display name (prompted when omitted)")
			return flagSet
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}

			name := params.name
			if name == "" {
				var err error
				name, err = cli.PromptLine("Player name: ")
				if err != nil {
					return fmt.Errorf("reading player name: %w", err)
				}
			}
			if name == "" {
				return fmt.Errorf("player name is required")
			}

			playerToken, err := playertoken.New()
			if err != nil {
				return fmt.Errorf("generating player token: %w", err)
			}
			serverToken, err := playertoken.New()
			if err != nil {
				return fmt.Errorf("generating server token: %w", err)
			}

			client, _, err := params.conn.Client(logger)
			if err != nil {
				return err
			}

			if err := client.CreatePlayer(ctx, gameserver.NewPlayer(name, playerToken, serverToken)); err != nil {
				return err
			}

			fmt.Println("Player token: " + cli.Secret(playerToken))
			fmt.Println("Server token: " + cli.Secret(serverToken))
			return nil
		},
	}
}

// ListUsersCommand returns the "list-users" command. Records are printed
// exactly as the server sent them, one per line — the record shape is
// the server's business, not the client's.
func ListUsersCommand() *cli.Command {
	var conn cli.ServerConnection

	return &cli.Command{
		Name:    "list-users",
		Summary: "List all registered players",
		Usage:   "kvctl list-users [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("list-users", pflag.ContinueOnError)
			conn.AddFlags(flagSet)
			return flagSet
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}

			client, _, err := conn.Client(logger)
			if err != nil {
				return err
			}

			players, err := client.ListPlayers(ctx)
			if err != nil {
				return err
			}

			for _, player := range players {
				fmt.Println(string(player))
			}
			return nil
		},
	}
}
