// Copyright 2026 The Kodeventure Authors
// SPDX-License-Identifier: Apache-2.0

// Package game implements the session state-transition commands:
// start-game, pause-game, unpause-game, and stop-game. Each one posts
// to its own endpoint — pause and unpause are distinct transitions.
package game

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/kodeventure/kvctl/cmd/kvctl/cli"
	"github.com/kodeventure/kvctl/lib/gameserver"
)

// StartGameCommand returns the "start-game" command.
func StartGameCommand() *cli.Command {
	return transitionCommand("start-game", "Start the game session", "Game started!",
		(*gameserver.Client).StartGame)
}

// PauseGameCommand returns the "pause-game" command.
func PauseGameCommand() *cli.Command {
	return transitionCommand("pause-game", "Pause the game session", "Game paused!",
		(*gameserver.Client).PauseGame)
}

// UnpauseGameCommand returns the "unpause-game" command.
func UnpauseGameCommand() *cli.Command {
	return transitionCommand("unpause-game", "Resume a paused game session", "Game unpaused!",
		(*gameserver.Client).UnpauseGame)
}

// StopGameCommand returns the "stop-game" command.
func StopGameCommand() *cli.Command {
	return transitionCommand("stop-game", "End the game session", "Game ended!",
		(*gameserver.Client).StopGame)
}

// transitionCommand builds a state-transition command. All four share
// the same shape: one authenticated bodyless POST, a fixed confirmation
// phrase on success, the server's own words on failure.
func transitionCommand(name, summary, confirmation string, transition func(*gameserver.Client, context.Context) error) *cli.Command {
	var conn cli.ServerConnection

	return &cli.Command{
		Name:    name,
		Summary: summary,
		Usage:   "kvctl " + name + " [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet(name, pflag.ContinueOnError)
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

			if err := transition(client, ctx); err != nil {
				return err
			}

			fmt.Println(cli.Success(confirmation))
			return nil
		},
	}
}
