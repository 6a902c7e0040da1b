package main

import (
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/allisson/vaultclient"
	"github.com/allisson/vaultclient/cmd/app/commands"
	"github.com/allisson/vaultclient/internal/app"
	"github.com/allisson/vaultclient/internal/config"
)

func getCommands() []*cli.Command {
	cmds := []*cli.Command{}
	cmds = append(cmds, getVaultCommands()...)
	cmds = append(cmds, getConnectionCommands()...)
	cmds = append(cmds, getAuthCommands()...)
	return cmds
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   "text",
		Usage:   "Output format: 'text' or 'json'",
	}
}

// runWithContainer builds a container from the environment, runs fn and prints the
// metrics when requested.
func runWithContainer(cmd *cli.Command, fn func(container *app.Container) error) error {
	cfg := config.Load()
	container := app.NewContainer(cfg)
	defer commands.CloseContainer(container, container.Logger())

	err := fn(container)
	if cmd.Bool("print-metrics") {
		if printErr := commands.RunPrintMetrics(container, commands.DefaultIO().Writer); printErr != nil {
			container.Logger().Error("failed to print metrics", slog.Any("error", printErr))
		}
	}
	return err
}

// selectVault returns the vault named by --vault-id, or the configured one.
func selectVault(container *app.Container, cmd *cli.Command) (vaultclient.Vault, error) {
	client, err := container.Client()
	if err != nil {
		return nil, err
	}
	if id := cmd.String("vault-id"); id != "" {
		return client.Vault(id)
	}
	return client.Vault()
}
