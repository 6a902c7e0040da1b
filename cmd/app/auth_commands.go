package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/vaultclient/cmd/app/commands"
	"github.com/allisson/vaultclient/internal/app"
)

func getAuthCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "bearer-token",
			Usage: "Exchange the configured service account for a bearer token",
			Flags: []cli.Flag{
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return runWithContainer(cmd, func(container *app.Container) error {
					tr, err := container.Transport()
					if err != nil {
						return err
					}
					return commands.RunBearerToken(ctx, container.Credentials(), tr,
						commands.DefaultIO().Writer, cmd.String("format"))
				})
			},
		},
		{
			Name:  "sign-data-tokens",
			Usage: "Sign data tokens with the configured service account key",
			Flags: []cli.Flag{
				&cli.StringSliceFlag{
					Name:     "token",
					Required: true,
					Usage:    "Data token to sign (repeatable)",
				},
				&cli.IntFlag{
					Name:  "ttl",
					Value: 0,
					Usage: "Lifetime of the signed tokens in seconds (0 uses the default)",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return runWithContainer(cmd, func(container *app.Container) error {
					return commands.RunSignDataTokens(container.Credentials(), commands.DefaultIO().Writer,
						cmd.StringSlice("token"), int(cmd.Int("ttl")), cmd.String("format"))
				})
			},
		},
	}
}
