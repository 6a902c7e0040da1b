package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/vaultclient/cmd/app/commands"
	"github.com/allisson/vaultclient/internal/app"
)

func getConnectionCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "invoke-connection",
			Usage: "Invoke the configured connection",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "method",
					Aliases: []string{"X"},
					Value:   "POST",
					Usage:   "HTTP method: GET, POST, PUT, PATCH or DELETE",
				},
				&cli.StringSliceFlag{
					Name:  "path-param",
					Usage: "Path parameter as key=value (repeatable)",
				},
				&cli.StringSliceFlag{
					Name:  "query-param",
					Usage: "Query parameter as key=value (repeatable)",
				},
				&cli.StringSliceFlag{
					Name:    "header",
					Aliases: []string{"H"},
					Usage:   "Header as key=value (repeatable)",
				},
				&cli.StringFlag{
					Name:    "body",
					Aliases: []string{"d"},
					Usage:   "JSON object request body",
				},
				&cli.BoolFlag{
					Name:  "form",
					Value: false,
					Usage: "Send the body as application/x-www-form-urlencoded",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return runWithContainer(cmd, func(container *app.Container) error {
					client, err := container.Client()
					if err != nil {
						return err
					}
					connection, err := client.Connection()
					if err != nil {
						return err
					}
					return commands.RunInvokeConnection(ctx, connection, commands.DefaultIO().Writer,
						commands.InvokeConnectionOptions{
							Method:      cmd.String("method"),
							PathParams:  cmd.StringSlice("path-param"),
							QueryParams: cmd.StringSlice("query-param"),
							Headers:     cmd.StringSlice("header"),
							Body:        cmd.String("body"),
							Form:        cmd.Bool("form"),
							Format:      cmd.String("format"),
						})
				})
			},
		},
	}
}
