package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/vaultclient/cmd/app/commands"
	"github.com/allisson/vaultclient/internal/app"
)

func vaultIDFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "vault-id",
		Usage: "Vault ID (defaults to VAULT_ID)",
	}
}

func tableFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "table",
		Aliases:  []string{"t"},
		Required: true,
		Usage:    "Table name",
	}
}

func getVaultCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "insert",
			Usage: "Insert records into a table",
			Flags: []cli.Flag{
				vaultIDFlag(),
				tableFlag(),
				&cli.StringFlag{
					Name:     "values",
					Aliases:  []string{"v"},
					Required: true,
					Usage:    `JSON array of records (e.g., [{"card_number":"4111111111111111"}])`,
				},
				&cli.StringFlag{
					Name:  "upsert",
					Usage: "Unique column used to update existing records",
				},
				&cli.BoolFlag{
					Name:  "return-tokens",
					Value: true,
					Usage: "Return tokens for the inserted fields",
				},
				&cli.BoolFlag{
					Name:  "continue-on-error",
					Value: false,
					Usage: "Insert as a batch and report failed records instead of failing the call",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return runWithContainer(cmd, func(container *app.Container) error {
					vault, err := selectVault(container, cmd)
					if err != nil {
						return err
					}
					return commands.RunInsert(ctx, vault, container.Logger(), commands.DefaultIO().Writer,
						commands.InsertOptions{
							Table:           cmd.String("table"),
							Values:          cmd.String("values"),
							Upsert:          cmd.String("upsert"),
							ReturnTokens:    cmd.Bool("return-tokens"),
							ContinueOnError: cmd.Bool("continue-on-error"),
							Format:          cmd.String("format"),
						})
				})
			},
		},
		{
			Name:  "get",
			Usage: "Read records by skyflow id or by a unique column",
			Flags: []cli.Flag{
				vaultIDFlag(),
				tableFlag(),
				&cli.StringSliceFlag{
					Name:  "id",
					Usage: "Skyflow id (repeatable)",
				},
				&cli.StringFlag{
					Name:  "column-name",
					Usage: "Unique column to look records up by",
				},
				&cli.StringSliceFlag{
					Name:  "column-value",
					Usage: "Value of the unique column (repeatable)",
				},
				&cli.StringSliceFlag{
					Name:  "field",
					Usage: "Field to return (repeatable)",
				},
				&cli.StringFlag{
					Name:  "redaction",
					Usage: "Redaction type: DEFAULT, REDACTED, MASKED or PLAIN_TEXT",
				},
				&cli.BoolFlag{
					Name:  "return-tokens",
					Value: false,
					Usage: "Return tokens instead of values",
				},
				&cli.IntFlag{
					Name:  "offset",
					Usage: "Number of records to skip",
				},
				&cli.IntFlag{
					Name:  "limit",
					Usage: "Maximum number of records to return",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return runWithContainer(cmd, func(container *app.Container) error {
					vault, err := selectVault(container, cmd)
					if err != nil {
						return err
					}
					return commands.RunGet(ctx, vault, commands.DefaultIO().Writer, commands.GetOptions{
						Table:         cmd.String("table"),
						IDs:           cmd.StringSlice("id"),
						ColumnName:    cmd.String("column-name"),
						ColumnValues:  cmd.StringSlice("column-value"),
						Fields:        cmd.StringSlice("field"),
						RedactionType: cmd.String("redaction"),
						ReturnTokens:  cmd.Bool("return-tokens"),
						Offset:        int(cmd.Int("offset")),
						Limit:         int(cmd.Int("limit")),
						Format:        cmd.String("format"),
					})
				})
			},
		},
		{
			Name:  "update",
			Usage: "Update one record",
			Flags: []cli.Flag{
				vaultIDFlag(),
				tableFlag(),
				&cli.StringFlag{
					Name:     "id",
					Aliases:  []string{"i"},
					Required: true,
					Usage:    "Skyflow id of the record",
				},
				&cli.StringFlag{
					Name:     "data",
					Aliases:  []string{"d"},
					Required: true,
					Usage:    `JSON object of fields to update (e.g., {"name":"ada"})`,
				},
				&cli.BoolFlag{
					Name:  "return-tokens",
					Value: false,
					Usage: "Return tokens for the updated fields",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return runWithContainer(cmd, func(container *app.Container) error {
					vault, err := selectVault(container, cmd)
					if err != nil {
						return err
					}
					return commands.RunUpdate(ctx, vault, commands.DefaultIO().Writer,
						cmd.String("table"),
						cmd.String("id"),
						cmd.String("data"),
						cmd.Bool("return-tokens"),
						cmd.String("format"),
					)
				})
			},
		},
		{
			Name:  "delete",
			Usage: "Delete records by skyflow id",
			Flags: []cli.Flag{
				vaultIDFlag(),
				tableFlag(),
				&cli.StringSliceFlag{
					Name:     "id",
					Required: true,
					Usage:    "Skyflow id (repeatable)",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return runWithContainer(cmd, func(container *app.Container) error {
					vault, err := selectVault(container, cmd)
					if err != nil {
						return err
					}
					return commands.RunDelete(ctx, vault, commands.DefaultIO().Writer,
						cmd.String("table"), cmd.StringSlice("id"), cmd.String("format"))
				})
			},
		},
		{
			Name:  "query",
			Usage: "Run a SQL query",
			Flags: []cli.Flag{
				vaultIDFlag(),
				&cli.StringFlag{
					Name:     "query",
					Aliases:  []string{"q"},
					Required: true,
					Usage:    "SQL query (e.g., select * from cards limit 10)",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return runWithContainer(cmd, func(container *app.Container) error {
					vault, err := selectVault(container, cmd)
					if err != nil {
						return err
					}
					return commands.RunQuery(ctx, vault, commands.DefaultIO().Writer,
						cmd.String("query"), cmd.String("format"))
				})
			},
		},
		{
			Name:  "tokenize",
			Usage: "Tokenize values without storing records",
			Flags: []cli.Flag{
				vaultIDFlag(),
				&cli.StringSliceFlag{
					Name:     "value",
					Required: true,
					Usage:    "Value to tokenize (repeatable)",
				},
				&cli.StringFlag{
					Name:     "column-group",
					Aliases:  []string{"g"},
					Required: true,
					Usage:    "Column group of the values",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return runWithContainer(cmd, func(container *app.Container) error {
					vault, err := selectVault(container, cmd)
					if err != nil {
						return err
					}
					return commands.RunTokenize(ctx, vault, commands.DefaultIO().Writer,
						cmd.StringSlice("value"), cmd.String("column-group"), cmd.String("format"))
				})
			},
		},
		{
			Name:  "detokenize",
			Usage: "Reveal tokens",
			Flags: []cli.Flag{
				vaultIDFlag(),
				&cli.StringSliceFlag{
					Name:     "token",
					Required: true,
					Usage:    "Token to reveal (repeatable)",
				},
				&cli.StringFlag{
					Name:  "redaction",
					Usage: "Redaction type: DEFAULT, REDACTED, MASKED or PLAIN_TEXT",
				},
				&cli.BoolFlag{
					Name:  "continue-on-error",
					Value: false,
					Usage: "Report failed tokens instead of failing the call",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return runWithContainer(cmd, func(container *app.Container) error {
					vault, err := selectVault(container, cmd)
					if err != nil {
						return err
					}
					return commands.RunDetokenize(ctx, vault, commands.DefaultIO().Writer,
						cmd.StringSlice("token"),
						cmd.String("redaction"),
						cmd.Bool("continue-on-error"),
						cmd.String("format"),
					)
				})
			},
		},
		{
			Name:  "upload-file",
			Usage: "Upload a file into a file column of an existing record",
			Flags: []cli.Flag{
				vaultIDFlag(),
				tableFlag(),
				&cli.StringFlag{
					Name:     "id",
					Aliases:  []string{"i"},
					Required: true,
					Usage:    "Skyflow id of the record",
				},
				&cli.StringFlag{
					Name:     "column",
					Aliases:  []string{"c"},
					Required: true,
					Usage:    "File column name",
				},
				&cli.StringFlag{
					Name:     "file",
					Required: true,
					Usage:    "Path of the file to upload",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return runWithContainer(cmd, func(container *app.Container) error {
					vault, err := selectVault(container, cmd)
					if err != nil {
						return err
					}
					return commands.RunUploadFile(ctx, vault, commands.DefaultIO().Writer,
						cmd.String("table"),
						cmd.String("id"),
						cmd.String("column"),
						cmd.String("file"),
						cmd.String("format"),
					)
				})
			},
		},
	}
}
