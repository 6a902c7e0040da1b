// Package main provides the entry point for the application with CLI commands.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"
)

// version is set at build time.
var version = "dev"

func main() {
	cmd := &cli.Command{
		Name:    "vaultclient",
		Usage:   "Tokenize, detokenize and manage records in a data vault",
		Version: version,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "print-metrics",
				Value: false,
				Usage: "Print the collected metrics in Prometheus text format after the command",
			},
		},
		Commands: getCommands(),
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}
