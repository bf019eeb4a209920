package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/ledgerline/instruction-engine/api"
	"github.com/ledgerline/instruction-engine/internal/env"
	"github.com/ledgerline/instruction-engine/internal/logging"
	"github.com/ledgerline/instruction-engine/internal/telemetry"
	"github.com/ledgerline/instruction-engine/server"
	"github.com/ledgerline/instruction-engine/settlement"
)

const serviceName = "instruction-engine"

type serveCmd struct {
	address  string
	logLevel string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "run the payment-instruction HTTP server" }
func (*serveCmd) Usage() string {
	return `serve [-address <host:port>] [-log-level <level>]

  Starts the HTTP server exposing POST /v1/payment-instructions.
  Flags default to the SERVER_ADDRESS and LOG_LEVEL environment variables.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.address, "address", env.GetenvOrDefault("SERVER_ADDRESS", ":8080"), "listen address")
	f.StringVar(&c.logLevel, "log-level", env.GetenvOrDefault("LOG_LEVEL", "info"), "log level (debug, info, warn, error)")
}

func (c *serveCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	logger, err := logging.NewLogger(c.logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	defer func() { _ = logger.Sync() }()

	tel := telemetry.New(serviceName, Version)
	defer func() { _ = tel.Shutdown(context.Background()) }()

	app := api.NewApp(
		api.Config{ServiceName: serviceName, Version: Version},
		settlement.New(),
		logger,
		tel.Tracer(serviceName),
	)

	if err := server.New(app, logger, c.address).Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
