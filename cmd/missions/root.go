package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/leengari/space-missions/internal/config"
	"github.com/leengari/space-missions/internal/engine"
	"github.com/leengari/space-missions/internal/logging"
	"github.com/leengari/space-missions/internal/storage"
	"github.com/leengari/space-missions/internal/telemetry"
)

const serviceName = "space-missions"

// app carries state shared by subcommands
type app struct {
	cfg     config.Config
	logger  *slog.Logger
	closers []func()

	flags struct {
		dataPath     string
		logLevel     string
		seqURL       string
		otelEndpoint string
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "missions",
		Short:         "Query the space missions dataset",
		Long:          "Load a space missions CSV once and answer counts, rates, rankings and date-range queries over HTTP or from the command line.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.dataPath, "data", "", "path to the missions CSV (env MISSIONS_DATA_PATH)")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "log level: debug, info, warn, error (env MISSIONS_LOG_LEVEL)")
	pf.StringVar(&a.flags.seqURL, "seq-url", "", "Seq server URL for log shipping (env MISSIONS_SEQ_URL)")
	pf.StringVar(&a.flags.otelEndpoint, "otel-endpoint", "", "OTLP/HTTP trace endpoint (env MISSIONS_OTEL_ENDPOINT)")

	root.AddCommand(newServeCmd(a), newQueryCmd(a))
	return root
}

// setup loads env config, applies flag overrides and builds the logger
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.DataPath = a.flags.dataPath
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.flags.logLevel
	}
	if flags.Changed("seq-url") {
		cfg.SeqURL = a.flags.seqURL
	}
	if flags.Changed("otel-endpoint") {
		cfg.OTelEndpoint = a.flags.otelEndpoint
	}

	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	logger, closeFn := logging.SetupLogger(logging.Options{
		Level:  level,
		SeqURL: cfg.SeqURL,
		Output: cmd.ErrOrStderr(),
	})
	slog.SetDefault(logger)

	a.cfg = cfg
	a.logger = logger
	a.closers = append(a.closers, closeFn)
	return nil
}

// close releases the logger and telemetry in reverse order
func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

// loadEngine loads the dataset; any failure here is fatal for the command
func (a *app) loadEngine(ctx context.Context) (*engine.Engine, error) {
	shutdown, err := telemetry.Setup(ctx, serviceName, a.cfg.OTelEndpoint)
	if err != nil {
		return nil, fmt.Errorf("telemetry setup: %w", err)
	}
	a.closers = append(a.closers, func() {
		ctx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdown(ctx); err != nil {
			a.logger.Warn("telemetry shutdown failed", "error", err)
		}
	})

	table, err := storage.LoadTable(a.cfg.DataPath, a.logger)
	if err != nil {
		a.logger.Error("failed to load dataset", "path", a.cfg.DataPath, "error", err)
		return nil, err
	}

	return engine.New(table, engine.WithObserver(engine.NewLoggingObserver(a.logger))), nil
}
