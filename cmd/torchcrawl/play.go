package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"

	"github.com/samdwyer/torchcrawl/internal/game"
	"github.com/samdwyer/torchcrawl/internal/gamedata"
	"github.com/samdwyer/torchcrawl/internal/telemetry"
	"github.com/samdwyer/torchcrawl/internal/ui"
)

func runGame(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	species, err := loadSpecies(cmd)
	if err != nil {
		return err
	}
	log, closeLog, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx := cmd.Context()
	shutdown := startTelemetry(ctx, log)
	defer shutdown()

	g, err := game.New(ctx, cfg,
		game.WithLogger(log),
		game.WithTracer(telemetry.Tracer("game")),
		game.WithSpecies(species))
	if err != nil {
		return fmt.Errorf("failed to initialize game: %w", err)
	}

	palette, err := gamedata.LoadPalette()
	if err != nil {
		return fmt.Errorf("failed to load palette: %w", err)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	defer screen.Close()

	if err := g.Run(ctx, ui.NewRenderer(screen, palette), ui.NewInput(screen)); err != nil {
		return fmt.Errorf("game error: %w", err)
	}
	return nil
}

// startTelemetry installs the OTLP exporter when an endpoint is configured.
// Failure is not fatal: the game runs with the global no-op provider.
func startTelemetry(ctx context.Context, log logrus.FieldLogger) func() {
	noop := func() {}
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		return noop
	}

	// Exporter errors must not reach the terminal the game draws on
	otel.SetErrorHandler(otel.ErrorHandlerFunc(func(err error) {
		log.WithError(err).Warn("OpenTelemetry error.")
	}))

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.WithError(err).Warn("Telemetry setup failed; running without observability.")
		return noop
	}
	return func() {
		if err := shutdown(context.Background()); err != nil {
			log.WithError(err).Error("Error shutting down telemetry.")
		}
	}
}
