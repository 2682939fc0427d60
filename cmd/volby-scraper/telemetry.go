package main

import (
	"context"
	"log/slog"
	"os"
	"volby-scraper/lib/telemetry"
)

func InitTelemetry(ctx context.Context, verbose bool) func() {
	telemetry.InitSlog(verbose)

	if verbose {
		slog.DebugContext(ctx, "verbose logging enabled")
	}

	tel, err := telemetry.SetupFromEnv(ctx, "volby-scraper")
	if err != nil {
		slog.Error("setup telemetry", "err", err)
		os.Exit(1)
	}
	telemetry.InstrumentPerfStats(ctx)

	return func() {
		err := tel.Shutdown(context.Background())
		if err != nil {
			slog.Warn("telemetry shutdown", "err", err)
		}
	}
}
