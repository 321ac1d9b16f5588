package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/onetap/internal/buildinfo"
	"github.com/dmitrijs2005/onetap/internal/client/cli"
	"github.com/dmitrijs2005/onetap/internal/client/config"
	"github.com/dmitrijs2005/onetap/internal/logging"
	"github.com/dmitrijs2005/onetap/internal/telemetry"
)

func main() {
	os.Exit(run())
}

func run() int {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()

	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Printf("configuration error: %v", err)
		return 2
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Printf("configuration error: %v", err)
		return 2
	}
	logger := logging.New(os.Stderr, level)

	shutdown, err := telemetry.Setup(ctx, "onetap", buildinfo.Version)
	if err != nil {
		logger.Warn(ctx, "tracing disabled", "error", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Warn(ctx, "tracing shutdown", "error", err)
		}
	}()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "startup failed", "error", err)
		return 1
	}
	defer app.Close()

	if err := app.Run(ctx); err != nil {
		if !errors.Is(err, cli.ErrSignInFailed) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		return 1
	}
	return 0
}
