package main

import (
	"fmt"

	"getwise/internal/config"
	"getwise/internal/server"
	"getwise/internal/services"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the advice HTTP API",
		Long: `Serve the advice API under /api/v1 with /health and /metrics.

Configuration is read from the environment and an optional .env file
(SERVER_PORT, ADVICE_LOCALE, RATE_LIMIT_PER_SECOND, RETIREMENT_* ...).`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	engine, err := server.BuildEngine(cfg.Advisory)
	if err != nil {
		return err
	}

	logger := services.NewAdviceLogger(nil)
	service := services.NewAdvisoryService(engine, services.NewPrometheusMetrics(prometheus.DefaultRegisterer), logger)

	srv := server.New(cmd.Context(), cfg, server.Dependencies{
		AdvisoryService: service,
		Logger:          logger,
	})

	return srv.Run(cmd.Context())
}
