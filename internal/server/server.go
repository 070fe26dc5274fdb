// Package server wires the advice API onto an Echo instance.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"getwise/internal/config"
	"getwise/internal/handlers"
	"getwise/internal/middleware"
	"getwise/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Version is reported by the health endpoint and the CLI
var Version = "dev"

// Server is the HTTP front end of the advisory service
type Server struct {
	echo *echo.Echo
	cfg  *config.Config
}

// Dependencies are the collaborators the server routes requests to
type Dependencies struct {
	AdvisoryService services.AdvisoryServiceInterface
	Logger          services.AdviceLoggerInterface
	// Gatherer backs /metrics. Nil uses the default gatherer.
	Gatherer prometheus.Gatherer
}

// clientIPExtractor trusts forwarding headers only from configured proxies.
// Validate has already rejected bad entries; any that slip through fall back to the peer address.
func clientIPExtractor(cfg *config.Config) echo.IPExtractor {
	proxies, err := cfg.Security.TrustedProxyNets()
	if err != nil {
		slog.Warn("ignoring TRUSTED_PROXIES", "error", err)
		return middleware.ClientIPExtractor(nil)
	}
	return middleware.ClientIPExtractor(proxies)
}

// New builds the Echo instance with the middleware chain and routes.
// Background work started here (rate limiter eviction) stops when ctx is cancelled.
func New(ctx context.Context, cfg *config.Config, deps Dependencies) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Validator = handlers.NewValidator()
	e.IPExtractor = clientIPExtractor(cfg)
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:  cfg.Server.CORSAllowOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderContentType, middleware.TraceIDHeader},
		ExposeHeaders: []string{middleware.TraceIDHeader},
	}))
	e.Use(echomw.BodyLimit(cfg.Server.BodyLimit))

	healthHandler := handlers.NewHealthCheckHandler(Version)
	e.GET("/health", healthHandler.HealthCheck)

	if cfg.Server.MetricsEnabled {
		gatherer := deps.Gatherer
		if gatherer == nil {
			gatherer = prometheus.DefaultGatherer
		}
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	docsHandler := handlers.NewDocsHandler()
	e.GET("/docs", docsHandler.ServeScalarUI)
	e.GET("/docs/openapi.json", docsHandler.ServeOpenAPI)

	adviceHandler := handlers.NewAdviceHandler(deps.AdvisoryService, deps.Logger)

	api := e.Group("/api/v1")
	api.Use(middleware.RateLimiterWithConfig(ctx, middleware.RateLimitConfig{
		RequestsPerSecond: cfg.Security.RateLimitPerSecond,
		Burst:             cfg.Security.RateLimitBurst,
	}))
	api.GET("/guidelines", adviceHandler.ListGuidelines)
	api.POST("/advice/query", adviceHandler.AnswerQuery)
	api.POST("/advice/categories/:name", adviceHandler.AnalyzeCategory)
	api.POST("/advice/:kind", adviceHandler.GenerateAdvice)

	if cfg.IsDevelopment() {
		devHandler := handlers.NewDevHandler()
		api.GET("/dev/sample-snapshot", devHandler.SampleSnapshot)
	}

	return &Server{echo: e, cfg: cfg}
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	addr := s.cfg.Server.Address()
	errCh := make(chan error, 1)

	go func() {
		slog.Info("Starting server", "address", addr, "environment", s.cfg.Server.Environment)
		if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down server", "timeout", s.cfg.Server.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	return s.echo.Shutdown(shutdownCtx)
}
