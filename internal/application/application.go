package application

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/benbjohnson/clock"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"rating-service/internal/config"
	"rating-service/internal/domain/service/pricing"
	"rating-service/internal/domain/service/quote"
	"rating-service/internal/domain/service/risk"
	"rating-service/internal/domain/service/underwriting"
	"rating-service/internal/infrastructure/metrics"
	"rating-service/internal/server"
	"rating-service/pkg/application/modules"
	"rating-service/pkg/contextx"
	"rating-service/pkg/logx"
	"rating-service/pkg/middlewarex"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// NewQuoteService assembles the quote pipeline. The CLI uses it directly, the
// HTTP application puts it behind the REST handlers.
func NewQuoteService(clk clock.Clock, cfg config.Quote, recorder quote.Recorder) *quote.Service {
	svc := quote.NewService(
		underwriting.NewValidator(clk),
		risk.NewAssessor(),
		pricing.NewEngine(clk),
	).WithBulkConcurrency(cfg.BulkConcurrency)

	if recorder != nil {
		svc = svc.WithRecorder(recorder)
	}

	return svc
}

// NewRouter builds the public HTTP handler with the middleware chain.
func NewRouter(cfg config.HTTP, quoteServer server.QuoteServer) http.Handler {
	masker := logx.NewSensitiveDataMasker()

	r := chi.NewRouter()

	r.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.Recovery,
		middlewarex.RequestLogging(masker, cfg.LogFieldMaxLen),
		middlewarex.ResponseLogging(masker, cfg.LogFieldMaxLen),
	)

	server.NewServer(quoteServer).RegisterRoutes(r)

	return r
}

// Run starts the public HTTP server together with the probe and metrics
// servers and blocks until ctx is cancelled or one of them fails.
func Run(ctx context.Context, cfg config.Config) error {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}), //nolint:exhaustruct
	)

	quoteService := NewQuoteService(clock.New(), cfg.Quote, metrics.NewQuoteMetrics(registry))

	httpServer := &http.Server{
		//nolint:exhaustruct
		Addr:              cfg.HTTP.ListenAddress,
		Handler:           NewRouter(cfg.HTTP, server.NewQuoteServer(quoteService, cfg.Quote.BulkMaxItems)),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	g, ctx := errgroup.WithContext(ctx)

	if _, err := (modules.HTTPServer{
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
	}).Run(ctx, g, httpServer); err != nil {
		return fmt.Errorf("modules.HTTPServer.Run: %w", err)
	}

	modules.MetricServer{
		ListenAddress: cfg.Metrics.ListenAddress,
		Gatherer:      registry,
	}.Run(ctx, g)

	probeServer := modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.Probe.ListenAddress,
	}.Run(ctx, g)

	probeServer.SetReady(true)

	logger(ctx).Info(
		"application started",
		slog.String(logx.FieldAppName, cfg.App.Name),
		slog.String(logx.FieldAppVersion, cfg.App.Version),
	)

	if err := g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	logger(ctx).Info("application stopped")

	return nil
}
