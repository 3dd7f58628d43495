package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/dental-clinic/internal/audit"
	"github.com/BruksfildServices01/dental-clinic/internal/config"
	"github.com/BruksfildServices01/dental-clinic/internal/form"
	"github.com/BruksfildServices01/dental-clinic/internal/logging"
	"github.com/BruksfildServices01/dental-clinic/internal/metrics"
	"github.com/BruksfildServices01/dental-clinic/internal/middleware"
	"github.com/BruksfildServices01/dental-clinic/internal/routes"
	"github.com/BruksfildServices01/dental-clinic/internal/session"
	"github.com/BruksfildServices01/dental-clinic/internal/telemetry"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ======================================================
	// LOGGING / TRACING / METRICS
	// ======================================================
	log, err := logging.New(logging.Config{
		Level:       cfg.LogLevel,
		File:        cfg.LogFile,
		MaxSize:     cfg.LogMaxSizeMB,
		MaxBackups:  cfg.LogMaxBackups,
		MaxAge:      cfg.LogMaxAgeDays,
		Development: !cfg.IsProduction(),
	})
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	defer log.Close()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.OTLPEndpoint)
	if err != nil {
		return fmt.Errorf("failed to init tracing: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	formMetrics := metrics.NewFormMetrics(reg)

	// ======================================================
	// AUDIT SINK / SESSIONS / RATE LIMIT
	// ======================================================
	dispatcher := audit.NewDispatcher(audit.New(log.Logger), cfg.AuditQueueSize)

	store := session.NewStore(func(id string) *form.Controller {
		return form.New(
			form.WithDismissAfter(cfg.DismissAfter),
			form.WithSubmitGate(cfg.Gate()),
			form.WithSink(dispatcher.ForSession(id)),
			form.WithLogger(log.With(zap.String("session_id", id))),
		)
	}, session.Options{
		IdleTTL: cfg.SessionIdleTTL,
		Max:     cfg.SessionMax,
		Logger:  log.Named("session"),
		OnCount: formMetrics.SetActiveSessions,
	})
	go store.Run(ctx, cfg.SessionSweepInterval)

	limiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		RPS:     cfg.RateLimitRPS,
		Burst:   cfg.RateLimitBurst,
		IdleTTL: cfg.RateLimitIdleTTL,
	})
	go limiter.Run(ctx, cfg.SessionSweepInterval)

	// ======================================================
	// HTTP
	// ======================================================
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		Config:   cfg,
		Logger:   log.Named("http"),
		Sessions: store,
		Metrics:  formMetrics,
		Gatherer: reg,

		RateLimiter: limiter,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	// Event streams only end when their session does.
	srv.RegisterOnShutdown(store.Close)

	errCh := make(chan error, 1)
	go func() {
		log.Info("server running",
			zap.String("addr", cfg.Addr()),
			zap.String("env", cfg.Environment),
			zap.String("submit_gate", cfg.Gate().String()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("failed to start server: %w", err)
		}
	case <-ctx.Done():
		log.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown failed", zap.Error(err))
	}
	store.Close()
	dispatcher.Close()
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error("tracing shutdown failed", zap.Error(err))
	}
	return nil
}
