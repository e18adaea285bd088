package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mohammed-shakir/csquares-cache/internal/core/config"
	"github.com/mohammed-shakir/csquares-cache/internal/core/health"
	"github.com/mohammed-shakir/csquares-cache/internal/core/middleware"
	"github.com/mohammed-shakir/csquares-cache/internal/core/model"
	"github.com/mohammed-shakir/csquares-cache/internal/core/router"
	"github.com/mohammed-shakir/csquares-cache/internal/squares"
)

// sets up http and starts serving until ctx is cancelled
func Run(ctx context.Context, cfg config.Config, logger *slog.Logger, svc router.SquareService, ping health.Pinger) error {
	r := chi.NewRouter()
	r.Use(middleware.Recover())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS())

	r.Get("/healthz", health.Liveness())
	r.Get("/readyz", health.Readiness(ping))
	r.Get("/metrics", promhttp.Handler().ServeHTTP)
	r.Get("/encode", router.HandleEncode(logger, cfg.DefaultDecimals, svc, func(v model.SquareResponse) any {
		return squares.CellFeature(v)
	}))
	r.Get("/squares/{id}", router.HandleSquare(logger, svc))
	r.Get("/distance", router.HandleDistance(logger, svc))

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http listen", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return nil
	case err := <-errCh:
		return err
	}
}
