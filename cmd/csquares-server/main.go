package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/mohammed-shakir/csquares-cache/internal/cache/redisstore"
	"github.com/mohammed-shakir/csquares-cache/internal/cache/squarecache"
	"github.com/mohammed-shakir/csquares-cache/internal/core/config"
	"github.com/mohammed-shakir/csquares-cache/internal/core/health"
	"github.com/mohammed-shakir/csquares-cache/internal/core/observability"
	"github.com/mohammed-shakir/csquares-cache/internal/core/server"
	"github.com/mohammed-shakir/csquares-cache/internal/ingest/kafkaconsumer"
	"github.com/mohammed-shakir/csquares-cache/internal/logger"
	"github.com/mohammed-shakir/csquares-cache/internal/squares"
)

var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	// optional .env for local runs
	_ = godotenv.Load()

	cfg := config.FromEnv()

	zl := logger.Build(logger.Config{
		Level:     cfg.LogLevel,
		Console:   strings.ToLower(os.Getenv("LOG_CONSOLE")) == "true",
		Component: "csquares-server",
	}, os.Stdout)
	appLog := logger.NewSlog(&zl)

	observability.ExposeBuildInfo(Version)
	appLog.Info("starting csquares server",
		"addr", cfg.Addr,
		"version", Version,
		"redis_enabled", cfg.RedisEnabled,
		"ingest_enabled", cfg.Ingest.Enabled)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var store squares.Store
	var ping health.Pinger
	if cfg.RedisEnabled {
		rc, err := redisstore.New(ctx, cfg.RedisAddr)
		if err != nil {
			appLog.Error("redis unavailable", "addr", cfg.RedisAddr, "err", err)
			return 1
		}
		defer func() { _ = rc.Close() }()
		store = rc
		ping = rc
	}

	mem, err := squarecache.New(cfg.LRUSize)
	if err != nil {
		appLog.Error("lru setup failed", "err", err)
		return 1
	}

	svc := squares.New(appLog, mem, store, cfg.CacheTTL, cfg.CacheOpTimeout)

	if cfg.Ingest.Enabled {
		consumer := kafkaconsumer.New(
			kafkaconsumer.FromIngestCfg(cfg.Ingest), appLog, svc, cfg.DefaultDecimals)
		go func() {
			if err := consumer.Start(ctx); err != nil {
				appLog.Error("ingest consumer exited", "err", err)
			}
		}()
	}

	if err := server.Run(ctx, cfg, appLog, svc, ping); err != nil {
		appLog.Error("server exited with error", "err", err)
		return 1
	}
	appLog.Info("server stopped")
	return 0
}
