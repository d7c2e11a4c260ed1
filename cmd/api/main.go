// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/carterperez-dev/cardops/internal/admin"
	"github.com/carterperez-dev/cardops/internal/config"
	"github.com/carterperez-dev/cardops/internal/core"
	"github.com/carterperez-dev/cardops/internal/health"
	"github.com/carterperez-dev/cardops/internal/middleware"
	"github.com/carterperez-dev/cardops/internal/seed"
	"github.com/carterperez-dev/cardops/internal/server"
)

const (
	drainDelay = 5 * time.Second
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

//nolint:funlen // bootstrap code is inherently verbose
func run(configPath string) error {
	startedAt := time.Now()

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
		"storage", cfg.Storage.Backend,
	)

	telemetry, err := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
	if err != nil {
		logger.Warn("failed to initialize telemetry", "error", err)
	} else if cfg.Otel.Enabled {
		logger.Info("OpenTelemetry tracer initialized",
			"endpoint", cfg.Otel.Endpoint,
		)
	}

	store, err := openStorage(ctx, cfg, logger)
	if err != nil {
		return err
	}

	redis, err := core.NewRedis(ctx, cfg.Redis)
	if err != nil {
		_ = store.Close() //nolint:errcheck // already failing
		return err
	}
	if redis.Enabled() {
		logger.Info("redis connected", "pool_size", cfg.Redis.PoolSize)
	} else {
		logger.Info("redis not configured, rate limiting is per process")
	}

	svc := newServices(store.repos, cfg.Auth)

	if cfg.Seed.Enabled {
		seeder := &seed.Seeder{
			Clients:   svc.clients,
			Inventory: svc.inventory,
			Cards:     svc.cards,
			Incidents: svc.incidents,
			Users:     svc.users,
			Logger:    logger,
		}
		if err := seeder.Run(ctx, seed.Admin{
			Username: cfg.Seed.AdminUsername,
			Password: cfg.Seed.AdminPassword,
		}); err != nil {
			return err
		}
	}

	go svc.auth.RunJanitor(ctx, cfg.Auth.PurgeInterval)

	checks := []health.Check{{Name: "redis", Checker: redis}}
	adminCfg := admin.HandlerConfig{
		Backend:   cfg.Storage.Backend,
		StartedAt: startedAt,
	}
	if redis.Enabled() {
		adminCfg.RedisStats = redis.PoolStats
		adminCfg.RedisPing = redis.Ping
	}
	if store.db != nil {
		checks = append(checks, health.Check{Name: "database", Checker: store.db})
		adminCfg.DBStats = store.db.Stats
		adminCfg.DBPing = store.db.Ping
		adminCfg.Counter = store.db
	}

	healthHandler := health.NewHandler(checks...)

	rateLimiter := middleware.NewRateLimiter(redis.Raw(), middleware.RateLimitConfig{
		Limit: middleware.PerMinute(
			cfg.RateLimit.Requests,
			cfg.RateLimit.Burst,
		),
		FailOpen: true,
	})
	defer rateLimiter.Close()

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	srv.Mount(newRouter(routerDeps{
		cfg:         cfg,
		logger:      logger,
		tracer:      telemetryTracer(telemetry),
		services:    svc,
		health:      healthHandler,
		admin:       admin.NewHandler(adminCfg),
		rateLimiter: rateLimiter,
	}))

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if err := telemetry.Shutdown(shutdownCtx); err != nil {
		logger.Error("telemetry shutdown error", "error", err)
	}

	if err := redis.Close(); err != nil {
		logger.Error("redis close error", "error", err)
	}

	if err := store.Close(); err != nil {
		logger.Error("database close error", "error", err)
	}

	logger.Info("application stopped")
	return nil
}

func telemetryTracer(t *core.Telemetry) trace.Tracer {
	if t == nil {
		return nil
	}
	return t.Tracer
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var handler slog.Handler

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
