package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/caffeine-dev-rafly/cookie-tms/internal/api"
	"github.com/caffeine-dev-rafly/cookie-tms/internal/config"
	"github.com/caffeine-dev-rafly/cookie-tms/internal/redis"
	"github.com/caffeine-dev-rafly/cookie-tms/internal/service"
	"github.com/caffeine-dev-rafly/cookie-tms/internal/storage/postgres"
	"github.com/caffeine-dev-rafly/cookie-tms/internal/traccar"
	"github.com/caffeine-dev-rafly/cookie-tms/internal/workers"
	"github.com/caffeine-dev-rafly/cookie-tms/pkg/logger"
)

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Postgres   *postgres.Postgres
	Redis      *redis.Redis
	Reconciler *workers.Reconciler
}

func InitComponents(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Components, error) {
	log.Info("Initializing Postgres")

	storage, err := postgres.NewPostgres(ctx, cfg, log)
	if err != nil {
		log.Error("Failed to init postgres",
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	log.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	statusCache := redis.NewStatusCache(redisClient)
	alertDedup := redis.NewAlertDedup(redisClient)

	provider := traccar.NewClient(cfg.Traccar, log)

	alertSvc := service.NewAlertService(storage.Notification, storage.Watcher, alertDedup, log, service.AlertConfig{
		DefaultStopMinutes:    cfg.Alerts.DefaultStopMinutes,
		DefaultOfflineMinutes: cfg.Alerts.DefaultOfflineMinutes,
	})
	tripSvc := service.NewTripService(storage.Trip, storage.Place, storage.Vehicle, alertSvc, log)
	trackerSvc := service.NewTrackerService(storage.Vehicle, alertSvc, tripSvc, statusCache, log, service.TrackerConfig{
		StopSpeedKmh:    cfg.Alerts.StopSpeedKmh,
		MinStopDuration: cfg.Alerts.MinStopDuration,
		OfflineAfter:    cfg.Alerts.OfflineAfter,
	})
	geofenceSvc := service.NewGeofenceService(storage.Place, storage.Vehicle, provider, log)
	fleetSvc := service.NewFleetService(storage.Vehicle, statusCache, log, service.FleetConfig{
		StopFeedAfter:    time.Duration(cfg.Alerts.DefaultStopMinutes) * time.Minute,
		OfflineFeedAfter: cfg.Alerts.OfflineAfter,
	})

	svc := service.New(trackerSvc, alertSvc, tripSvc, geofenceSvc, fleetSvc)

	httpServer := api.NewServer(cfg, log, svc)
	log.Info("Initialized server")

	var reconciler *workers.Reconciler
	if !cfg.Reconcile.Disabled {
		reconciler = workers.NewReconciler(provider, trackerSvc, storage.Vehicle, log, cfg.Reconcile.Interval)
	}

	return &Components{
		logger:     log,
		HttpServer: httpServer,
		Postgres:   storage,
		Redis:      redisClient,
		Reconciler: reconciler,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Component shutdown started")

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components shut down",
		slog.Duration("latency", time.Since(start)))
}
