package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/caffeine-dev-rafly/cookie-tms/internal/config"
	"github.com/caffeine-dev-rafly/cookie-tms/pkg/e"
)

type Postgres struct {
	Pool         *pgxpool.Pool
	Vehicle      *VehicleRepo
	Trip         *TripRepo
	Place        *PlaceRepo
	Notification *NotificationRepo
	Watcher      *WatcherRepo
}

func NewPostgres(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Postgres, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Postgres.Host,
		cfg.Postgres.Port,
		cfg.Postgres.User,
		cfg.Postgres.Password,
		cfg.Postgres.Database,
		cfg.Postgres.SSLMode,
	)

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("Failed to parse pgx config", slog.String("error", err.Error()))
		return nil, e.Wrap("storage.pg.NewPostgres.ParseConfig", err)
	}
	poolCfg.MaxConns = cfg.Postgres.MaxConns
	poolCfg.MinConns = cfg.Postgres.MinConns
	poolCfg.MaxConnLifetime = cfg.Postgres.MaxConnLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		logger.Error("Failed to create pgx pool", slog.String("error", err.Error()))
		return nil, e.Wrap("storage.pg.NewPostgres.NewWithConfig", err)
	}

	if err := pool.Ping(ctx); err != nil {
		logger.Error("Failed to ping Postgres database", slog.String("error", err.Error()))
		pool.Close()
		return nil, e.Wrap("storage.pg.NewPostgres.Ping", err)
	}
	logger.Info("Connected to Postgres successfully")

	pg := &Postgres{
		Pool:         pool,
		Vehicle:      NewVehicleRepo(pool, logger),
		Trip:         NewTripRepo(pool, logger),
		Place:        NewPlaceRepo(pool, logger),
		Notification: NewNotificationRepo(pool, logger),
		Watcher:      NewWatcherRepo(pool, logger),
	}

	logger.Info("Postgres repositories created")
	return pg, nil
}
