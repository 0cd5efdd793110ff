package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/caffeine-dev-rafly/cookie-tms/internal/domain"
)

type FleetStore interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Vehicle, error)
	ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]*domain.Vehicle, error)
	HistoryByDate(ctx context.Context, vehicleID uuid.UUID, day time.Time) ([]domain.VehiclePosition, error)
	OpenEpisodes(ctx context.Context, orgID uuid.UUID, now time.Time, stopAfter, offlineAfter time.Duration) ([]domain.OpenEpisode, error)
}

type StatusCacheReader interface {
	Get(ctx context.Context, vehicleID string) (*domain.VehicleStatusView, error)
	Set(ctx context.Context, view *domain.VehicleStatusView) error
}

type FleetConfig struct {
	StopFeedAfter    time.Duration
	OfflineFeedAfter time.Duration
}

// FleetService is the read side: live statuses, day history and the open
// alerts feed. Postgres stays authoritative; Redis only shortcuts the
// single-vehicle lookup.
type FleetService struct {
	vehicles FleetStore
	cache    StatusCacheReader
	logger   *slog.Logger
	cfg      FleetConfig
	now      func() time.Time
}

func NewFleetService(vehicles FleetStore, cache StatusCacheReader, logger *slog.Logger, cfg FleetConfig) *FleetService {
	if cfg.StopFeedAfter <= 0 {
		cfg.StopFeedAfter = 5 * time.Minute
	}
	if cfg.OfflineFeedAfter <= 0 {
		cfg.OfflineFeedAfter = 10 * time.Minute
	}
	return &FleetService{
		vehicles: vehicles,
		cache:    cache,
		logger:   logger,
		cfg:      cfg,
		now:      time.Now,
	}
}

// ListStatuses derives the live view for every vehicle of the organization.
func (f *FleetService) ListStatuses(ctx context.Context, orgID uuid.UUID) ([]domain.VehicleStatusView, error) {
	const op = "service.Fleet.ListStatuses"

	vehicles, err := f.vehicles.ListByOrganization(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	views := make([]domain.VehicleStatusView, 0, len(vehicles))
	for _, v := range vehicles {
		views = append(views, *statusView(v))
	}
	return views, nil
}

// VehicleStatus serves one vehicle, cache first, falling back to Postgres
// and repopulating the cache on a miss.
func (f *FleetService) VehicleStatus(ctx context.Context, id uuid.UUID) (*domain.VehicleStatusView, error) {
	const op = "service.Fleet.VehicleStatus"

	if f.cache != nil {
		view, err := f.cache.Get(ctx, id.String())
		if err != nil {
			f.logger.Warn("status cache read failed", slog.Any("error", err))
		} else if view != nil {
			return view, nil
		}
	}

	vehicle, err := f.vehicles.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	view := statusView(vehicle)
	if f.cache != nil {
		if err := f.cache.Set(ctx, view); err != nil {
			f.logger.Warn("status cache write failed", slog.Any("error", err))
		}
	}
	return view, nil
}

// History returns the position trail of one vehicle for a calendar day (UTC).
func (f *FleetService) History(ctx context.Context, vehicleID uuid.UUID, day time.Time) ([]domain.VehiclePosition, error) {
	return f.vehicles.HistoryByDate(ctx, vehicleID, day)
}

// OpenAlerts lists episodes currently past the feed thresholds, computed
// fresh from vehicle state so the feed and the notifications can never
// disagree about what is ongoing.
func (f *FleetService) OpenAlerts(ctx context.Context, orgID uuid.UUID) ([]domain.OpenEpisode, error) {
	return f.vehicles.OpenEpisodes(ctx, orgID, f.now().UTC(), f.cfg.StopFeedAfter, f.cfg.OfflineFeedAfter)
}
