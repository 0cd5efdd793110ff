package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/caffeine-dev-rafly/cookie-tms/internal/domain"
	"github.com/caffeine-dev-rafly/cookie-tms/pkg/e"
)

type NotificationStore interface {
	Exists(ctx context.Context, userID uuid.UUID, alertKey string) (bool, error)
	Insert(ctx context.Context, n *domain.Notification) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Notification, error)
}

type WatcherStore interface {
	ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]domain.Watcher, error)
}

type DedupCache interface {
	Seen(ctx context.Context, userID, alertKey string) (bool, error)
	Mark(ctx context.Context, userID, alertKey string) error
}

type AlertConfig struct {
	DefaultStopMinutes    int
	DefaultOfflineMinutes int
}

// AlertService fans episodes out to the organization's watchers, at most one
// notification per (watcher, alert key). The key ties the alert to the
// episode start, so a continuing episode stays silent and a new one fires
// again.
type AlertService struct {
	notifications NotificationStore
	watchers      WatcherStore
	dedup         DedupCache
	logger        *slog.Logger
	cfg           AlertConfig
}

func NewAlertService(
	notifications NotificationStore,
	watchers WatcherStore,
	dedup DedupCache,
	logger *slog.Logger,
	cfg AlertConfig,
) *AlertService {
	if cfg.DefaultStopMinutes <= 0 {
		cfg.DefaultStopMinutes = 5
	}
	if cfg.DefaultOfflineMinutes <= 0 {
		cfg.DefaultOfflineMinutes = 10
	}
	return &AlertService{
		notifications: notifications,
		watchers:      watchers,
		dedup:         dedup,
		logger:        logger,
		cfg:           cfg,
	}
}

// BuildAlertKey identifies one episode: same type, vehicle and start second
// always produce the same key.
func BuildAlertKey(alertType domain.AlertType, vehicleID uuid.UUID, startedAt time.Time) string {
	return fmt.Sprintf("%s:%s:%d", alertType, vehicleID, startedAt.Unix())
}

// NotifyVehicleEvent dispatches a stop or offline episode to every watcher
// whose personal threshold the episode has crossed. Returns how many
// notifications were actually created.
func (a *AlertService) NotifyVehicleEvent(ctx context.Context, vehicle *domain.Vehicle, alertType domain.AlertType, startedAt time.Time, duration time.Duration) (int, error) {
	const op = "service.Alerts.NotifyVehicleEvent"

	watchers, err := a.watchers.ListByOrganization(ctx, vehicle.OrganizationID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	alertKey := BuildAlertKey(alertType, vehicle.ID, startedAt)
	minutes := int(duration.Minutes())

	sent := 0
	for _, w := range watchers {
		threshold := a.threshold(w, alertType)
		if minutes < threshold {
			continue
		}
		msg := a.episodeMessage(vehicle, alertType, startedAt, minutes)
		created, err := a.dispatch(ctx, w.ID, alertType, vehicle.ID.String(), alertKey, msg)
		if err != nil {
			a.logger.Error("notification dispatch failed",
				slog.String("user_id", w.ID.String()),
				slog.String("alert_key", alertKey),
				slog.Any("error", err),
			)
			continue
		}
		if created {
			sent++
		}
	}
	return sent, nil
}

// NotifyGeofence dispatches a boundary crossing. No thresholds apply; the
// provider event id keeps distinct crossings of the same fence distinct.
func (a *AlertService) NotifyGeofence(ctx context.Context, vehicle *domain.Vehicle, alertType domain.AlertType, geofenceID, eventID int64, at time.Time) (int, error) {
	const op = "service.Alerts.NotifyGeofence"

	watchers, err := a.watchers.ListByOrganization(ctx, vehicle.OrganizationID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	alertKey := fmt.Sprintf("%s:%s:%d:%d", alertType, vehicle.ID, geofenceID, eventID)
	verb := "entered"
	if alertType == domain.AlertGeofenceExit {
		verb = "left"
	}
	msg := fmt.Sprintf("Vehicle %s %s geofence area at %s.", vehicle.LicensePlate, verb, at.UTC().Format(time.RFC3339))

	sent := 0
	for _, w := range watchers {
		created, err := a.dispatch(ctx, w.ID, alertType, vehicle.ID.String(), alertKey, msg)
		if err != nil {
			a.logger.Error("notification dispatch failed",
				slog.String("user_id", w.ID.String()),
				slog.String("alert_key", alertKey),
				slog.Any("error", err),
			)
			continue
		}
		if created {
			sent++
		}
	}
	return sent, nil
}

// NotifyTripCompleted tells the watchers a trip reached all destinations.
func (a *AlertService) NotifyTripCompleted(ctx context.Context, orgID uuid.UUID, trip *domain.Trip, plate string) (int, error) {
	const op = "service.Alerts.NotifyTripCompleted"

	watchers, err := a.watchers.ListByOrganization(ctx, orgID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	alertKey := fmt.Sprintf("%s:%s", domain.AlertTripCompleted, trip.ID)
	msg := fmt.Sprintf("Trip for vehicle %s completed all %d destinations.", plate, len(trip.Destinations))

	sent := 0
	for _, w := range watchers {
		created, err := a.dispatch(ctx, w.ID, domain.AlertTripCompleted, trip.ID.String(), alertKey, msg)
		if err != nil {
			a.logger.Error("notification dispatch failed",
				slog.String("user_id", w.ID.String()),
				slog.String("alert_key", alertKey),
				slog.Any("error", err),
			)
			continue
		}
		if created {
			sent++
		}
	}
	return sent, nil
}

// dispatch is the per-recipient dedup pipeline: Redis gate, then the
// database check, then insert, and only then the Redis mark. The unique
// constraint stays the real guarantee; Redis just saves round trips.
func (a *AlertService) dispatch(ctx context.Context, userID uuid.UUID, category domain.AlertType, referenceID, alertKey, message string) (bool, error) {
	if a.dedup != nil {
		seen, err := a.dedup.Seen(ctx, userID.String(), alertKey)
		if err != nil {
			a.logger.Warn("alert dedup cache unavailable", slog.Any("error", err))
		} else if seen {
			return false, nil
		}
	}

	exists, err := a.notifications.Exists(ctx, userID, alertKey)
	if err != nil {
		return false, err
	}
	if exists {
		a.markSeen(ctx, userID, alertKey)
		return false, nil
	}

	err = a.notifications.Insert(ctx, &domain.Notification{
		ID:          uuid.New(),
		UserID:      userID,
		Message:     message,
		Category:    category,
		ReferenceID: referenceID,
		AlertKey:    alertKey,
	})
	if err != nil {
		// a concurrent dispatcher won the race, that is fine
		if errors.Is(err, e.ErrUniqueViolation) {
			a.markSeen(ctx, userID, alertKey)
			return false, nil
		}
		return false, err
	}

	a.markSeen(ctx, userID, alertKey)
	return true, nil
}

func (a *AlertService) markSeen(ctx context.Context, userID uuid.UUID, alertKey string) {
	if a.dedup == nil {
		return
	}
	if err := a.dedup.Mark(ctx, userID.String(), alertKey); err != nil {
		a.logger.Warn("alert dedup mark failed", slog.Any("error", err))
	}
}

func (a *AlertService) threshold(w domain.Watcher, alertType domain.AlertType) int {
	switch alertType {
	case domain.AlertVehicleStop:
		if w.StopAlertMinutes > 0 {
			return w.StopAlertMinutes
		}
		return a.cfg.DefaultStopMinutes
	case domain.AlertVehicleOffline:
		if w.OfflineAlertMinutes > 0 {
			return w.OfflineAlertMinutes
		}
		return a.cfg.DefaultOfflineMinutes
	}
	return 0
}

func (a *AlertService) episodeMessage(vehicle *domain.Vehicle, alertType domain.AlertType, startedAt time.Time, minutes int) string {
	switch alertType {
	case domain.AlertVehicleStop:
		return fmt.Sprintf("Vehicle %s has been stopped for %d minutes (since %s).",
			vehicle.LicensePlate, minutes, startedAt.UTC().Format(time.RFC3339))
	case domain.AlertVehicleOffline:
		return fmt.Sprintf("Vehicle %s has been offline for %d minutes (since %s).",
			vehicle.LicensePlate, minutes, startedAt.UTC().Format(time.RFC3339))
	}
	return fmt.Sprintf("Vehicle %s alert %s.", vehicle.LicensePlate, alertType)
}

// ListForUser feeds the notification inbox.
func (a *AlertService) ListForUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Notification, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return a.notifications.ListByUser(ctx, userID, limit)
}
