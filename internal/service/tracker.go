package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/caffeine-dev-rafly/cookie-tms/internal/domain"
	"github.com/caffeine-dev-rafly/cookie-tms/pkg/e"
)

type TrackerConfig struct {
	StopSpeedKmh    float64
	MinStopDuration time.Duration
	OfflineAfter    time.Duration
}

type VehicleStore interface {
	ApplyByDeviceID(ctx context.Context, deviceID string, fn func(ctx context.Context, w domain.VehicleWriter, v *domain.Vehicle) error) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Vehicle, error)
	GetByDeviceID(ctx context.Context, deviceID string) (*domain.Vehicle, error)
}

// EpisodeNotifier is the dispatcher hook the tracker invokes after a
// successful atomic update. Cheap to call repeatedly.
type EpisodeNotifier interface {
	NotifyVehicleEvent(ctx context.Context, vehicle *domain.Vehicle, alertType domain.AlertType, startedAt time.Time, duration time.Duration) (int, error)
	NotifyGeofence(ctx context.Context, vehicle *domain.Vehicle, alertType domain.AlertType, geofenceID, eventID int64, at time.Time) (int, error)
}

// AutoArriver reacts to origin geofence entries.
type AutoArriver interface {
	AutoArrive(ctx context.Context, vehicleID uuid.UUID, geofenceID int64, at time.Time) error
}

type StatusCacheWriter interface {
	Set(ctx context.Context, view *domain.VehicleStatusView) error
}

// TrackerService is the single authority over vehicle live state. Every
// mutation runs under the per-vehicle row lock; alerts, trip reactions and
// the read cache are fed after the transaction commits.
type TrackerService struct {
	vehicles VehicleStore
	alerts   EpisodeNotifier
	trips    AutoArriver
	cache    StatusCacheWriter
	logger   *slog.Logger
	cfg      TrackerConfig
	now      func() time.Time
}

func NewTrackerService(
	vehicles VehicleStore,
	alerts EpisodeNotifier,
	trips AutoArriver,
	cache StatusCacheWriter,
	logger *slog.Logger,
	cfg TrackerConfig,
) *TrackerService {
	if cfg.StopSpeedKmh <= 0 {
		cfg.StopSpeedKmh = 5.0
	}
	if cfg.MinStopDuration <= 0 {
		cfg.MinStopDuration = time.Minute
	}
	if cfg.OfflineAfter <= 0 {
		cfg.OfflineAfter = 10 * time.Minute
	}
	return &TrackerService{
		vehicles: vehicles,
		alerts:   alerts,
		trips:    trips,
		cache:    cache,
		logger:   logger,
		cfg:      cfg,
		now:      time.Now,
	}
}

// pendingAlert is collected inside the transaction and dispatched after
// commit, so a notification failure never rolls back telemetry state.
type pendingAlert struct {
	alertType domain.AlertType
	startedAt time.Time
	duration  time.Duration
}

// sampleOutcome is what one canonical sample does to a vehicle. applySample
// fills it without touching storage, which keeps the transition rules
// independently testable.
type sampleOutcome struct {
	position      domain.VehiclePosition
	events        []domain.VehicleEvent
	statusChanged bool
	prevStatus    domain.DeviceStatus
	alerts        []pendingAlert
}

// applySample mutates v in the order the contract requires: last-known
// fields first, then the stop episode, then the offline check against the
// previous last_gps_sync, then liveness. The caller persists v afterwards.
func applySample(v *domain.Vehicle, s domain.PositionSample, cfg TrackerConfig) sampleOutcome {
	var out sampleOutcome
	out.prevStatus = v.DeviceStatus

	// 1. last-known fields, absent values fall back to the previous ones
	if s.Lat != nil {
		v.LastLat = s.Lat
	}
	if s.Lng != nil {
		v.LastLng = s.Lng
	}
	if s.Heading != nil {
		v.LastHeading = s.Heading
	}
	if s.SpeedKmh != nil {
		v.LastSpeedKmh = *s.SpeedKmh
	}
	if s.Ignition != nil {
		v.LastIgnition = s.Ignition
	}
	if s.TotalDistanceM != nil {
		v.OdometerKm = int64(*s.TotalDistanceM / 1000)
	}

	// 2. stop episode
	if v.LastSpeedKmh <= cfg.StopSpeedKmh {
		if v.StoppedSince == nil {
			since := s.ObservedAt
			v.StoppedSince = &since
		} else {
			out.alerts = append(out.alerts, pendingAlert{
				alertType: domain.AlertVehicleStop,
				startedAt: *v.StoppedSince,
				duration:  s.ObservedAt.Sub(*v.StoppedSince),
			})
		}
	} else if v.StoppedSince != nil {
		elapsed := s.ObservedAt.Sub(*v.StoppedSince)
		if elapsed >= cfg.MinStopDuration {
			out.events = append(out.events, domain.VehicleEvent{
				VehicleID:       v.ID,
				EventType:       domain.EventStop,
				StartTime:       *v.StoppedSince,
				EndTime:         s.ObservedAt,
				DurationMinutes: int(elapsed.Minutes()),
				Lat:             v.LastLat,
				Lng:             v.LastLng,
			})
		}
		v.StoppedSince = nil
	}

	// 3. offline gap against the previous sync timestamp, before it is
	// overwritten below
	if v.LastGPSSync != nil {
		gap := s.ObservedAt.Sub(*v.LastGPSSync)
		if gap > cfg.OfflineAfter && v.DeviceStatus != domain.DeviceOffline {
			out.events = append(out.events, domain.VehicleEvent{
				VehicleID:       v.ID,
				EventType:       domain.EventOffline,
				StartTime:       *v.LastGPSSync,
				EndTime:         s.ObservedAt,
				DurationMinutes: int(gap.Minutes()),
				Lat:             v.LastLat,
				Lng:             v.LastLng,
			})
			out.alerts = append(out.alerts, pendingAlert{
				alertType: domain.AlertVehicleOffline,
				startedAt: *v.LastGPSSync,
				duration:  gap,
			})
		}
	}

	// 4. a position sample implies liveness
	if v.DeviceStatus != domain.DeviceOnline {
		v.DeviceStatus = domain.DeviceOnline
		at := s.ObservedAt
		v.DeviceStatusChangedAt = &at
		out.statusChanged = true
	}
	sync := s.ObservedAt
	v.LastGPSSync = &sync

	// 5. resolved history row
	out.position = domain.VehiclePosition{
		VehicleID:  v.ID,
		SpeedKmh:   v.LastSpeedKmh,
		ObservedAt: s.ObservedAt,
	}
	if v.LastLat != nil {
		out.position.Lat = *v.LastLat
	}
	if v.LastLng != nil {
		out.position.Lng = *v.LastLng
	}
	if v.LastHeading != nil {
		out.position.Heading = *v.LastHeading
	}
	if v.LastIgnition != nil {
		out.position.Ignition = *v.LastIgnition
	}
	return out
}

// ProcessSample applies one canonical sample. Unknown devices surface as
// e.ErrUnknownDevice with no mutation; the caller decides whether that is
// worth more than a log line.
func (t *TrackerService) ProcessSample(ctx context.Context, deviceID string, sample domain.PositionSample, raw json.RawMessage) error {
	const op = "service.Tracker.ProcessSample"

	var (
		snapshot *domain.VehicleStatusView
		vehicle  *domain.Vehicle
		pending  []pendingAlert
	)

	err := t.vehicles.ApplyByDeviceID(ctx, deviceID, func(ctx context.Context, w domain.VehicleWriter, v *domain.Vehicle) error {
		out := applySample(v, sample, t.cfg)

		for i := range out.events {
			if err := w.InsertEvent(ctx, &out.events[i]); err != nil {
				return err
			}
		}
		if out.statusChanged {
			if err := w.AppendDeviceLog(ctx, &domain.DeviceLog{
				VehicleID: v.ID,
				Status:    v.DeviceStatus,
				EventTime: sample.ObservedAt,
				Message:   fmt.Sprintf("Device %s now %s (position).", v.LicensePlate, v.DeviceStatus),
				Payload:   raw,
			}); err != nil {
				return err
			}
			if out.prevStatus == domain.DeviceOffline {
				if err := w.CloseOpenOfflineEvent(ctx, v.ID, sample.ObservedAt); err != nil {
					return err
				}
			}
		}
		if err := w.AppendPosition(ctx, &out.position); err != nil {
			return err
		}

		vc := *v
		vehicle = &vc
		snapshot = statusView(v)
		pending = out.alerts
		return nil
	})
	if err != nil {
		return err
	}

	t.afterCommit(ctx, vehicle, snapshot, pending)
	return nil
}

// ProcessStatusEvent handles deviceOnline/deviceOffline and geofence
// boundary events from the provider.
func (t *TrackerService) ProcessStatusEvent(ctx context.Context, deviceID string, ev StatusEvent, raw json.RawMessage) error {
	const op = "service.Tracker.ProcessStatusEvent"

	switch ev.Type {
	case EventGeofenceEnter, EventGeofenceExit:
		return t.processGeofenceEvent(ctx, deviceID, ev)
	}

	resolved := domain.DeviceUnknown
	switch ev.Type {
	case EventDeviceOnline:
		resolved = domain.DeviceOnline
	case EventDeviceOffline:
		resolved = domain.DeviceOffline
	}

	var (
		vehicle *domain.Vehicle
		pending []pendingAlert
	)

	err := t.vehicles.ApplyByDeviceID(ctx, deviceID, func(ctx context.Context, w domain.VehicleWriter, v *domain.Vehicle) error {
		if resolved == v.DeviceStatus {
			if resolved == domain.DeviceOnline {
				at := ev.Time
				v.LastGPSSync = &at
			}
			vc := *v
			vehicle = &vc
			return nil
		}

		prev := v.DeviceStatus
		v.DeviceStatus = resolved
		at := ev.Time
		v.DeviceStatusChangedAt = &at

		if err := w.AppendDeviceLog(ctx, &domain.DeviceLog{
			VehicleID: v.ID,
			Status:    resolved,
			EventTime: ev.Time,
			Message:   fmt.Sprintf("Device %s went %s at %s.", v.LicensePlate, resolved, ev.Time.UTC().Format(time.RFC3339)),
			Payload:   raw,
		}); err != nil {
			return err
		}

		switch resolved {
		case domain.DeviceOffline:
			// provisional: end_time == start_time until the device returns
			if err := w.InsertEvent(ctx, &domain.VehicleEvent{
				VehicleID: v.ID,
				EventType: domain.EventOffline,
				StartTime: ev.Time,
				EndTime:   ev.Time,
				Lat:       v.LastLat,
				Lng:       v.LastLng,
			}); err != nil {
				return err
			}
			pending = append(pending, pendingAlert{
				alertType: domain.AlertVehicleOffline,
				startedAt: ev.Time,
			})
		case domain.DeviceOnline:
			v.LastGPSSync = &at
			if prev == domain.DeviceOffline {
				if err := w.CloseOpenOfflineEvent(ctx, v.ID, ev.Time); err != nil {
					return err
				}
			}
		}

		vc := *v
		vehicle = &vc
		return nil
	})
	if err != nil {
		return err
	}

	t.afterCommit(ctx, vehicle, statusView(vehicle), pending)
	return nil
}

func (t *TrackerService) processGeofenceEvent(ctx context.Context, deviceID string, ev StatusEvent) error {
	vehicle, err := t.vehicles.GetByDeviceID(ctx, deviceID)
	if err != nil {
		return err
	}

	alertType := domain.AlertGeofenceEnter
	if ev.Type == EventGeofenceExit {
		alertType = domain.AlertGeofenceExit
	}

	if ev.Type == EventGeofenceEnter && t.trips != nil {
		if err := t.trips.AutoArrive(ctx, vehicle.ID, ev.GeofenceID, ev.Time); err != nil {
			t.logger.Error("auto-arrive failed",
				slog.String("vehicle_id", vehicle.ID.String()),
				slog.Int64("geofence_id", ev.GeofenceID),
				slog.Any("error", err),
			)
		}
	}

	if t.alerts != nil {
		if _, err := t.alerts.NotifyGeofence(ctx, vehicle, alertType, ev.GeofenceID, ev.EventID, ev.Time); err != nil {
			t.logger.Error("geofence alert dispatch failed", slog.Any("error", err))
		}
	}
	return nil
}

// EvaluateOffline is the pull-based detection used by the reconciler: when a
// vehicle's last sync is older than the threshold and it is not already
// OFFLINE, mark it offline with a provisional event. An already-offline
// vehicle just re-notifies with the grown duration.
func (t *TrackerService) EvaluateOffline(ctx context.Context, deviceID string, now time.Time) error {
	var (
		vehicle *domain.Vehicle
		pending []pendingAlert
	)

	err := t.vehicles.ApplyByDeviceID(ctx, deviceID, func(ctx context.Context, w domain.VehicleWriter, v *domain.Vehicle) error {
		if v.DeviceStatus == domain.DeviceOffline {
			if v.DeviceStatusChangedAt != nil {
				pending = append(pending, pendingAlert{
					alertType: domain.AlertVehicleOffline,
					startedAt: *v.DeviceStatusChangedAt,
					duration:  now.Sub(*v.DeviceStatusChangedAt),
				})
			}
			vc := *v
			vehicle = &vc
			return nil
		}
		if v.LastGPSSync == nil || now.Sub(*v.LastGPSSync) <= t.cfg.OfflineAfter {
			vc := *v
			vehicle = &vc
			return nil
		}

		since := *v.LastGPSSync
		v.DeviceStatus = domain.DeviceOffline
		v.DeviceStatusChangedAt = &since

		if err := w.AppendDeviceLog(ctx, &domain.DeviceLog{
			VehicleID: v.ID,
			Status:    domain.DeviceOffline,
			EventTime: now,
			Message:   fmt.Sprintf("Device %s considered OFFLINE, no sync since %s.", v.LicensePlate, since.UTC().Format(time.RFC3339)),
			Payload:   json.RawMessage(`{"source":"reconciler"}`),
		}); err != nil {
			return err
		}
		if err := w.InsertEvent(ctx, &domain.VehicleEvent{
			VehicleID: v.ID,
			EventType: domain.EventOffline,
			StartTime: since,
			EndTime:   since,
			Lat:       v.LastLat,
			Lng:       v.LastLng,
		}); err != nil {
			return err
		}
		pending = append(pending, pendingAlert{
			alertType: domain.AlertVehicleOffline,
			startedAt: since,
			duration:  now.Sub(since),
		})

		vc := *v
		vehicle = &vc
		return nil
	})
	if err != nil {
		return err
	}

	t.afterCommit(ctx, vehicle, statusView(vehicle), pending)
	return nil
}

func (t *TrackerService) afterCommit(ctx context.Context, vehicle *domain.Vehicle, snapshot *domain.VehicleStatusView, pending []pendingAlert) {
	if vehicle == nil {
		return
	}
	if t.cache != nil && snapshot != nil {
		if err := t.cache.Set(ctx, snapshot); err != nil {
			t.logger.Warn("status cache refresh failed",
				slog.String("vehicle_id", vehicle.ID.String()),
				slog.Any("error", err),
			)
		}
	}
	if t.alerts == nil {
		return
	}
	for _, a := range pending {
		if _, err := t.alerts.NotifyVehicleEvent(ctx, vehicle, a.alertType, a.startedAt, a.duration); err != nil && !errors.Is(err, e.ErrConflict) {
			t.logger.Error("alert dispatch failed",
				slog.String("vehicle_id", vehicle.ID.String()),
				slog.String("alert_type", string(a.alertType)),
				slog.Any("error", err),
			)
		}
	}
}

func statusView(v *domain.Vehicle) *domain.VehicleStatusView {
	if v == nil {
		return nil
	}
	return &domain.VehicleStatusView{
		ID:           v.ID,
		LicensePlate: v.LicensePlate,
		Motion:       v.Motion(),
		DeviceStatus: v.DeviceStatus,
		Lat:          v.LastLat,
		Lng:          v.LastLng,
		Heading:      v.LastHeading,
		SpeedKmh:     v.LastSpeedKmh,
		StoppedSince: v.StoppedSince,
		LastGPSSync:  v.LastGPSSync,
	}
}
