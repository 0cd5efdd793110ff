package workers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/caffeine-dev-rafly/cookie-tms/internal/domain"
	"github.com/caffeine-dev-rafly/cookie-tms/internal/service"
	"github.com/caffeine-dev-rafly/cookie-tms/internal/traccar"
	"github.com/caffeine-dev-rafly/cookie-tms/pkg/e"
)

type ProviderDevices interface {
	Devices(ctx context.Context) ([]traccar.Device, error)
	PositionByID(ctx context.Context, id int64) (*traccar.Position, error)
}

type Tracker interface {
	ProcessSample(ctx context.Context, deviceID string, sample domain.PositionSample, raw json.RawMessage) error
	ProcessStatusEvent(ctx context.Context, deviceID string, ev service.StatusEvent, raw json.RawMessage) error
	EvaluateOffline(ctx context.Context, deviceID string, now time.Time) error
}

type VehicleLookup interface {
	GetByDeviceID(ctx context.Context, deviceID string) (*domain.Vehicle, error)
}

// Reconciler periodically polls the provider and replays what webhooks may
// have missed: fresh positions, status flips and overdue offline detection.
// One bad device never stops the sweep.
type Reconciler struct {
	provider ProviderDevices
	tracker  Tracker
	vehicles VehicleLookup
	logger   *slog.Logger
	interval time.Duration
	now      func() time.Time
}

func NewReconciler(provider ProviderDevices, tracker Tracker, vehicles VehicleLookup, logger *slog.Logger, interval time.Duration) *Reconciler {
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	return &Reconciler{
		provider: provider,
		tracker:  tracker,
		vehicles: vehicles,
		logger:   logger,
		interval: interval,
		now:      time.Now,
	}
}

// Run blocks until ctx is cancelled, sweeping once per interval. The first
// sweep happens immediately so a restart does not wait a full interval.
func (r *Reconciler) Run(ctx context.Context) {
	r.logger.Info("reconciler started", slog.Duration("interval", r.interval))

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("reconciler stopped")
			return
		case <-ticker.C:
			r.sweep(ctx)
		}
	}
}

func (r *Reconciler) sweep(ctx context.Context) {
	started := r.now()

	devices, err := r.provider.Devices(ctx)
	if err != nil {
		r.logger.Warn("reconcile sweep skipped, provider unreachable", slog.Any("error", err))
		return
	}

	processed, failed := 0, 0
	for _, d := range devices {
		if ctx.Err() != nil {
			return
		}
		if err := r.reconcileDevice(ctx, d); err != nil {
			if errors.Is(err, e.ErrUnknownDevice) {
				continue
			}
			failed++
			r.logger.Error("device reconcile failed",
				slog.String("device_id", d.UniqueID),
				slog.Any("error", err),
			)
			continue
		}
		processed++
	}

	r.logger.Info("reconcile sweep done",
		slog.Int("devices", len(devices)),
		slog.Int("processed", processed),
		slog.Int("failed", failed),
		slog.Duration("took", r.now().Sub(started)),
	)
}

func (r *Reconciler) reconcileDevice(ctx context.Context, d traccar.Device) error {
	status := domain.NormalizeDeviceStatus(d.Status)
	now := r.now().UTC()

	raw, _ := json.Marshal(d)

	switch status {
	case domain.DeviceOffline:
		if err := r.tracker.ProcessStatusEvent(ctx, d.UniqueID, service.StatusEvent{
			Type: service.EventDeviceOffline,
			Time: now,
		}, raw); err != nil {
			return err
		}
	case domain.DeviceOnline:
		if d.PositionID == 0 || !r.positionStale(ctx, d) {
			return nil
		}
		pos, err := r.provider.PositionByID(ctx, d.PositionID)
		if err != nil {
			return fmt.Errorf("position %d: %w", d.PositionID, err)
		}
		if pos != nil {
			sample := service.SampleFromPosition(pos, now)
			posRaw, _ := json.Marshal(pos)
			if err := r.tracker.ProcessSample(ctx, d.UniqueID, sample, posRaw); err != nil {
				return err
			}
		}
		return nil
	}

	// pull-based offline detection catches devices whose webhooks went
	// missing entirely, and re-notifies ongoing offline episodes
	return r.tracker.EvaluateOffline(ctx, d.UniqueID, now)
}

// positionStale reports whether the provider has seen the device more
// recently than the stored last_gps_sync, so a fetch would bring new data.
// A failed lookup errs on the side of fetching.
func (r *Reconciler) positionStale(ctx context.Context, d traccar.Device) bool {
	if r.vehicles == nil || d.LastUpdate.IsZero() {
		return true
	}
	v, err := r.vehicles.GetByDeviceID(ctx, d.UniqueID)
	if err != nil || v == nil || v.LastGPSSync == nil {
		return true
	}
	return d.LastUpdate.After(*v.LastGPSSync)
}
