package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/caffeine-dev-rafly/cookie-tms/internal/domain"
)

func testTrackerConfig() TrackerConfig {
	return TrackerConfig{
		StopSpeedKmh:    5.0,
		MinStopDuration: time.Minute,
		OfflineAfter:    10 * time.Minute,
	}
}

func f64ptr(v float64) *float64 { return &v }
func boolptr(v bool) *bool      { return &v }

func baseTime(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
}

func newTestVehicle() *domain.Vehicle {
	return &domain.Vehicle{
		ID:             uuid.New(),
		OrganizationID: uuid.New(),
		LicensePlate:   "B 1234 XY",
		DeviceID:       "device-001",
		DeviceStatus:   domain.DeviceOnline,
	}
}

func sampleAt(at time.Time, speedKmh float64) domain.PositionSample {
	return domain.PositionSample{
		Lat:        f64ptr(-6.2),
		Lng:        f64ptr(106.8),
		SpeedKmh:   &speedKmh,
		ObservedAt: at,
	}
}

func TestApplySample_StopEpisodeOpensAndCloses(t *testing.T) {
	t.Parallel()

	v := newTestVehicle()
	t0 := baseTime(t)
	cfg := testTrackerConfig()

	out := applySample(v, sampleAt(t0, 0), cfg)
	if v.StoppedSince == nil || !v.StoppedSince.Equal(t0) {
		t.Fatalf("stopped_since = %v, want %v", v.StoppedSince, t0)
	}
	if len(out.events) != 0 {
		t.Fatalf("unexpected events on first slow sample: %v", out.events)
	}

	end := t0.Add(3 * time.Minute)
	out = applySample(v, sampleAt(end, 30), cfg)
	if v.StoppedSince != nil {
		t.Fatalf("stopped_since not cleared after movement")
	}
	if len(out.events) != 1 {
		t.Fatalf("events = %d, want 1", len(out.events))
	}
	ev := out.events[0]
	if ev.EventType != domain.EventStop {
		t.Errorf("event type = %s, want %s", ev.EventType, domain.EventStop)
	}
	if !ev.StartTime.Equal(t0) || !ev.EndTime.Equal(end) {
		t.Errorf("event window = [%v, %v], want [%v, %v]", ev.StartTime, ev.EndTime, t0, end)
	}
	if ev.DurationMinutes != 3 {
		t.Errorf("duration = %d, want 3", ev.DurationMinutes)
	}
}

func TestApplySample_BriefStopDiscarded(t *testing.T) {
	t.Parallel()

	v := newTestVehicle()
	t0 := baseTime(t)
	cfg := testTrackerConfig()

	applySample(v, sampleAt(t0, 0), cfg)
	out := applySample(v, sampleAt(t0.Add(30*time.Second), 40), cfg)

	if len(out.events) != 0 {
		t.Fatalf("brief stop produced events: %v", out.events)
	}
	if v.StoppedSince != nil {
		t.Fatalf("stopped_since not cleared")
	}
}

func TestApplySample_StoppedSinceOnlyBelowThreshold(t *testing.T) {
	t.Parallel()

	v := newTestVehicle()
	cfg := testTrackerConfig()

	applySample(v, sampleAt(baseTime(t), 6), cfg)
	if v.StoppedSince != nil {
		t.Fatalf("stopped_since set at speed above threshold")
	}
}

func TestApplySample_OngoingStopQueuesAlert(t *testing.T) {
	t.Parallel()

	v := newTestVehicle()
	t0 := baseTime(t)
	cfg := testTrackerConfig()

	applySample(v, sampleAt(t0, 0), cfg)
	out := applySample(v, sampleAt(t0.Add(7*time.Minute), 1), cfg)

	if len(out.alerts) != 1 {
		t.Fatalf("alerts = %d, want 1", len(out.alerts))
	}
	a := out.alerts[0]
	if a.alertType != domain.AlertVehicleStop {
		t.Errorf("alert type = %s, want %s", a.alertType, domain.AlertVehicleStop)
	}
	if !a.startedAt.Equal(t0) {
		t.Errorf("alert start = %v, want %v", a.startedAt, t0)
	}
	if a.duration != 7*time.Minute {
		t.Errorf("alert duration = %v, want 7m", a.duration)
	}
	if v.StoppedSince == nil || !v.StoppedSince.Equal(t0) {
		t.Errorf("stopped_since changed during ongoing stop")
	}
}

func TestApplySample_OfflineGapDetected(t *testing.T) {
	t.Parallel()

	v := newTestVehicle()
	t0 := baseTime(t)
	sync := t0.Add(-15 * time.Minute)
	v.LastGPSSync = &sync
	cfg := testTrackerConfig()

	out := applySample(v, sampleAt(t0, 20), cfg)

	if len(out.events) != 1 {
		t.Fatalf("events = %d, want 1", len(out.events))
	}
	ev := out.events[0]
	if ev.EventType != domain.EventOffline {
		t.Errorf("event type = %s, want %s", ev.EventType, domain.EventOffline)
	}
	if !ev.StartTime.Equal(sync) || !ev.EndTime.Equal(t0) {
		t.Errorf("offline window = [%v, %v], want [%v, %v]", ev.StartTime, ev.EndTime, sync, t0)
	}
	if len(out.alerts) != 1 || out.alerts[0].alertType != domain.AlertVehicleOffline {
		t.Fatalf("offline alert not queued: %v", out.alerts)
	}
	if v.LastGPSSync == nil || !v.LastGPSSync.Equal(t0) {
		t.Errorf("last_gps_sync not advanced")
	}
}

func TestApplySample_SmallGapNoOfflineEvent(t *testing.T) {
	t.Parallel()

	v := newTestVehicle()
	t0 := baseTime(t)
	sync := t0.Add(-5 * time.Minute)
	v.LastGPSSync = &sync

	out := applySample(v, sampleAt(t0, 20), testTrackerConfig())
	if len(out.events) != 0 {
		t.Fatalf("unexpected events for small gap: %v", out.events)
	}
}

func TestApplySample_FieldFallback(t *testing.T) {
	t.Parallel()

	v := newTestVehicle()
	v.LastLat = f64ptr(-6.1)
	v.LastLng = f64ptr(106.7)
	v.LastHeading = f64ptr(90)
	v.LastIgnition = boolptr(true)
	v.LastSpeedKmh = 42

	sample := domain.PositionSample{
		SpeedKmh:   f64ptr(50),
		ObservedAt: baseTime(t),
	}
	out := applySample(v, sample, testTrackerConfig())

	if *v.LastLat != -6.1 || *v.LastLng != 106.7 {
		t.Errorf("coordinates lost on sparse sample")
	}
	if out.position.Lat != -6.1 || out.position.Lng != 106.7 {
		t.Errorf("history row missing fallback coordinates: %+v", out.position)
	}
	if out.position.SpeedKmh != 50 {
		t.Errorf("speed = %g, want 50", out.position.SpeedKmh)
	}
	if !out.position.Ignition {
		t.Errorf("ignition fallback lost")
	}
}

func TestApplySample_SampleImpliesOnline(t *testing.T) {
	t.Parallel()

	v := newTestVehicle()
	v.DeviceStatus = domain.DeviceOffline
	t0 := baseTime(t)

	out := applySample(v, sampleAt(t0, 10), testTrackerConfig())

	if v.DeviceStatus != domain.DeviceOnline {
		t.Fatalf("device status = %s, want ONLINE", v.DeviceStatus)
	}
	if !out.statusChanged {
		t.Fatalf("statusChanged not reported")
	}
	if out.prevStatus != domain.DeviceOffline {
		t.Fatalf("prevStatus = %s, want OFFLINE", out.prevStatus)
	}
	if v.DeviceStatusChangedAt == nil || !v.DeviceStatusChangedAt.Equal(t0) {
		t.Fatalf("device_status_changed_at not stamped")
	}
}

func TestApplySample_OdometerFromTotalDistance(t *testing.T) {
	t.Parallel()

	v := newTestVehicle()
	sample := domain.PositionSample{
		SpeedKmh:       f64ptr(60),
		TotalDistanceM: f64ptr(123456789),
		ObservedAt:     baseTime(t),
	}
	applySample(v, sample, testTrackerConfig())

	if v.OdometerKm != 123456 {
		t.Errorf("odometer = %d, want 123456", v.OdometerKm)
	}
}
