package service_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/caffeine-dev-rafly/cookie-tms/internal/service"
	"github.com/caffeine-dev-rafly/cookie-tms/internal/traccar"
	"github.com/caffeine-dev-rafly/cookie-tms/pkg/e"
)

func TestNormalizeWebhook_NestedPositionPayload(t *testing.T) {
	t.Parallel()

	raw := []byte(`{
		"device": {"uniqueId": "356000000000001"},
		"position": {
			"latitude": -6.2,
			"longitude": 106.8,
			"speed": 10,
			"course": 180,
			"fixTime": "2026-08-30T12:00:00Z",
			"attributes": {"ignition": true, "totalDistance": 5000}
		}
	}`)

	msg, err := service.NormalizeWebhook(raw, time.Now().UTC())
	if err != nil {
		t.Fatalf("NormalizeWebhook: %v", err)
	}
	if msg.DeviceID != "356000000000001" {
		t.Fatalf("device id = %s", msg.DeviceID)
	}
	if msg.Sample == nil || msg.Event != nil {
		t.Fatalf("want position sample, got %+v", msg)
	}

	// 10 knots is 18.52 km/h
	if msg.Sample.SpeedKmh == nil || math.Abs(*msg.Sample.SpeedKmh-18.52) > 1e-9 {
		t.Errorf("speed = %v, want 18.52", msg.Sample.SpeedKmh)
	}
	if msg.Sample.Ignition == nil || !*msg.Sample.Ignition {
		t.Errorf("ignition lost")
	}
	want := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	if !msg.Sample.ObservedAt.Equal(want) {
		t.Errorf("observed_at = %v, want fixTime %v", msg.Sample.ObservedAt, want)
	}
}

func TestNormalizeWebhook_FlatPayload(t *testing.T) {
	t.Parallel()

	raw := []byte(`{"uniqueId": "dev-9", "latitude": 1.5, "longitude": 2.5, "speed": 0}`)

	now := time.Now().UTC()
	msg, err := service.NormalizeWebhook(raw, now)
	if err != nil {
		t.Fatalf("NormalizeWebhook: %v", err)
	}
	if msg.Sample == nil {
		t.Fatalf("no sample decoded")
	}
	if *msg.Sample.Lat != 1.5 || *msg.Sample.Lng != 2.5 {
		t.Errorf("coordinates = %v %v", msg.Sample.Lat, msg.Sample.Lng)
	}
	if !msg.Sample.ObservedAt.Equal(now) {
		t.Errorf("observed_at should default to now without fixTime")
	}
}

func TestNormalizeWebhook_AbsentFieldsStayNil(t *testing.T) {
	t.Parallel()

	raw := []byte(`{"uniqueId": "dev-9", "speed": 5}`)

	msg, err := service.NormalizeWebhook(raw, time.Now().UTC())
	if err != nil {
		t.Fatalf("NormalizeWebhook: %v", err)
	}
	if msg.Sample.Lat != nil || msg.Sample.Lng != nil {
		t.Errorf("absent coordinates must stay nil for per-field fallback")
	}
	if msg.Sample.Heading != nil || msg.Sample.Ignition != nil {
		t.Errorf("absent attributes must stay nil")
	}
}

func TestNormalizeWebhook_StatusEvent(t *testing.T) {
	t.Parallel()

	raw := []byte(`{
		"device": {"uniqueId": "dev-9"},
		"event": {"id": 777, "type": "deviceOffline", "eventTime": "2026-08-30T10:30:00Z"}
	}`)

	msg, err := service.NormalizeWebhook(raw, time.Now().UTC())
	if err != nil {
		t.Fatalf("NormalizeWebhook: %v", err)
	}
	if msg.Event == nil || msg.Sample != nil {
		t.Fatalf("want status event, got %+v", msg)
	}
	if msg.Event.Type != service.EventDeviceOffline {
		t.Errorf("type = %s", msg.Event.Type)
	}
	if msg.Event.EventID != 777 {
		t.Errorf("event id = %d", msg.Event.EventID)
	}
	want := time.Date(2026, 8, 30, 10, 30, 0, 0, time.UTC)
	if !msg.Event.Time.Equal(want) {
		t.Errorf("time = %v, want %v", msg.Event.Time, want)
	}
}

func TestNormalizeWebhook_GeofenceEvent(t *testing.T) {
	t.Parallel()

	raw := []byte(`{
		"device": {"uniqueId": "dev-9"},
		"event": {"id": 1, "type": "geofenceEnter", "geofenceId": 42}
	}`)

	msg, err := service.NormalizeWebhook(raw, time.Now().UTC())
	if err != nil {
		t.Fatalf("NormalizeWebhook: %v", err)
	}
	if msg.Event == nil || msg.Event.Type != service.EventGeofenceEnter {
		t.Fatalf("want geofence event, got %+v", msg)
	}
	if msg.Event.GeofenceID != 42 {
		t.Errorf("geofence id = %d, want 42", msg.Event.GeofenceID)
	}
}

func TestNormalizeWebhook_MissingDeviceID(t *testing.T) {
	t.Parallel()

	_, err := service.NormalizeWebhook([]byte(`{"latitude": 1}`), time.Now().UTC())
	if !errors.Is(err, e.ErrInvalidPayload) {
		t.Fatalf("err = %v, want ErrInvalidPayload", err)
	}
}

func TestNormalizeWebhook_Garbage(t *testing.T) {
	t.Parallel()

	_, err := service.NormalizeWebhook([]byte(`not json at all`), time.Now().UTC())
	if !errors.Is(err, e.ErrInvalidPayload) {
		t.Fatalf("err = %v, want ErrInvalidPayload", err)
	}
}

func TestSampleFromPosition_KnotsConversion(t *testing.T) {
	t.Parallel()

	speed := 2.0
	pos := &traccar.Position{SpeedKnots: &speed}

	sample := service.SampleFromPosition(pos, time.Now().UTC())
	if sample.SpeedKmh == nil || math.Abs(*sample.SpeedKmh-3.704) > 1e-9 {
		t.Fatalf("speed = %v, want 3.704", sample.SpeedKmh)
	}
}
