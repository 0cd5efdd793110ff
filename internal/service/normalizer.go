package service

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/caffeine-dev-rafly/cookie-tms/internal/domain"
	"github.com/caffeine-dev-rafly/cookie-tms/internal/traccar"
	"github.com/caffeine-dev-rafly/cookie-tms/pkg/e"
)

// StatusEvent is an out-of-band provider event: a device status change or a
// geofence boundary crossing.
type StatusEvent struct {
	Type       string
	EventID    int64
	GeofenceID int64
	Time       time.Time
}

const (
	EventDeviceOnline  = "deviceOnline"
	EventDeviceOffline = "deviceOffline"
	EventDeviceUnknown = "deviceUnknown"
	EventGeofenceEnter = "geofenceEnter"
	EventGeofenceExit  = "geofenceExit"
)

// InboundMessage is the normalizer output: exactly one of Sample or Event is
// set, plus the provider device id and the raw body for the audit trail.
type InboundMessage struct {
	DeviceID string
	Sample   *domain.PositionSample
	Event    *StatusEvent
	Raw      json.RawMessage
}

// webhookEnvelope tolerates both payload shapes the provider sends: nested
// device/position/event objects, or the same position fields flattened to
// the top level.
type webhookEnvelope struct {
	Device *struct {
		UniqueID string `json:"uniqueId"`
	} `json:"device"`
	Position *traccar.Position `json:"position"`
	Event    *struct {
		ID         int64      `json:"id"`
		Type       string     `json:"type"`
		EventTime  *time.Time `json:"eventTime"`
		ServerTime *time.Time `json:"serverTime"`
		GeofenceID int64      `json:"geofenceId"`
		UniqueID   string     `json:"uniqueId"`
	} `json:"event"`

	// flat variant
	UniqueID   string                     `json:"uniqueId"`
	Type       string                     `json:"type"`
	Latitude   *float64                   `json:"latitude"`
	Longitude  *float64                   `json:"longitude"`
	SpeedKnots *float64                   `json:"speed"`
	Course     *float64                   `json:"course"`
	FixTime    *time.Time                 `json:"fixTime"`
	Attributes traccar.PositionAttributes `json:"attributes"`
}

// NormalizeWebhook converts one inbound webhook body into an InboundMessage.
// Missing device id anywhere in the payload is e.ErrInvalidPayload; whether
// an unknown device is an error stays the caller's decision.
func NormalizeWebhook(raw []byte, now time.Time) (*InboundMessage, error) {
	const op = "service.NormalizeWebhook"

	var env webhookEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", op, err, e.ErrInvalidPayload)
	}

	deviceID := env.UniqueID
	if env.Device != nil && env.Device.UniqueID != "" {
		deviceID = env.Device.UniqueID
	}
	if deviceID == "" && env.Event != nil {
		deviceID = env.Event.UniqueID
	}
	if deviceID == "" {
		return nil, fmt.Errorf("%s: no device identifier: %w", op, e.ErrInvalidPayload)
	}

	msg := &InboundMessage{DeviceID: deviceID, Raw: raw}

	eventType := env.Type
	if env.Event != nil && env.Event.Type != "" {
		eventType = env.Event.Type
	}
	if isStatusEvent(eventType) {
		ev := &StatusEvent{Type: eventType, Time: now}
		if env.Event != nil {
			ev.EventID = env.Event.ID
			ev.GeofenceID = env.Event.GeofenceID
			if env.Event.EventTime != nil {
				ev.Time = *env.Event.EventTime
			} else if env.Event.ServerTime != nil {
				ev.Time = *env.Event.ServerTime
			}
		}
		msg.Event = ev
		return msg, nil
	}

	var sample domain.PositionSample
	if env.Position != nil {
		sample = SampleFromPosition(env.Position, now)
	} else {
		sample = domain.PositionSample{
			Lat:            env.Latitude,
			Lng:            env.Longitude,
			SpeedKmh:       knotsToKmh(env.SpeedKnots),
			Heading:        env.Course,
			Ignition:       env.Attributes.Ignition,
			TotalDistanceM: env.Attributes.TotalDistanceM,
			ObservedAt:     now,
		}
		if env.FixTime != nil {
			sample.ObservedAt = *env.FixTime
		}
	}
	msg.Sample = &sample
	return msg, nil
}

// SampleFromPosition canonicalizes one provider position record. Speed
// arrives in knots and is converted; absent fields stay nil so the tracker
// falls back to the previous value.
func SampleFromPosition(pos *traccar.Position, now time.Time) domain.PositionSample {
	sample := domain.PositionSample{
		Lat:            pos.Latitude,
		Lng:            pos.Longitude,
		SpeedKmh:       knotsToKmh(pos.SpeedKnots),
		Heading:        pos.Course,
		Ignition:       pos.Attributes.Ignition,
		TotalDistanceM: pos.Attributes.TotalDistanceM,
		ObservedAt:     now,
	}
	if pos.FixTime != nil {
		sample.ObservedAt = *pos.FixTime
	}
	return sample
}

func knotsToKmh(knots *float64) *float64 {
	if knots == nil {
		return nil
	}
	kmh := *knots * domain.KnotsToKmh
	return &kmh
}

func isStatusEvent(eventType string) bool {
	switch eventType {
	case EventDeviceOnline, EventDeviceOffline, EventDeviceUnknown, EventGeofenceEnter, EventGeofenceExit:
		return true
	}
	return false
}
