package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventStop    EventType = "STOP"
	EventOffline EventType = "OFFLINE"
	EventIdle    EventType = "IDLE"
)

// VehicleEvent records one episode. OFFLINE events are created provisionally
// with EndTime == StartTime and reconciled when the device comes back online;
// every other event is immutable once written.
type VehicleEvent struct {
	ID              uuid.UUID `json:"id"`
	VehicleID       uuid.UUID `json:"vehicle_id"`
	EventType       EventType `json:"event_type"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	DurationMinutes int       `json:"duration_minutes"`
	Lat             *float64  `json:"lat"`
	Lng             *float64  `json:"lng"`
	CreatedAt       time.Time `json:"created_at"`
}

// DeviceLog is the append-only audit trail of device_status transitions.
// Payload keeps the raw provider body for diagnostics.
type DeviceLog struct {
	ID        uuid.UUID       `json:"id"`
	VehicleID uuid.UUID       `json:"vehicle_id"`
	Status    DeviceStatus    `json:"status"`
	EventTime time.Time       `json:"event_time"`
	Message   string          `json:"message"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}
