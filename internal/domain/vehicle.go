package domain

import (
	"time"

	"github.com/google/uuid"
)

type DeviceStatus string

const (
	DeviceOnline  DeviceStatus = "ONLINE"
	DeviceOffline DeviceStatus = "OFFLINE"
	DeviceUnknown DeviceStatus = "UNKNOWN"
)

// NormalizeDeviceStatus maps a raw provider status string onto the
// three-state enum. Anything unrecognized is UNKNOWN.
func NormalizeDeviceStatus(raw string) DeviceStatus {
	switch raw {
	case "online", "ONLINE":
		return DeviceOnline
	case "offline", "OFFLINE":
		return DeviceOffline
	default:
		return DeviceUnknown
	}
}

type MotionState string

const (
	MotionMoving  MotionState = "MOVING"
	MotionIdle    MotionState = "IDLE"
	MotionStopped MotionState = "STOPPED"
	MotionOffline MotionState = "OFFLINE"
)

// MovingSpeedKmh separates MOVING from IDLE/STOPPED in the derived motion
// state. Distinct from the stop-episode threshold, which is configurable.
const MovingSpeedKmh = 10.0

type Vehicle struct {
	ID             uuid.UUID `json:"id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	LicensePlate   string    `json:"license_plate"`
	VehicleType    string    `json:"vehicle_type"`
	DeviceID       string    `json:"device_id"` // provider uniqueId

	LastLat      *float64 `json:"last_lat"`
	LastLng      *float64 `json:"last_lng"`
	LastHeading  *float64 `json:"last_heading"`
	LastSpeedKmh float64  `json:"last_speed_kmh"`
	LastIgnition *bool    `json:"last_ignition"`
	OdometerKm   int64    `json:"odometer_km"`

	DeviceStatus          DeviceStatus `json:"device_status"`
	DeviceStatusChangedAt *time.Time   `json:"device_status_changed_at"`
	StoppedSince          *time.Time   `json:"stopped_since"`
	LastGPSSync           *time.Time   `json:"last_gps_sync"`

	CreatedAt time.Time `json:"created_at"`
}

// Motion derives the consumer-facing state from current fields. It is never
// stored: OFFLINE masks motion, otherwise speed and ignition decide.
func (v *Vehicle) Motion() MotionState {
	if v.DeviceStatus == DeviceOffline {
		return MotionOffline
	}
	if v.LastSpeedKmh > MovingSpeedKmh {
		return MotionMoving
	}
	if v.LastIgnition != nil && *v.LastIgnition {
		return MotionIdle
	}
	return MotionStopped
}
