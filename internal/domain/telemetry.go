package domain

import (
	"time"

	"github.com/google/uuid"
)

const KnotsToKmh = 1.852

// PositionSample is a canonical telemetry reading. Nil fields mean the
// provider omitted them; the tracker falls back to the vehicle's previous
// value per field. ObservedAt is always set (defaults to receipt time).
type PositionSample struct {
	Lat            *float64
	Lng            *float64
	SpeedKmh       *float64
	Heading        *float64
	Ignition       *bool
	TotalDistanceM *float64
	ObservedAt     time.Time
}

// VehiclePosition is an append-only history row, written after fallback
// resolution so every field holds the effective value.
type VehiclePosition struct {
	ID         uuid.UUID `json:"id"`
	VehicleID  uuid.UUID `json:"vehicle_id"`
	Lat        float64   `json:"lat"`
	Lng        float64   `json:"lng"`
	SpeedKmh   float64   `json:"speed_kmh"`
	Heading    float64   `json:"heading"`
	Ignition   bool      `json:"ignition"`
	ObservedAt time.Time `json:"observed_at"`
}
