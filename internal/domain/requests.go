package domain

import (
	"time"

	"github.com/google/uuid"
)

type CreateTripRequest struct {
	VehicleID    uuid.UUID  `json:"vehicle_id" validate:"required"`
	DriverID     uuid.UUID  `json:"driver_id" validate:"required"`
	OriginID     *uuid.UUID `json:"origin_id"`
	Destinations []string   `json:"destinations" validate:"required,min=1,dive,required"`
	Price        int64      `json:"price" validate:"min=0"`
}

type ArriveRequest struct {
	Destination string `json:"destination" validate:"required"`
}

type SettleTripRequest struct {
	AllowanceGiven int64 `json:"allowance_given" validate:"min=0"`
	ActualFuelCost int64 `json:"actual_fuel_cost" validate:"min=0"`
	ActualTollCost int64 `json:"actual_toll_cost" validate:"min=0"`
	OtherExpense   int64 `json:"other_expense" validate:"min=0"`
}

type SavePlaceRequest struct {
	ID           *uuid.UUID   `json:"id"`
	Kind         PlaceKind    `json:"kind" validate:"required,oneof=ORIGIN CUSTOMER"`
	Name         string       `json:"name" validate:"required"`
	Address      string       `json:"address"`
	Lat          *float64     `json:"lat" validate:"omitempty,lat"`
	Lng          *float64     `json:"lng" validate:"omitempty,lng"`
	RadiusM      int          `json:"radius_m" validate:"omitempty,min=10,max=10000"`
	GeofenceType GeofenceType `json:"geofence_type" validate:"omitempty,oneof=CIRCLE RECTANGLE"`
	Bounds       *Bounds      `json:"bounds"`
}

// VehicleStatusView is the consumer-facing read model for one vehicle.
type VehicleStatusView struct {
	ID           uuid.UUID    `json:"id"`
	LicensePlate string       `json:"license_plate"`
	Motion       MotionState  `json:"motion"`
	DeviceStatus DeviceStatus `json:"device_status"`
	Lat          *float64     `json:"lat"`
	Lng          *float64     `json:"lng"`
	Heading      *float64     `json:"heading"`
	SpeedKmh     float64      `json:"speed_kmh"`
	StoppedSince *time.Time   `json:"stopped_since,omitempty"`
	LastGPSSync  *time.Time   `json:"last_gps_sync,omitempty"`
}

// OpenEpisode is one alerts-feed row: a stop/offline episode that is still
// open and has already lasted past the feed threshold.
type OpenEpisode struct {
	VehicleID       uuid.UUID `json:"vehicle_id"`
	LicensePlate    string    `json:"license_plate"`
	AlertType       AlertType `json:"alert_type"`
	Since           time.Time `json:"since"`
	DurationMinutes int       `json:"duration_minutes"`
}

// GeofenceSyncResult reports the outcome of pushing a place to the provider.
// A failed sync never blocks the local save; callers inspect this to retry.
type GeofenceSyncResult struct {
	Status     string `json:"status"` // success | skipped | failed | error
	Reason     string `json:"reason,omitempty"`
	GeofenceID int64  `json:"geofence_id,omitempty"`
	Linked     int    `json:"linked,omitempty"`
}
