package domain

import (
	"time"

	"github.com/google/uuid"
)

type PlaceKind string

const (
	PlaceOrigin   PlaceKind = "ORIGIN"
	PlaceCustomer PlaceKind = "CUSTOMER"
)

type GeofenceType string

const (
	GeofenceCircle    GeofenceType = "CIRCLE"
	GeofenceRectangle GeofenceType = "RECTANGLE"
)

type Bounds struct {
	North float64 `json:"north"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	West  float64 `json:"west"`
}

// Place is a depot/pickup point (ORIGIN) or a delivery site (CUSTOMER) bound
// to one provider geofence. ProviderGeofenceID stays nil until first sync.
type Place struct {
	ID             uuid.UUID `json:"id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	Kind           PlaceKind `json:"kind"`
	Name           string    `json:"name"`
	Address        string    `json:"address"`

	Lat          *float64     `json:"lat"`
	Lng          *float64     `json:"lng"`
	RadiusM      int          `json:"radius_m"`
	GeofenceType GeofenceType `json:"geofence_type"`
	Bounds       *Bounds      `json:"bounds"`

	ProviderGeofenceID *int64    `json:"provider_geofence_id"`
	CreatedAt          time.Time `json:"created_at"`
}

const DefaultPlaceRadiusM = 200
