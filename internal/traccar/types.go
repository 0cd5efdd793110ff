package traccar

import "time"

// Device is one row of GET /api/devices.
type Device struct {
	ID         int64     `json:"id"`
	UniqueID   string    `json:"uniqueId"`
	Name       string    `json:"name"`
	Status     string    `json:"status"`
	LastUpdate time.Time `json:"lastUpdate"`
	PositionID int64     `json:"positionId"`
}

// Position is one row of GET /api/positions. Pointer fields distinguish
// "absent" from zero so the normalizer can fall back per field.
type Position struct {
	ID         int64              `json:"id"`
	DeviceID   int64              `json:"deviceId"`
	Latitude   *float64           `json:"latitude"`
	Longitude  *float64           `json:"longitude"`
	SpeedKnots *float64           `json:"speed"`
	Course     *float64           `json:"course"`
	FixTime    *time.Time         `json:"fixTime"`
	Attributes PositionAttributes `json:"attributes"`
}

type PositionAttributes struct {
	Ignition       *bool    `json:"ignition"`
	TotalDistanceM *float64 `json:"totalDistance"`
}

// GeofenceRequest is the body for geofence create/update calls. Area is a
// well-known-text string, see area.go.
type GeofenceRequest struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Area        string `json:"area"`
}

type geofenceResponse struct {
	ID int64 `json:"id"`
}

type permission struct {
	DeviceID   int64 `json:"deviceId"`
	GeofenceID int64 `json:"geofenceId"`
}
