package domain

import (
	"time"

	"github.com/google/uuid"
)

type AlertType string

const (
	AlertVehicleStop    AlertType = "VEHICLE_STOP"
	AlertVehicleOffline AlertType = "VEHICLE_OFFLINE"
	AlertGeofenceEnter  AlertType = "GEOFENCE_ENTER"
	AlertGeofenceExit   AlertType = "GEOFENCE_EXIT"
	AlertTripCompleted  AlertType = "TRIP_COMPLETED"
)

// Notification dedup rests on the (UserID, AlertKey) pair being unique.
type Notification struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Message     string    `json:"message"`
	Category    AlertType `json:"category"`
	ReferenceID string    `json:"reference_id"`
	AlertKey    string    `json:"alert_key"`
	IsRead      bool      `json:"is_read"`
	CreatedAt   time.Time `json:"created_at"`
}

type WatcherRole string

const (
	RoleOwner WatcherRole = "OWNER"
	RoleAdmin WatcherRole = "ADMIN"
)

// Watcher is an organization member with an oversight role. Threshold values
// of zero fall back to the configured defaults.
type Watcher struct {
	ID                  uuid.UUID   `json:"id"`
	OrganizationID      uuid.UUID   `json:"organization_id"`
	Role                WatcherRole `json:"role"`
	StopAlertMinutes    int         `json:"stop_alert_minutes"`
	OfflineAlertMinutes int         `json:"offline_alert_minutes"`
}
