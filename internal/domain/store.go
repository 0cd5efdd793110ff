package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// VehicleWriter is the set of writes the state machine may perform while the
// vehicle row lock is held. Implementations commit all of them atomically
// with the vehicle update itself.
type VehicleWriter interface {
	AppendPosition(ctx context.Context, pos *VehiclePosition) error
	AppendDeviceLog(ctx context.Context, log *DeviceLog) error
	InsertEvent(ctx context.Context, ev *VehicleEvent) error
	CloseOpenOfflineEvent(ctx context.Context, vehicleID uuid.UUID, end time.Time) error
}
