package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/caffeine-dev-rafly/cookie-tms/internal/domain"
	"github.com/caffeine-dev-rafly/cookie-tms/pkg/e"
)

type VehicleRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewVehicleRepo(pool *pgxpool.Pool, logger *slog.Logger) *VehicleRepo {
	return &VehicleRepo{pool: pool, logger: logger}
}

const vehicleColumns = `
	id, organization_id, license_plate, vehicle_type, device_id,
	last_lat, last_lng, last_heading, last_speed_kmh, last_ignition, odometer_km,
	device_status, device_status_changed_at, stopped_since, last_gps_sync, created_at
`

func scanVehicle(row pgx.Row) (*domain.Vehicle, error) {
	var v domain.Vehicle
	err := row.Scan(
		&v.ID, &v.OrganizationID, &v.LicensePlate, &v.VehicleType, &v.DeviceID,
		&v.LastLat, &v.LastLng, &v.LastHeading, &v.LastSpeedKmh, &v.LastIgnition, &v.OdometerKm,
		&v.DeviceStatus, &v.DeviceStatusChangedAt, &v.StoppedSince, &v.LastGPSSync, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// VehicleTx groups every write the state machine performs while it holds the
// vehicle row lock. All writes commit or roll back together.
type VehicleTx struct {
	tx pgx.Tx
}

// ApplyByDeviceID is the single-writer discipline for one vehicle: the row is
// locked FOR UPDATE for the duration of fn, so concurrent samples for the
// same vehicle serialize while other vehicles proceed in parallel. The
// vehicle row is persisted after fn returns nil.
func (p *VehicleRepo) ApplyByDeviceID(ctx context.Context, deviceID string, fn func(ctx context.Context, w domain.VehicleWriter, v *domain.Vehicle) error) error {
	const op = "postgres.Vehicle.ApplyByDeviceID"

	if deviceID == "" {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return e.WrapError(ctx, op, err)
	}
	defer tx.Rollback(ctx)

	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE device_id = $1 FOR UPDATE`
	v, err := scanVehicle(tx.QueryRow(ctx, query, deviceID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return fmt.Errorf("%s: device %s: %w", op, deviceID, e.ErrUnknownDevice)
		}
		return e.WrapError(ctx, op, err)
	}

	vtx := &VehicleTx{tx: tx}
	if err := fn(ctx, vtx, v); err != nil {
		return err
	}

	if err := vtx.saveVehicle(ctx, v); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (t *VehicleTx) saveVehicle(ctx context.Context, v *domain.Vehicle) error {
	const op = "postgres.Vehicle.save"

	query := `
		UPDATE vehicles SET
			last_lat = $2, last_lng = $3, last_heading = $4, last_speed_kmh = $5,
			last_ignition = $6, odometer_km = $7, device_status = $8,
			device_status_changed_at = $9, stopped_since = $10, last_gps_sync = $11
		WHERE id = $1
	`
	_, err := t.tx.Exec(ctx, query,
		v.ID,
		v.LastLat, v.LastLng, v.LastHeading, v.LastSpeedKmh,
		v.LastIgnition, v.OdometerKm, v.DeviceStatus,
		v.DeviceStatusChangedAt, v.StoppedSince, v.LastGPSSync,
	)
	if err != nil {
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (t *VehicleTx) AppendPosition(ctx context.Context, pos *domain.VehiclePosition) error {
	const op = "postgres.Vehicle.AppendPosition"

	if pos.ID == uuid.Nil {
		pos.ID = uuid.New()
	}
	query := `
		INSERT INTO vehicle_positions (id, vehicle_id, lat, lng, speed_kmh, heading, ignition, observed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := t.tx.Exec(ctx, query,
		pos.ID, pos.VehicleID, pos.Lat, pos.Lng, pos.SpeedKmh, pos.Heading, pos.Ignition, pos.ObservedAt,
	)
	if err != nil {
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (t *VehicleTx) AppendDeviceLog(ctx context.Context, log *domain.DeviceLog) error {
	const op = "postgres.Vehicle.AppendDeviceLog"

	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now().UTC()
	}
	query := `
		INSERT INTO device_logs (id, vehicle_id, status, event_time, message, payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := t.tx.Exec(ctx, query,
		log.ID, log.VehicleID, log.Status, log.EventTime, log.Message, log.Payload, log.CreatedAt,
	)
	if err != nil {
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (t *VehicleTx) InsertEvent(ctx context.Context, ev *domain.VehicleEvent) error {
	const op = "postgres.Vehicle.InsertEvent"

	if ev.ID == uuid.Nil {
		ev.ID = uuid.New()
	}
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = time.Now().UTC()
	}
	query := `
		INSERT INTO vehicle_events (id, vehicle_id, event_type, start_time, end_time, duration_minutes, lat, lng, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := t.tx.Exec(ctx, query,
		ev.ID, ev.VehicleID, ev.EventType, ev.StartTime, ev.EndTime, ev.DurationMinutes, ev.Lat, ev.Lng, ev.CreatedAt,
	)
	if err != nil {
		return e.WrapError(ctx, op, err)
	}
	return nil
}

// CloseOpenOfflineEvent reconciles the latest provisional OFFLINE event
// (end_time still equal to start_time) once the device is back online.
func (t *VehicleTx) CloseOpenOfflineEvent(ctx context.Context, vehicleID uuid.UUID, end time.Time) error {
	const op = "postgres.Vehicle.CloseOpenOfflineEvent"

	query := `
		UPDATE vehicle_events SET
			end_time = $2,
			duration_minutes = GREATEST(0, CEIL(EXTRACT(EPOCH FROM ($2 - start_time)) / 60))::int
		WHERE id = (
			SELECT id FROM vehicle_events
			WHERE vehicle_id = $1 AND event_type = 'OFFLINE' AND end_time = start_time
			ORDER BY start_time DESC
			LIMIT 1
		)
	`
	_, err := t.tx.Exec(ctx, query, vehicleID, end)
	if err != nil {
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (p *VehicleRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Vehicle, error) {
	const op = "postgres.Vehicle.Get"

	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`
	v, err := scanVehicle(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return v, nil
}

func (p *VehicleRepo) GetByDeviceID(ctx context.Context, deviceID string) (*domain.Vehicle, error) {
	const op = "postgres.Vehicle.GetByDeviceID"

	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE device_id = $1`
	v, err := scanVehicle(p.pool.QueryRow(ctx, query, deviceID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("%s: device %s: %w", op, deviceID, e.ErrUnknownDevice)
		}
		return nil, e.WrapError(ctx, op, err)
	}
	return v, nil
}

func (p *VehicleRepo) ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]*domain.Vehicle, error) {
	const op = "postgres.Vehicle.ListByOrganization"

	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE organization_id = $1 ORDER BY license_plate`
	rows, err := p.pool.Query(ctx, query, orgID)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	vehicles := make([]*domain.Vehicle, 0, 16)
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		vehicles = append(vehicles, v)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return vehicles, nil
}

// DeviceIDsByOrganization returns the provider unique ids of the org fleet,
// skipping vehicles without a bound device.
func (p *VehicleRepo) DeviceIDsByOrganization(ctx context.Context, orgID uuid.UUID) ([]string, error) {
	const op = "postgres.Vehicle.DeviceIDsByOrganization"

	query := `SELECT device_id FROM vehicles WHERE organization_id = $1 AND device_id <> ''`
	rows, err := p.pool.Query(ctx, query, orgID)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	ids := make([]string, 0, 16)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return ids, nil
}

// HistoryByDate returns the playback positions for one calendar day (UTC).
func (p *VehicleRepo) HistoryByDate(ctx context.Context, vehicleID uuid.UUID, day time.Time) ([]domain.VehiclePosition, error) {
	const op = "postgres.Vehicle.HistoryByDate"

	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	query := `
		SELECT id, vehicle_id, lat, lng, speed_kmh, heading, ignition, observed_at
		FROM vehicle_positions
		WHERE vehicle_id = $1 AND observed_at >= $2 AND observed_at < $3
		ORDER BY observed_at
	`
	rows, err := p.pool.Query(ctx, query, vehicleID, start, end)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	positions := make([]domain.VehiclePosition, 0, 64)
	for rows.Next() {
		var pos domain.VehiclePosition
		if err := rows.Scan(&pos.ID, &pos.VehicleID, &pos.Lat, &pos.Lng, &pos.SpeedKmh, &pos.Heading, &pos.Ignition, &pos.ObservedAt); err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		positions = append(positions, pos)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return positions, nil
}

// OpenEpisodes feeds the alerts list: stop episodes open past stopAfter and
// vehicles whose last sync is older than offlineAfter.
func (p *VehicleRepo) OpenEpisodes(ctx context.Context, orgID uuid.UUID, now time.Time, stopAfter, offlineAfter time.Duration) ([]domain.OpenEpisode, error) {
	const op = "postgres.Vehicle.OpenEpisodes"

	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE organization_id = $1`
	rows, err := p.pool.Query(ctx, query, orgID)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	episodes := make([]domain.OpenEpisode, 0, 8)
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		if v.StoppedSince != nil && now.Sub(*v.StoppedSince) >= stopAfter {
			episodes = append(episodes, domain.OpenEpisode{
				VehicleID:       v.ID,
				LicensePlate:    v.LicensePlate,
				AlertType:       domain.AlertVehicleStop,
				Since:           *v.StoppedSince,
				DurationMinutes: int(now.Sub(*v.StoppedSince).Minutes()),
			})
		}
		var offlineSince *time.Time
		if v.DeviceStatus == domain.DeviceOffline && v.DeviceStatusChangedAt != nil {
			offlineSince = v.DeviceStatusChangedAt
		} else if v.DeviceStatus != domain.DeviceOffline && v.LastGPSSync != nil {
			offlineSince = v.LastGPSSync
		}
		if offlineSince != nil && now.Sub(*offlineSince) >= offlineAfter {
			episodes = append(episodes, domain.OpenEpisode{
				VehicleID:       v.ID,
				LicensePlate:    v.LicensePlate,
				AlertType:       domain.AlertVehicleOffline,
				Since:           *offlineSince,
				DurationMinutes: int(now.Sub(*offlineSince).Minutes()),
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return episodes, nil
}
