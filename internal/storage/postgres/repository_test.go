//go:build integration

package postgres

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/caffeine-dev-rafly/cookie-tms/internal/domain"
	"github.com/caffeine-dev-rafly/cookie-tms/pkg/e"
)

var (
	testPool *pgxpool.Pool
	tc       testcontainers.Container
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	user := "postgres"
	pass := "postgres"
	db := "postgres"

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     user,
			"POSTGRES_PASSWORD": pass,
			"POSTGRES_DB":       db,
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(90 * time.Second),
	}

	var err error
	tc, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		fmt.Println("cannot start container:", err)
		os.Exit(1)
	}

	host, _ := tc.Host(ctx)
	mappedPort, _ := tc.MappedPort(ctx, "5432/tcp")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, pass, host, mappedPort.Port(), db)

	testPool, err = pgxpool.New(ctx, dsn)
	if err != nil {
		fmt.Println("pgxpool.New:", err)
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := testPool.Ping(ctx); err != nil {
		fmt.Println("pool.Ping:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := setupSchema(ctx, testPool); err != nil {
		fmt.Println("setupSchema:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	code := m.Run()

	testPool.Close()
	_ = tc.Terminate(ctx)
	os.Exit(code)
}

func setupSchema(ctx context.Context, pool *pgxpool.Pool) error {
	ddl := `
	CREATE TABLE IF NOT EXISTS vehicles (
		id UUID PRIMARY KEY,
		organization_id UUID NOT NULL,
		license_plate TEXT NOT NULL,
		vehicle_type TEXT NOT NULL DEFAULT '',
		device_id TEXT NOT NULL DEFAULT '',
		last_lat DOUBLE PRECISION,
		last_lng DOUBLE PRECISION,
		last_heading DOUBLE PRECISION,
		last_speed_kmh DOUBLE PRECISION NOT NULL DEFAULT 0,
		last_ignition BOOLEAN,
		odometer_km BIGINT NOT NULL DEFAULT 0,
		device_status TEXT NOT NULL DEFAULT 'UNKNOWN',
		device_status_changed_at TIMESTAMPTZ,
		stopped_since TIMESTAMPTZ,
		last_gps_sync TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE UNIQUE INDEX IF NOT EXISTS vehicles_device_id_idx ON vehicles (device_id) WHERE device_id <> '';

	CREATE TABLE IF NOT EXISTS vehicle_positions (
		id UUID PRIMARY KEY,
		vehicle_id UUID NOT NULL REFERENCES vehicles (id),
		lat DOUBLE PRECISION NOT NULL,
		lng DOUBLE PRECISION NOT NULL,
		speed_kmh DOUBLE PRECISION NOT NULL,
		heading DOUBLE PRECISION NOT NULL DEFAULT 0,
		ignition BOOLEAN NOT NULL DEFAULT false,
		observed_at TIMESTAMPTZ NOT NULL
	);
	CREATE INDEX IF NOT EXISTS vehicle_positions_vehicle_day_idx ON vehicle_positions (vehicle_id, observed_at);

	CREATE TABLE IF NOT EXISTS device_logs (
		id UUID PRIMARY KEY,
		vehicle_id UUID NOT NULL REFERENCES vehicles (id),
		status TEXT NOT NULL,
		event_time TIMESTAMPTZ NOT NULL,
		message TEXT NOT NULL DEFAULT '',
		payload JSONB,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE TABLE IF NOT EXISTS vehicle_events (
		id UUID PRIMARY KEY,
		vehicle_id UUID NOT NULL REFERENCES vehicles (id),
		event_type TEXT NOT NULL,
		start_time TIMESTAMPTZ NOT NULL,
		end_time TIMESTAMPTZ NOT NULL,
		duration_minutes INT NOT NULL DEFAULT 0,
		lat DOUBLE PRECISION,
		lng DOUBLE PRECISION,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE TABLE IF NOT EXISTS trips (
		id UUID PRIMARY KEY,
		organization_id UUID NOT NULL,
		vehicle_id UUID NOT NULL,
		driver_id UUID NOT NULL,
		origin_id UUID,
		status TEXT NOT NULL,
		destinations TEXT[] NOT NULL DEFAULT '{}',
		completed_destinations TEXT[] NOT NULL DEFAULT '{}',
		price BIGINT NOT NULL DEFAULT 0,
		allowance_given BIGINT NOT NULL DEFAULT 0,
		actual_fuel_cost BIGINT NOT NULL DEFAULT 0,
		actual_toll_cost BIGINT NOT NULL DEFAULT 0,
		other_expense BIGINT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		completed_at TIMESTAMPTZ,
		settled_at TIMESTAMPTZ
	);

	CREATE TABLE IF NOT EXISTS places (
		id UUID PRIMARY KEY,
		organization_id UUID NOT NULL,
		kind TEXT NOT NULL,
		name TEXT NOT NULL,
		address TEXT NOT NULL DEFAULT '',
		lat DOUBLE PRECISION,
		lng DOUBLE PRECISION,
		radius_m INT NOT NULL DEFAULT 200,
		geofence_type TEXT NOT NULL DEFAULT 'CIRCLE',
		bounds_north DOUBLE PRECISION,
		bounds_south DOUBLE PRECISION,
		bounds_east DOUBLE PRECISION,
		bounds_west DOUBLE PRECISION,
		provider_geofence_id BIGINT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE TABLE IF NOT EXISTS notifications (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL,
		message TEXT NOT NULL,
		category TEXT NOT NULL,
		reference_id TEXT NOT NULL DEFAULT '',
		alert_key TEXT NOT NULL,
		is_read BOOLEAN NOT NULL DEFAULT false,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (user_id, alert_key)
	);

	CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		organization_id UUID NOT NULL,
		role TEXT NOT NULL,
		stop_alert_minutes INT NOT NULL DEFAULT 0,
		offline_alert_minutes INT NOT NULL DEFAULT 0
	);
	`
	_, err := pool.Exec(ctx, ddl)
	return err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func insertVehicle(t *testing.T, deviceID string) *domain.Vehicle {
	t.Helper()
	ctx := context.Background()

	v := &domain.Vehicle{
		ID:             uuid.New(),
		OrganizationID: uuid.New(),
		LicensePlate:   "B " + deviceID,
		DeviceID:       deviceID,
		DeviceStatus:   domain.DeviceOnline,
	}
	_, err := testPool.Exec(ctx, `
		INSERT INTO vehicles (id, organization_id, license_plate, device_id, device_status)
		VALUES ($1, $2, $3, $4, $5)
	`, v.ID, v.OrganizationID, v.LicensePlate, v.DeviceID, v.DeviceStatus)
	if err != nil {
		t.Fatalf("insert vehicle: %v", err)
	}
	return v
}

func TestVehicleApplyByDeviceID_PersistsAtomically(t *testing.T) {
	ctx := context.Background()
	repo := NewVehicleRepo(testPool, discardLogger())

	v := insertVehicle(t, "itg-dev-1")
	observed := time.Now().UTC().Truncate(time.Second)

	err := repo.ApplyByDeviceID(ctx, v.DeviceID, func(ctx context.Context, w domain.VehicleWriter, got *domain.Vehicle) error {
		lat, lng := -6.2, 106.8
		got.LastLat, got.LastLng = &lat, &lng
		got.LastSpeedKmh = 33

		return w.AppendPosition(ctx, &domain.VehiclePosition{
			VehicleID:  got.ID,
			Lat:        lat,
			Lng:        lng,
			SpeedKmh:   33,
			ObservedAt: observed,
		})
	})
	if err != nil {
		t.Fatalf("ApplyByDeviceID: %v", err)
	}

	saved, err := repo.Get(ctx, v.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if saved.LastLat == nil || *saved.LastLat != -6.2 {
		t.Errorf("last_lat = %v", saved.LastLat)
	}
	if saved.LastSpeedKmh != 33 {
		t.Errorf("last_speed_kmh = %g", saved.LastSpeedKmh)
	}

	history, err := repo.HistoryByDate(ctx, v.ID, observed)
	if err != nil {
		t.Fatalf("HistoryByDate: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("history rows = %d, want 1", len(history))
	}
}

func TestVehicleApplyByDeviceID_UnknownDevice(t *testing.T) {
	repo := NewVehicleRepo(testPool, discardLogger())

	err := repo.ApplyByDeviceID(context.Background(), "no-such-device", func(ctx context.Context, w domain.VehicleWriter, v *domain.Vehicle) error {
		t.Fatal("fn must not run for unknown devices")
		return nil
	})
	if !errors.Is(err, e.ErrUnknownDevice) {
		t.Fatalf("err = %v, want ErrUnknownDevice", err)
	}
}

func TestVehicleApplyByDeviceID_RollbackOnFnError(t *testing.T) {
	ctx := context.Background()
	repo := NewVehicleRepo(testPool, discardLogger())

	v := insertVehicle(t, "itg-dev-2")
	boom := errors.New("boom")

	err := repo.ApplyByDeviceID(ctx, v.DeviceID, func(ctx context.Context, w domain.VehicleWriter, got *domain.Vehicle) error {
		got.LastSpeedKmh = 99
		if err := w.AppendPosition(ctx, &domain.VehiclePosition{
			VehicleID:  got.ID,
			ObservedAt: time.Now().UTC(),
		}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}

	saved, err := repo.Get(ctx, v.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if saved.LastSpeedKmh != 0 {
		t.Errorf("speed persisted despite rollback: %g", saved.LastSpeedKmh)
	}
}

func TestCloseOpenOfflineEvent(t *testing.T) {
	ctx := context.Background()
	repo := NewVehicleRepo(testPool, discardLogger())

	v := insertVehicle(t, "itg-dev-3")
	start := time.Now().UTC().Add(-20 * time.Minute).Truncate(time.Second)
	end := start.Add(20 * time.Minute)

	err := repo.ApplyByDeviceID(ctx, v.DeviceID, func(ctx context.Context, w domain.VehicleWriter, got *domain.Vehicle) error {
		// provisional event, then reconcile it
		if err := w.InsertEvent(ctx, &domain.VehicleEvent{
			VehicleID: got.ID,
			EventType: domain.EventOffline,
			StartTime: start,
			EndTime:   start,
		}); err != nil {
			return err
		}
		return w.CloseOpenOfflineEvent(ctx, got.ID, end)
	})
	if err != nil {
		t.Fatalf("ApplyByDeviceID: %v", err)
	}

	var gotEnd time.Time
	var duration int
	err = testPool.QueryRow(ctx, `
		SELECT end_time, duration_minutes FROM vehicle_events
		WHERE vehicle_id = $1 AND event_type = 'OFFLINE'
	`, v.ID).Scan(&gotEnd, &duration)
	if err != nil {
		t.Fatalf("query event: %v", err)
	}
	if !gotEnd.Equal(end) {
		t.Errorf("end_time = %v, want %v", gotEnd, end)
	}
	if duration != 20 {
		t.Errorf("duration = %d, want 20", duration)
	}
}

func TestTripCreate_ActiveConflict(t *testing.T) {
	ctx := context.Background()
	repo := NewTripRepo(testPool, discardLogger())

	vehicleID, driverID := uuid.New(), uuid.New()
	orgID := uuid.New()

	first := &domain.Trip{
		OrganizationID: orgID,
		VehicleID:      vehicleID,
		DriverID:       driverID,
		Destinations:   []string{"A"},
	}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("first Create: %v", err)
	}

	second := &domain.Trip{
		OrganizationID: orgID,
		VehicleID:      vehicleID,
		DriverID:       uuid.New(),
		Destinations:   []string{"B"},
	}
	if err := repo.Create(ctx, second); !errors.Is(err, e.ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict", err)
	}

	// settle the first out of the way, then the vehicle is free again
	_, err := repo.Apply(ctx, first.ID, func(ctx context.Context, tr *domain.Trip) error {
		tr.Status = domain.TripCancelled
		return nil
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if err := repo.Create(ctx, second); err != nil {
		t.Fatalf("Create after cancel: %v", err)
	}
}

func TestNotificationInsert_UniqueViolation(t *testing.T) {
	ctx := context.Background()
	repo := NewNotificationRepo(testPool, discardLogger())

	userID := uuid.New()
	n := &domain.Notification{
		UserID:   userID,
		Message:  "Vehicle B 1 A has been stopped for 7 minutes.",
		Category: domain.AlertVehicleStop,
		AlertKey: "VEHICLE_STOP:x:1",
	}
	if err := repo.Insert(ctx, n); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	dup := &domain.Notification{
		UserID:   userID,
		Message:  "duplicate",
		Category: domain.AlertVehicleStop,
		AlertKey: "VEHICLE_STOP:x:1",
	}
	if err := repo.Insert(ctx, dup); !errors.Is(err, e.ErrUniqueViolation) {
		t.Fatalf("err = %v, want ErrUniqueViolation", err)
	}

	exists, err := repo.Exists(ctx, userID, "VEHICLE_STOP:x:1")
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if !exists {
		t.Fatal("Exists = false after insert")
	}
}

func TestPlaceSaveAndOriginLookup(t *testing.T) {
	ctx := context.Background()
	repo := NewPlaceRepo(testPool, discardLogger())

	lat, lng := -6.2, 106.8
	place := &domain.Place{
		OrganizationID: uuid.New(),
		Kind:           domain.PlaceOrigin,
		Name:           "Depot Itg",
		Lat:            &lat,
		Lng:            &lng,
	}
	if err := repo.Save(ctx, place); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := repo.SetProviderGeofenceID(ctx, place.ID, 4242); err != nil {
		t.Fatalf("SetProviderGeofenceID: %v", err)
	}

	found, err := repo.FindOriginByGeofenceID(ctx, 4242)
	if err != nil {
		t.Fatalf("FindOriginByGeofenceID: %v", err)
	}
	if found == nil || found.ID != place.ID {
		t.Fatalf("origin lookup = %+v", found)
	}

	missing, err := repo.FindOriginByGeofenceID(ctx, 999999)
	if err != nil {
		t.Fatalf("FindOriginByGeofenceID miss: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for unknown geofence, got %+v", missing)
	}
}
