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

type TripRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewTripRepo(pool *pgxpool.Pool, logger *slog.Logger) *TripRepo {
	return &TripRepo{pool: pool, logger: logger}
}

const tripColumns = `
	id, organization_id, vehicle_id, driver_id, origin_id, status,
	destinations, completed_destinations,
	price, allowance_given, actual_fuel_cost, actual_toll_cost, other_expense,
	created_at, completed_at, settled_at
`

func scanTrip(row pgx.Row) (*domain.Trip, error) {
	var t domain.Trip
	err := row.Scan(
		&t.ID, &t.OrganizationID, &t.VehicleID, &t.DriverID, &t.OriginID, &t.Status,
		&t.Destinations, &t.CompletedDestinations,
		&t.Price, &t.AllowanceGiven, &t.ActualFuelCost, &t.ActualTollCost, &t.OtherExpense,
		&t.CreatedAt, &t.CompletedAt, &t.SettledAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create enforces the one-active-trip-per-vehicle/driver invariant inside a
// transaction: candidate active trips are locked before the check so two
// concurrent creations for the same vehicle cannot both pass.
func (p *TripRepo) Create(ctx context.Context, trip *domain.Trip) error {
	const op = "postgres.Trip.Create"

	if trip.ID == uuid.Nil {
		trip.ID = uuid.New()
	}
	if trip.Status == "" {
		trip.Status = domain.TripPlanned
	}
	if trip.CreatedAt.IsZero() {
		trip.CreatedAt = time.Now().UTC()
	}
	if trip.CompletedDestinations == nil {
		trip.CompletedDestinations = []string{}
	}

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return e.WrapError(ctx, op, err)
	}
	defer tx.Rollback(ctx)

	var count int
	lockQuery := `
		SELECT count(*) FROM (
			SELECT id FROM trips
			WHERE (vehicle_id = $1 OR driver_id = $2)
			  AND status IN ('PLANNED', 'OTW', 'ARRIVED')
			FOR UPDATE
		) active
	`
	if err := tx.QueryRow(ctx, lockQuery, trip.VehicleID, trip.DriverID).Scan(&count); err != nil {
		return e.WrapError(ctx, op, err)
	}
	if count > 0 {
		return fmt.Errorf("%s: vehicle or driver already has an active trip: %w", op, e.ErrConflict)
	}

	insert := `
		INSERT INTO trips (` + tripColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`
	_, err = tx.Exec(ctx, insert,
		trip.ID, trip.OrganizationID, trip.VehicleID, trip.DriverID, trip.OriginID, trip.Status,
		trip.Destinations, trip.CompletedDestinations,
		trip.Price, trip.AllowanceGiven, trip.ActualFuelCost, trip.ActualTollCost, trip.OtherExpense,
		trip.CreatedAt, trip.CompletedAt, trip.SettledAt,
	)
	if err != nil {
		return e.WrapError(ctx, op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (p *TripRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Trip, error) {
	const op = "postgres.Trip.Get"

	query := `SELECT ` + tripColumns + ` FROM trips WHERE id = $1`
	t, err := scanTrip(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return t, nil
}

func (p *TripRepo) ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]*domain.Trip, error) {
	const op = "postgres.Trip.ListByOrganization"

	query := `SELECT ` + tripColumns + ` FROM trips WHERE organization_id = $1 ORDER BY created_at DESC`
	rows, err := p.pool.Query(ctx, query, orgID)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	trips := make([]*domain.Trip, 0, 16)
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return trips, nil
}

// Apply runs fn with the trip row locked FOR UPDATE and persists the mutated
// trip when fn returns nil. Settlement and arrival share this path so
// concurrent requests for the same trip serialize.
func (p *TripRepo) Apply(ctx context.Context, id uuid.UUID, fn func(ctx context.Context, t *domain.Trip) error) (*domain.Trip, error) {
	const op = "postgres.Trip.Apply"

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	defer tx.Rollback(ctx)

	query := `SELECT ` + tripColumns + ` FROM trips WHERE id = $1 FOR UPDATE`
	t, err := scanTrip(tx.QueryRow(ctx, query, id))
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	if err := fn(ctx, t); err != nil {
		return nil, err
	}

	update := `
		UPDATE trips SET
			status = $2, completed_destinations = $3,
			price = $4, allowance_given = $5, actual_fuel_cost = $6,
			actual_toll_cost = $7, other_expense = $8,
			completed_at = $9, settled_at = $10
		WHERE id = $1
	`
	_, err = tx.Exec(ctx, update,
		t.ID, t.Status, t.CompletedDestinations,
		t.Price, t.AllowanceGiven, t.ActualFuelCost,
		t.ActualTollCost, t.OtherExpense,
		t.CompletedAt, t.SettledAt,
	)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return t, nil
}

// OldestActiveForVehicleOrigin finds the single trip a geofence-enter event
// may auto-arrive: the oldest active trip for the vehicle bound to that
// origin. Nil when no trip matches.
func (p *TripRepo) OldestActiveForVehicleOrigin(ctx context.Context, vehicleID, originID uuid.UUID) (*domain.Trip, error) {
	const op = "postgres.Trip.OldestActiveForVehicleOrigin"

	query := `
		SELECT ` + tripColumns + ` FROM trips
		WHERE vehicle_id = $1 AND origin_id = $2
		  AND status IN ('PLANNED', 'OTW', 'ARRIVED')
		ORDER BY created_at
		LIMIT 1
	`
	t, err := scanTrip(p.pool.QueryRow(ctx, query, vehicleID, originID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, e.WrapError(ctx, op, err)
	}
	return t, nil
}
