package postgres

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/caffeine-dev-rafly/cookie-tms/internal/domain"
	"github.com/caffeine-dev-rafly/cookie-tms/pkg/e"
)

type PlaceRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewPlaceRepo(pool *pgxpool.Pool, logger *slog.Logger) *PlaceRepo {
	return &PlaceRepo{pool: pool, logger: logger}
}

const placeColumns = `
	id, organization_id, kind, name, address,
	lat, lng, radius_m, geofence_type,
	bounds_north, bounds_south, bounds_east, bounds_west,
	provider_geofence_id, created_at
`

func scanPlace(row pgx.Row) (*domain.Place, error) {
	var p domain.Place
	var north, south, east, west *float64
	err := row.Scan(
		&p.ID, &p.OrganizationID, &p.Kind, &p.Name, &p.Address,
		&p.Lat, &p.Lng, &p.RadiusM, &p.GeofenceType,
		&north, &south, &east, &west,
		&p.ProviderGeofenceID, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if north != nil && south != nil && east != nil && west != nil {
		p.Bounds = &domain.Bounds{North: *north, South: *south, East: *east, West: *west}
	}
	return &p, nil
}

func (p *PlaceRepo) Save(ctx context.Context, place *domain.Place) error {
	const op = "postgres.Place.Save"

	if place.ID == uuid.Nil {
		place.ID = uuid.New()
	}
	if place.CreatedAt.IsZero() {
		place.CreatedAt = time.Now().UTC()
	}
	if place.RadiusM == 0 {
		place.RadiusM = domain.DefaultPlaceRadiusM
	}
	if place.GeofenceType == "" {
		place.GeofenceType = domain.GeofenceCircle
	}

	var north, south, east, west *float64
	if place.Bounds != nil {
		north, south = &place.Bounds.North, &place.Bounds.South
		east, west = &place.Bounds.East, &place.Bounds.West
	}

	query := `
		INSERT INTO places (` + placeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (id) DO UPDATE SET
			kind = EXCLUDED.kind, name = EXCLUDED.name, address = EXCLUDED.address,
			lat = EXCLUDED.lat, lng = EXCLUDED.lng, radius_m = EXCLUDED.radius_m,
			geofence_type = EXCLUDED.geofence_type,
			bounds_north = EXCLUDED.bounds_north, bounds_south = EXCLUDED.bounds_south,
			bounds_east = EXCLUDED.bounds_east, bounds_west = EXCLUDED.bounds_west
	`
	_, err := p.pool.Exec(ctx, query,
		place.ID, place.OrganizationID, place.Kind, place.Name, place.Address,
		place.Lat, place.Lng, place.RadiusM, place.GeofenceType,
		north, south, east, west,
		place.ProviderGeofenceID, place.CreatedAt,
	)
	if err != nil {
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (p *PlaceRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Place, error) {
	const op = "postgres.Place.Get"

	query := `SELECT ` + placeColumns + ` FROM places WHERE id = $1`
	place, err := scanPlace(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return place, nil
}

// SetProviderGeofenceID persists only the provider binding; the registry
// calls this after a create so a later save cannot race the id away.
func (p *PlaceRepo) SetProviderGeofenceID(ctx context.Context, id uuid.UUID, geofenceID int64) error {
	const op = "postgres.Place.SetProviderGeofenceID"

	_, err := p.pool.Exec(ctx, `UPDATE places SET provider_geofence_id = $2 WHERE id = $1`, id, geofenceID)
	if err != nil {
		return e.WrapError(ctx, op, err)
	}
	return nil
}

// FindOriginByGeofenceID resolves a provider geofence id to an ORIGIN place.
// Nil when the geofence is unknown or bound to a customer site.
func (p *PlaceRepo) FindOriginByGeofenceID(ctx context.Context, geofenceID int64) (*domain.Place, error) {
	const op = "postgres.Place.FindOriginByGeofenceID"

	query := `SELECT ` + placeColumns + ` FROM places WHERE provider_geofence_id = $1 AND kind = 'ORIGIN'`
	place, err := scanPlace(p.pool.QueryRow(ctx, query, geofenceID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, e.WrapError(ctx, op, err)
	}
	return place, nil
}

// ProviderGeofenceIDsByOrganization lists every synced geofence of the org,
// origins and customer sites alike.
func (p *PlaceRepo) ProviderGeofenceIDsByOrganization(ctx context.Context, orgID uuid.UUID) ([]int64, error) {
	const op = "postgres.Place.ProviderGeofenceIDsByOrganization"

	query := `SELECT provider_geofence_id FROM places WHERE organization_id = $1 AND provider_geofence_id IS NOT NULL`
	rows, err := p.pool.Query(ctx, query, orgID)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	ids := make([]int64, 0, 8)
	for rows.Next() {
		var id int64
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
