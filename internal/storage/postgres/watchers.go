package postgres

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/caffeine-dev-rafly/cookie-tms/internal/domain"
	"github.com/caffeine-dev-rafly/cookie-tms/pkg/e"
)

// WatcherRepo is read-only: user administration lives outside this service,
// the dispatcher only needs the oversight members and their thresholds.
type WatcherRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewWatcherRepo(pool *pgxpool.Pool, logger *slog.Logger) *WatcherRepo {
	return &WatcherRepo{pool: pool, logger: logger}
}

func (p *WatcherRepo) ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]domain.Watcher, error) {
	const op = "postgres.Watcher.ListByOrganization"

	query := `
		SELECT id, organization_id, role, stop_alert_minutes, offline_alert_minutes
		FROM users
		WHERE organization_id = $1 AND role IN ('OWNER', 'ADMIN')
	`
	rows, err := p.pool.Query(ctx, query, orgID)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	watchers := make([]domain.Watcher, 0, 8)
	for rows.Next() {
		var w domain.Watcher
		if err := rows.Scan(&w.ID, &w.OrganizationID, &w.Role, &w.StopAlertMinutes, &w.OfflineAlertMinutes); err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		watchers = append(watchers, w)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return watchers, nil
}
