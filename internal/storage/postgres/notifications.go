package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/caffeine-dev-rafly/cookie-tms/internal/domain"
	"github.com/caffeine-dev-rafly/cookie-tms/pkg/e"
)

type NotificationRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewNotificationRepo(pool *pgxpool.Pool, logger *slog.Logger) *NotificationRepo {
	return &NotificationRepo{pool: pool, logger: logger}
}

func (p *NotificationRepo) Exists(ctx context.Context, userID uuid.UUID, alertKey string) (bool, error) {
	const op = "postgres.Notification.Exists"

	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM notifications WHERE user_id = $1 AND alert_key = $2)`
	if err := p.pool.QueryRow(ctx, query, userID, alertKey).Scan(&exists); err != nil {
		return false, e.WrapError(ctx, op, err)
	}
	return exists, nil
}

// Insert relies on the unique (user_id, alert_key) index as the last line of
// dedup; a duplicate surfaces as e.ErrUniqueViolation for the caller to
// treat as already-notified.
func (p *NotificationRepo) Insert(ctx context.Context, n *domain.Notification) error {
	const op = "postgres.Notification.Insert"

	if n == nil || n.UserID == uuid.Nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO notifications (id, user_id, message, category, reference_id, alert_key, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := p.pool.Exec(ctx, query,
		n.ID, n.UserID, n.Message, n.Category, n.ReferenceID, n.AlertKey, n.IsRead, n.CreatedAt,
	)
	if err != nil {
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (p *NotificationRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Notification, error) {
	const op = "postgres.Notification.ListByUser"

	if limit <= 0 || limit > 200 {
		limit = 50
	}
	query := `
		SELECT id, user_id, message, category, reference_id, alert_key, is_read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := p.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	list := make([]domain.Notification, 0, limit)
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Message, &n.Category, &n.ReferenceID, &n.AlertKey, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		list = append(list, n)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return list, nil
}
