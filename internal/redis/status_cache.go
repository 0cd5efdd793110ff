package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/caffeine-dev-rafly/cookie-tms/internal/domain"
)

// StatusCache keeps the latest computed per-vehicle snapshot so the live map
// read path does not hit Postgres on every poll. Misses return nil, nil.
type StatusCache struct {
	client *goredis.Client
	ttl    time.Duration
}

func NewStatusCache(r *Redis) *StatusCache {
	return &StatusCache{
		client: r.Client,
		ttl:    5 * time.Minute,
	}
}

func statusKey(vehicleID string) string {
	return "vehicles:status:" + vehicleID
}

func (c *StatusCache) Get(ctx context.Context, vehicleID string) (*domain.VehicleStatusView, error) {
	data, err := c.client.Get(ctx, statusKey(vehicleID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var view domain.VehicleStatusView
	if err := json.Unmarshal(data, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (c *StatusCache) Set(ctx context.Context, view *domain.VehicleStatusView) error {
	b, err := json.Marshal(view)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, statusKey(view.ID.String()), b, c.ttl).Err()
}

// AlertDedup is the cheap first gate in front of the notifications unique
// constraint. Redis is never authoritative here: Seen false just means the
// caller proceeds to the database check, and Mark happens only after a
// successful insert.
type AlertDedup struct {
	client *goredis.Client
	ttl    time.Duration
}

func NewAlertDedup(r *Redis) *AlertDedup {
	return &AlertDedup{
		client: r.Client,
		ttl:    48 * time.Hour,
	}
}

func dedupKey(userID, alertKey string) string {
	return fmt.Sprintf("alerts:sent:%s:%s", userID, alertKey)
}

func (d *AlertDedup) Seen(ctx context.Context, userID, alertKey string) (bool, error) {
	n, err := d.client.Exists(ctx, dedupKey(userID, alertKey)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (d *AlertDedup) Mark(ctx context.Context, userID, alertKey string) error {
	return d.client.Set(ctx, dedupKey(userID, alertKey), 1, d.ttl).Err()
}
