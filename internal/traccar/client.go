package traccar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/caffeine-dev-rafly/cookie-tms/internal/config"
	"github.com/caffeine-dev-rafly/cookie-tms/pkg/e"
)

// Client talks to the Traccar HTTP API. Every call carries a bounded timeout
// through the underlying http.Client; a failed or non-2xx call surfaces as
// e.ErrUpstreamUnavailable so callers can degrade instead of blocking.
type Client struct {
	baseURL string
	user    string
	pass    string
	http    *http.Client
	logger  *slog.Logger
}

func NewClient(cfg config.TraccarConfig, logger *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		user:    cfg.User,
		pass:    cfg.Password,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

func (c *Client) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.user, c.pass)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("traccar call failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("traccar %s %s: %w", method, path, e.ErrUpstreamUnavailable)
	}
	return resp, nil
}

func (c *Client) Devices(ctx context.Context) ([]Device, error) {
	const op = "traccar.Devices"

	resp, err := c.do(ctx, http.MethodGet, "/api/devices", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: status %d: %w", op, resp.StatusCode, e.ErrUpstreamUnavailable)
	}

	var devices []Device
	if err := json.NewDecoder(resp.Body).Decode(&devices); err != nil {
		return nil, e.Wrap(op, err)
	}
	return devices, nil
}

// PositionByID fetches a single position as a secondary call after a device
// poll. Returns nil when the provider has no position for the id.
func (c *Client) PositionByID(ctx context.Context, id int64) (*Position, error) {
	const op = "traccar.PositionByID"

	resp, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/positions?id=%d", id), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: status %d: %w", op, resp.StatusCode, e.ErrUpstreamUnavailable)
	}

	var positions []Position
	if err := json.NewDecoder(resp.Body).Decode(&positions); err != nil {
		return nil, e.Wrap(op, err)
	}
	if len(positions) == 0 {
		return nil, nil
	}
	return &positions[0], nil
}

func (c *Client) CreateGeofence(ctx context.Context, g GeofenceRequest) (int64, error) {
	const op = "traccar.CreateGeofence"

	resp, err := c.do(ctx, http.MethodPost, "/api/geofences", g)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return 0, fmt.Errorf("%s: status %d: %w", op, resp.StatusCode, e.ErrUpstreamUnavailable)
	}

	var created geofenceResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return 0, e.Wrap(op, err)
	}
	return created.ID, nil
}

// UpdateGeofence returns e.ErrNotFound on a provider 404 so the registry can
// self-heal by recreating the geofence.
func (c *Client) UpdateGeofence(ctx context.Context, id int64, g GeofenceRequest) error {
	const op = "traccar.UpdateGeofence"

	g.ID = id
	resp, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/geofences/%d", id), g)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return fmt.Errorf("%s: geofence %d: %w", op, id, e.ErrNotFound)
	default:
		return fmt.Errorf("%s: status %d: %w", op, resp.StatusCode, e.ErrUpstreamUnavailable)
	}
}

// GeofenceDeviceIDs lists provider device ids already granted visibility of
// the geofence.
func (c *Client) GeofenceDeviceIDs(ctx context.Context, geofenceID int64) (map[int64]bool, error) {
	const op = "traccar.GeofenceDeviceIDs"

	resp, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/permissions?geofenceId=%d", geofenceID), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: status %d: %w", op, resp.StatusCode, e.ErrUpstreamUnavailable)
	}

	var perms []permission
	if err := json.NewDecoder(resp.Body).Decode(&perms); err != nil {
		return nil, e.Wrap(op, err)
	}

	ids := make(map[int64]bool, len(perms))
	for _, p := range perms {
		if p.DeviceID != 0 {
			ids[p.DeviceID] = true
		}
	}
	return ids, nil
}

func (c *Client) LinkDeviceToGeofence(ctx context.Context, deviceID, geofenceID int64) error {
	const op = "traccar.LinkDeviceToGeofence"

	resp, err := c.do(ctx, http.MethodPost, "/api/permissions", permission{DeviceID: deviceID, GeofenceID: geofenceID})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%s: status %d: %w", op, resp.StatusCode, e.ErrUpstreamUnavailable)
	}
	return nil
}
