package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/caffeine-dev-rafly/cookie-tms/internal/domain"
	"github.com/caffeine-dev-rafly/cookie-tms/internal/traccar"
	"github.com/caffeine-dev-rafly/cookie-tms/pkg/e"
)

type PlaceStore interface {
	Save(ctx context.Context, place *domain.Place) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Place, error)
	SetProviderGeofenceID(ctx context.Context, id uuid.UUID, geofenceID int64) error
	FindOriginByGeofenceID(ctx context.Context, geofenceID int64) (*domain.Place, error)
	ProviderGeofenceIDsByOrganization(ctx context.Context, orgID uuid.UUID) ([]int64, error)
}

type ProviderGeofences interface {
	Devices(ctx context.Context) ([]traccar.Device, error)
	CreateGeofence(ctx context.Context, g traccar.GeofenceRequest) (int64, error)
	UpdateGeofence(ctx context.Context, id int64, g traccar.GeofenceRequest) error
	GeofenceDeviceIDs(ctx context.Context, geofenceID int64) (map[int64]bool, error)
	LinkDeviceToGeofence(ctx context.Context, deviceID, geofenceID int64) error
}

type OrgDeviceLister interface {
	DeviceIDsByOrganization(ctx context.Context, orgID uuid.UUID) ([]string, error)
}

// GeofenceService keeps provider geofences mirroring local places. Provider
// failures degrade to a "failed" result; the local row is already saved and
// the next sync retries.
type GeofenceService struct {
	places   PlaceStore
	vehicles OrgDeviceLister
	provider ProviderGeofences
	logger   *slog.Logger
}

func NewGeofenceService(places PlaceStore, vehicles OrgDeviceLister, provider ProviderGeofences, logger *slog.Logger) *GeofenceService {
	return &GeofenceService{
		places:   places,
		vehicles: vehicles,
		provider: provider,
		logger:   logger,
	}
}

// SavePlace persists the place first, then attempts the provider sync. The
// sync result rides along with the saved place so the caller sees both.
func (g *GeofenceService) SavePlace(ctx context.Context, orgID uuid.UUID, req domain.SavePlaceRequest) (*domain.Place, *domain.GeofenceSyncResult, error) {
	const op = "service.Geofence.SavePlace"

	place := &domain.Place{
		OrganizationID: orgID,
		Kind:           req.Kind,
		Name:           req.Name,
		Address:        req.Address,
		Lat:            req.Lat,
		Lng:            req.Lng,
		RadiusM:        req.RadiusM,
		GeofenceType:   req.GeofenceType,
		Bounds:         req.Bounds,
	}
	if req.ID != nil {
		existing, err := g.places.Get(ctx, *req.ID)
		if err != nil && !errors.Is(err, e.ErrNotFound) {
			return nil, nil, fmt.Errorf("%s: %w", op, err)
		}
		place.ID = *req.ID
		if existing != nil {
			place.ProviderGeofenceID = existing.ProviderGeofenceID
			place.CreatedAt = existing.CreatedAt
		}
	}

	if err := g.places.Save(ctx, place); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	result := g.SyncPlace(ctx, place)
	return place, result, nil
}

// SyncPlace pushes one place to the provider: update when a binding exists,
// create otherwise. A 404 on update means the provider lost the geofence, so
// it is recreated and rebound. Never returns an error; the result captures
// failure.
func (g *GeofenceService) SyncPlace(ctx context.Context, place *domain.Place) *domain.GeofenceSyncResult {
	area, ok := g.buildArea(place)
	if !ok {
		return &domain.GeofenceSyncResult{Status: "skipped", Reason: "no usable coordinates"}
	}

	req := traccar.GeofenceRequest{
		Name:        place.Name,
		Description: string(place.Kind) + ": " + place.Address,
		Area:        area,
	}

	geofenceID, err := g.pushGeofence(ctx, place, req)
	if err != nil {
		g.logger.Warn("geofence sync failed",
			slog.String("place_id", place.ID.String()),
			slog.Any("error", err),
		)
		return &domain.GeofenceSyncResult{Status: "failed", Reason: err.Error()}
	}

	if place.ProviderGeofenceID == nil || *place.ProviderGeofenceID != geofenceID {
		if err := g.places.SetProviderGeofenceID(ctx, place.ID, geofenceID); err != nil {
			g.logger.Error("geofence binding persist failed",
				slog.String("place_id", place.ID.String()),
				slog.Int64("geofence_id", geofenceID),
				slog.Any("error", err),
			)
			return &domain.GeofenceSyncResult{Status: "error", Reason: err.Error(), GeofenceID: geofenceID}
		}
		place.ProviderGeofenceID = &geofenceID
	}

	linked, err := g.linkOrgDevices(ctx, place.OrganizationID, geofenceID)
	if err != nil {
		g.logger.Warn("geofence device linking incomplete",
			slog.Int64("geofence_id", geofenceID),
			slog.Any("error", err),
		)
	}

	return &domain.GeofenceSyncResult{Status: "success", GeofenceID: geofenceID, Linked: linked}
}

func (g *GeofenceService) pushGeofence(ctx context.Context, place *domain.Place, req traccar.GeofenceRequest) (int64, error) {
	if place.ProviderGeofenceID != nil {
		err := g.provider.UpdateGeofence(ctx, *place.ProviderGeofenceID, req)
		if err == nil {
			return *place.ProviderGeofenceID, nil
		}
		if !errors.Is(err, e.ErrNotFound) {
			return 0, err
		}
		// provider lost it, fall through and recreate
	}
	req.ID = 0
	return g.provider.CreateGeofence(ctx, req)
}

func (g *GeofenceService) buildArea(place *domain.Place) (string, bool) {
	if place.GeofenceType == domain.GeofenceRectangle && place.Bounds != nil {
		return traccar.RectangleArea(*place.Bounds)
	}
	if place.Lat == nil || place.Lng == nil {
		return "", false
	}
	radius := place.RadiusM
	if radius <= 0 {
		radius = domain.DefaultPlaceRadiusM
	}
	return traccar.CircleArea(*place.Lat, *place.Lng, radius), true
}

// linkOrgDevices grants the organization's devices visibility of the
// geofence, posting only the missing permissions.
func (g *GeofenceService) linkOrgDevices(ctx context.Context, orgID uuid.UUID, geofenceID int64) (int, error) {
	uniqueIDs, err := g.vehicles.DeviceIDsByOrganization(ctx, orgID)
	if err != nil {
		return 0, err
	}
	if len(uniqueIDs) == 0 {
		return 0, nil
	}

	wanted := make(map[string]bool, len(uniqueIDs))
	for _, id := range uniqueIDs {
		wanted[id] = true
	}

	devices, err := g.provider.Devices(ctx)
	if err != nil {
		return 0, err
	}

	existing, err := g.provider.GeofenceDeviceIDs(ctx, geofenceID)
	if err != nil {
		return 0, err
	}

	linked := 0
	for _, d := range devices {
		if !wanted[d.UniqueID] || existing[d.ID] {
			continue
		}
		if err := g.provider.LinkDeviceToGeofence(ctx, d.ID, geofenceID); err != nil {
			return linked, err
		}
		linked++
	}
	return linked, nil
}

// GetPlace exposes the place read for the HTTP surface.
func (g *GeofenceService) GetPlace(ctx context.Context, id uuid.UUID) (*domain.Place, error) {
	return g.places.Get(ctx, id)
}

// SyncVehiclePermissions re-links the organization's devices to every synced
// geofence. Run after a vehicle is added so its device sees existing fences.
func (g *GeofenceService) SyncVehiclePermissions(ctx context.Context, orgID uuid.UUID) (int, error) {
	const op = "service.Geofence.SyncVehiclePermissions"

	geofenceIDs, err := g.places.ProviderGeofenceIDsByOrganization(ctx, orgID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	total := 0
	for _, id := range geofenceIDs {
		linked, err := g.linkOrgDevices(ctx, orgID, id)
		total += linked
		if err != nil {
			return total, fmt.Errorf("%s: geofence %d: %w", op, id, err)
		}
	}
	return total, nil
}
