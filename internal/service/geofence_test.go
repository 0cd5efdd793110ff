package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/caffeine-dev-rafly/cookie-tms/internal/domain"
	"github.com/caffeine-dev-rafly/cookie-tms/internal/service"
	mock_service "github.com/caffeine-dev-rafly/cookie-tms/internal/service/mocks"
	"github.com/caffeine-dev-rafly/cookie-tms/internal/traccar"
	"github.com/caffeine-dev-rafly/cookie-tms/pkg/e"
)

func ptr[T any](v T) *T { return &v }

func circlePlace() *domain.Place {
	return &domain.Place{
		ID:             uuid.New(),
		OrganizationID: uuid.New(),
		Kind:           domain.PlaceOrigin,
		Name:           "Depot A",
		Lat:            ptr(-6.2),
		Lng:            ptr(106.8),
		RadiusM:        200,
		GeofenceType:   domain.GeofenceCircle,
	}
}

func TestSyncPlace_CreatesWhenUnbound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	places := mock_service.NewMockPlaceStore(ctrl)
	vehicles := mock_service.NewMockOrgDeviceLister(ctrl)
	provider := mock_service.NewMockProviderGeofences(ctrl)

	place := circlePlace()

	provider.EXPECT().
		CreateGeofence(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, g traccar.GeofenceRequest) (int64, error) {
			if g.Area != "CIRCLE(-6.2 106.8, 200)" {
				t.Errorf("area = %q", g.Area)
			}
			return int64(99), nil
		})
	places.EXPECT().SetProviderGeofenceID(gomock.Any(), place.ID, int64(99)).Return(nil)
	vehicles.EXPECT().DeviceIDsByOrganization(gomock.Any(), place.OrganizationID).Return(nil, nil)

	svc := service.NewGeofenceService(places, vehicles, provider, newTestLogger())

	res := svc.SyncPlace(context.Background(), place)
	if res.Status != "success" {
		t.Fatalf("status = %s (%s), want success", res.Status, res.Reason)
	}
	if res.GeofenceID != 99 {
		t.Fatalf("geofence id = %d, want 99", res.GeofenceID)
	}
	if place.ProviderGeofenceID == nil || *place.ProviderGeofenceID != 99 {
		t.Fatalf("binding not recorded on place")
	}
}

func TestSyncPlace_SelfHealsOnProvider404(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	places := mock_service.NewMockPlaceStore(ctrl)
	vehicles := mock_service.NewMockOrgDeviceLister(ctrl)
	provider := mock_service.NewMockProviderGeofences(ctrl)

	place := circlePlace()
	place.ProviderGeofenceID = ptr(int64(50))

	provider.EXPECT().
		UpdateGeofence(gomock.Any(), int64(50), gomock.Any()).
		Return(fmt.Errorf("geofence 50: %w", e.ErrNotFound))
	provider.EXPECT().CreateGeofence(gomock.Any(), gomock.Any()).Return(int64(51), nil)
	places.EXPECT().SetProviderGeofenceID(gomock.Any(), place.ID, int64(51)).Return(nil)
	vehicles.EXPECT().DeviceIDsByOrganization(gomock.Any(), place.OrganizationID).Return(nil, nil)

	svc := service.NewGeofenceService(places, vehicles, provider, newTestLogger())

	res := svc.SyncPlace(context.Background(), place)
	if res.Status != "success" {
		t.Fatalf("status = %s (%s), want success", res.Status, res.Reason)
	}
	if *place.ProviderGeofenceID != 51 {
		t.Fatalf("binding = %d, want rebound to 51", *place.ProviderGeofenceID)
	}
}

func TestSyncPlace_ProviderDownDegrades(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	places := mock_service.NewMockPlaceStore(ctrl)
	vehicles := mock_service.NewMockOrgDeviceLister(ctrl)
	provider := mock_service.NewMockProviderGeofences(ctrl)

	place := circlePlace()

	provider.EXPECT().
		CreateGeofence(gomock.Any(), gomock.Any()).
		Return(int64(0), fmt.Errorf("traccar POST /api/geofences: %w", e.ErrUpstreamUnavailable))

	svc := service.NewGeofenceService(places, vehicles, provider, newTestLogger())

	res := svc.SyncPlace(context.Background(), place)
	if res.Status != "failed" {
		t.Fatalf("status = %s, want failed", res.Status)
	}
}

func TestSyncPlace_NoCoordinatesSkipped(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := service.NewGeofenceService(
		mock_service.NewMockPlaceStore(ctrl),
		mock_service.NewMockOrgDeviceLister(ctrl),
		mock_service.NewMockProviderGeofences(ctrl),
		newTestLogger(),
	)

	place := circlePlace()
	place.Lat, place.Lng = nil, nil

	res := svc.SyncPlace(context.Background(), place)
	if res.Status != "skipped" {
		t.Fatalf("status = %s, want skipped", res.Status)
	}
}

func TestSyncPlace_LinksOnlyMissingDevices(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	places := mock_service.NewMockPlaceStore(ctrl)
	vehicles := mock_service.NewMockOrgDeviceLister(ctrl)
	provider := mock_service.NewMockProviderGeofences(ctrl)

	place := circlePlace()
	place.ProviderGeofenceID = ptr(int64(70))

	provider.EXPECT().UpdateGeofence(gomock.Any(), int64(70), gomock.Any()).Return(nil)
	vehicles.EXPECT().
		DeviceIDsByOrganization(gomock.Any(), place.OrganizationID).
		Return([]string{"dev-a", "dev-b"}, nil)
	provider.EXPECT().Devices(gomock.Any()).Return([]traccar.Device{
		{ID: 1, UniqueID: "dev-a"},
		{ID: 2, UniqueID: "dev-b"},
		{ID: 3, UniqueID: "other-org"},
	}, nil)
	provider.EXPECT().GeofenceDeviceIDs(gomock.Any(), int64(70)).Return(map[int64]bool{1: true}, nil)
	provider.EXPECT().LinkDeviceToGeofence(gomock.Any(), int64(2), int64(70)).Return(nil)

	svc := service.NewGeofenceService(places, vehicles, provider, newTestLogger())

	res := svc.SyncPlace(context.Background(), place)
	if res.Status != "success" {
		t.Fatalf("status = %s (%s)", res.Status, res.Reason)
	}
	if res.Linked != 1 {
		t.Fatalf("linked = %d, want 1", res.Linked)
	}
}
