package service

//go:generate mockgen -destination=mocks/mock.go -package=mocks github.com/caffeine-dev-rafly/cookie-tms/internal/service VehicleStore,EpisodeNotifier,AutoArriver,StatusCacheWriter,NotificationStore,WatcherStore,DedupCache,TripStore,OriginResolver,TripNotifier,PlaceStore,ProviderGeofences,OrgDeviceLister

// Service bundles the application services behind one handle for wiring.
type Service struct {
	Tracker  *TrackerService
	Alerts   *AlertService
	Trips    *TripService
	Geofence *GeofenceService
	Fleet    *FleetService
}

func New(
	tracker *TrackerService,
	alerts *AlertService,
	trips *TripService,
	geofence *GeofenceService,
	fleet *FleetService,
) *Service {
	return &Service{
		Tracker:  tracker,
		Alerts:   alerts,
		Trips:    trips,
		Geofence: geofence,
		Fleet:    fleet,
	}
}
