package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/caffeine-dev-rafly/cookie-tms/internal/domain"
	"github.com/caffeine-dev-rafly/cookie-tms/internal/service"
	mock_service "github.com/caffeine-dev-rafly/cookie-tms/internal/service/mocks"
	"github.com/caffeine-dev-rafly/cookie-tms/pkg/e"
)

// applyPassthrough wires MockTripStore.Apply to run fn against the given
// trip, mirroring what the row-locked repository does.
func applyPassthrough(trip *domain.Trip) func(context.Context, uuid.UUID, func(context.Context, *domain.Trip) error) (*domain.Trip, error) {
	return func(ctx context.Context, _ uuid.UUID, fn func(context.Context, *domain.Trip) error) (*domain.Trip, error) {
		if err := fn(ctx, trip); err != nil {
			return nil, err
		}
		return trip, nil
	}
}

func activeTrip(status domain.TripStatus) *domain.Trip {
	return &domain.Trip{
		ID:                    uuid.New(),
		OrganizationID:        uuid.New(),
		VehicleID:             uuid.New(),
		DriverID:              uuid.New(),
		Status:                status,
		Destinations:          []string{"Jakarta", "Bandung"},
		CompletedDestinations: []string{},
	}
}

func TestMarkArrival_CompletesOnFullSet(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	trips := mock_service.NewMockTripStore(ctrl)
	places := mock_service.NewMockOriginResolver(ctrl)
	vehicles := mock_service.NewMockVehicleStore(ctrl)
	notifier := mock_service.NewMockTripNotifier(ctrl)

	trip := activeTrip(domain.TripOTW)
	trip.CompletedDestinations = []string{"Jakarta"}

	trips.EXPECT().Apply(gomock.Any(), trip.ID, gomock.Any()).DoAndReturn(applyPassthrough(trip))
	vehicles.EXPECT().Get(gomock.Any(), trip.VehicleID).
		Return(&domain.Vehicle{ID: trip.VehicleID, LicensePlate: "B 1 A"}, nil)
	notifier.EXPECT().
		NotifyTripCompleted(gomock.Any(), trip.OrganizationID, gomock.Any(), "B 1 A").
		Return(1, nil)

	svc := service.NewTripService(trips, places, vehicles, notifier, newTestLogger())

	got, err := svc.MarkArrival(context.Background(), trip.ID, "Bandung")
	if err != nil {
		t.Fatalf("MarkArrival: %v", err)
	}
	if got.Status != domain.TripCompleted {
		t.Fatalf("status = %s, want COMPLETED", got.Status)
	}
	if got.CompletedAt == nil {
		t.Fatalf("completed_at not stamped")
	}
}

func TestMarkArrival_DuplicateCannotCompleteEarly(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	trips := mock_service.NewMockTripStore(ctrl)

	trip := activeTrip(domain.TripOTW)
	trip.CompletedDestinations = []string{"Jakarta"}

	trips.EXPECT().Apply(gomock.Any(), trip.ID, gomock.Any()).DoAndReturn(applyPassthrough(trip))

	svc := service.NewTripService(trips, nil, nil, nil, newTestLogger())

	// second Jakarta confirmation: still one unique destination of two
	got, err := svc.MarkArrival(context.Background(), trip.ID, "Jakarta")
	if err != nil {
		t.Fatalf("MarkArrival: %v", err)
	}
	if got.Status == domain.TripCompleted {
		t.Fatalf("duplicate confirmations completed the trip")
	}
	if len(got.CompletedDestinations) != 1 {
		t.Fatalf("completed = %v, want single entry", got.CompletedDestinations)
	}
}

func TestMarkArrival_UndeclaredDestinationRejected(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	trips := mock_service.NewMockTripStore(ctrl)
	trip := activeTrip(domain.TripOTW)

	trips.EXPECT().Apply(gomock.Any(), trip.ID, gomock.Any()).DoAndReturn(applyPassthrough(trip))

	svc := service.NewTripService(trips, nil, nil, nil, newTestLogger())

	_, err := svc.MarkArrival(context.Background(), trip.ID, "Surabaya")
	if !errors.Is(err, e.ErrInvalidDestination) {
		t.Fatalf("err = %v, want ErrInvalidDestination", err)
	}
}

func TestAutoArrive_NonOriginGeofenceIsNoop(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	trips := mock_service.NewMockTripStore(ctrl)
	places := mock_service.NewMockOriginResolver(ctrl)

	places.EXPECT().FindOriginByGeofenceID(gomock.Any(), int64(42)).Return(nil, nil)
	// no trip lookups

	svc := service.NewTripService(trips, places, nil, nil, newTestLogger())

	if err := svc.AutoArrive(context.Background(), uuid.New(), 42, time.Now()); err != nil {
		t.Fatalf("AutoArrive: %v", err)
	}
}

func TestAutoArrive_NoActiveTripIsNoop(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	trips := mock_service.NewMockTripStore(ctrl)
	places := mock_service.NewMockOriginResolver(ctrl)

	origin := &domain.Place{ID: uuid.New(), Kind: domain.PlaceOrigin}
	vehicleID := uuid.New()

	places.EXPECT().FindOriginByGeofenceID(gomock.Any(), int64(7)).Return(origin, nil)
	trips.EXPECT().OldestActiveForVehicleOrigin(gomock.Any(), vehicleID, origin.ID).Return(nil, nil)

	svc := service.NewTripService(trips, places, nil, nil, newTestLogger())

	if err := svc.AutoArrive(context.Background(), vehicleID, 7, time.Now()); err != nil {
		t.Fatalf("AutoArrive: %v", err)
	}
}

func TestAutoArrive_MarksOldestActiveTrip(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	trips := mock_service.NewMockTripStore(ctrl)
	places := mock_service.NewMockOriginResolver(ctrl)

	origin := &domain.Place{ID: uuid.New(), Kind: domain.PlaceOrigin}
	trip := activeTrip(domain.TripOTW)

	places.EXPECT().FindOriginByGeofenceID(gomock.Any(), int64(7)).Return(origin, nil)
	trips.EXPECT().OldestActiveForVehicleOrigin(gomock.Any(), trip.VehicleID, origin.ID).Return(trip, nil)
	trips.EXPECT().Apply(gomock.Any(), trip.ID, gomock.Any()).DoAndReturn(applyPassthrough(trip))

	svc := service.NewTripService(trips, places, nil, nil, newTestLogger())

	if err := svc.AutoArrive(context.Background(), trip.VehicleID, 7, time.Now()); err != nil {
		t.Fatalf("AutoArrive: %v", err)
	}
	if trip.Status != domain.TripArrived {
		t.Fatalf("status = %s, want ARRIVED", trip.Status)
	}
}

func TestSettle_RequiresCompletedTrip(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	trips := mock_service.NewMockTripStore(ctrl)
	trip := activeTrip(domain.TripOTW)

	trips.EXPECT().Apply(gomock.Any(), trip.ID, gomock.Any()).DoAndReturn(applyPassthrough(trip))

	svc := service.NewTripService(trips, nil, nil, nil, newTestLogger())

	_, err := svc.Settle(context.Background(), trip.ID, domain.SettleTripRequest{AllowanceGiven: 100})
	if !errors.Is(err, e.ErrInvalidTransition) {
		t.Fatalf("err = %v, want ErrInvalidTransition", err)
	}
}

func TestSettle_FreezesFinancials(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	trips := mock_service.NewMockTripStore(ctrl)
	trip := activeTrip(domain.TripCompleted)
	trip.Status = domain.TripCompleted

	trips.EXPECT().Apply(gomock.Any(), trip.ID, gomock.Any()).DoAndReturn(applyPassthrough(trip))

	svc := service.NewTripService(trips, nil, nil, nil, newTestLogger())

	got, err := svc.Settle(context.Background(), trip.ID, domain.SettleTripRequest{
		AllowanceGiven: 500,
		ActualFuelCost: 200,
		ActualTollCost: 100,
		OtherExpense:   50,
	})
	if err != nil {
		t.Fatalf("Settle: %v", err)
	}
	if got.Status != domain.TripSettled {
		t.Fatalf("status = %s, want SETTLED", got.Status)
	}
	if got.SettledAt == nil {
		t.Fatalf("settled_at not stamped")
	}
	if got.TotalExpense() != 350 {
		t.Errorf("total expense = %d, want 350", got.TotalExpense())
	}
	if got.Balance() != 150 {
		t.Errorf("balance = %d, want 150", got.Balance())
	}
}

func TestSettle_RejectsNegativeAmounts(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	trips := mock_service.NewMockTripStore(ctrl)
	trip := activeTrip(domain.TripCompleted)
	// no Apply expectation: a negative amount must fail before any store call

	svc := service.NewTripService(trips, nil, nil, nil, newTestLogger())

	_, err := svc.Settle(context.Background(), trip.ID, domain.SettleTripRequest{
		AllowanceGiven: -100,
		ActualFuelCost: -50,
	})
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
	if trip.Status != domain.TripCompleted {
		t.Fatalf("status = %s, trip must stay COMPLETED", trip.Status)
	}
}

func TestDispatch_Transitions(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		from    domain.TripStatus
		wantErr bool
	}{
		{"planned", domain.TripPlanned, false},
		{"arrived", domain.TripArrived, false},
		{"completed", domain.TripCompleted, true},
		{"cancelled", domain.TripCancelled, true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			trips := mock_service.NewMockTripStore(ctrl)
			trip := activeTrip(tc.from)
			trip.Status = tc.from

			trips.EXPECT().Apply(gomock.Any(), trip.ID, gomock.Any()).DoAndReturn(applyPassthrough(trip))

			svc := service.NewTripService(trips, nil, nil, nil, newTestLogger())

			got, err := svc.Dispatch(context.Background(), trip.ID)
			if tc.wantErr {
				if !errors.Is(err, e.ErrInvalidTransition) {
					t.Fatalf("err = %v, want ErrInvalidTransition", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Dispatch: %v", err)
			}
			if got.Status != domain.TripOTW {
				t.Fatalf("status = %s, want OTW", got.Status)
			}
		})
	}
}
