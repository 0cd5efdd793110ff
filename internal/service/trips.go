package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/caffeine-dev-rafly/cookie-tms/internal/domain"
	"github.com/caffeine-dev-rafly/cookie-tms/pkg/e"
)

type TripStore interface {
	Create(ctx context.Context, trip *domain.Trip) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Trip, error)
	ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]*domain.Trip, error)
	Apply(ctx context.Context, id uuid.UUID, fn func(ctx context.Context, t *domain.Trip) error) (*domain.Trip, error)
	OldestActiveForVehicleOrigin(ctx context.Context, vehicleID, originID uuid.UUID) (*domain.Trip, error)
}

type OriginResolver interface {
	FindOriginByGeofenceID(ctx context.Context, geofenceID int64) (*domain.Place, error)
}

type TripNotifier interface {
	NotifyTripCompleted(ctx context.Context, orgID uuid.UUID, trip *domain.Trip, plate string) (int, error)
}

// TripService owns the trip lifecycle. Status transitions run under the trip
// row lock; completion notifications fire after the update commits.
type TripService struct {
	trips    TripStore
	places   OriginResolver
	vehicles VehicleStore
	notifier TripNotifier
	logger   *slog.Logger
	now      func() time.Time
}

func NewTripService(
	trips TripStore,
	places OriginResolver,
	vehicles VehicleStore,
	notifier TripNotifier,
	logger *slog.Logger,
) *TripService {
	return &TripService{
		trips:    trips,
		places:   places,
		vehicles: vehicles,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *TripService) Create(ctx context.Context, orgID uuid.UUID, req domain.CreateTripRequest) (*domain.Trip, error) {
	const op = "service.Trips.Create"

	trip := &domain.Trip{
		ID:                    uuid.New(),
		OrganizationID:        orgID,
		VehicleID:             req.VehicleID,
		DriverID:              req.DriverID,
		OriginID:              req.OriginID,
		Status:                domain.TripPlanned,
		Destinations:          req.Destinations,
		CompletedDestinations: []string{},
		Price:                 req.Price,
		CreatedAt:             s.now().UTC(),
	}
	if err := s.trips.Create(ctx, trip); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return trip, nil
}

func (s *TripService) Get(ctx context.Context, id uuid.UUID) (*domain.Trip, error) {
	return s.trips.Get(ctx, id)
}

func (s *TripService) List(ctx context.Context, orgID uuid.UUID) ([]*domain.Trip, error) {
	return s.trips.ListByOrganization(ctx, orgID)
}

// Dispatch moves a PLANNED or ARRIVED trip to OTW: the driver is heading to
// the next destination.
func (s *TripService) Dispatch(ctx context.Context, id uuid.UUID) (*domain.Trip, error) {
	const op = "service.Trips.Dispatch"

	trip, err := s.trips.Apply(ctx, id, func(ctx context.Context, t *domain.Trip) error {
		switch t.Status {
		case domain.TripPlanned, domain.TripArrived:
			t.Status = domain.TripOTW
			return nil
		}
		return fmt.Errorf("%s: cannot dispatch trip in status %s: %w", op, t.Status, e.ErrInvalidTransition)
	})
	if err != nil {
		return nil, err
	}
	return trip, nil
}

// MarkArrival confirms one destination. When the confirmation completes the
// declared set, the trip flips to COMPLETED and the watchers are notified
// after commit.
func (s *TripService) MarkArrival(ctx context.Context, id uuid.UUID, destination string) (*domain.Trip, error) {
	const op = "service.Trips.MarkArrival"

	var completedNow bool
	trip, err := s.trips.Apply(ctx, id, func(ctx context.Context, t *domain.Trip) error {
		if err := t.MarkArrived(destination); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if t.AllDestinationsArrived() && t.Status != domain.TripCompleted {
			t.Status = domain.TripCompleted
			at := s.now().UTC()
			t.CompletedAt = &at
			completedNow = true
		} else if t.Status == domain.TripOTW {
			t.Status = domain.TripArrived
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if completedNow {
		s.notifyCompleted(ctx, trip)
	}
	return trip, nil
}

// AutoArrive reacts to a geofence-enter event. A fence that is not a known
// origin, or a vehicle with no matching active trip, is a silent no-op:
// boundary events fire for plenty of fences that mean nothing to dispatch.
func (s *TripService) AutoArrive(ctx context.Context, vehicleID uuid.UUID, geofenceID int64, at time.Time) error {
	const op = "service.Trips.AutoArrive"

	origin, err := s.places.FindOriginByGeofenceID(ctx, geofenceID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if origin == nil {
		return nil
	}

	candidate, err := s.trips.OldestActiveForVehicleOrigin(ctx, vehicleID, origin.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if candidate == nil {
		return nil
	}

	_, err = s.trips.Apply(ctx, candidate.ID, func(ctx context.Context, t *domain.Trip) error {
		if !t.IsActive() {
			return nil
		}
		t.Status = domain.TripArrived
		return nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.logger.Info("trip auto-arrived at origin",
		slog.String("trip_id", candidate.ID.String()),
		slog.String("vehicle_id", vehicleID.String()),
		slog.Int64("geofence_id", geofenceID),
	)
	return nil
}

// Settle freezes the financial snapshot of a COMPLETED trip.
func (s *TripService) Settle(ctx context.Context, id uuid.UUID, req domain.SettleTripRequest) (*domain.Trip, error) {
	const op = "service.Trips.Settle"

	if req.AllowanceGiven < 0 || req.ActualFuelCost < 0 || req.ActualTollCost < 0 || req.OtherExpense < 0 {
		return nil, fmt.Errorf("%s: negative settlement amount: %w", op, e.ErrInvalidInput)
	}

	trip, err := s.trips.Apply(ctx, id, func(ctx context.Context, t *domain.Trip) error {
		if t.Status != domain.TripCompleted {
			return fmt.Errorf("%s: cannot settle trip in status %s: %w", op, t.Status, e.ErrInvalidTransition)
		}
		t.AllowanceGiven = req.AllowanceGiven
		t.ActualFuelCost = req.ActualFuelCost
		t.ActualTollCost = req.ActualTollCost
		t.OtherExpense = req.OtherExpense
		t.Status = domain.TripSettled
		at := s.now().UTC()
		t.SettledAt = &at
		return nil
	})
	if err != nil {
		return nil, err
	}
	return trip, nil
}

// Cancel aborts an active trip. Completed or settled trips stay immutable.
func (s *TripService) Cancel(ctx context.Context, id uuid.UUID) (*domain.Trip, error) {
	const op = "service.Trips.Cancel"

	trip, err := s.trips.Apply(ctx, id, func(ctx context.Context, t *domain.Trip) error {
		if !t.IsActive() {
			return fmt.Errorf("%s: cannot cancel trip in status %s: %w", op, t.Status, e.ErrInvalidTransition)
		}
		t.Status = domain.TripCancelled
		return nil
	})
	if err != nil {
		return nil, err
	}
	return trip, nil
}

func (s *TripService) notifyCompleted(ctx context.Context, trip *domain.Trip) {
	if s.notifier == nil {
		return
	}
	plate := trip.VehicleID.String()
	if s.vehicles != nil {
		if v, err := s.vehicles.Get(ctx, trip.VehicleID); err == nil {
			plate = v.LicensePlate
		}
	}
	if _, err := s.notifier.NotifyTripCompleted(ctx, trip.OrganizationID, trip, plate); err != nil {
		s.logger.Error("trip completion notification failed",
			slog.String("trip_id", trip.ID.String()),
			slog.Any("error", err),
		)
	}
}
