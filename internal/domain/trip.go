package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/caffeine-dev-rafly/cookie-tms/pkg/e"
)

type TripStatus string

const (
	TripPlanned   TripStatus = "PLANNED"
	TripOTW       TripStatus = "OTW"
	TripArrived   TripStatus = "ARRIVED"
	TripCompleted TripStatus = "COMPLETED"
	TripCancelled TripStatus = "CANCELLED"
	TripSettled   TripStatus = "SETTLED"
)

// ActiveTripStatuses are mutually exclusive per vehicle and per driver.
var ActiveTripStatuses = []TripStatus{TripPlanned, TripOTW, TripArrived}

type Trip struct {
	ID             uuid.UUID  `json:"id"`
	OrganizationID uuid.UUID  `json:"organization_id"`
	VehicleID      uuid.UUID  `json:"vehicle_id"`
	DriverID       uuid.UUID  `json:"driver_id"`
	OriginID       *uuid.UUID `json:"origin_id"`

	Status                TripStatus `json:"status"`
	Destinations          []string   `json:"destinations"`
	CompletedDestinations []string   `json:"completed_destinations"`

	// Financial snapshot, frozen at settlement. Whole currency units.
	Price          int64 `json:"price"`
	AllowanceGiven int64 `json:"allowance_given"`
	ActualFuelCost int64 `json:"actual_fuel_cost"`
	ActualTollCost int64 `json:"actual_toll_cost"`
	OtherExpense   int64 `json:"other_expense"`

	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at"`
	SettledAt   *time.Time `json:"settled_at"`
}

func (t *Trip) IsActive() bool {
	switch t.Status {
	case TripPlanned, TripOTW, TripArrived:
		return true
	}
	return false
}

func (t *Trip) TotalExpense() int64 {
	return t.ActualFuelCost + t.ActualTollCost + t.OtherExpense
}

func (t *Trip) Balance() int64 {
	return t.AllowanceGiven - t.TotalExpense()
}

func (t *Trip) hasDestination(name string) bool {
	for _, d := range t.Destinations {
		if d == name {
			return true
		}
	}
	return false
}

func (t *Trip) destinationCompleted(name string) bool {
	for _, d := range t.CompletedDestinations {
		if d == name {
			return true
		}
	}
	return false
}

// MarkArrived records one destination arrival. Duplicates are idempotent;
// names outside the declared list are rejected.
func (t *Trip) MarkArrived(destination string) error {
	if !t.IsActive() {
		return fmt.Errorf("trip %s is %s: %w", t.ID, t.Status, e.ErrInvalidTransition)
	}
	if !t.hasDestination(destination) {
		return fmt.Errorf("destination %q not declared on trip %s: %w", destination, t.ID, e.ErrInvalidDestination)
	}
	if !t.destinationCompleted(destination) {
		t.CompletedDestinations = append(t.CompletedDestinations, destination)
	}
	return nil
}

// AllDestinationsArrived is set containment, not a count, so duplicate
// confirmations cannot complete a trip early.
func (t *Trip) AllDestinationsArrived() bool {
	if len(t.Destinations) == 0 {
		return false
	}
	for _, d := range t.Destinations {
		if !t.destinationCompleted(d) {
			return false
		}
	}
	return true
}
