package domain

import (
	"errors"
	"testing"

	"github.com/caffeine-dev-rafly/cookie-tms/pkg/e"
)

func TestAllDestinationsArrived_SetContainment(t *testing.T) {
	t.Parallel()

	trip := Trip{
		Status:                TripOTW,
		Destinations:          []string{"A", "B"},
		CompletedDestinations: []string{"A", "A"},
	}
	if trip.AllDestinationsArrived() {
		t.Fatal("duplicate completions must not satisfy the set")
	}

	trip.CompletedDestinations = append(trip.CompletedDestinations, "B")
	if !trip.AllDestinationsArrived() {
		t.Fatal("full set not recognized")
	}
}

func TestAllDestinationsArrived_EmptyDeclaration(t *testing.T) {
	t.Parallel()

	trip := Trip{Status: TripOTW}
	if trip.AllDestinationsArrived() {
		t.Fatal("trip with no destinations can never complete by arrival")
	}
}

func TestMarkArrived(t *testing.T) {
	t.Parallel()

	trip := Trip{Status: TripOTW, Destinations: []string{"A"}}

	if err := trip.MarkArrived("A"); err != nil {
		t.Fatalf("MarkArrived: %v", err)
	}
	if err := trip.MarkArrived("A"); err != nil {
		t.Fatalf("duplicate MarkArrived must be idempotent: %v", err)
	}
	if len(trip.CompletedDestinations) != 1 {
		t.Fatalf("completed = %v", trip.CompletedDestinations)
	}

	if err := trip.MarkArrived("Z"); !errors.Is(err, e.ErrInvalidDestination) {
		t.Fatalf("err = %v, want ErrInvalidDestination", err)
	}

	trip.Status = TripSettled
	if err := trip.MarkArrived("A"); !errors.Is(err, e.ErrInvalidTransition) {
		t.Fatalf("err = %v, want ErrInvalidTransition", err)
	}
}
