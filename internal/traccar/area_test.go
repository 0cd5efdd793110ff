package traccar

import (
	"testing"

	"github.com/caffeine-dev-rafly/cookie-tms/internal/domain"
)

func TestCircleArea(t *testing.T) {
	t.Parallel()

	got := CircleArea(-6.2, 106.816666, 200)
	want := "CIRCLE(-6.2 106.816666, 200)"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRectangleArea_ClosedPolygon(t *testing.T) {
	t.Parallel()

	got, ok := RectangleArea(domain.Bounds{North: 2, South: 1, East: 4, West: 3})
	if !ok {
		t.Fatalf("degenerate reported for valid bounds")
	}
	want := "POLYGON((2 3, 2 4, 1 4, 1 3, 2 3))"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRectangleArea_NormalizesSwappedBounds(t *testing.T) {
	t.Parallel()

	straight, _ := RectangleArea(domain.Bounds{North: 2, South: 1, East: 4, West: 3})
	swapped, ok := RectangleArea(domain.Bounds{North: 1, South: 2, East: 3, West: 4})
	if !ok {
		t.Fatalf("swapped bounds rejected")
	}
	if straight != swapped {
		t.Fatalf("swapped bounds produced %q, want %q", swapped, straight)
	}
}

func TestRectangleArea_DegenerateRejected(t *testing.T) {
	t.Parallel()

	if _, ok := RectangleArea(domain.Bounds{North: 1, South: 1, East: 4, West: 3}); ok {
		t.Fatalf("zero-height bounds accepted")
	}
	if _, ok := RectangleArea(domain.Bounds{North: 2, South: 1, East: 3, West: 3}); ok {
		t.Fatalf("zero-width bounds accepted")
	}
}

func TestPolygonArea_Empty(t *testing.T) {
	t.Parallel()

	if got := PolygonArea(nil); got != "" {
		t.Fatalf("got %q for empty input", got)
	}
}
