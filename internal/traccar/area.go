package traccar

import (
	"fmt"
	"strings"

	"github.com/caffeine-dev-rafly/cookie-tms/internal/domain"
)

// CircleArea renders the provider's circle WKT: "CIRCLE(lat lon, radius)".
func CircleArea(lat, lng float64, radiusM int) string {
	return fmt.Sprintf("CIRCLE(%g %g, %d)", lat, lng, radiusM)
}

// PolygonArea renders a closed polygon from (lat, lng) pairs.
func PolygonArea(points [][2]float64) string {
	if len(points) == 0 {
		return ""
	}
	parts := make([]string, 0, len(points))
	for _, p := range points {
		parts = append(parts, fmt.Sprintf("%g %g", p[0], p[1]))
	}
	return fmt.Sprintf("POLYGON((%s))", strings.Join(parts, ", "))
}

// RectangleArea turns bounds into a closed 5-point polygon. Degenerate
// bounds (zero-width or zero-height) yield ok=false.
func RectangleArea(b domain.Bounds) (string, bool) {
	north, south := b.North, b.South
	if north < south {
		north, south = south, north
	}
	east, west := b.East, b.West
	if east < west {
		east, west = west, east
	}
	if north == south || east == west {
		return "", false
	}
	points := [][2]float64{
		{north, west},
		{north, east},
		{south, east},
		{south, west},
		{north, west},
	}
	return PolygonArea(points), true
}
