package services

import "journey-route-service/internal/domain"

const (
	// DefaultCurvature is the perpendicular control-point offset as a
	// fraction of the chord length.
	DefaultCurvature = 0.2

	// DefaultCurveSamples is the point count of a sampled curve,
	// endpoints inclusive.
	DefaultCurveSamples = 32
)

// CurveBetween samples a quadratic Bezier arc from a to b. It is the
// fallback geometry for non-routable modes and for failed route fetches.
// The control point sits at the chord midpoint, offset perpendicular to the
// chord by curvature x chord length, which bows the arc gently to one side.
//
// Identical endpoints yield a degenerate two-point segment.
func CurveBetween(a, b domain.Coordinates, curvature float64, samples int) []domain.Coordinates {
	if a == b {
		return []domain.Coordinates{a, b}
	}
	if samples < 2 {
		samples = DefaultCurveSamples
	}
	if curvature <= 0 {
		curvature = DefaultCurvature
	}

	// All arithmetic happens in plain lat/lon space. At journal scale the
	// projection error is far below the stored polyline precision.
	dLat := b.Lat - a.Lat
	dLon := b.Lon - a.Lon

	control := domain.Coordinates{
		Lat: (a.Lat+b.Lat)/2 - dLon*curvature,
		Lon: (a.Lon+b.Lon)/2 + dLat*curvature,
	}

	points := make([]domain.Coordinates, 0, samples)
	for i := 0; i < samples; i++ {
		t := float64(i) / float64(samples-1)
		u := 1 - t
		points = append(points, domain.Coordinates{
			Lat: u*u*a.Lat + 2*u*t*control.Lat + t*t*b.Lat,
			Lon: u*u*a.Lon + 2*u*t*control.Lon + t*t*b.Lon,
		})
	}

	return points
}
