package services

import (
	"testing"

	"journey-route-service/internal/domain"
)

func TestCurveBetweenSamplesQuadraticArc(t *testing.T) {
	a := domain.Coordinates{Lat: 38.7223, Lon: -9.1393}
	b := domain.Coordinates{Lat: 41.1579, Lon: -8.6291}

	points := CurveBetween(a, b, 0.2, 32)

	if len(points) != 32 {
		t.Fatalf("expected 32 points, got %d", len(points))
	}
	if points[0] != a {
		t.Fatalf("first point = %+v, want %+v", points[0], a)
	}
	if points[len(points)-1] != b {
		t.Fatalf("last point = %+v, want %+v", points[len(points)-1], b)
	}

	// The arc must bow away from the straight chord.
	mid := points[16]
	chordMidLon := (a.Lon + b.Lon) / 2
	if diff := mid.Lon - chordMidLon; diff < 0.01 {
		t.Fatalf("curve midpoint too close to chord: lon offset %v", diff)
	}

	for i, p := range points {
		if err := p.Validate(); err != nil {
			t.Fatalf("point %d invalid: %v", i, err)
		}
	}
}

func TestCurveBetweenDegenerate(t *testing.T) {
	a := domain.Coordinates{Lat: 38.7223, Lon: -9.1393}

	points := CurveBetween(a, a, 0.2, 32)
	if len(points) != 2 {
		t.Fatalf("expected 2-point degenerate segment, got %d points", len(points))
	}
	if points[0] != a || points[1] != a {
		t.Fatalf("degenerate segment points differ: %+v", points)
	}
}

func TestCurveBetweenDefaults(t *testing.T) {
	a := domain.Coordinates{Lat: 0, Lon: 0}
	b := domain.Coordinates{Lat: 1, Lon: 1}

	points := CurveBetween(a, b, 0, 0)
	if len(points) != DefaultCurveSamples {
		t.Fatalf("expected %d points, got %d", DefaultCurveSamples, len(points))
	}
}
