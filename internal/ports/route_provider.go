package ports

import (
	"context"

	"journey-route-service/internal/domain"
)

// Routed geometry between two points plus travel metrics.
type RouteResult struct {
	Points          []domain.Coordinates
	DistanceMeters  int
	DurationSeconds int
}

// Contract for retrieving routed geometry between two coordinates.
type RouteProvider interface {
	// Return the path geometry for one routable segment. The mode selects
	// the routing profile; callers must not pass non-routable modes.
	GetRoute(ctx context.Context, from, to domain.Coordinates, mode domain.TransportMode) (RouteResult, error)
}
