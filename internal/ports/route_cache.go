package ports

import "context"

// CachedRoute is a stored route geometry. The polyline keeps the cache
// payload compact and identical to what ends up in route documents.
type CachedRoute struct {
	Polyline        string
	DistanceMeters  int
	DurationSeconds int
}

// Contract for caching fetched route geometries across builds.
// Keys are (origin, destination, profile) with origin/destination already
// normalized to fixed-precision "lat,lon" labels by the caller.
type RouteCache interface {
	Get(ctx context.Context, origin, destination, profile string) (CachedRoute, bool, error)
	Put(ctx context.Context, origin, destination, profile string, route CachedRoute) error
}
