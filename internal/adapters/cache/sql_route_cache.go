package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"journey-route-service/internal/platform/obs"
	"journey-route-service/internal/ports"
)

// SQLRouteCache is a Postgres-backed cache for fetched route geometries,
// for deployments where builds run on more than one machine.
type SQLRouteCache struct {
	DB *sql.DB
}

func NewSQLRouteCache(db *sql.DB) *SQLRouteCache {
	return &SQLRouteCache{DB: db}
}

// Fetch one cached route geometry.
func (s *SQLRouteCache) Get(
	ctx context.Context,
	origin, destination, profile string,
) (_ ports.CachedRoute, _ bool, err error) {
	defer obs.Time(ctx, "route.cache.Get")(&err)

	if s.DB == nil {
		return ports.CachedRoute{}, false, errors.New("route cache: db is nil")
	}

	if origin == "" || destination == "" || profile == "" {
		return ports.CachedRoute{}, false, errors.New("get route cache: origin, destination and profile must not be empty")
	}

	q := `
	SELECT polyline, distance_meters, duration_seconds
	FROM route_cache
	WHERE origin = $1
		AND destination = $2
		AND profile = $3;
	`

	var out ports.CachedRoute
	err = s.DB.QueryRowContext(ctx, q, origin, destination, profile).
		Scan(&out.Polyline, &out.DistanceMeters, &out.DurationSeconds)
	if errors.Is(err, sql.ErrNoRows) {
		return ports.CachedRoute{}, false, nil
	}
	if err != nil {
		return ports.CachedRoute{}, false, fmt.Errorf("get route cache: query route_cache table: %w", err)
	}

	return out, true, nil
}

// Store one route geometry, replacing any previous value for the key.
func (s *SQLRouteCache) Put(
	ctx context.Context,
	origin, destination, profile string,
	route ports.CachedRoute,
) error {
	if s.DB == nil {
		return errors.New("route cache: db is nil")
	}

	if origin == "" || destination == "" || profile == "" {
		return errors.New("insert route cache: origin, destination and profile must not be empty")
	}
	if route.Polyline == "" {
		return errors.New("insert route cache: polyline must not be empty")
	}

	q := `
	INSERT INTO route_cache (origin, destination, profile, polyline, distance_meters, duration_seconds)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (origin, destination, profile) DO UPDATE
	SET polyline = EXCLUDED.polyline,
		distance_meters = EXCLUDED.distance_meters,
		duration_seconds = EXCLUDED.duration_seconds;
	`

	if _, err := s.DB.ExecContext(ctx, q, origin, destination, profile,
		route.Polyline, route.DistanceMeters, route.DurationSeconds); err != nil {
		return fmt.Errorf("insert route cache %s -> %s: %w", origin, destination, err)
	}

	return nil
}
