package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"journey-route-service/internal/ports"
)

// SQLite backed cache for fetched route geometries. Keys are expected to be
// consistent (e.g., already normalized to fixed-precision labels) by the
// caller.
type SqliteRouteCache struct {
	DB *sql.DB
}

func NewSqliteRouteCache(db *sql.DB) *SqliteRouteCache {
	return &SqliteRouteCache{DB: db}
}

// Fetch one cached route geometry.
func (s *SqliteRouteCache) Get(
	ctx context.Context,
	origin, destination, profile string,
) (ports.CachedRoute, bool, error) {
	if s.DB == nil {
		return ports.CachedRoute{}, false, errors.New("route cache: db is nil")
	}

	if origin == "" || destination == "" || profile == "" {
		return ports.CachedRoute{}, false, errors.New("get route cache: origin, destination and profile must not be empty")
	}

	q := `
	SELECT polyline, distance_meters, duration_seconds
	FROM route_cache
	WHERE origin = ? AND destination = ? AND profile = ?;
	`

	var out ports.CachedRoute
	err := s.DB.QueryRowContext(ctx, q, origin, destination, profile).
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
func (s *SqliteRouteCache) Put(
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
	INSERT OR REPLACE INTO route_cache (
		origin,
		destination,
		profile,
		polyline,
		distance_meters,
		duration_seconds
	)
	VALUES (?, ?, ?, ?, ?, ?);
	`

	if _, err := s.DB.ExecContext(ctx, q, origin, destination, profile,
		route.Polyline, route.DistanceMeters, route.DurationSeconds); err != nil {
		return fmt.Errorf("insert route cache %s -> %s: %w", origin, destination, err)
	}

	return nil
}
