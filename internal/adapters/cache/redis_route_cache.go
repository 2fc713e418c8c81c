package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"journey-route-service/internal/ports"
)

// RedisRouteCache stores fetched route geometries as JSON values keyed by
// origin, destination and profile. Entries never expire: route geometry for
// a fixed pair of points is stable.
type RedisRouteCache struct {
	Client *redis.Client
}

func NewRedisRouteCache(client *redis.Client) *RedisRouteCache {
	return &RedisRouteCache{Client: client}
}

func routeKey(origin, destination, profile string) string {
	return fmt.Sprintf("route:%s|%s|%s", origin, destination, profile)
}

// Fetch one cached route geometry.
func (r *RedisRouteCache) Get(
	ctx context.Context,
	origin, destination, profile string,
) (ports.CachedRoute, bool, error) {
	if r.Client == nil {
		return ports.CachedRoute{}, false, errors.New("route cache: redis client is nil")
	}

	if origin == "" || destination == "" || profile == "" {
		return ports.CachedRoute{}, false, errors.New("get route cache: origin, destination and profile must not be empty")
	}

	val, err := r.Client.Get(ctx, routeKey(origin, destination, profile)).Result()
	if errors.Is(err, redis.Nil) {
		return ports.CachedRoute{}, false, nil
	}
	if err != nil {
		return ports.CachedRoute{}, false, fmt.Errorf("get route cache: %w", err)
	}

	var out ports.CachedRoute
	if err := json.Unmarshal([]byte(val), &out); err != nil {
		return ports.CachedRoute{}, false, fmt.Errorf("get route cache: decode value: %w", err)
	}

	return out, true, nil
}

// Store one route geometry, replacing any previous value for the key.
func (r *RedisRouteCache) Put(
	ctx context.Context,
	origin, destination, profile string,
	route ports.CachedRoute,
) error {
	if r.Client == nil {
		return errors.New("route cache: redis client is nil")
	}

	if origin == "" || destination == "" || profile == "" {
		return errors.New("insert route cache: origin, destination and profile must not be empty")
	}
	if route.Polyline == "" {
		return errors.New("insert route cache: polyline must not be empty")
	}

	payload, err := json.Marshal(route)
	if err != nil {
		return fmt.Errorf("insert route cache: encode value: %w", err)
	}

	if err := r.Client.Set(ctx, routeKey(origin, destination, profile), payload, 0).Err(); err != nil {
		return fmt.Errorf("insert route cache %s -> %s: %w", origin, destination, err)
	}

	return nil
}
