package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"journey-route-service/internal/ports"
)

func newTestRedisCache(t *testing.T) *RedisRouteCache {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisRouteCache(client)
}

func TestRedisRouteCacheRoundTrip(t *testing.T) {
	c := newTestRedisCache(t)
	ctx := context.Background()

	_, hit, err := c.Get(ctx, "38.72230,-9.13930", "41.15790,-8.62910", "driving")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hit {
		t.Fatal("expected miss on empty cache")
	}

	want := ports.CachedRoute{
		Polyline:        "_p~iF~ps|U_ulLnnqC",
		DistanceMeters:  312500,
		DurationSeconds: 10800,
	}
	if err := c.Put(ctx, "38.72230,-9.13930", "41.15790,-8.62910", "driving", want); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, hit, err := c.Get(ctx, "38.72230,-9.13930", "41.15790,-8.62910", "driving")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !hit {
		t.Fatal("expected hit after put")
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}

	// Same endpoints under a different profile is a distinct key.
	_, hit, err = c.Get(ctx, "38.72230,-9.13930", "41.15790,-8.62910", "foot")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hit {
		t.Fatal("expected miss for different profile")
	}
}

func TestRedisRouteCacheRejectsEmptyKeys(t *testing.T) {
	c := newTestRedisCache(t)
	ctx := context.Background()

	if _, _, err := c.Get(ctx, "", "b", "driving"); err == nil {
		t.Fatal("expected error for empty origin")
	}
	if err := c.Put(ctx, "a", "b", "driving", ports.CachedRoute{}); err == nil {
		t.Fatal("expected error for empty polyline")
	}
}
