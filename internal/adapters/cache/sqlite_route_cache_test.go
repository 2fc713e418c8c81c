package cache

import (
	"context"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"journey-route-service/internal/platform/db"
	"journey-route-service/internal/ports"
)

func newTestSqliteCache(t *testing.T) *SqliteRouteCache {
	t.Helper()
	d, err := db.OpenSQLite(filepath.Join(t.TempDir(), "routes.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	if err := InitSchema(d); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return NewSqliteRouteCache(d)
}

func TestSqliteRouteCacheRoundTrip(t *testing.T) {
	c := newTestSqliteCache(t)
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
}

func TestSqliteRouteCachePutReplaces(t *testing.T) {
	c := newTestSqliteCache(t)
	ctx := context.Background()

	first := ports.CachedRoute{Polyline: "aaa", DistanceMeters: 1, DurationSeconds: 1}
	second := ports.CachedRoute{Polyline: "bbb", DistanceMeters: 2, DurationSeconds: 2}

	if err := c.Put(ctx, "a", "b", "driving", first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.Put(ctx, "a", "b", "driving", second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, hit, err := c.Get(ctx, "a", "b", "driving")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !hit || got != second {
		t.Fatalf("got %+v, want replacement %+v", got, second)
	}
}
