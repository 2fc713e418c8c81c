package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"journey-route-service/internal/adapters/cache"
	"journey-route-service/internal/adapters/content"
	"journey-route-service/internal/adapters/routing"
	"journey-route-service/internal/config"
	"journey-route-service/internal/platform/db"
	"journey-route-service/internal/ports"
	"journey-route-service/internal/services"
)

// main is the batch composition root. It wires concrete adapters (content
// loader, OSRM provider, cache backend) behind ports and runs one build.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	var (
		configPath = flag.String("config", "site.yml", "site configuration file")
		contentDir = flag.String("content", "", "content directory (overrides site.yml)")
		outDir     = flag.String("out", "", "output directory (overrides site.yml)")
		force      = flag.Bool("force", false, "rebuild route documents that already exist")
		dryRun     = flag.Bool("dry-run", false, "resolve and fetch but write nothing")
	)
	flag.Parse()

	cfg, err := config.LoadSite(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	if *contentDir != "" {
		cfg.Content = *contentDir
	}
	if *outDir != "" {
		cfg.Output = *outDir
	}
	cfg.Routing.BaseURL = config.Get("OSRM_BASE_URL", cfg.Routing.BaseURL)
	cfg.Cache.Backend = config.Get("CACHE_BACKEND", cfg.Cache.Backend)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	routeCache, closeCache, err := openRouteCache(cfg.Cache)
	if err != nil {
		log.Fatal(err)
	}
	defer closeCache()

	profiles, err := cfg.Routing.ModeProfiles(routing.DefaultProfiles())
	if err != nil {
		log.Fatal(err)
	}

	provider, err := routing.NewOSRMRouteProvider(cfg.Routing.BaseURL, profiles, routeCache)
	if err != nil {
		log.Fatal(err)
	}

	loader := content.NewLoader(cfg.Content)

	summary, err := services.BuildRoutes(ctx, services.BuildRequest{
		OutDir:       cfg.Output,
		Force:        *force,
		DryRun:       *dryRun,
		Curvature:    cfg.Curve.Curvature,
		CurveSamples: cfg.Curve.Samples,
	}, loader, provider)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("build complete built=%d skipped=%d failed=%d",
		summary.Built, summary.Skipped, summary.Failed)

	if summary.Failed > 0 {
		os.Exit(1)
	}
}

// openRouteCache selects the geometry cache backend. The returned close
// func is a no-op when no cache is configured.
func openRouteCache(c config.CacheConfig) (ports.RouteCache, func(), error) {
	noop := func() {}

	switch c.Backend {
	case "", "none":
		return nil, noop, nil

	case "sqlite":
		path := config.Get("CACHE_DB_PATH", c.Path)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, noop, fmt.Errorf("open route cache: %w", err)
		}
		d, err := db.OpenSQLite(path)
		if err != nil {
			return nil, noop, err
		}
		if err := cache.InitSchema(d); err != nil {
			d.Close()
			return nil, noop, err
		}
		return cache.NewSqliteRouteCache(d), func() { d.Close() }, nil

	case "postgres":
		dsn := config.Get("DATABASE_URL", c.URL)
		if strings.TrimSpace(dsn) == "" {
			return nil, noop, fmt.Errorf("open route cache: DATABASE_URL is required for the postgres backend")
		}
		d, err := db.OpenPostgres(dsn)
		if err != nil {
			return nil, noop, err
		}
		if err := cache.InitSchema(d); err != nil {
			d.Close()
			return nil, noop, err
		}
		return cache.NewSQLRouteCache(d), func() { d.Close() }, nil

	case "redis":
		addr := config.Get("REDIS_ADDR", c.Addr)
		if strings.TrimSpace(addr) == "" {
			return nil, noop, fmt.Errorf("open route cache: REDIS_ADDR is required for the redis backend")
		}
		client := redis.NewClient(&redis.Options{Addr: addr})
		if err := client.Ping(context.Background()).Err(); err != nil {
			client.Close()
			return nil, noop, fmt.Errorf("open route cache: verify redis connection: %w", err)
		}
		return cache.NewRedisRouteCache(client), func() { client.Close() }, nil
	}

	return nil, noop, fmt.Errorf("open route cache: unknown backend %q", c.Backend)
}
