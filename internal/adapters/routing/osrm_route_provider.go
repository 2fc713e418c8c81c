package routing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"net/url"
	"time"

	"journey-route-service/internal/domain"
	"journey-route-service/internal/platform/obs"
	"journey-route-service/internal/ports"
)

// DefaultProfiles maps transport modes to OSRM routing profiles. The public
// OSRM server has no rail profile, so train segments approximate along the
// driving network.
func DefaultProfiles() map[domain.TransportMode]string {
	return map[domain.TransportMode]string{
		domain.ModeCar:   "driving",
		domain.ModeTrain: "driving",
		domain.ModeFoot:  "foot",
	}
}

// OSRMRouteProvider implements RouteProvider against an OSRM-compatible
// routing service.
//
// It coordinates:
//   - Profile selection per transport mode
//   - Persistent geometry caching
//   - External API calls with retry/backoff
//
// The provider is safe for concurrent use.
type OSRMRouteProvider struct {
	session  *http.Client
	baseURL  string
	profiles map[domain.TransportMode]string
	cache    ports.RouteCache
}

func NewOSRMRouteProvider(
	baseURL string,
	profiles map[domain.TransportMode]string,
	cache ports.RouteCache,
) (*OSRMRouteProvider, error) {
	if baseURL == "" {
		return nil, errors.New("OSRM base URL is empty")
	}
	if len(profiles) == 0 {
		profiles = DefaultProfiles()
	}

	return &OSRMRouteProvider{
		session:  &http.Client{Timeout: 10 * time.Second},
		baseURL:  baseURL,
		profiles: profiles,
		cache:    cache,
	}, nil
}

type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
	} `json:"routes"`
}

// GetRoute fetches road geometry between two points, consulting the route
// cache first when one is configured.
func (o *OSRMRouteProvider) GetRoute(
	ctx context.Context,
	from, to domain.Coordinates,
	mode domain.TransportMode,
) (_ ports.RouteResult, err error) {
	defer obs.Time(ctx, "osrm.GetRoute")(&err)

	profile, ok := o.profiles[mode]
	if !ok {
		return ports.RouteResult{}, fmt.Errorf("no routing profile for mode %q", mode)
	}

	origin := from.Label()
	destination := to.Label()

	// Check the persistent route cache before issuing external API calls.
	if o.cache != nil {
		cached, hit, err := o.cache.Get(ctx, origin, destination, profile)
		if err != nil {
			return ports.RouteResult{}, fmt.Errorf("get route cache: %w", err)
		}
		if hit {
			points, err := domain.DecodePolyline(cached.Polyline)
			if err != nil {
				return ports.RouteResult{}, fmt.Errorf("decode cached route %s -> %s: %w", origin, destination, err)
			}
			return ports.RouteResult{
				Points:          points,
				DistanceMeters:  cached.DistanceMeters,
				DurationSeconds: cached.DurationSeconds,
			}, nil
		}
	}

	result, err := o.fetchRoute(ctx, from, to, profile)
	if err != nil {
		return ports.RouteResult{}, err
	}

	if o.cache != nil {
		cached := ports.CachedRoute{
			Polyline:        domain.EncodePolyline(result.Points),
			DistanceMeters:  result.DistanceMeters,
			DurationSeconds: result.DurationSeconds,
		}
		if err := o.cache.Put(ctx, origin, destination, profile, cached); err != nil {
			log.Printf("route cache write failed: %v", err)
		}
	}

	return result, nil
}

func (o *OSRMRouteProvider) fetchRoute(
	ctx context.Context,
	from, to domain.Coordinates,
	profile string,
) (ports.RouteResult, error) {
	endpoint := fmt.Sprintf(
		"%s/route/v1/%s/%f,%f;%f,%f",
		o.baseURL, profile,
		from.Lon, from.Lat, to.Lon, to.Lat,
	)

	q := url.Values{}
	q.Set("overview", "full")
	q.Set("geometries", "geojson")
	endpoint += "?" + q.Encode()

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		return o.newRequest(ctx, endpoint)
	})
	if err != nil {
		return ports.RouteResult{}, fmt.Errorf("route request failed: %w", err)
	}
	defer resp.Body.Close()

	var decoded osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return ports.RouteResult{}, fmt.Errorf("decode route response: %w", err)
	}

	if decoded.Code != "Ok" {
		return ports.RouteResult{}, fmt.Errorf("routing service returned code %q", decoded.Code)
	}
	if len(decoded.Routes) == 0 {
		return ports.RouteResult{}, errors.New("routing service returned no routes")
	}

	route := decoded.Routes[0]
	points := make([]domain.Coordinates, 0, len(route.Geometry.Coordinates))
	for i, pair := range route.Geometry.Coordinates {
		if len(pair) != 2 {
			return ports.RouteResult{}, fmt.Errorf("invalid coordinate pair at index %d", i)
		}
		// GeoJSON order is [lon, lat].
		c := domain.Coordinates{Lat: pair[1], Lon: pair[0]}
		if err := c.Validate(); err != nil {
			return ports.RouteResult{}, fmt.Errorf("invalid route point at index %d: %w", i, err)
		}
		points = append(points, c)
	}
	if len(points) < 2 {
		return ports.RouteResult{}, fmt.Errorf("route geometry has %d points, want at least 2", len(points))
	}

	return ports.RouteResult{
		Points:          points,
		DistanceMeters:  int(math.Round(route.Distance)),
		DurationSeconds: int(math.Round(route.Duration)),
	}, nil
}
