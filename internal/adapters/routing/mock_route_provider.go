package routing

import (
	"context"
	"fmt"

	"journey-route-service/internal/domain"
	"journey-route-service/internal/ports"
)

type MockLeg struct {
	From, To domain.Coordinates
	Points   []domain.Coordinates
	Meters   int
	Seconds  int
}

type MockRouteProvider struct {
	m map[string]ports.RouteResult
}

func NewMockRouteProvider(legs []MockLeg) *MockRouteProvider {
	m := make(map[string]ports.RouteResult, len(legs))
	for _, l := range legs {
		m[l.From.Label()+"|"+l.To.Label()] = ports.RouteResult{
			Points:          l.Points,
			DistanceMeters:  l.Meters,
			DurationSeconds: l.Seconds,
		}
	}
	return &MockRouteProvider{m: m}
}

func (p *MockRouteProvider) GetRoute(ctx context.Context, from, to domain.Coordinates, mode domain.TransportMode) (ports.RouteResult, error) {
	r, ok := p.m[from.Label()+"|"+to.Label()]
	if !ok {
		return ports.RouteResult{}, fmt.Errorf("missing leg %q -> %q", from.Label(), to.Label())
	}

	return r, nil
}
