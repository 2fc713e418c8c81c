package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"journey-route-service/internal/adapters/content"
	"journey-route-service/internal/api/dto"
	"journey-route-service/internal/domain"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	contentDir := t.TempDir()
	entry := `---
title: Up the coast
location:
  name: Porto
  coordinates: [41.1579, -8.6291]
routes:
  - from: "38.7223,-9.1393"
    to: current
    mode: train
---
`
	require.NoError(t, os.WriteFile(
		filepath.Join(contentDir, "2024-05-12-porto.md"), []byte(entry), 0o644))

	routesDir := t.TempDir()
	doc := domain.RouteDocument{
		Date: "2024-05-12",
		Slug: "porto",
		Segments: []domain.RouteSegment{{
			Mode: domain.ModeTrain,
			From: "Lisbon",
			To:   "Porto",
			Polyline: domain.EncodePolyline([]domain.Coordinates{
				{Lat: 38.7223, Lon: -9.1393},
				{Lat: 41.1579, Lon: -8.6291},
			}),
			DistanceMeters: 312500,
			Fetched:        true,
		}},
	}
	payload, err := json.Marshal(doc)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(
		filepath.Join(routesDir, "2024-05-12-porto.json"), payload, 0o644))

	srv := httptest.NewServer(NewRouter(content.NewLoader(contentDir), routesDir))
	t.Cleanup(srv.Close)
	return srv
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

func TestListEntriesEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/entries")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.ListEntriesResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Entries, 1)

	e := body.Entries[0]
	assert.Equal(t, "2024-05-12", e.Date)
	assert.Equal(t, "2024-05-12-porto", e.Stem)
	assert.Equal(t, 1, e.Segments)
	require.NotNil(t, e.Location)
	assert.Equal(t, "Porto", e.Location.Name)
	assert.InDelta(t, 41.1579, e.Location.Lat, 1e-9)
}

func TestGetRouteEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/routes/2024-05-12-porto")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.RouteResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Segments, 1)

	seg := body.Segments[0]
	assert.Equal(t, "train", seg.Mode)
	assert.Equal(t, "Lisbon", seg.From)
	assert.NotEmpty(t, seg.Polyline)
	assert.Nil(t, seg.Points)
}

func TestGetRouteEndpointDecodesPoints(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/routes/2024-05-12-porto?decode=true")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.RouteResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Segments, 1)

	points := body.Segments[0].Points
	require.Len(t, points, 2)
	assert.InDelta(t, 38.7223, points[0][0], 1e-5)
	assert.InDelta(t, -9.1393, points[0][1], 1e-5)
}

func TestGetRouteEndpointRejectsBadStem(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/routes/not-a-stem")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/routes/2024-05-13-missing")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCORSHeadersForBrowserClients(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/entries", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:4321")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}
