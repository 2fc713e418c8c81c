package domain

import (
	"math"
	"testing"
)

func TestParseCoordinates(t *testing.T) {
	c, err := ParseCoordinates("38.7223, -9.1393")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Lat != 38.7223 || c.Lon != -9.1393 {
		t.Fatalf("parsed %v, want {38.7223 -9.1393}", c)
	}

	bad := []string{
		"",
		"38.7223",
		"38.7,-9.1,0",
		"abc,def",
		"91.0,0.0",
		"0.0,181.0",
	}
	for _, s := range bad {
		if _, err := ParseCoordinates(s); err == nil {
			t.Errorf("ParseCoordinates(%q) succeeded, want error", s)
		}
	}
}

func TestCoordinatesValidateRejectsNonFinite(t *testing.T) {
	for _, c := range []Coordinates{
		{Lat: math.NaN(), Lon: 0},
		{Lat: 0, Lon: math.Inf(1)},
	} {
		if err := c.Validate(); err == nil {
			t.Errorf("Validate(%v) succeeded, want error", c)
		}
	}
}

func TestHaversineMeters(t *testing.T) {
	lisbon := Coordinates{Lat: 38.7223, Lon: -9.1393}
	porto := Coordinates{Lat: 41.1579, Lon: -8.6291}

	d := HaversineMeters(lisbon, porto)
	// Real-world distance is roughly 274 km.
	if d < 270000 || d > 280000 {
		t.Fatalf("distance = %.0f m, want ~274000", d)
	}

	if d := HaversineMeters(lisbon, lisbon); d != 0 {
		t.Fatalf("zero-length distance = %v, want 0", d)
	}
}

func TestParseMode(t *testing.T) {
	for _, s := range []string{"train", "car", "foot", "ferry", "direct"} {
		m, err := ParseMode(s)
		if err != nil {
			t.Fatalf("ParseMode(%q): %v", s, err)
		}
		if m.String() != s {
			t.Fatalf("ParseMode(%q) = %q", s, m)
		}
	}

	if _, err := ParseMode("plane"); err == nil {
		t.Fatal("ParseMode(\"plane\") succeeded, want error")
	}

	if ModeFerry.Routable() || ModeDirect.Routable() {
		t.Fatal("ferry and direct must not be routable")
	}
	if !ModeTrain.Routable() || !ModeCar.Routable() || !ModeFoot.Routable() {
		t.Fatal("train, car and foot must be routable")
	}
}
