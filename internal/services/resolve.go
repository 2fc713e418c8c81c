package services

import (
	"fmt"
	"strings"

	"journey-route-service/internal/domain"
)

// ResolvedPoint is a segment endpoint after reference resolution: concrete
// coordinates plus the label shown on the map.
type ResolvedPoint struct {
	Label string
	Coord domain.Coordinates
}

// ResolveReference maps a symbolic endpoint reference to coordinates.
//
// Reference forms, in match order:
//   - "current": the entry's own location
//   - "previous": the nearest earlier entry that has a location
//   - a literal "lat,lon" pair
//   - a location name, searched backward from the current entry
//
// entries must be sorted ascending by date and idx names the entry whose
// segment is being resolved.
func ResolveReference(ref string, idx int, entries []domain.Entry) (ResolvedPoint, error) {
	if idx < 0 || idx >= len(entries) {
		return ResolvedPoint{}, fmt.Errorf("resolve %q: entry index %d out of range", ref, idx)
	}

	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ResolvedPoint{}, fmt.Errorf("resolve reference: empty reference in %q", entries[idx].Stem())
	}

	switch strings.ToLower(ref) {
	case "current":
		loc := entries[idx].Location
		if loc == nil {
			return ResolvedPoint{}, fmt.Errorf(
				"resolve %q in %q: entry has no location",
				ref, entries[idx].Stem(),
			)
		}
		return ResolvedPoint{Label: loc.Name, Coord: loc.Coordinates}, nil

	case "previous":
		for i := idx - 1; i >= 0; i-- {
			if loc := entries[i].Location; loc != nil {
				return ResolvedPoint{Label: loc.Name, Coord: loc.Coordinates}, nil
			}
		}
		return ResolvedPoint{}, fmt.Errorf(
			"resolve %q in %q: no earlier entry has a location",
			ref, entries[idx].Stem(),
		)
	}

	if coord, err := domain.ParseCoordinates(ref); err == nil {
		return ResolvedPoint{Label: coord.Label(), Coord: coord}, nil
	}

	// Name lookup walks backward so the most recent use of a name wins.
	for i := idx; i >= 0; i-- {
		if loc := entries[i].Location; loc != nil && strings.EqualFold(loc.Name, ref) {
			return ResolvedPoint{Label: loc.Name, Coord: loc.Coordinates}, nil
		}
	}

	return ResolvedPoint{}, fmt.Errorf(
		"resolve %q in %q: no prior entry location matches",
		ref, entries[idx].Stem(),
	)
}
