package domain

// RouteSegment is one rendered travel leg: a transport mode, display labels
// for both endpoints, and the encoded polyline geometry. Fetched indicates
// whether the geometry came from the routing service or the curve fallback.
type RouteSegment struct {
	Mode            TransportMode `json:"mode"`
	From            string        `json:"from"`
	To              string        `json:"to"`
	Polyline        string        `json:"polyline"`
	DistanceMeters  int           `json:"distance_meters"`
	DurationSeconds int           `json:"duration_seconds,omitempty"`
	Fetched         bool          `json:"fetched"`
}

// RouteDocument is the per-entry output persisted next to the content tree.
// It is immutable build output and contains no side effects.
type RouteDocument struct {
	Date     string         `json:"date"`
	Slug     string         `json:"slug"`
	Segments []RouteSegment `json:"segments"`
}
