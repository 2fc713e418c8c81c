package dto

type SegmentResponse struct {
	Mode            string      `json:"mode"`
	From            string      `json:"from"`
	To              string      `json:"to"`
	Polyline        string      `json:"polyline"`
	DistanceMeters  int         `json:"distance_meters"`
	DurationSeconds int         `json:"duration_seconds,omitempty"`
	Fetched         bool        `json:"fetched"`
	Points          [][]float64 `json:"points,omitempty"`
}

type RouteResponse struct {
	Date     string            `json:"date"`
	Slug     string            `json:"slug"`
	Segments []SegmentResponse `json:"segments"`
}
