package domain

import "github.com/twpayne/go-polyline"

// EncodePolyline compresses an ordered coordinate sequence into the compact
// ASCII polyline format (1e-5 precision, lat/lon order).
func EncodePolyline(points []Coordinates) string {
	coords := make([][]float64, 0, len(points))
	for _, p := range points {
		coords = append(coords, []float64{p.Lat, p.Lon})
	}
	return string(polyline.EncodeCoords(coords))
}

// DecodePolyline expands an encoded polyline back into coordinates.
func DecodePolyline(encoded string) ([]Coordinates, error) {
	coords, _, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, err
	}
	points := make([]Coordinates, 0, len(coords))
	for _, c := range coords {
		points = append(points, Coordinates{Lat: c[0], Lon: c[1]})
	}
	return points, nil
}
