package domain

import "time"

// Named place attached to a journal entry.
type Location struct {
	Name        string
	Coordinates Coordinates
}

// One declared leg of travel between two endpoint references.
// From and To stay symbolic here ("previous", "current", a location name,
// or a literal "lat,lon" pair); resolution happens against the entry history.
type SegmentSpec struct {
	From string
	To   string
	Mode TransportMode
}

// Entry is one dated journal record extracted from a content file.
// Location is nil for entries written without geographic metadata.
type Entry struct {
	Date     time.Time
	Slug     string
	Title    string
	Location *Location
	Segments []SegmentSpec
	Path     string
}

// Stem returns the output filename stem shared with the source file,
// e.g. "2024-05-12-lisbon". Skip-if-exists checks rely on it being stable.
func (e Entry) Stem() string {
	return e.Date.Format("2006-01-02") + "-" + e.Slug
}
