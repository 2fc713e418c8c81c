package dto

type LocationResponse struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

type EntryResponse struct {
	Date     string            `json:"date"`
	Slug     string            `json:"slug"`
	Stem     string            `json:"stem"`
	Title    string            `json:"title,omitempty"`
	Location *LocationResponse `json:"location,omitempty"`
	Segments int               `json:"segments"`
}

type ListEntriesResponse struct {
	Entries []EntryResponse `json:"entries"`
}
