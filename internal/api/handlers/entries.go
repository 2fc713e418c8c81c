package handlers

import (
	"log"
	"net/http"

	"journey-route-service/internal/api/dto"
	"journey-route-service/internal/ports"
)

type EntryHandler struct {
	Loader ports.EntryLoader
}

// List returns metadata for every journal entry, in date order. The map
// frontend uses it to drive the scroll position index.
func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Loader.LoadEntries(r.Context())
	if err != nil {
		log.Printf("load entries failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListEntriesResponse{Entries: make([]dto.EntryResponse, 0, len(entries))}
	for _, e := range entries {
		item := dto.EntryResponse{
			Date:     e.Date.Format("2006-01-02"),
			Slug:     e.Slug,
			Stem:     e.Stem(),
			Title:    e.Title,
			Segments: len(e.Segments),
		}
		if e.Location != nil {
			item.Location = &dto.LocationResponse{
				Name: e.Location.Name,
				Lat:  e.Location.Coordinates.Lat,
				Lon:  e.Location.Coordinates.Lon,
			}
		}
		res.Entries = append(res.Entries, item)
	}

	writeJSON(w, r, http.StatusOK, res)
}
