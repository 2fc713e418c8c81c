package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"regexp"

	"github.com/julienschmidt/httprouter"

	"journey-route-service/internal/api/dto"
	"journey-route-service/internal/domain"
)

// Route document stems look like "2024-05-12-lisbon".
var stemPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}-[A-Za-z0-9._-]+$`)

type RouteHandler struct {
	Dir string
}

// Get serves one generated route document. With ?decode=true each segment
// also carries its decoded [lat, lon] point list for clients that do not
// ship a polyline decoder.
func (h *RouteHandler) Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	stem := ps.ByName("stem")
	if !stemPattern.MatchString(stem) {
		writeError(w, r, http.StatusBadRequest, "invalid route stem")
		return
	}

	data, err := os.ReadFile(filepath.Join(h.Dir, stem+".json"))
	if os.IsNotExist(err) {
		writeError(w, r, http.StatusNotFound, "route document not found")
		return
	}
	if err != nil {
		log.Printf("read route document failed: stem=%s err=%v", stem, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	var doc domain.RouteDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Printf("decode route document failed: stem=%s err=%v", stem, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	decode := r.URL.Query().Get("decode") == "true"

	res := dto.RouteResponse{
		Date:     doc.Date,
		Slug:     doc.Slug,
		Segments: make([]dto.SegmentResponse, 0, len(doc.Segments)),
	}
	for _, s := range doc.Segments {
		item := dto.SegmentResponse{
			Mode:            s.Mode.String(),
			From:            s.From,
			To:              s.To,
			Polyline:        s.Polyline,
			DistanceMeters:  s.DistanceMeters,
			DurationSeconds: s.DurationSeconds,
			Fetched:         s.Fetched,
		}

		if decode {
			points, err := domain.DecodePolyline(s.Polyline)
			if err != nil {
				log.Printf("decode polyline failed: stem=%s err=%v", stem, err)
				writeError(w, r, http.StatusInternalServerError, "internal server error")
				return
			}
			item.Points = make([][]float64, 0, len(points))
			for _, p := range points {
				item.Points = append(item.Points, []float64{p.Lat, p.Lon})
			}
		}

		res.Segments = append(res.Segments, item)
	}

	writeJSON(w, r, http.StatusOK, res)
}
