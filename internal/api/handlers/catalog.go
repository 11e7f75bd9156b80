package handlers

import (
	"net/http"

	"github.com/louwian/medoc-marathon/internal/api/dto"
	"github.com/louwian/medoc-marathon/internal/domain"
)

// CatalogHandler exposes the session's read-only course and stop data.
type CatalogHandler struct {
	Course  *domain.Course
	Catalog *domain.Catalog
}

func (h *CatalogHandler) ListStops(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	defaults := h.Catalog.DefaultSelection()
	res := dto.ListStopsResponse{
		Stops: make([]dto.StopResponse, 0, h.Catalog.Len()),
	}
	for _, s := range h.Catalog.All() {
		res.Stops = append(res.Stops, dto.StopResponse{
			Name:            s.Name,
			Km:              s.Km,
			Rating:          s.Rating.String(),
			PriceGBP:        s.PriceGBP,
			Food:            s.Food,
			Lat:             s.Coords.Lat,
			Lon:             s.Coords.Lon,
			DefaultSelected: defaults.Contains(s.Name),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *CatalogHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	res := dto.CourseResponse{
		TotalKm:   h.Course.TotalKm(),
		NumPoints: len(h.Course.Points()),
		Start:     h.Course.Start().CoordsToList(),
		Finish:    h.Course.Finish().CoordsToList(),
	}
	writeJSON(w, r, http.StatusOK, res)
}
