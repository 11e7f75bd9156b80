package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/louwian/medoc-marathon/internal/api/dto"
	"github.com/louwian/medoc-marathon/internal/domain"
	"github.com/louwian/medoc-marathon/internal/platform/obs"
	"github.com/louwian/medoc-marathon/internal/services"
)

// PlanHandler runs the planning core against the session's course and
// catalog. Parameters and selection arrive with every call; nothing is held
// between requests.
type PlanHandler struct {
	Course        *domain.Course
	Catalog       *domain.Catalog
	DefaultParams domain.PlanningParams
}

// Validate returns the constraint report for the submitted selection.
func (h *PlanHandler) Validate(w http.ResponseWriter, r *http.Request) {
	params, selection, ok := h.decodePlanRequest(w, r)
	if !ok {
		return
	}

	var err error
	defer obs.Time(r.Context(), "validate")(&err)

	report := services.ValidateConstraints(h.Course, params, h.Catalog, selection)
	obs.ValidationOutcomes.WithLabelValues(outcomeLabel(report.Valid)).Inc()

	writeJSON(w, r, http.StatusOK, dto.NewValidationReportResponse(report))
}

// Optimize runs the repair loop and returns the optimized selection, the
// audit log, and the final report.
func (h *PlanHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	params, selection, ok := h.decodePlanRequest(w, r)
	if !ok {
		return
	}

	var err error
	defer obs.Time(r.Context(), "optimize")(&err)

	result := services.OptimizeRoute(h.Course, params, h.Catalog, selection)
	obs.OptimizeIterations.Observe(float64(result.Iterations))

	ordered := h.Catalog.SelectedByKm(result.OptimizedStops)
	names := make([]string, 0, len(ordered))
	for _, s := range ordered {
		names = append(names, s.Name)
	}

	final := services.ValidateConstraints(h.Course, params, h.Catalog, result.OptimizedStops)
	res := dto.OptimizeResponse{
		OptimizedStops: names,
		Log:            result.Log,
		Iterations:     result.Iterations,
		Success:        result.Success,
		Report:         dto.NewValidationReportResponse(final),
	}
	writeJSON(w, r, http.StatusOK, res)
}

// Itinerary projects the selection into the race-day timeline.
func (h *PlanHandler) Itinerary(w http.ResponseWriter, r *http.Request) {
	params, selection, ok := h.decodePlanRequest(w, r)
	if !ok {
		return
	}

	var err error
	defer obs.Time(r.Context(), "itinerary")(&err)

	itinerary, err := services.BuildItinerary(h.Course, params, h.Catalog, selection)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "select at least one stop to build an itinerary")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewItineraryResponse(itinerary, services.FormatMinutes(itinerary.TotalMinutes)))
}

// decodePlanRequest parses the shared request body, applies parameter
// defaults, validates ranges, and resolves stop names against the catalog.
func (h *PlanHandler) decodePlanRequest(w http.ResponseWriter, r *http.Request) (domain.PlanningParams, domain.Selection, bool) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return domain.PlanningParams{}, domain.Selection{}, false
	}

	var req dto.PlanRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return domain.PlanningParams{}, domain.Selection{}, false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return domain.PlanningParams{}, domain.Selection{}, false
	}

	params := h.DefaultParams
	if req.Params != nil {
		params = req.Params.ToDomain()
	}
	if err := params.Validate(); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return domain.PlanningParams{}, domain.Selection{}, false
	}

	selection := domain.NewSelection()
	for _, name := range req.Stops {
		if _, ok := h.Catalog.ByName(name); !ok {
			writeError(w, r, http.StatusBadRequest, fmt.Sprintf("unknown stop: %q", name))
			return domain.PlanningParams{}, domain.Selection{}, false
		}
		selection.Add(name)
	}

	return params, selection, true
}

func outcomeLabel(valid bool) string { return strconv.FormatBool(valid) }
