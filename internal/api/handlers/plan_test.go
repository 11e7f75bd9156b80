package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/louwian/medoc-marathon/internal/api/dto"
	"github.com/louwian/medoc-marathon/internal/domain"
)

func testPlanHandler(t *testing.T) *PlanHandler {
	t.Helper()

	course, err := domain.NewCourse([]domain.CoursePoint{
		{Km: 0}, {Km: 42.2},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stops := []domain.Stop{
		{Name: "Chateau Almond", Km: 6, Rating: domain.MustStop, PriceGBP: 20},
		{Name: "Chateau Briarwood", Km: 12, Rating: domain.NiceToStop, PriceGBP: 25},
		{Name: "Chateau Cormier", Km: 18, Rating: domain.MustStop, PriceGBP: 30},
		{Name: "Chateau Dunois", Km: 24, Rating: domain.CanStop, PriceGBP: 35},
		{Name: "Chateau Esterel", Km: 30, Rating: domain.MustStop, PriceGBP: 40},
		{Name: "Chateau Fontaine", Km: 36, Rating: domain.NiceToStop, PriceGBP: 45},
	}
	cat, err := domain.NewCatalog(stops, course.TotalKm())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	return &PlanHandler{
		Course:        course,
		Catalog:       cat,
		DefaultParams: domain.DefaultPlanningParams(),
	}
}

func allStopNames() []string {
	return []string{
		"Chateau Almond", "Chateau Briarwood", "Chateau Cormier",
		"Chateau Dunois", "Chateau Esterel", "Chateau Fontaine",
	}
}

func postJSON(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestPlanHandlerValidate(t *testing.T) {
	h := testPlanHandler(t)

	body, _ := json.Marshal(map[string]any{"stops": allStopNames()})
	rec := postJSON(t, h.Validate, string(body))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var res dto.ValidationReportResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !res.Valid {
		t.Errorf("expected valid report, got errors: %+v", res.Errors)
	}
	if res.Errors == nil || res.Warnings == nil {
		t.Error("errors and warnings must serialize as arrays, not null")
	}
	if res.Info.NumSelectedStops != 6 {
		t.Errorf("num selected = %d, want 6", res.Info.NumSelectedStops)
	}
}

func TestPlanHandlerValidateCustomParams(t *testing.T) {
	h := testPlanHandler(t)

	body := `{"params":{"marathon_hours":6,"marathon_minutes":0,"pace_minutes":6,"pace_seconds":0,"time_per_stop_minutes":8,"min_stops":6,"max_stops":6,"max_gap_km":8.0},"stops":["Chateau Almond"]}`
	rec := postJSON(t, h.Validate, body)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var res dto.ValidationReportResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.Valid {
		t.Error("expected gap violations with a single selected stop")
	}
	if res.Info.MarathonGoalMinutes != 360 {
		t.Errorf("goal = %v, want custom 360", res.Info.MarathonGoalMinutes)
	}
}

func TestPlanHandlerRejectsBadInput(t *testing.T) {
	h := testPlanHandler(t)

	cases := []struct {
		name string
		body string
	}{
		{"invalid json", `{"stops": [`},
		{"unknown field", `{"stopz": []}`},
		{"unknown stop", `{"stops": ["Chateau Nowhere"]}`},
		{"out-of-range params", `{"params":{"marathon_hours":12,"marathon_minutes":0,"pace_minutes":6,"pace_seconds":0,"time_per_stop_minutes":8,"min_stops":6,"max_stops":15,"max_gap_km":8.0}}`},
		{"two json objects", `{"stops": []}{"stops": []}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := postJSON(t, h.Validate, tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestPlanHandlerMethodNotAllowed(t *testing.T) {
	h := testPlanHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.Validate(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
	if allow := rec.Header().Get("Allow"); allow != http.MethodPost {
		t.Errorf("Allow = %q, want POST", allow)
	}
}

func TestPlanHandlerOptimize(t *testing.T) {
	h := testPlanHandler(t)

	// Start with must-stops only; the optimizer has to fill the gaps.
	body, _ := json.Marshal(map[string]any{
		"stops": []string{"Chateau Almond", "Chateau Cormier", "Chateau Esterel"},
	})
	rec := postJSON(t, h.Optimize, string(body))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var res dto.OptimizeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !res.Success {
		t.Fatalf("expected success, log: %v", res.Log)
	}
	if !res.Report.Valid {
		t.Errorf("final report not valid: %+v", res.Report.Errors)
	}
	if len(res.Log) == 0 || res.Iterations < 1 {
		t.Errorf("expected a populated log and iteration count, got %d lines, %d iterations", len(res.Log), res.Iterations)
	}

	// Optimized stops come back in course order.
	var lastKm float64 = -1
	for _, name := range res.OptimizedStops {
		stop, ok := h.Catalog.ByName(name)
		if !ok {
			t.Fatalf("unknown stop in response: %q", name)
		}
		if stop.Km < lastKm {
			t.Errorf("stops out of course order: %v", res.OptimizedStops)
		}
		lastKm = stop.Km
	}
}

func TestPlanHandlerItinerary(t *testing.T) {
	h := testPlanHandler(t)

	body, _ := json.Marshal(map[string]any{"stops": allStopNames()})
	rec := postJSON(t, h.Itinerary, string(body))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var res dto.ItineraryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.TotalStops != 6 {
		t.Errorf("total stops = %d, want 6", res.TotalStops)
	}
	// 6 stops alternate with 7 running legs.
	if len(res.Segments) != 13 {
		t.Errorf("segments = %d, want 13", len(res.Segments))
	}
	if res.Segments[0].Kind != "running" || res.Segments[1].Kind != "stop" {
		t.Errorf("segments do not alternate: %q, %q", res.Segments[0].Kind, res.Segments[1].Kind)
	}
	if res.TotalTime == "" {
		t.Error("expected formatted total time")
	}
}

func TestPlanHandlerItineraryEmptySelection(t *testing.T) {
	h := testPlanHandler(t)

	rec := postJSON(t, h.Itinerary, `{"stops": []}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", rec.Code, rec.Body.String())
	}
}
