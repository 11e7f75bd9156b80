package dto

import "github.com/louwian/medoc-marathon/internal/domain"

// PlanningParamsRequest mirrors the planner's configuration surface. All
// fields are required when the params block is present; the server's
// defaults apply when it is omitted.
type PlanningParamsRequest struct {
	MarathonHours   int     `json:"marathon_hours"`
	MarathonMinutes int     `json:"marathon_minutes"`
	PaceMinutes     int     `json:"pace_minutes"`
	PaceSeconds     int     `json:"pace_seconds"`
	TimePerStop     int     `json:"time_per_stop_minutes"`
	MinStops        int     `json:"min_stops"`
	MaxStops        int     `json:"max_stops"`
	MaxGapKm        float64 `json:"max_gap_km"`
}

func (r PlanningParamsRequest) ToDomain() domain.PlanningParams {
	return domain.PlanningParams{
		GoalHours:    r.MarathonHours,
		GoalMinutes:  r.MarathonMinutes,
		PaceMinutes:  r.PaceMinutes,
		PaceSeconds:  r.PaceSeconds,
		DwellMinutes: r.TimePerStop,
		MinStops:     r.MinStops,
		MaxStops:     r.MaxStops,
		MaxGapKm:     r.MaxGapKm,
	}
}

// PlanRequest is the shared request body for validate, optimize, and
// itinerary calls: a parameter block plus the chosen stop names.
type PlanRequest struct {
	Params *PlanningParamsRequest `json:"params"`
	Stops  []string               `json:"stops"`
}

type ViolationResponse struct {
	Kind    string  `json:"kind"`
	Message string  `json:"message"`
	Value   float64 `json:"value"`
	Limit   float64 `json:"limit"`

	GapFrom    string  `json:"gap_from,omitempty"`
	GapTo      string  `json:"gap_to,omitempty"`
	GapStartKm float64 `json:"gap_start_km,omitempty"`
	GapEndKm   float64 `json:"gap_end_km,omitempty"`
}

type DiagnosticsResponse struct {
	TotalDistanceKm            float64  `json:"total_distance_km"`
	RequiredStopsForGap        int      `json:"required_stops_for_gap"`
	RunningTimeMinutes         float64  `json:"running_time_minutes"`
	StopTimeMinutes            float64  `json:"stop_time_minutes"`
	TotalTimeWithMinStops      float64  `json:"total_time_with_min_stops"`
	MarathonGoalMinutes        float64  `json:"marathon_goal_minutes"`
	NumSelectedStops           int      `json:"num_selected_stops"`
	MaxCurrentGapKm            float64  `json:"max_current_gap_km"`
	MaxCurrentGapBetween       string   `json:"max_current_gap_between,omitempty"`
	TotalTimeWithSelectedStops *float64 `json:"total_time_with_selected_stops,omitempty"`
}

type ValidationReportResponse struct {
	Valid    bool                `json:"valid"`
	Errors   []ViolationResponse `json:"errors"`
	Warnings []string            `json:"warnings"`
	Info     DiagnosticsResponse `json:"info"`
}

func NewValidationReportResponse(report domain.ValidationReport) ValidationReportResponse {
	res := ValidationReportResponse{
		Valid:    report.Valid,
		Errors:   make([]ViolationResponse, 0, len(report.Errors)),
		Warnings: report.Warnings,
		Info: DiagnosticsResponse{
			TotalDistanceKm:            report.Info.TotalDistanceKm,
			RequiredStopsForGap:        report.Info.RequiredStopsForGap,
			RunningTimeMinutes:         report.Info.RunningTimeMinutes,
			StopTimeMinutes:            report.Info.StopTimeMinutes,
			TotalTimeWithMinStops:      report.Info.TotalTimeWithMinStops,
			MarathonGoalMinutes:        report.Info.MarathonGoalMinutes,
			NumSelectedStops:           report.Info.NumSelectedStops,
			MaxCurrentGapKm:            report.Info.MaxCurrentGapKm,
			MaxCurrentGapBetween:       report.Info.MaxCurrentGapBetween,
			TotalTimeWithSelectedStops: report.Info.TotalTimeWithSelectedStops,
		},
	}
	if res.Warnings == nil {
		res.Warnings = []string{}
	}
	for _, v := range report.Errors {
		res.Errors = append(res.Errors, ViolationResponse{
			Kind:       v.Kind.String(),
			Message:    v.Message(),
			Value:      v.Value,
			Limit:      v.Limit,
			GapFrom:    v.GapFrom,
			GapTo:      v.GapTo,
			GapStartKm: v.GapStartKm,
			GapEndKm:   v.GapEndKm,
		})
	}
	return res
}

type OptimizeResponse struct {
	OptimizedStops []string                 `json:"optimized_stops"`
	Log            []string                 `json:"optimization_log"`
	Iterations     int                      `json:"iterations"`
	Success        bool                     `json:"success"`
	Report         ValidationReportResponse `json:"report"`
}

type ItinerarySegmentResponse struct {
	Kind              string  `json:"kind"`
	DurationMinutes   float64 `json:"duration_minutes"`
	CumulativeMinutes float64 `json:"cumulative_minutes"`

	From       string  `json:"from,omitempty"`
	To         string  `json:"to,omitempty"`
	FromKm     float64 `json:"from_km,omitempty"`
	ToKm       float64 `json:"to_km,omitempty"`
	DistanceKm float64 `json:"distance_km,omitempty"`

	StopName string  `json:"stop_name,omitempty"`
	Km       float64 `json:"km,omitempty"`
	PriceGBP float64 `json:"price_gbp,omitempty"`
	Rating   string  `json:"rating,omitempty"`
	Food     string  `json:"food,omitempty"`
}

type ItineraryResponse struct {
	Segments      []ItinerarySegmentResponse `json:"segments"`
	TotalStops    int                        `json:"total_stops"`
	TotalMinutes  float64                    `json:"total_minutes"`
	TotalTime     string                     `json:"total_time"`
	TotalPriceGBP float64                    `json:"total_price_gbp"`
	GoalMinutes   float64                    `json:"goal_minutes"`
	DeltaMinutes  float64                    `json:"delta_minutes"`
}

func NewItineraryResponse(it domain.Itinerary, totalTime string) ItineraryResponse {
	segments := make([]ItinerarySegmentResponse, 0, len(it.Segments))
	for _, seg := range it.Segments {
		out := ItinerarySegmentResponse{
			Kind:              seg.Kind.String(),
			DurationMinutes:   seg.DurationMinutes,
			CumulativeMinutes: seg.CumulativeMinutes,
		}
		if seg.Kind == domain.RunSegment {
			out.From = seg.FromName
			out.To = seg.ToName
			out.FromKm = seg.FromKm
			out.ToKm = seg.ToKm
			out.DistanceKm = seg.DistanceKm
		} else {
			out.StopName = seg.StopName
			out.Km = seg.Km
			out.PriceGBP = seg.PriceGBP
			out.Rating = seg.Rating.String()
			out.Food = seg.Food
		}
		segments = append(segments, out)
	}

	return ItineraryResponse{
		Segments:      segments,
		TotalStops:    it.TotalStops,
		TotalMinutes:  it.TotalMinutes,
		TotalTime:     totalTime,
		TotalPriceGBP: it.TotalPriceGBP,
		GoalMinutes:   it.GoalMinutes,
		DeltaMinutes:  it.DeltaMinutes,
	}
}
