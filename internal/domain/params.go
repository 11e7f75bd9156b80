package domain

import "fmt"

// PlanningParams holds the user-configured planning constraints. Values are
// validated at the input surface; planning functions report violations but
// never clamp or rewrite parameters.
type PlanningParams struct {
	GoalHours    int
	GoalMinutes  int
	PaceMinutes  int
	PaceSeconds  int
	DwellMinutes int
	MinStops     int
	MaxStops     int
	MaxGapKm     float64
}

// DefaultPlanningParams mirrors the published planner defaults: a 6h30m
// marathon at 6:30/km with 8 minutes per stop, 6 to 15 stops, 8.0 km max gap.
func DefaultPlanningParams() PlanningParams {
	return PlanningParams{
		GoalHours:    6,
		GoalMinutes:  30,
		PaceMinutes:  6,
		PaceSeconds:  30,
		DwellMinutes: 8,
		MinStops:     6,
		MaxStops:     15,
		MaxGapKm:     8.0,
	}
}

// GoalTotalMinutes returns the marathon time goal in minutes.
func (p PlanningParams) GoalTotalMinutes() float64 {
	return float64(p.GoalHours*60 + p.GoalMinutes)
}

// PaceMinPerKm returns the running pace in minutes per kilometre.
func (p PlanningParams) PaceMinPerKm() float64 {
	return float64(p.PaceMinutes) + float64(p.PaceSeconds)/60
}

// Validate enforces the input-surface ranges. Anything outside them is
// rejected here rather than silently adjusted downstream.
func (p PlanningParams) Validate() error {
	if p.GoalHours < 3 || p.GoalHours > 7 {
		return fmt.Errorf("planning params: marathon hours must be between 3 and 7, got %d", p.GoalHours)
	}
	if p.GoalMinutes < 0 || p.GoalMinutes > 59 {
		return fmt.Errorf("planning params: marathon minutes must be between 0 and 59, got %d", p.GoalMinutes)
	}
	if p.PaceMinutes < 4 || p.PaceMinutes > 12 {
		return fmt.Errorf("planning params: pace minutes must be between 4 and 12, got %d", p.PaceMinutes)
	}
	if p.PaceSeconds < 0 || p.PaceSeconds > 59 {
		return fmt.Errorf("planning params: pace seconds must be between 0 and 59, got %d", p.PaceSeconds)
	}
	if p.DwellMinutes < 2 || p.DwellMinutes > 30 {
		return fmt.Errorf("planning params: time per stop must be between 2 and 30 minutes, got %d", p.DwellMinutes)
	}
	if p.MinStops < 1 {
		return fmt.Errorf("planning params: min stops must be at least 1, got %d", p.MinStops)
	}
	if p.MaxStops > 23 {
		return fmt.Errorf("planning params: max stops must be at most 23, got %d", p.MaxStops)
	}
	if p.MinStops > p.MaxStops {
		return fmt.Errorf("planning params: min stops (%d) cannot exceed max stops (%d)", p.MinStops, p.MaxStops)
	}
	if p.MaxGapKm < 1.0 || p.MaxGapKm > 20.0 {
		return fmt.Errorf("planning params: max gap must be between 1.0 and 20.0 km, got %.1f", p.MaxGapKm)
	}
	return nil
}
