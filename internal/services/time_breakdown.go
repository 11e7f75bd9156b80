package services

import (
	"fmt"

	"github.com/louwian/medoc-marathon/internal/domain"
)

// TimeBreakdown splits the projected race time for a given stop count into
// its running and dwelling parts.
type TimeBreakdown struct {
	RunningMinutes float64
	StopMinutes    float64
	TotalMinutes   float64
}

// BreakdownFor projects the time budget for running the full course with
// numStops tasting stops.
func BreakdownFor(course *domain.Course, params domain.PlanningParams, numStops int) TimeBreakdown {
	running := course.TotalKm() * params.PaceMinPerKm()
	stops := float64(numStops) * float64(params.DwellMinutes)
	return TimeBreakdown{
		RunningMinutes: running,
		StopMinutes:    stops,
		TotalMinutes:   running + stops,
	}
}

// FormatMinutes renders a minute count as "6h 30m".
func FormatMinutes(minutes float64) string {
	whole := int(minutes)
	return fmt.Sprintf("%dh %dm", whole/60, whole%60)
}
