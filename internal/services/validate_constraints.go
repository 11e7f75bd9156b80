package services

import (
	"fmt"
	"math"

	"github.com/louwian/medoc-marathon/internal/domain"
)

// ValidateConstraints checks one selection against one parameter set and
// returns a structured report. It is a pure function: five independent
// checks all run, accumulating errors and warnings in check order, and the
// same inputs always produce the same report.
//
// Checks 3 and 5 are skipped for an empty selection; an empty selection
// cannot violate gap or selected-time constraints, though the global
// parameter checks (1 and 2) still apply.
func ValidateConstraints(
	course *domain.Course,
	params domain.PlanningParams,
	catalog *domain.Catalog,
	selection domain.Selection,
) domain.ValidationReport {
	total := course.TotalKm()
	goal := params.GoalTotalMinutes()
	pace := params.PaceMinPerKm()
	dwell := float64(params.DwellMinutes)

	report := domain.ValidationReport{}
	info := &report.Info
	info.TotalDistanceKm = total
	info.MarathonGoalMinutes = goal

	// Check 1: stop count needed to honor the max gap at all.
	required := int(math.Ceil(total / params.MaxGapKm))
	info.RequiredStopsForGap = required
	switch {
	case required > params.MaxStops:
		report.Errors = append(report.Errors, domain.Violation{
			Kind:  domain.ViolationInsufficientStopsForGap,
			Value: float64(required),
			Limit: float64(params.MaxStops),
		})
	case required < params.MinStops:
		report.Warnings = append(report.Warnings, fmt.Sprintf(
			"a max gap of %.1fkm needs only %d stops but at least %d are requested; consider reducing max gap or min stops",
			params.MaxGapKm, required, params.MinStops,
		))
	}

	// Check 2: is the goal reachable even with the fewest stops?
	running := total * pace
	minStopTime := float64(params.MinStops) * dwell
	minTotal := running + minStopTime
	info.RunningTimeMinutes = running
	info.StopTimeMinutes = minStopTime
	info.TotalTimeWithMinStops = minTotal
	switch {
	case minTotal > goal:
		report.Errors = append(report.Errors, domain.Violation{
			Kind:  domain.ViolationGoalUnreachable,
			Value: minTotal,
			Limit: goal,
		})
	case minTotal > goal*0.9:
		report.Warnings = append(report.Warnings, fmt.Sprintf(
			"tight schedule: only %.0f minutes of buffer with minimum stops",
			goal-minTotal,
		))
	}

	selected := catalog.SelectedByKm(selection)

	// Check 3: realized gaps in the current selection.
	if len(selected) > 0 {
		if widest, ok := widestGap(courseGaps(total, selected)); ok {
			info.MaxCurrentGapKm = widest.WidthKm
			info.MaxCurrentGapBetween = describeGap(widest)
			switch {
			case widest.WidthKm > params.MaxGapKm:
				report.Errors = append(report.Errors, domain.Violation{
					Kind:       domain.ViolationGapExceeded,
					Value:      widest.WidthKm,
					Limit:      params.MaxGapKm,
					GapFrom:    widest.FromName,
					GapTo:      widest.ToName,
					GapStartKm: widest.StartKm,
					GapEndKm:   widest.EndKm,
				})
			case widest.WidthKm > params.MaxGapKm*0.8:
				report.Warnings = append(report.Warnings, fmt.Sprintf(
					"large gap of %.1fkm between %s and %s is close to the %.1fkm limit",
					widest.WidthKm, widest.FromName, widest.ToName, params.MaxGapKm,
				))
			}
		}
	}

	// Check 4: stop count bound.
	n := len(selected)
	info.NumSelectedStops = n
	switch {
	case n > params.MaxStops:
		report.Errors = append(report.Errors, domain.Violation{
			Kind:  domain.ViolationTooManyStops,
			Value: float64(n),
			Limit: float64(params.MaxStops),
		})
	case float64(n) > 0.9*float64(params.MaxStops):
		report.Warnings = append(report.Warnings, fmt.Sprintf(
			"%d stops selected, close to the maximum of %d", n, params.MaxStops,
		))
	}

	// Check 5: actual time with the selected stop count.
	if n > 0 {
		actual := running + float64(n)*dwell
		info.TotalTimeWithSelectedStops = &actual
		switch {
		case actual > goal:
			report.Errors = append(report.Errors, domain.Violation{
				Kind:  domain.ViolationTimeOverGoal,
				Value: actual,
				Limit: goal,
			})
		case actual > goal*0.95:
			report.Warnings = append(report.Warnings, fmt.Sprintf(
				"the current selection takes %.0f minutes, within %.0f minutes of the goal",
				actual, goal-actual,
			))
		}
	}

	report.Valid = len(report.Errors) == 0
	return report
}
