package services

import (
	"errors"

	"github.com/louwian/medoc-marathon/internal/domain"
)

// BuildItinerary projects a selection into the race-day timeline: an
// alternating sequence of running legs and tasting stops with cumulative
// elapsed time, plus totals and the finish-vs-goal delta. It never mutates
// the selection.
func BuildItinerary(
	course *domain.Course,
	params domain.PlanningParams,
	catalog *domain.Catalog,
	selection domain.Selection,
) (domain.Itinerary, error) {
	selected := catalog.SelectedByKm(selection)
	if len(selected) == 0 {
		return domain.Itinerary{}, errors.New("build itinerary: selection is empty")
	}

	total := course.TotalKm()
	pace := params.PaceMinPerKm()
	dwell := float64(params.DwellMinutes)
	goal := params.GoalTotalMinutes()

	segments := make([]domain.ItinerarySegment, 0, 2*len(selected)+1)
	cumulative := 0.0
	totalPrice := 0.0

	prevName, prevKm := domain.CourseStart, 0.0
	for _, s := range selected {
		dist := s.Km - prevKm
		runTime := dist * pace
		cumulative += runTime
		segments = append(segments, domain.ItinerarySegment{
			Kind:              domain.RunSegment,
			FromName:          prevName,
			ToName:            s.Name,
			FromKm:            prevKm,
			ToKm:              s.Km,
			DistanceKm:        dist,
			DurationMinutes:   runTime,
			CumulativeMinutes: cumulative,
		})

		cumulative += dwell
		segments = append(segments, domain.ItinerarySegment{
			Kind:              domain.StopSegment,
			StopName:          s.Name,
			Km:                s.Km,
			PriceGBP:          s.PriceGBP,
			Rating:            s.Rating,
			Food:              s.Food,
			DurationMinutes:   dwell,
			CumulativeMinutes: cumulative,
		})
		totalPrice += s.PriceGBP

		prevName, prevKm = s.Name, s.Km
	}

	// Final leg to the finish line.
	dist := total - prevKm
	runTime := dist * pace
	cumulative += runTime
	segments = append(segments, domain.ItinerarySegment{
		Kind:              domain.RunSegment,
		FromName:          prevName,
		ToName:            domain.CourseFinish,
		FromKm:            prevKm,
		ToKm:              total,
		DistanceKm:        dist,
		DurationMinutes:   runTime,
		CumulativeMinutes: cumulative,
	})

	return domain.Itinerary{
		Segments:      segments,
		TotalStops:    len(selected),
		TotalMinutes:  cumulative,
		TotalPriceGBP: totalPrice,
		GoalMinutes:   goal,
		DeltaMinutes:  cumulative - goal,
	}, nil
}
