package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/louwian/medoc-marathon/internal/domain"
)

func TestBuildItineraryAlternatesRunsAndStops(t *testing.T) {
	course := marathonCourse(t)
	stops := []domain.Stop{
		{Name: "Chateau Almond", Km: 10, Rating: domain.MustStop, PriceGBP: 20, Food: "oysters"},
		{Name: "Chateau Briarwood", Km: 30, Rating: domain.NiceToStop, PriceGBP: 30},
	}
	cat := buildCatalog(t, stops)

	params := domain.DefaultPlanningParams()
	params.GoalHours = 6
	params.GoalMinutes = 0
	params.PaceMinutes = 6
	params.PaceSeconds = 0
	params.DwellMinutes = 10

	it, err := BuildItinerary(course, params, cat, selectAll(stops))
	require.NoError(t, err)

	require.Len(t, it.Segments, 5)
	require.Equal(t, 2, it.TotalStops)
	require.InDelta(t, 273.2, it.TotalMinutes, 1e-9)
	require.InDelta(t, 50, it.TotalPriceGBP, 1e-9)
	require.InDelta(t, 360, it.GoalMinutes, 1e-9)
	require.InDelta(t, -86.8, it.DeltaMinutes, 1e-9)

	first := it.Segments[0]
	require.Equal(t, domain.RunSegment, first.Kind)
	require.Equal(t, domain.CourseStart, first.FromName)
	require.Equal(t, "Chateau Almond", first.ToName)
	require.InDelta(t, 10, first.DistanceKm, 1e-9)
	require.InDelta(t, 60, first.DurationMinutes, 1e-9)
	require.InDelta(t, 60, first.CumulativeMinutes, 1e-9)

	tasting := it.Segments[1]
	require.Equal(t, domain.StopSegment, tasting.Kind)
	require.Equal(t, "Chateau Almond", tasting.StopName)
	require.Equal(t, "oysters", tasting.Food)
	require.InDelta(t, 10, tasting.DurationMinutes, 1e-9)
	require.InDelta(t, 70, tasting.CumulativeMinutes, 1e-9)

	last := it.Segments[4]
	require.Equal(t, domain.RunSegment, last.Kind)
	require.Equal(t, "Chateau Briarwood", last.FromName)
	require.Equal(t, domain.CourseFinish, last.ToName)
	require.InDelta(t, 42.2, last.ToKm, 1e-9)
	require.InDelta(t, it.TotalMinutes, last.CumulativeMinutes, 1e-9)
}

func TestBuildItineraryRejectsEmptySelection(t *testing.T) {
	course := marathonCourse(t)
	cat := buildCatalog(t, evenSixStops())

	_, err := BuildItinerary(course, domain.DefaultPlanningParams(), cat, domain.NewSelection())
	require.Error(t, err)
}

func TestBreakdownFor(t *testing.T) {
	course := marathonCourse(t)
	params := domain.DefaultPlanningParams()

	b := BreakdownFor(course, params, 6)
	require.InDelta(t, 274.3, b.RunningMinutes, 1e-9)
	require.InDelta(t, 48, b.StopMinutes, 1e-9)
	require.InDelta(t, 322.3, b.TotalMinutes, 1e-9)
}

func TestFormatMinutes(t *testing.T) {
	require.Equal(t, "6h 30m", FormatMinutes(390))
	require.Equal(t, "0h 59m", FormatMinutes(59.9))
	require.Equal(t, "5h 0m", FormatMinutes(300))
}
