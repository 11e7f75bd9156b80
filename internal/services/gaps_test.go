package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/louwian/medoc-marathon/internal/domain"
)

func TestCourseGapsIncludesVirtualEndpoints(t *testing.T) {
	selected := []domain.Stop{
		{Name: "Chateau Almond", Km: 5},
		{Name: "Chateau Briarwood", Km: 12},
	}

	gaps := courseGaps(20, selected)

	require.Len(t, gaps, 3)
	require.Equal(t, domain.CourseStart, gaps[0].FromName)
	require.InDelta(t, 5, gaps[0].WidthKm, 1e-9)
	require.Equal(t, "Chateau Almond", gaps[1].FromName)
	require.InDelta(t, 7, gaps[1].WidthKm, 1e-9)
	require.Equal(t, domain.CourseFinish, gaps[2].ToName)
	require.InDelta(t, 8, gaps[2].WidthKm, 1e-9)
}

func TestCourseGapsOmitsZeroWidthEndpointGaps(t *testing.T) {
	selected := []domain.Stop{
		{Name: "Chateau Almond", Km: 0},
		{Name: "Chateau Briarwood", Km: 20},
	}

	gaps := courseGaps(20, selected)

	require.Len(t, gaps, 1)
	require.Equal(t, "Chateau Almond", gaps[0].FromName)
	require.Equal(t, "Chateau Briarwood", gaps[0].ToName)
}

func TestCourseGapsEmptySelection(t *testing.T) {
	require.Nil(t, courseGaps(20, nil))
}

func TestWidestGapTieKeepsEarliestStart(t *testing.T) {
	selected := []domain.Stop{
		{Name: "Chateau Almond", Km: 10},
		{Name: "Chateau Briarwood", Km: 20},
	}

	// Both virtual gaps and the middle gap are 10km wide.
	widest, ok := widestGap(courseGaps(30, selected))
	require.True(t, ok)
	require.Equal(t, domain.CourseStart, widest.FromName)
	require.InDelta(t, 0, widest.StartKm, 1e-9)
}

func TestDescribeGap(t *testing.T) {
	g := gap{FromName: domain.CourseStart, ToName: "Chateau Almond", StartKm: 0, EndKm: 9.5}
	require.Equal(t, "Start (0.0km) -> Chateau Almond (9.5km)", describeGap(g))
}
