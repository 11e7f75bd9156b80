package spatial

import (
	"math"
	"testing"

	"github.com/louwian/medoc-marathon/internal/domain"
)

func TestDistanceKmEquatorDegree(t *testing.T) {
	a := domain.Coordinates{Lon: 0, Lat: 0}
	b := domain.Coordinates{Lon: 1, Lat: 0}

	// One degree of longitude on the equator is about 111.2km.
	got := DistanceKm(a, b)
	if math.Abs(got-111.19) > 0.5 {
		t.Errorf("DistanceKm = %v, want ~111.19", got)
	}

	if d := DistanceKm(a, a); d != 0 {
		t.Errorf("distance to self = %v, want 0", d)
	}
}

func TestCumulativePoints(t *testing.T) {
	coords := []domain.Coordinates{
		{Lon: 0, Lat: 0},
		{Lon: 0.1, Lat: 0},
		{Lon: 0.2, Lat: 0},
	}

	points := CumulativePoints(coords)
	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}
	if points[0].Km != 0 {
		t.Errorf("first km = %v, want 0", points[0].Km)
	}
	step := points[1].Km
	if math.Abs(points[2].Km-2*step) > 1e-6 {
		t.Errorf("cumulative km = %v, want ~%v", points[2].Km, 2*step)
	}
}

func TestPointAlongCourseClampsAndInterpolates(t *testing.T) {
	points := CumulativePoints([]domain.Coordinates{
		{Lon: 0, Lat: 0},
		{Lon: 1, Lat: 0},
	})
	total := points[len(points)-1].Km

	if got := PointAlongCourse(points, -5); got != points[0].Coords {
		t.Errorf("before start = %+v, want start", got)
	}
	if got := PointAlongCourse(points, total+5); got != points[1].Coords {
		t.Errorf("past finish = %+v, want finish", got)
	}

	mid := PointAlongCourse(points, total/2)
	if math.Abs(mid.Lon-0.5) > 1e-3 {
		t.Errorf("midpoint lon = %v, want ~0.5", mid.Lon)
	}
	if math.Abs(mid.Lat) > 1e-3 {
		t.Errorf("midpoint lat = %v, want ~0", mid.Lat)
	}
}

func TestLocateStops(t *testing.T) {
	points := CumulativePoints([]domain.Coordinates{
		{Lon: 0, Lat: 0},
		{Lon: 1, Lat: 0},
	})
	course, err := domain.NewCourse(points)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stops := []domain.Stop{{Name: "Chateau Almond", Km: course.TotalKm() / 2}}
	located := LocateStops(course, stops)

	if located[0].Coords == (domain.Coordinates{}) {
		t.Error("expected interpolated coordinates, got zero value")
	}
	if stops[0].Coords != (domain.Coordinates{}) {
		t.Error("input slice was mutated")
	}
}
