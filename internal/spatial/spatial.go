// Package spatial provides the geographic helpers the planner delegates to:
// great-circle distances for building cumulative course distances and
// interpolation of a coordinate at a given offset along the course.
package spatial

import (
	"sort"

	"github.com/golang/geo/s2"

	"github.com/louwian/medoc-marathon/internal/domain"
)

const earthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance between two coordinates.
func DistanceKm(a, b domain.Coordinates) float64 {
	p1 := s2.LatLngFromDegrees(a.Lat, a.Lon)
	p2 := s2.LatLngFromDegrees(b.Lat, b.Lon)
	return p1.Distance(p2).Radians() * earthRadiusKm
}

// CumulativePoints turns a raw polyline into course points carrying the
// cumulative distance from the first vertex.
func CumulativePoints(coords []domain.Coordinates) []domain.CoursePoint {
	points := make([]domain.CoursePoint, len(coords))
	km := 0.0
	for i, c := range coords {
		if i > 0 {
			km += DistanceKm(coords[i-1], c)
		}
		points[i] = domain.CoursePoint{Km: km, Coords: c}
	}
	return points
}

// PointAlongCourse returns the interpolated coordinates at km along the
// course polyline. Offsets outside the course clamp to its endpoints.
func PointAlongCourse(points []domain.CoursePoint, km float64) domain.Coordinates {
	if len(points) == 0 {
		return domain.Coordinates{}
	}
	if km <= points[0].Km {
		return points[0].Coords
	}
	last := points[len(points)-1]
	if km >= last.Km {
		return last.Coords
	}

	// First point at or beyond km; its predecessor brackets from below.
	i := sort.Search(len(points), func(n int) bool { return points[n].Km >= km })
	a, b := points[i-1], points[i]
	span := b.Km - a.Km
	if span <= 0 {
		return a.Coords
	}

	frac := (km - a.Km) / span
	pa := s2.PointFromLatLng(s2.LatLngFromDegrees(a.Coords.Lat, a.Coords.Lon))
	pb := s2.PointFromLatLng(s2.LatLngFromDegrees(b.Coords.Lat, b.Coords.Lon))
	mid := s2.LatLngFromPoint(s2.Interpolate(frac, pa, pb))
	return domain.Coordinates{Lat: mid.Lat.Degrees(), Lon: mid.Lng.Degrees()}
}

// LocateStops returns a copy of stops with coordinates interpolated from the
// course at each stop's position. Done once per session at load time.
func LocateStops(course *domain.Course, stops []domain.Stop) []domain.Stop {
	located := make([]domain.Stop, len(stops))
	copy(located, stops)
	for i := range located {
		located[i].Coords = PointAlongCourse(course.Points(), located[i].Km)
	}
	return located
}
