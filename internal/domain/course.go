package domain

import (
	"errors"
	"fmt"
)

// Labels for the virtual endpoints of the course. Gap descriptions and
// itinerary segments use them in place of a stop name.
const (
	CourseStart  = "Start"
	CourseFinish = "Finish"
)

// CoursePoint is one vertex of the race course polyline together with its
// cumulative distance from the start line.
type CoursePoint struct {
	Km     float64
	Coords Coordinates
}

// Course is the immutable race course: a polyline ordered by non-decreasing
// cumulative distance. The zero value is unusable; construct with NewCourse,
// which rejects malformed input rather than letting it reach the planner.
type Course struct {
	points []CoursePoint
}

func NewCourse(points []CoursePoint) (*Course, error) {
	if len(points) == 0 {
		return nil, errors.New("new course: polyline must contain at least one point")
	}
	if points[0].Km < 0 {
		return nil, fmt.Errorf("new course: first point has negative distance %.3f", points[0].Km)
	}
	for i := 1; i < len(points); i++ {
		if points[i].Km < points[i-1].Km {
			return nil, fmt.Errorf(
				"new course: cumulative distance decreases at point %d (%.3f -> %.3f)",
				i, points[i-1].Km, points[i].Km,
			)
		}
	}

	owned := make([]CoursePoint, len(points))
	copy(owned, points)
	return &Course{points: owned}, nil
}

// TotalKm returns the full course length.
func (c *Course) TotalKm() float64 { return c.points[len(c.points)-1].Km }

// Points returns the course polyline. Callers must treat it as read-only.
func (c *Course) Points() []CoursePoint { return c.points }

func (c *Course) Start() Coordinates  { return c.points[0].Coords }
func (c *Course) Finish() Coordinates { return c.points[len(c.points)-1].Coords }
