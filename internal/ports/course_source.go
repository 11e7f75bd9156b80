package ports

import (
	"context"

	"github.com/louwian/medoc-marathon/internal/domain"
)

// Port: a boundary for loading the race course polyline from a data source.
type CourseSource interface {
	// Load the full course, ordered by cumulative distance.
	LoadCourse(ctx context.Context) (*domain.Course, error)
}
