package ports

import (
	"context"

	"github.com/louwian/medoc-marathon/internal/domain"
)

// Port: a boundary for retrieving the candidate stop sheet from a data
// source. Stops are returned in their published order, which the catalog
// keeps as its tie-break order.
type StopRepository interface {
	ListStops(ctx context.Context) ([]domain.Stop, error)
}
