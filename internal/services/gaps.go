package services

import (
	"fmt"

	"github.com/louwian/medoc-marathon/internal/domain"
)

// gap is the stretch of course between two consecutive chosen points, with
// the start and finish lines acting as virtual endpoints.
type gap struct {
	FromName string
	ToName   string
	StartKm  float64
	EndKm    float64
	WidthKm  float64
}

// courseGaps lists the realized gaps for a position-sorted selection, in
// position order. Zero-width virtual gaps at the start and finish are
// omitted, matching the published planner's behavior.
func courseGaps(totalKm float64, selected []domain.Stop) []gap {
	if len(selected) == 0 {
		return nil
	}

	gaps := make([]gap, 0, len(selected)+1)

	first := selected[0]
	if first.Km > 0 {
		gaps = append(gaps, gap{
			FromName: domain.CourseStart,
			ToName:   first.Name,
			StartKm:  0,
			EndKm:    first.Km,
			WidthKm:  first.Km,
		})
	}

	for i := 0; i < len(selected)-1; i++ {
		cur, next := selected[i], selected[i+1]
		gaps = append(gaps, gap{
			FromName: cur.Name,
			ToName:   next.Name,
			StartKm:  cur.Km,
			EndKm:    next.Km,
			WidthKm:  next.Km - cur.Km,
		})
	}

	last := selected[len(selected)-1]
	if totalKm-last.Km > 0 {
		gaps = append(gaps, gap{
			FromName: last.Name,
			ToName:   domain.CourseFinish,
			StartKm:  last.Km,
			EndKm:    totalKm,
			WidthKm:  totalKm - last.Km,
		})
	}

	return gaps
}

// widestGap returns the largest gap. Ties resolve to the earliest gap start,
// which the position-ordered scan with a strict comparison gives for free.
func widestGap(gaps []gap) (gap, bool) {
	if len(gaps) == 0 {
		return gap{}, false
	}
	widest := gaps[0]
	for _, g := range gaps[1:] {
		if g.WidthKm > widest.WidthKm {
			widest = g
		}
	}
	return widest, true
}

// describeGap renders a gap's endpoints with their positions, e.g.
// "Start (0.0km) -> Chateau Lafite (9.5km)".
func describeGap(g gap) string {
	return fmt.Sprintf("%s (%.1fkm) -> %s (%.1fkm)", g.FromName, g.StartKm, g.ToName, g.EndKm)
}
