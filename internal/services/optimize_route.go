package services

import (
	"fmt"
	"sort"

	"github.com/louwian/medoc-marathon/internal/domain"
)

// maxOptimizeIterations is a safety valve, not an expected path. Hitting it
// means a pathological parameter combination or a missing repair rule.
const maxOptimizeIterations = 100

// OptimizationResult is the outcome of one optimizer run. Success is true
// only when the loop reached a valid, stable selection; a stall or cap
// exhaustion reports false with the explanation in the log.
type OptimizationResult struct {
	OptimizedStops domain.Selection
	Log            []string
	Iterations     int
	Success        bool
}

// OptimizeRoute mutates a working copy of the selection toward validity,
// then toward higher value, using ValidateConstraints as its sole oracle:
// validate, fix the worst violation, re-validate. Exactly one repair is
// applied per iteration.
//
// Repairs, in dispatch priority order:
//   - too many stops: remove the cheapest selected stop
//   - time over goal: remove the cheapest selected stop
//   - gap exceeded: add the priciest unselected stop strictly inside the
//     widest violating gap; no candidate means the run stalls
//   - insufficient stops for the gap bound: add the priciest unselected stop
//
// Once valid, the loop keeps adding the priciest stop whose addition stays
// fully valid, and terminates at the fixed point where none does. Price
// ties always resolve to the stop loaded first in the catalog.
func OptimizeRoute(
	course *domain.Course,
	params domain.PlanningParams,
	catalog *domain.Catalog,
	selection domain.Selection,
) OptimizationResult {
	working := selection.Clone()
	log := []string{fmt.Sprintf("starting optimization with %d selected stops", working.Len())}

	for iterations := 1; iterations <= maxOptimizeIterations; iterations++ {
		report := ValidateConstraints(course, params, catalog, working)

		if report.Valid {
			added, ok := tryAddValuableStop(course, params, catalog, working)
			if !ok {
				log = append(log, fmt.Sprintf(
					"fixed point reached: selection is valid and no remaining stop can be added (%d stops)",
					working.Len(),
				))
				return OptimizationResult{OptimizedStops: working, Log: log, Iterations: iterations, Success: true}
			}
			log = append(log, fmt.Sprintf(
				"added %s (£%.2f) at %.1fkm: highest-value stop that keeps the plan valid",
				added.Name, added.PriceGBP, added.Km,
			))
			continue
		}

		violation, ok := firstRepairable(report.Errors)
		if !ok {
			log = append(log, fmt.Sprintf(
				"stalled: no repair rule for %s; only parameter changes can fix this", report.Errors[0].Kind,
			))
			return OptimizationResult{OptimizedStops: working, Log: log, Iterations: iterations, Success: false}
		}

		switch violation.Kind {
		case domain.ViolationTooManyStops, domain.ViolationTimeOverGoal:
			stop, ok := cheapestSelected(catalog, working)
			if !ok {
				log = append(log, fmt.Sprintf("stalled: %s but no stop left to remove", violation.Kind))
				return OptimizationResult{OptimizedStops: working, Log: log, Iterations: iterations, Success: false}
			}
			working.Remove(stop.Name)
			log = append(log, fmt.Sprintf(
				"removed %s (£%.2f) at %.1fkm: %s", stop.Name, stop.PriceGBP, stop.Km, violation.Kind,
			))

		case domain.ViolationGapExceeded:
			log = append(log, fmt.Sprintf(
				"found %.1fkm gap between %s and %s", violation.Value, violation.GapFrom, violation.GapTo,
			))
			stop, ok := priciestUnselectedWithin(catalog, working, violation.GapStartKm, violation.GapEndKm)
			if !ok {
				log = append(log, fmt.Sprintf(
					"stalled: no unselected stop inside the gap between %s and %s",
					violation.GapFrom, violation.GapTo,
				))
				return OptimizationResult{OptimizedStops: working, Log: log, Iterations: iterations, Success: false}
			}
			working.Add(stop.Name)
			log = append(log, fmt.Sprintf(
				"added %s (£%.2f) at %.1fkm: fills the widest gap", stop.Name, stop.PriceGBP, stop.Km,
			))

		case domain.ViolationInsufficientStopsForGap:
			stop, ok := priciestUnselected(catalog, working)
			if !ok {
				log = append(log, "stalled: more stops required but the catalog is exhausted")
				return OptimizationResult{OptimizedStops: working, Log: log, Iterations: iterations, Success: false}
			}
			working.Add(stop.Name)
			log = append(log, fmt.Sprintf(
				"added %s (£%.2f) at %.1fkm: raising stop count toward the gap requirement",
				stop.Name, stop.PriceGBP, stop.Km,
			))
		}
	}

	log = append(log, fmt.Sprintf(
		"warning: iteration cap (%d) reached before a stable valid selection", maxOptimizeIterations,
	))
	return OptimizationResult{OptimizedStops: working, Log: log, Iterations: maxOptimizeIterations, Success: false}
}

// repairPriority orders violation kinds by repair urgency. Kinds absent from
// the map (goal unreachable) have no selection-level repair.
var repairPriority = map[domain.ViolationKind]int{
	domain.ViolationTooManyStops:            0,
	domain.ViolationTimeOverGoal:            1,
	domain.ViolationGapExceeded:             2,
	domain.ViolationInsufficientStopsForGap: 3,
}

func firstRepairable(violations []domain.Violation) (domain.Violation, bool) {
	best, bestPriority := -1, 0
	for i, v := range violations {
		p, ok := repairPriority[v.Kind]
		if !ok {
			continue
		}
		if best == -1 || p < bestPriority {
			best, bestPriority = i, p
		}
	}
	if best == -1 {
		return domain.Violation{}, false
	}
	return violations[best], true
}

// tryAddValuableStop scans unselected stops by descending price and adds the
// first whose tentative addition still validates fully. Returns false at the
// fixed point where no stop fits.
func tryAddValuableStop(
	course *domain.Course,
	params domain.PlanningParams,
	catalog *domain.Catalog,
	working domain.Selection,
) (domain.Stop, bool) {
	candidates := make([]domain.Stop, 0, catalog.Len())
	for _, s := range catalog.All() {
		if !working.Contains(s.Name) {
			candidates = append(candidates, s)
		}
	}
	// Stable sort keeps catalog order for equal prices.
	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].PriceGBP > candidates[b].PriceGBP
	})

	for _, cand := range candidates {
		trial := working.Clone()
		trial.Add(cand.Name)
		if ValidateConstraints(course, params, catalog, trial).Valid {
			working.Add(cand.Name)
			return cand, true
		}
	}
	return domain.Stop{}, false
}

func cheapestSelected(catalog *domain.Catalog, sel domain.Selection) (domain.Stop, bool) {
	var cheapest domain.Stop
	found := false
	for _, s := range catalog.All() {
		if !sel.Contains(s.Name) {
			continue
		}
		// Strict comparison keeps the first-loaded stop on price ties.
		if !found || s.PriceGBP < cheapest.PriceGBP {
			cheapest = s
			found = true
		}
	}
	return cheapest, found
}

func priciestUnselected(catalog *domain.Catalog, sel domain.Selection) (domain.Stop, bool) {
	var priciest domain.Stop
	found := false
	for _, s := range catalog.All() {
		if sel.Contains(s.Name) {
			continue
		}
		if !found || s.PriceGBP > priciest.PriceGBP {
			priciest = s
			found = true
		}
	}
	return priciest, found
}

// priciestUnselectedWithin considers only stops strictly inside the open
// interval (startKm, endKm): a stop on a gap endpoint is already selected.
func priciestUnselectedWithin(catalog *domain.Catalog, sel domain.Selection, startKm, endKm float64) (domain.Stop, bool) {
	var priciest domain.Stop
	found := false
	for _, s := range catalog.All() {
		if sel.Contains(s.Name) || s.Km <= startKm || s.Km >= endKm {
			continue
		}
		if !found || s.PriceGBP > priciest.PriceGBP {
			priciest = s
			found = true
		}
	}
	return priciest, found
}
