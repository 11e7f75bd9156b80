package domain

import "fmt"

// ViolationKind tags a failed constraint check. The optimizer dispatches on
// these tags; rendered text is a presentation concern.
type ViolationKind int

const (
	ViolationInsufficientStopsForGap ViolationKind = iota
	ViolationGoalUnreachable
	ViolationGapExceeded
	ViolationTooManyStops
	ViolationTimeOverGoal
)

func (k ViolationKind) String() string {
	switch k {
	case ViolationInsufficientStopsForGap:
		return "insufficient_stops_for_gap"
	case ViolationGoalUnreachable:
		return "goal_unreachable"
	case ViolationGapExceeded:
		return "gap_exceeded"
	case ViolationTooManyStops:
		return "too_many_stops"
	case ViolationTimeOverGoal:
		return "time_over_goal"
	default:
		return fmt.Sprintf("ViolationKind(%d)", int(k))
	}
}

// Violation is one violated constraint with the offending value and the
// threshold it crossed. Gap fields are set only for ViolationGapExceeded.
type Violation struct {
	Kind  ViolationKind
	Value float64
	Limit float64

	GapFrom    string
	GapTo      string
	GapStartKm float64
	GapEndKm   float64
}

// Message renders the violation as user-facing text.
func (v Violation) Message() string {
	switch v.Kind {
	case ViolationInsufficientStopsForGap:
		return fmt.Sprintf(
			"maintaining a max gap requires at least %.0f stops but max stops is %.0f; increase max stops or the gap limit",
			v.Value, v.Limit,
		)
	case ViolationGoalUnreachable:
		return fmt.Sprintf(
			"even with minimum stops the race takes %.0f minutes, %.0f over the %.0f minute goal; consider a faster pace, fewer stops, or a longer goal",
			v.Value, v.Value-v.Limit, v.Limit,
		)
	case ViolationGapExceeded:
		return fmt.Sprintf(
			"selected stops leave a %.1fkm gap between %s and %s, over the %.1fkm limit; add stops in the gap or raise the limit",
			v.Value, v.GapFrom, v.GapTo, v.Limit,
		)
	case ViolationTooManyStops:
		return fmt.Sprintf("%.0f stops selected, over the maximum of %.0f", v.Value, v.Limit)
	case ViolationTimeOverGoal:
		return fmt.Sprintf(
			"the current selection takes %.0f minutes, %.0f over the %.0f minute goal",
			v.Value, v.Value-v.Limit, v.Limit,
		)
	default:
		return fmt.Sprintf("constraint violated: value %.2f, limit %.2f", v.Value, v.Limit)
	}
}

// Diagnostics carries the computed metrics behind a validation run, for
// display alongside any errors or warnings.
type Diagnostics struct {
	TotalDistanceKm            float64
	RequiredStopsForGap        int
	RunningTimeMinutes         float64
	StopTimeMinutes            float64
	TotalTimeWithMinStops      float64
	MarathonGoalMinutes        float64
	NumSelectedStops           int
	MaxCurrentGapKm            float64
	MaxCurrentGapBetween       string
	TotalTimeWithSelectedStops *float64 // nil when the selection is empty
}

// ValidationReport is the outcome of validating one selection against one
// parameter set. It is transient: recomputed on demand, never persisted.
type ValidationReport struct {
	Valid    bool
	Errors   []Violation
	Warnings []string
	Info     Diagnostics
}
