package domain

// SegmentKind distinguishes running legs from tasting stops in an itinerary.
type SegmentKind int

const (
	RunSegment SegmentKind = iota
	StopSegment
)

func (k SegmentKind) String() string {
	if k == RunSegment {
		return "running"
	}
	return "stop"
}

// ItinerarySegment is one leg of the planned race day: either a running leg
// between two points or a dwell at a stop. CumulativeMinutes accrues
// monotonically across the whole sequence.
type ItinerarySegment struct {
	Kind              SegmentKind
	DurationMinutes   float64
	CumulativeMinutes float64

	// Running legs.
	FromName   string
	ToName     string
	FromKm     float64
	ToKm       float64
	DistanceKm float64

	// Stop dwells.
	StopName string
	Km       float64
	PriceGBP float64
	Rating   Rating
	Food     string
}

// Itinerary is the ordered race-day timeline produced from a selection. It
// is a pure projection and never feeds back into the selection.
type Itinerary struct {
	Segments      []ItinerarySegment
	TotalStops    int
	TotalMinutes  float64
	TotalPriceGBP float64
	GoalMinutes   float64
	// DeltaMinutes is finish time minus goal: negative means ahead of goal.
	DeltaMinutes float64
}
