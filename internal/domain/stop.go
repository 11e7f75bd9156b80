package domain

import (
	"fmt"
	"strings"
)

// Rating is the priority tier of a wine stop as published in the stop sheet.
// It drives the default selection (every MustStop starts selected) but does
// not contribute to optimizer value; price does.
type Rating int

const (
	MustStop Rating = iota
	NiceToStop
	CanStop
	CanSkip
)

var ratingLabels = map[Rating]string{
	MustStop:   "Must stop",
	NiceToStop: "Nice to stop",
	CanStop:    "Can stop",
	CanSkip:    "Can skip",
}

func (r Rating) String() string {
	if s, ok := ratingLabels[r]; ok {
		return s
	}
	return fmt.Sprintf("Rating(%d)", int(r))
}

// ParseRating maps a stop sheet label to its Rating.
func ParseRating(s string) (Rating, error) {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "must stop":
		return MustStop, nil
	case "nice to stop":
		return NiceToStop, nil
	case "can stop":
		return CanStop, nil
	case "can skip":
		return CanSkip, nil
	default:
		return 0, fmt.Errorf("parse rating: unknown rating %q", s)
	}
}

// Stop is a candidate wine/food tasting point at a fixed position along the
// course. Stops are immutable once loaded; coordinates are interpolated from
// the course polyline a single time per session.
type Stop struct {
	Name     string
	Km       float64
	Rating   Rating
	PriceGBP float64
	Food     string // empty when the stop serves no food
	Coords   Coordinates
}
