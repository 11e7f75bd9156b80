package domain

import (
	"fmt"
	"sort"
)

// Catalog is the fixed set of candidate stops for a session. The loaded
// order is preserved because it doubles as the tie-break order for the
// optimizer's price comparisons; a position-sorted view is built once.
type Catalog struct {
	stops  []Stop
	byName map[string]int
	byKm   []int // indices into stops, stable-sorted by Km
}

func NewCatalog(stops []Stop, totalKm float64) (*Catalog, error) {
	c := &Catalog{
		stops:  make([]Stop, len(stops)),
		byName: make(map[string]int, len(stops)),
		byKm:   make([]int, len(stops)),
	}
	copy(c.stops, stops)

	for i, s := range c.stops {
		if s.Name == "" {
			return nil, fmt.Errorf("new catalog: stop at index %d has no name", i)
		}
		if _, dup := c.byName[s.Name]; dup {
			return nil, fmt.Errorf("new catalog: duplicate stop name %q", s.Name)
		}
		if s.Km < 0 || s.Km > totalKm {
			return nil, fmt.Errorf(
				"new catalog: stop %q at %.2fkm is outside the course [0, %.2f]",
				s.Name, s.Km, totalKm,
			)
		}
		if s.PriceGBP < 0 {
			return nil, fmt.Errorf("new catalog: stop %q has negative price %.2f", s.Name, s.PriceGBP)
		}
		c.byName[s.Name] = i
		c.byKm[i] = i
	}

	sort.SliceStable(c.byKm, func(a, b int) bool {
		return c.stops[c.byKm[a]].Km < c.stops[c.byKm[b]].Km
	})

	return c, nil
}

func (c *Catalog) Len() int { return len(c.stops) }

// All returns the stops in loaded order. Callers must treat it as read-only.
func (c *Catalog) All() []Stop { return c.stops }

func (c *Catalog) ByName(name string) (Stop, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Stop{}, false
	}
	return c.stops[i], true
}

// OrderedByKm returns all stops sorted by position along the course.
func (c *Catalog) OrderedByKm() []Stop {
	out := make([]Stop, len(c.byKm))
	for i, idx := range c.byKm {
		out[i] = c.stops[idx]
	}
	return out
}

// SelectedByKm returns the selected stops sorted by position. Names absent
// from the catalog are ignored; the API layer rejects them before planning.
func (c *Catalog) SelectedByKm(sel Selection) []Stop {
	out := make([]Stop, 0, sel.Len())
	for _, idx := range c.byKm {
		if sel.Contains(c.stops[idx].Name) {
			out = append(out, c.stops[idx])
		}
	}
	return out
}

// DefaultSelection selects every MustStop, matching the planner's initial
// session state.
func (c *Catalog) DefaultSelection() Selection {
	sel := NewSelection()
	for _, s := range c.stops {
		if s.Rating == MustStop {
			sel.Add(s.Name)
		}
	}
	return sel
}
