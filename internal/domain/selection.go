package domain

import "sort"

// Selection is the set of stop names currently chosen for the race, mutated
// by user toggles or by the optimizer. Ordering by position is produced
// through the catalog's sorted view, so the set itself stays cheap to copy
// and compare.
type Selection struct {
	members map[string]struct{}
}

func NewSelection(names ...string) Selection {
	s := Selection{members: make(map[string]struct{}, len(names))}
	for _, n := range names {
		s.members[n] = struct{}{}
	}
	return s
}

func (s Selection) Contains(name string) bool {
	_, ok := s.members[name]
	return ok
}

func (s Selection) Len() int { return len(s.members) }

func (s Selection) Add(name string)    { s.members[name] = struct{}{} }
func (s Selection) Remove(name string) { delete(s.members, name) }

// Clone returns an independent copy; the optimizer works on a clone so the
// caller's selection is untouched until a result is applied.
func (s Selection) Clone() Selection {
	c := Selection{members: make(map[string]struct{}, len(s.members))}
	for n := range s.members {
		c.members[n] = struct{}{}
	}
	return c
}

// Names returns the member names sorted lexicographically for deterministic
// output. Position ordering is the catalog's job.
func (s Selection) Names() []string {
	names := make([]string, 0, len(s.members))
	for n := range s.members {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
