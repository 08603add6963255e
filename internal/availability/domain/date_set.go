package domain

import "sort"

// DateSet is an unordered set of calendar dates.
type DateSet map[Date]struct{}

// NewDateSet creates a set holding the given dates.
func NewDateSet(dates ...Date) DateSet {
	s := make(DateSet, len(dates))
	for _, d := range dates {
		s.Add(d)
	}
	return s
}

func (s DateSet) Add(d Date) { s[d] = struct{}{} }

func (s DateSet) Has(d Date) bool {
	_, ok := s[d]
	return ok
}

func (s DateSet) Len() int { return len(s) }

// Sorted returns the dates in ascending order.
func (s DateSet) Sorted() []Date {
	out := make([]Date, 0, len(s))
	for d := range s {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// Strings returns the sorted dates formatted as YYYY-MM-DD.
func (s DateSet) Strings() []string {
	sorted := s.Sorted()
	out := make([]string, len(sorted))
	for i, d := range sorted {
		out[i] = d.String()
	}
	return out
}

// FirstIn returns the earliest date of r that is in the set.
func (s DateSet) FirstIn(r DateRange) (Date, bool) {
	if len(s) == 0 {
		return Date{}, false
	}
	for _, d := range r.Dates() {
		if s.Has(d) {
			return d, true
		}
	}
	return Date{}, false
}
