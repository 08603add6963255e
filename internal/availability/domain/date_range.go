package domain

// DateRange is an inclusive span of calendar dates.
type DateRange struct {
	Start Date
	End   Date
}

// NewDateRange creates a range, rejecting start after end.
// The endpoints are never swapped.
func NewDateRange(start, end Date) (DateRange, error) {
	if start.IsZero() || end.IsZero() {
		return DateRange{}, ErrInvalidDate
	}
	if start.After(end) {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{Start: start, End: end}, nil
}

// CheckSpan rejects a valid range longer than MaxWindowDays.
func CheckSpan(r DateRange) error {
	if r.Days() > MaxWindowDays {
		return ErrWindowTooLarge
	}
	return nil
}

// ParseDateRange parses both endpoints and validates their order.
func ParseDateRange(start, end string) (DateRange, error) {
	s, err := ParseDate(start)
	if err != nil {
		return DateRange{}, err
	}
	e, err := ParseDate(end)
	if err != nil {
		return DateRange{}, err
	}
	return NewDateRange(s, e)
}

// SingleDay returns the range covering exactly one date.
func SingleDay(d Date) DateRange {
	return DateRange{Start: d, End: d}
}

// IsValid reports whether both endpoints are set and ordered.
func (r DateRange) IsValid() bool {
	return !r.Start.IsZero() && !r.End.IsZero() && !r.Start.After(r.End)
}

// Days returns the number of covered dates, 0 for an invalid range.
func (r DateRange) Days() int {
	if !r.IsValid() {
		return 0
	}
	return r.Start.DaysUntil(r.End) + 1
}

// Dates expands the range into its covered dates in ascending order,
// both endpoints included. An invalid range expands to nothing.
func (r DateRange) Dates() []Date {
	n := r.Days()
	if n == 0 {
		return nil
	}
	dates := make([]Date, 0, n)
	for d := r.Start; !d.After(r.End); d = d.AddDays(1) {
		dates = append(dates, d)
	}
	return dates
}

// Contains reports whether d falls within the range.
func (r DateRange) Contains(d Date) bool {
	return r.IsValid() && !d.Before(r.Start) && !d.After(r.End)
}

// Overlaps reports whether the two ranges share at least one date.
func (r DateRange) Overlaps(other DateRange) bool {
	if !r.IsValid() || !other.IsValid() {
		return false
	}
	return !other.End.Before(r.Start) && !other.Start.After(r.End)
}

func (r DateRange) String() string {
	return r.Start.String() + ".." + r.End.String()
}
