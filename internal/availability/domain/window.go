package domain

// DefaultWindowDays is the number of calendar days an occupancy query covers
// when no end date is given.
const DefaultWindowDays = 90

// MaxWindowDays caps the length of any window or requested range.
const MaxWindowDays = 366

// ResolveWindow fills in a query window. A missing start is today; a missing
// end covers days calendar days from the start, [start, start+days).
// Non-positive days fall back to DefaultWindowDays and days is capped at
// MaxWindowDays. An explicit window longer than MaxWindowDays is rejected
// with ErrWindowTooLarge.
func ResolveWindow(from, to *Date, today Date, days int) (DateRange, error) {
	if days <= 0 {
		days = DefaultWindowDays
	}
	if days > MaxWindowDays {
		days = MaxWindowDays
	}
	start := today
	if from != nil && !from.IsZero() {
		start = *from
	}
	end := start.AddDays(days - 1)
	if to != nil && !to.IsZero() {
		end = *to
	}
	window, err := NewDateRange(start, end)
	if err != nil {
		return DateRange{}, err
	}
	if err := CheckSpan(window); err != nil {
		return DateRange{}, err
	}
	return window, nil
}
