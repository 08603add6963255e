package domain

// DayOccupancy is the single display classification of one date.
type DayOccupancy string

const (
	OccupancyFree    DayOccupancy = "free"
	OccupancyBlocked DayOccupancy = "blocked"
	OccupancyBooked  DayOccupancy = "booked"
	OccupancyPending DayOccupancy = "pending"
)

// DayFlags records every occupancy fact known for one date.
// A date can be blocked and carry a pending request at the same time.
type DayFlags struct {
	Blocked bool
	Booked  bool
	Pending bool
}

// Classify collapses the flags, blocked over booked over pending.
func (f DayFlags) Classify() DayOccupancy {
	switch {
	case f.Blocked:
		return OccupancyBlocked
	case f.Booked:
		return OccupancyBooked
	case f.Pending:
		return OccupancyPending
	default:
		return OccupancyFree
	}
}

// Occupancy holds a sitter's blocked, booked and pending dates as three
// independent sets.
type Occupancy struct {
	Blocked DateSet
	Booked  DateSet
	Pending DateSet
}

// EmptyOccupancy returns an occupancy with nothing blocked or booked.
func EmptyOccupancy() Occupancy {
	return Occupancy{
		Blocked: DateSet{},
		Booked:  DateSet{},
		Pending: DateSet{},
	}
}

// BuildOccupancy derives occupancy for a window from raw store records.
// Blocked dates outside the window are dropped. Bookings count only when
// their status occupies dates and their range intersects the window; an
// intersecting booking contributes every date it covers.
func BuildOccupancy(window DateRange, blocked []BlockedDate, bookings []Booking) Occupancy {
	occ := EmptyOccupancy()
	for _, b := range blocked {
		if window.Contains(b.Date) {
			occ.Blocked.Add(b.Date)
		}
	}
	for _, b := range bookings {
		if !b.Status.Occupies() || !b.Range.Overlaps(window) {
			continue
		}
		target := occ.Pending
		if b.Status == BookingAccepted {
			target = occ.Booked
		}
		for _, d := range b.Range.Dates() {
			target.Add(d)
		}
	}
	return occ
}

// IsEmpty reports whether no date is blocked, booked or pending.
func (o Occupancy) IsEmpty() bool {
	return o.Blocked.Len() == 0 && o.Booked.Len() == 0 && o.Pending.Len() == 0
}

// At returns the flags for one date.
func (o Occupancy) At(d Date) DayFlags {
	return DayFlags{
		Blocked: o.Blocked.Has(d),
		Booked:  o.Booked.Has(d),
		Pending: o.Pending.Has(d),
	}
}

// Check decides whether the requested range can be granted. The whole range
// is checked against blocked dates before accepted bookings are looked at.
// Pending requests never make a range unavailable.
func (o Occupancy) Check(requested DateRange) Decision {
	if !requested.IsValid() {
		return Decision{Available: false, Reason: ReasonInvalidRange}
	}
	if d, ok := o.Blocked.FirstIn(requested); ok {
		return Decision{Available: false, Reason: ReasonBlocked, ConflictDate: d}
	}
	if d, ok := o.Booked.FirstIn(requested); ok {
		return Decision{Available: false, Reason: ReasonAlreadyBooked, ConflictDate: d}
	}
	return Decision{Available: true}
}

// CalendarDay is one row of a sitter's calendar.
type CalendarDay struct {
	Date      Date
	Flags     DayFlags
	Occupancy DayOccupancy
}

// Calendar lists every date of the window with its classification.
func (o Occupancy) Calendar(window DateRange) []CalendarDay {
	dates := window.Dates()
	days := make([]CalendarDay, len(dates))
	for i, d := range dates {
		flags := o.At(d)
		days[i] = CalendarDay{Date: d, Flags: flags, Occupancy: flags.Classify()}
	}
	return days
}
