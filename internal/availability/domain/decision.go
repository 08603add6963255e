package domain

// Reasons reported when a range cannot be granted.
const (
	ReasonBlocked       = "blocked"
	ReasonAlreadyBooked = "already booked"
	ReasonInvalidRange  = "invalid date range"
	ReasonRangeTooLong  = "date range too long"
)

// Decision is the outcome of an availability check.
type Decision struct {
	Available bool
	// Reason is empty when Available is true.
	Reason string
	// ConflictDate is the earliest date that caused the refusal, if any.
	ConflictDate Date
}
