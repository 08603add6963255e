package domain

import (
	"math"
	"time"
)

// AccessState summarizes why a user does or does not have access.
type AccessState string

const (
	AccessActive       AccessState = "active"
	AccessTrial        AccessState = "trial"
	AccessTrialExpired AccessState = "trial_expired"
	AccessNone         AccessState = "none"
)

// Access is the outcome of an entitlement evaluation.
type Access struct {
	Entitled bool        `json:"entitled"`
	State    AccessState `json:"state"`
	// ExpiresAt is when access lapses; nil for open-ended or no access.
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// NoAccess is the fail-closed outcome.
func NoAccess() Access {
	return Access{Entitled: false, State: AccessNone}
}

// Evaluate decides access for a status at now. End dates must be strictly
// after now. It never fails: anything ambiguous is no access.
func Evaluate(s Status, now time.Time) Access {
	switch st := s.(type) {
	case ActiveStatus:
		if st.EndsAt == nil {
			return Access{Entitled: true, State: AccessActive}
		}
		if st.EndsAt.After(now) {
			return Access{Entitled: true, State: AccessActive, ExpiresAt: st.EndsAt}
		}
		return NoAccess()
	case TrialStatus:
		if st.EndsAt == nil {
			return NoAccess()
		}
		if st.EndsAt.After(now) {
			return Access{Entitled: true, State: AccessTrial, ExpiresAt: st.EndsAt}
		}
		return Access{Entitled: false, State: AccessTrialExpired}
	case NoStatus, ExpiredStatus, CancelledStatus, UnknownStatus:
		return NoAccess()
	default:
		return NoAccess()
	}
}

// Check evaluates a stored record at now.
func Check(r Record, now time.Time) Access {
	return Evaluate(ParseStatus(r), now)
}

// IsEntitled reports whether the record grants access at now.
func IsEntitled(r Record, now time.Time) bool {
	return Check(r, now).Entitled
}

// TrialDaysRemaining returns the whole days left in a valid trial, rounded
// up. It is 0 outside a valid trial.
func TrialDaysRemaining(r Record, now time.Time) int {
	access := Check(r, now)
	if access.State != AccessTrial || access.ExpiresAt == nil {
		return 0
	}
	return int(math.Ceil(access.ExpiresAt.Sub(now).Hours() / 24))
}
