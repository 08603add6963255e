package domain

import (
	"strings"
	"time"
)

// Status is the parsed subscription state of a user. The set of
// implementations is closed.
type Status interface {
	isStatus()
}

// NoStatus means nothing was recorded.
type NoStatus struct{}

// ActiveStatus is a paid subscription. A nil EndsAt is open-ended.
type ActiveStatus struct {
	EndsAt *time.Time
}

// TrialStatus is a free trial. A nil EndsAt is ambiguous and grants nothing.
type TrialStatus struct {
	EndsAt *time.Time
}

type ExpiredStatus struct{}

type CancelledStatus struct{}

// UnknownStatus carries a label this service does not recognize.
type UnknownStatus struct {
	Raw string
}

func (NoStatus) isStatus()        {}
func (ActiveStatus) isStatus()    {}
func (TrialStatus) isStatus()     {}
func (ExpiredStatus) isStatus()   {}
func (CancelledStatus) isStatus() {}
func (UnknownStatus) isStatus()   {}

// ParseStatus builds the status variant for a record. An active status only
// looks at the subscription end date and a trial only at the trial end date.
func ParseStatus(r Record) Status {
	if r.Status == nil {
		return NoStatus{}
	}
	switch label := strings.TrimSpace(*r.Status); label {
	case "":
		return NoStatus{}
	case StatusActive:
		return ActiveStatus{EndsAt: r.SubscriptionEndDate}
	case StatusTrial:
		return TrialStatus{EndsAt: r.TrialEndDate}
	case StatusExpired:
		return ExpiredStatus{}
	case StatusCancelled:
		return CancelledStatus{}
	default:
		return UnknownStatus{Raw: label}
	}
}
