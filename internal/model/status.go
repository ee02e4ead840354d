package model

import (
	"errors"
	"strings"
)

// ErrInvalidStatusFlags is raised for engaged lead which is not processed
var ErrInvalidStatusFlags = errors.New("engaged submission must be processed as well")

// Status is lifecycle status of lead submission
type Status string

const (
	// StatusPending means nobody has looked at submission yet
	StatusPending Status = "pending"
	// StatusProcessed means staff has processed submission
	StatusProcessed Status = "processed"
	// StatusEngaged means patient has been engaged
	StatusEngaged Status = "engaged"
)

// Valid reports whether status is one of known statuses
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusProcessed, StatusEngaged:
		return true
	default:
		return false
	}
}

// Next returns status which follows s in pending -> processed -> engaged -> pending cycle
func (s Status) Next() Status {
	switch s {
	case StatusPending:
		return StatusProcessed
	case StatusProcessed:
		return StatusEngaged
	default:
		return StatusPending
	}
}

// Flags returns two-boolean representation of status
func (s Status) Flags() (processed bool, engaged bool) {
	return s == StatusProcessed || s == StatusEngaged, s == StatusEngaged
}

// Label returns capitalized status name
func (s Status) Label() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

// StatusFromFlags converts processed/engaged pair to status
func StatusFromFlags(processed, engaged bool) (Status, error) {
	switch {
	case engaged && !processed:
		return "", ErrInvalidStatusFlags
	case engaged:
		return StatusEngaged, nil
	case processed:
		return StatusProcessed, nil
	default:
		return StatusPending, nil
	}
}
