package domain

import "strings"

// Status represents the booking lifecycle as exposed by the upstream API.
type Status string

const (
	StatusUnknown    Status = ""
	StatusPending    Status = "PENDING"
	StatusConfirmed  Status = "CONFIRMED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusCancelled  Status = "CANCELLED"
	StatusRejected   Status = "REJECTED"
	StatusFailed     Status = "FAILED"
	StatusRefunded   Status = "REFUNDED"
)

var allStatuses = map[string]Status{
	string(StatusPending):    StatusPending,
	string(StatusConfirmed):  StatusConfirmed,
	string(StatusInProgress): StatusInProgress,
	string(StatusCompleted):  StatusCompleted,
	string(StatusCancelled):  StatusCancelled,
	string(StatusRejected):   StatusRejected,
	string(StatusFailed):     StatusFailed,
	string(StatusRefunded):   StatusRefunded,
}

// NormalizeStatus returns the canonical Status for the given raw value.
// Records with an absent or unrecognised status fall back to PENDING, the
// initial state for every category, so the canonical model never carries a
// value outside the enumeration.
func NormalizeStatus(value any) Status {
	s, ok := value.(string)
	if !ok {
		return StatusPending
	}
	trimmed := strings.ToUpper(strings.TrimSpace(s))
	trimmed = strings.ReplaceAll(trimmed, "-", "_")
	trimmed = strings.ReplaceAll(trimmed, " ", "_")
	if status, ok := allStatuses[trimmed]; ok {
		return status
	}
	return StatusPending
}

// ParseStatus resolves user-supplied input into a Status, reporting whether it
// named a member of the enumeration.
func ParseStatus(raw string) (Status, bool) {
	trimmed := strings.ToUpper(strings.TrimSpace(raw))
	trimmed = strings.ReplaceAll(trimmed, "-", "_")
	status, ok := allStatuses[trimmed]
	return status, ok
}

// Terminal reports whether the state machine progresses no further from s
// automatically. Admins may still re-open a terminal booking manually.
func (s Status) Terminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusRejected, StatusFailed, StatusRefunded:
		return true
	}
	return false
}

// RequiresReason reports whether a transition into s must carry an operator
// reason.
func (s Status) RequiresReason() bool {
	switch s {
	case StatusCancelled, StatusRejected, StatusFailed:
		return true
	}
	return false
}
