package usecase

import "errors"

// Validation errors: detected before any network call.
var (
	ErrInvalidTransition   = errors.New("status not permitted for this category")
	ErrReasonRequired      = errors.New("a reason is required for this status")
	ErrPastDate            = errors.New("new date must not be in the past")
	ErrInvalidDate         = errors.New("new date is not a valid calendar date")
	ErrInvalidTime         = errors.New("new time is not a valid clock time")
	ErrEmployeeNotFound    = errors.New("employee not found in directory")
	ErrEmployeeNotEligible = errors.New("employee is not an eligible assignee")
)

// Conflict errors: the request is well-formed but not currently permissible.
var (
	ErrAlreadyAssigned     = errors.New("booking is already assigned to this employee")
	ErrOperationInProgress = errors.New("another mutation of this kind is already in flight for the booking")
)

// ErrUnsupportedOperation marks operations the category has no upstream
// endpoint for; it is surfaced without a network call.
var ErrUnsupportedOperation = errors.New("operation not supported for this category")
