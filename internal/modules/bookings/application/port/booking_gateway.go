package port

import (
	"context"
	"errors"
	"fmt"

	"okpujaAdmin/internal/modules/bookings/domain"
)

var (
	// ErrRemote is the uniform failure for network or backend errors; the
	// transport collaborator's details are attached via RemoteError.
	ErrRemote = errors.New("upstream request failed")

	ErrBookingNotFound   = errors.New("booking not found upstream")
	ErrUpstreamForbidden = errors.New("upstream rejected credentials")
)

// RemoteError carries the opaque detail behind an ErrRemote: an HTTP status
// (0 for transport-level failures) and a human-readable message.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("upstream request failed: %s", e.Message)
	}
	return fmt.Sprintf("upstream request failed: status %d: %s", e.StatusCode, e.Message)
}

// Unwrap lets errors.Is(err, ErrRemote) match any remote failure.
func (e *RemoteError) Unwrap() error {
	return ErrRemote
}

// BookingFetcher retrieves a category's raw booking collection. Records are
// returned loosely typed; normalization happens in the domain layer.
type BookingFetcher interface {
	FetchBookings(ctx context.Context, token string, category domain.Category) ([]any, error)
}

// StatusUpdater submits a lifecycle change using the category's update
// endpoint.
type StatusUpdater interface {
	UpdateStatus(ctx context.Context, token string, category domain.Category, rawID string, target domain.Status, reason string) error
}

// Assigner submits staff assignment mutations for categories that support
// them. Unassignment is expressed explicitly; the wire-level encoding is the
// gateway's concern.
type Assigner interface {
	AssignStaff(ctx context.Context, token string, category domain.Category, rawID string, employeeID int, notes string) error
	UnassignStaff(ctx context.Context, token string, category domain.Category, rawID string, notes string) error
}

// Rescheduler submits date/time changes using the category's wire shape.
type Rescheduler interface {
	Reschedule(ctx context.Context, token string, category domain.Category, rawID string, newDate, newTime, reason string) error
}

// BookingGateway is the full upstream contract for the booking sub-resource
// families.
type BookingGateway interface {
	BookingFetcher
	StatusUpdater
	Assigner
	Rescheduler
}
