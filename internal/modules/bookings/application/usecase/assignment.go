package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"okpujaAdmin/internal/modules/bookings/application/port"
	"okpujaAdmin/internal/modules/bookings/domain"
	employees "okpujaAdmin/internal/modules/employees/application/usecase"
)

// AssignmentCoordinator validates staff assignment changes against the
// employee directory and the category's capabilities before touching the
// upstream API.
type AssignmentCoordinator struct {
	assigner    port.Assigner
	store       *SessionStore
	directory   *employees.Directory
	inflight    *inflightRegistry
	settleDelay time.Duration
	timeout     time.Duration
}

func NewAssignmentCoordinator(assigner port.Assigner, store *SessionStore, directory *employees.Directory, settleDelay, timeout time.Duration) *AssignmentCoordinator {
	return &AssignmentCoordinator{
		assigner:    assigner,
		store:       store,
		directory:   directory,
		inflight:    newInflightRegistry(),
		settleDelay: settleDelay,
		timeout:     timeout,
	}
}

// Assign validates and executes an assignment or unassignment.
func (c *AssignmentCoordinator) Assign(ctx context.Context, token string, req domain.AssignmentRequest) error {
	if !req.Category.Valid() {
		return domain.ErrUnknownCategory
	}
	// Astrology has no assignment endpoint upstream; fail fast, no network.
	if !req.Category.SupportsAssignment() {
		return ErrUnsupportedOperation
	}

	if !req.Unassign {
		employee, found := c.directory.Find(req.EmployeeID)
		if !found {
			return ErrEmployeeNotFound
		}
		if !employee.EligibleAssignee() {
			return ErrEmployeeNotEligible
		}
		if booking, ok := c.store.Find(req.BookingID); ok && booking.AssignedTo(req.EmployeeID) {
			return ErrAlreadyAssigned
		}
	}

	if err := c.inflight.begin(req.BookingID, opAssign); err != nil {
		return err
	}
	defer c.inflight.end(req.BookingID, opAssign)

	correlation := uuid.NewString()
	rawID := req.Category.RawID(req.BookingID)

	var err error
	if req.Unassign {
		err = c.assigner.UnassignStaff(ctx, token, req.Category, rawID, req.Notes)
	} else {
		err = c.assigner.AssignStaff(ctx, token, req.Category, rawID, req.EmployeeID, req.Notes)
	}
	if err != nil {
		slog.Warn("assignment rejected upstream",
			slog.String("correlation", correlation),
			slog.String("booking", req.BookingID),
			slog.Bool("unassign", req.Unassign),
			slog.Any("error", err))
		return err
	}

	slog.Info("assignment applied",
		slog.String("correlation", correlation),
		slog.String("booking", req.BookingID),
		slog.Int("employee", req.EmployeeID),
		slog.Bool("unassign", req.Unassign))

	c.store.ScheduleRefresh(token, req.Category, c.settleDelay, c.timeout)
	return nil
}
