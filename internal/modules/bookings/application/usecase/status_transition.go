package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"okpujaAdmin/internal/modules/bookings/application/port"
	"okpujaAdmin/internal/modules/bookings/domain"
)

// StatusTransitionController validates lifecycle changes against the
// per-category state machine and coordinates the upstream mutation plus the
// follow-up re-fetch.
type StatusTransitionController struct {
	updater  port.StatusUpdater
	store    *SessionStore
	inflight *inflightRegistry
}

// StatusTransitionResult reports the two independent outcomes of a
// successful mutation: the re-fetched booking, and the refresh error when the
// re-fetch itself failed. The mutation having succeeded is implied by the
// controller returning no error.
type StatusTransitionResult struct {
	Booking    *domain.Booking
	RefreshErr error
}

func NewStatusTransitionController(updater port.StatusUpdater, store *SessionStore) *StatusTransitionController {
	return &StatusTransitionController{
		updater:  updater,
		store:    store,
		inflight: newInflightRegistry(),
	}
}

// ChangeStatus validates and executes a lifecycle change.
//
// Validation failures and conflicts surface locally without a network call.
// A remote failure leaves local state untouched; there is no optimistic
// mutation to roll back.
func (c *StatusTransitionController) ChangeStatus(ctx context.Context, token string, req domain.StatusTransitionRequest) (*StatusTransitionResult, error) {
	if !req.Category.Valid() {
		return nil, domain.ErrUnknownCategory
	}
	if !req.Category.AllowsTarget(req.Target) {
		return nil, ErrInvalidTransition
	}
	if req.Target.RequiresReason() && strings.TrimSpace(req.Reason) == "" {
		return nil, ErrReasonRequired
	}

	if err := c.inflight.begin(req.BookingID, opStatus); err != nil {
		return nil, err
	}
	defer c.inflight.end(req.BookingID, opStatus)

	correlation := uuid.NewString()
	slog.Info("status transition submit",
		slog.String("correlation", correlation),
		slog.String("booking", req.BookingID),
		slog.String("category", string(req.Category)),
		slog.String("target", string(req.Target)))

	rawID := req.Category.RawID(req.BookingID)
	if err := c.updater.UpdateStatus(ctx, token, req.Category, rawID, req.Target, req.Reason); err != nil {
		slog.Warn("status transition rejected upstream",
			slog.String("correlation", correlation),
			slog.String("booking", req.BookingID),
			slog.Any("error", err))
		return nil, err
	}

	// The mutation is durable upstream at this point; the refresh outcome is
	// reported separately and never conflated with it.
	result := &StatusTransitionResult{}
	if err := c.store.RefreshCategory(ctx, token, req.Category); err != nil {
		result.RefreshErr = err
		return result, nil
	}
	if booking, ok := c.store.Find(req.BookingID); ok {
		result.Booking = &booking
	}
	slog.Info("status transition applied",
		slog.String("correlation", correlation),
		slog.String("booking", req.BookingID),
		slog.String("status", string(req.Target)))
	return result, nil
}
