package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"okpujaAdmin/internal/modules/bookings/application/port"
	"okpujaAdmin/internal/modules/bookings/domain"
)

const dateLayout = "2006-01-02"

// RescheduleCoordinator validates date/time changes and translates them into
// each category's wire shape via the gateway. The upstream system is
// eventually consistent for this write, so the follow-up refresh waits for a
// settling delay.
type RescheduleCoordinator struct {
	rescheduler port.Rescheduler
	store       *SessionStore
	inflight    *inflightRegistry
	settleDelay time.Duration
	timeout     time.Duration
	now         func() time.Time
}

func NewRescheduleCoordinator(rescheduler port.Rescheduler, store *SessionStore, settleDelay, timeout time.Duration) *RescheduleCoordinator {
	return &RescheduleCoordinator{
		rescheduler: rescheduler,
		store:       store,
		inflight:    newInflightRegistry(),
		settleDelay: settleDelay,
		timeout:     timeout,
		now:         time.Now,
	}
}

// Reschedule validates and executes a date/time change. Same-day moves are
// allowed; strictly past dates are rejected before any request is sent.
func (c *RescheduleCoordinator) Reschedule(ctx context.Context, token string, req domain.RescheduleRequest) error {
	if !req.Category.Valid() {
		return domain.ErrUnknownCategory
	}

	newDate, err := time.Parse(dateLayout, strings.TrimSpace(req.NewDate))
	if err != nil {
		return ErrInvalidDate
	}
	today := c.now().UTC().Truncate(24 * time.Hour)
	if newDate.Before(today) {
		return ErrPastDate
	}

	newTime := domain.NormalizeClockTime(strings.TrimSpace(req.NewTime))
	if newTime == "" {
		return ErrInvalidTime
	}

	if err := c.inflight.begin(req.BookingID, opReschedule); err != nil {
		return err
	}
	defer c.inflight.end(req.BookingID, opReschedule)

	correlation := uuid.NewString()
	rawID := req.Category.RawID(req.BookingID)
	if err := c.rescheduler.Reschedule(ctx, token, req.Category, rawID, newDate.Format(dateLayout), newTime, req.Reason); err != nil {
		slog.Warn("reschedule rejected upstream",
			slog.String("correlation", correlation),
			slog.String("booking", req.BookingID),
			slog.Any("error", err))
		return err
	}

	slog.Info("reschedule applied",
		slog.String("correlation", correlation),
		slog.String("booking", req.BookingID),
		slog.String("date", newDate.Format(dateLayout)),
		slog.String("time", newTime))

	c.store.ScheduleRefresh(token, req.Category, c.settleDelay, c.timeout)
	return nil
}
