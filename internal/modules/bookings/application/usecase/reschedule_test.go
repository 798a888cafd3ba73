package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"okpujaAdmin/internal/modules/bookings/domain"
)

func rescheduleFixture(now time.Time) (*fakeRescheduler, *RescheduleCoordinator) {
	rescheduler := &fakeRescheduler{}
	coordinator := NewRescheduleCoordinator(rescheduler, NewSessionStore(staticFetcher(nil)), 0, time.Second)
	coordinator.now = func() time.Time { return now }
	return rescheduler, coordinator
}

func TestReschedule_DateValidation(t *testing.T) {
	now := time.Date(2026, time.September, 1, 10, 30, 0, 0, time.UTC)

	cases := []struct {
		name    string
		date    string
		clock   string
		wantErr error
	}{
		{"yesterday rejected", "2026-08-31", "10:00", ErrPastDate},
		{"last year rejected", "2025-09-01", "10:00", ErrPastDate},
		{"malformed date", "01-09-2026", "10:00", ErrInvalidDate},
		{"empty date", "", "10:00", ErrInvalidDate},
		{"unparseable time", "2026-09-02", "half past ten", ErrInvalidTime},
		{"empty time", "2026-09-02", "", ErrInvalidTime},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rescheduler, coordinator := rescheduleFixture(now)
			err := coordinator.Reschedule(context.Background(), "token", domain.RescheduleRequest{
				BookingID: "PB-5",
				Category:  domain.CategoryPuja,
				NewDate:   tc.date,
				NewTime:   tc.clock,
			})
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Reschedule error = %v, want %v", err, tc.wantErr)
			}
			if rescheduler.calls != 0 {
				t.Fatal("gateway called for a rejected request")
			}
		})
	}
}

func TestReschedule_SameDayAllowed(t *testing.T) {
	now := time.Date(2026, time.September, 1, 23, 45, 0, 0, time.UTC)
	rescheduler, coordinator := rescheduleFixture(now)

	err := coordinator.Reschedule(context.Background(), "token", domain.RescheduleRequest{
		BookingID: "RB-8",
		Category:  domain.CategoryRegular,
		NewDate:   "2026-09-01",
		NewTime:   "09:15",
	})
	if err != nil {
		t.Fatalf("same-day reschedule returned %v", err)
	}
	if rescheduler.calls != 1 {
		t.Fatalf("gateway calls = %d, want 1", rescheduler.calls)
	}
	if rescheduler.lastDate != "2026-09-01" {
		t.Fatalf("wire date = %q", rescheduler.lastDate)
	}
	if rescheduler.lastTime != "09:15:00" {
		t.Fatalf("wire time = %q, want normalized seconds precision", rescheduler.lastTime)
	}
}

func TestReschedule_TwelveHourClockNormalized(t *testing.T) {
	now := time.Date(2026, time.September, 1, 8, 0, 0, 0, time.UTC)
	rescheduler, coordinator := rescheduleFixture(now)

	err := coordinator.Reschedule(context.Background(), "token", domain.RescheduleRequest{
		BookingID: "AB-2",
		Category:  domain.CategoryAstrology,
		NewDate:   "2026-10-15",
		NewTime:   "2:30 PM",
	})
	if err != nil {
		t.Fatalf("Reschedule returned %v", err)
	}
	if rescheduler.lastTime != "14:30:00" {
		t.Fatalf("wire time = %q, want \"14:30:00\"", rescheduler.lastTime)
	}
}

func TestReschedule_RemoteFailurePropagates(t *testing.T) {
	now := time.Date(2026, time.September, 1, 8, 0, 0, 0, time.UTC)
	rescheduler, coordinator := rescheduleFixture(now)
	rescheduler.err = errors.New("gateway timeout")

	err := coordinator.Reschedule(context.Background(), "token", domain.RescheduleRequest{
		BookingID: "PB-5",
		Category:  domain.CategoryPuja,
		NewDate:   "2026-09-10",
		NewTime:   "11:00",
	})
	if !errors.Is(err, rescheduler.err) {
		t.Fatalf("Reschedule error = %v, want propagated gateway error", err)
	}
}
