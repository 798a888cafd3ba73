package usecase

import (
	"context"

	"okpujaAdmin/internal/modules/bookings/domain"
	employeesdomain "okpujaAdmin/internal/modules/employees/domain"
)

// fetcherFunc adapts a function to port.BookingFetcher.
type fetcherFunc func(ctx context.Context, token string, category domain.Category) ([]any, error)

func (f fetcherFunc) FetchBookings(ctx context.Context, token string, category domain.Category) ([]any, error) {
	return f(ctx, token, category)
}

// updaterFunc adapts a function to port.StatusUpdater.
type updaterFunc func(ctx context.Context, token string, category domain.Category, rawID string, target domain.Status, reason string) error

func (f updaterFunc) UpdateStatus(ctx context.Context, token string, category domain.Category, rawID string, target domain.Status, reason string) error {
	return f(ctx, token, category, rawID, target, reason)
}

// fakeAssigner records assignment calls.
type fakeAssigner struct {
	assignCalls   int
	unassignCalls int
	lastCategory  domain.Category
	lastRawID     string
	lastEmployee  int
	lastNotes     string
	err           error
}

func (f *fakeAssigner) AssignStaff(ctx context.Context, token string, category domain.Category, rawID string, employeeID int, notes string) error {
	f.assignCalls++
	f.lastCategory = category
	f.lastRawID = rawID
	f.lastEmployee = employeeID
	f.lastNotes = notes
	return f.err
}

func (f *fakeAssigner) UnassignStaff(ctx context.Context, token string, category domain.Category, rawID string, notes string) error {
	f.unassignCalls++
	f.lastCategory = category
	f.lastRawID = rawID
	f.lastNotes = notes
	return f.err
}

// fakeRescheduler records reschedule calls.
type fakeRescheduler struct {
	calls    int
	lastDate string
	lastTime string
	err      error
}

func (f *fakeRescheduler) Reschedule(ctx context.Context, token string, category domain.Category, rawID string, newDate, newTime, reason string) error {
	f.calls++
	f.lastDate = newDate
	f.lastTime = newTime
	return f.err
}

// directoryFunc adapts a function to the employee directory fetcher port.
type directoryFunc func(ctx context.Context, token string) ([]employeesdomain.Employee, error)

func (f directoryFunc) FetchEmployees(ctx context.Context, token string) ([]employeesdomain.Employee, error) {
	return f(ctx, token)
}

func staticFetcher(records []any) fetcherFunc {
	return func(context.Context, string, domain.Category) ([]any, error) {
		return records, nil
	}
}
