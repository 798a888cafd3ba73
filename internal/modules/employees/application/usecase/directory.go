package usecase

import (
	"context"
	"log/slog"
	"sync"

	"okpujaAdmin/internal/modules/employees/application/port"
	"okpujaAdmin/internal/modules/employees/domain"
)

// Directory is the session-scoped view of the staff directory. Like the
// booking collections it is replaced wholesale on refresh, never patched.
type Directory struct {
	fetcher port.DirectoryFetcher

	mu        sync.RWMutex
	employees []domain.Employee
}

func NewDirectory(fetcher port.DirectoryFetcher) *Directory {
	return &Directory{fetcher: fetcher}
}

// Refresh replaces the cached directory with the upstream state.
func (d *Directory) Refresh(ctx context.Context, token string) error {
	employees, err := d.fetcher.FetchEmployees(ctx, token)
	if err != nil {
		slog.Warn("employee directory refresh failed", slog.Any("error", err))
		return err
	}

	d.mu.Lock()
	d.employees = employees
	d.mu.Unlock()

	slog.Info("employee directory refreshed", slog.Int("count", len(employees)))
	return nil
}

// All returns a copy of every directory entry.
func (d *Directory) All() []domain.Employee {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]domain.Employee, len(d.employees))
	copy(out, d.employees)
	return out
}

// Eligible returns the entries that may be assigned to bookings.
func (d *Directory) Eligible() []domain.Employee {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]domain.Employee, 0, len(d.employees))
	for _, employee := range d.employees {
		if employee.EligibleAssignee() {
			out = append(out, employee)
		}
	}
	return out
}

// Find looks up an employee by id.
func (d *Directory) Find(id int) (domain.Employee, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, employee := range d.employees {
		if employee.ID == id {
			return employee, true
		}
	}
	return domain.Employee{}, false
}
