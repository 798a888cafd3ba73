package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"okpujaAdmin/internal/modules/bookings/application/usecase"
	"okpujaAdmin/internal/modules/bookings/domain"
	employees "okpujaAdmin/internal/modules/employees/application/usecase"
	employeesdomain "okpujaAdmin/internal/modules/employees/domain"
	"okpujaAdmin/internal/shared/validation"
)

type bookingFetcherFunc func(ctx context.Context, token string, category domain.Category) ([]any, error)

func (f bookingFetcherFunc) FetchBookings(ctx context.Context, token string, category domain.Category) ([]any, error) {
	return f(ctx, token, category)
}

type employeeFetcherFunc func(ctx context.Context, token string) ([]employeesdomain.Employee, error)

func (f employeeFetcherFunc) FetchEmployees(ctx context.Context, token string) ([]employeesdomain.Employee, error) {
	return f(ctx, token)
}

type countingAssigner struct {
	assignCalls   int
	unassignCalls int
}

func (a *countingAssigner) AssignStaff(context.Context, string, domain.Category, string, int, string) error {
	a.assignCalls++
	return nil
}

func (a *countingAssigner) UnassignStaff(context.Context, string, domain.Category, string, string) error {
	a.unassignCalls++
	return nil
}

func invoke(t *testing.T, handler func(echo.Context) error, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	if err := handler(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler returned %v", err)
	}
	return rec
}

func decodeSources(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body struct {
		Sources map[string]string `json:"sources"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return body.Sources
}

func TestRefresh_RebuildsDirectoryAlongsideBookings(t *testing.T) {
	store := usecase.NewSessionStore(bookingFetcherFunc(func(_ context.Context, _ string, category domain.Category) ([]any, error) {
		if category == domain.CategoryPuja {
			return []any{map[string]any{"book_id": "1", "status": "confirmed"}}, nil
		}
		return nil, nil
	}))
	directory := employees.NewDirectory(employeeFetcherFunc(func(context.Context, string) ([]employeesdomain.Employee, error) {
		return []employeesdomain.Employee{
			{ID: 7, Username: "priest.two", Role: employeesdomain.RoleEmployee, IsActive: true},
		}, nil
	}))
	assigner := &countingAssigner{}
	coordinator := usecase.NewAssignmentCoordinator(assigner, store, directory, 0, time.Second)
	handler := NewBookingHandler(store, directory, nil, coordinator, nil, validation.New())

	rec := invoke(t, handler.Refresh, http.MethodPost, "/refresh")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	sources := decodeSources(t, rec)
	if sources["EMPLOYEES"] != "ok" {
		t.Fatalf("employee source outcome = %q, want ok", sources["EMPLOYEES"])
	}

	// A session that has only refreshed can immediately assign a valid
	// active employee without first listing the directory.
	err := coordinator.Assign(context.Background(), "token", domain.AssignmentRequest{
		BookingID:  "PB-1",
		Category:   domain.CategoryPuja,
		EmployeeID: 7,
	})
	if err != nil {
		t.Fatalf("Assign after full refresh returned %v", err)
	}
	if assigner.assignCalls != 1 {
		t.Fatalf("assign calls = %d, want 1", assigner.assignCalls)
	}
}

func TestRefresh_ReportsDirectoryFailureAsSource(t *testing.T) {
	store := usecase.NewSessionStore(bookingFetcherFunc(func(context.Context, string, domain.Category) ([]any, error) {
		return nil, nil
	}))
	directory := employees.NewDirectory(employeeFetcherFunc(func(context.Context, string) ([]employeesdomain.Employee, error) {
		return nil, errors.New("employee api down")
	}))
	handler := NewBookingHandler(store, directory, nil, nil, nil, validation.New())

	rec := invoke(t, handler.Refresh, http.MethodPost, "/refresh")
	if rec.Code != http.StatusMultiStatus {
		t.Fatalf("status = %d, want 207", rec.Code)
	}
	sources := decodeSources(t, rec)
	if sources["EMPLOYEES"] != "employee api down" {
		t.Fatalf("employee source outcome = %q", sources["EMPLOYEES"])
	}
	for _, category := range domain.Categories() {
		if sources[string(category)] != "ok" {
			t.Fatalf("category %s outcome = %q, want ok", category, sources[string(category)])
		}
	}
}

func TestList_CategoryScopeReportsRefreshTimestamp(t *testing.T) {
	store := usecase.NewSessionStore(bookingFetcherFunc(func(context.Context, string, domain.Category) ([]any, error) {
		return []any{map[string]any{"book_id": "1"}}, nil
	}))
	directory := employees.NewDirectory(employeeFetcherFunc(func(context.Context, string) ([]employeesdomain.Employee, error) {
		return nil, nil
	}))
	if err := store.RefreshCategory(context.Background(), "token", domain.CategoryPuja); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	handler := NewBookingHandler(store, directory, nil, nil, nil, validation.New())

	rec := invoke(t, handler.List, http.MethodGet, "/bookings?category=PUJA")
	var scoped map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &scoped); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if _, present := scoped["refreshed_at"]; !present {
		t.Fatal("category-scoped response lacks refreshed_at")
	}

	rec = invoke(t, handler.List, http.MethodGet, "/bookings")
	var unscoped map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &unscoped); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if _, present := unscoped["refreshed_at"]; present {
		t.Fatal("cross-category response carries a single refreshed_at")
	}
}
