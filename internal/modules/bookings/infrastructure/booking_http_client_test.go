package infrastructure

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"okpujaAdmin/internal/modules/bookings/application/port"
	"okpujaAdmin/internal/modules/bookings/domain"
)

type capturedRequest struct {
	method string
	path   string
	auth   string
	body   map[string]any
}

// captureServer records every request and answers with the given status.
func captureServer(t *testing.T, status int, payload string) (*httptest.Server, *capturedRequest) {
	t.Helper()
	captured := &capturedRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.method = r.Method
		captured.path = r.URL.Path
		captured.auth = r.Header.Get("Authorization")
		captured.body = nil
		if r.Body != nil {
			var body map[string]any
			if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
				captured.body = body
			}
		}
		w.WriteHeader(status)
		if payload != "" {
			w.Write([]byte(payload))
		}
	}))
	t.Cleanup(server.Close)
	return server, captured
}

func newClientAgainst(server *httptest.Server) *BookingHTTPClient {
	return NewBookingHTTPClient(server.URL, time.Second, server.Client())
}

func TestFetchBookings_UnwrapsEnvelopedPayloads(t *testing.T) {
	payload := `{"success": true, "data": [{"book_id": 1}, {"book_id": 2}]}`
	server, captured := captureServer(t, http.StatusOK, payload)
	client := newClientAgainst(server)

	records, err := client.FetchBookings(context.Background(), "tkn", domain.CategoryPuja)
	if err != nil {
		t.Fatalf("FetchBookings: %v", err)
	}
	if captured.method != http.MethodGet || captured.path != "/puja-bookings" {
		t.Fatalf("request = %s %s", captured.method, captured.path)
	}
	if captured.auth != "Bearer tkn" {
		t.Fatalf("Authorization = %q", captured.auth)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
}

func TestFetchBookings_BareArrayPayload(t *testing.T) {
	server, _ := captureServer(t, http.StatusOK, `[{"id": 5}]`)
	client := newClientAgainst(server)

	records, err := client.FetchBookings(context.Background(), "tkn", domain.CategoryRegular)
	if err != nil {
		t.Fatalf("FetchBookings: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}
}

func TestUpdateStatus_WireShapePerCategory(t *testing.T) {
	cases := []struct {
		category   domain.Category
		wantMethod string
		wantPath   string
	}{
		{domain.CategoryAstrology, http.MethodPatch, "/astrology-bookings/12"},
		{domain.CategoryPuja, http.MethodPost, "/puja-bookings/12/status"},
		{domain.CategoryRegular, http.MethodPost, "/bookings/12/status"},
	}

	for _, tc := range cases {
		t.Run(string(tc.category), func(t *testing.T) {
			server, captured := captureServer(t, http.StatusOK, "")
			client := newClientAgainst(server)

			err := client.UpdateStatus(context.Background(), "tkn", tc.category, "12", domain.StatusConfirmed, "")
			if err != nil {
				t.Fatalf("UpdateStatus: %v", err)
			}
			if captured.method != tc.wantMethod || captured.path != tc.wantPath {
				t.Fatalf("request = %s %s, want %s %s", captured.method, captured.path, tc.wantMethod, tc.wantPath)
			}
			if captured.body["status"] != "CONFIRMED" {
				t.Fatalf("body = %v", captured.body)
			}
			if _, present := captured.body["reason"]; present {
				t.Fatal("blank reason was transmitted")
			}
		})
	}
}

func TestUpdateStatus_ReasonIncludedWhenSet(t *testing.T) {
	server, captured := captureServer(t, http.StatusOK, "")
	client := newClientAgainst(server)

	err := client.UpdateStatus(context.Background(), "tkn", domain.CategoryPuja, "4", domain.StatusCancelled, "customer request")
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if captured.body["reason"] != "customer request" {
		t.Fatalf("body = %v", captured.body)
	}
}

func TestReschedule_FieldNamesPerCategory(t *testing.T) {
	cases := []struct {
		category  domain.Category
		dateField string
		timeField string
		wantPath  string
	}{
		{domain.CategoryAstrology, "preferred_date", "preferred_time", "/astrology-bookings/3"},
		{domain.CategoryPuja, "new_date", "new_time", "/puja-bookings/3/reschedule"},
		{domain.CategoryRegular, "selected_date", "selected_time", "/bookings/3/reschedule"},
	}

	for _, tc := range cases {
		t.Run(string(tc.category), func(t *testing.T) {
			server, captured := captureServer(t, http.StatusOK, "")
			client := newClientAgainst(server)

			err := client.Reschedule(context.Background(), "tkn", tc.category, "3", "2026-10-01", "10:30:00", "shift")
			if err != nil {
				t.Fatalf("Reschedule: %v", err)
			}
			if captured.path != tc.wantPath {
				t.Fatalf("path = %s, want %s", captured.path, tc.wantPath)
			}
			if captured.body[tc.dateField] != "2026-10-01" || captured.body[tc.timeField] != "10:30:00" {
				t.Fatalf("body = %v, want %s/%s fields", captured.body, tc.dateField, tc.timeField)
			}
		})
	}
}

func TestAssignStaff_WireBody(t *testing.T) {
	server, captured := captureServer(t, http.StatusOK, "")
	client := newClientAgainst(server)

	err := client.AssignStaff(context.Background(), "tkn", domain.CategoryPuja, "8", 7, "priority client")
	if err != nil {
		t.Fatalf("AssignStaff: %v", err)
	}
	if captured.path != "/puja-bookings/8/assign" {
		t.Fatalf("path = %s", captured.path)
	}
	if captured.body["assigned_to"] != float64(7) {
		t.Fatalf("assigned_to = %v", captured.body["assigned_to"])
	}
	if captured.body["assignment_notes"] != "priority client" {
		t.Fatalf("body = %v", captured.body)
	}
}

func TestUnassignStaff_SendsZeroOnTheWireOnly(t *testing.T) {
	server, captured := captureServer(t, http.StatusOK, "")
	client := newClientAgainst(server)

	err := client.UnassignStaff(context.Background(), "tkn", domain.CategoryRegular, "8", "")
	if err != nil {
		t.Fatalf("UnassignStaff: %v", err)
	}
	if captured.path != "/bookings/8/assign" {
		t.Fatalf("path = %s", captured.path)
	}
	if captured.body["assigned_to"] != float64(0) {
		t.Fatalf("assigned_to = %v, want the wire's 0 encoding", captured.body["assigned_to"])
	}
	if _, present := captured.body["assignment_notes"]; present {
		t.Fatal("blank notes were transmitted")
	}
}

func TestErrorTaxonomyMapping(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"unauthorized", http.StatusUnauthorized, port.ErrUpstreamForbidden},
		{"forbidden", http.StatusForbidden, port.ErrUpstreamForbidden},
		{"not found", http.StatusNotFound, port.ErrBookingNotFound},
		{"server error", http.StatusInternalServerError, port.ErrRemote},
		{"bad gateway", http.StatusBadGateway, port.ErrRemote},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server, _ := captureServer(t, tc.status, `{"detail": "nope"}`)
			client := newClientAgainst(server)

			err := client.UpdateStatus(context.Background(), "tkn", domain.CategoryPuja, "1", domain.StatusConfirmed, "")
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestRemoteErrorCarriesStatusAndBody(t *testing.T) {
	server, _ := captureServer(t, http.StatusInternalServerError, `{"detail": "boom"}`)
	client := newClientAgainst(server)

	err := client.UpdateStatus(context.Background(), "tkn", domain.CategoryRegular, "1", domain.StatusConfirmed, "")
	var remote *port.RemoteError
	if !errors.As(err, &remote) {
		t.Fatalf("error = %T, want *port.RemoteError", err)
	}
	if remote.StatusCode != http.StatusInternalServerError {
		t.Fatalf("StatusCode = %d", remote.StatusCode)
	}
	if remote.Message == "" {
		t.Fatal("Message is empty, want body snippet")
	}
}

func TestNetworkFailureWrapsAsRemote(t *testing.T) {
	server, _ := captureServer(t, http.StatusOK, "")
	server.Close()
	client := newClientAgainst(server)

	_, err := client.FetchBookings(context.Background(), "tkn", domain.CategoryPuja)
	if !errors.Is(err, port.ErrRemote) {
		t.Fatalf("error = %v, want wrapped ErrRemote", err)
	}
}

func TestUnknownCategoryRejectedBeforeRequest(t *testing.T) {
	server, captured := captureServer(t, http.StatusOK, "")
	client := newClientAgainst(server)

	_, err := client.FetchBookings(context.Background(), "tkn", domain.Category("MYSTERY"))
	if !errors.Is(err, domain.ErrUnknownCategory) {
		t.Fatalf("error = %v", err)
	}
	if captured.method != "" {
		t.Fatal("a request was sent for an unknown category")
	}
}
