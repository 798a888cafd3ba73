package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"okpujaAdmin/internal/modules/bookings/application/port"
	"okpujaAdmin/internal/modules/bookings/domain"
	"okpujaAdmin/internal/shared/normalization"
)

// unassignWireValue is what the upstream assignment endpoint expects for
// "remove the current assignee". The domain never sees this literal.
const unassignWireValue = 0

// categoryEndpoint is one row of the wire strategy table: everything that
// differs between the three booking resource families lives here, so the
// gateway methods stay category-agnostic.
type categoryEndpoint struct {
	listPath string
	// statusRequest yields the method and path for a lifecycle update.
	// Astrology uses a partial-update verb on the resource itself; the
	// other families expose a dedicated status sub-resource.
	statusRequest func(id string) (method, path string)
	// rescheduleRequest yields the method and path for a date/time change.
	rescheduleRequest func(id string) (method, path string)
	// rescheduleBody maps the canonical date/time/reason onto the family's
	// field names.
	rescheduleBody func(date, clock, reason string) map[string]any
	// assignPath is empty for families without an assignment endpoint.
	assignPath func(id string) string
}

var categoryEndpoints = map[domain.Category]categoryEndpoint{
	domain.CategoryAstrology: {
		listPath: "/astrology-bookings",
		statusRequest: func(id string) (string, string) {
			return http.MethodPatch, "/astrology-bookings/" + url.PathEscape(id)
		},
		rescheduleRequest: func(id string) (string, string) {
			return http.MethodPatch, "/astrology-bookings/" + url.PathEscape(id)
		},
		rescheduleBody: func(date, clock, reason string) map[string]any {
			return map[string]any{"preferred_date": date, "preferred_time": clock, "reason": reason}
		},
	},
	domain.CategoryPuja: {
		listPath: "/puja-bookings",
		statusRequest: func(id string) (string, string) {
			return http.MethodPost, "/puja-bookings/" + url.PathEscape(id) + "/status"
		},
		rescheduleRequest: func(id string) (string, string) {
			return http.MethodPost, "/puja-bookings/" + url.PathEscape(id) + "/reschedule"
		},
		rescheduleBody: func(date, clock, reason string) map[string]any {
			return map[string]any{"new_date": date, "new_time": clock, "reason": reason}
		},
		assignPath: func(id string) string {
			return "/puja-bookings/" + url.PathEscape(id) + "/assign"
		},
	},
	domain.CategoryRegular: {
		listPath: "/bookings",
		statusRequest: func(id string) (string, string) {
			return http.MethodPost, "/bookings/" + url.PathEscape(id) + "/status"
		},
		rescheduleRequest: func(id string) (string, string) {
			return http.MethodPost, "/bookings/" + url.PathEscape(id) + "/reschedule"
		},
		rescheduleBody: func(date, clock, reason string) map[string]any {
			return map[string]any{"selected_date": date, "selected_time": clock, "reason": reason}
		},
		assignPath: func(id string) string {
			return "/bookings/" + url.PathEscape(id) + "/assign"
		},
	},
}

// BookingHTTPClient implements the booking gateway against the upstream
// booking service API.
type BookingHTTPClient struct {
	rest *RESTClient
}

func NewBookingHTTPClient(baseURL string, timeout time.Duration, client *http.Client) *BookingHTTPClient {
	return &BookingHTTPClient{rest: NewRESTClient(baseURL, timeout, client)}
}

func (c *BookingHTTPClient) FetchBookings(ctx context.Context, token string, category domain.Category) ([]any, error) {
	endpoint, ok := categoryEndpoints[category]
	if !ok {
		return nil, domain.ErrUnknownCategory
	}

	req, err := c.rest.NewRequest(ctx, http.MethodGet, endpoint.listPath, token, nil)
	if err != nil {
		return nil, err
	}

	res, err := c.rest.Do(req)
	if err != nil {
		return nil, &port.RemoteError{Message: err.Error()}
	}
	defer res.Body.Close()

	if err := mapResponseStatus(res, req.URL.String()); err != nil {
		return nil, err
	}

	var payload any
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, &port.RemoteError{StatusCode: res.StatusCode, Message: fmt.Sprintf("decode booking list: %v", err)}
	}
	records := normalization.SliceFromPayload(payload)
	if records == nil {
		records = []any{}
	}
	return records, nil
}

func (c *BookingHTTPClient) UpdateStatus(ctx context.Context, token string, category domain.Category, rawID string, target domain.Status, reason string) error {
	endpoint, ok := categoryEndpoints[category]
	if !ok {
		return domain.ErrUnknownCategory
	}
	method, path := endpoint.statusRequest(rawID)
	body := map[string]any{"status": string(target)}
	if strings.TrimSpace(reason) != "" {
		body["reason"] = reason
	}
	return c.submit(ctx, token, method, path, body)
}

func (c *BookingHTTPClient) AssignStaff(ctx context.Context, token string, category domain.Category, rawID string, employeeID int, notes string) error {
	return c.submitAssignment(ctx, token, category, rawID, employeeID, notes)
}

func (c *BookingHTTPClient) UnassignStaff(ctx context.Context, token string, category domain.Category, rawID string, notes string) error {
	return c.submitAssignment(ctx, token, category, rawID, unassignWireValue, notes)
}

func (c *BookingHTTPClient) submitAssignment(ctx context.Context, token string, category domain.Category, rawID string, wireID int, notes string) error {
	endpoint, ok := categoryEndpoints[category]
	if !ok {
		return domain.ErrUnknownCategory
	}
	if endpoint.assignPath == nil {
		return fmt.Errorf("category %s has no assignment endpoint", category)
	}
	body := map[string]any{"assigned_to": wireID}
	if strings.TrimSpace(notes) != "" {
		body["assignment_notes"] = notes
	}
	return c.submit(ctx, token, http.MethodPost, endpoint.assignPath(rawID), body)
}

func (c *BookingHTTPClient) Reschedule(ctx context.Context, token string, category domain.Category, rawID string, newDate, newTime, reason string) error {
	endpoint, ok := categoryEndpoints[category]
	if !ok {
		return domain.ErrUnknownCategory
	}
	method, path := endpoint.rescheduleRequest(rawID)
	return c.submit(ctx, token, method, path, endpoint.rescheduleBody(newDate, newTime, reason))
}

func (c *BookingHTTPClient) submit(ctx context.Context, token, method, path string, body map[string]any) error {
	req, err := c.rest.NewJSONRequest(ctx, method, path, token, body)
	if err != nil {
		return err
	}
	slog.Debug("booking mutation request", slog.String("method", method), slog.String("url", req.URL.String()))

	res, err := c.rest.Do(req)
	if err != nil {
		return &port.RemoteError{Message: err.Error()}
	}
	defer res.Body.Close()

	return mapResponseStatus(res, req.URL.String())
}

// mapResponseStatus converts non-2xx responses into the gateway error
// taxonomy. The body is read only far enough to produce a useful message.
func mapResponseStatus(res *http.Response, url string) error {
	switch {
	case res.StatusCode >= http.StatusOK && res.StatusCode < http.StatusMultipleChoices:
		return nil
	case res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden:
		return port.ErrUpstreamForbidden
	case res.StatusCode == http.StatusNotFound:
		return port.ErrBookingNotFound
	}
	body, _ := io.ReadAll(io.LimitReader(res.Body, 2048))
	message := strings.TrimSpace(string(body))
	if message == "" {
		message = res.Status
	}
	slog.Error("upstream request failed",
		slog.Int("status", res.StatusCode),
		slog.String("url", url),
		slog.String("body", message))
	return &port.RemoteError{StatusCode: res.StatusCode, Message: message}
}

var _ port.BookingGateway = (*BookingHTTPClient)(nil)
