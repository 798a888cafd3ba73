package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"okpujaAdmin/internal/modules/analytics/application/port"
	bookings "okpujaAdmin/internal/modules/bookings/domain"
	bookinginfra "okpujaAdmin/internal/modules/bookings/infrastructure"
	"okpujaAdmin/internal/shared/normalization"
)

// One overview endpoint per category, mirroring the booking sub-resource
// families.
var overviewPaths = map[bookings.Category]string{
	bookings.CategoryAstrology: "/astrology-bookings/overview",
	bookings.CategoryPuja:      "/puja-bookings/overview",
	bookings.CategoryRegular:   "/bookings/overview",
}

// OverviewHTTPClient implements the overview fetcher against the dashboard
// API.
type OverviewHTTPClient struct {
	rest *bookinginfra.RESTClient
}

func NewOverviewHTTPClient(baseURL string, timeout time.Duration, client *http.Client) *OverviewHTTPClient {
	return &OverviewHTTPClient{rest: bookinginfra.NewRESTClient(baseURL, timeout, client)}
}

func (c *OverviewHTTPClient) FetchOverview(ctx context.Context, token string, category bookings.Category) (map[string]any, error) {
	path, ok := overviewPaths[category]
	if !ok {
		return nil, bookings.ErrUnknownCategory
	}

	req, err := c.rest.NewRequest(ctx, http.MethodGet, path, token, nil)
	if err != nil {
		return nil, err
	}

	res, err := c.rest.Do(req)
	if err != nil {
		return nil, fmt.Errorf("overview request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 2048))
		return nil, fmt.Errorf("unexpected overview response %d: %s", res.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload any
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode overview: %w", err)
	}
	record := normalization.MapFromPayload(payload)
	if record == nil {
		return nil, fmt.Errorf("overview payload is not an object")
	}
	return record, nil
}

var _ port.OverviewFetcher = (*OverviewHTTPClient)(nil)
