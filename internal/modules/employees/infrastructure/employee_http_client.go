package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	bookinginfra "okpujaAdmin/internal/modules/bookings/infrastructure"
	"okpujaAdmin/internal/modules/employees/application/port"
	"okpujaAdmin/internal/modules/employees/domain"
	"okpujaAdmin/internal/shared/normalization"
)

// EmployeeHTTPClient implements the directory fetcher against the employee
// API.
type EmployeeHTTPClient struct {
	rest *bookinginfra.RESTClient
}

func NewEmployeeHTTPClient(baseURL string, timeout time.Duration, client *http.Client) *EmployeeHTTPClient {
	return &EmployeeHTTPClient{rest: bookinginfra.NewRESTClient(baseURL, timeout, client)}
}

func (c *EmployeeHTTPClient) FetchEmployees(ctx context.Context, token string) ([]domain.Employee, error) {
	req, err := c.rest.NewRequest(ctx, http.MethodGet, "/employees", token, nil)
	if err != nil {
		return nil, err
	}

	res, err := c.rest.Do(req)
	if err != nil {
		return nil, fmt.Errorf("employee directory request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 2048))
		return nil, fmt.Errorf("unexpected employee directory response %d: %s", res.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload any
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode employee directory: %w", err)
	}
	return domain.FromRecords(normalization.SliceFromPayload(payload)), nil
}

var _ port.DirectoryFetcher = (*EmployeeHTTPClient)(nil)
