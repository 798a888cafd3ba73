package port

import (
	"context"

	bookings "okpujaAdmin/internal/modules/bookings/domain"
)

// OverviewFetcher retrieves one category's raw dashboard overview payload.
type OverviewFetcher interface {
	FetchOverview(ctx context.Context, token string, category bookings.Category) (map[string]any, error)
}
