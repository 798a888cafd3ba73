package usecase

import (
	"context"
	"log/slog"
	"sync"

	"okpujaAdmin/internal/modules/analytics/application/port"
	"okpujaAdmin/internal/modules/analytics/domain"
	bookings "okpujaAdmin/internal/modules/bookings/domain"
)

// DashboardUseCase merges the per-category overview endpoints into unified
// KPIs. Categories are fetched concurrently; a failing category is reported
// alongside the aggregate rather than sinking the whole dashboard.
type DashboardUseCase struct {
	fetcher port.OverviewFetcher
}

// DashboardOutput carries the aggregate plus the per-category outcomes.
type DashboardOutput struct {
	KPI       domain.KPI
	Overviews []domain.Overview
	Failures  map[bookings.Category]error
}

func NewDashboardUseCase(fetcher port.OverviewFetcher) *DashboardUseCase {
	return &DashboardUseCase{fetcher: fetcher}
}

// Load fetches every category overview and aggregates the ones that arrived.
func (uc *DashboardUseCase) Load(ctx context.Context, token string) *DashboardOutput {
	categories := bookings.Categories()

	type result struct {
		category bookings.Category
		overview domain.Overview
		err      error
	}

	results := make([]result, len(categories))
	var wg sync.WaitGroup
	for i, category := range categories {
		wg.Add(1)
		go func(i int, category bookings.Category) {
			defer wg.Done()
			record, err := uc.fetcher.FetchOverview(ctx, token, category)
			if err != nil {
				results[i] = result{category: category, err: err}
				return
			}
			results[i] = result{category: category, overview: domain.OverviewFromRecord(record, category)}
		}(i, category)
	}
	wg.Wait()

	output := &DashboardOutput{Failures: make(map[bookings.Category]error)}
	for _, res := range results {
		if res.err != nil {
			slog.Warn("overview fetch failed",
				slog.String("category", string(res.category)),
				slog.Any("error", res.err))
			output.Failures[res.category] = res.err
			continue
		}
		output.Overviews = append(output.Overviews, res.overview)
	}
	output.KPI = domain.Aggregate(output.Overviews)
	return output
}
