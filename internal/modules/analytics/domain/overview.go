package domain

import (
	"math"

	"github.com/shopspring/decimal"

	bookings "okpujaAdmin/internal/modules/bookings/domain"
	"okpujaAdmin/internal/shared/normalization"
)

// Overview carries one category's dashboard metrics as reported by the
// upstream overview endpoint. The numeric fields arrive as numbers from some
// sources and numeric strings from others; decoding coerces both.
type Overview struct {
	Category          bookings.Category `json:"category"`
	TotalBookings     int               `json:"total_bookings"`
	ConfirmedBookings int               `json:"confirmed_bookings"`
	CompletedBookings int               `json:"completed_bookings"`
	CancelledBookings int               `json:"cancelled_bookings"`
	PendingSessions   int               `json:"pending_sessions"`
	TotalRevenue      decimal.Decimal   `json:"total_revenue"`
	ActiveServices    int               `json:"active_services"`
}

// OverviewFromRecord decodes a loosely-typed overview payload. Revenue is
// coerced per-category before any aggregation; invalid values collapse to 0.
func OverviewFromRecord(record map[string]any, category bookings.Category) Overview {
	return Overview{
		Category:          category,
		TotalBookings:     normalization.AsInt(record["total_bookings"]),
		ConfirmedBookings: normalization.AsInt(record["confirmed_bookings"]),
		CompletedBookings: normalization.AsInt(record["completed_bookings"]),
		CancelledBookings: normalization.AsInt(record["cancelled_bookings"]),
		PendingSessions:   normalization.AsInt(record["pending_sessions"]),
		TotalRevenue:      normalization.AsDecimal(record["total_revenue"]),
		ActiveServices:    normalization.AsInt(record["active_services"]),
	}
}

// KPI is the cross-category dashboard summary.
type KPI struct {
	TotalBookings     int             `json:"total_bookings"`
	ConfirmedBookings int             `json:"confirmed_bookings"`
	CompletedBookings int             `json:"completed_bookings"`
	CancelledBookings int             `json:"cancelled_bookings"`
	PendingSessions   int             `json:"pending_sessions"`
	ActiveServices    int             `json:"active_services"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	// Rates are percentages rounded to one decimal place for display.
	CompletionRate      float64         `json:"completion_rate"`
	ConfirmationRate    float64         `json:"confirmation_rate"`
	AverageBookingValue decimal.Decimal `json:"average_booking_value"`
}

// Aggregate merges per-category overviews into unified KPIs. Divisions are
// guarded so an empty marketplace reports zero rates rather than NaN.
func Aggregate(overviews []Overview) KPI {
	kpi := KPI{TotalRevenue: decimal.Zero, AverageBookingValue: decimal.Zero}
	for _, overview := range overviews {
		kpi.TotalBookings += overview.TotalBookings
		kpi.ConfirmedBookings += overview.ConfirmedBookings
		kpi.CompletedBookings += overview.CompletedBookings
		kpi.CancelledBookings += overview.CancelledBookings
		kpi.PendingSessions += overview.PendingSessions
		kpi.ActiveServices += overview.ActiveServices
		kpi.TotalRevenue = kpi.TotalRevenue.Add(overview.TotalRevenue)
	}

	if kpi.TotalBookings > 0 {
		total := float64(kpi.TotalBookings)
		kpi.CompletionRate = roundRate(float64(kpi.CompletedBookings) / total * 100)
		kpi.ConfirmationRate = roundRate(float64(kpi.ConfirmedBookings) / total * 100)
		kpi.AverageBookingValue = kpi.TotalRevenue.DivRound(decimal.NewFromInt(int64(kpi.TotalBookings)), 2)
	}
	return kpi
}

func roundRate(value float64) float64 {
	return math.Round(value*10) / 10
}
