package transport

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"okpujaAdmin/internal/modules/analytics/application/usecase"
	"okpujaAdmin/internal/shared/auth"
)

// DashboardHandler serves cross-category KPIs.
type DashboardHandler struct {
	dashboard *usecase.DashboardUseCase
}

func NewDashboardHandler(dashboard *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

func (h *DashboardHandler) Register(g *echo.Group) {
	g.GET("/dashboard/stats", h.Stats)
}

// Stats aggregates the per-category overviews. A category whose overview
// endpoint failed is reported in "failures" without hiding the rest.
func (h *DashboardHandler) Stats(c echo.Context) error {
	output := h.dashboard.Load(c.Request().Context(), auth.TokenFromContext(c))

	failures := make(map[string]string, len(output.Failures))
	for category, err := range output.Failures {
		failures[string(category)] = err.Error()
	}

	status := http.StatusOK
	if len(failures) > 0 {
		status = http.StatusMultiStatus
	}
	return c.JSON(status, echo.Map{
		"kpi":       output.KPI,
		"overviews": output.Overviews,
		"failures":  failures,
	})
}
