package transport

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"okpujaAdmin/internal/modules/employees/application/usecase"
	"okpujaAdmin/internal/modules/employees/domain"
	"okpujaAdmin/internal/shared/auth"
)

// EmployeeHandler serves the staff directory to the admin UI.
type EmployeeHandler struct {
	directory *usecase.Directory
}

func NewEmployeeHandler(directory *usecase.Directory) *EmployeeHandler {
	return &EmployeeHandler{directory: directory}
}

func (h *EmployeeHandler) Register(g *echo.Group) {
	g.GET("/employees", h.List)
}

// List returns directory entries; pass eligible=true for assignment targets
// only. The directory is refreshed lazily on first access per session.
func (h *EmployeeHandler) List(c echo.Context) error {
	var employees []domain.Employee
	eligibleOnly, _ := strconv.ParseBool(c.QueryParam("eligible"))
	if eligibleOnly {
		employees = h.directory.Eligible()
	} else {
		employees = h.directory.All()
	}

	if len(employees) == 0 {
		if err := h.directory.Refresh(c.Request().Context(), auth.TokenFromContext(c)); err != nil {
			return echo.NewHTTPError(http.StatusBadGateway, "employee directory is unavailable")
		}
		if eligibleOnly {
			employees = h.directory.Eligible()
		} else {
			employees = h.directory.All()
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"data":  employees,
		"total": len(employees),
	})
}
