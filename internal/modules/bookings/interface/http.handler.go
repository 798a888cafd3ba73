package transport

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"okpujaAdmin/internal/modules/bookings/application/port"
	"okpujaAdmin/internal/modules/bookings/application/usecase"
	"okpujaAdmin/internal/modules/bookings/domain"
	employees "okpujaAdmin/internal/modules/employees/application/usecase"
	"okpujaAdmin/internal/shared/auth"
	"okpujaAdmin/internal/shared/httputil"
	"okpujaAdmin/internal/shared/validation"
)

// BookingHandler exposes the admin booking surface: listing with
// filter/sort/search, the three mutation families, and the session refresh.
type BookingHandler struct {
	store      *usecase.SessionStore
	directory  *employees.Directory
	status     *usecase.StatusTransitionController
	assignment *usecase.AssignmentCoordinator
	reschedule *usecase.RescheduleCoordinator
	validator  *validation.Validator
	errors     *httputil.ErrorMapper
}

func NewBookingHandler(
	store *usecase.SessionStore,
	directory *employees.Directory,
	status *usecase.StatusTransitionController,
	assignment *usecase.AssignmentCoordinator,
	reschedule *usecase.RescheduleCoordinator,
	validator *validation.Validator,
) *BookingHandler {
	mapper := httputil.NewErrorMapper().
		WithMapping(domain.ErrUnknownCategory, http.StatusBadRequest, "unknown booking category").
		WithMapping(usecase.ErrInvalidTransition, http.StatusBadRequest, "status not permitted for this category").
		WithMapping(usecase.ErrReasonRequired, http.StatusBadRequest, "a reason is required for this status").
		WithMapping(usecase.ErrInvalidDate, http.StatusBadRequest, "new date is not a valid calendar date").
		WithMapping(usecase.ErrInvalidTime, http.StatusBadRequest, "new time is not a valid clock time").
		WithMapping(usecase.ErrPastDate, http.StatusBadRequest, "new date must not be in the past").
		WithMapping(usecase.ErrUnsupportedOperation, http.StatusBadRequest, "operation not supported for this category").
		WithMapping(usecase.ErrEmployeeNotFound, http.StatusNotFound, "employee not found").
		WithMapping(usecase.ErrEmployeeNotEligible, http.StatusUnprocessableEntity, "employee is not an eligible assignee").
		WithMapping(usecase.ErrAlreadyAssigned, http.StatusConflict, "booking is already assigned to this employee").
		WithMapping(usecase.ErrOperationInProgress, http.StatusConflict, "a mutation of this kind is already in flight for this booking").
		WithMapping(port.ErrBookingNotFound, http.StatusNotFound, "booking not found upstream").
		WithMapping(port.ErrUpstreamForbidden, http.StatusUnauthorized, "upstream rejected credentials").
		WithMapping(port.ErrRemote, http.StatusBadGateway, "booking service is unavailable")

	return &BookingHandler{
		store:      store,
		directory:  directory,
		status:     status,
		assignment: assignment,
		reschedule: reschedule,
		validator:  validator,
		errors:     mapper,
	}
}

// Register attaches the booking routes to the given group.
func (h *BookingHandler) Register(g *echo.Group) {
	g.GET("/bookings", h.List)
	g.POST("/refresh", h.Refresh)
	g.POST("/bookings/:category/:id/status", h.ChangeStatus)
	g.POST("/bookings/:category/:id/assign", h.Assign)
	g.POST("/bookings/:category/:id/reschedule", h.Reschedule)
}

// List serves the normalized collection through the filter/sort engine.
func (h *BookingHandler) List(c echo.Context) error {
	var bookings []domain.Booking
	response := echo.Map{}
	if raw := strings.TrimSpace(c.QueryParam("category")); raw != "" {
		category, err := domain.ParseCategory(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "unknown booking category")
		}
		bookings = h.store.Bookings(category)
		if refreshedAt := h.store.RefreshedAt(category); !refreshedAt.IsZero() {
			response["refreshed_at"] = refreshedAt
		}
	} else {
		bookings = h.store.AllBookings()
	}

	filter, err := filterFromQuery(c)
	if err != nil {
		return err
	}
	results := domain.Query(bookings, filter)

	if sortBy := strings.TrimSpace(c.QueryParam("sort_by")); sortBy != "" {
		results = domain.Sort(results, domain.SortField(sortBy), domain.ParseSortDirection(c.QueryParam("sort_order")))
	}

	response["data"] = results
	response["total"] = len(results)
	return c.JSON(http.StatusOK, response)
}

// Refresh rebuilds the session from upstream: every category collection plus
// the employee directory. Each source's outcome is reported independently.
func (h *BookingHandler) Refresh(c echo.Context) error {
	token := auth.TokenFromContext(c)
	outcomes := h.store.RefreshAll(c.Request().Context(), token)

	response := make(map[string]string, len(outcomes)+1)
	failed := false
	for category, err := range outcomes {
		if err != nil {
			failed = true
			response[string(category)] = err.Error()
			continue
		}
		response[string(category)] = "ok"
	}

	if err := h.directory.Refresh(c.Request().Context(), token); err != nil {
		failed = true
		response["EMPLOYEES"] = err.Error()
	} else {
		response["EMPLOYEES"] = "ok"
	}

	status := http.StatusOK
	if failed {
		status = http.StatusMultiStatus
	}
	return c.JSON(status, echo.Map{"sources": response})
}

type statusChangeRequest struct {
	Status string `json:"status" validate:"required"`
	Reason string `json:"reason"`
}

// ChangeStatus drives the lifecycle state machine for one booking.
func (h *BookingHandler) ChangeStatus(c echo.Context) error {
	category, err := domain.ParseCategory(c.Param("category"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown booking category")
	}

	var body statusChangeRequest
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	if err := h.validator.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"errors": h.validator.FormatErrors(err)})
	}
	target, ok := domain.ParseStatus(body.Status)
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown status")
	}

	result, err := h.status.ChangeStatus(c.Request().Context(), auth.TokenFromContext(c), domain.StatusTransitionRequest{
		BookingID: category.QualifyID(c.Param("id")),
		Category:  category,
		Target:    target,
		Reason:    body.Reason,
	})
	if err != nil {
		info := h.errors.Map(err)
		return echo.NewHTTPError(info.Status, info.Message)
	}

	response := echo.Map{"updated": true}
	if result.Booking != nil {
		response["booking"] = result.Booking
	}
	if result.RefreshErr != nil {
		// The mutation went through; only the follow-up re-fetch failed.
		response["refresh_error"] = "refresh after update failed; data may be stale"
	}
	return c.JSON(http.StatusOK, response)
}

type assignRequest struct {
	AssignedTo *int   `json:"assigned_to" validate:"omitempty,gt=0"`
	Unassign   bool   `json:"unassign"`
	Notes      string `json:"assignment_notes"`
}

// Assign changes or clears the staff assignment for one booking.
func (h *BookingHandler) Assign(c echo.Context) error {
	category, err := domain.ParseCategory(c.Param("category"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown booking category")
	}

	var body assignRequest
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	if err := h.validator.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"errors": h.validator.FormatErrors(err)})
	}
	if !body.Unassign && body.AssignedTo == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "assigned_to is required unless unassigning")
	}

	req := domain.AssignmentRequest{
		BookingID: category.QualifyID(c.Param("id")),
		Category:  category,
		Unassign:  body.Unassign,
		Notes:     body.Notes,
	}
	if body.AssignedTo != nil {
		req.EmployeeID = *body.AssignedTo
	}

	if err := h.assignment.Assign(c.Request().Context(), auth.TokenFromContext(c), req); err != nil {
		info := h.errors.Map(err)
		return echo.NewHTTPError(info.Status, info.Message)
	}
	return c.JSON(http.StatusOK, echo.Map{"updated": true})
}

type rescheduleRequest struct {
	NewDate string `json:"new_date" validate:"required,datetime=2006-01-02"`
	NewTime string `json:"new_time" validate:"required"`
	Reason  string `json:"reason"`
}

// Reschedule moves a booking to a new date and time.
func (h *BookingHandler) Reschedule(c echo.Context) error {
	category, err := domain.ParseCategory(c.Param("category"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown booking category")
	}

	var body rescheduleRequest
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	if err := h.validator.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"errors": h.validator.FormatErrors(err)})
	}

	err = h.reschedule.Reschedule(c.Request().Context(), auth.TokenFromContext(c), domain.RescheduleRequest{
		BookingID: category.QualifyID(c.Param("id")),
		Category:  category,
		NewDate:   body.NewDate,
		NewTime:   body.NewTime,
		Reason:    body.Reason,
	})
	if err != nil {
		info := h.errors.Map(err)
		return echo.NewHTTPError(info.Status, info.Message)
	}
	return c.JSON(http.StatusOK, echo.Map{"updated": true})
}

func filterFromQuery(c echo.Context) (domain.Filter, error) {
	filter := domain.Filter{
		Search:        c.QueryParam("q"),
		ServiceType:   c.QueryParam("service_type"),
		AssignedStaff: c.QueryParam("assigned_staff"),
		Location:      c.QueryParam("location"),
		Priority:      c.QueryParam("priority"),
	}

	if raw := strings.TrimSpace(c.QueryParam("status")); raw != "" {
		status, ok := domain.ParseStatus(raw)
		if !ok {
			return domain.Filter{}, echo.NewHTTPError(http.StatusBadRequest, "unknown status")
		}
		filter.Status = status
	}
	if raw := strings.TrimSpace(c.QueryParam("date_from")); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return domain.Filter{}, echo.NewHTTPError(http.StatusBadRequest, "date_from must be YYYY-MM-DD")
		}
		filter.DateFrom = &parsed
	}
	if raw := strings.TrimSpace(c.QueryParam("date_to")); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return domain.Filter{}, echo.NewHTTPError(http.StatusBadRequest, "date_to must be YYYY-MM-DD")
		}
		filter.DateTo = &parsed
	}
	if raw := strings.TrimSpace(c.QueryParam("min_amount")); raw != "" {
		parsed, err := decimal.NewFromString(raw)
		if err != nil {
			return domain.Filter{}, echo.NewHTTPError(http.StatusBadRequest, "min_amount must be numeric")
		}
		filter.MinAmount = &parsed
	}
	if raw := strings.TrimSpace(c.QueryParam("max_amount")); raw != "" {
		parsed, err := decimal.NewFromString(raw)
		if err != nil {
			return domain.Filter{}, echo.NewHTTPError(http.StatusBadRequest, "max_amount must be numeric")
		}
		filter.MaxAmount = &parsed
	}

	return filter, nil
}
