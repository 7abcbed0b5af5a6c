package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"safarisalama/internal/auth"
	"safarisalama/internal/errors"
	"safarisalama/internal/service"
)

// GuardianHandler handles the guardian-scoped read endpoints. The guardian id
// always comes from the verified claims, never from the request.
type GuardianHandler struct {
	guardianService service.GuardianService
}

// NewGuardianHandler creates a new guardian handler.
func NewGuardianHandler(guardianService service.GuardianService) *GuardianHandler {
	return &GuardianHandler{guardianService: guardianService}
}

// Students godoc
// @Summary List the caller's students
// @Tags guardian
// @Produce json
// @Security BearerAuth
// @Success 200 {array} service.StudentSummary
// @Failure 401 {object} errors.ErrorResponse
// @Router /guardian/students [get]
func (h *GuardianHandler) Students(c echo.Context) error {
	claims, ok := auth.FromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	students, err := h.guardianService.Students(c.Request().Context(), claims.ID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, students)
}

// Trips godoc
// @Summary List trips for the caller's buses
// @Tags guardian
// @Produce json
// @Security BearerAuth
// @Success 200 {array} service.TripSummary
// @Failure 401 {object} errors.ErrorResponse
// @Router /guardian/trips [get]
func (h *GuardianHandler) Trips(c echo.Context) error {
	claims, ok := auth.FromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	trips, err := h.guardianService.Trips(c.Request().Context(), claims.ID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, trips)
}
