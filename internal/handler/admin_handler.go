package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"safarisalama/internal/errors"
	"safarisalama/internal/service"
)

// AdminHandler handles the admin-only endpoints. The role gate runs as
// middleware before any of these.
type AdminHandler struct {
	adminService service.AdminService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// CreateBusRequest represents a bus creation request.
type CreateBusRequest struct {
	Number   string `json:"number" validate:"required"`
	Capacity int    `json:"capacity" validate:"gte=0"`
}

// CreateStudentRequest represents a student creation request.
type CreateStudentRequest struct {
	Name       string `json:"name" validate:"required"`
	Grade      string `json:"grade" validate:"required"`
	GuardianID uint   `json:"guardianId" validate:"required"`
	BusID      *uint  `json:"busId"`
}

// CreateStaffRequest represents a driver or attendant creation request.
type CreateStaffRequest struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required"`
	BusID *uint  `json:"busId"`
}

// CreateScheduleRequest represents a schedule stop creation request.
type CreateScheduleRequest struct {
	BusID       uint      `json:"busId" validate:"required"`
	PickupTime  time.Time `json:"pickupTime" validate:"required"`
	DropoffTime time.Time `json:"dropoffTime" validate:"required"`
	StopName    string    `json:"stopName"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`
}

// Guardians godoc
// @Summary List all guardians
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} service.GuardianSummary
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/guardians [get]
func (h *AdminHandler) Guardians(c echo.Context) error {
	guardians, err := h.adminService.Guardians(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, guardians)
}

// Students godoc
// @Summary List all students
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} service.StudentSummary
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/students [get]
func (h *AdminHandler) Students(c echo.Context) error {
	students, err := h.adminService.Students(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, students)
}

// Buses godoc
// @Summary List the bus fleet
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} service.BusSummary
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/buses [get]
func (h *AdminHandler) Buses(c echo.Context) error {
	buses, err := h.adminService.Buses(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, buses)
}

// CreateBus godoc
// @Summary Create a bus
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateBusRequest true "Bus data"
// @Success 201 {object} model.Bus
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/bus [post]
func (h *AdminHandler) CreateBus(c echo.Context) error {
	var req CreateBusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	bus, err := h.adminService.CreateBus(c.Request().Context(), req.Number, req.Capacity)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, bus)
}

// CreateStudent godoc
// @Summary Create a student
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateStudentRequest true "Student data"
// @Success 201 {object} model.Student
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/student [post]
func (h *AdminHandler) CreateStudent(c echo.Context) error {
	var req CreateStudentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	student, err := h.adminService.CreateStudent(c.Request().Context(), service.CreateStudentInput{
		Name:       req.Name,
		Grade:      req.Grade,
		GuardianID: req.GuardianID,
		BusID:      req.BusID,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, student)
}

// CreateDriver godoc
// @Summary Create a driver
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateStaffRequest true "Driver data"
// @Success 201 {object} model.Driver
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/driver [post]
func (h *AdminHandler) CreateDriver(c echo.Context) error {
	var req CreateStaffRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	driver, err := h.adminService.CreateDriver(c.Request().Context(), req.Name, req.Phone, req.BusID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, driver)
}

// CreateAttendant godoc
// @Summary Create a bus attendant
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateStaffRequest true "Attendant data"
// @Success 201 {object} model.BusAttendant
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/attendant [post]
func (h *AdminHandler) CreateAttendant(c echo.Context) error {
	var req CreateStaffRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	attendant, err := h.adminService.CreateAttendant(c.Request().Context(), req.Name, req.Phone, req.BusID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, attendant)
}

// Schedules godoc
// @Summary List schedule stops for a bus
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param busId query int true "Bus ID"
// @Success 200 {array} model.Schedule
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/schedules [get]
func (h *AdminHandler) Schedules(c echo.Context) error {
	busID, err := strconv.ParseUint(c.QueryParam("busId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid busId")
	}

	schedules, err := h.adminService.Schedules(c.Request().Context(), uint(busID))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, schedules)
}

// CreateSchedule godoc
// @Summary Create a schedule stop
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateScheduleRequest true "Schedule data"
// @Success 201 {object} model.Schedule
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/schedule [post]
func (h *AdminHandler) CreateSchedule(c echo.Context) error {
	var req CreateScheduleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	schedule, err := h.adminService.CreateSchedule(c.Request().Context(), service.CreateScheduleInput{
		BusID:       req.BusID,
		PickupTime:  req.PickupTime,
		DropoffTime: req.DropoffTime,
		StopName:    req.StopName,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, schedule)
}
