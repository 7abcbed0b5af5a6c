package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"safarisalama/internal/errors"
	"safarisalama/internal/model"
	"safarisalama/internal/service"
)

// DriverHandler handles the driver page endpoints. These sit outside the JWT
// scheme: the driver page authenticates with its own session and the contract
// here is coordinate payload in, ack out.
type DriverHandler struct {
	trackingService service.TrackingService
}

// NewDriverHandler creates a new driver handler.
func NewDriverHandler(trackingService service.TrackingService) *DriverHandler {
	return &DriverHandler{trackingService: trackingService}
}

// UpdateLocationRequest represents a GPS fix posted by a driver's device.
// Latitude and longitude have no required tag because 0 is a valid coordinate;
// range checks happen in the tracking service.
type UpdateLocationRequest struct {
	BusID     uint     `json:"busId" validate:"required"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Accuracy  *float64 `json:"accuracy"`
	Speed     *float64 `json:"speed"`
	Heading   *float64 `json:"heading"`
}

// UpdateLocationResponse acknowledges a stored fix.
type UpdateLocationResponse struct {
	Message    string `json:"message"`
	LocationID uint   `json:"locationId"`
	FixID      string `json:"fixId"`
}

// LocationFixResponse is the latest known position of a bus.
type LocationFixResponse struct {
	BusID      uint      `json:"busId"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Accuracy   *float64  `json:"accuracy,omitempty"`
	Speed      *float64  `json:"speed,omitempty"`
	Heading    *float64  `json:"heading,omitempty"`
	RecordedAt time.Time `json:"recordedAt"`
}

func locationFixResponse(location *model.BusLocation) LocationFixResponse {
	return LocationFixResponse{
		BusID:      location.BusID,
		Latitude:   location.Latitude,
		Longitude:  location.Longitude,
		Accuracy:   location.Accuracy,
		Speed:      location.Speed,
		Heading:    location.Heading,
		RecordedAt: location.RecordedAt,
	}
}

// UpdateLocation godoc
// @Summary Receive GPS coordinates from a driver's device
// @Tags driver
// @Accept json
// @Produce json
// @Param request body UpdateLocationRequest true "GPS fix"
// @Success 200 {object} UpdateLocationResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /driver/location/update [post]
func (h *DriverHandler) UpdateLocation(c echo.Context) error {
	var req UpdateLocationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	location, err := h.trackingService.RecordLocation(c.Request().Context(), service.LocationUpdate{
		BusID:     req.BusID,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Accuracy:  req.Accuracy,
		Speed:     req.Speed,
		Heading:   req.Heading,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, UpdateLocationResponse{
		Message:    "Location updated successfully",
		LocationID: location.ID,
		FixID:      location.FixID,
	})
}

// LatestLocation godoc
// @Summary Latest known position of a bus
// @Tags driver
// @Produce json
// @Param id path int true "Bus ID"
// @Success 200 {object} LocationFixResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /driver/bus/{id}/location [get]
func (h *DriverHandler) LatestLocation(c echo.Context) error {
	busID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid bus id")
	}

	location, err := h.trackingService.LatestLocation(c.Request().Context(), uint(busID))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, locationFixResponse(location))
}
