package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"safarisalama/internal/auth"
	"safarisalama/internal/config"
	"safarisalama/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	guardianHandler *handler.GuardianHandler,
	adminHandler *handler.AdminHandler,
	driverHandler *handler.DriverHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	// Driver page endpoints sit outside the bearer-token scheme: the device
	// posts fixes from the session-authenticated driver page.
	api.POST("/driver/location/update", driverHandler.UpdateLocation)
	api.GET("/driver/bus/:id/location", driverHandler.LatestLocation)

	// Guardian routes (any valid token)
	guardian := api.Group("/guardian", auth.Middleware(cfg.JWTSecret))
	guardian.GET("/students", guardianHandler.Students)
	guardian.GET("/trips", guardianHandler.Trips)

	// Admin routes (valid token plus admin role)
	admin := api.Group("/admin", auth.Middleware(cfg.JWTSecret), auth.RequireAdmin)
	admin.GET("/guardians", adminHandler.Guardians)
	admin.GET("/students", adminHandler.Students)
	admin.GET("/buses", adminHandler.Buses)
	admin.POST("/bus", adminHandler.CreateBus)
	admin.POST("/student", adminHandler.CreateStudent)
	admin.POST("/driver", adminHandler.CreateDriver)
	admin.POST("/attendant", adminHandler.CreateAttendant)
	admin.GET("/schedules", adminHandler.Schedules)
	admin.POST("/schedule", adminHandler.CreateSchedule)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
