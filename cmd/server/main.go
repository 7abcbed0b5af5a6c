package main

import (
	"log"
	"net/http"
	"os"

	_ "safarisalama/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"safarisalama/internal/auth"
	"safarisalama/internal/cache"
	"safarisalama/internal/config"
	"safarisalama/internal/db"
	"safarisalama/internal/handler"
	"safarisalama/internal/model"
	"safarisalama/internal/repository"
	"safarisalama/internal/router"
	"safarisalama/internal/service"
)

// @title SafariSalama API
// @version 1.0
// @description School bus tracking API: guardian and admin portals with JWT authentication, plus driver GPS location updates.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.BusLocation{},
			&model.Schedule{},
			&model.Trip{},
			&model.Student{},
			&model.Bus{},
			&model.Driver{},
			&model.BusAttendant{},
			&model.Guardian{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.Guardian{},
		&model.Driver{},
		&model.BusAttendant{},
		&model.Bus{},
		&model.Student{},
		&model.Trip{},
		&model.Schedule{},
		&model.BusLocation{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	guardianRepo := repository.NewGuardianRepository(gormDB)
	studentRepo := repository.NewStudentRepository(gormDB)
	busRepo := repository.NewBusRepository(gormDB)
	tripRepo := repository.NewTripRepository(gormDB)
	driverRepo := repository.NewDriverRepository(gormDB)
	attendantRepo := repository.NewAttendantRepository(gormDB)
	scheduleRepo := repository.NewScheduleRepository(gormDB)
	locationRepo := repository.NewLocationRepository(gormDB)

	// Initialize auth and services
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.JWTExpiryDays)
	authService := service.NewAuthService(guardianRepo, jwtService)
	guardianService := service.NewGuardianService(studentRepo, tripRepo)
	adminService := service.NewAdminService(guardianRepo, studentRepo, busRepo, driverRepo, attendantRepo, scheduleRepo, cacheClient)
	trackingService := service.NewTrackingService(busRepo, tripRepo, locationRepo, service.NewLocationValidator(), cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	guardianHandler := handler.NewGuardianHandler(guardianService)
	adminHandler := handler.NewAdminHandler(adminService)
	driverHandler := handler.NewDriverHandler(trackingService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		guardianHandler,
		adminHandler,
		driverHandler,
	)

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: %s/swagger/index.html", cfg.SwaggerHost)
	} else {
		log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
