package main

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"safarisalama/internal/config"
	"safarisalama/internal/db"
	"safarisalama/internal/model"
	"safarisalama/internal/repository"
)

const bcryptCost = 10

// The admin role is never reachable through the API. This tool is the one
// sanctioned way to provision it: it upserts the admin account from
// ADMIN_EMAIL/ADMIN_PASSWORD and, with SEED_DEMO=true, builds a small demo
// fleet for local development.
func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

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
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	guardianRepo := repository.NewGuardianRepository(gormDB)

	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}

	if err := seedAdmin(ctx, guardianRepo, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("Failed to seed admin account: %v", err)
	}
	log.Printf("Admin account ready: %s", cfg.AdminEmail)

	if os.Getenv("SEED_DEMO") == "true" {
		if err := seedDemoFleet(ctx, gormDB, guardianRepo); err != nil {
			log.Fatalf("Failed to seed demo fleet: %v", err)
		}
		log.Println("Demo fleet seeded")
	}

	log.Println("Seed completed successfully!")
}

// seedAdmin creates the admin account or refreshes its password and role.
func seedAdmin(ctx context.Context, repo repository.GuardianRepository, email, password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return err
	}

	existing, err := repo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if existing != nil {
		existing.PasswordHash = string(hashed)
		existing.Role = model.RoleAdmin
		return repo.Update(ctx, existing)
	}

	return repo.Create(ctx, &model.Guardian{
		Name:         "Administrator",
		Email:        email,
		PasswordHash: string(hashed),
		PhoneNumber:  "n/a",
		Address:      "n/a",
		Role:         model.RoleAdmin,
	})
}

// seedDemoFleet creates two buses with drivers, two demo guardians with
// students on board, and a scheduled trip per bus. Idempotence is keyed on the
// demo guardian emails: if they exist the fleet is assumed present.
func seedDemoFleet(ctx context.Context, gormDB *gorm.DB, guardianRepo repository.GuardianRepository) error {
	if existing, err := guardianRepo.FindByEmail(ctx, "amina@example.com"); err == nil && existing != nil {
		log.Println("Demo fleet already present, skipping")
		return nil
	}

	busRepo := repository.NewBusRepository(gormDB)
	studentRepo := repository.NewStudentRepository(gormDB)
	tripRepo := repository.NewTripRepository(gormDB)
	driverRepo := repository.NewDriverRepository(gormDB)

	hashed, err := bcrypt.GenerateFromPassword([]byte("guardian123"), bcryptCost)
	if err != nil {
		return err
	}

	guardians := []*model.Guardian{
		{Name: "Amina Hassan", Email: "amina@example.com", PasswordHash: string(hashed), PhoneNumber: "+254700000001", Address: "12 Riverside Dr", Role: model.RoleGuardian},
		{Name: "John Mwangi", Email: "john@example.com", PasswordHash: string(hashed), PhoneNumber: "+254700000002", Address: "45 Ngong Rd", Role: model.RoleGuardian},
	}
	for _, guardian := range guardians {
		if err := guardianRepo.Create(ctx, guardian); err != nil {
			return err
		}
	}

	buses := []*model.Bus{
		{Number: "KBS-001", Capacity: 50, Status: model.BusStatusAvailable},
		{Number: "KBS-002", Capacity: 35, Status: model.BusStatusAvailable},
	}
	for _, bus := range buses {
		if err := busRepo.Create(ctx, bus); err != nil {
			return err
		}
	}

	drivers := []*model.Driver{
		{Name: "Peter Otieno", Phone: "+254711000001", BusID: &buses[0].ID},
		{Name: "Grace Wanjiru", Phone: "+254711000002", BusID: &buses[1].ID},
	}
	for i, driver := range drivers {
		if err := driverRepo.Create(ctx, driver); err != nil {
			return err
		}
		if err := gormDB.WithContext(ctx).Model(buses[i]).Update("driver_id", driver.ID).Error; err != nil {
			return err
		}
	}

	now := time.Now().UTC()
	students := []*model.Student{
		{Name: "Zawadi Hassan", Grade: "Grade 3", GuardianID: guardians[0].ID, BusID: &buses[0].ID, Status: model.StudentStatusNotOnBus, LastUpdate: now},
		{Name: "Baraka Hassan", Grade: "Grade 5", GuardianID: guardians[0].ID, BusID: &buses[0].ID, Status: model.StudentStatusNotOnBus, LastUpdate: now},
		{Name: "Wanjiku Mwangi", Grade: "Grade 4", GuardianID: guardians[1].ID, BusID: &buses[1].ID, Status: model.StudentStatusNotOnBus, LastUpdate: now},
	}
	for _, student := range students {
		if err := studentRepo.Create(ctx, student); err != nil {
			return err
		}
	}

	for _, bus := range buses {
		trip := &model.Trip{
			BusID:            bus.ID,
			Status:           model.TripStatusScheduled,
			StartTime:        now.Add(1 * time.Hour),
			EndTime:          now.Add(2 * time.Hour),
			EstimatedArrival: now.Add(90 * time.Minute),
		}
		if err := tripRepo.Create(ctx, trip); err != nil {
			return err
		}
	}

	return nil
}
