package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"safarisalama/internal/cache"
	apperrors "safarisalama/internal/errors"
	"safarisalama/internal/model"
	"safarisalama/internal/repository"
)

const (
	fleetCacheKey = "bus_fleet"
	fleetCacheTTL = 5 * time.Minute
)

// CreateStudentInput carries the admin student-create payload.
type CreateStudentInput struct {
	Name       string
	Grade      string
	GuardianID uint
	BusID      *uint
}

// CreateScheduleInput carries the admin schedule-create payload.
type CreateScheduleInput struct {
	BusID       uint
	PickupTime  time.Time
	DropoffTime time.Time
	StopName    string
	Latitude    *float64
	Longitude   *float64
}

// AdminService exposes the unfiltered listings and the create operations
// behind the admin role gate.
type AdminService interface {
	Guardians(ctx context.Context) ([]GuardianSummary, error)
	Students(ctx context.Context) ([]StudentSummary, error)
	Buses(ctx context.Context) ([]BusSummary, error)
	CreateBus(ctx context.Context, number string, capacity int) (*model.Bus, error)
	CreateStudent(ctx context.Context, input CreateStudentInput) (*model.Student, error)
	CreateDriver(ctx context.Context, name, phone string, busID *uint) (*model.Driver, error)
	CreateAttendant(ctx context.Context, name, phone string, busID *uint) (*model.BusAttendant, error)
	Schedules(ctx context.Context, busID uint) ([]model.Schedule, error)
	CreateSchedule(ctx context.Context, input CreateScheduleInput) (*model.Schedule, error)
}

type adminService struct {
	guardians  repository.GuardianRepository
	students   repository.StudentRepository
	buses      repository.BusRepository
	drivers    repository.DriverRepository
	attendants repository.AttendantRepository
	schedules  repository.ScheduleRepository
	cache      *cache.Client
}

// NewAdminService creates a new admin service.
func NewAdminService(
	guardians repository.GuardianRepository,
	students repository.StudentRepository,
	buses repository.BusRepository,
	drivers repository.DriverRepository,
	attendants repository.AttendantRepository,
	schedules repository.ScheduleRepository,
	cache *cache.Client,
) AdminService {
	return &adminService{
		guardians:  guardians,
		students:   students,
		buses:      buses,
		drivers:    drivers,
		attendants: attendants,
		schedules:  schedules,
		cache:      cache,
	}
}

// Guardians lists every guardian account without the hashed secret.
func (s *adminService) Guardians(ctx context.Context) ([]GuardianSummary, error) {
	guardians, err := s.guardians.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list guardians: %w", err)
	}

	summaries := make([]GuardianSummary, 0, len(guardians))
	for _, guardian := range guardians {
		summaries = append(summaries, GuardianSummary{
			ID:          guardian.ID,
			Name:        guardian.Name,
			Email:       guardian.Email,
			PhoneNumber: guardian.PhoneNumber,
			Address:     guardian.Address,
		})
	}
	return summaries, nil
}

// Students lists every student with guardian and bus context.
func (s *adminService) Students(ctx context.Context) ([]StudentSummary, error) {
	students, err := s.students.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}

	summaries := make([]StudentSummary, 0, len(students))
	for _, student := range students {
		guardianName := "No Guardian"
		if student.Guardian != nil {
			guardianName = student.Guardian.Name
		}
		summaries = append(summaries, StudentSummary{
			ID:           student.ID,
			Name:         student.Name,
			Grade:        student.Grade,
			GuardianName: guardianName,
			BusNumber:    studentBusNumber(student),
			Status:       student.Status,
			LastUpdate:   student.LastUpdate,
		})
	}
	return summaries, nil
}

// Buses lists the fleet with a short-lived read-through cache. Fleet mutations
// invalidate the cached listing.
func (s *adminService) Buses(ctx context.Context) ([]BusSummary, error) {
	if data, _ := s.cache.Get(ctx, fleetCacheKey); data != nil {
		var cached []BusSummary
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	buses, err := s.buses.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list buses: %w", err)
	}

	summaries := make([]BusSummary, 0, len(buses))
	for _, bus := range buses {
		driverName := "Unassigned"
		if bus.Driver != nil {
			driverName = bus.Driver.Name
		}
		summaries = append(summaries, BusSummary{
			ID:         bus.ID,
			Number:     bus.Number,
			Capacity:   bus.Capacity,
			DriverName: driverName,
			Status:     bus.Status,
		})
	}

	if payload, err := json.Marshal(summaries); err == nil {
		_ = s.cache.Set(ctx, fleetCacheKey, payload, fleetCacheTTL)
	}

	return summaries, nil
}

// CreateBus adds a bus to the fleet. A zero capacity falls back to the default
// of 50 seats.
func (s *adminService) CreateBus(ctx context.Context, number string, capacity int) (*model.Bus, error) {
	if capacity <= 0 {
		capacity = 50
	}

	bus := &model.Bus{
		Number:   number,
		Capacity: capacity,
		Status:   model.BusStatusAvailable,
	}
	if err := s.buses.Create(ctx, bus); err != nil {
		return nil, fmt.Errorf("create bus: %w", err)
	}

	_ = s.cache.Delete(ctx, fleetCacheKey)
	return bus, nil
}

// CreateStudent adds a student under an existing guardian.
func (s *adminService) CreateStudent(ctx context.Context, input CreateStudentInput) (*model.Student, error) {
	if _, err := s.guardians.FindByID(ctx, input.GuardianID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGuardianNotFound
		}
		return nil, fmt.Errorf("find guardian: %w", err)
	}

	student := &model.Student{
		Name:       input.Name,
		Grade:      input.Grade,
		GuardianID: input.GuardianID,
		BusID:      input.BusID,
		Status:     model.StudentStatusNotOnBus,
		LastUpdate: time.Now().UTC(),
	}
	if err := s.students.Create(ctx, student); err != nil {
		return nil, fmt.Errorf("create student: %w", err)
	}
	return student, nil
}

// CreateDriver adds a driver, optionally assigned to a bus.
func (s *adminService) CreateDriver(ctx context.Context, name, phone string, busID *uint) (*model.Driver, error) {
	driver := &model.Driver{Name: name, Phone: phone, BusID: busID}
	if err := s.drivers.Create(ctx, driver); err != nil {
		return nil, fmt.Errorf("create driver: %w", err)
	}
	_ = s.cache.Delete(ctx, fleetCacheKey)
	return driver, nil
}

// CreateAttendant adds a bus attendant, optionally assigned to a bus.
func (s *adminService) CreateAttendant(ctx context.Context, name, phone string, busID *uint) (*model.BusAttendant, error) {
	attendant := &model.BusAttendant{Name: name, Phone: phone, BusID: busID}
	if err := s.attendants.Create(ctx, attendant); err != nil {
		return nil, fmt.Errorf("create attendant: %w", err)
	}
	return attendant, nil
}

// Schedules lists the planned stops of a bus.
func (s *adminService) Schedules(ctx context.Context, busID uint) ([]model.Schedule, error) {
	if _, err := s.buses.FindByID(ctx, busID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBusNotFound
		}
		return nil, fmt.Errorf("find bus: %w", err)
	}
	schedules, err := s.schedules.ListByBus(ctx, busID)
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	return schedules, nil
}

// CreateSchedule adds a planned stop for an existing bus.
func (s *adminService) CreateSchedule(ctx context.Context, input CreateScheduleInput) (*model.Schedule, error) {
	if _, err := s.buses.FindByID(ctx, input.BusID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBusNotFound
		}
		return nil, fmt.Errorf("find bus: %w", err)
	}

	schedule := &model.Schedule{
		BusID:       input.BusID,
		PickupTime:  input.PickupTime,
		DropoffTime: input.DropoffTime,
		StopName:    input.StopName,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
	}
	if err := s.schedules.Create(ctx, schedule); err != nil {
		return nil, fmt.Errorf("create schedule: %w", err)
	}
	return schedule, nil
}
