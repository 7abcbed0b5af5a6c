package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"safarisalama/internal/model"
)

// MockGuardianRepository is a mock implementation of repository.GuardianRepository.
type MockGuardianRepository struct {
	mock.Mock
}

func (m *MockGuardianRepository) Create(ctx context.Context, guardian *model.Guardian) error {
	args := m.Called(ctx, guardian)
	return args.Error(0)
}

func (m *MockGuardianRepository) Update(ctx context.Context, guardian *model.Guardian) error {
	args := m.Called(ctx, guardian)
	return args.Error(0)
}

func (m *MockGuardianRepository) FindByID(ctx context.Context, id uint) (*model.Guardian, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Guardian), args.Error(1)
}

func (m *MockGuardianRepository) FindByEmail(ctx context.Context, email string) (*model.Guardian, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Guardian), args.Error(1)
}

func (m *MockGuardianRepository) List(ctx context.Context) ([]model.Guardian, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Guardian), args.Error(1)
}

// MockStudentRepository is a mock implementation of repository.StudentRepository.
type MockStudentRepository struct {
	mock.Mock
}

func (m *MockStudentRepository) Create(ctx context.Context, student *model.Student) error {
	args := m.Called(ctx, student)
	return args.Error(0)
}

func (m *MockStudentRepository) ListByGuardian(ctx context.Context, guardianID uint) ([]model.Student, error) {
	args := m.Called(ctx, guardianID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Student), args.Error(1)
}

func (m *MockStudentRepository) List(ctx context.Context) ([]model.Student, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Student), args.Error(1)
}

// MockBusRepository is a mock implementation of repository.BusRepository.
type MockBusRepository struct {
	mock.Mock
}

func (m *MockBusRepository) Create(ctx context.Context, bus *model.Bus) error {
	args := m.Called(ctx, bus)
	return args.Error(0)
}

func (m *MockBusRepository) FindByID(ctx context.Context, id uint) (*model.Bus, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Bus), args.Error(1)
}

func (m *MockBusRepository) List(ctx context.Context) ([]model.Bus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Bus), args.Error(1)
}

func (m *MockBusRepository) UpdatePosition(ctx context.Context, id uint, latitude, longitude float64) error {
	args := m.Called(ctx, id, latitude, longitude)
	return args.Error(0)
}

// MockTripRepository is a mock implementation of repository.TripRepository.
type MockTripRepository struct {
	mock.Mock
}

func (m *MockTripRepository) Create(ctx context.Context, trip *model.Trip) error {
	args := m.Called(ctx, trip)
	return args.Error(0)
}

func (m *MockTripRepository) ListForGuardian(ctx context.Context, guardianID uint) ([]model.Trip, error) {
	args := m.Called(ctx, guardianID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Trip), args.Error(1)
}

func (m *MockTripRepository) UpdatePositionForBus(ctx context.Context, busID uint, latitude, longitude float64, at time.Time) error {
	args := m.Called(ctx, busID, latitude, longitude, at)
	return args.Error(0)
}

// MockLocationRepository is a mock implementation of repository.LocationRepository.
type MockLocationRepository struct {
	mock.Mock
}

func (m *MockLocationRepository) Create(ctx context.Context, location *model.BusLocation) error {
	args := m.Called(ctx, location)
	return args.Error(0)
}

func (m *MockLocationRepository) LatestForBus(ctx context.Context, busID uint) (*model.BusLocation, error) {
	args := m.Called(ctx, busID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BusLocation), args.Error(1)
}

// MockDriverRepository is a mock implementation of repository.DriverRepository.
type MockDriverRepository struct {
	mock.Mock
}

func (m *MockDriverRepository) Create(ctx context.Context, driver *model.Driver) error {
	args := m.Called(ctx, driver)
	return args.Error(0)
}

func (m *MockDriverRepository) List(ctx context.Context) ([]model.Driver, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Driver), args.Error(1)
}

// MockAttendantRepository is a mock implementation of repository.AttendantRepository.
type MockAttendantRepository struct {
	mock.Mock
}

func (m *MockAttendantRepository) Create(ctx context.Context, attendant *model.BusAttendant) error {
	args := m.Called(ctx, attendant)
	return args.Error(0)
}

func (m *MockAttendantRepository) List(ctx context.Context) ([]model.BusAttendant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.BusAttendant), args.Error(1)
}

// MockScheduleRepository is a mock implementation of repository.ScheduleRepository.
type MockScheduleRepository struct {
	mock.Mock
}

func (m *MockScheduleRepository) Create(ctx context.Context, schedule *model.Schedule) error {
	args := m.Called(ctx, schedule)
	return args.Error(0)
}

func (m *MockScheduleRepository) ListByBus(ctx context.Context, busID uint) ([]model.Schedule, error) {
	args := m.Called(ctx, busID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Schedule), args.Error(1)
}
