package service

import (
	"context"
	"fmt"

	"safarisalama/internal/repository"
)

// GuardianService exposes the guardian-scoped read operations. Every query is
// shaped by the caller's guardian id; records owned by other guardians are
// never selected, so foreign data shows up as zero rows, not as errors.
type GuardianService interface {
	Students(ctx context.Context, guardianID uint) ([]StudentSummary, error)
	Trips(ctx context.Context, guardianID uint) ([]TripSummary, error)
}

type guardianService struct {
	students repository.StudentRepository
	trips    repository.TripRepository
}

// NewGuardianService creates a new guardian service.
func NewGuardianService(students repository.StudentRepository, trips repository.TripRepository) GuardianService {
	return &guardianService{
		students: students,
		trips:    trips,
	}
}

// Students lists the caller's own students.
func (s *guardianService) Students(ctx context.Context, guardianID uint) ([]StudentSummary, error) {
	students, err := s.students.ListByGuardian(ctx, guardianID)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}

	summaries := make([]StudentSummary, 0, len(students))
	for _, student := range students {
		summaries = append(summaries, StudentSummary{
			ID:         student.ID,
			Name:       student.Name,
			Grade:      student.Grade,
			BusNumber:  studentBusNumber(student),
			Status:     student.Status,
			LastUpdate: student.LastUpdate,
		})
	}
	return summaries, nil
}

// Trips lists the trips of every bus currently carrying at least one of the
// caller's students.
func (s *guardianService) Trips(ctx context.Context, guardianID uint) ([]TripSummary, error) {
	trips, err := s.trips.ListForGuardian(ctx, guardianID)
	if err != nil {
		return nil, fmt.Errorf("list trips: %w", err)
	}

	summaries := make([]TripSummary, 0, len(trips))
	for _, trip := range trips {
		summaries = append(summaries, TripSummary{
			ID:        trip.ID,
			BusNumber: tripBusNumber(trip),
			Status:    trip.Status,
			CurrentLocation: LocationPoint{
				Latitude:  trip.CurrentLatitude,
				Longitude: trip.CurrentLongitude,
			},
			EstimatedArrival: trip.EstimatedArrival,
		})
	}
	return summaries, nil
}
