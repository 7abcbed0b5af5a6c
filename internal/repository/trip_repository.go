package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"safarisalama/internal/model"
)

// TripRepository defines trip persistence operations. ListForGuardian encodes
// the transitive ownership rule: a trip is visible to a guardian iff its bus
// currently carries at least one of that guardian's students.
type TripRepository interface {
	Create(ctx context.Context, trip *model.Trip) error
	ListForGuardian(ctx context.Context, guardianID uint) ([]model.Trip, error)
	UpdatePositionForBus(ctx context.Context, busID uint, latitude, longitude float64, at time.Time) error
}

type tripRepository struct {
	db *gorm.DB
}

// NewTripRepository builds a GORM-backed repository.
func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) Create(ctx context.Context, trip *model.Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *tripRepository) ListForGuardian(ctx context.Context, guardianID uint) ([]model.Trip, error) {
	var trips []model.Trip
	if err := r.db.WithContext(ctx).
		Preload("Bus").
		Where("EXISTS (SELECT 1 FROM students WHERE students.bus_id = trips.bus_id AND students.guardian_id = ?)", guardianID).
		Find(&trips).Error; err != nil {
		return nil, err
	}
	return trips, nil
}

// UpdatePositionForBus promotes a GPS fix onto every non-completed trip of the
// bus. Completed trips keep the position they ended with.
func (r *tripRepository) UpdatePositionForBus(ctx context.Context, busID uint, latitude, longitude float64, at time.Time) error {
	return r.db.WithContext(ctx).Model(&model.Trip{}).
		Where("bus_id = ? AND status <> ?", busID, model.TripStatusCompleted).
		Updates(map[string]interface{}{
			"current_latitude":     latitude,
			"current_longitude":    longitude,
			"last_location_update": at,
		}).Error
}
