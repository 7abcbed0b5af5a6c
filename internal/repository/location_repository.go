package repository

import (
	"context"

	"gorm.io/gorm"

	"safarisalama/internal/model"
)

// LocationRepository defines bus location history persistence operations.
type LocationRepository interface {
	Create(ctx context.Context, location *model.BusLocation) error
	LatestForBus(ctx context.Context, busID uint) (*model.BusLocation, error)
}

type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository builds a GORM-backed repository.
func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) Create(ctx context.Context, location *model.BusLocation) error {
	return r.db.WithContext(ctx).Create(location).Error
}

func (r *locationRepository) LatestForBus(ctx context.Context, busID uint) (*model.BusLocation, error) {
	var location model.BusLocation
	if err := r.db.WithContext(ctx).
		Where("bus_id = ?", busID).
		Order("recorded_at DESC").
		First(&location).Error; err != nil {
		return nil, err
	}
	return &location, nil
}
