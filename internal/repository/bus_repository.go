package repository

import (
	"context"

	"gorm.io/gorm"

	"safarisalama/internal/model"
)

// BusRepository defines bus persistence operations.
type BusRepository interface {
	Create(ctx context.Context, bus *model.Bus) error
	FindByID(ctx context.Context, id uint) (*model.Bus, error)
	List(ctx context.Context) ([]model.Bus, error)
	UpdatePosition(ctx context.Context, id uint, latitude, longitude float64) error
}

type busRepository struct {
	db *gorm.DB
}

// NewBusRepository builds a GORM-backed repository.
func NewBusRepository(db *gorm.DB) BusRepository {
	return &busRepository{db: db}
}

func (r *busRepository) Create(ctx context.Context, bus *model.Bus) error {
	return r.db.WithContext(ctx).Create(bus).Error
}

func (r *busRepository) FindByID(ctx context.Context, id uint) (*model.Bus, error) {
	var bus model.Bus
	if err := r.db.WithContext(ctx).First(&bus, id).Error; err != nil {
		return nil, err
	}
	return &bus, nil
}

func (r *busRepository) List(ctx context.Context) ([]model.Bus, error) {
	var buses []model.Bus
	if err := r.db.WithContext(ctx).
		Preload("Driver").
		Preload("Attendant").
		Find(&buses).Error; err != nil {
		return nil, err
	}
	return buses, nil
}

func (r *busRepository) UpdatePosition(ctx context.Context, id uint, latitude, longitude float64) error {
	return r.db.WithContext(ctx).Model(&model.Bus{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"current_latitude":  latitude,
			"current_longitude": longitude,
		}).Error
}
