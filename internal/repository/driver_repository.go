package repository

import (
	"context"

	"gorm.io/gorm"

	"safarisalama/internal/model"
)

// DriverRepository defines driver persistence operations.
type DriverRepository interface {
	Create(ctx context.Context, driver *model.Driver) error
	List(ctx context.Context) ([]model.Driver, error)
}

type driverRepository struct {
	db *gorm.DB
}

// NewDriverRepository builds a GORM-backed repository.
func NewDriverRepository(db *gorm.DB) DriverRepository {
	return &driverRepository{db: db}
}

func (r *driverRepository) Create(ctx context.Context, driver *model.Driver) error {
	return r.db.WithContext(ctx).Create(driver).Error
}

func (r *driverRepository) List(ctx context.Context) ([]model.Driver, error) {
	var drivers []model.Driver
	if err := r.db.WithContext(ctx).Find(&drivers).Error; err != nil {
		return nil, err
	}
	return drivers, nil
}
