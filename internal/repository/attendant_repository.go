package repository

import (
	"context"

	"gorm.io/gorm"

	"safarisalama/internal/model"
)

// AttendantRepository defines bus attendant persistence operations.
type AttendantRepository interface {
	Create(ctx context.Context, attendant *model.BusAttendant) error
	List(ctx context.Context) ([]model.BusAttendant, error)
}

type attendantRepository struct {
	db *gorm.DB
}

// NewAttendantRepository builds a GORM-backed repository.
func NewAttendantRepository(db *gorm.DB) AttendantRepository {
	return &attendantRepository{db: db}
}

func (r *attendantRepository) Create(ctx context.Context, attendant *model.BusAttendant) error {
	return r.db.WithContext(ctx).Create(attendant).Error
}

func (r *attendantRepository) List(ctx context.Context) ([]model.BusAttendant, error) {
	var attendants []model.BusAttendant
	if err := r.db.WithContext(ctx).Find(&attendants).Error; err != nil {
		return nil, err
	}
	return attendants, nil
}
