package repository

import (
	"context"

	"gorm.io/gorm"

	"safarisalama/internal/model"
)

// ScheduleRepository defines schedule persistence operations.
type ScheduleRepository interface {
	Create(ctx context.Context, schedule *model.Schedule) error
	ListByBus(ctx context.Context, busID uint) ([]model.Schedule, error)
}

type scheduleRepository struct {
	db *gorm.DB
}

// NewScheduleRepository builds a GORM-backed repository.
func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) Create(ctx context.Context, schedule *model.Schedule) error {
	return r.db.WithContext(ctx).Create(schedule).Error
}

func (r *scheduleRepository) ListByBus(ctx context.Context, busID uint) ([]model.Schedule, error) {
	var schedules []model.Schedule
	if err := r.db.WithContext(ctx).
		Where("bus_id = ?", busID).
		Order("pickup_time ASC").
		Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}
