package repository

import (
	"context"

	"gorm.io/gorm"

	"safarisalama/internal/model"
)

// GuardianRepository defines guardian persistence operations. FindByEmail is
// an exact-match lookup; the unique index on email is the source of truth for
// registration uniqueness.
type GuardianRepository interface {
	Create(ctx context.Context, guardian *model.Guardian) error
	Update(ctx context.Context, guardian *model.Guardian) error
	FindByID(ctx context.Context, id uint) (*model.Guardian, error)
	FindByEmail(ctx context.Context, email string) (*model.Guardian, error)
	List(ctx context.Context) ([]model.Guardian, error)
}

type guardianRepository struct {
	db *gorm.DB
}

// NewGuardianRepository builds a GORM-backed repository.
func NewGuardianRepository(db *gorm.DB) GuardianRepository {
	return &guardianRepository{db: db}
}

func (r *guardianRepository) Create(ctx context.Context, guardian *model.Guardian) error {
	return r.db.WithContext(ctx).Create(guardian).Error
}

func (r *guardianRepository) Update(ctx context.Context, guardian *model.Guardian) error {
	return r.db.WithContext(ctx).Save(guardian).Error
}

func (r *guardianRepository) FindByID(ctx context.Context, id uint) (*model.Guardian, error) {
	var guardian model.Guardian
	if err := r.db.WithContext(ctx).First(&guardian, id).Error; err != nil {
		return nil, err
	}
	return &guardian, nil
}

func (r *guardianRepository) FindByEmail(ctx context.Context, email string) (*model.Guardian, error) {
	var guardian model.Guardian
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&guardian).Error; err != nil {
		return nil, err
	}
	return &guardian, nil
}

func (r *guardianRepository) List(ctx context.Context) ([]model.Guardian, error) {
	var guardians []model.Guardian
	if err := r.db.WithContext(ctx).Find(&guardians).Error; err != nil {
		return nil, err
	}
	return guardians, nil
}
