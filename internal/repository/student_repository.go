package repository

import (
	"context"

	"gorm.io/gorm"

	"safarisalama/internal/model"
)

// StudentRepository defines student persistence operations. ListByGuardian is
// the ownership predicate for guardian-scoped reads: rows outside the caller's
// guardian id are simply never selected.
type StudentRepository interface {
	Create(ctx context.Context, student *model.Student) error
	ListByGuardian(ctx context.Context, guardianID uint) ([]model.Student, error)
	List(ctx context.Context) ([]model.Student, error)
}

type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository builds a GORM-backed repository.
func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) Create(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

func (r *studentRepository) ListByGuardian(ctx context.Context, guardianID uint) ([]model.Student, error) {
	var students []model.Student
	if err := r.db.WithContext(ctx).
		Preload("Bus").
		Where("guardian_id = ?", guardianID).
		Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

func (r *studentRepository) List(ctx context.Context) ([]model.Student, error) {
	var students []model.Student
	if err := r.db.WithContext(ctx).
		Preload("Guardian").
		Preload("Bus").
		Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}
