package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/autoprofi/driving-school-api/internal/models"
)

// InstructorRepository persists instructor profiles.
type InstructorRepository interface {
	List(ctx context.Context) ([]models.Instructor, error)
	Create(ctx context.Context, instructor *models.Instructor) error
	Update(ctx context.Context, instructor *models.Instructor) error
	Delete(ctx context.Context, id uint) error
}

type instructorRepository struct {
	db *gorm.DB
}

// NewInstructorRepository constructs a repository backed by GORM.
func NewInstructorRepository(db *gorm.DB) InstructorRepository {
	return &instructorRepository{db: db}
}

func (r *instructorRepository) List(ctx context.Context) ([]models.Instructor, error) {
	var instructors []models.Instructor
	err := r.db.WithContext(ctx).Order("id").Find(&instructors).Error
	return instructors, err
}

func (r *instructorRepository) Create(ctx context.Context, instructor *models.Instructor) error {
	return r.db.WithContext(ctx).Create(instructor).Error
}

func (r *instructorRepository) Update(ctx context.Context, instructor *models.Instructor) error {
	result := r.db.WithContext(ctx).
		Model(&models.Instructor{}).
		Where("id = ?", instructor.ID).
		Updates(map[string]interface{}{
			"name":           instructor.Name,
			"specialization": instructor.Specialization,
			"experience":     instructor.Experience,
			"rating":         instructor.Rating,
			"bio":            instructor.Bio,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *instructorRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Instructor{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
