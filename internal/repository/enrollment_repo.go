package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/autoprofi/driving-school-api/internal/models"
)

// EnrollmentFilter filters enrollment list queries.
type EnrollmentFilter struct {
	Status string
	Limit  int
	Offset int
}

// EnrollmentRepository persists enrollment applications.
type EnrollmentRepository interface {
	List(ctx context.Context, filter EnrollmentFilter) ([]models.Enrollment, error)
	GetByID(ctx context.Context, id uint) (models.Enrollment, error)
	Create(ctx context.Context, enrollment *models.Enrollment) error
	UpdateStatus(ctx context.Context, id uint, status models.EnrollmentStatus) (models.Enrollment, error)
	ListRecent(ctx context.Context, limit int) ([]models.Enrollment, error)
}

type enrollmentRepository struct {
	db *gorm.DB
}

// NewEnrollmentRepository constructs a repository backed by GORM.
func NewEnrollmentRepository(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

func (r *enrollmentRepository) List(ctx context.Context, filter EnrollmentFilter) ([]models.Enrollment, error) {
	query := r.db.WithContext(ctx).Model(&models.Enrollment{}).Preload("Course")

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var enrollments []models.Enrollment
	if err := query.Order("created_at DESC").Find(&enrollments).Error; err != nil {
		return nil, err
	}

	return enrollments, nil
}

func (r *enrollmentRepository) GetByID(ctx context.Context, id uint) (models.Enrollment, error) {
	var enrollment models.Enrollment
	err := r.db.WithContext(ctx).
		Preload("Course").
		First(&enrollment, "id = ?", id).Error
	return enrollment, err
}

func (r *enrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	return r.db.WithContext(ctx).Create(enrollment).Error
}

func (r *enrollmentRepository) UpdateStatus(ctx context.Context, id uint, status models.EnrollmentStatus) (models.Enrollment, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Enrollment{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "updated_at": time.Now()})
	if result.Error != nil {
		return models.Enrollment{}, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Enrollment{}, gorm.ErrRecordNotFound
	}

	return r.GetByID(ctx, id)
}

func (r *enrollmentRepository) ListRecent(ctx context.Context, limit int) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	err := r.db.WithContext(ctx).
		Preload("Course").
		Order("created_at DESC").
		Limit(limit).
		Find(&enrollments).Error
	return enrollments, err
}
