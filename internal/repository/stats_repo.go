package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/autoprofi/driving-school-api/internal/dto"
	"github.com/autoprofi/driving-school-api/internal/models"
)

// StatsRepository supplies aggregate data for the statistics endpoint.
type StatsRepository interface {
	CountByStatus(ctx context.Context) ([]dto.StatusCount, error)
	CountEnrollments(ctx context.Context) (int64, error)
	CountCourses(ctx context.Context) (int64, error)
	CountInstructors(ctx context.Context) (int64, error)
	TotalRevenue(ctx context.Context) (float64, error)
	CourseBreakdown(ctx context.Context) ([]dto.CourseStats, error)
}

type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository constructs the statistics repository.
func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) CountByStatus(ctx context.Context) ([]dto.StatusCount, error) {
	var counts []dto.StatusCount
	err := r.db.WithContext(ctx).
		Model(&models.Enrollment{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&counts).Error
	return counts, err
}

func (r *statsRepository) CountEnrollments(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Enrollment{}).Count(&count).Error
	return count, err
}

func (r *statsRepository) CountCourses(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Course{}).Count(&count).Error
	return count, err
}

func (r *statsRepository) CountInstructors(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Instructor{}).Count(&count).Error
	return count, err
}

// TotalRevenue sums the course price of every enrollment whose status is
// enrolled or completed. Enrollments without a matching course contribute
// nothing, and an empty result coalesces to zero.
func (r *statsRepository) TotalRevenue(ctx context.Context) (float64, error) {
	var revenue float64
	err := r.db.WithContext(ctx).
		Table("enrollments").
		Joins("JOIN courses ON courses.id = enrollments.course_id").
		Where("enrollments.status IN ?", []models.EnrollmentStatus{models.StatusEnrolled, models.StatusCompleted}).
		Select("COALESCE(SUM(courses.price), 0)").
		Scan(&revenue).Error
	return revenue, err
}

func (r *statsRepository) CourseBreakdown(ctx context.Context) ([]dto.CourseStats, error) {
	var rows []dto.CourseStats
	err := r.db.WithContext(ctx).
		Table("courses").
		Select(`courses.id, courses.title, courses.category, courses.price, courses.duration,
			COUNT(enrollments.id) AS enrollment_count,
			COUNT(CASE WHEN enrollments.status = ? THEN 1 END) AS active_students,
			COUNT(CASE WHEN enrollments.status = ? THEN 1 END) AS completed_students,
			COALESCE(SUM(CASE WHEN enrollments.status IN (?, ?) THEN courses.price ELSE 0 END), 0) AS total_revenue`,
			models.StatusEnrolled, models.StatusCompleted, models.StatusEnrolled, models.StatusCompleted).
		Joins("LEFT JOIN enrollments ON enrollments.course_id = courses.id").
		Group("courses.id, courses.title, courses.category, courses.price, courses.duration").
		Order("enrollment_count DESC").
		Scan(&rows).Error
	return rows, err
}
