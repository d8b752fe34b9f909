package service

import (
	"context"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/autoprofi/driving-school-api/internal/dto"
	"github.com/autoprofi/driving-school-api/internal/repository"
)

func newCourseService(db *gorm.DB) CourseService {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return NewCourseService(repository.NewCourseRepository(db), validate, zerolog.Nop())
}

func newInstructorService(db *gorm.DB) InstructorService {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return NewInstructorService(repository.NewInstructorRepository(db), validate, zerolog.Nop())
}

func TestCourseServiceCreateAndList(t *testing.T) {
	db := openTestDB(t)
	svc := newCourseService(db)

	created, err := svc.Create(context.Background(), dto.CourseCreateRequest{
		Title:    "Category B",
		Category: "B",
		Duration: "3 months",
		Price:    25000,
		Features: []string{"manual", "city driving"},
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.Len(t, created.Features, 2)

	courses, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, 1)
	require.Equal(t, "Category B", courses[0].Title)
}

func TestCourseServiceCreateValidation(t *testing.T) {
	db := openTestDB(t)
	svc := newCourseService(db)

	_, err := svc.Create(context.Background(), dto.CourseCreateRequest{Title: "No category"})
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestCourseServiceUpdate(t *testing.T) {
	db := openTestDB(t)
	svc := newCourseService(db)

	created, err := svc.Create(context.Background(), dto.CourseCreateRequest{Title: "Category B", Category: "B", Price: 25000})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), dto.CourseUpdateRequest{
		ID:       created.ID,
		Title:    "Category B Automatic",
		Category: "B",
		Price:    27000,
	})
	require.NoError(t, err)
	require.Equal(t, "Category B Automatic", updated.Title)
	require.Equal(t, 27000.0, updated.Price)

	_, err = svc.Update(context.Background(), dto.CourseUpdateRequest{ID: 9999, Title: "X", Category: "A"})
	require.True(t, errors.Is(err, ErrCourseNotFound))
}

func TestCourseServiceDelete(t *testing.T) {
	db := openTestDB(t)
	svc := newCourseService(db)

	created, err := svc.Create(context.Background(), dto.CourseCreateRequest{Title: "Category B", Category: "B"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	require.True(t, errors.Is(svc.Delete(context.Background(), created.ID), ErrCourseNotFound))
}

func TestInstructorServiceLifecycle(t *testing.T) {
	db := openTestDB(t)
	svc := newInstructorService(db)

	created, err := svc.Create(context.Background(), dto.InstructorCreateRequest{
		Name:           "Oleg Sidorov",
		Specialization: "Category B",
		Experience:     12,
		Rating:         4.8,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	updated, err := svc.Update(context.Background(), dto.InstructorUpdateRequest{
		ID:         created.ID,
		Name:       "Oleg Sidorov",
		Experience: 13,
		Rating:     4.9,
	})
	require.NoError(t, err)
	require.Equal(t, 4.9, updated.Rating)

	instructors, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, instructors, 1)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	require.True(t, errors.Is(svc.Delete(context.Background(), created.ID), ErrInstructorNotFound))
}

func TestInstructorServiceRatingBounds(t *testing.T) {
	db := openTestDB(t)
	svc := newInstructorService(db)

	_, err := svc.Create(context.Background(), dto.InstructorCreateRequest{Name: "Oleg", Rating: 7})
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}
