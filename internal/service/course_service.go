package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/autoprofi/driving-school-api/internal/dto"
	"github.com/autoprofi/driving-school-api/internal/models"
	"github.com/autoprofi/driving-school-api/internal/repository"
)

// ErrCourseNotFound indicates no course exists for the given id.
var ErrCourseNotFound = errors.New("course not found")

// CourseService exposes course catalog management.
type CourseService interface {
	List(ctx context.Context) ([]models.Course, error)
	Create(ctx context.Context, req dto.CourseCreateRequest) (models.Course, error)
	Update(ctx context.Context, req dto.CourseUpdateRequest) (models.Course, error)
	Delete(ctx context.Context, id uint) error
}

type courseService struct {
	repo      repository.CourseRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewCourseService constructs the course service.
func NewCourseService(repo repository.CourseRepository, validate *validator.Validate, logger zerolog.Logger) CourseService {
	return &courseService{
		repo:      repo,
		validator: validate,
		logger:    logger.With().Str("component", "course_service").Logger(),
	}
}

func (s *courseService) List(ctx context.Context) ([]models.Course, error) {
	return s.repo.List(ctx)
}

func (s *courseService) Create(ctx context.Context, req dto.CourseCreateRequest) (models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Course{}, invalid("title and category are required")
	}

	course := models.Course{
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
		Duration:    req.Duration,
		Price:       req.Price,
		Features:    datatypes.NewJSONSlice(req.Features),
	}
	if err := s.repo.Create(ctx, &course); err != nil {
		return models.Course{}, err
	}

	s.logger.Info().Uint("course_id", course.ID).Str("title", course.Title).Msg("course created")
	return course, nil
}

func (s *courseService) Update(ctx context.Context, req dto.CourseUpdateRequest) (models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Course{}, invalid("id, title and category are required")
	}

	course := models.Course{
		ID:          req.ID,
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
		Duration:    req.Duration,
		Price:       req.Price,
		Features:    datatypes.NewJSONSlice(req.Features),
	}
	if err := s.repo.Update(ctx, &course); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Course{}, ErrCourseNotFound
		}
		return models.Course{}, err
	}

	return s.repo.GetByID(ctx, req.ID)
}

func (s *courseService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCourseNotFound
		}
		return err
	}
	return nil
}
