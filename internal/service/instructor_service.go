package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/autoprofi/driving-school-api/internal/dto"
	"github.com/autoprofi/driving-school-api/internal/models"
	"github.com/autoprofi/driving-school-api/internal/repository"
)

// ErrInstructorNotFound indicates no instructor exists for the given id.
var ErrInstructorNotFound = errors.New("instructor not found")

// InstructorService exposes instructor profile management.
type InstructorService interface {
	List(ctx context.Context) ([]models.Instructor, error)
	Create(ctx context.Context, req dto.InstructorCreateRequest) (models.Instructor, error)
	Update(ctx context.Context, req dto.InstructorUpdateRequest) (models.Instructor, error)
	Delete(ctx context.Context, id uint) error
}

type instructorService struct {
	repo      repository.InstructorRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewInstructorService constructs the instructor service.
func NewInstructorService(repo repository.InstructorRepository, validate *validator.Validate, logger zerolog.Logger) InstructorService {
	return &instructorService{
		repo:      repo,
		validator: validate,
		logger:    logger.With().Str("component", "instructor_service").Logger(),
	}
}

func (s *instructorService) List(ctx context.Context) ([]models.Instructor, error) {
	return s.repo.List(ctx)
}

func (s *instructorService) Create(ctx context.Context, req dto.InstructorCreateRequest) (models.Instructor, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Instructor{}, invalid("name is required and rating must be between 0 and 5")
	}

	instructor := models.Instructor{
		Name:           req.Name,
		Specialization: req.Specialization,
		Experience:     req.Experience,
		Rating:         req.Rating,
		Bio:            req.Bio,
	}
	if err := s.repo.Create(ctx, &instructor); err != nil {
		return models.Instructor{}, err
	}

	s.logger.Info().Uint("instructor_id", instructor.ID).Str("name", instructor.Name).Msg("instructor created")
	return instructor, nil
}

func (s *instructorService) Update(ctx context.Context, req dto.InstructorUpdateRequest) (models.Instructor, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Instructor{}, invalid("id and name are required and rating must be between 0 and 5")
	}

	instructor := models.Instructor{
		ID:             req.ID,
		Name:           req.Name,
		Specialization: req.Specialization,
		Experience:     req.Experience,
		Rating:         req.Rating,
		Bio:            req.Bio,
	}
	if err := s.repo.Update(ctx, &instructor); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Instructor{}, ErrInstructorNotFound
		}
		return models.Instructor{}, err
	}

	return instructor, nil
}

func (s *instructorService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInstructorNotFound
		}
		return err
	}
	return nil
}
