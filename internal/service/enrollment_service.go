package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/autoprofi/driving-school-api/internal/dto"
	"github.com/autoprofi/driving-school-api/internal/models"
	"github.com/autoprofi/driving-school-api/internal/observability"
	"github.com/autoprofi/driving-school-api/internal/repository"
	"github.com/autoprofi/driving-school-api/internal/validation"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500

	enrollmentCreatedSubject = "enrollments.created"
)

// ErrEnrollmentNotFound indicates no enrollment exists for the given id.
var ErrEnrollmentNotFound = errors.New("enrollment not found")

// ValidationError carries a human-readable rejection reason for a submission.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(message string) error {
	return &ValidationError{Message: message}
}

// EnrollmentService exposes the enrollment application workflow.
type EnrollmentService interface {
	List(ctx context.Context, req dto.EnrollmentListRequest) ([]dto.EnrollmentResponse, error)
	Get(ctx context.Context, id uint) (dto.EnrollmentResponse, error)
	Create(ctx context.Context, req dto.EnrollmentCreateRequest) (dto.EnrollmentResponse, error)
	UpdateStatus(ctx context.Context, req dto.EnrollmentStatusUpdateRequest) (dto.EnrollmentResponse, error)
}

type enrollmentService struct {
	repo      repository.EnrollmentRepository
	validator *validator.Validate
	nats      *nats.Conn
	sanitizer *bluemonday.Policy
	logger    zerolog.Logger
	tracer    trace.Tracer
}

// NewEnrollmentService constructs the enrollment service.
func NewEnrollmentService(repo repository.EnrollmentRepository, validate *validator.Validate, natsConn *nats.Conn, logger zerolog.Logger) EnrollmentService {
	return &enrollmentService{
		repo:      repo,
		validator: validate,
		nats:      natsConn,
		sanitizer: bluemonday.StrictPolicy(),
		logger:    logger.With().Str("component", "enrollment_service").Logger(),
		tracer:    otel.Tracer("github.com/autoprofi/driving-school-api/internal/service/enrollment"),
	}
}

func (s *enrollmentService) List(ctx context.Context, req dto.EnrollmentListRequest) ([]dto.EnrollmentResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	offset := req.Offset
	if offset < 0 {
		offset = 0
	}

	enrollments, err := s.repo.List(ctx, repository.EnrollmentFilter{
		Status: strings.TrimSpace(req.Status),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, err
	}

	items := make([]dto.EnrollmentResponse, 0, len(enrollments))
	for _, enrollment := range enrollments {
		items = append(items, dto.NewEnrollmentResponse(enrollment))
	}
	return items, nil
}

func (s *enrollmentService) Get(ctx context.Context, id uint) (dto.EnrollmentResponse, error) {
	enrollment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.EnrollmentResponse{}, ErrEnrollmentNotFound
		}
		return dto.EnrollmentResponse{}, err
	}
	return dto.NewEnrollmentResponse(enrollment), nil
}

func (s *enrollmentService) Create(ctx context.Context, req dto.EnrollmentCreateRequest) (dto.EnrollmentResponse, error) {
	ctx, span := s.tracer.Start(ctx, "enrollment.create")
	defer span.End()

	req.FullName = strings.TrimSpace(req.FullName)
	req.Phone = strings.TrimSpace(req.Phone)

	if err := s.validator.Struct(req); err != nil {
		span.SetStatus(codes.Error, "missing required fields")
		observability.EnrollmentSubmissions().WithLabelValues("validation_error").Inc()
		return dto.EnrollmentResponse{}, invalid("full_name, phone and course_id are required")
	}

	if !validation.ValidatePhone(req.Phone) {
		span.SetStatus(codes.Error, "invalid phone")
		observability.EnrollmentSubmissions().WithLabelValues("validation_error").Inc()
		return dto.EnrollmentResponse{}, invalid("invalid phone format")
	}

	email := normalizeOptional(req.Email)
	if email != nil && !validation.ValidateEmail(*email) {
		span.SetStatus(codes.Error, "invalid email")
		observability.EnrollmentSubmissions().WithLabelValues("validation_error").Inc()
		return dto.EnrollmentResponse{}, invalid("invalid email format")
	}

	message := normalizeOptional(req.Message)
	if message != nil {
		sanitized := s.sanitizer.Sanitize(*message)
		message = &sanitized
	}

	enrollment := models.Enrollment{
		FullName: validation.NormalizeName(req.FullName),
		Phone:    req.Phone,
		Email:    email,
		CourseID: req.CourseID,
		Message:  message,
		Status:   models.StatusNew,
	}

	if err := s.repo.Create(ctx, &enrollment); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "persistence failed")
		observability.EnrollmentSubmissions().WithLabelValues("error").Inc()
		return dto.EnrollmentResponse{}, err
	}

	span.SetAttributes(attribute.Int64("enrollment.id", int64(enrollment.ID)))
	observability.EnrollmentSubmissions().WithLabelValues("created").Inc()
	s.publishCreated(enrollment)

	created, err := s.repo.GetByID(ctx, enrollment.ID)
	if err != nil {
		// Row is committed; fall back to the unjoined record.
		s.logger.Warn().Err(err).Uint("enrollment_id", enrollment.ID).Msg("failed to reload created enrollment")
		return dto.NewEnrollmentResponse(enrollment), nil
	}

	s.logger.Info().Uint("enrollment_id", created.ID).Uint("course_id", created.CourseID).Msg("enrollment created")
	return dto.NewEnrollmentResponse(created), nil
}

func (s *enrollmentService) UpdateStatus(ctx context.Context, req dto.EnrollmentStatusUpdateRequest) (dto.EnrollmentResponse, error) {
	ctx, span := s.tracer.Start(ctx, "enrollment.update_status")
	defer span.End()

	if err := s.validator.Struct(req); err != nil {
		span.SetStatus(codes.Error, "missing required fields")
		return dto.EnrollmentResponse{}, invalid("id and status are required")
	}

	status := models.EnrollmentStatus(strings.TrimSpace(req.Status))
	if !status.Valid() {
		span.SetStatus(codes.Error, "invalid status")
		return dto.EnrollmentResponse{}, invalid("allowed statuses: " + models.StatusVocabulary())
	}

	enrollment, err := s.repo.UpdateStatus(ctx, req.ID, status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			span.SetStatus(codes.Error, "not found")
			return dto.EnrollmentResponse{}, ErrEnrollmentNotFound
		}
		span.RecordError(err)
		return dto.EnrollmentResponse{}, err
	}

	s.logger.Info().Uint("enrollment_id", enrollment.ID).Str("status", string(status)).Msg("enrollment status updated")
	return dto.NewEnrollmentResponse(enrollment), nil
}

type enrollmentCreatedEvent struct {
	ID        uint      `json:"id"`
	FullName  string    `json:"full_name"`
	CourseID  uint      `json:"course_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// publishCreated notifies downstream consumers about a new application.
// Delivery is best effort: the enrollment is already persisted, so a broker
// failure is logged and never surfaced to the submitter.
func (s *enrollmentService) publishCreated(enrollment models.Enrollment) {
	if s.nats == nil {
		return
	}

	payload, err := json.Marshal(enrollmentCreatedEvent{
		ID:        enrollment.ID,
		FullName:  enrollment.FullName,
		CourseID:  enrollment.CourseID,
		Status:    string(enrollment.Status),
		CreatedAt: enrollment.CreatedAt,
	})
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to encode enrollment event")
		return
	}

	if err := s.nats.Publish(enrollmentCreatedSubject, payload); err != nil {
		s.logger.Warn().Err(err).Uint("enrollment_id", enrollment.ID).Msg("failed to publish enrollment event")
	}
}

func normalizeOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
