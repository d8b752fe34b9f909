package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/autoprofi/driving-school-api/internal/dto"
	"github.com/autoprofi/driving-school-api/internal/repository"
)

const defaultRecentLimit = 10

// StatsService aggregates read-only statistics for the admin dashboard.
type StatsService interface {
	Overview(ctx context.Context) (dto.OverviewStats, error)
	PerCourse(ctx context.Context) ([]dto.CourseStats, error)
	Recent(ctx context.Context, limit int) ([]dto.EnrollmentResponse, error)
}

type statsService struct {
	repo        repository.StatsRepository
	enrollments repository.EnrollmentRepository
	cache       *redis.Client
	cacheTTL    time.Duration
	logger      zerolog.Logger
	tracer      trace.Tracer
}

// NewStatsService constructs the statistics service.
func NewStatsService(repo repository.StatsRepository, enrollments repository.EnrollmentRepository, cache *redis.Client, ttl time.Duration, logger zerolog.Logger) StatsService {
	return &statsService{
		repo:        repo,
		enrollments: enrollments,
		cache:       cache,
		cacheTTL:    ttl,
		logger:      logger.With().Str("component", "stats_service").Logger(),
		tracer:      otel.Tracer("github.com/autoprofi/driving-school-api/internal/service/stats"),
	}
}

func (s *statsService) Overview(ctx context.Context) (dto.OverviewStats, error) {
	const cacheKey = "stats:overview"
	ctx, span := s.tracer.Start(ctx, "stats.overview")
	defer span.End()

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, cacheKey).Result()
		if err == nil {
			var overview dto.OverviewStats
			if unmarshalErr := json.Unmarshal([]byte(cached), &overview); unmarshalErr == nil {
				span.SetAttributes(attribute.Bool("stats.cache_hit", true))
				return overview, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn().Err(err).Msg("failed to read stats cache")
			span.RecordError(err)
		}
	}

	breakdown, err := s.repo.CountByStatus(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "count_by_status_failed")
		return dto.OverviewStats{}, err
	}

	totalEnrollments, err := s.repo.CountEnrollments(ctx)
	if err != nil {
		span.RecordError(err)
		return dto.OverviewStats{}, err
	}

	totalCourses, err := s.repo.CountCourses(ctx)
	if err != nil {
		span.RecordError(err)
		return dto.OverviewStats{}, err
	}

	totalInstructors, err := s.repo.CountInstructors(ctx)
	if err != nil {
		span.RecordError(err)
		return dto.OverviewStats{}, err
	}

	revenue, err := s.repo.TotalRevenue(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "revenue_failed")
		return dto.OverviewStats{}, err
	}

	overview := dto.OverviewStats{
		TotalEnrollments: totalEnrollments,
		TotalCourses:     totalCourses,
		TotalInstructors: totalInstructors,
		TotalRevenue:     revenue,
		StatusBreakdown:  breakdown,
	}
	span.SetAttributes(attribute.Int64("stats.total_enrollments", totalEnrollments))

	if s.cache != nil {
		if payload, err := json.Marshal(overview); err == nil {
			if err := s.cache.Set(ctx, cacheKey, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to store stats cache")
				span.RecordError(err)
			}
		}
	}

	return overview, nil
}

func (s *statsService) PerCourse(ctx context.Context) ([]dto.CourseStats, error) {
	ctx, span := s.tracer.Start(ctx, "stats.per_course")
	defer span.End()

	rows, err := s.repo.CourseBreakdown(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "course_breakdown_failed")
		return nil, err
	}
	return rows, nil
}

func (s *statsService) Recent(ctx context.Context, limit int) ([]dto.EnrollmentResponse, error) {
	ctx, span := s.tracer.Start(ctx, "stats.recent")
	defer span.End()

	if limit <= 0 {
		limit = defaultRecentLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	enrollments, err := s.enrollments.ListRecent(ctx, limit)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	items := make([]dto.EnrollmentResponse, 0, len(enrollments))
	for _, enrollment := range enrollments {
		items = append(items, dto.NewEnrollmentResponse(enrollment))
	}
	return items, nil
}
