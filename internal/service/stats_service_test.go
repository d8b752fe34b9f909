package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/autoprofi/driving-school-api/internal/dto"
	"github.com/autoprofi/driving-school-api/internal/models"
	"github.com/autoprofi/driving-school-api/internal/repository"
)

func newStatsService(db *gorm.DB, cache *redis.Client, ttl time.Duration) StatsService {
	return NewStatsService(
		repository.NewStatsRepository(db),
		repository.NewEnrollmentRepository(db),
		cache,
		ttl,
		zerolog.Nop(),
	)
}

// seedStatsFixture creates 3 courses and 5 enrollments with mixed statuses.
// Revenue-bearing rows: enrolled on course 1 (100), completed on course 2
// (200), enrolled on course 3 (300).
func seedStatsFixture(t *testing.T, db *gorm.DB) []models.Course {
	t.Helper()

	courses := []models.Course{
		{Title: "Category A", Category: "A", Price: 100},
		{Title: "Category B", Category: "B", Price: 200},
		{Title: "Category C", Category: "C", Price: 300},
	}
	for i := range courses {
		require.NoError(t, db.Create(&courses[i]).Error)
	}

	require.NoError(t, db.Create(&models.Instructor{Name: "Oleg", Experience: 10, Rating: 4.9}).Error)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	enrollments := []models.Enrollment{
		{FullName: "One", Phone: "89991234567", CourseID: courses[0].ID, Status: models.StatusNew, CreatedAt: base},
		{FullName: "Two", Phone: "89991234567", CourseID: courses[0].ID, Status: models.StatusEnrolled, CreatedAt: base.Add(time.Minute)},
		{FullName: "Three", Phone: "89991234567", CourseID: courses[1].ID, Status: models.StatusCompleted, CreatedAt: base.Add(2 * time.Minute)},
		{FullName: "Four", Phone: "89991234567", CourseID: courses[2].ID, Status: models.StatusCancelled, CreatedAt: base.Add(3 * time.Minute)},
		{FullName: "Five", Phone: "89991234567", CourseID: courses[2].ID, Status: models.StatusEnrolled, CreatedAt: base.Add(4 * time.Minute)},
	}
	for i := range enrollments {
		require.NoError(t, db.Create(&enrollments[i]).Error)
	}

	return courses
}

func TestStatsServiceOverview(t *testing.T) {
	db := openTestDB(t)
	seedStatsFixture(t, db)
	svc := newStatsService(db, nil, 0)

	overview, err := svc.Overview(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(5), overview.TotalEnrollments)
	require.Equal(t, int64(3), overview.TotalCourses)
	require.Equal(t, int64(1), overview.TotalInstructors)
	require.Equal(t, 600.0, overview.TotalRevenue)

	byStatus := map[string]int64{}
	for _, row := range overview.StatusBreakdown {
		byStatus[row.Status] = row.Total
	}
	require.Equal(t, int64(1), byStatus["new"])
	require.Equal(t, int64(2), byStatus["enrolled"])
	require.Equal(t, int64(1), byStatus["completed"])
	require.Equal(t, int64(1), byStatus["cancelled"])
}

func TestStatsServiceOverviewZeroRevenue(t *testing.T) {
	db := openTestDB(t)
	course := seedCourse(t, db, "Category B", 25000)
	require.NoError(t, db.Create(&models.Enrollment{
		FullName: "One", Phone: "89991234567", CourseID: course.ID, Status: models.StatusNew,
	}).Error)
	svc := newStatsService(db, nil, 0)

	overview, err := svc.Overview(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(1), overview.TotalEnrollments)
	require.Equal(t, 0.0, overview.TotalRevenue)
}

func TestStatsServiceOverviewUsesCache(t *testing.T) {
	db := openTestDB(t)
	seedStatsFixture(t, db)

	mr := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	svc := newStatsService(db, cache, time.Minute)

	first, err := svc.Overview(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(5), first.TotalEnrollments)

	// New rows must not show up until the cache entry expires.
	course := seedCourse(t, db, "Category D", 400)
	require.NoError(t, db.Create(&models.Enrollment{
		FullName: "Six", Phone: "89991234567", CourseID: course.ID, Status: models.StatusNew,
	}).Error)

	cached, err := svc.Overview(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(5), cached.TotalEnrollments)

	mr.FastForward(2 * time.Minute)

	fresh, err := svc.Overview(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(6), fresh.TotalEnrollments)
}

func TestStatsServicePerCourse(t *testing.T) {
	db := openTestDB(t)
	courses := seedStatsFixture(t, db)
	svc := newStatsService(db, nil, 0)

	rows, err := svc.PerCourse(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	byID := map[uint]dto.CourseStats{}
	for _, row := range rows {
		byID[row.ID] = row
	}

	first := byID[courses[0].ID]
	require.Equal(t, int64(2), first.EnrollmentCount)
	require.Equal(t, int64(1), first.ActiveStudents)
	require.Equal(t, int64(0), first.CompletedStudents)
	require.Equal(t, 100.0, first.TotalRevenue)

	second := byID[courses[1].ID]
	require.Equal(t, int64(1), second.EnrollmentCount)
	require.Equal(t, int64(1), second.CompletedStudents)
	require.Equal(t, 200.0, second.TotalRevenue)

	third := byID[courses[2].ID]
	require.Equal(t, int64(2), third.EnrollmentCount)
	require.Equal(t, int64(1), third.ActiveStudents)
	require.Equal(t, 300.0, third.TotalRevenue)

	// Ordered by enrollment count, busiest courses first.
	require.Equal(t, int64(2), rows[0].EnrollmentCount)
	require.Equal(t, courses[1].ID, rows[2].ID)
}

func TestStatsServiceRecent(t *testing.T) {
	db := openTestDB(t)
	seedStatsFixture(t, db)
	svc := newStatsService(db, nil, 0)

	items, err := svc.Recent(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "Five", items[0].FullName)
	require.Equal(t, "Four", items[1].FullName)
	require.NotNil(t, items[0].CourseTitle)
	require.Equal(t, "Category C", *items[0].CourseTitle)

	all, err := svc.Recent(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, all, 5)
}
