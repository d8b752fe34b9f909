package handler_test

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/autoprofi/driving-school-api/internal/dto"
	"github.com/autoprofi/driving-school-api/internal/handler"
	"github.com/autoprofi/driving-school-api/internal/models"
	"github.com/autoprofi/driving-school-api/internal/service"
)

type mockCourseService struct {
	courses []models.Course
	course  models.Course
	err     error

	deletedID uint
}

func (m *mockCourseService) List(_ context.Context) ([]models.Course, error) {
	return m.courses, m.err
}

func (m *mockCourseService) Create(_ context.Context, _ dto.CourseCreateRequest) (models.Course, error) {
	return m.course, m.err
}

func (m *mockCourseService) Update(_ context.Context, _ dto.CourseUpdateRequest) (models.Course, error) {
	return m.course, m.err
}

func (m *mockCourseService) Delete(_ context.Context, id uint) error {
	m.deletedID = id
	return m.err
}

func newCourseApp(svc service.CourseService) *fiber.App {
	app := fiber.New()
	handler.NewCourseHandler(svc, zerolog.New(io.Discard)).Register(app.Group("/api/courses"))
	return app
}

func TestCourseHandler_List(t *testing.T) {
	svc := &mockCourseService{courses: []models.Course{{ID: 1, Title: "Category B", Price: 25000}}}
	app := newCourseApp(svc)

	resp := performJSON(t, app, http.MethodGet, "/api/courses", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var courses []models.Course
	decodeBody(t, resp, &courses)
	require.Len(t, courses, 1)
	require.Equal(t, "Category B", courses[0].Title)
}

func TestCourseHandler_Create(t *testing.T) {
	svc := &mockCourseService{course: models.Course{ID: 2, Title: "Category A"}}
	app := newCourseApp(svc)

	resp := performJSON(t, app, http.MethodPost, "/api/courses", dto.CourseCreateRequest{Title: "Category A", Category: "A"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created models.Course
	decodeBody(t, resp, &created)
	require.Equal(t, uint(2), created.ID)
}

func TestCourseHandler_CreateValidationError(t *testing.T) {
	svc := &mockCourseService{err: &service.ValidationError{Message: "title and category are required"}}
	app := newCourseApp(svc)

	resp := performJSON(t, app, http.MethodPost, "/api/courses", map[string]string{"title": "Category A"})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCourseHandler_UpdateNotFound(t *testing.T) {
	svc := &mockCourseService{err: service.ErrCourseNotFound}
	app := newCourseApp(svc)

	resp := performJSON(t, app, http.MethodPut, "/api/courses", dto.CourseUpdateRequest{ID: 99, Title: "X", Category: "A"})
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCourseHandler_Delete(t *testing.T) {
	svc := &mockCourseService{}
	app := newCourseApp(svc)

	resp := performJSON(t, app, http.MethodDelete, "/api/courses?id=5", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, uint(5), svc.deletedID)

	var body struct {
		Message string `json:"message"`
	}
	decodeBody(t, resp, &body)
	require.Equal(t, "deleted", body.Message)
}

func TestCourseHandler_DeleteMissingID(t *testing.T) {
	app := newCourseApp(&mockCourseService{})

	resp := performJSON(t, app, http.MethodDelete, "/api/courses", nil)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
