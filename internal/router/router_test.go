package router_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/autoprofi/driving-school-api/internal/config"
	"github.com/autoprofi/driving-school-api/internal/dto"
	"github.com/autoprofi/driving-school-api/internal/handler"
	"github.com/autoprofi/driving-school-api/internal/middleware"
	"github.com/autoprofi/driving-school-api/internal/router"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := config.Config{AppName: "AutoProfi API", AppEnv: "test"}
	logger := zerolog.New(io.Discard)

	app := fiber.New()
	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		StatsHandler: handler.NewStatsHandler(&mockStatsService{}, logger),
	})
	return app
}

type mockStatsService struct{}

func (m *mockStatsService) Overview(_ context.Context) (dto.OverviewStats, error) {
	return dto.OverviewStats{}, nil
}

func (m *mockStatsService) PerCourse(_ context.Context) ([]dto.CourseStats, error) {
	return nil, nil
}

func (m *mockStatsService) Recent(_ context.Context, _ int) ([]dto.EnrollmentResponse, error) {
	return nil, nil
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "http://autoprofi.example")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, "AutoProfi API", resp.Header.Get("X-Application"))
	require.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestBareOptionsProbeReturns200(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodOptions, "/api/stats", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestUnknownRouteReturns404(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/nothing", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
