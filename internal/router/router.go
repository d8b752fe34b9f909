package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/autoprofi/driving-school-api/internal/config"
	"github.com/autoprofi/driving-school-api/internal/handler"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	EnrollmentHandler *handler.EnrollmentHandler
	StatsHandler      *handler.StatsHandler
	CourseHandler     *handler.CourseHandler
	InstructorHandler *handler.InstructorHandler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))

	// Legacy clients send bare OPTIONS probes without preflight headers;
	// answer them with an empty 200 instead of fiber's 405.
	preflight := func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}

	if deps.EnrollmentHandler != nil {
		enrollments := api.Group("/enrollments")
		enrollments.Options("", preflight)
		deps.EnrollmentHandler.Register(enrollments)
	}

	if deps.StatsHandler != nil {
		stats := api.Group("/stats")
		stats.Options("", preflight)
		deps.StatsHandler.Register(stats)
	}

	if deps.CourseHandler != nil {
		courses := api.Group("/courses")
		courses.Options("", preflight)
		deps.CourseHandler.Register(courses)
	}

	if deps.InstructorHandler != nil {
		instructors := api.Group("/instructors")
		instructors.Options("", preflight)
		deps.InstructorHandler.Register(instructors)
	}
}
