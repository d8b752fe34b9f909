package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/autoprofi/driving-school-api/internal/dto"
	"github.com/autoprofi/driving-school-api/internal/service"
	"github.com/autoprofi/driving-school-api/internal/utils"
)

// CourseHandler exposes course catalog endpoints.
type CourseHandler struct {
	service service.CourseService
	logger  zerolog.Logger
}

// NewCourseHandler constructs the handler.
func NewCourseHandler(service service.CourseService, logger zerolog.Logger) *CourseHandler {
	return &CourseHandler{
		service: service,
		logger:  logger.With().Str("component", "course_handler").Logger(),
	}
}

// Register wires course routes.
func (h *CourseHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("", h.create)
	router.Put("", h.update)
	router.Delete("", h.delete)
}

func (h *CourseHandler) list(c *fiber.Ctx) error {
	courses, err := h.service.List(c.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list courses")
		return utils.SendError(c, fiber.StatusInternalServerError, err.Error())
	}
	return utils.SendJSON(c, courses)
}

func (h *CourseHandler) create(c *fiber.Ctx) error {
	var payload dto.CourseCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	course, err := h.service.Create(c.Context(), payload)
	if err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			return utils.SendError(c, fiber.StatusBadRequest, validationErr.Message)
		}
		h.logger.Error().Err(err).Msg("failed to create course")
		return utils.SendError(c, fiber.StatusInternalServerError, err.Error())
	}

	return utils.SendJSONWithStatus(c, fiber.StatusCreated, course)
}

func (h *CourseHandler) update(c *fiber.Ctx) error {
	var payload dto.CourseUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	course, err := h.service.Update(c.Context(), payload)
	if err != nil {
		var validationErr *service.ValidationError
		switch {
		case errors.As(err, &validationErr):
			return utils.SendError(c, fiber.StatusBadRequest, validationErr.Message)
		case errors.Is(err, service.ErrCourseNotFound):
			return utils.SendError(c, fiber.StatusNotFound, "course not found")
		default:
			h.logger.Error().Err(err).Uint("course_id", payload.ID).Msg("failed to update course")
			return utils.SendError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	return utils.SendJSON(c, course)
}

func (h *CourseHandler) delete(c *fiber.Ctx) error {
	id, err := parseQueryUint(c, "id")
	if err != nil || id == 0 {
		return utils.SendError(c, fiber.StatusBadRequest, "missing id")
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "course not found")
		}
		h.logger.Error().Err(err).Uint("course_id", id).Msg("failed to delete course")
		return utils.SendError(c, fiber.StatusInternalServerError, err.Error())
	}

	return utils.SendJSON(c, fiber.Map{"message": "deleted"})
}
