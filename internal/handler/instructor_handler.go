package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/autoprofi/driving-school-api/internal/dto"
	"github.com/autoprofi/driving-school-api/internal/service"
	"github.com/autoprofi/driving-school-api/internal/utils"
)

// InstructorHandler exposes instructor profile endpoints.
type InstructorHandler struct {
	service service.InstructorService
	logger  zerolog.Logger
}

// NewInstructorHandler constructs the handler.
func NewInstructorHandler(service service.InstructorService, logger zerolog.Logger) *InstructorHandler {
	return &InstructorHandler{
		service: service,
		logger:  logger.With().Str("component", "instructor_handler").Logger(),
	}
}

// Register wires instructor routes.
func (h *InstructorHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("", h.create)
	router.Put("", h.update)
	router.Delete("", h.delete)
}

func (h *InstructorHandler) list(c *fiber.Ctx) error {
	instructors, err := h.service.List(c.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list instructors")
		return utils.SendError(c, fiber.StatusInternalServerError, err.Error())
	}
	return utils.SendJSON(c, instructors)
}

func (h *InstructorHandler) create(c *fiber.Ctx) error {
	var payload dto.InstructorCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	instructor, err := h.service.Create(c.Context(), payload)
	if err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			return utils.SendError(c, fiber.StatusBadRequest, validationErr.Message)
		}
		h.logger.Error().Err(err).Msg("failed to create instructor")
		return utils.SendError(c, fiber.StatusInternalServerError, err.Error())
	}

	return utils.SendJSONWithStatus(c, fiber.StatusCreated, instructor)
}

func (h *InstructorHandler) update(c *fiber.Ctx) error {
	var payload dto.InstructorUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	instructor, err := h.service.Update(c.Context(), payload)
	if err != nil {
		var validationErr *service.ValidationError
		switch {
		case errors.As(err, &validationErr):
			return utils.SendError(c, fiber.StatusBadRequest, validationErr.Message)
		case errors.Is(err, service.ErrInstructorNotFound):
			return utils.SendError(c, fiber.StatusNotFound, "instructor not found")
		default:
			h.logger.Error().Err(err).Uint("instructor_id", payload.ID).Msg("failed to update instructor")
			return utils.SendError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	return utils.SendJSON(c, instructor)
}

func (h *InstructorHandler) delete(c *fiber.Ctx) error {
	id, err := parseQueryUint(c, "id")
	if err != nil || id == 0 {
		return utils.SendError(c, fiber.StatusBadRequest, "missing id")
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		if errors.Is(err, service.ErrInstructorNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "instructor not found")
		}
		h.logger.Error().Err(err).Uint("instructor_id", id).Msg("failed to delete instructor")
		return utils.SendError(c, fiber.StatusInternalServerError, err.Error())
	}

	return utils.SendJSON(c, fiber.Map{"message": "deleted"})
}
