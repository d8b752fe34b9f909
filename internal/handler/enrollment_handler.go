package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/autoprofi/driving-school-api/internal/dto"
	"github.com/autoprofi/driving-school-api/internal/service"
	"github.com/autoprofi/driving-school-api/internal/utils"
)

// EnrollmentHandler exposes the enrollment application endpoints.
type EnrollmentHandler struct {
	service service.EnrollmentService
	logger  zerolog.Logger
}

// NewEnrollmentHandler constructs the handler.
func NewEnrollmentHandler(service service.EnrollmentService, logger zerolog.Logger) *EnrollmentHandler {
	return &EnrollmentHandler{
		service: service,
		logger:  logger.With().Str("component", "enrollment_handler").Logger(),
	}
}

// Register wires enrollment routes.
func (h *EnrollmentHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("", h.create)
	router.Put("", h.updateStatus)
}

// list serves both the collection and, when ?id= is present, a single row.
func (h *EnrollmentHandler) list(c *fiber.Ctx) error {
	if idValue := c.Query("id"); idValue != "" {
		id, err := parseQueryUint(c, "id")
		if err != nil {
			return utils.SendError(c, fiber.StatusBadRequest, "invalid id")
		}
		return h.get(c, id)
	}

	limit, err := parseQueryInt(c, "limit")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid limit")
	}
	offset, err := parseQueryInt(c, "offset")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid offset")
	}

	items, err := h.service.List(c.Context(), dto.EnrollmentListRequest{
		Status: c.Query("status"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list enrollments")
		return utils.SendError(c, fiber.StatusInternalServerError, err.Error())
	}

	return utils.SendJSON(c, items)
}

func (h *EnrollmentHandler) get(c *fiber.Ctx, id uint) error {
	enrollment, err := h.service.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrEnrollmentNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "enrollment not found")
		}
		h.logger.Error().Err(err).Uint("enrollment_id", id).Msg("failed to fetch enrollment")
		return utils.SendError(c, fiber.StatusInternalServerError, err.Error())
	}

	return utils.SendJSON(c, enrollment)
}

func (h *EnrollmentHandler) create(c *fiber.Ctx) error {
	var payload dto.EnrollmentCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	enrollment, err := h.service.Create(c.Context(), payload)
	if err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			return utils.SendError(c, fiber.StatusBadRequest, validationErr.Message)
		}
		h.logger.Error().Err(err).Msg("failed to create enrollment")
		return utils.SendError(c, fiber.StatusInternalServerError, err.Error())
	}

	return utils.SendJSONWithStatus(c, fiber.StatusCreated, enrollment)
}

func (h *EnrollmentHandler) updateStatus(c *fiber.Ctx) error {
	var payload dto.EnrollmentStatusUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	enrollment, err := h.service.UpdateStatus(c.Context(), payload)
	if err != nil {
		var validationErr *service.ValidationError
		switch {
		case errors.As(err, &validationErr):
			return utils.SendError(c, fiber.StatusBadRequest, validationErr.Message)
		case errors.Is(err, service.ErrEnrollmentNotFound):
			return utils.SendError(c, fiber.StatusNotFound, "enrollment not found")
		default:
			h.logger.Error().Err(err).Uint("enrollment_id", payload.ID).Msg("failed to update enrollment status")
			return utils.SendError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	return utils.SendJSON(c, enrollment)
}
