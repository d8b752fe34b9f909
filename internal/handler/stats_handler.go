package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/autoprofi/driving-school-api/internal/service"
	"github.com/autoprofi/driving-school-api/internal/utils"
)

// StatsHandler exposes the read-only statistics endpoint.
type StatsHandler struct {
	service service.StatsService
	logger  zerolog.Logger
}

// NewStatsHandler constructs the handler.
func NewStatsHandler(service service.StatsService, logger zerolog.Logger) *StatsHandler {
	return &StatsHandler{
		service: service,
		logger:  logger.With().Str("component", "stats_handler").Logger(),
	}
}

// Register wires the statistics route.
func (h *StatsHandler) Register(router fiber.Router) {
	router.Get("", h.get)
}

func (h *StatsHandler) get(c *fiber.Ctx) error {
	statType := c.Query("type", "overview")

	switch statType {
	case "overview":
		overview, err := h.service.Overview(c.Context())
		if err != nil {
			h.logger.Error().Err(err).Msg("failed to build overview stats")
			return utils.SendError(c, fiber.StatusInternalServerError, err.Error())
		}
		return utils.SendJSON(c, overview)

	case "courses":
		rows, err := h.service.PerCourse(c.Context())
		if err != nil {
			h.logger.Error().Err(err).Msg("failed to build per-course stats")
			return utils.SendError(c, fiber.StatusInternalServerError, err.Error())
		}
		return utils.SendJSON(c, rows)

	case "recent":
		limit, err := parseQueryInt(c, "limit")
		if err != nil {
			return utils.SendError(c, fiber.StatusBadRequest, "invalid limit")
		}
		items, err := h.service.Recent(c.Context(), limit)
		if err != nil {
			h.logger.Error().Err(err).Msg("failed to list recent enrollments")
			return utils.SendError(c, fiber.StatusInternalServerError, err.Error())
		}
		return utils.SendJSON(c, items)

	default:
		return utils.SendError(c, fiber.StatusBadRequest, "unknown stats type, available: overview, courses, recent")
	}
}
