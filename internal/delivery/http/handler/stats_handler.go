package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travel-journal-service/internal/pkg/utils"
	"github.com/travel-journal-service/internal/usecase"
	"go.uber.org/zap"
)

// StatsHandler serves the derived trip statistics.
type StatsHandler struct {
	statsUC *usecase.StatsUseCase
	logger  *zap.Logger
}

func NewStatsHandler(statsUC *usecase.StatsUseCase, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		statsUC: statsUC,
		logger:  logger,
	}
}

// GetTripStats godoc
// @Summary Get a trip's derived statistics
// @Description Returns the trip's average location rating (absent when no location is rated) and total photo count
// @Tags Statistics
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/trips/{id}/stats [get]
func (h *StatsHandler) GetTripStats(c *fiber.Ctx) error {
	stats, err := h.statsUC.GetTripStats(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, stats, nil)
}
