package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travel-journal-service/internal/pkg/errors"
	"github.com/travel-journal-service/internal/pkg/utils"
	"github.com/travel-journal-service/internal/usecase"
	"github.com/travel-journal-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// TripHandler handles trip CRUD requests.
type TripHandler struct {
	tripUC *usecase.TripUseCase
	logger *zap.Logger
}

func NewTripHandler(tripUC *usecase.TripUseCase, logger *zap.Logger) *TripHandler {
	return &TripHandler{
		tripUC: tripUC,
		logger: logger,
	}
}

// List godoc
// @Summary List trips
// @Description Returns all trips of the journal owner with derived rating and photo count
// @Tags Trips
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/trips [get]
func (h *TripHandler) List(c *fiber.Ctx) error {
	trips, err := h.tripUC.List(c.Context(), "")
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, trips, &utils.Meta{Total: len(trips)})
}

// Create godoc
// @Summary Create a trip
// @Description Creates a trip; title, city and country are required
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body dto.CreateTripRequest true "Trip payload"
// @Success 201 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/trips [post]
func (h *TripHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTripRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	trip, err := h.tripUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, trip)
}

// GetByID godoc
// @Summary Get a trip
// @Description Returns one trip with its locations and their photos
// @Tags Trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/trips/{id} [get]
func (h *TripHandler) GetByID(c *fiber.Ctx) error {
	detail, err := h.tripUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, detail, nil)
}

// Update godoc
// @Summary Update a trip
// @Description Applies the present fields of the payload over the stored trip
// @Tags Trips
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param request body dto.UpdateTripRequest true "Fields to update"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/trips/{id} [put]
func (h *TripHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateTripRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	req.ID = c.Params("id")

	trip, err := h.tripUC.Update(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, trip, nil)
}

// Delete godoc
// @Summary Delete a trip
// @Description Deletes a trip with its locations and photos
// @Tags Trips
// @Param id path string true "Trip ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/trips/{id} [delete]
func (h *TripHandler) Delete(c *fiber.Ctx) error {
	if err := h.tripUC.Delete(c.Context(), c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"deleted": true}, nil)
}
