package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travel-journal-service/internal/pkg/errors"
	"github.com/travel-journal-service/internal/pkg/utils"
	"github.com/travel-journal-service/internal/usecase"
	"github.com/travel-journal-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// LocationHandler handles location CRUD requests.
type LocationHandler struct {
	locationUC *usecase.LocationUseCase
	logger     *zap.Logger
}

func NewLocationHandler(locationUC *usecase.LocationUseCase, logger *zap.Logger) *LocationHandler {
	return &LocationHandler{
		locationUC: locationUC,
		logger:     logger,
	}
}

// Create godoc
// @Summary Create a location
// @Description Creates a location under an existing trip; trip_id, name and address are required
// @Tags Locations
// @Accept json
// @Produce json
// @Param request body dto.CreateLocationRequest true "Location payload"
// @Success 201 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/locations [post]
func (h *LocationHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateLocationRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	location, err := h.locationUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, location)
}

// GetByID godoc
// @Summary Get a location
// @Description Returns one location with its photos
// @Tags Locations
// @Produce json
// @Param id path string true "Location ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/locations/{id} [get]
func (h *LocationHandler) GetByID(c *fiber.Ctx) error {
	detail, err := h.locationUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, detail, nil)
}

// ListByTrip godoc
// @Summary List a trip's locations
// @Tags Locations
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/trips/{id}/locations [get]
func (h *LocationHandler) ListByTrip(c *fiber.Ctx) error {
	locations, err := h.locationUC.ListByTrip(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, locations, &utils.Meta{Total: len(locations)})
}

// Update godoc
// @Summary Update a location
// @Description Applies the present fields of the payload over the stored location and refreshes the trip's derived fields
// @Tags Locations
// @Accept json
// @Produce json
// @Param id path string true "Location ID"
// @Param request body dto.UpdateLocationRequest true "Fields to update"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/locations/{id} [put]
func (h *LocationHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateLocationRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	req.ID = c.Params("id")

	location, err := h.locationUC.Update(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, location, nil)
}

// Delete godoc
// @Summary Delete a location
// @Description Deletes a location and its photos, then refreshes the trip's derived fields
// @Tags Locations
// @Param id path string true "Location ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/locations/{id} [delete]
func (h *LocationHandler) Delete(c *fiber.Ctx) error {
	if err := h.locationUC.Delete(c.Context(), c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"deleted": true}, nil)
}
