package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travel-journal-service/internal/pkg/errors"
	"github.com/travel-journal-service/internal/pkg/utils"
	"github.com/travel-journal-service/internal/usecase"
	"go.uber.org/zap"
)

// PhotoHandler handles photo listing, deletion and the cover flag.
type PhotoHandler struct {
	photoUC *usecase.PhotoUseCase
	logger  *zap.Logger
}

func NewPhotoHandler(photoUC *usecase.PhotoUseCase, logger *zap.Logger) *PhotoHandler {
	return &PhotoHandler{
		photoUC: photoUC,
		logger:  logger,
	}
}

// List godoc
// @Summary List photos
// @Description Returns every photo of the journal owner
// @Tags Photos
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/photos [get]
func (h *PhotoHandler) List(c *fiber.Ctx) error {
	photos, err := h.photoUC.List(c.Context(), "")
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, photos, &utils.Meta{Total: len(photos)})
}

// ListByLocation godoc
// @Summary List a location's photos
// @Tags Photos
// @Produce json
// @Param id path string true "Location ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/locations/{id}/photos [get]
func (h *PhotoHandler) ListByLocation(c *fiber.Ctx) error {
	photos, err := h.photoUC.GetByLocation(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, photos, &utils.Meta{Total: len(photos)})
}

// Delete godoc
// @Summary Delete a photo
// @Tags Photos
// @Param id path string true "Photo ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/photos/{id} [delete]
func (h *PhotoHandler) Delete(c *fiber.Ctx) error {
	if err := h.photoUC.Delete(c.Context(), c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"deleted": true}, nil)
}

// SetCover godoc
// @Summary Mark a photo as its location's cover
// @Description Sets the cover flag on one photo and clears it on the location's others
// @Tags Photos
// @Accept json
// @Produce json
// @Param id path string true "Photo ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/photos/{id}/set-cover [put]
func (h *PhotoHandler) SetCover(c *fiber.Ctx) error {
	var req struct {
		LocationID string `json:"location_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	photo, err := h.photoUC.SetCover(c.Context(), c.Params("id"), req.LocationID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, photo, nil)
}
