package handler

import (
	"io"
	"mime/multipart"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/travel-journal-service/internal/pkg/errors"
	"github.com/travel-journal-service/internal/pkg/utils"
	"github.com/travel-journal-service/internal/usecase"
	"github.com/travel-journal-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// WizardFactory builds a fresh upload wizard per request.
type WizardFactory func() *usecase.UploadWizard

// UploadHandler drives the upload flow over a single multipart request:
// the files go through the select step, the form fields resolve the
// locate and details steps, and the commit result comes back in one
// response. Per-file rejections are reported alongside the result, they
// never fail the batch.
type UploadHandler struct {
	newWizard WizardFactory
	journalUC *usecase.JournalUseCase
	statsUC   *usecase.StatsUseCase
	logger    *zap.Logger
}

func NewUploadHandler(newWizard WizardFactory, journalUC *usecase.JournalUseCase, statsUC *usecase.StatsUseCase, logger *zap.Logger) *UploadHandler {
	return &UploadHandler{
		newWizard: newWizard,
		journalUC: journalUC,
		statsUC:   statsUC,
		logger:    logger,
	}
}

// Upload godoc
// @Summary Upload a batch of photos
// @Description Accepts image files plus a target: an existing location (trip_id + location_id), a new location under an existing trip (trip_id + name + address), or a new trip (title + city + country). Unsupported files are rejected individually without failing the batch.
// @Tags Photos
// @Accept mpfd
// @Produce json
// @Param photos formData file true "Image files"
// @Success 201 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/photos [post]
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	files, err := readFiles(form)
	if err != nil {
		return utils.SendError(c, err)
	}

	wizard := h.newWizard()
	ctx := c.Context()

	_, rejected, err := wizard.AddFiles(ctx, files)
	if err != nil {
		return utils.SendError(c, err)
	}
	if err := wizard.ToLocate(); err != nil {
		return utils.SendError(c, err)
	}
	if err := h.resolveTarget(c, wizard); err != nil {
		return utils.SendError(c, err)
	}
	if err := wizard.SetDetails(nil, nil); err != nil {
		return utils.SendError(c, err)
	}

	result, err := wizard.Commit(ctx)
	if err != nil {
		return utils.SendError(c, err)
	}

	h.journalUC.ApplyUploadResult(result)

	// Refresh persisted trip stats inline; the worker does the same for
	// eventual consistency when Redis is configured
	if result.Trip != nil {
		if _, err := h.statsUC.RefreshTripStats(ctx, result.Trip.ID); err != nil {
			h.logger.Warn("Failed to refresh trip stats after upload", zap.Error(err))
		}
	}

	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse{
		Data: fiber.Map{
			"result":   result,
			"rejected": rejected,
		},
		Meta: &utils.Meta{Total: len(result.Photos)},
	})
}

// resolveTarget maps the form fields onto one of the three locate
// choices. location_id wins over a new-location payload, which wins
// over a new-trip payload.
func (h *UploadHandler) resolveTarget(c *fiber.Ctx, wizard *usecase.UploadWizard) error {
	ctx := c.Context()
	tripID := c.FormValue("trip_id")
	locationID := c.FormValue("location_id")

	switch {
	case locationID != "":
		return wizard.ChooseExistingLocation(ctx, tripID, locationID)
	case tripID != "":
		req := dto.CreateLocationRequest{
			Name:            c.FormValue("name"),
			Address:         c.FormValue("address"),
			Notes:           c.FormValue("notes"),
			CostLevel:       c.FormValue("cost_level"),
			BestTimeToVisit: c.FormValue("best_time_to_visit"),
		}
		req.X = formFloat(c, "x")
		req.Y = formFloat(c, "y")
		req.Rating = formInt(c, "rating")
		req.TimeNeeded = formInt(c, "time_needed")
		return wizard.ChooseNewLocation(ctx, tripID, req)
	default:
		req := dto.CreateTripRequest{
			Title:     c.FormValue("title"),
			City:      c.FormValue("city"),
			Country:   c.FormValue("country"),
			StartDate: c.FormValue("start_date"),
			EndDate:   c.FormValue("end_date"),
		}
		return wizard.ChooseNewTrip(ctx, req)
	}
}

func readFiles(form *multipart.Form) ([]dto.UploadFile, error) {
	headers := form.File["photos"]
	if len(headers) == 0 {
		return nil, errors.ErrNoFilesSelected
	}

	files := make([]dto.UploadFile, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			return nil, errors.ErrInvalidRequest
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, errors.ErrInvalidRequest
		}

		files = append(files, dto.UploadFile{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Data:        data,
		})
	}
	return files, nil
}

func formFloat(c *fiber.Ctx, key string) float64 {
	v, _ := strconv.ParseFloat(c.FormValue(key), 64)
	return v
}

func formInt(c *fiber.Ctx, key string) int {
	v, _ := strconv.Atoi(c.FormValue(key))
	return v
}
