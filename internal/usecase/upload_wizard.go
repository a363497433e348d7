package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/travel-journal-service/internal/config"
	"github.com/travel-journal-service/internal/domain"
	"github.com/travel-journal-service/internal/domain/repository"
	"github.com/travel-journal-service/internal/pkg/errors"
	"github.com/travel-journal-service/internal/pkg/validator"
	"github.com/travel-journal-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// WizardStep identifies a stage of the upload flow.
type WizardStep string

const (
	StepSelect    WizardStep = "select"
	StepLocate    WizardStep = "locate"
	StepDetails   WizardStep = "details"
	StepUploading WizardStep = "uploading"
)

// Preview is one accepted file together with its best-effort extracted
// coordinates. After the locate step finishes, Coordinates holds the
// batch-wide pair chosen there, overwriting whatever extraction found.
type Preview struct {
	File        dto.UploadFile
	Coordinates *domain.Coordinates
	Exif        *domain.ExifData
}

// RejectedFile records a file excluded in the select step and why.
type RejectedFile struct {
	Filename string `json:"filename"`
	Reason   string `json:"reason"`
}

// UploadWizard drives the four-stage upload flow: accumulate photos,
// resolve the target trip and location, collect details, then commit.
// The flow is strictly linear; backward navigation is allowed from
// locate to select and from details to locate.
type UploadWizard struct {
	mu sync.Mutex

	step      WizardStep
	previews  []Preview
	rejected  []RejectedFile
	target    *dto.UploadTarget
	committed bool

	tripRepo     repository.TripRepository
	locationRepo repository.LocationRepository
	photoRepo    repository.PhotoRepository
	extractor    repository.CoordinateExtractor
	streamRepo   repository.StreamRepository
	uploadCfg    config.UploadConfig
	logger       *zap.Logger
}

// NewUploadWizard creates a wizard in the select step. streamRepo may
// be nil when events are not configured.
func NewUploadWizard(
	tripRepo repository.TripRepository,
	locationRepo repository.LocationRepository,
	photoRepo repository.PhotoRepository,
	extractor repository.CoordinateExtractor,
	streamRepo repository.StreamRepository,
	uploadCfg config.UploadConfig,
	logger *zap.Logger,
) *UploadWizard {
	return &UploadWizard{
		step:         StepSelect,
		tripRepo:     tripRepo,
		locationRepo: locationRepo,
		photoRepo:    photoRepo,
		extractor:    extractor,
		streamRepo:   streamRepo,
		uploadCfg:    uploadCfg,
		logger:       logger,
	}
}

func (w *UploadWizard) Step() WizardStep {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

func (w *UploadWizard) Previews() []Preview {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]Preview, len(w.previews))
	copy(out, w.previews)
	return out
}

func (w *UploadWizard) Rejected() []RejectedFile {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]RejectedFile, len(w.rejected))
	copy(out, w.rejected)
	return out
}

// AddFiles accepts files into the select step. Acceptance is per file:
// files failing the image-type allow-list are rejected with a reason
// while the rest of the batch is still added. Coordinate extraction is
// best effort; a file without GPS metadata simply has no coordinates
// yet. Returns the number accepted and the rejections from this batch.
func (w *UploadWizard) AddFiles(ctx context.Context, files []dto.UploadFile) (int, []RejectedFile, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step != StepSelect {
		return 0, nil, errors.ErrInvalidStep
	}

	accepted := 0
	rejected := make([]RejectedFile, 0)
	for _, f := range files {
		if len(w.previews) >= w.uploadCfg.MaxFiles {
			rejected = append(rejected, RejectedFile{Filename: f.Filename, Reason: "batch is full"})
			continue
		}
		if w.uploadCfg.MaxFileSize > 0 && int64(len(f.Data)) > w.uploadCfg.MaxFileSize {
			rejected = append(rejected, RejectedFile{Filename: f.Filename, Reason: "file too large"})
			continue
		}
		if !w.allowedType(f.ContentType) {
			rejected = append(rejected, RejectedFile{
				Filename: f.Filename,
				Reason:   fmt.Sprintf("unsupported type %q", f.ContentType),
			})
			continue
		}

		p := Preview{File: f}
		exifData, err := w.extractor.Extract(ctx, f.Data)
		if err != nil {
			// extraction failure is non-fatal, the photo just has no coordinates
			w.logger.Warn("Coordinate extraction failed", zap.String("filename", f.Filename), zap.Error(err))
		} else {
			p.Exif = exifData
			p.Coordinates = exifData.Coordinates()
		}

		w.previews = append(w.previews, p)
		accepted++
	}

	w.rejected = append(w.rejected, rejected...)
	return accepted, rejected, nil
}

func (w *UploadWizard) allowedType(contentType string) bool {
	ct := strings.ToLower(contentType)
	if !strings.HasPrefix(ct, "image/") {
		return false
	}
	for _, allowed := range w.uploadCfg.AllowedTypes {
		if ct == allowed {
			return true
		}
	}
	return false
}

// ToLocate advances from select to locate. At least one accepted file
// is required; rejected files never block progression.
func (w *UploadWizard) ToLocate() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step != StepSelect {
		return errors.ErrInvalidStep
	}
	if len(w.previews) == 0 {
		return errors.ErrNoFilesSelected
	}
	w.step = StepLocate
	return nil
}

// Back steps the wizard one stage backward: locate to select, details
// to locate. Any other transition is refused.
func (w *UploadWizard) Back() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch w.step {
	case StepLocate:
		w.step = StepSelect
	case StepDetails:
		w.step = StepLocate
	default:
		return errors.ErrInvalidStep
	}
	return nil
}

// ChooseExistingLocation finalizes locate with an existing trip and an
// existing location. The batch coordinates become the location's own.
func (w *UploadWizard) ChooseExistingLocation(ctx context.Context, tripID, locationID string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step != StepLocate {
		return errors.ErrInvalidStep
	}
	if tripID == "" || locationID == "" {
		return errors.ErrTargetUnresolved
	}

	if _, err := w.tripRepo.GetByID(ctx, tripID); err != nil {
		return err
	}
	location, err := w.locationRepo.GetByID(ctx, locationID)
	if err != nil {
		return err
	}

	w.finishLocate(&dto.UploadTarget{
		TripID:      tripID,
		LocationID:  locationID,
		Coordinates: domain.Coordinates{X: location.X, Y: location.Y},
	})
	return nil
}

// ChooseNewLocation finalizes locate with an existing trip and a
// brand-new location. Name and address are required here; the rest of
// the payload is collected in the details step. Coordinates come from
// the first coordinate-bearing preview, falling back to the pair given
// in the form.
func (w *UploadWizard) ChooseNewLocation(ctx context.Context, tripID string, req dto.CreateLocationRequest) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step != StepLocate {
		return errors.ErrInvalidStep
	}
	if tripID == "" {
		return errors.ErrTargetUnresolved
	}
	if req.Name == "" || req.Address == "" {
		return errors.ErrValidationFailed.WithDetails(map[string]interface{}{
			"missing": missingOf(map[string]string{"name": req.Name, "address": req.Address}),
		})
	}

	if _, err := w.tripRepo.GetByID(ctx, tripID); err != nil {
		return err
	}

	coords := w.firstCoordinates()
	if coords == nil {
		coords = &domain.Coordinates{X: req.X, Y: req.Y}
	}

	req.TripID = tripID
	req.X = coords.X
	req.Y = coords.Y
	if req.Rating == 0 {
		// a location picked while uploading starts at five stars
		req.Rating = 5
	}
	if req.CostLevel == "" {
		req.CostLevel = string(domain.CostFree)
	}

	w.finishLocate(&dto.UploadTarget{
		TripID:      tripID,
		NewLocation: &req,
		Coordinates: *coords,
	})
	return nil
}

// ChooseNewTrip finalizes locate with a brand-new trip. Title, city and
// country are required. Coordinates come from the first
// coordinate-bearing preview, falling back to the configured default.
func (w *UploadWizard) ChooseNewTrip(ctx context.Context, req dto.CreateTripRequest) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step != StepLocate {
		return errors.ErrInvalidStep
	}
	if req.Title == "" || req.City == "" || req.Country == "" {
		return errors.ErrValidationFailed.WithDetails(map[string]interface{}{
			"missing": missingOf(map[string]string{"title": req.Title, "city": req.City, "country": req.Country}),
		})
	}

	coords := w.firstCoordinates()
	if coords == nil {
		coords = &domain.Coordinates{X: w.uploadCfg.FallbackX, Y: w.uploadCfg.FallbackY}
	}

	w.finishLocate(&dto.UploadTarget{
		NewTrip:     &req,
		Coordinates: *coords,
	})
	return nil
}

// finishLocate records the resolved target, stamps the chosen
// coordinates onto every preview in the batch (overwriting any
// individually extracted pair: one upload batch is tagged with one
// location), and advances to details.
func (w *UploadWizard) finishLocate(target *dto.UploadTarget) {
	for i := range w.previews {
		c := target.Coordinates
		w.previews[i].Coordinates = &c
	}
	w.target = target
	w.step = StepDetails
}

func (w *UploadWizard) firstCoordinates() *domain.Coordinates {
	for _, p := range w.previews {
		if p.Coordinates != nil {
			return p.Coordinates
		}
	}
	return nil
}

// SetDetails collects the full creation payloads and advances to
// uploading. Validation refuses the transition with the list of missing
// fields; nothing is partially applied.
func (w *UploadWizard) SetDetails(tripDetails *dto.CreateTripRequest, locationDetails *dto.CreateLocationRequest) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step != StepDetails {
		return errors.ErrInvalidStep
	}

	if w.target.NewTrip != nil {
		if tripDetails == nil {
			tripDetails = w.target.NewTrip
		}
		if err := validator.Validate(*tripDetails); err != nil {
			return errors.ErrValidationFailed.WithDetails(map[string]interface{}{
				"missing": validator.MissingFields(err),
			})
		}
		w.target.NewTrip = tripDetails
	}

	if w.target.NewLocation != nil {
		if locationDetails == nil {
			locationDetails = w.target.NewLocation
		}
		locationDetails.TripID = w.target.NewLocation.TripID
		if locationDetails.X == 0 && locationDetails.Y == 0 {
			locationDetails.X = w.target.Coordinates.X
			locationDetails.Y = w.target.Coordinates.Y
		}
		if err := validator.Validate(*locationDetails); err != nil {
			return errors.ErrValidationFailed.WithDetails(map[string]interface{}{
				"missing": validator.MissingFields(err),
			})
		}
		w.target.NewLocation = locationDetails
	}

	w.step = StepUploading
	return nil
}

// Cancel abandons the wizard. It is refused once the commit sequence
// has started: the sequence runs to completion or failure, and pending
// backend calls are not aborted.
func (w *UploadWizard) Cancel() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.committed {
		return errors.ErrInvalidStep
	}

	w.step = StepSelect
	w.previews = nil
	w.rejected = nil
	w.target = nil
	return nil
}

// Commit runs the upload sequence, each step gated on the previous one
// because later steps need the ids the earlier ones produce:
//
//  1. create the new trip if one was requested
//  2. create a default location for a brand-new trip
//  3. create the new location if an existing trip was targeted
//  4. upload every pending photo with the resolved location id and the
//     batch coordinates
//  5. fetch back the canonical trip and location with photos
//
// There is no rollback: a failure part-way leaves already-created
// records in place and surfaces a structured error. This is a product
// decision recorded in DESIGN.md, not an accident.
func (w *UploadWizard) Commit(ctx context.Context) (*dto.UploadResult, error) {
	w.mu.Lock()
	if w.step != StepUploading || w.committed {
		w.mu.Unlock()
		return nil, errors.ErrInvalidStep
	}
	w.committed = true
	target := w.target
	previews := make([]Preview, len(w.previews))
	copy(previews, w.previews)
	w.mu.Unlock()

	finalTripID := target.TripID
	finalLocationID := target.LocationID
	tripCreated := false

	// 1. Create new trip if needed
	if target.NewTrip != nil && finalTripID == "" {
		trip := &domain.Trip{
			UserID:    defaultUserID,
			Title:     target.NewTrip.Title,
			City:      target.NewTrip.City,
			Country:   target.NewTrip.Country,
			StartDate: target.NewTrip.StartDate,
			EndDate:   target.NewTrip.EndDate,
		}
		created, err := w.tripRepo.Create(ctx, trip)
		if err != nil {
			return nil, w.commitFailed("create trip", err)
		}
		finalTripID = created.ID
		tripCreated = true

		// 2. A brand-new trip has no locations yet, give it a default one
		if finalLocationID == "" {
			defaultLocation := &domain.Location{
				TripID:    finalTripID,
				Name:      orDefault(target.NewTrip.City, "New Location"),
				Address:   fmt.Sprintf("%s, %s", target.NewTrip.City, target.NewTrip.Country),
				X:         target.Coordinates.X,
				Y:         target.Coordinates.Y,
				CostLevel: domain.CostFree,
				Tags:      []string{},
			}
			created, err := w.locationRepo.Create(ctx, defaultLocation)
			if err != nil {
				return nil, w.commitFailed("create default location", err)
			}
			finalLocationID = created.ID
		}
	}

	// 3. Create new location under an existing trip
	if target.NewLocation != nil && finalLocationID == "" && target.TripID != "" {
		location := target.NewLocation.ToDomain()
		location.TripID = finalTripID
		created, err := w.locationRepo.Create(ctx, location)
		if err != nil {
			return nil, w.commitFailed("create location", err)
		}
		finalLocationID = created.ID
	}

	if finalLocationID == "" {
		return nil, errors.ErrTargetUnresolved
	}

	// 4. Upload the pending photos
	photos := make([]domain.Photo, 0, len(previews))
	for _, p := range previews {
		photo := domain.Photo{
			LocationID:       finalLocationID,
			UserID:           defaultUserID,
			FileURL:          fmt.Sprintf("%s/%s", strings.TrimRight(w.uploadCfg.FileBaseURL, "/"), uuid.NewString()),
			OriginalFilename: p.File.Filename,
		}
		if p.Coordinates != nil {
			photo.X = p.Coordinates.X
			photo.Y = p.Coordinates.Y
		}
		if p.Exif != nil {
			photo.TakenAt = p.Exif.DateTaken
		}
		photos = append(photos, photo)
	}

	uploaded, err := w.photoRepo.Upload(ctx, photos)
	if err != nil {
		return nil, w.commitFailed("upload photos", err)
	}

	// 5. Fetch back the canonical records for reconciliation
	trip, err := w.tripRepo.GetByID(ctx, finalTripID)
	if err != nil {
		return nil, w.commitFailed("fetch trip", err)
	}
	location, err := w.locationRepo.GetByID(ctx, finalLocationID)
	if err != nil {
		return nil, w.commitFailed("fetch location", err)
	}
	locationPhotos, err := w.photoRepo.GetByLocation(ctx, finalLocationID)
	if err != nil {
		return nil, w.commitFailed("fetch location photos", err)
	}
	location.Photos = locationPhotos

	w.publishCommitted(ctx, finalTripID, finalLocationID, uploaded, tripCreated)

	return &dto.UploadResult{
		Trip:      trip,
		Locations: []domain.Location{*location},
		Photos:    uploaded,
	}, nil
}

func (w *UploadWizard) publishCommitted(ctx context.Context, tripID, locationID string, photos []domain.Photo, tripCreated bool) {
	if w.streamRepo == nil {
		return
	}

	photoIDs := make([]string, 0, len(photos))
	for _, p := range photos {
		photoIDs = append(photoIDs, p.ID)
	}

	event := domain.UploadCommittedEvent{
		TripID:      tripID,
		LocationIDs: []string{locationID},
		PhotoIDs:    photoIDs,
		TripCreated: tripCreated,
	}
	if err := w.streamRepo.PublishToStream(ctx, domain.StreamJournalUploads, event); err != nil {
		// Event delivery is best effort, stats refresh also runs inline
		w.logger.Warn("Failed to publish upload event", zap.Error(err))
	}
}

func (w *UploadWizard) commitFailed(step string, err error) error {
	w.logger.Error("Upload commit step failed", zap.String("step", step), zap.Error(err))
	if appErr, ok := err.(*errors.AppError); ok {
		return appErr
	}
	return errors.ErrUploadFailed.WithDetails(map[string]interface{}{"step": step})
}

func missingOf(fields map[string]string) []string {
	missing := make([]string, 0, len(fields))
	for name, value := range fields {
		if value == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
