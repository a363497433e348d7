package errors

import "net/http"

var (
	ErrTripNotFound = New(
		"TRIP_NOT_FOUND",
		"Trip not found",
		http.StatusNotFound,
	)

	ErrLocationNotFound = New(
		"LOCATION_NOT_FOUND",
		"Location not found",
		http.StatusNotFound,
	)

	ErrPhotoNotFound = New(
		"PHOTO_NOT_FOUND",
		"Photo not found",
		http.StatusNotFound,
	)

	ErrValidationFailed = New(
		"VALIDATION_FAILED",
		"Required fields are missing or invalid",
		http.StatusBadRequest,
	)

	ErrUnsupportedFileType = New(
		"UNSUPPORTED_FILE_TYPE",
		"File type is not a supported image format",
		http.StatusBadRequest,
	)

	ErrNoFilesSelected = New(
		"NO_FILES_SELECTED",
		"At least one photo must be selected",
		http.StatusBadRequest,
	)

	ErrInvalidStep = New(
		"INVALID_STEP",
		"Operation is not allowed in the current wizard step",
		http.StatusConflict,
	)

	ErrTargetUnresolved = New(
		"TARGET_UNRESOLVED",
		"Exactly one upload target must be chosen",
		http.StatusBadRequest,
	)

	ErrUploadFailed = New(
		"UPLOAD_FAILED",
		"Upload commit sequence failed",
		http.StatusBadGateway,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
