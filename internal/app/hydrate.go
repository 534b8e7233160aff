package app

import "time"

// HydrateRequest asks for the hydrated view of one work package.
type HydrateRequest struct {
	WorkPackageID string
	// ViewMode is "internal" or "client"; empty means internal.
	ViewMode string
	// Now overrides the clock used for timeline classification.
	Now *time.Time
}

type HydrateErrorCode string

const (
	HydrateErrNotFound        HydrateErrorCode = "WORK_PACKAGE_NOT_FOUND"
	HydrateErrInvalidViewMode HydrateErrorCode = "INVALID_VIEW_MODE"
)

type HydrateError struct {
	Code    HydrateErrorCode
	Message string
}

func (e *HydrateError) Error() string {
	return string(e.Code) + ": " + e.Message
}
