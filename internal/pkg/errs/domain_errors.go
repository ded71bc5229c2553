package errs

import "errors"

// Domain-specific sentinel errors shared by the usecase layers
var (
	// Catalog errors
	ErrScreenNotFound = errors.New("screen not found")
	ErrMovieNotFound  = errors.New("movie not found")
	ErrShowNotFound   = errors.New("show not found")

	// Scheduling errors
	ErrShowConflict          = errors.New("show conflicts with existing shows")
	ErrDurationUnresolved    = errors.New("movie duration unresolved")
	ErrBufferOutOfRange      = errors.New("interval or cleanup minutes out of range")
	ErrExperienceUnsupported = errors.New("experience not supported")
	ErrLanguageUnsupported   = errors.New("language not supported")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)
