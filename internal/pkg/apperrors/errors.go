package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")
	ErrSessionNotFound    = errors.New("session not found")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")

	// Upstream API errors
	ErrUpstreamUnavailable = errors.New("upstream api unavailable")
	ErrUpstreamNotFound    = errors.New("upstream resource not found")
	ErrUpstreamRejected    = errors.New("upstream api rejected request")
)

// Scoped store errors
var (
	// ErrParentScopeMissing is returned when a parent-scoped operation is
	// attempted without a parent id. It is a guard, not a failure: callers
	// treat it as a no-op.
	ErrParentScopeMissing = errors.New("parent scope missing")

	ErrStaleResponse = errors.New("stale response discarded")
)

// Attendance workflow errors
var (
	ErrClassNotFound       = errors.New("class not found")
	ErrRosterEmpty         = errors.New("class roster is empty")
	ErrNoStudentsMarked    = errors.New("mark at least one student")
	ErrAttendanceNotLoaded = errors.New("attendance not loaded for class")
	ErrSubmitInProgress    = errors.New("attendance submit already in progress")
)

// Assignment errors
var (
	ErrProgramNotSelected  = errors.New("program not selected")
	ErrCourseAlreadyLinked = errors.New("course already linked to program")
	ErrCourseNotLinked     = errors.New("course not linked to program")
)
