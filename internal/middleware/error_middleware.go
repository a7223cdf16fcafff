package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kaan/campora/internal/app/models/dto"
	"github.com/kaan/campora/internal/metrics"
	"github.com/kaan/campora/internal/observability"
	"github.com/kaan/campora/internal/pkg/apperrors"
	pkgauth "github.com/kaan/campora/internal/pkg/auth"
)

// HandleAPIError maps sentinel errors onto HTTP responses. Every branch
// carries the error's message as detail so upstream-provided messages
// reach the client unchanged.
func HandleAPIError(c *gin.Context, err error) {
	respond := func(status int, code dto.ErrorCode, message string) {
		detail := dto.NewErrorDetail(code, message).WithDetails(err.Error())
		c.JSON(status, dto.NewErrorResponse(detail))
	}

	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		respond(http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed")
	case errors.Is(err, apperrors.ErrNoStudentsMarked):
		respond(http.StatusBadRequest, dto.ErrorCodeNoStudentsMarked, "Mark at least one student")
	case errors.Is(err, apperrors.ErrParentScopeMissing),
		errors.Is(err, apperrors.ErrProgramNotSelected),
		errors.Is(err, apperrors.ErrAttendanceNotLoaded):
		respond(http.StatusBadRequest, dto.ErrorCodeParentScopeMissing, "Required selection is missing")
	case errors.Is(err, apperrors.ErrSubmitInProgress):
		respond(http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "A submission is already in progress")
	case errors.Is(err, apperrors.ErrCourseAlreadyLinked),
		errors.Is(err, apperrors.ErrResourceAlreadyExists):
		respond(http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Resource already exists")
	case errors.Is(err, apperrors.ErrClassNotFound),
		errors.Is(err, apperrors.ErrCourseNotLinked),
		errors.Is(err, apperrors.ErrUpstreamNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		respond(http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found")
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials")
	case errors.Is(err, apperrors.ErrSessionNotFound):
		respond(http.StatusUnauthorized, dto.ErrorCodeSessionNotFound, "Session not found, log in again")
	case errors.Is(err, pkgauth.ErrExpiredToken), errors.Is(err, apperrors.ErrTokenExpired):
		respond(http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired")
	case errors.Is(err, pkgauth.ErrInvalidToken),
		errors.Is(err, pkgauth.ErrInvalidFormat),
		errors.Is(err, apperrors.ErrTokenInvalid):
		respond(http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token")
	case errors.Is(err, apperrors.ErrPermissionDenied):
		respond(http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied")
	case errors.Is(err, apperrors.ErrUpstreamRejected):
		respond(http.StatusBadRequest, dto.ErrorCodeUpstreamRejected, "Upstream rejected the request")
	case errors.Is(err, apperrors.ErrUpstreamUnavailable):
		metrics.HandlerErrors.Inc()
		observability.CaptureErr(err)
		respond(http.StatusBadGateway, dto.ErrorCodeUpstreamUnavailable, "Upstream unavailable")
	default:
		metrics.HandlerErrors.Inc()
		observability.CaptureErr(err)
		respond(http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error")
	}
}

// HandleBindingError reports a request body or query binding failure.
func HandleBindingError(c *gin.Context, err error) {
	detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request data").WithDetails(err.Error())
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
}
