package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ezkorea/course-marketplace/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors. The
// message is human-readable; the code is a stable machine-readable string.
type errorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to deterministic HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"message": ..., "code": ...}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, code, msg := resolveError(err, log, c)
		_ = c.JSON(status, errorResponse{Message: msg, Code: code})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string, string) {
	// Echo's own errors (bind failures, 404 from router, middleware rejections).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, codeForStatus(he.Code), fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors.
	switch {
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict, "email_taken", err.Error()
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid_credentials", "invalid credentials"
	case errors.Is(err, domain.ErrNotAdmin):
		return http.StatusUnauthorized, "invalid_credentials", "invalid credentials"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user_not_found", err.Error()
	case errors.Is(err, domain.ErrDuplicateApplication):
		return http.StatusBadRequest, "duplicate_pending_application", err.Error()
	case errors.Is(err, domain.ErrSubmissionInProgress):
		return http.StatusBadRequest, "submission_in_progress", err.Error()
	case errors.Is(err, domain.ErrApplicationNotFound):
		return http.StatusNotFound, "application_not_found", err.Error()
	case errors.Is(err, domain.ErrApplicationResolved):
		return http.StatusConflict, "application_resolved", err.Error()
	case errors.Is(err, domain.ErrCourseNotFound):
		return http.StatusNotFound, "course_not_found", err.Error()
	case errors.Is(err, domain.ErrCourseResolved):
		return http.StatusConflict, "course_resolved", err.Error()
	case errors.Is(err, domain.ErrNotInstructor):
		return http.StatusForbidden, "not_instructor", err.Error()
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusUnprocessableEntity, "invalid_transition", err.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal_error", "internal server error"
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return "validation_error"
	case http.StatusUnauthorized:
		return "unauthenticated"
	case http.StatusForbidden:
		return "forbidden"
	case http.StatusNotFound:
		return "not_found"
	default:
		return "error"
	}
}
