// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/scoreboard/pkg/httpx"
	"github.com/ghuser/scoreboard/services/leaderboard/domain"
)

// Writer renders errors as JSON responses. In production, 5xx messages are
// replaced with the status text.
type Writer struct {
	IsProduction bool
	// Report, when set, receives every error rendered as a 5xx.
	Report func(error)
}

// WriteError maps err to an HTTP status code and writes a JSON error response
// without hiding 5xx details. Prefer a configured Writer in servers.
func WriteError(w http.ResponseWriter, err error) {
	Writer{}.WriteError(w, err)
}

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Validation errors carry their per-field messages.
// Defaults to 500 Internal Server Error for unrecognized errors.
func (wr Writer) WriteError(w http.ResponseWriter, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		httpx.JSON(w, http.StatusUnprocessableEntity, httpx.ValidationErrorBody{
			Error:  "Validation failed",
			Fields: verr.Fields,
		})
		return
	}

	status := mapErrorToStatus(err)
	if status >= http.StatusInternalServerError && wr.Report != nil {
		wr.Report(err)
	}
	msg := httpx.SafeError(err, status, wr.IsProduction)
	if status == http.StatusConflict {
		msg = domain.ErrDuplicateScore.Error()
	}
	httpx.JSONError(w, status, msg)
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrPlayerNotFound),
		errors.Is(err, domain.ErrScoreNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, domain.ErrDuplicateScore):
		return http.StatusConflict // 409
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity // 422
	default:
		return http.StatusInternalServerError // 500
	}
}
