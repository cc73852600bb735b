package http

import (
	"errors"
	"net/http"

	"github.com/jobseekr/go-job-board/internal/crypto"
	"github.com/jobseekr/go-job-board/internal/service"
	"github.com/jobseekr/go-job-board/internal/store"
)

// errorStatus pairs a sentinel with the status code it translates to.
type errorStatus struct {
	err    error
	status int
}

// errorStatuses is scanned in order and the first sentinel matching the
// error chain wins. The higher-layer classifications come first so that a
// service or transport sentinel takes precedence over any store sentinel
// the same chain may wrap.
var errorStatuses = []errorStatus{
	{ErrMissingToken, http.StatusUnauthorized},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized},
	{ErrEmptyToken, http.StatusUnauthorized},
	{ErrUnknownIdentity, http.StatusUnauthorized},
	{ErrForbidden, http.StatusForbidden},
	{ErrNotRouted, http.StatusNotFound},
	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrInvalidForm, http.StatusBadRequest},
	{ErrValidationFailed, http.StatusBadRequest},

	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrWrongPassword, http.StatusUnauthorized},
	{service.ErrResetTokenInvalid, http.StatusBadRequest},
	{service.ErrTokenCreationFailed, http.StatusInternalServerError},
	{service.ErrJobClosed, http.StatusBadRequest},
	{service.ErrNotJobOwner, http.StatusForbidden},
	{service.ErrNoStatsFound, http.StatusNotFound},
	{service.ErrNoResumeProvided, http.StatusBadRequest},
	{service.ErrUnsupportedResumeType, http.StatusBadRequest},
	{service.ErrResumeTooLarge, http.StatusBadRequest},
	{service.ErrResumeUploadFailed, http.StatusInternalServerError},

	{crypto.ErrTokenExpired, http.StatusUnauthorized},
	{crypto.ErrTokenInvalid, http.StatusUnauthorized},

	{store.ErrEmailAlreadyExists, http.StatusBadRequest},
	{store.ErrNoUserWasFound, http.StatusNotFound},
	{store.ErrJobNotFound, http.StatusNotFound},
	{store.ErrAlreadyApplied, http.StatusConflict},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, entry := range errorStatuses {
		if errors.Is(err, entry.err) {
			return entry.status
		}
	}
	return http.StatusInternalServerError
}

// safeMessageFromError returns the message that may be surfaced to the
// caller regardless of runtime mode: the matched sentinel's text, or a
// generic message for unclassified failures. Validation failures surface
// their aggregated per-field messages since those are caller-facing by
// construction.
func safeMessageFromError(err error) string {
	var vErr *validationError
	if errors.As(err, &vErr) {
		return vErr.Error()
	}
	for _, entry := range errorStatuses {
		if errors.Is(err, entry.err) {
			return entry.err.Error()
		}
	}
	return http.StatusText(http.StatusInternalServerError)
}
