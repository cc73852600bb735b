package http

import (
	"net/http"
	"runtime/debug"

	"github.com/jobseekr/go-job-board/internal/config"
	"github.com/jobseekr/go-job-board/internal/logger"
	"github.com/jobseekr/go-job-board/internal/utils"
	"github.com/jobseekr/go-job-board/models"
)

// respond writes a success envelope with the given status code.
func respond(w http.ResponseWriter, response models.Response, statusCode int) {
	_, _ = utils.WriteJSON(w, response, statusCode)
}

// writeError is the single failure boundary of the HTTP layer. It maps err
// onto a status code and a safe message, and in development mode attaches
// the raw error chain and a stack trace to the envelope.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	response := models.Response{
		Success: false,
		Message: safeMessageFromError(err),
	}

	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Debug().Err(err).Msg("request rejected")
	}

	if h.cfg.Mode == config.ModeDevelopment {
		response.Error = err.Error()
		response.Stack = string(debug.Stack())
	}

	_, _ = utils.WriteJSON(w, response, status)
}

// setTokenCookie issues the session cookie carrying the signed token.
// The cookie is httpOnly so scripts cannot read it.
func (h *Handler) setTokenCookie(w http.ResponseWriter, token models.Token) {
	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookieName,
		Value:    token.SignedString,
		Path:     "/",
		MaxAge:   int(h.cfg.CookieDuration.Seconds()),
		HttpOnly: true,
	})
}

// clearTokenCookie expires the session cookie.
func (h *Handler) clearTokenCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}
