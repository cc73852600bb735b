package http

import (
	"encoding/json"
	"net/http"

	"github.com/jobseekr/go-job-board/internal/logger"
	"github.com/jobseekr/go-job-board/internal/utils"
	"github.com/jobseekr/go-job-board/models"
)

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		h.writeError(w, r, ErrMissingToken)
		return
	}

	respond(w, models.OK("", user), http.StatusOK)
}

func (h *Handler) updateMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		h.writeError(w, r, ErrMissingToken)
		return
	}

	var request updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.writeError(w, r, ErrInvalidJSON)
		return
	}
	if err := checkRequest(request); err != nil {
		h.writeError(w, r, err)
		return
	}

	updated, err := h.services.UserService.UpdateUser(ctx, user.ID, request.Name, request.Email)
	if err != nil {
		log.Err(err).Msg("error occurred during profile update")
		h.writeError(w, r, err)
		return
	}

	respond(w, models.OK("profile updated", updated), http.StatusOK)
}

func (h *Handler) updatePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		h.writeError(w, r, ErrMissingToken)
		return
	}

	var request updatePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.writeError(w, r, ErrInvalidJSON)
		return
	}
	if err := checkRequest(request); err != nil {
		h.writeError(w, r, err)
		return
	}

	updated, err := h.services.UserService.UpdatePassword(ctx, user.ID, request.CurrentPassword, request.NewPassword)
	if err != nil {
		log.Err(err).Msg("error occurred during password update")
		h.writeError(w, r, err)
		return
	}

	// the credential changed, re-issue the session
	h.sendToken(w, r, updated, http.StatusOK)
}

func (h *Handler) deleteMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		h.writeError(w, r, ErrMissingToken)
		return
	}

	if err := h.services.UserService.DeleteUser(ctx, user.ID); err != nil {
		log.Err(err).Msg("error occurred during account deletion")
		h.writeError(w, r, err)
		return
	}

	h.clearTokenCookie(w)
	respond(w, models.OK("your account has been deleted", nil), http.StatusOK)
}
