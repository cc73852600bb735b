package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jobseekr/go-job-board/internal/logger"
	"github.com/jobseekr/go-job-board/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request registerRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.writeError(w, r, ErrInvalidJSON)
		return
	}
	if err := checkRequest(request); err != nil {
		h.writeError(w, r, err)
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, request.Name, request.Email, request.Password, request.Role)
	if err != nil {
		log.Err(err).Msg("error occurred during user registration")
		h.writeError(w, r, err)
		return
	}

	h.sendToken(w, r, registeredUser, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request loginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.writeError(w, r, ErrInvalidJSON)
		return
	}
	if err := checkRequest(request); err != nil {
		h.writeError(w, r, err)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, request.Email, request.Password)
	if err != nil {
		log.Err(err).Msg("error occurred during user login")
		h.writeError(w, r, err)
		return
	}

	log.Debug().Str("id", foundUser.ID.String()).Msg("user successfully logged in")

	h.sendToken(w, r, foundUser, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.clearTokenCookie(w)
	respond(w, models.OK("logged out successfully", nil), http.StatusOK)
}

func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request forgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.writeError(w, r, ErrInvalidJSON)
		return
	}
	if err := checkRequest(request); err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.services.AuthService.ForgotPassword(ctx, request.Email); err != nil {
		log.Err(err).Msg("error occurred during password reset request")
		h.writeError(w, r, err)
		return
	}

	respond(w, models.OK("email sent to "+request.Email, nil), http.StatusOK)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request resetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.writeError(w, r, ErrInvalidJSON)
		return
	}
	if err := checkRequest(request); err != nil {
		h.writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.ResetPassword(ctx, chi.URLParam(r, "resetToken"), request.Password)
	if err != nil {
		log.Err(err).Msg("error occurred during password reset")
		h.writeError(w, r, err)
		return
	}

	h.sendToken(w, r, user, http.StatusOK)
}

// sendToken issues a fresh token for user and delivers it both as the
// httpOnly session cookie and in the JSON body.
func (h *Handler) sendToken(w http.ResponseWriter, r *http.Request, user models.User, statusCode int) {
	log := logger.FromRequest(r)

	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		h.writeError(w, r, err)
		return
	}

	h.setTokenCookie(w, token)
	respond(w, models.Response{
		Success: true,
		Data:    user,
		Token:   token.SignedString,
	}, statusCode)
}
