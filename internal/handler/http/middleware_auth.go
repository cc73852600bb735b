package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/jobseekr/go-job-board/internal/logger"
	"github.com/jobseekr/go-job-board/internal/store"
	"github.com/jobseekr/go-job-board/internal/utils"
)

// tokenCookieName is the session cookie under which signed tokens are
// issued on login and register.
const tokenCookieName = "token"

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, falling
// back to the session cookie, validates it via
// [service.AuthService.ParseToken], resolves the account named by the
// token's subject, and stores the account in the request context under
// [utils.UserCtxKey] before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized when:
//   - neither the header nor the cookie carries a token ([ErrMissingToken]);
//   - the header value cannot be parsed as a bearer token
//     ([ErrInvalidAuthorizationHeader] or [ErrEmptyToken]);
//   - the token is expired or otherwise invalid;
//   - the account named by the token no longer exists ([ErrUnknownIdentity]).
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := getTokenFromRequest(r)
		if err != nil {
			log.Err(err).Send()
			h.writeError(w, r, err)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			h.writeError(w, r, err)
			return
		}

		// A valid token may outlive its account. Resolve the subject on
		// every request so deleted accounts lose access immediately.
		user, err := h.services.UserService.GetUser(ctx, token.UserID)
		if err != nil {
			if errors.Is(err, store.ErrNoUserWasFound) {
				err = ErrUnknownIdentity
			}
			log.Err(err).Str("subject", token.UserID.String()).Msg("token subject could not be resolved")
			h.writeError(w, r, err)
			return
		}

		// Store the resolved account in the context so downstream handlers
		// can read it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserCtxKey, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromRequest extracts the raw token string from the request,
// preferring the "Authorization" header over the session cookie.
//
// The header is expected to follow the standard format:
//
//	Authorization: <scheme> <token>
//
// It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader] — if the header contains fewer than
//     two space-separated parts (i.e. the token is missing entirely).
//   - [ErrEmptyToken] — if the second part exists but is an empty string.
//   - [ErrMissingToken] — if neither the header nor the cookie is present.
func getTokenFromRequest(r *http.Request) (string, error) {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) < 2 {
			return "", ErrInvalidAuthorizationHeader
		}

		tokenString := parts[1]
		if tokenString == "" {
			return "", ErrEmptyToken
		}

		return tokenString, nil
	}

	if cookie, err := r.Cookie(tokenCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	return "", ErrMissingToken
}
