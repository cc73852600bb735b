package http

import (
	"fmt"
	"net/http"

	"github.com/jobseekr/go-job-board/internal/logger"
	"github.com/jobseekr/go-job-board/internal/utils"
	"github.com/jobseekr/go-job-board/models"
)

// requireRole is a pure predicate over the account attached by auth: the
// request proceeds only when the account's role is in the allow-list.
// Must be mounted after auth; without an account in the context every
// request is rejected.
func (h *Handler) requireRole(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			user, ok := utils.GetUserFromContext(r.Context())
			if !ok {
				log.Error().Msg("role check reached without an authenticated account")
				h.writeError(w, r, ErrMissingToken)
				return
			}

			for _, role := range roles {
				if user.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			log.Debug().Str("role", string(user.Role)).Msg("role is not in the allow-list")
			h.writeError(w, r, fmt.Errorf("%w: role %q", ErrForbidden, user.Role))
		})
	}
}
