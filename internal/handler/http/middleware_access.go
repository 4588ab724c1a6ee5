package http

import (
	"net/http"

	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/utils"
	"github.com/MKhiriev/go-shop-api/models"
)

// requireAPIToken rejects requests that carry no verified API token with 401.
func (h *Handler) requireAPIToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.APITokenPayloadFromContext(r.Context()); !ok {
			logger.FromRequest(r).Debug().Str("uri", r.RequestURI).Msg("unauthenticated request to protected route")
			writeError(w, r, ErrUnauthenticated)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// requireRole rejects requests whose token grants none of roles with 403.
// It must be chained after requireAPIToken.
func (h *Handler) requireRole(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			payload, _ := utils.APITokenPayloadFromContext(r.Context())
			if !payload.HasRole(roles...) {
				logger.FromRequest(r).Debug().Any("roles", roles).Msg("role not granted")
				writeError(w, r, ErrForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
