package http

import (
	"net/http"

	"github.com/MKhiriev/go-delivery-tracker/internal/logger"
	"github.com/MKhiriev/go-delivery-tracker/internal/utils"
	"github.com/MKhiriev/go-delivery-tracker/models"
)

// authorize returns an HTTP middleware that restricts a route to the given
// roles. It must be mounted after [Handler.authenticate]: the check reads the
// identity that authenticate stored in the request context, so without a
// prior authenticate it always rejects.
//
// The middleware rejects requests with HTTP 401 Unauthorized when:
//   - no identity is attached to the context ([ErrNoIdentityInContext]);
//   - the identity's role is not a member of allowedRoles ([ErrRoleNotAllowed]).
//
// The check is a pure predicate; it has no side effects beyond
// short-circuiting the pipeline.
func (h *Handler) authorize(allowedRoles ...models.Role) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			caller, ok := utils.GetAuthUserFromContext(r.Context())
			if !ok {
				log.Err(ErrNoIdentityInContext).Send()
				http.Error(w, ErrNoIdentityInContext.Error(), http.StatusUnauthorized)
				return
			}

			allowed := false
			for _, role := range allowedRoles {
				if caller.Role == role {
					allowed = true
					break
				}
			}

			if !allowed {
				log.Err(ErrRoleNotAllowed).Str("role", caller.Role.String()).Send()
				http.Error(w, ErrRoleNotAllowed.Error(), http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
