package middleware

import (
	"net/http"

	"github.com/atlashr/attendance-backend-go/internal/domain/accesspolicy"
	"github.com/atlashr/attendance-backend-go/internal/domain/auth"
	"github.com/atlashr/attendance-backend-go/internal/handler/http/response"
)

// ElevatedRequired restricts a route to Moderator and Administrator tiers.
func ElevatedRequired(resolver accesspolicy.Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			identity, err := auth.IdentityFromContext(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			tier, ok, err := resolver.Resolve(r.Context(), identity.RoleID)
			if err != nil {
				response.HandleError(w, err)
				return
			}
			if !ok || !tier.Elevated() {
				response.Forbidden(w, "access control not found or unauthorized")
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
