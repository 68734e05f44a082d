package middleware

import (
	"net/http"

	"github.com/davidmorales/storefront-backend/api/responses"
	pkgerrors "github.com/davidmorales/storefront-backend/pkg/errors"
	"github.com/davidmorales/storefront-backend/pkg/logger"
)

// RequireRole rejects requests whose context does not carry the given role.
func RequireRole(role string, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := RoleFromContext(r.Context())
			if !ok || actor != role {
				err := pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required")
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
