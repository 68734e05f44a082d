package middleware

import (
	"context"
	"net/http"
	"strings"

	pkgauth "github.com/davidmorales/storefront-backend/pkg/auth"
	"github.com/davidmorales/storefront-backend/pkg/config"
	"github.com/davidmorales/storefront-backend/pkg/logger"
)

// Authenticate parses a bearer token when present and stores the actor
// identity on the context. It never rejects; RequireRole does that.
func Authenticate(jwtCfg config.JWTConfig, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := pkgauth.ParseAccessToken(jwtCfg, token)
			if err != nil {
				// Invalid token treated the same as no token.
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), ctxRole, claims.Role)
			ctx = context.WithValue(ctx, ctxUsername, claims.Subject)
			ctx = logg.WithActorRole(ctx, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
