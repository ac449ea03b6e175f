package middleware

import (
	"net/http"

	"artisan-market-be/internal/auth"
	"artisan-market-be/internal/transport"
)

// AuthMiddleware decodes the bearer token, if any, into the request context.
// Invalid or expired tokens degrade to an anonymous request, never to an
// error: resolvers decide for themselves whether an identity is required.
func AuthMiddleware(issuer *auth.TokenIssuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rc := &transport.RequestContext{Headers: r.Header}

			if tokenStr := auth.ExtractBearerToken(r); tokenStr != "" {
				if uid, err := issuer.Parse(tokenStr); err == nil {
					rc.UserID = &uid
				}
			}

			ctx := transport.WithRequestContext(r.Context(), rc)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
