package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/skillwave/skillwave-api/internal/auth"
	"github.com/skillwave/skillwave-api/internal/httputil"
	"github.com/skillwave/skillwave-api/internal/model"
)

// SessionCookie is the name of the cookie carrying the session token.
const SessionCookie = "token"

type contextKey struct{}

var sessionClaimsKey = contextKey{}

// ClaimsFromContext returns the session claims attached by RequireSession.
func ClaimsFromContext(ctx context.Context) (*auth.SessionClaims, bool) {
	claims, ok := ctx.Value(sessionClaimsKey).(*auth.SessionClaims)
	return claims, ok
}

// ContextWithClaims attaches session claims to a context. Exposed for tests.
func ContextWithClaims(ctx context.Context, claims *auth.SessionClaims) context.Context {
	return context.WithValue(ctx, sessionClaimsKey, claims)
}

// RequireSession rejects requests without a valid session token cookie and
// attaches the decoded claims to the request context otherwise.
func RequireSession(tokenAuth auth.TokenAuthenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				httputil.Error(w, http.StatusUnauthorized, "user not authenticated: token missing")
				return
			}

			claims, err := tokenAuth.Verify(cookie.Value)
			if err != nil {
				if errors.Is(err, auth.ErrTokenExpired) {
					httputil.Error(w, http.StatusUnauthorized, "session has expired, please log in again")
					return
				}

				httputil.Error(w, http.StatusUnauthorized, "invalid session token")
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithClaims(r.Context(), claims)))
		})
	}
}

// RequireAdmin rejects requests whose session role is not admin. It must run
// after RequireSession.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			httputil.Error(w, http.StatusUnauthorized, "user not authenticated: token missing")
			return
		}

		if claims.Role != model.RoleAdmin {
			httputil.Error(w, http.StatusForbidden, "admin access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
