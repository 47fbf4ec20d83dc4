package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillwave/skillwave-api/internal/auth"
	"github.com/skillwave/skillwave-api/internal/middleware"
	"github.com/skillwave/skillwave-api/internal/model"
)

func claimsEcho(t *testing.T) http.Handler {
	t.Helper()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		require.True(t, ok, "claims must be attached before the handler runs")
		w.Write([]byte(claims.UserID + ":" + claims.Role))
	})
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRequireSession(t *testing.T) {
	tokenAuth := auth.NewTokenAuthenticator("test-secret", "skillwave", time.Hour)
	handler := middleware.RequireSession(tokenAuth)(claimsEcho(t))

	t.Run("missing cookie", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		body := decodeEnvelope(t, rec)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "user not authenticated: token missing", body["message"])
	})

	t.Run("invalid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "garbage"})

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "invalid session token", decodeEnvelope(t, rec)["message"])
	})

	t.Run("expired token", func(t *testing.T) {
		expiredAuth := auth.NewTokenAuthenticator("test-secret", "skillwave", -time.Minute)
		token, err := expiredAuth.Issue("64f1b2c3d4e5f6a7b8c9d0e1", model.RoleJobSeeker)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: token})

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "session has expired, please log in again", decodeEnvelope(t, rec)["message"])
	})

	t.Run("valid token", func(t *testing.T) {
		token, err := tokenAuth.Issue("64f1b2c3d4e5f6a7b8c9d0e1", model.RoleJobSeeker)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: token})

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "64f1b2c3d4e5f6a7b8c9d0e1:job-seeker", rec.Body.String())
	})
}

func TestRequireAdmin(t *testing.T) {
	tokenAuth := auth.NewTokenAuthenticator("test-secret", "skillwave", time.Hour)

	handler := middleware.RequireSession(tokenAuth)(
		middleware.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})),
	)

	t.Run("non-admin role", func(t *testing.T) {
		token, err := tokenAuth.Issue("64f1b2c3d4e5f6a7b8c9d0e1", model.RoleRecruiter)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: token})

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "admin access required", decodeEnvelope(t, rec)["message"])
	})

	t.Run("admin role", func(t *testing.T) {
		token, err := tokenAuth.Issue("64f1b2c3d4e5f6a7b8c9d0e1", model.RoleAdmin)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: token})

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("without session middleware", func(t *testing.T) {
		bare := middleware.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))

		rec := httptest.NewRecorder()
		bare.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
