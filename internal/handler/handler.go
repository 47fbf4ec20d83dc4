package handler

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/skillwave/skillwave-api/internal/httputil"
	"github.com/skillwave/skillwave-api/internal/middleware"
)

const maxMultipartMemory = 10 << 20 // 10 MiB

// decodeJSON decodes the request body into v, answering a 400 itself on
// malformed input.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return false
	}

	return true
}

// serverError logs the underlying cause and answers the generic 500 body.
// No internal detail reaches the client.
func serverError(w http.ResponseWriter, logger *zerolog.Logger, err error) {
	logger.Error().Err(err).Msg("request failed")
	httputil.Error(w, http.StatusInternalServerError, "something went wrong")
}

// sessionClaims pulls the guard-attached claims, answering a 401 itself when
// they are missing (a misrouted unprotected handler).
func sessionClaims(w http.ResponseWriter, r *http.Request) (userID, role string, ok bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		httputil.Error(w, http.StatusUnauthorized, "user not authenticated: token missing")
		return "", "", false
	}

	return claims.UserID, claims.Role, true
}
