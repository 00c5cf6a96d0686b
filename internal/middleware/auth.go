package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/vaultpass/passgen/internal/crypto"
)

type contextKey string

const (
	subjectKey   contextKey = "subject"
	requestIDKey contextKey = "requestID"
)

// JWTAuth guards the admin routes. A request passes only with a bearer
// token signed with secret whose issuer is passgen, whose audience is
// passgen-admin, and whose scope is crypto.StatsScope; anything else is a
// 401. The token subject is put in the request context so handlers can attribute
// admin reads in their logs.
func JWTAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, msg := bearerToken(r)
			if msg != "" {
				writeJSONError(w, http.StatusUnauthorized, msg)
				return
			}

			claims, err := crypto.ValidateToken(token, secret)
			if err != nil {
				slog.Debug("admin token rejected", "path", r.URL.Path, "error", err)
				writeJSONError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), subjectKey, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the token from the Authorization header. On failure
// the returned message is the client-facing reason.
func bearerToken(r *http.Request) (token, msg string) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", "missing authorization header"
	}
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return "", "invalid authorization format"
	}
	return token, ""
}

// SubjectFromContext extracts the authenticated token subject from the request context.
func SubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(subjectKey).(string)
	return subject, ok
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
