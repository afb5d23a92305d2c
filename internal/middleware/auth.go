package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"spin2win/pkg/resp"
	"spin2win/pkg/token"
)

type ctxKey struct{}

// SessionIDParam Имя параметра пути с ID сессии
const SessionIDParam = "id"

// SessionAuth Проверяет Bearer-токен и его соответствие сессии из пути
func SessionAuth(secretKey []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || raw == "" {
				resp.WriteError(w, http.StatusUnauthorized, "missing session token")
				return
			}

			claims, err := token.VerifyToken(raw, secretKey)
			if err != nil {
				resp.WriteError(w, http.StatusUnauthorized, "invalid session token")
				return
			}

			// Токен выдан на конкретную сессию
			if id := chi.URLParam(r, SessionIDParam); id != "" && id != claims.Subject {
				resp.WriteError(w, http.StatusUnauthorized, "token does not match session")
				return
			}

			ctx := context.WithValue(r.Context(), ctxKey{}, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionIDFromContext ID сессии из проверенного токена
func SessionIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	return id, ok
}
