package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"tasko/internal/logger"

	"go.uber.org/zap"
)

const AuthUserKey contextKey = "auth_user_id"

// TokenVerifier valida un token de sesión y devuelve el id de usuario.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// Auth exige un token Bearer válido y deja el id de usuario autenticado
// en el contexto de la petición.
func Auth(tokens TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				unauthorized(w, r, "falta el token de autorización")
				return
			}

			userID, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				logger.Warn("HTTP: Token rechazado",
					zap.String("request_id", GetRequestID(r.Context())),
					zap.Error(err))
				unauthorized(w, r, "token inválido")
				return
			}

			ctx := context.WithValue(r.Context(), AuthUserKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetAuthUserID devuelve el id del usuario autenticado, si lo hay.
func GetAuthUserID(ctx context.Context) string {
	if id, ok := ctx.Value(AuthUserKey).(string); ok {
		return id
	}
	return ""
}

func unauthorized(w http.ResponseWriter, r *http.Request, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]any{
		"error":      "unauthorized",
		"message":    message,
		"request_id": GetRequestID(r.Context()),
	})
}
