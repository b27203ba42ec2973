package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/sm2sync/internal/server/handlers"
)

// AuthMiddleware создает middleware для проверки JWT токена
func AuthMiddleware(logger *slog.Logger, jwtConfig handlers.JWTConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			unauthorized := func(msg string) {
				w.Header().Set("WWW-Authenticate", `Bearer realm="sm2sync"`)
				handlers.WriteError(w, logger, http.StatusUnauthorized, msg)
			}

			// Ожидаем формат: "Bearer <token>"
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("Missing Authorization header", "request_id", RequestID(r.Context()))
				unauthorized("missing token")
				return
			}

			scheme, token, found := strings.Cut(authHeader, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
				// Заголовок не логируем: в нём может быть секрет
				logger.Warn("Invalid Authorization header format", "request_id", RequestID(r.Context()))
				unauthorized("invalid token format")
				return
			}

			claims, err := handlers.ValidateAccessToken(jwtConfig, strings.TrimSpace(token))
			if err != nil {
				logger.Warn("Invalid access token", "error", err, "request_id", RequestID(r.Context()))
				unauthorized("invalid token")
				return
			}

			logger.Debug("User authenticated", "user_id", claims.UserID, "admin", claims.Admin)

			next.ServeHTTP(w, r.WithContext(handlers.WithUser(r.Context(), claims.UserID, claims.Admin)))
		})
	}
}
