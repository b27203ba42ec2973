package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/sm2sync/pkg/api"
)

// MaxBodyBytes ограничивает размер тела запроса
const MaxBodyBytes = 4 << 20

func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// WriteError пишет ошибку в формате api.ErrorResponse
func WriteError(w http.ResponseWriter, logger *slog.Logger, status int, message string) {
	writeJSON(w, logger, status, api.ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
	})
}

// decodeBody разбирает JSON тело запроса, отвечая 400/413 при ошибке
func decodeBody(w http.ResponseWriter, r *http.Request, logger *slog.Logger, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			WriteError(w, logger, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		logger.Warn("Failed to decode request", "error", err, "path", r.URL.Path)
		WriteError(w, logger, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// authorizeUser проверяет, что {userID} из пути совпадает с пользователем токена
func authorizeUser(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (string, bool) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		logger.Error("User ID not found in context")
		WriteError(w, logger, http.StatusUnauthorized, "unauthorized")
		return "", false
	}

	if pathUser := r.PathValue("userID"); pathUser != "" && pathUser != userID {
		logger.Warn("User mismatch", "token_user", userID, "path_user", pathUser)
		WriteError(w, logger, http.StatusForbidden, "access to another user's data is forbidden")
		return "", false
	}

	return userID, true
}
