package storage

import (
	"context"
)

// AuthStorage defines interface for storing the identity of the current user on the device.
// Obtaining the identity (login, token issuance) is outside of this package.
type AuthStorage interface {
	// SaveAuth stores authentication data, replacing the previous one
	SaveAuth(ctx context.Context, auth *AuthData) error

	// GetAuth retrieves stored authentication data
	// Returns ErrAuthNotFound if no auth data exists
	GetAuth(ctx context.Context) (*AuthData, error)

	// DeleteAuth removes stored authentication data (logout)
	DeleteAuth(ctx context.Context) error

	// IsAuthenticated checks if valid authentication exists (not expired)
	IsAuthenticated(ctx context.Context) (bool, error)

	// IDStatus returns the durable identifier of the current user.
	// Returns ErrAuthNotFound if nobody is logged in.
	IDStatus(ctx context.Context) (string, error)
}

// AuthData represents authentication information in storage
type AuthData struct {
	UserID      string `json:"user_id"`
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"` // ExpiresAt unix seconds, 0 means no expiry
}
