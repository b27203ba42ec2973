package cli

import (
	"context"

	"github.com/iudanet/sm2sync/pkg/api"
)

//go:generate moq -out remote_mock.go . Remote

// Remote is the part of the server API used directly by the commands
type Remote interface {
	Health(ctx context.Context) (*api.HealthResponse, error)
	ListProgress(ctx context.Context, accessToken, userID string) (*api.ListProgressResponse, error)
}
