package api

import (
	"context"

	"github.com/iudanet/sm2sync/pkg/api"
)

// ClientAPI is the remote store as seen by the client.
type ClientAPI interface {
	BulkInsertAnswers(ctx context.Context, accessToken string, req api.BulkInsertAnswersRequest) (*api.BulkInsertAnswersResponse, error)
	CreateProgress(ctx context.Context, accessToken, userID string, p api.Progress) (*api.CreateProgressResponse, error)
	UpdateProgress(ctx context.Context, accessToken, userID, docID string, p api.Progress) (*api.UpdateProgressResponse, error)
	ListProgress(ctx context.Context, accessToken, userID string) (*api.ListProgressResponse, error)
	GetQuestion(ctx context.Context, accessToken, id string) (*api.Question, error)
	PutQuestion(ctx context.Context, accessToken string, q api.Question) error
	Health(ctx context.Context) (*api.HealthResponse, error)
}
