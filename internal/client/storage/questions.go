package storage

import (
	"context"

	"github.com/iudanet/sm2sync/internal/models"
)

// QuestionCacheStorage is the local cache of question content keyed by question id.
type QuestionCacheStorage interface {
	// GetCachedQuestion returns ErrQuestionNotCached on a miss
	GetCachedQuestion(ctx context.Context, id string) (*models.Question, error)

	// SaveCachedQuestion stores q under q.ID, replacing an existing copy
	SaveCachedQuestion(ctx context.Context, q *models.Question) error
}
