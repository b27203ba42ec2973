package storage

import (
	"context"

	"github.com/iudanet/sm2sync/internal/models"
)

// AnswerStorage defines interface for analytics persistence
type AnswerStorage interface {
	// InsertAnswers stores records, ignoring ids that are already known.
	// Returns the number of newly stored records.
	InsertAnswers(ctx context.Context, records []*models.AnswerRecord) (int, error)
}

// ProgressStorage defines interface for per-user progress documents
type ProgressStorage interface {
	// CreateProgress creates the document of (userID, entry.QuestionID).
	// If it already exists the existing doc id is returned with created=false,
	// and the stored entry is replaced only when entry is newer.
	CreateProgress(ctx context.Context, userID string, entry *models.ProgressEntry) (docID string, created bool, err error)

	// UpdateProgress replaces the document if entry is newer than the stored one.
	// Returns ErrProgressNotFound if the document doesn't exist or belongs to another user.
	UpdateProgress(ctx context.Context, userID, docID string, entry *models.ProgressEntry) (applied bool, err error)

	// ListProgress returns all documents of the user ordered by question id
	ListProgress(ctx context.Context, userID string) ([]*models.ProgressEntry, error)
}

// QuestionStorage defines interface for question content
type QuestionStorage interface {
	// GetQuestion returns ErrQuestionNotFound if question doesn't exist
	GetQuestion(ctx context.Context, id string) (*models.Question, error)

	// SaveQuestions inserts or replaces questions in one transaction
	SaveQuestions(ctx context.Context, questions []*models.Question) error
}
