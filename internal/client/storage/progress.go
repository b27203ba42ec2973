package storage

import (
	"context"

	"github.com/iudanet/sm2sync/internal/models"
)

// ProgressStorage keeps the keyed progress log and the known progress per question.
type ProgressStorage interface {
	// UpsertProgress stores entry as the known state of its question and as the pending
	// upload for it, superseding any earlier pending entry. A known RemoteDocID is kept
	// when entry has none. Returns the stored entry with its new Revision.
	UpsertProgress(ctx context.Context, entry *models.ProgressEntry) (*models.ProgressEntry, error)

	// GetProgress returns the known state of a question
	// Returns ErrProgressNotFound if the question was never answered
	GetProgress(ctx context.Context, questionID string) (*models.ProgressEntry, error)

	// ListProgress returns the known state of every answered question
	ListProgress(ctx context.Context) ([]*models.ProgressEntry, error)

	// PendingProgress returns a snapshot of the pending progress log
	PendingProgress(ctx context.Context) ([]*models.ProgressEntry, error)

	// SetRemoteDocID records the remote identity of a question's progress,
	// both in the known state and in a pending entry if there is one.
	// The pending entry's Revision is not changed.
	SetRemoteDocID(ctx context.Context, questionID, docID string) error

	// RemovePendingProgress removes the pending entries of snapshot whose Revision
	// did not change since the snapshot was taken. Returns how many were removed.
	RemovePendingProgress(ctx context.Context, snapshot []*models.ProgressEntry) (int, error)

	// ClearProgress forgets the known state and the pending upload of every question.
	// Returns how many questions were known.
	ClearProgress(ctx context.Context) (int, error)
}
