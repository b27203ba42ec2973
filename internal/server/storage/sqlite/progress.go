package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/sm2sync/internal/models"
	"github.com/iudanet/sm2sync/internal/server/storage"
)

const progressColumns = `doc_id, question_id, next_review_at, answered_at,
	quality, ease_factor, repetition_count`

// CreateProgress creates the document of (userID, entry.QuestionID).
// A repeated create returns the existing doc id; the stored entry is replaced
// only when entry is newer (last write wins by answered_at).
func (s *Storage) CreateProgress(ctx context.Context, userID string, entry *models.ProgressEntry) (string, bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	existing, err := scanProgress(tx.QueryRowContext(ctx,
		`SELECT `+progressColumns+` FROM progress WHERE user_id = ? AND question_id = ?`,
		userID, entry.QuestionID,
	))
	switch {
	case errors.Is(err, storage.ErrProgressNotFound):
		docID := uuid.NewString()
		_, err = tx.ExecContext(ctx, `
			INSERT INTO progress (
				doc_id, user_id, question_id, next_review_at, answered_at,
				quality, ease_factor, repetition_count, updated_at
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`,
			docID,
			userID,
			entry.QuestionID,
			entry.NextReviewAt.Unix(),
			entry.AnsweredAt.UnixNano(),
			entry.Quality,
			entry.EaseFactor,
			entry.RepetitionCount,
			s.clock.Now().Unix(),
		)
		if err != nil {
			return "", false, fmt.Errorf("failed to insert progress: %w", err)
		}
		if err := tx.Commit(); err != nil {
			return "", false, fmt.Errorf("failed to commit progress: %w", err)
		}
		return docID, true, nil

	case err != nil:
		return "", false, err
	}

	// Документ уже есть: повторный create после потерянного ответа
	if entry.IsNewerThan(existing) {
		if err := s.updateProgress(ctx, tx, existing.RemoteDocID, entry); err != nil {
			return "", false, err
		}
	}
	if err := tx.Commit(); err != nil {
		return "", false, fmt.Errorf("failed to commit progress: %w", err)
	}
	return existing.RemoteDocID, false, nil
}

// UpdateProgress replaces the document if entry is newer than the stored one
func (s *Storage) UpdateProgress(ctx context.Context, userID, docID string, entry *models.ProgressEntry) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Чужой документ неотличим от несуществующего
	existing, err := scanProgress(tx.QueryRowContext(ctx,
		`SELECT `+progressColumns+` FROM progress WHERE doc_id = ? AND user_id = ?`,
		docID, userID,
	))
	if err != nil {
		return false, err
	}

	if existing.QuestionID != entry.QuestionID {
		return false, storage.ErrProgressMismatch
	}

	if !entry.IsNewerThan(existing) {
		return false, nil
	}

	if err := s.updateProgress(ctx, tx, docID, entry); err != nil {
		return false, err
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit progress: %w", err)
	}
	return true, nil
}

func (s *Storage) updateProgress(ctx context.Context, tx *sql.Tx, docID string, entry *models.ProgressEntry) error {
	_, err := tx.ExecContext(ctx, `
		UPDATE progress
		SET next_review_at = ?, answered_at = ?, quality = ?,
		    ease_factor = ?, repetition_count = ?, updated_at = ?
		WHERE doc_id = ?
	`,
		entry.NextReviewAt.Unix(),
		entry.AnsweredAt.UnixNano(),
		entry.Quality,
		entry.EaseFactor,
		entry.RepetitionCount,
		s.clock.Now().Unix(),
		docID,
	)
	if err != nil {
		return fmt.Errorf("failed to update progress: %w", err)
	}
	return nil
}

// ListProgress returns all documents of the user ordered by question id
func (s *Storage) ListProgress(ctx context.Context, userID string) ([]*models.ProgressEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+progressColumns+` FROM progress WHERE user_id = ? ORDER BY question_id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query progress: %w", err)
	}
	defer rows.Close()

	entries := make([]*models.ProgressEntry, 0)
	for rows.Next() {
		entry, err := scanProgressRow(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return entries, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProgress(row *sql.Row) (*models.ProgressEntry, error) {
	entry, err := scanProgressRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrProgressNotFound
	}
	return entry, err
}

func scanProgressRow(row scanner) (*models.ProgressEntry, error) {
	var (
		entry                     models.ProgressEntry
		nextReviewAt, answeredAt int64
	)
	err := row.Scan(
		&entry.RemoteDocID,
		&entry.QuestionID,
		&nextReviewAt,
		&answeredAt,
		&entry.Quality,
		&entry.EaseFactor,
		&entry.RepetitionCount,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan progress: %w", err)
	}

	entry.NextReviewAt = time.Unix(nextReviewAt, 0).UTC()
	entry.AnsweredAt = time.Unix(0, answeredAt).UTC()
	return &entry, nil
}
