package sqlite

import (
	"context"
	"fmt"

	"github.com/iudanet/sm2sync/internal/models"
)

// InsertAnswers stores records, ignoring ids that are already known.
// Returns the number of newly stored records.
func (s *Storage) InsertAnswers(ctx context.Context, records []*models.AnswerRecord) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// INSERT OR IGNORE: повторная отправка тех же id не создаёт дубликатов
	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO answers (
			id, user_id, question_id, completed_at,
			quality, ease_factor, repetition_count, received_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	receivedAt := s.clock.Now().Unix()
	accepted := 0
	for _, rec := range records {
		res, err := stmt.ExecContext(ctx,
			rec.ID,
			rec.UserID,
			rec.QuestionID,
			rec.CompletedAt.Unix(),
			rec.Quality,
			rec.EaseFactor,
			rec.RepetitionCount,
			receivedAt,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to insert answer %s: %w", rec.ID, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("failed to get rows affected: %w", err)
		}
		accepted += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit answers: %w", err)
	}

	return accepted, nil
}
