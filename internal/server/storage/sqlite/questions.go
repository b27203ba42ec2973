package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iudanet/sm2sync/internal/models"
	"github.com/iudanet/sm2sync/internal/server/storage"
)

// GetQuestion returns ErrQuestionNotFound if question doesn't exist
func (s *Storage) GetQuestion(ctx context.Context, id string) (*models.Question, error) {
	var (
		q       models.Question
		payload string
	)
	err := s.db.QueryRowContext(ctx, `SELECT id, payload FROM questions WHERE id = ?`, id).
		Scan(&q.ID, &payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to get question: %w", err)
	}

	q.Payload = []byte(payload)
	return &q, nil
}

// SaveQuestions inserts or replaces questions in one transaction
func (s *Storage) SaveQuestions(ctx context.Context, questions []*models.Question) error {
	if len(questions) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO questions (id, payload, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare upsert: %w", err)
	}
	defer stmt.Close()

	now := s.clock.Now().Unix()
	for _, q := range questions {
		if _, err := stmt.ExecContext(ctx, q.ID, string(q.Payload), now); err != nil {
			return fmt.Errorf("failed to save question %s: %w", q.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit questions: %w", err)
	}
	return nil
}
