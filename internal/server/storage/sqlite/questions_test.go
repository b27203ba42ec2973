package sqlite

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/sm2sync/internal/models"
	"github.com/iudanet/sm2sync/internal/server/storage"
)

func TestQuestions(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	_, err := s.GetQuestion(ctx, "q1")
	assert.ErrorIs(t, err, storage.ErrQuestionNotFound)

	require.NoError(t, s.SaveQuestions(ctx, []*models.Question{
		{ID: "q1", Payload: json.RawMessage(`{"text":"one"}`)},
		{ID: "q2", Payload: json.RawMessage(`{"text":"two"}`)},
	}))

	q, err := s.GetQuestion(ctx, "q1")
	require.NoError(t, err)
	assert.Equal(t, "q1", q.ID)
	assert.JSONEq(t, `{"text":"one"}`, string(q.Payload))

	// Повторное сохранение заменяет содержимое, а не добавляет строку
	require.NoError(t, s.SaveQuestions(ctx, []*models.Question{
		{ID: "q1", Payload: json.RawMessage(`{"text":"uno"}`)},
	}))

	q, err = s.GetQuestion(ctx, "q1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"text":"uno"}`, string(q.Payload))

	var count int
	require.NoError(t, s.DB().QueryRow(`SELECT COUNT(*) FROM questions`).Scan(&count))
	assert.Equal(t, 2, count)

	require.NoError(t, s.SaveQuestions(ctx, nil))
}
