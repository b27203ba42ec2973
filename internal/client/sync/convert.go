package sync

import (
	"errors"
	"fmt"

	httpClient "github.com/iudanet/sm2sync/internal/client/api"
	"github.com/iudanet/sm2sync/internal/models"
	"github.com/iudanet/sm2sync/pkg/api"
)

func toAPIAnswer(rec *models.AnswerRecord) api.AnswerRecord {
	return api.AnswerRecord{
		ID:              rec.ID,
		UserID:          rec.UserID,
		QuestionID:      rec.QuestionID,
		CompletedAt:     rec.CompletedAt,
		Quality:         rec.Quality,
		EaseFactor:      rec.EaseFactor,
		RepetitionCount: rec.RepetitionCount,
	}
}

// toAPIProgress конвертирует запись без локальной ревизии и удалённого id
func toAPIProgress(e *models.ProgressEntry) api.Progress {
	return api.Progress{
		QuestionID:      e.QuestionID,
		NextReviewAt:    e.NextReviewAt,
		AnsweredAt:      e.AnsweredAt,
		Quality:         e.Quality,
		EaseFactor:      e.EaseFactor,
		RepetitionCount: e.RepetitionCount,
	}
}

// classify помечает отклонённые сервером записи, чтобы раунд продолжил остальные
func classify(err error) error {
	if errors.Is(err, httpClient.ErrRejected) && !httpClient.IsUnauthorized(err) {
		return fmt.Errorf("%w: %w", errRejectedEntry, err)
	}
	return err
}
