package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/oklog/ulid/v2"

	"github.com/iudanet/sm2sync/internal/models"
	"github.com/iudanet/sm2sync/internal/validation"
	"github.com/iudanet/sm2sync/pkg/api"
)

// MaxBulkRecords ограничивает количество записей в одном запросе
const MaxBulkRecords = api.MaxBulkRecords

//go:generate moq -out storage_mock.go . AnswerStorage ProgressStorage QuestionStorage Pinger

// AnswerStorage определяет интерфейс для работы с аналитикой ответов
type AnswerStorage interface {
	InsertAnswers(ctx context.Context, records []*models.AnswerRecord) (int, error)
}

// AnswersHandler handles analytics uploads
type AnswersHandler struct {
	logger  *slog.Logger
	storage AnswerStorage
}

// NewAnswersHandler creates a new answers handler
func NewAnswersHandler(logger *slog.Logger, storage AnswerStorage) *AnswersHandler {
	return &AnswersHandler{
		logger:  logger,
		storage: storage,
	}
}

// BulkInsert обрабатывает POST /api/v1/answers
// Записи с уже известными id считаются дубликатами, а не ошибкой.
// Записи другого пользователя и невалидные записи не сохраняются и считаются в Rejected,
// остальная часть пачки принимается.
func (h *AnswersHandler) BulkInsert(w http.ResponseWriter, r *http.Request) {
	userID, ok := authorizeUser(w, r, h.logger)
	if !ok {
		return
	}

	var req api.BulkInsertAnswersRequest
	if !decodeBody(w, r, h.logger, &req) {
		return
	}

	if len(req.Records) > MaxBulkRecords {
		WriteError(w, h.logger, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("at most %d records per request", MaxBulkRecords))
		return
	}

	records := make([]*models.AnswerRecord, 0, len(req.Records))
	rejected := 0
	for i, rec := range req.Records {
		if rec.UserID != userID {
			rejected++
			h.logger.Warn("Answer user_id mismatch", "expected", userID, "got", rec.UserID, "index", i)
			continue
		}
		if err := validateAnswer(rec); err != nil {
			rejected++
			h.logger.Warn("Invalid answer record", "user_id", userID, "index", i, "error", err)
			continue
		}
		records = append(records, &models.AnswerRecord{
			ID:              rec.ID,
			UserID:          rec.UserID,
			QuestionID:      rec.QuestionID,
			CompletedAt:     rec.CompletedAt.UTC(),
			Quality:         rec.Quality,
			EaseFactor:      rec.EaseFactor,
			RepetitionCount: rec.RepetitionCount,
		})
	}

	accepted := 0
	if len(records) > 0 {
		var err error
		accepted, err = h.storage.InsertAnswers(r.Context(), records)
		if err != nil {
			h.logger.Error("Failed to insert answers", "error", err, "user_id", userID)
			WriteError(w, h.logger, http.StatusInternalServerError, "internal server error")
			return
		}
	}

	h.logger.Info("Answers stored", "user_id", userID, "accepted", accepted, "received", len(req.Records), "rejected", rejected)

	writeJSON(w, h.logger, http.StatusOK, api.BulkInsertAnswersResponse{
		Accepted:   accepted,
		Duplicates: len(records) - accepted,
		Rejected:   rejected,
	})
}

func validateAnswer(rec api.AnswerRecord) error {
	if _, err := ulid.ParseStrict(rec.ID); err != nil {
		return fmt.Errorf("id must be a ULID: %w", err)
	}
	if err := validation.ValidateID("question id", rec.QuestionID); err != nil {
		return err
	}
	if err := validation.ValidateQuality(rec.Quality); err != nil {
		return err
	}
	return validateScheduling(rec.EaseFactor, rec.RepetitionCount)
}
