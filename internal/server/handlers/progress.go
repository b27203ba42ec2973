package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/sm2sync/internal/models"
	"github.com/iudanet/sm2sync/internal/scheduler"
	"github.com/iudanet/sm2sync/internal/server/storage"
	"github.com/iudanet/sm2sync/internal/validation"
	"github.com/iudanet/sm2sync/pkg/api"
)

// ProgressStorage определяет интерфейс для документов прогресса
type ProgressStorage interface {
	CreateProgress(ctx context.Context, userID string, entry *models.ProgressEntry) (string, bool, error)
	UpdateProgress(ctx context.Context, userID, docID string, entry *models.ProgressEntry) (bool, error)
	ListProgress(ctx context.Context, userID string) ([]*models.ProgressEntry, error)
}

// ProgressHandler handles per-user progress documents
type ProgressHandler struct {
	logger  *slog.Logger
	storage ProgressStorage
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(logger *slog.Logger, storage ProgressStorage) *ProgressHandler {
	return &ProgressHandler{
		logger:  logger,
		storage: storage,
	}
}

// Create обрабатывает POST /api/v1/users/{userID}/progress
// Повторный create того же вопроса возвращает существующий doc_id
func (h *ProgressHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := authorizeUser(w, r, h.logger)
	if !ok {
		return
	}

	entry, ok := h.decodeProgress(w, r)
	if !ok {
		return
	}

	docID, created, err := h.storage.CreateProgress(r.Context(), userID, entry)
	if err != nil {
		h.logger.Error("Failed to create progress", "error", err, "user_id", userID)
		WriteError(w, h.logger, http.StatusInternalServerError, "internal server error")
		return
	}

	h.logger.Debug("Progress created", "user_id", userID, "question_id", entry.QuestionID,
		"doc_id", docID, "created", created)

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, h.logger, status, api.CreateProgressResponse{DocID: docID, Created: created})
}

// Update обрабатывает PUT /api/v1/users/{userID}/progress/{docID}
// Устаревшее обновление не применяется, но и не считается ошибкой
func (h *ProgressHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := authorizeUser(w, r, h.logger)
	if !ok {
		return
	}

	docID := r.PathValue("docID")
	if err := validation.ValidateID("doc id", docID); err != nil {
		WriteError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	entry, ok := h.decodeProgress(w, r)
	if !ok {
		return
	}

	applied, err := h.storage.UpdateProgress(r.Context(), userID, docID, entry)
	switch {
	case errors.Is(err, storage.ErrProgressNotFound):
		WriteError(w, h.logger, http.StatusNotFound, "progress not found")
		return
	case errors.Is(err, storage.ErrProgressMismatch):
		WriteError(w, h.logger, http.StatusConflict, err.Error())
		return
	case err != nil:
		h.logger.Error("Failed to update progress", "error", err, "user_id", userID, "doc_id", docID)
		WriteError(w, h.logger, http.StatusInternalServerError, "internal server error")
		return
	}

	if !applied {
		h.logger.Debug("Stale progress update ignored", "user_id", userID, "doc_id", docID)
	}
	writeJSON(w, h.logger, http.StatusOK, api.UpdateProgressResponse{Applied: applied})
}

// List обрабатывает GET /api/v1/users/{userID}/progress
func (h *ProgressHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := authorizeUser(w, r, h.logger)
	if !ok {
		return
	}

	entries, err := h.storage.ListProgress(r.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to list progress", "error", err, "user_id", userID)
		WriteError(w, h.logger, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := api.ListProgressResponse{Progress: make([]api.Progress, 0, len(entries))}
	for _, e := range entries {
		resp.Progress = append(resp.Progress, api.Progress{
			DocID:           e.RemoteDocID,
			QuestionID:      e.QuestionID,
			NextReviewAt:    e.NextReviewAt,
			AnsweredAt:      e.AnsweredAt,
			Quality:         e.Quality,
			EaseFactor:      e.EaseFactor,
			RepetitionCount: e.RepetitionCount,
		})
	}
	writeJSON(w, h.logger, http.StatusOK, resp)
}

func (h *ProgressHandler) decodeProgress(w http.ResponseWriter, r *http.Request) (*models.ProgressEntry, bool) {
	var p api.Progress
	if !decodeBody(w, r, h.logger, &p) {
		return nil, false
	}

	if err := validateProgress(p); err != nil {
		WriteError(w, h.logger, http.StatusBadRequest, err.Error())
		return nil, false
	}

	return &models.ProgressEntry{
		QuestionID:      p.QuestionID,
		NextReviewAt:    p.NextReviewAt.UTC(),
		AnsweredAt:      p.AnsweredAt.UTC(),
		Quality:         p.Quality,
		EaseFactor:      p.EaseFactor,
		RepetitionCount: p.RepetitionCount,
	}, true
}

func validateProgress(p api.Progress) error {
	if err := validation.ValidateID("question id", p.QuestionID); err != nil {
		return err
	}
	if err := validation.ValidateQuality(p.Quality); err != nil {
		return err
	}
	if p.AnsweredAt.IsZero() || p.NextReviewAt.IsZero() {
		return errors.New("answered_at and next_review_at are required")
	}
	if p.NextReviewAt.Before(p.AnsweredAt.Truncate(24 * time.Hour)) {
		return errors.New("next_review_at is before the answer day")
	}
	return validateScheduling(p.EaseFactor, p.RepetitionCount)
}

func validateScheduling(easeFactor float64, repetitionCount int) error {
	if easeFactor < scheduler.MinEaseFactor {
		return fmt.Errorf("ease_factor must be at least %.1f", scheduler.MinEaseFactor)
	}
	if repetitionCount < 1 {
		return errors.New("repetition_count must be positive")
	}
	return nil
}
