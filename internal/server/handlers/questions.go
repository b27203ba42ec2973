package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/sm2sync/internal/models"
	"github.com/iudanet/sm2sync/internal/server/storage"
	"github.com/iudanet/sm2sync/internal/validation"
	"github.com/iudanet/sm2sync/pkg/api"
)

// QuestionStorage определяет интерфейс для содержимого вопросов
type QuestionStorage interface {
	GetQuestion(ctx context.Context, id string) (*models.Question, error)
	SaveQuestions(ctx context.Context, questions []*models.Question) error
}

// QuestionsHandler serves question content
type QuestionsHandler struct {
	logger  *slog.Logger
	storage QuestionStorage
}

// NewQuestionsHandler creates a new questions handler
func NewQuestionsHandler(logger *slog.Logger, storage QuestionStorage) *QuestionsHandler {
	return &QuestionsHandler{
		logger:  logger,
		storage: storage,
	}
}

// Get обрабатывает GET /api/v1/questions/{id}
func (h *QuestionsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := validation.ValidateID("question id", id); err != nil {
		WriteError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	q, err := h.storage.GetQuestion(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrQuestionNotFound) {
			WriteError(w, h.logger, http.StatusNotFound, "question not found")
			return
		}
		h.logger.Error("Failed to get question", "error", err, "id", id)
		WriteError(w, h.logger, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, api.Question{ID: q.ID, Payload: q.Payload})
}

// Put обрабатывает PUT /api/v1/questions/{id}, только для администратора
func (h *QuestionsHandler) Put(w http.ResponseWriter, r *http.Request) {
	if !IsAdmin(r.Context()) {
		WriteError(w, h.logger, http.StatusForbidden, "admin token required")
		return
	}

	id := r.PathValue("id")
	if err := validation.ValidateID("question id", id); err != nil {
		WriteError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	var q api.Question
	if !decodeBody(w, r, h.logger, &q) {
		return
	}
	if q.ID != "" && q.ID != id {
		WriteError(w, h.logger, http.StatusBadRequest, "question id in body does not match path")
		return
	}
	if len(q.Payload) == 0 || !json.Valid(q.Payload) {
		WriteError(w, h.logger, http.StatusBadRequest, "payload must be valid JSON")
		return
	}

	if err := h.storage.SaveQuestions(r.Context(), []*models.Question{{ID: id, Payload: q.Payload}}); err != nil {
		h.logger.Error("Failed to save question", "error", err, "id", id)
		WriteError(w, h.logger, http.StatusInternalServerError, "internal server error")
		return
	}

	h.logger.Info("Question saved", "id", id)
	w.WriteHeader(http.StatusNoContent)
}
