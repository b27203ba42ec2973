// Package progress turns an answer into a scheduled review and records it locally.
package progress

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/oklog/ulid/v2"

	"github.com/iudanet/sm2sync/internal/client/storage"
	"github.com/iudanet/sm2sync/internal/clock"
	"github.com/iudanet/sm2sync/internal/models"
	"github.com/iudanet/sm2sync/internal/scheduler"
	"github.com/iudanet/sm2sync/internal/validation"
)

// ErrNotLoggedIn is returned when an answer is recorded without a current user.
var ErrNotLoggedIn = errors.New("not logged in")

// Storage is the part of the LocalStore the recorder writes to.
type Storage interface {
	storage.LogStorage
	UpsertProgress(ctx context.Context, entry *models.ProgressEntry) (*models.ProgressEntry, error)
	GetProgress(ctx context.Context, questionID string) (*models.ProgressEntry, error)
	ListProgress(ctx context.Context) ([]*models.ProgressEntry, error)
	IDStatus(ctx context.Context) (string, error)
	Durable() bool
}

// Recorded describes what Record wrote.
type Recorded struct {
	Answer   *models.AnswerRecord
	Progress *models.ProgressEntry
	Interval int  // Interval days until the next review
	Durable  bool // Durable false means the answer is lost on restart
}

// Recorder records answers. Record is safe for concurrent use.
type Recorder struct {
	store  Storage
	clock  clock.Clock
	logger *slog.Logger

	// mu сериализует чтение прежнего состояния и запись нового
	mu sync.Mutex
}

// NewRecorder creates a Recorder.
func NewRecorder(store Storage, clk clock.Clock, logger *slog.Logger) *Recorder {
	return &Recorder{
		store:  store,
		clock:  clk,
		logger: logger,
	}
}

// Record schedules the next review of questionID after an answer of the given quality,
// appends the answer to the analytics log and replaces the pending progress of the question.
func (r *Recorder) Record(ctx context.Context, questionID string, quality int) (*Recorded, error) {
	if err := validation.ValidateID("question id", questionID); err != nil {
		return nil, err
	}

	userID, err := r.store.IDStatus(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return nil, ErrNotLoggedIn
		}
		return nil, fmt.Errorf("failed to read current user: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Продолжаем цепочку повторений с последнего известного состояния
	prev, err := r.store.GetProgress(ctx, questionID)
	switch {
	case errors.Is(err, storage.ErrProgressNotFound):
		prev = &models.ProgressEntry{QuestionID: questionID}
	case err != nil:
		return nil, fmt.Errorf("failed to read progress: %w", err)
	}

	now := r.clock.Now()
	today := r.clock.Today()

	res, err := scheduler.Schedule(scheduler.Input{
		Today:           today,
		EaseFactor:      prev.EaseFactor,
		Quality:         quality,
		RepetitionCount: prev.RepetitionCount,
	})
	if err != nil {
		return nil, err
	}

	answer := &models.AnswerRecord{
		ID:              ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()).String(),
		UserID:          userID,
		QuestionID:      questionID,
		CompletedAt:     today,
		Quality:         quality,
		EaseFactor:      res.EaseFactor,
		RepetitionCount: res.RepetitionCount,
	}
	if err := storage.AppendAnswer(ctx, r.store, answer); err != nil {
		return nil, err
	}

	stored, err := r.store.UpsertProgress(ctx, &models.ProgressEntry{
		QuestionID:      questionID,
		NextReviewAt:    res.NextReviewAt,
		AnsweredAt:      now,
		Quality:         quality,
		EaseFactor:      res.EaseFactor,
		RepetitionCount: res.RepetitionCount,
		RemoteDocID:     prev.RemoteDocID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save progress: %w", err)
	}

	r.logger.Debug("Answer recorded",
		"question_id", questionID,
		"quality", quality,
		"repetition", res.RepetitionCount,
		"ease_factor", res.EaseFactor,
		"next_review", res.NextReviewAt.Format("2006-01-02"))

	return &Recorded{
		Answer:   answer,
		Progress: stored,
		Interval: res.Interval,
		Durable:  r.store.Durable(),
	}, nil
}

// Due returns the questions whose next review is today or earlier, most overdue first.
func (r *Recorder) Due(ctx context.Context) ([]*models.ProgressEntry, error) {
	all, err := r.store.ListProgress(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list progress: %w", err)
	}

	today := r.clock.Today()
	due := make([]*models.ProgressEntry, 0, len(all))
	for _, entry := range all {
		// Запись только с RemoteDocID ещё ни разу не отвечалась на этом устройстве
		if entry.RepetitionCount == 0 {
			continue
		}
		if entry.IsDue(today) {
			due = append(due, entry)
		}
	}

	sort.SliceStable(due, func(i, j int) bool {
		if !due[i].NextReviewAt.Equal(due[j].NextReviewAt) {
			return due[i].NextReviewAt.Before(due[j].NextReviewAt)
		}
		return due[i].QuestionID < due[j].QuestionID
	})

	return due, nil
}
