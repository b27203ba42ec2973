// Package questions is a read-through cache of question content.
package questions

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/iudanet/sm2sync/internal/client/storage"
	"github.com/iudanet/sm2sync/internal/models"
	"github.com/iudanet/sm2sync/internal/validation"
	"github.com/iudanet/sm2sync/pkg/api"
)

//go:generate moq -out cache_mock.go . Remote Storage

// DefaultFetchTimeout bounds one remote fetch of a question.
const DefaultFetchTimeout = 10 * time.Second

// Remote is the part of the remote store the cache reads from.
type Remote interface {
	GetQuestion(ctx context.Context, accessToken, id string) (*api.Question, error)
}

// Storage is the local side of the cache.
type Storage interface {
	GetCachedQuestion(ctx context.Context, id string) (*models.Question, error)
	SaveCachedQuestion(ctx context.Context, q *models.Question) error
	GetAuth(ctx context.Context) (*storage.AuthData, error)
}

// Cache serves questions from local storage and fetches misses from the remote store.
// Concurrent misses for one id share a single remote call.
type Cache struct {
	remote  Remote
	store   Storage
	logger  *slog.Logger
	group   singleflight.Group
	timeout time.Duration
}

// NewCache creates a question cache. A non-positive timeout selects DefaultFetchTimeout.
func NewCache(remote Remote, store Storage, timeout time.Duration, logger *slog.Logger) *Cache {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &Cache{
		remote:  remote,
		store:   store,
		timeout: timeout,
		logger:  logger,
	}
}

// FetchQuestion returns the question with id, from the cache when possible.
func (c *Cache) FetchQuestion(ctx context.Context, id string) (*models.Question, error) {
	if err := validation.ValidateID("question id", id); err != nil {
		return nil, err
	}

	q, err := c.store.GetCachedQuestion(ctx, id)
	if err == nil {
		return q, nil
	}
	if !errors.Is(err, storage.ErrQuestionNotCached) {
		// Локальное чтение не удалось - идём на сервер
		c.logger.Warn("Failed to read question cache", "question_id", id, "error", err)
	}

	// Общий запрос не должен отменяться вместе с контекстом первого вызывающего
	ch := c.group.DoChan(id, func() (any, error) {
		return c.fetch(context.WithoutCancel(ctx), id)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		shared := res.Val.(*models.Question)
		copied := *shared
		return &copied, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *Cache) fetch(ctx context.Context, id string) (*models.Question, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var token string
	auth, err := c.store.GetAuth(ctx)
	switch {
	case err == nil:
		token = auth.AccessToken
	case !errors.Is(err, storage.ErrAuthNotFound):
		return nil, fmt.Errorf("failed to read access token: %w", err)
	}

	resp, err := c.remote.GetQuestion(ctx, token, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch question %s: %w", id, err)
	}

	q := &models.Question{ID: id, Payload: resp.Payload}
	if err := c.store.SaveCachedQuestion(ctx, q); err != nil {
		// Вопрос получен, кэш просто не пополнен
		c.logger.Warn("Failed to cache question", "question_id", id, "error", err)
	}

	c.logger.Debug("Question fetched from remote", "question_id", id)
	return q, nil
}
