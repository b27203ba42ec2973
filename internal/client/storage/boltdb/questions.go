package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/sm2sync/internal/client/storage"
	"github.com/iudanet/sm2sync/internal/models"
)

// GetCachedQuestion returns a cached question
func (s *Storage) GetCachedQuestion(ctx context.Context, id string) (*models.Question, error) {
	var q *models.Question

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQuestions)
		if bucket == nil {
			return storage.ErrQuestionNotCached
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrQuestionNotCached
		}

		q = &models.Question{}
		if err := json.Unmarshal(data, q); err != nil {
			// Повреждённый кэш - просто промах
			return storage.ErrQuestionNotCached
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return q, nil
}

// SaveCachedQuestion stores a question under its id
func (s *Storage) SaveCachedQuestion(ctx context.Context, q *models.Question) error {
	if q == nil || q.ID == "" {
		return fmt.Errorf("question must have an id")
	}

	data, err := json.Marshal(q)
	if err != nil {
		return fmt.Errorf("failed to marshal question: %w", err)
	}

	return s.update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(bucketQuestions)
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		if err := bucket.Put([]byte(q.ID), data); err != nil {
			return fmt.Errorf("failed to save question: %w", err)
		}
		return nil
	})
}
