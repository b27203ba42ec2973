package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/sm2sync/internal/client/storage"
	"github.com/iudanet/sm2sync/internal/models"
)

func getEntry(bucket *bbolt.Bucket, questionID string) *models.ProgressEntry {
	data := bucket.Get([]byte(questionID))
	if data == nil {
		return nil
	}
	var entry models.ProgressEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		// Повреждённая запись считается отсутствующей
		return nil
	}
	return &entry
}

func putEntry(bucket *bbolt.Bucket, entry *models.ProgressEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal progress entry: %w", err)
	}
	if err := bucket.Put([]byte(entry.QuestionID), data); err != nil {
		return fmt.Errorf("failed to save progress entry: %w", err)
	}
	return nil
}

func listEntries(bucket *bbolt.Bucket) ([]*models.ProgressEntry, error) {
	var entries []*models.ProgressEntry
	err := bucket.ForEach(func(k, v []byte) error {
		var entry models.ProgressEntry
		if err := json.Unmarshal(v, &entry); err != nil {
			return nil
		}
		entries = append(entries, &entry)
		return nil
	})
	return entries, err
}

// UpsertProgress stores entry as known state and pending upload of its question
func (s *Storage) UpsertProgress(ctx context.Context, entry *models.ProgressEntry) (*models.ProgressEntry, error) {
	if entry == nil || entry.QuestionID == "" {
		return nil, fmt.Errorf("progress entry must have a question id")
	}

	stored := entry.Clone()

	err := s.update(func(tx *bbolt.Tx) error {
		pending := tx.Bucket(bucketPendingProgress)
		known := tx.Bucket(bucketKnownProgress)
		if pending == nil || known == nil {
			return fmt.Errorf("progress buckets not found")
		}

		// Сохраняем удалённый идентификатор, полученный при прошлых синхронизациях
		if stored.RemoteDocID == "" {
			if prev := getEntry(known, stored.QuestionID); prev != nil {
				stored.RemoteDocID = prev.RemoteDocID
			}
		}

		rev, err := pending.NextSequence()
		if err != nil {
			return fmt.Errorf("failed to allocate revision: %w", err)
		}
		stored.Revision = rev

		if err := putEntry(pending, stored); err != nil {
			return err
		}
		return putEntry(known, stored)
	})
	if err != nil {
		return nil, err
	}

	return stored.Clone(), nil
}

// GetProgress returns the known state of a question
func (s *Storage) GetProgress(ctx context.Context, questionID string) (*models.ProgressEntry, error) {
	var entry *models.ProgressEntry

	err := s.view(func(tx *bbolt.Tx) error {
		known := tx.Bucket(bucketKnownProgress)
		if known == nil {
			return storage.ErrProgressNotFound
		}
		entry = getEntry(known, questionID)
		if entry == nil {
			return storage.ErrProgressNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// ListProgress returns the known state of every answered question
func (s *Storage) ListProgress(ctx context.Context) ([]*models.ProgressEntry, error) {
	var entries []*models.ProgressEntry

	err := s.view(func(tx *bbolt.Tx) error {
		known := tx.Bucket(bucketKnownProgress)
		if known == nil {
			return nil
		}
		var err error
		entries, err = listEntries(known)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list progress: %w", err)
	}

	return entries, nil
}

// PendingProgress returns a snapshot of the pending progress log
func (s *Storage) PendingProgress(ctx context.Context) ([]*models.ProgressEntry, error) {
	var entries []*models.ProgressEntry

	err := s.view(func(tx *bbolt.Tx) error {
		pending := tx.Bucket(bucketPendingProgress)
		if pending == nil {
			return nil
		}
		var err error
		entries, err = listEntries(pending)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read pending progress: %w", err)
	}

	return entries, nil
}

// SetRemoteDocID records the remote identity of a question's progress
func (s *Storage) SetRemoteDocID(ctx context.Context, questionID, docID string) error {
	if questionID == "" || docID == "" {
		return fmt.Errorf("question id and doc id are required")
	}

	return s.update(func(tx *bbolt.Tx) error {
		pending := tx.Bucket(bucketPendingProgress)
		known := tx.Bucket(bucketKnownProgress)
		if pending == nil || known == nil {
			return fmt.Errorf("progress buckets not found")
		}

		entry := getEntry(known, questionID)
		if entry == nil {
			entry = &models.ProgressEntry{QuestionID: questionID}
		}
		entry.RemoteDocID = docID
		if err := putEntry(known, entry); err != nil {
			return err
		}

		// Ревизию не меняем: запись в очереди всё ещё та же
		if p := getEntry(pending, questionID); p != nil {
			p.RemoteDocID = docID
			return putEntry(pending, p)
		}
		return nil
	})
}

// RemovePendingProgress removes pending entries unchanged since snapshot
func (s *Storage) RemovePendingProgress(ctx context.Context, snapshot []*models.ProgressEntry) (int, error) {
	removed := 0

	err := s.update(func(tx *bbolt.Tx) error {
		pending := tx.Bucket(bucketPendingProgress)
		if pending == nil {
			return nil
		}

		for _, uploaded := range snapshot {
			current := getEntry(pending, uploaded.QuestionID)
			if current == nil || current.Revision != uploaded.Revision {
				// Запись перезаписана после снимка - оставляем для следующей синхронизации
				continue
			}
			if err := pending.Delete([]byte(uploaded.QuestionID)); err != nil {
				return fmt.Errorf("failed to remove pending progress: %w", err)
			}
			removed++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return removed, nil
}

func deleteAll(bucket *bbolt.Bucket) (int, error) {
	var keys [][]byte
	err := bucket.ForEach(func(k, _ []byte) error {
		keys = append(keys, append([]byte(nil), k...))
		return nil
	})
	if err != nil {
		return 0, err
	}
	for _, k := range keys {
		if err := bucket.Delete(k); err != nil {
			return 0, err
		}
	}
	return len(keys), nil
}

// ClearProgress forgets known and pending progress of every question.
// Счётчик ревизий бакета очереди не сбрасывается.
func (s *Storage) ClearProgress(ctx context.Context) (int, error) {
	cleared := 0

	err := s.update(func(tx *bbolt.Tx) error {
		pending := tx.Bucket(bucketPendingProgress)
		known := tx.Bucket(bucketKnownProgress)
		if pending == nil || known == nil {
			return fmt.Errorf("progress buckets not found")
		}

		if _, err := deleteAll(pending); err != nil {
			return fmt.Errorf("failed to clear pending progress: %w", err)
		}
		n, err := deleteAll(known)
		if err != nil {
			return fmt.Errorf("failed to clear known progress: %w", err)
		}
		cleared = n
		return nil
	})
	if err != nil {
		return 0, err
	}

	return cleared, nil
}
