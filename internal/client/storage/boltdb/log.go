package boltdb

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/sm2sync/internal/client/storage"
)

func logBucket(logName string) ([]byte, error) {
	if logName == "" {
		return nil, storage.ErrInvalidLogName
	}
	return []byte(logBucketPrefix + logName), nil
}

// seqKey encodes seq big-endian so cursor order is append order
func seqKey(seq uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)
	return key
}

// AppendToLog appends item to the named log
func (s *Storage) AppendToLog(ctx context.Context, logName string, item any) (uint64, error) {
	name, err := logBucket(logName)
	if err != nil {
		return 0, err
	}

	data, err := json.Marshal(item)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal log item: %w", err)
	}

	var seq uint64
	err = s.update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(name)
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}

		// NextSequence монотонен и переживает удаление ключей
		seq, err = bucket.NextSequence()
		if err != nil {
			return fmt.Errorf("failed to allocate sequence: %w", err)
		}

		if err := bucket.Put(seqKey(seq), data); err != nil {
			return fmt.Errorf("failed to append to %s: %w", logName, err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return seq, nil
}

// ReadLog returns a snapshot of the named log
func (s *Storage) ReadLog(ctx context.Context, logName string) (*storage.LogSnapshot, error) {
	name, err := logBucket(logName)
	if err != nil {
		return nil, err
	}

	snap := &storage.LogSnapshot{}
	err = s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(name)
		if bucket == nil {
			// Нет bucket - лог пуст
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			if len(k) != 8 {
				return nil
			}
			seq := binary.BigEndian.Uint64(k)
			snap.Items = append(snap.Items, storage.LogItem{
				Seq:  seq,
				Data: append([]byte(nil), v...),
			})
			snap.UpTo = seq
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read log %s: %w", logName, err)
	}

	return snap, nil
}

// TruncateLog removes items with sequence <= upTo
func (s *Storage) TruncateLog(ctx context.Context, logName string, upTo uint64) (int, error) {
	name, err := logBucket(logName)
	if err != nil {
		return 0, err
	}

	removed := 0
	err = s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(name)
		if bucket == nil {
			return nil
		}

		// Сначала собираем ключи: удалять во время обхода курсором нельзя
		var keys [][]byte
		c := bucket.Cursor()
		for k, _ := c.First(); k != nil; k, _ = c.Next() {
			if len(k) == 8 && binary.BigEndian.Uint64(k) > upTo {
				break
			}
			keys = append(keys, append([]byte(nil), k...))
		}

		for _, k := range keys {
			if err := bucket.Delete(k); err != nil {
				return fmt.Errorf("failed to delete log item: %w", err)
			}
		}
		removed = len(keys)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to truncate log %s: %w", logName, err)
	}

	return removed, nil
}
