package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"

	"go.etcd.io/bbolt"
)

var keyLastSync = []byte("last_sync")

// SaveLastSyncTimestamp records the unix time of the last round that fully succeeded
func (s *Storage) SaveLastSyncTimestamp(ctx context.Context, timestamp int64) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(timestamp))

	return s.update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket(bucketMetadata).Put(keyLastSync, buf[:]); err != nil {
			return fmt.Errorf("failed to save last sync time: %w", err)
		}
		return nil
	})
}

// GetLastSyncTimestamp returns 0 until the first successful sync.
// A damaged value is treated the same way.
func (s *Storage) GetLastSyncTimestamp(ctx context.Context) (int64, error) {
	var ts int64
	err := s.view(func(tx *bbolt.Tx) error {
		if v := tx.Bucket(bucketMetadata).Get(keyLastSync); len(v) == 8 {
			ts = int64(binary.BigEndian.Uint64(v))
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to read last sync time: %w", err)
	}
	return ts, nil
}
