package boltdb

import (
	"context"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/sm2sync/internal/client/storage"
)

var (
	// BoltDB bucket names
	bucketAuth            = []byte("auth")
	bucketMetadata        = []byte("metadata")
	bucketKV              = []byte("kv")
	bucketPendingProgress = []byte(storage.ProgressLogName)
	bucketKnownProgress   = []byte("progress")
	bucketQuestions       = []byte(storage.QuestionCacheName)

	// logBucketPrefix prefixes the bucket of every named log
	logBucketPrefix = "log:"
)

// Compile-time check that Storage implements LocalStore
var _ storage.LocalStore = (*Storage)(nil)

// Storage represents BoltDB storage implementation for client
type Storage struct {
	db *bbolt.DB
}

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string) (*Storage, error) {
	// Не ждём бесконечно, если файл заблокирован другим процессом
	db, err := bbolt.Open(dbPath, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	storage := &Storage{db: db}

	// Инициализируем buckets
	if err := storage.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return storage, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Durable reports that data survives restarts
func (s *Storage) Durable() bool {
	return true
}

// initBuckets создает необходимые buckets если они не существуют
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{
			bucketAuth,
			bucketMetadata,
			bucketKV,
			bucketPendingProgress,
			bucketKnownProgress,
			bucketQuestions,
		} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create %s bucket: %w", name, err)
			}
		}
		return nil
	})
}

// update runs fn in a read-write transaction of an open database
func (s *Storage) update(fn func(tx *bbolt.Tx) error) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}
	return s.db.Update(fn)
}

// view runs fn in a read-only transaction of an open database
func (s *Storage) view(fn func(tx *bbolt.Tx) error) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}
	return s.db.View(fn)
}
