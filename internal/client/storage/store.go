package storage

import "context"

// Logical keys of the local persistence layer.
const (
	// ProgressLogName is the name of the pending progress log.
	ProgressLogName = "answerProgress"
	// QuestionCacheName is the name of the question content cache.
	QuestionCacheName = "questionCollection"
)

// LocalStore is everything the engine persists on the device.
// It is the single point of truth for the logs and the cache: components never keep
// private copies of them.
type LocalStore interface {
	KeyValueStorage
	LogStorage
	ProgressStorage
	QuestionCacheStorage
	AuthStorage
	MetadataStorage

	// Durable reports whether data survives a process restart.
	Durable() bool

	Close() error
}

// PendingCounts returns how many answers and progress entries wait for upload.
func PendingCounts(ctx context.Context, s LocalStore) (answers int, progress int, err error) {
	snap, err := s.ReadLog(ctx, AnalyticsLog)
	if err != nil {
		return 0, 0, err
	}
	pending, err := s.PendingProgress(ctx)
	if err != nil {
		return 0, 0, err
	}
	return snap.Len(), len(pending), nil
}
