package storage

import (
	"context"
	"fmt"
)

// OwnerKey is the key of the user id that owns the local answers and progress.
const OwnerKey = "owner"

// DataOwner returns the user the local data belongs to, or "" when it is not stamped.
func DataOwner(ctx context.Context, kv KeyValueStorage) (string, error) {
	var owner string
	if _, err := kv.Get(ctx, OwnerKey, &owner); err != nil {
		return "", fmt.Errorf("failed to read data owner: %w", err)
	}
	return owner, nil
}

// SetDataOwner stamps the local data with userID.
func SetDataOwner(ctx context.Context, kv KeyValueStorage, userID string) error {
	if err := kv.Set(ctx, OwnerKey, userID); err != nil {
		return fmt.Errorf("failed to save data owner: %w", err)
	}
	return nil
}

// DiscardUserData drops the analytics log and all local progress, known and pending,
// and clears the owner stamp. The question cache and auth data are kept.
func DiscardUserData(ctx context.Context, s LocalStore) (answers int, progress int, err error) {
	snap, err := s.ReadLog(ctx, AnalyticsLog)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read analytics log: %w", err)
	}
	if snap.Len() > 0 {
		if answers, err = s.TruncateLog(ctx, AnalyticsLog, snap.UpTo); err != nil {
			return 0, 0, fmt.Errorf("failed to truncate analytics log: %w", err)
		}
	}

	if progress, err = s.ClearProgress(ctx); err != nil {
		return answers, 0, fmt.Errorf("failed to clear progress: %w", err)
	}

	if err := s.Clear(ctx, OwnerKey); err != nil {
		return answers, progress, fmt.Errorf("failed to clear data owner: %w", err)
	}
	return answers, progress, nil
}
