package storage

import (
	"context"
	"encoding/json"
)

// KeyValueStorage is generic scoped persistence of JSON values under logical keys.
type KeyValueStorage interface {
	// Get decodes the value stored under key into dst.
	// A missing, unreadable or corrupted value is reported as found == false with no error,
	// so callers treat "never written" and "lost" the same way.
	Get(ctx context.Context, key string, dst any) (bool, error)

	// Set stores value under key. A nil value clears the key.
	Set(ctx context.Context, key string, value any) error

	// Clear removes key. Clearing a missing key is not an error.
	Clear(ctx context.Context, key string) error
}

// IsNil reports whether v should be treated as "clear the key".
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	if raw, ok := v.(json.RawMessage); ok {
		return raw == nil || string(raw) == "null"
	}
	return false
}
