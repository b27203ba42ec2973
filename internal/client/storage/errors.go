package storage

import "errors"

// Common client storage errors
var (
	// ErrAuthNotFound indicates that no authentication data exists
	ErrAuthNotFound = errors.New("authentication data not found")

	// ErrProgressNotFound indicates that no progress is known for the question
	ErrProgressNotFound = errors.New("progress not found")

	// ErrQuestionNotCached indicates that the question is not in the local cache
	ErrQuestionNotCached = errors.New("question not cached")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")

	// ErrInvalidLogName indicates an empty or malformed log name
	ErrInvalidLogName = errors.New("invalid log name")
)
