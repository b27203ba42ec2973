package storage

import (
	"context"
	"encoding/json"
)

// Log names used by the engine.
const (
	// AnalyticsLog holds every AnswerRecord in answer order.
	AnalyticsLog = "answerQuestion"
)

// LogItem is one element of a named log.
type LogItem struct {
	Data json.RawMessage
	Seq  uint64
}

// LogSnapshot is a consistent read of a named log.
// UpTo is the highest sequence included; truncating up to it removes exactly this snapshot.
type LogSnapshot struct {
	Items []LogItem
	UpTo  uint64
}

// Len returns the number of items in the snapshot.
func (s *LogSnapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Items)
}

// LogStorage is an append-only, sequence-numbered store of named logs.
// It knows nothing about the items it holds.
type LogStorage interface {
	// AppendToLog appends item (JSON encoded) to logName and returns its sequence number.
	// Sequence numbers are strictly increasing per log and never reused.
	AppendToLog(ctx context.Context, logName string, item any) (uint64, error)

	// ReadLog returns a snapshot of logName. A missing log is an empty snapshot.
	ReadLog(ctx context.Context, logName string) (*LogSnapshot, error)

	// TruncateLog removes items with sequence <= upTo and returns how many were removed.
	// Items appended after the snapshot that produced upTo are kept.
	TruncateLog(ctx context.Context, logName string, upTo uint64) (int, error)
}
