package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/iudanet/sm2sync/internal/models"
)

// AnswerSnapshot is a decoded snapshot of the analytics log.
// Seqs[i] is the log sequence of Records[i].
type AnswerSnapshot struct {
	Records []*models.AnswerRecord
	Seqs    []uint64
	UpTo    uint64
}

// AppendAnswer appends rec to the analytics log.
func AppendAnswer(ctx context.Context, logs LogStorage, rec *models.AnswerRecord) error {
	if _, err := logs.AppendToLog(ctx, AnalyticsLog, rec); err != nil {
		return fmt.Errorf("failed to append answer: %w", err)
	}
	return nil
}

// SnapshotAnswers reads the analytics log.
// Items that cannot be decoded are skipped but still covered by UpTo,
// so a corrupted record cannot block the log forever.
func SnapshotAnswers(ctx context.Context, logs LogStorage) (*AnswerSnapshot, int, error) {
	snap, err := logs.ReadLog(ctx, AnalyticsLog)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read analytics log: %w", err)
	}

	result := &AnswerSnapshot{
		Records: make([]*models.AnswerRecord, 0, snap.Len()),
		Seqs:    make([]uint64, 0, snap.Len()),
		UpTo:    snap.UpTo,
	}

	skipped := 0
	for _, item := range snap.Items {
		var rec models.AnswerRecord
		if err := json.Unmarshal(item.Data, &rec); err != nil {
			skipped++
			continue
		}
		result.Records = append(result.Records, &rec)
		result.Seqs = append(result.Seqs, item.Seq)
	}

	return result, skipped, nil
}
