package progress

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/sm2sync/internal/client/storage"
	"github.com/iudanet/sm2sync/internal/client/storage/memory"
	"github.com/iudanet/sm2sync/internal/clock"
	"github.com/iudanet/sm2sync/internal/scheduler"
)

var start = time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)

func setup(t *testing.T) (*Recorder, *memory.Storage, *clock.Fixed) {
	t.Helper()

	store := memory.New()
	require.NoError(t, store.SaveAuth(context.Background(), &storage.AuthData{UserID: "u-1"}))

	clk := clock.NewFixed(start)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRecorder(store, clk, logger), store, clk
}

func TestRecord_FirstAnswer(t *testing.T) {
	ctx := context.Background()
	rec, store, _ := setup(t)

	got, err := rec.Record(ctx, "q1", 5)
	require.NoError(t, err)

	assert.False(t, got.Durable)
	assert.Equal(t, 1, got.Interval)
	assert.Equal(t, 1, got.Progress.RepetitionCount)
	assert.InDelta(t, 2.6, got.Progress.EaseFactor, 1e-9)
	assert.Equal(t, time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC), got.Progress.NextReviewAt)
	assert.True(t, start.Equal(got.Progress.AnsweredAt))

	assert.Equal(t, "u-1", got.Answer.UserID)
	assert.Equal(t, "q1", got.Answer.QuestionID)
	assert.Equal(t, time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC), got.Answer.CompletedAt)
	assert.Len(t, got.Answer.ID, 26)

	snap, _, err := storage.SnapshotAnswers(ctx, store)
	require.NoError(t, err)
	require.Len(t, snap.Records, 1)
	assert.Equal(t, got.Answer.ID, snap.Records[0].ID)

	pending, err := store.PendingProgress(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, got.Progress.Revision, pending[0].Revision)
}

func TestRecord_ContinuesChain(t *testing.T) {
	ctx := context.Background()
	rec, store, clk := setup(t)

	_, err := rec.Record(ctx, "q1", 5)
	require.NoError(t, err)

	clk.Advance(24 * time.Hour)
	second, err := rec.Record(ctx, "q1", 5)
	require.NoError(t, err)
	assert.Equal(t, 2, second.Progress.RepetitionCount)
	assert.Equal(t, 6, second.Interval)

	clk.Advance(6 * 24 * time.Hour)
	third, err := rec.Record(ctx, "q1", 0)
	require.NoError(t, err)
	assert.Equal(t, 3, third.Progress.RepetitionCount)
	assert.Less(t, third.Progress.EaseFactor, second.Progress.EaseFactor)

	// Все три ответа в аналитике, в очереди прогресса - только последний
	snap, _, err := storage.SnapshotAnswers(ctx, store)
	require.NoError(t, err)
	assert.Len(t, snap.Records, 3)
	assert.Less(t, snap.Records[0].ID, snap.Records[2].ID)

	pending, err := store.PendingProgress(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, 3, pending[0].RepetitionCount)
}

func TestRecord_KeepsRemoteDocID(t *testing.T) {
	ctx := context.Background()
	rec, store, _ := setup(t)

	_, err := rec.Record(ctx, "q1", 4)
	require.NoError(t, err)
	require.NoError(t, store.SetRemoteDocID(ctx, "q1", "doc-1"))

	pending, err := store.PendingProgress(ctx)
	require.NoError(t, err)
	_, err = store.RemovePendingProgress(ctx, pending)
	require.NoError(t, err)

	got, err := rec.Record(ctx, "q1", 4)
	require.NoError(t, err)
	assert.Equal(t, "doc-1", got.Progress.RemoteDocID)
	assert.Equal(t, 2, got.Progress.RepetitionCount)
}

// Параллельные ответы на один вопрос не теряют повторений
func TestRecord_Concurrent(t *testing.T) {
	ctx := context.Background()
	rec, store, _ := setup(t)

	const answers = 20
	var wg sync.WaitGroup
	errs := make(chan error, answers)
	for i := 0; i < answers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := rec.Record(ctx, "q1", 5)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	got, err := store.GetProgress(ctx, "q1")
	require.NoError(t, err)
	assert.Equal(t, answers, got.RepetitionCount)

	snap, _, err := storage.SnapshotAnswers(ctx, store)
	require.NoError(t, err)
	require.Len(t, snap.Records, answers)

	seen := make(map[int]bool, answers)
	for _, r := range snap.Records {
		seen[r.RepetitionCount] = true
	}
	assert.Len(t, seen, answers)
}

func TestRecord_Errors(t *testing.T) {
	ctx := context.Background()
	rec, store, _ := setup(t)

	_, err := rec.Record(ctx, "q1", 6)
	assert.ErrorIs(t, err, scheduler.ErrInvalidQuality)

	_, err = rec.Record(ctx, "", 3)
	assert.Error(t, err)

	// Ничего не записано
	answers, progress, err := storage.PendingCounts(ctx, store)
	require.NoError(t, err)
	assert.Zero(t, answers)
	assert.Zero(t, progress)

	require.NoError(t, store.DeleteAuth(ctx))
	_, err = rec.Record(ctx, "q1", 3)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestRecord_StorageFailure(t *testing.T) {
	ctx := context.Background()
	rec, store, _ := setup(t)
	require.NoError(t, store.Close())

	_, err := rec.Record(ctx, "q1", 3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, storage.ErrStorageClosed))
}

func TestDue(t *testing.T) {
	ctx := context.Background()
	rec, store, clk := setup(t)

	_, err := rec.Record(ctx, "q1", 5) // через 1 день
	require.NoError(t, err)
	_, err = rec.Record(ctx, "q2", 5)
	require.NoError(t, err)
	_, err = rec.Record(ctx, "q2", 5) // через 6 дней
	require.NoError(t, err)
	require.NoError(t, store.SetRemoteDocID(ctx, "q3", "doc-3"))

	due, err := rec.Due(ctx)
	require.NoError(t, err)
	assert.Empty(t, due)

	clk.Advance(24 * time.Hour)
	due, err = rec.Due(ctx)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, "q1", due[0].QuestionID)

	clk.Set(start.AddDate(0, 0, 10))
	due, err = rec.Due(ctx)
	require.NoError(t, err)
	require.Len(t, due, 2)
	assert.Equal(t, "q1", due[0].QuestionID)
	assert.Equal(t, "q2", due[1].QuestionID)
}

func TestRecord_DurableStore(t *testing.T) {
	store := &durableStore{Storage: memory.New()}
	require.NoError(t, store.SaveAuth(context.Background(), &storage.AuthData{UserID: "u-1"}))

	rec := NewRecorder(store, clock.NewFixed(start), slog.New(slog.NewTextHandler(io.Discard, nil)))
	got, err := rec.Record(context.Background(), "q1", 3)
	require.NoError(t, err)
	assert.True(t, got.Durable)
}

type durableStore struct {
	*memory.Storage
}

func (durableStore) Durable() bool { return true }

var _ Storage = durableStore{}

func TestRecord_ProgressEntryFields(t *testing.T) {
	ctx := context.Background()
	rec, store, _ := setup(t)

	got, err := rec.Record(ctx, "q1", 3)
	require.NoError(t, err)

	known, err := store.GetProgress(ctx, "q1")
	require.NoError(t, err)
	assert.Equal(t, got.Progress.Quality, known.Quality)
	assert.Equal(t, got.Answer.EaseFactor, known.EaseFactor)
	assert.Equal(t, got.Progress.NextReviewAt, known.NextReviewAt)
}
