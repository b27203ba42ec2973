// Package storagetest holds behaviour tests shared by every LocalStore implementation.
package storagetest

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/sm2sync/internal/client/storage"
	"github.com/iudanet/sm2sync/internal/models"
)

// Factory returns a fresh, empty store. The store is closed by the test.
type Factory func(t *testing.T) storage.LocalStore

// Run executes the LocalStore behaviour suite against stores built by newStore.
func Run(t *testing.T, newStore Factory) {
	t.Run("KeyValue", func(t *testing.T) { testKeyValue(t, newStore) })
	t.Run("Log", func(t *testing.T) { testLog(t, newStore) })
	t.Run("LogConcurrentAppend", func(t *testing.T) { testLogConcurrentAppend(t, newStore) })
	t.Run("Answers", func(t *testing.T) { testAnswers(t, newStore) })
	t.Run("Progress", func(t *testing.T) { testProgress(t, newStore) })
	t.Run("ProgressSnapshotRemoval", func(t *testing.T) { testProgressSnapshotRemoval(t, newStore) })
	t.Run("RemoteDocID", func(t *testing.T) { testRemoteDocID(t, newStore) })
	t.Run("ClearProgress", func(t *testing.T) { testClearProgress(t, newStore) })
	t.Run("DiscardUserData", func(t *testing.T) { testDiscardUserData(t, newStore) })
	t.Run("Questions", func(t *testing.T) { testQuestions(t, newStore) })
	t.Run("Auth", func(t *testing.T) { testAuth(t, newStore) })
	t.Run("Metadata", func(t *testing.T) { testMetadata(t, newStore) })
	t.Run("Closed", func(t *testing.T) { testClosed(t, newStore) })
}

func open(t *testing.T, newStore Factory) storage.LocalStore {
	t.Helper()
	s := newStore(t)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func testKeyValue(t *testing.T, newStore Factory) {
	ctx := context.Background()
	s := open(t, newStore)

	var got map[string]string
	found, err := s.Get(ctx, "user", &got)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set(ctx, "user", map[string]string{"uid": "u-1"}))
	found, err = s.Get(ctx, "user", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "u-1", got["uid"])

	// nil clears
	require.NoError(t, s.Set(ctx, "user", nil))
	found, err = s.Get(ctx, "user", &got)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set(ctx, "count", 7))
	require.NoError(t, s.Clear(ctx, "count"))
	require.NoError(t, s.Clear(ctx, "count"))

	var n int
	found, err = s.Get(ctx, "count", &n)
	require.NoError(t, err)
	assert.False(t, found)

	// Значение не того типа читается как отсутствующее
	require.NoError(t, s.Set(ctx, "text", "not a number"))
	found, err = s.Get(ctx, "text", &n)
	require.NoError(t, err)
	assert.False(t, found)
}

func testLog(t *testing.T, newStore Factory) {
	ctx := context.Background()
	s := open(t, newStore)

	snap, err := s.ReadLog(ctx, "events")
	require.NoError(t, err)
	assert.Equal(t, 0, snap.Len())

	_, err = s.AppendToLog(ctx, "", "x")
	assert.ErrorIs(t, err, storage.ErrInvalidLogName)

	var seqs []uint64
	for _, v := range []string{"a", "b", "c"} {
		seq, err := s.AppendToLog(ctx, "events", v)
		require.NoError(t, err)
		seqs = append(seqs, seq)
	}
	assert.Less(t, seqs[0], seqs[1])
	assert.Less(t, seqs[1], seqs[2])

	snap, err = s.ReadLog(ctx, "events")
	require.NoError(t, err)
	require.Equal(t, 3, snap.Len())
	assert.Equal(t, seqs[2], snap.UpTo)

	var first string
	require.NoError(t, json.Unmarshal(snap.Items[0].Data, &first))
	assert.Equal(t, "a", first)

	// Запись после снимка переживает усечение по снимку
	late, err := s.AppendToLog(ctx, "events", "d")
	require.NoError(t, err)

	removed, err := s.TruncateLog(ctx, "events", snap.UpTo)
	require.NoError(t, err)
	assert.Equal(t, 3, removed)

	snap, err = s.ReadLog(ctx, "events")
	require.NoError(t, err)
	require.Equal(t, 1, snap.Len())
	assert.Equal(t, late, snap.Items[0].Seq)

	// Sequence numbers are not reused after truncation
	next, err := s.AppendToLog(ctx, "events", "e")
	require.NoError(t, err)
	assert.Greater(t, next, late)

	// Logs are independent
	other, err := s.ReadLog(ctx, "other")
	require.NoError(t, err)
	assert.Equal(t, 0, other.Len())

	removed, err = s.TruncateLog(ctx, "missing", 100)
	require.NoError(t, err)
	assert.Equal(t, 0, removed)
}

func testLogConcurrentAppend(t *testing.T, newStore Factory) {
	ctx := context.Background()
	s := open(t, newStore)

	const writers = 8
	const perWriter = 10

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				_, err := s.AppendToLog(ctx, "events", w*100+i)
				assert.NoError(t, err)
			}
		}(w)
	}
	wg.Wait()

	snap, err := s.ReadLog(ctx, "events")
	require.NoError(t, err)
	assert.Equal(t, writers*perWriter, snap.Len())

	seen := make(map[uint64]bool)
	for _, item := range snap.Items {
		assert.False(t, seen[item.Seq], "duplicate sequence %d", item.Seq)
		seen[item.Seq] = true
	}
}

func testAnswers(t *testing.T, newStore Factory) {
	ctx := context.Background()
	s := open(t, newStore)

	day := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	for i, q := range []string{"q1", "q2", "q1"} {
		require.NoError(t, storage.AppendAnswer(ctx, s, &models.AnswerRecord{
			ID:              "rec-" + string(rune('a'+i)),
			UserID:          "u-1",
			QuestionID:      q,
			CompletedAt:     day,
			Quality:         4,
			EaseFactor:      2.5,
			RepetitionCount: i + 1,
		}))
	}

	// Повреждённый элемент пропускается, но покрывается снимком
	_, err := s.AppendToLog(ctx, storage.AnalyticsLog, "garbage")
	require.NoError(t, err)

	snap, skipped, err := storage.SnapshotAnswers(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, 1, skipped)
	require.Len(t, snap.Records, 3)
	assert.Equal(t, "rec-a", snap.Records[0].ID)
	assert.Equal(t, "q1", snap.Records[2].QuestionID)
	assert.True(t, day.Equal(snap.Records[0].CompletedAt))

	// Номера записей идут по возрастанию, последний элемент (повреждённый) закрывает снимок
	require.Len(t, snap.Seqs, 3)
	assert.Less(t, snap.Seqs[0], snap.Seqs[1])
	assert.Less(t, snap.Seqs[1], snap.Seqs[2])
	assert.Less(t, snap.Seqs[2], snap.UpTo)

	removed, err := s.TruncateLog(ctx, storage.AnalyticsLog, snap.UpTo)
	require.NoError(t, err)
	assert.Equal(t, 4, removed)
}

func testProgress(t *testing.T, newStore Factory) {
	ctx := context.Background()
	s := open(t, newStore)

	_, err := s.GetProgress(ctx, "q1")
	assert.ErrorIs(t, err, storage.ErrProgressNotFound)

	_, err = s.UpsertProgress(ctx, &models.ProgressEntry{})
	assert.Error(t, err)

	first, err := s.UpsertProgress(ctx, &models.ProgressEntry{QuestionID: "q1", Quality: 2, RepetitionCount: 1})
	require.NoError(t, err)
	assert.NotZero(t, first.Revision)

	second, err := s.UpsertProgress(ctx, &models.ProgressEntry{QuestionID: "q1", Quality: 5, RepetitionCount: 2})
	require.NoError(t, err)
	assert.Greater(t, second.Revision, first.Revision)

	_, err = s.UpsertProgress(ctx, &models.ProgressEntry{QuestionID: "q2", Quality: 3, RepetitionCount: 1})
	require.NoError(t, err)

	// Only the latest entry per question is pending
	pending, err := s.PendingProgress(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 2)

	byID := make(map[string]*models.ProgressEntry)
	for _, p := range pending {
		byID[p.QuestionID] = p
	}
	assert.Equal(t, 5, byID["q1"].Quality)
	assert.Equal(t, 2, byID["q1"].RepetitionCount)

	known, err := s.GetProgress(ctx, "q1")
	require.NoError(t, err)
	assert.Equal(t, 2, known.RepetitionCount)

	all, err := s.ListProgress(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// Known state outlives the pending log
	removed, err := s.RemovePendingProgress(ctx, pending)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	pending, err = s.PendingProgress(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)

	known, err = s.GetProgress(ctx, "q2")
	require.NoError(t, err)
	assert.Equal(t, 3, known.Quality)
}

func testProgressSnapshotRemoval(t *testing.T, newStore Factory) {
	ctx := context.Background()
	s := open(t, newStore)

	_, err := s.UpsertProgress(ctx, &models.ProgressEntry{QuestionID: "q1", RepetitionCount: 1})
	require.NoError(t, err)
	_, err = s.UpsertProgress(ctx, &models.ProgressEntry{QuestionID: "q2", RepetitionCount: 1})
	require.NoError(t, err)

	snapshot, err := s.PendingProgress(ctx)
	require.NoError(t, err)
	require.Len(t, snapshot, 2)

	// q1 is answered again while the snapshot is being uploaded
	_, err = s.UpsertProgress(ctx, &models.ProgressEntry{QuestionID: "q1", RepetitionCount: 2})
	require.NoError(t, err)

	removed, err := s.RemovePendingProgress(ctx, snapshot)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	pending, err := s.PendingProgress(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "q1", pending[0].QuestionID)
	assert.Equal(t, 2, pending[0].RepetitionCount)
}

func testRemoteDocID(t *testing.T, newStore Factory) {
	ctx := context.Background()
	s := open(t, newStore)

	stored, err := s.UpsertProgress(ctx, &models.ProgressEntry{QuestionID: "q1", RepetitionCount: 1})
	require.NoError(t, err)
	assert.Empty(t, stored.RemoteDocID)

	require.NoError(t, s.SetRemoteDocID(ctx, "q1", "doc-1"))
	assert.Error(t, s.SetRemoteDocID(ctx, "q1", ""))

	// Doc id is attached to the pending entry without changing its revision
	pending, err := s.PendingProgress(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "doc-1", pending[0].RemoteDocID)
	assert.Equal(t, stored.Revision, pending[0].Revision)

	removed, err := s.RemovePendingProgress(ctx, pending)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	// A later answer inherits the doc id
	next, err := s.UpsertProgress(ctx, &models.ProgressEntry{QuestionID: "q1", RepetitionCount: 2})
	require.NoError(t, err)
	assert.Equal(t, "doc-1", next.RemoteDocID)

	// Doc id for a question without local progress is remembered too
	require.NoError(t, s.SetRemoteDocID(ctx, "q9", "doc-9"))
	known, err := s.GetProgress(ctx, "q9")
	require.NoError(t, err)
	assert.Equal(t, "doc-9", known.RemoteDocID)
}

func testClearProgress(t *testing.T, newStore Factory) {
	ctx := context.Background()
	s := open(t, newStore)

	first, err := s.UpsertProgress(ctx, &models.ProgressEntry{QuestionID: "q1", RepetitionCount: 1})
	require.NoError(t, err)
	require.NoError(t, s.SetRemoteDocID(ctx, "q1", "doc-1"))
	_, err = s.UpsertProgress(ctx, &models.ProgressEntry{QuestionID: "q2", RepetitionCount: 1})
	require.NoError(t, err)

	cleared, err := s.ClearProgress(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, cleared)

	_, err = s.GetProgress(ctx, "q1")
	assert.ErrorIs(t, err, storage.ErrProgressNotFound)
	all, err := s.ListProgress(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
	pending, err := s.PendingProgress(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)

	// Новый ответ не наследует забытый doc id, ревизии продолжают расти
	next, err := s.UpsertProgress(ctx, &models.ProgressEntry{QuestionID: "q1", RepetitionCount: 1})
	require.NoError(t, err)
	assert.Empty(t, next.RemoteDocID)
	assert.Greater(t, next.Revision, first.Revision)

	cleared, err = s.ClearProgress(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, cleared)
}

func testDiscardUserData(t *testing.T, newStore Factory) {
	ctx := context.Background()
	s := open(t, newStore)

	owner, err := storage.DataOwner(ctx, s)
	require.NoError(t, err)
	assert.Empty(t, owner)

	require.NoError(t, storage.SetDataOwner(ctx, s, "alice"))
	owner, err = storage.DataOwner(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, "alice", owner)

	for i := 0; i < 2; i++ {
		require.NoError(t, storage.AppendAnswer(ctx, s, &models.AnswerRecord{ID: fmt.Sprintf("a%d", i), QuestionID: "q1"}))
	}
	_, err = s.UpsertProgress(ctx, &models.ProgressEntry{QuestionID: "q1", RepetitionCount: 2})
	require.NoError(t, err)
	require.NoError(t, s.SaveCachedQuestion(ctx, &models.Question{ID: "q1", Payload: json.RawMessage(`{}`)}))

	answers, progress, err := storage.DiscardUserData(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, 2, answers)
	assert.Equal(t, 1, progress)

	pendingAnswers, pendingProgress, err := storage.PendingCounts(ctx, s)
	require.NoError(t, err)
	assert.Zero(t, pendingAnswers)
	assert.Zero(t, pendingProgress)

	owner, err = storage.DataOwner(ctx, s)
	require.NoError(t, err)
	assert.Empty(t, owner)

	// Кэш вопросов общий для всех пользователей
	_, err = s.GetCachedQuestion(ctx, "q1")
	assert.NoError(t, err)

	// Пустое хранилище очищается без ошибок
	answers, progress, err = storage.DiscardUserData(ctx, s)
	require.NoError(t, err)
	assert.Zero(t, answers)
	assert.Zero(t, progress)
}

func testQuestions(t *testing.T, newStore Factory) {
	ctx := context.Background()
	s := open(t, newStore)

	_, err := s.GetCachedQuestion(ctx, "q1")
	assert.ErrorIs(t, err, storage.ErrQuestionNotCached)

	q := &models.Question{ID: "q1", Payload: json.RawMessage(`{"prompt":"2+2"}`)}
	require.NoError(t, s.SaveCachedQuestion(ctx, q))
	require.NoError(t, s.SaveCachedQuestion(ctx, q))
	assert.Error(t, s.SaveCachedQuestion(ctx, &models.Question{}))

	got, err := s.GetCachedQuestion(ctx, "q1")
	require.NoError(t, err)
	assert.Equal(t, "q1", got.ID)
	assert.JSONEq(t, `{"prompt":"2+2"}`, string(got.Payload))
}

func testAuth(t *testing.T, newStore Factory) {
	ctx := context.Background()
	s := open(t, newStore)

	_, err := s.IDStatus(ctx)
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)

	ok, err := s.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.SaveAuth(ctx, &storage.AuthData{
		UserID:      "u-1",
		AccessToken: "token",
		ExpiresAt:   time.Now().Add(time.Hour).Unix(),
	}))

	id, err := s.IDStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u-1", id)

	ok, err = s.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, s.SaveAuth(ctx, &storage.AuthData{
		UserID:    "u-1",
		ExpiresAt: time.Now().Add(-time.Hour).Unix(),
	}))
	ok, err = s.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.DeleteAuth(ctx))
	assert.ErrorIs(t, s.DeleteAuth(ctx), storage.ErrAuthNotFound)
}

func testMetadata(t *testing.T, newStore Factory) {
	ctx := context.Background()
	s := open(t, newStore)

	ts, err := s.GetLastSyncTimestamp(ctx)
	require.NoError(t, err)
	assert.Zero(t, ts)

	require.NoError(t, s.SaveLastSyncTimestamp(ctx, 1760486400))
	ts, err = s.GetLastSyncTimestamp(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1760486400), ts)
}

func testClosed(t *testing.T, newStore Factory) {
	ctx := context.Background()
	s := newStore(t)
	require.NoError(t, s.Close())

	_, err := s.AppendToLog(ctx, "events", 1)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)

	_, err = s.PendingProgress(ctx)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)

	_, err = s.ClearProgress(ctx)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)

	// Повторное закрытие не должно падать
	assert.NoError(t, s.Close())
}
