package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	stdsync "sync"
	"time"

	"github.com/iudanet/sm2sync/internal/client/storage"
	"github.com/iudanet/sm2sync/internal/clock"
	"github.com/iudanet/sm2sync/internal/models"
	"github.com/iudanet/sm2sync/pkg/api"
)

//go:generate moq -out service_mock.go . Service RemoteStore

// DefaultRemoteTimeout bounds every remote call when no timeout is configured.
const DefaultRemoteTimeout = 30 * time.Second

// ErrNotLoggedIn is reported by a round when no user is stored on the device.
var ErrNotLoggedIn = errors.New("not logged in")

// Service определяет интерфейс для sync.Service
type Service interface {
	// SyncAll выгружает аналитику, затем прогресс. Каждый раунд выполняется независимо.
	SyncAll(ctx context.Context) *SyncResult

	// UploadAnalytics выгружает журнал ответов
	UploadAnalytics(ctx context.Context) RoundResult

	// UploadProgress выгружает очередь прогресса
	UploadProgress(ctx context.Context) RoundResult

	// GetPendingSyncCount возвращает количество записей, ожидающих синхронизации
	GetPendingSyncCount(ctx context.Context) (answers int, progress int, err error)
}

// RemoteStore is the part of the remote API used for uploads.
type RemoteStore interface {
	BulkInsertAnswers(ctx context.Context, accessToken string, req api.BulkInsertAnswersRequest) (*api.BulkInsertAnswersResponse, error)
	CreateProgress(ctx context.Context, accessToken, userID string, p api.Progress) (*api.CreateProgressResponse, error)
	UpdateProgress(ctx context.Context, accessToken, userID, docID string, p api.Progress) (*api.UpdateProgressResponse, error)
}

// RoundResult is the outcome of one upload round.
type RoundResult struct {
	Err      error // Err nil means the round succeeded and its snapshot was cleared
	Uploaded int   // Uploaded records acknowledged by the remote store
	Created  int   // Created progress documents created remotely
	Skipped  int   // Skipped undecodable analytics items or stale progress updates
}

// OK reports whether the round succeeded.
func (r RoundResult) OK() bool {
	return r.Err == nil
}

// SyncResult contains sync operation results
type SyncResult struct {
	Analytics RoundResult
	Progress  RoundResult
}

// OK reports whether both rounds succeeded.
func (r *SyncResult) OK() bool {
	return r.Analytics.OK() && r.Progress.OK()
}

// Err joins the errors of the failed rounds.
func (r *SyncResult) Err() error {
	var errs []error
	if r.Analytics.Err != nil {
		errs = append(errs, fmt.Errorf("analytics: %w", r.Analytics.Err))
	}
	if r.Progress.Err != nil {
		errs = append(errs, fmt.Errorf("progress: %w", r.Progress.Err))
	}
	return errors.Join(errs...)
}

// service handles synchronization between client and server
type service struct {
	remote  RemoteStore
	store   storage.LocalStore
	clock   clock.Clock
	logger  *slog.Logger
	timeout time.Duration
	mu      stdsync.Mutex
}

// NewService creates a new sync service.
// A non-positive timeout selects DefaultRemoteTimeout.
func NewService(remote RemoteStore, store storage.LocalStore, clk clock.Clock, timeout time.Duration, logger *slog.Logger) Service {
	if timeout <= 0 {
		timeout = DefaultRemoteTimeout
	}
	return &service{
		remote:  remote,
		store:   store,
		clock:   clk,
		timeout: timeout,
		logger:  logger,
	}
}

// SyncAll выполняет оба раунда последовательно.
// Параллельные вызовы сериализуются; ошибка одного раунда не отменяет другой.
func (s *service) SyncAll(ctx context.Context) *SyncResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logger.Info("Starting synchronization")

	result := &SyncResult{
		Analytics: s.uploadAnalytics(ctx),
		Progress:  s.uploadProgress(ctx),
	}

	if result.OK() {
		// Сохраняем время последней успешной синхронизации
		if err := s.store.SaveLastSyncTimestamp(ctx, s.clock.Now().Unix()); err != nil {
			s.logger.Warn("Failed to save last sync timestamp", "error", err)
		}
	}

	s.logger.Info("Synchronization completed",
		"analytics_uploaded", result.Analytics.Uploaded,
		"analytics_ok", result.Analytics.OK(),
		"progress_uploaded", result.Progress.Uploaded,
		"progress_created", result.Progress.Created,
		"progress_ok", result.Progress.OK())

	return result
}

// UploadAnalytics выгружает журнал ответов
func (s *service) UploadAnalytics(ctx context.Context) RoundResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.uploadAnalytics(ctx)
}

// UploadProgress выгружает очередь прогресса
func (s *service) UploadProgress(ctx context.Context) RoundResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.uploadProgress(ctx)
}

// uploadAnalytics: снимок журнала выгружается пачками по api.MaxBulkRecords.
// После каждой подтверждённой пачки журнал усекается до её последнего номера,
// поэтому сбой на середине не заставляет выгружать уже принятое заново.
// Ответы, записанные во время выгрузки, имеют больший номер и остаются в журнале.
func (s *service) uploadAnalytics(ctx context.Context) RoundResult {
	var result RoundResult

	snap, skipped, err := storage.SnapshotAnswers(ctx, s.store)
	if err != nil {
		result.Err = err
		s.logger.Error("Analytics upload failed", "error", err)
		return result
	}
	result.Skipped = skipped

	if snap.UpTo == 0 {
		s.logger.Debug("Analytics log is empty")
		return result
	}

	if len(snap.Records) > 0 {
		token, err := s.accessToken(ctx)
		if err != nil {
			result.Err = err
			return result
		}

		for start := 0; start < len(snap.Records); start += api.MaxBulkRecords {
			end := min(start+api.MaxBulkRecords, len(snap.Records))
			if err := s.uploadAnswerChunk(ctx, token, snap.Records[start:end], &result); err != nil {
				result.Err = err
				s.logger.Warn("Analytics upload failed, rest of the log kept",
					"uploaded", result.Uploaded,
					"pending", len(snap.Records)-start,
					"error", err)
				return result
			}

			upTo := snap.Seqs[end-1]
			if end == len(snap.Records) {
				// Последняя пачка закрывает весь снимок вместе с повреждёнными элементами
				upTo = snap.UpTo
			}
			if _, err := s.store.TruncateLog(ctx, storage.AnalyticsLog, upTo); err != nil {
				// Данные уже на сервере; повторная выгрузка будет проигнорирована по id
				result.Err = fmt.Errorf("failed to truncate analytics log: %w", err)
				s.logger.Error("Failed to truncate analytics log", "error", err)
				return result
			}
		}

		if skipped > 0 {
			s.logger.Warn("Dropped undecodable analytics items", "count", skipped)
		}
		return result
	}

	// В снимке только повреждённые элементы
	s.logger.Warn("Dropping undecodable analytics items", "count", skipped)
	if _, err := s.store.TruncateLog(ctx, storage.AnalyticsLog, snap.UpTo); err != nil {
		result.Err = fmt.Errorf("failed to truncate analytics log: %w", err)
		s.logger.Error("Failed to truncate analytics log", "error", err)
	}

	return result
}

// uploadAnswerChunk отправляет одну пачку. Записи, отклонённые сервером
// (чужой пользователь, невалидные данные), больше не принимаются и считаются пропущенными.
func (s *service) uploadAnswerChunk(ctx context.Context, token string, records []*models.AnswerRecord, result *RoundResult) error {
	req := api.BulkInsertAnswersRequest{Records: make([]api.AnswerRecord, 0, len(records))}
	for _, rec := range records {
		req.Records = append(req.Records, toAPIAnswer(rec))
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	resp, err := s.remote.BulkInsertAnswers(callCtx, token, req)
	cancel()
	if err != nil {
		return fmt.Errorf("bulk insert failed: %w", err)
	}

	result.Uploaded += resp.Accepted + resp.Duplicates
	result.Skipped += resp.Rejected
	if resp.Rejected > 0 {
		s.logger.Warn("Server rejected analytics records", "count", resp.Rejected)
	}
	s.logger.Info("Analytics uploaded",
		"count", len(records),
		"accepted", resp.Accepted,
		"duplicates", resp.Duplicates)
	return nil
}

// uploadProgress: снимок очереди прогресса; create для записей без удалённого id,
// update для остальных. Очередь очищается только если все записи приняты.
func (s *service) uploadProgress(ctx context.Context) RoundResult {
	var result RoundResult

	snapshot, err := s.store.PendingProgress(ctx)
	if err != nil {
		result.Err = err
		s.logger.Error("Progress upload failed", "error", err)
		return result
	}
	if len(snapshot) == 0 {
		s.logger.Debug("Progress log is empty")
		return result
	}

	userID, err := s.store.IDStatus(ctx)
	if err != nil {
		result.Err = s.authError(err)
		return result
	}
	token, err := s.accessToken(ctx)
	if err != nil {
		result.Err = err
		return result
	}

	var errs []error
	for _, entry := range snapshot {
		err := s.uploadEntry(ctx, token, userID, entry, &result)
		if err == nil {
			continue
		}

		errs = append(errs, fmt.Errorf("question %s: %w", entry.QuestionID, err))
		s.logger.Warn("Progress entry upload failed",
			"question_id", entry.QuestionID,
			"error", err)

		if !errors.Is(err, errRejectedEntry) {
			// Сервер недоступен - остальные записи пробовать бессмысленно
			break
		}
	}

	if len(errs) > 0 {
		result.Err = errors.Join(errs...)
		return result
	}

	removed, err := s.store.RemovePendingProgress(ctx, snapshot)
	if err != nil {
		result.Err = fmt.Errorf("failed to clear progress log: %w", err)
		s.logger.Error("Failed to clear progress log", "error", err)
		return result
	}

	s.logger.Info("Progress uploaded",
		"count", len(snapshot),
		"created", result.Created,
		"stale", result.Skipped,
		"cleared", removed)

	return result
}

// errRejectedEntry marks a per-entry failure that does not stop the round.
var errRejectedEntry = errors.New("entry rejected")

func (s *service) uploadEntry(ctx context.Context, token, userID string, entry *models.ProgressEntry, result *RoundResult) error {
	p := toAPIProgress(entry)

	if entry.RemoteDocID != "" {
		callCtx, cancel := context.WithTimeout(ctx, s.timeout)
		resp, err := s.remote.UpdateProgress(callCtx, token, userID, entry.RemoteDocID, p)
		cancel()
		if err != nil {
			return classify(err)
		}
		if !resp.Applied {
			// На сервере более свежая запись (ответ с другого устройства)
			result.Skipped++
		}
		result.Uploaded++
		return nil
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	resp, err := s.remote.CreateProgress(callCtx, token, userID, p)
	cancel()
	if err != nil {
		return classify(err)
	}

	// Сохраняем id сразу: при сбое дальше следующая попытка сделает update, а не create
	if err := s.store.SetRemoteDocID(ctx, entry.QuestionID, resp.DocID); err != nil {
		return fmt.Errorf("failed to save remote doc id: %w", err)
	}
	entry.RemoteDocID = resp.DocID

	result.Created++
	result.Uploaded++
	return nil
}

// GetPendingSyncCount возвращает количество записей, ожидающих синхронизации
func (s *service) GetPendingSyncCount(ctx context.Context) (int, int, error) {
	answers, progress, err := storage.PendingCounts(ctx, s.store)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count pending entries: %w", err)
	}
	return answers, progress, nil
}

func (s *service) accessToken(ctx context.Context) (string, error) {
	auth, err := s.store.GetAuth(ctx)
	if err != nil {
		return "", s.authError(err)
	}
	return auth.AccessToken, nil
}

func (s *service) authError(err error) error {
	if errors.Is(err, storage.ErrAuthNotFound) {
		return ErrNotLoggedIn
	}
	return fmt.Errorf("failed to read credentials: %w", err)
}
