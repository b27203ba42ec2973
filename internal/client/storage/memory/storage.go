// Package memory is an in-process LocalStore.
// It is used when the on-device database cannot be opened: the session keeps working,
// but nothing survives a restart.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/iudanet/sm2sync/internal/client/storage"
	"github.com/iudanet/sm2sync/internal/models"
)

// Compile-time check that Storage implements LocalStore
var _ storage.LocalStore = (*Storage)(nil)

type memLog struct {
	items   []storage.LogItem
	nextSeq uint64
}

// Storage keeps everything in maps guarded by one mutex.
type Storage struct {
	kv        map[string][]byte
	logs      map[string]*memLog
	pending   map[string]*models.ProgressEntry
	known     map[string]*models.ProgressEntry
	questions map[string]*models.Question
	auth      *storage.AuthData
	revision  uint64
	lastSync  int64
	mu        sync.Mutex
	closed    bool
}

// New creates an empty in-memory storage.
func New() *Storage {
	return &Storage{
		kv:        make(map[string][]byte),
		logs:      make(map[string]*memLog),
		pending:   make(map[string]*models.ProgressEntry),
		known:     make(map[string]*models.ProgressEntry),
		questions: make(map[string]*models.Question),
	}
}

// Durable is always false.
func (s *Storage) Durable() bool {
	return false
}

// Close marks the storage closed.
func (s *Storage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	return nil
}

func (s *Storage) lock() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return storage.ErrStorageClosed
	}
	return nil
}

// Get decodes the value stored under key into dst.
func (s *Storage) Get(ctx context.Context, key string, dst any) (bool, error) {
	if err := s.lock(); err != nil {
		return false, err
	}
	data, ok := s.kv[key]
	s.mu.Unlock()

	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, nil
	}
	return true, nil
}

// Set stores value under key; nil clears the key.
func (s *Storage) Set(ctx context.Context, key string, value any) error {
	if storage.IsNil(value) {
		return s.Clear(ctx, key)
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for %q: %w", key, err)
	}

	if err := s.lock(); err != nil {
		return err
	}
	defer s.mu.Unlock()

	s.kv[key] = data
	return nil
}

// Clear removes key.
func (s *Storage) Clear(ctx context.Context, key string) error {
	if err := s.lock(); err != nil {
		return err
	}
	defer s.mu.Unlock()

	delete(s.kv, key)
	return nil
}

// AppendToLog appends item to the named log.
func (s *Storage) AppendToLog(ctx context.Context, logName string, item any) (uint64, error) {
	if logName == "" {
		return 0, storage.ErrInvalidLogName
	}

	data, err := json.Marshal(item)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal log item: %w", err)
	}

	if err := s.lock(); err != nil {
		return 0, err
	}
	defer s.mu.Unlock()

	l, ok := s.logs[logName]
	if !ok {
		l = &memLog{}
		s.logs[logName] = l
	}
	l.nextSeq++
	l.items = append(l.items, storage.LogItem{Seq: l.nextSeq, Data: data})

	return l.nextSeq, nil
}

// ReadLog returns a snapshot of the named log.
func (s *Storage) ReadLog(ctx context.Context, logName string) (*storage.LogSnapshot, error) {
	if logName == "" {
		return nil, storage.ErrInvalidLogName
	}

	if err := s.lock(); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	snap := &storage.LogSnapshot{}
	l, ok := s.logs[logName]
	if !ok || len(l.items) == 0 {
		return snap, nil
	}

	snap.Items = make([]storage.LogItem, len(l.items))
	copy(snap.Items, l.items)
	snap.UpTo = l.items[len(l.items)-1].Seq

	return snap, nil
}

// TruncateLog removes items with sequence <= upTo.
func (s *Storage) TruncateLog(ctx context.Context, logName string, upTo uint64) (int, error) {
	if logName == "" {
		return 0, storage.ErrInvalidLogName
	}

	if err := s.lock(); err != nil {
		return 0, err
	}
	defer s.mu.Unlock()

	l, ok := s.logs[logName]
	if !ok {
		return 0, nil
	}

	i := sort.Search(len(l.items), func(i int) bool { return l.items[i].Seq > upTo })
	l.items = append([]storage.LogItem(nil), l.items[i:]...)

	return i, nil
}

// UpsertProgress stores entry as known state and pending upload of its question.
func (s *Storage) UpsertProgress(ctx context.Context, entry *models.ProgressEntry) (*models.ProgressEntry, error) {
	if entry == nil || entry.QuestionID == "" {
		return nil, fmt.Errorf("progress entry must have a question id")
	}

	if err := s.lock(); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	stored := entry.Clone()
	if stored.RemoteDocID == "" {
		if prev, ok := s.known[stored.QuestionID]; ok {
			stored.RemoteDocID = prev.RemoteDocID
		}
	}
	s.revision++
	stored.Revision = s.revision

	s.pending[stored.QuestionID] = stored
	s.known[stored.QuestionID] = stored.Clone()

	return stored.Clone(), nil
}

// GetProgress returns the known state of a question.
func (s *Storage) GetProgress(ctx context.Context, questionID string) (*models.ProgressEntry, error) {
	if err := s.lock(); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	entry, ok := s.known[questionID]
	if !ok {
		return nil, storage.ErrProgressNotFound
	}
	return entry.Clone(), nil
}

// ListProgress returns the known state of every answered question.
func (s *Storage) ListProgress(ctx context.Context) ([]*models.ProgressEntry, error) {
	if err := s.lock(); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	return cloneSorted(s.known), nil
}

// PendingProgress returns a snapshot of the pending progress log.
func (s *Storage) PendingProgress(ctx context.Context) ([]*models.ProgressEntry, error) {
	if err := s.lock(); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	return cloneSorted(s.pending), nil
}

// SetRemoteDocID records the remote identity of a question's progress.
func (s *Storage) SetRemoteDocID(ctx context.Context, questionID, docID string) error {
	if questionID == "" || docID == "" {
		return fmt.Errorf("question id and doc id are required")
	}

	if err := s.lock(); err != nil {
		return err
	}
	defer s.mu.Unlock()

	entry, ok := s.known[questionID]
	if !ok {
		entry = &models.ProgressEntry{QuestionID: questionID}
		s.known[questionID] = entry
	}
	entry.RemoteDocID = docID

	if p, ok := s.pending[questionID]; ok {
		p.RemoteDocID = docID
	}
	return nil
}

// RemovePendingProgress removes pending entries unchanged since snapshot.
func (s *Storage) RemovePendingProgress(ctx context.Context, snapshot []*models.ProgressEntry) (int, error) {
	if err := s.lock(); err != nil {
		return 0, err
	}
	defer s.mu.Unlock()

	removed := 0
	for _, uploaded := range snapshot {
		current, ok := s.pending[uploaded.QuestionID]
		if !ok || current.Revision != uploaded.Revision {
			continue
		}
		delete(s.pending, uploaded.QuestionID)
		removed++
	}
	return removed, nil
}

// ClearProgress forgets known and pending progress of every question.
func (s *Storage) ClearProgress(ctx context.Context) (int, error) {
	if err := s.lock(); err != nil {
		return 0, err
	}
	defer s.mu.Unlock()

	cleared := len(s.known)
	s.known = make(map[string]*models.ProgressEntry)
	s.pending = make(map[string]*models.ProgressEntry)
	return cleared, nil
}

// GetCachedQuestion returns a cached question.
func (s *Storage) GetCachedQuestion(ctx context.Context, id string) (*models.Question, error) {
	if err := s.lock(); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	q, ok := s.questions[id]
	if !ok {
		return nil, storage.ErrQuestionNotCached
	}
	c := *q
	return &c, nil
}

// SaveCachedQuestion stores a question under its id.
func (s *Storage) SaveCachedQuestion(ctx context.Context, q *models.Question) error {
	if q == nil || q.ID == "" {
		return fmt.Errorf("question must have an id")
	}

	if err := s.lock(); err != nil {
		return err
	}
	defer s.mu.Unlock()

	c := *q
	s.questions[q.ID] = &c
	return nil
}

// SaveAuth stores authentication data.
func (s *Storage) SaveAuth(ctx context.Context, auth *storage.AuthData) error {
	if auth == nil {
		return fmt.Errorf("auth data is nil")
	}

	if err := s.lock(); err != nil {
		return err
	}
	defer s.mu.Unlock()

	c := *auth
	s.auth = &c
	return nil
}

// GetAuth retrieves stored authentication data.
func (s *Storage) GetAuth(ctx context.Context) (*storage.AuthData, error) {
	if err := s.lock(); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	if s.auth == nil {
		return nil, storage.ErrAuthNotFound
	}
	c := *s.auth
	return &c, nil
}

// DeleteAuth removes stored authentication data.
func (s *Storage) DeleteAuth(ctx context.Context) error {
	if err := s.lock(); err != nil {
		return err
	}
	defer s.mu.Unlock()

	if s.auth == nil {
		return storage.ErrAuthNotFound
	}
	s.auth = nil
	return nil
}

// IsAuthenticated checks if valid authentication exists.
func (s *Storage) IsAuthenticated(ctx context.Context) (bool, error) {
	auth, err := s.GetAuth(ctx)
	if err != nil {
		if err == storage.ErrAuthNotFound {
			return false, nil
		}
		return false, err
	}
	if auth.ExpiresAt != 0 && time.Now().Unix() > auth.ExpiresAt {
		return false, nil
	}
	return true, nil
}

// IDStatus returns the id of the logged in user.
func (s *Storage) IDStatus(ctx context.Context) (string, error) {
	auth, err := s.GetAuth(ctx)
	if err != nil {
		return "", err
	}
	if auth.UserID == "" {
		return "", storage.ErrAuthNotFound
	}
	return auth.UserID, nil
}

// SaveLastSyncTimestamp saves the time of the last successful sync.
func (s *Storage) SaveLastSyncTimestamp(ctx context.Context, timestamp int64) error {
	if err := s.lock(); err != nil {
		return err
	}
	defer s.mu.Unlock()

	s.lastSync = timestamp
	return nil
}

// GetLastSyncTimestamp returns the time of the last successful sync, 0 if none.
func (s *Storage) GetLastSyncTimestamp(ctx context.Context) (int64, error) {
	if err := s.lock(); err != nil {
		return 0, err
	}
	defer s.mu.Unlock()

	return s.lastSync, nil
}

func cloneSorted(m map[string]*models.ProgressEntry) []*models.ProgressEntry {
	entries := make([]*models.ProgressEntry, 0, len(m))
	for _, e := range m {
		entries = append(entries, e.Clone())
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].QuestionID < entries[j].QuestionID
	})
	return entries
}
