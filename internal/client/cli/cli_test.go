package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	stdsync "sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/sm2sync/internal/client/iocli"
	"github.com/iudanet/sm2sync/internal/client/progress"
	"github.com/iudanet/sm2sync/internal/client/questions"
	"github.com/iudanet/sm2sync/internal/client/storage"
	"github.com/iudanet/sm2sync/internal/client/storage/memory"
	"github.com/iudanet/sm2sync/internal/client/sync"
	"github.com/iudanet/sm2sync/internal/clock"
	"github.com/iudanet/sm2sync/internal/config"
	"github.com/iudanet/sm2sync/internal/models"
	"github.com/iudanet/sm2sync/pkg/api"
)

var testNow = time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

type testEnv struct {
	cli       *Cli
	out       *bytes.Buffer
	store     *memory.Storage
	clock     *clock.Fixed
	remote    *RemoteMock
	questions *questions.RemoteMock
	sync      *sync.ServiceMock
}

func newTestEnv(t *testing.T, input string) *testEnv {
	t.Helper()

	env := &testEnv{
		out:   &bytes.Buffer{},
		store: memory.New(),
		clock: clock.NewFixed(testNow),
		remote: &RemoteMock{
			HealthFunc: func(ctx context.Context) (*api.HealthResponse, error) {
				return &api.HealthResponse{Status: "ok"}, nil
			},
		},
		questions: &questions.RemoteMock{},
		sync:      &sync.ServiceMock{},
	}
	t.Cleanup(func() { _ = env.store.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	env.cli = New(Deps{
		IO:          iocli.New(strings.NewReader(input), env.out),
		Store:       env.store,
		Remote:      env.remote,
		Recorder:    progress.NewRecorder(env.store, env.clock, logger),
		Questions:   questions.NewCache(env.questions, env.store, time.Second, logger),
		SyncService: env.sync,
		Clock:       env.clock,
		Logger:      logger,
		Config:      &config.ClientConfig{RemoteTimeout: time.Second},
	})
	return env
}

func (e *testEnv) login(t *testing.T, userID string) {
	t.Helper()
	require.NoError(t, e.store.SaveAuth(context.Background(), &storage.AuthData{
		UserID:      userID,
		AccessToken: "token-" + userID,
	}))
}

func signToken(t *testing.T, subject string, expiresAt time.Time) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestGetAccessToken_Priority(t *testing.T) {
	env := newTestEnv(t, "from-prompt\n")

	tokenFile := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(tokenFile, []byte("  from-file\n"), 0o600))

	token, err := env.cli.getAccessToken(Tokens{FromFile: tokenFile, FromArgs: "from-args"})
	require.NoError(t, err)
	assert.Equal(t, "from-file", token)

	token, err = env.cli.getAccessToken(Tokens{FromArgs: "from-args"})
	require.NoError(t, err)
	assert.Equal(t, "from-args", token)

	token, err = env.cli.getAccessToken(Tokens{})
	require.NoError(t, err)
	assert.Equal(t, "from-prompt", token)

	t.Setenv(TokenEnvVar, "from-env")
	token, err = env.cli.getAccessToken(Tokens{FromFile: tokenFile, FromArgs: "from-args"})
	require.NoError(t, err)
	assert.Equal(t, "from-env", token)
}

func TestGetAccessToken_Errors(t *testing.T) {
	env := newTestEnv(t, "\n")

	_, err := env.cli.getAccessToken(Tokens{FromFile: filepath.Join(t.TempDir(), "missing")})
	assert.Error(t, err)

	empty := filepath.Join(t.TempDir(), "empty")
	require.NoError(t, os.WriteFile(empty, []byte("\n"), 0o600))
	_, err = env.cli.getAccessToken(Tokens{FromFile: empty})
	assert.ErrorContains(t, err, "empty")

	_, err = env.cli.getAccessToken(Tokens{})
	assert.ErrorContains(t, err, "cannot be empty")
}

func TestLogin_Success(t *testing.T) {
	env := newTestEnv(t, "")
	expires := testNow.Add(24 * time.Hour)
	token := signToken(t, "user-1", expires)

	err := env.cli.runLogin(context.Background(), loginOptions{Tokens: Tokens{FromArgs: token}})
	require.NoError(t, err)

	auth, err := env.store.GetAuth(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "user-1", auth.UserID)
	assert.Equal(t, token, auth.AccessToken)
	assert.Equal(t, expires.Unix(), auth.ExpiresAt)

	assert.Len(t, env.remote.HealthCalls(), 1)
	assert.Contains(t, env.out.String(), "Login successful")
	assert.Contains(t, env.out.String(), "User ID: user-1")
}

func TestLogin_PromptThroughIO(t *testing.T) {
	env := newTestEnv(t, "")
	token := signToken(t, "user-2", testNow.Add(time.Hour))

	console := &iocli.IOMock{
		PrintlnFunc: func(a ...any) {},
		PrintfFunc:  func(format string, a ...any) {},
		ReadPasswordFunc: func(prompt string) (string, error) {
			return token, nil
		},
	}
	env.cli.io = console

	require.NoError(t, env.cli.runLogin(context.Background(), loginOptions{Offline: true}))

	require.Len(t, console.ReadPasswordCalls(), 1)
	assert.Equal(t, "Access token: ", console.ReadPasswordCalls()[0].Prompt)
	assert.Empty(t, env.remote.HealthCalls())

	userID, err := env.store.IDStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "user-2", userID)
}

func TestLogin_ServerUnreachableStillSaves(t *testing.T) {
	env := newTestEnv(t, "")
	env.remote.HealthFunc = func(ctx context.Context) (*api.HealthResponse, error) {
		return nil, errors.New("connection refused")
	}
	token := signToken(t, "user-1", testNow.Add(time.Hour))

	require.NoError(t, env.cli.runLogin(context.Background(), loginOptions{Tokens: Tokens{FromArgs: token}}))

	assert.Contains(t, env.out.String(), "not reachable")
	ok, err := env.store.IsAuthenticated(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLogin_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		token   func(t *testing.T) string
		userID  string
		wantErr string
	}{
		{
			name:    "malformed",
			token:   func(t *testing.T) string { return "not-a-jwt" },
			wantErr: "malformed",
		},
		{
			name:    "expired",
			token:   func(t *testing.T) string { return signToken(t, "user-1", testNow.Add(-time.Minute)) },
			wantErr: "expired",
		},
		{
			name:    "other user",
			token:   func(t *testing.T) string { return signToken(t, "user-1", testNow.Add(time.Hour)) },
			userID:  "user-2",
			wantErr: "belongs to user user-1",
		},
		{
			name:    "no subject",
			token:   func(t *testing.T) string { return signToken(t, "", testNow.Add(time.Hour)) },
			wantErr: "--user",
		},
		{
			name:    "invalid user id",
			token:   func(t *testing.T) string { return signToken(t, "", testNow.Add(time.Hour)) },
			userID:  "bad user",
			wantErr: "user id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, "")
			err := env.cli.runLogin(context.Background(), loginOptions{
				Tokens:  Tokens{FromArgs: tt.token(t)},
				UserID:  tt.userID,
				Offline: true,
			})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)

			ok, err := env.store.IsAuthenticated(context.Background())
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func (e *testEnv) loginAs(t *testing.T, userID string, force bool) error {
	t.Helper()
	return e.cli.runLogin(context.Background(), loginOptions{
		Tokens:  Tokens{FromArgs: signToken(t, userID, testNow.Add(time.Hour))},
		Offline: true,
		Force:   force,
	})
}

func TestLogin_OtherUserRefusedWithPending(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, "")
	env.login(t, "user-1")
	_, err := env.cli.recorder.Record(ctx, "q1", 4)
	require.NoError(t, err)

	err = env.loginAs(t, "user-2", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "of user user-1 are not synchronized")

	auth, err := env.store.GetAuth(ctx)
	require.NoError(t, err)
	assert.Equal(t, "user-1", auth.UserID)

	answers, pending, err := storage.PendingCounts(ctx, env.store)
	require.NoError(t, err)
	assert.Equal(t, 1, answers)
	assert.Equal(t, 1, pending)
}

// После logout --force чужие ответы не уходят на сервер под новым пользователем
func TestLogin_OtherUserAfterForcedLogout(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, "")

	require.NoError(t, env.loginAs(t, "alice", false))
	_, err := env.cli.recorder.Record(ctx, "q1", 5)
	require.NoError(t, err)
	require.NoError(t, env.store.SetRemoteDocID(ctx, "q1", "doc-alice"))

	require.NoError(t, env.cli.runLogout(ctx, true))
	assert.Contains(t, env.out.String(), "are kept")

	err = env.loginAs(t, "bob", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")

	require.NoError(t, env.loginAs(t, "bob", true))
	assert.Contains(t, env.out.String(), "Discarded 1 unsynchronized answer(s) of user alice")

	answers, pending, err := storage.PendingCounts(ctx, env.store)
	require.NoError(t, err)
	assert.Zero(t, answers)
	assert.Zero(t, pending)

	_, err = env.store.GetProgress(ctx, "q1")
	assert.ErrorIs(t, err, storage.ErrProgressNotFound)

	owner, err := storage.DataOwner(ctx, env.store)
	require.NoError(t, err)
	assert.Equal(t, "bob", owner)

	// Первый ответ bob начинает расписание заново и без чужого документа
	rec, err := env.cli.recorder.Record(ctx, "q1", 4)
	require.NoError(t, err)
	assert.Equal(t, "bob", rec.Answer.UserID)
	assert.Equal(t, 1, rec.Progress.RepetitionCount)
	assert.Empty(t, rec.Progress.RemoteDocID)
}

func TestLogin_SameUserAfterForcedLogoutKeepsData(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, "")

	require.NoError(t, env.loginAs(t, "alice", false))
	_, err := env.cli.recorder.Record(ctx, "q1", 5)
	require.NoError(t, err)
	require.NoError(t, env.cli.runLogout(ctx, true))

	require.NoError(t, env.loginAs(t, "alice", false))

	answers, pending, err := storage.PendingCounts(ctx, env.store)
	require.NoError(t, err)
	assert.Equal(t, 1, answers)
	assert.Equal(t, 1, pending)
}

func TestLogin_OtherUserDropsSyncedProgress(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, "")

	require.NoError(t, env.loginAs(t, "alice", false))
	_, err := env.store.UpsertProgress(ctx, &models.ProgressEntry{QuestionID: "q2", RepetitionCount: 3, RemoteDocID: "doc-2"})
	require.NoError(t, err)
	pending, err := env.store.PendingProgress(ctx)
	require.NoError(t, err)
	_, err = env.store.RemovePendingProgress(ctx, pending)
	require.NoError(t, err)
	require.NoError(t, env.cli.runLogout(ctx, false))

	// Всё синхронизировано: --force не нужен, но расписание alice удаляется
	require.NoError(t, env.loginAs(t, "bob", false))
	assert.Contains(t, env.out.String(), "Local progress of user alice removed (1 question(s))")

	all, err := env.store.ListProgress(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestLogout(t *testing.T) {
	t.Run("not logged in", func(t *testing.T) {
		env := newTestEnv(t, "")
		require.NoError(t, env.cli.runLogout(context.Background(), false))
		assert.Contains(t, env.out.String(), "Not logged in")
	})

	t.Run("clean", func(t *testing.T) {
		env := newTestEnv(t, "")
		env.login(t, "user-1")
		require.NoError(t, env.cli.runLogout(context.Background(), false))
		assert.Contains(t, env.out.String(), "Logout successful")

		ok, err := env.store.IsAuthenticated(context.Background())
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("pending data needs force", func(t *testing.T) {
		env := newTestEnv(t, "")
		env.login(t, "user-1")
		_, err := env.cli.recorder.Record(context.Background(), "q1", 3)
		require.NoError(t, err)

		err = env.cli.runLogout(context.Background(), false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not synchronized")

		require.NoError(t, env.cli.runLogout(context.Background(), true))
		ok, err := env.store.IsAuthenticated(context.Background())
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestAnswer(t *testing.T) {
	env := newTestEnv(t, "")
	env.login(t, "user-1")

	require.NoError(t, env.cli.runAnswer(context.Background(), "q1", "5"))
	out := env.out.String()
	assert.Contains(t, out, "repetition 1")
	assert.Contains(t, out, "Next review: 2026-03-11 (in 1 day(s))")
	assert.Contains(t, out, "will be lost on exit")

	env.out.Reset()
	require.NoError(t, env.cli.runAnswer(context.Background(), "q1", "5"))
	assert.Contains(t, env.out.String(), "Next review: 2026-03-16 (in 6 day(s))")

	snap, err := env.store.ReadLog(context.Background(), storage.AnswerLog)
	require.NoError(t, err)
	assert.Len(t, snap.Items, 2)
}

func TestAnswer_Errors(t *testing.T) {
	env := newTestEnv(t, "")

	err := env.cli.runAnswer(context.Background(), "q1", "5")
	assert.ErrorIs(t, err, progress.ErrNotLoggedIn)

	env.login(t, "user-1")
	assert.ErrorContains(t, env.cli.runAnswer(context.Background(), "q1", "five"), "quality must be a number")
	assert.Error(t, env.cli.runAnswer(context.Background(), "q1", "6"))
	assert.Error(t, env.cli.runAnswer(context.Background(), "", "3"))
}

func TestDue(t *testing.T) {
	env := newTestEnv(t, "")
	env.login(t, "user-1")

	require.NoError(t, env.cli.runDue(context.Background()))
	assert.Contains(t, env.out.String(), "Nothing to review")

	_, err := env.cli.recorder.Record(context.Background(), "q-old", 4)
	require.NoError(t, err)
	env.clock.Advance(72 * time.Hour)
	_, err = env.cli.recorder.Record(context.Background(), "q-new", 4)
	require.NoError(t, err)

	env.out.Reset()
	require.NoError(t, env.cli.runDue(context.Background()))
	out := env.out.String()
	assert.Contains(t, out, "1 question(s) to review")
	assert.Contains(t, out, "q-old")
	assert.Contains(t, out, "overdue 2 day(s)")
	assert.NotContains(t, out, "q-new")
}

func TestQuestion(t *testing.T) {
	env := newTestEnv(t, "")
	env.login(t, "user-1")
	env.questions.GetQuestionFunc = func(ctx context.Context, accessToken, id string) (*api.Question, error) {
		assert.Equal(t, "token-user-1", accessToken)
		return &api.Question{ID: id, Payload: json.RawMessage(`{"text":"2+2?","answers":["4"]}`)}, nil
	}

	require.NoError(t, env.cli.runQuestion(context.Background(), "q1"))
	require.NoError(t, env.cli.runQuestion(context.Background(), "q1"))

	assert.Len(t, env.questions.GetQuestionCalls(), 1)
	out := env.out.String()
	assert.Contains(t, out, "Question q1")
	assert.Contains(t, out, "  \"text\": \"2+2?\"")
}

func TestQuestion_Error(t *testing.T) {
	env := newTestEnv(t, "")
	env.questions.GetQuestionFunc = func(ctx context.Context, accessToken, id string) (*api.Question, error) {
		return nil, errors.New("boom")
	}

	err := env.cli.runQuestion(context.Background(), "q1")
	assert.ErrorContains(t, err, "boom")
}

func TestSync(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		env := newTestEnv(t, "")
		env.sync.SyncAllFunc = func(ctx context.Context) *sync.SyncResult {
			return &sync.SyncResult{
				Analytics: sync.RoundResult{Uploaded: 3},
				Progress:  sync.RoundResult{Uploaded: 2, Created: 1},
			}
		}

		require.NoError(t, env.cli.runSync(context.Background()))
		out := env.out.String()
		assert.Contains(t, out, "Answers:  3 uploaded")
		assert.Contains(t, out, "Progress: 2 uploaded, 1 created")
		assert.Contains(t, out, "completed successfully")
	})

	t.Run("failed round", func(t *testing.T) {
		env := newTestEnv(t, "")
		env.sync.SyncAllFunc = func(ctx context.Context) *sync.SyncResult {
			return &sync.SyncResult{
				Analytics: sync.RoundResult{Uploaded: 1},
				Progress:  sync.RoundResult{Err: errors.New("server down")},
			}
		}

		err := env.cli.runSync(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server down")
		assert.Contains(t, env.out.String(), "Progress: failed: server down")
	})
}

func TestSyncEvery_StopsOnCancel(t *testing.T) {
	env := newTestEnv(t, "")

	var mu stdsync.Mutex
	calls := 0
	ran := make(chan struct{}, 1)
	env.sync.SyncAllFunc = func(ctx context.Context) *sync.SyncResult {
		mu.Lock()
		calls++
		mu.Unlock()
		select {
		case ran <- struct{}{}:
		default:
		}
		return &sync.SyncResult{}
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- env.cli.runSyncEvery(ctx, time.Hour) }()

	select {
	case <-ran:
	case <-time.After(5 * time.Second):
		t.Fatal("sync did not run")
	}
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("runSyncEvery did not return")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, calls)
}

func TestStatus(t *testing.T) {
	t.Run("not logged in", func(t *testing.T) {
		env := newTestEnv(t, "")
		env.sync.GetPendingSyncCountFunc = func(ctx context.Context) (int, int, error) { return 0, 0, nil }

		require.NoError(t, env.cli.runStatus(context.Background(), false))
		out := env.out.String()
		assert.Contains(t, out, "Not logged in")
		assert.Contains(t, out, "All answers synchronized")
		assert.Contains(t, out, "Last sync: never")
	})

	t.Run("pending and remote", func(t *testing.T) {
		env := newTestEnv(t, "")
		env.login(t, "user-1")
		require.NoError(t, env.store.SaveLastSyncTimestamp(context.Background(), testNow.Unix()))
		env.sync.GetPendingSyncCountFunc = func(ctx context.Context) (int, int, error) { return 2, 1, nil }
		env.remote.ListProgressFunc = func(ctx context.Context, accessToken, userID string) (*api.ListProgressResponse, error) {
			assert.Equal(t, "user-1", userID)
			return &api.ListProgressResponse{Progress: make([]api.Progress, 4)}, nil
		}

		require.NoError(t, env.cli.runStatus(context.Background(), true))
		out := env.out.String()
		assert.Contains(t, out, "User ID: user-1")
		assert.Contains(t, out, "Pending sync: 2 answer(s), 1 progress record(s)")
		assert.Contains(t, out, "Last sync: 2026-03-10T09:30:00Z")
		assert.Contains(t, out, "Questions tracked on server: 4")
	})
}

// fakeServer принимает ответы и прогресс так же, как настоящий сервер
type fakeServer struct {
	answers  map[string]api.AnswerRecord
	progress map[string]api.Progress
	updates  int
	mu       stdsync.Mutex
}

func newFakeServer(t *testing.T) (*fakeServer, *httptest.Server) {
	t.Helper()
	fs := &fakeServer{
		answers:  make(map[string]api.AnswerRecord),
		progress: make(map[string]api.Progress),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/health", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(api.HealthResponse{Status: "ok"})
	})
	mux.HandleFunc("POST /api/v1/answers", func(w http.ResponseWriter, r *http.Request) {
		var req api.BulkInsertAnswersRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		fs.mu.Lock()
		defer fs.mu.Unlock()
		var resp api.BulkInsertAnswersResponse
		for _, rec := range req.Records {
			if _, ok := fs.answers[rec.ID]; ok {
				resp.Duplicates++
				continue
			}
			fs.answers[rec.ID] = rec
			resp.Accepted++
		}
		_ = json.NewEncoder(w).Encode(resp)
	})
	mux.HandleFunc("POST /api/v1/users/{userID}/progress", func(w http.ResponseWriter, r *http.Request) {
		var p api.Progress
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		fs.mu.Lock()
		defer fs.mu.Unlock()
		docID := r.PathValue("userID") + "-" + p.QuestionID
		_, exists := fs.progress[docID]
		if !exists {
			fs.progress[docID] = p
		}
		_ = json.NewEncoder(w).Encode(api.CreateProgressResponse{DocID: docID, Created: !exists})
	})

	mux.HandleFunc("PUT /api/v1/users/{userID}/progress/{docID}", func(w http.ResponseWriter, r *http.Request) {
		var p api.Progress
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		fs.mu.Lock()
		defer fs.mu.Unlock()
		docID := r.PathValue("docID")
		if _, ok := fs.progress[docID]; !ok {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		fs.progress[docID] = p
		fs.updates++
		_ = json.NewEncoder(w).Encode(api.UpdateProgressResponse{Applied: true})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return fs, srv
}

func TestExecute_OfflineThenSync(t *testing.T) {
	for _, key := range []string{"SERVER_URL", "DB_PATH", "REMOTE_TIMEOUT", "SYNC_INTERVAL", "LOG_LEVEL", "TOKEN"} {
		t.Setenv(config.EnvPrefix+key, "")
	}

	fs, srv := newFakeServer(t)
	dbPath := filepath.Join(t.TempDir(), "client.db")
	token := signToken(t, "user-1", time.Now().Add(time.Hour))

	run := func(args ...string) (string, error) {
		var out bytes.Buffer
		console := iocli.New(strings.NewReader(""), &out)
		base := []string{"--db", dbPath, "--server", srv.URL, "--timeout", "5s"}
		err := Execute(context.Background(), console, BuildInfo{Version: "test"}, append(base, args...))
		return out.String(), err
	}

	_, err := run("login", "--offline", "--token", token)
	require.NoError(t, err)

	_, err = run("answer", "q1", "4")
	require.NoError(t, err)
	_, err = run("answer", "q2", "2")
	require.NoError(t, err)

	out, err := run("status")
	require.NoError(t, err)
	assert.Contains(t, out, "Pending sync: 2 answer(s), 2 progress record(s)")

	out, err = run("sync")
	require.NoError(t, err)
	assert.Contains(t, out, "completed successfully")

	fs.mu.Lock()
	assert.Len(t, fs.answers, 2)
	assert.Len(t, fs.progress, 2)
	fs.mu.Unlock()

	out, err = run("status")
	require.NoError(t, err)
	assert.Contains(t, out, "All answers synchronized")

	// Прогресс помнит doc id после очистки очереди: повторный ответ обновляет документ
	_, err = run("answer", "q1", "5")
	require.NoError(t, err)
	_, err = run("logout")
	require.Error(t, err)

	_, err = run("sync")
	require.NoError(t, err)

	fs.mu.Lock()
	defer fs.mu.Unlock()
	assert.Len(t, fs.answers, 3)
	assert.Len(t, fs.progress, 2)
	assert.Equal(t, 1, fs.updates)
	assert.Equal(t, 2, fs.progress["user-1-q1"].RepetitionCount)
}

func TestExecute_Version(t *testing.T) {
	var out bytes.Buffer
	console := iocli.New(strings.NewReader(""), &out)

	err := Execute(context.Background(), console, BuildInfo{Version: "1.2.3", BuildDate: "today", GitCommit: "abc"}, []string{"--version"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Version:    1.2.3")
	assert.Contains(t, out.String(), "Git Commit: abc")
}

func TestOpenStore_FallsBackToMemory(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	path := filepath.Join(t.TempDir(), "missing-dir", "client.db")

	store := openStore(context.Background(), path, logger)
	t.Cleanup(func() { _ = store.Close() })

	assert.False(t, store.Durable())
	_, ok := store.(*memory.Storage)
	assert.True(t, ok)

	_, err := store.UpsertProgress(context.Background(), &models.ProgressEntry{
		QuestionID:      "q1",
		NextReviewAt:    testNow,
		AnsweredAt:      testNow,
		EaseFactor:      2.5,
		RepetitionCount: 1,
	})
	require.NoError(t, err)
}
