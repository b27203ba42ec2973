package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/iudanet/sm2sync/internal/clock"
	"github.com/iudanet/sm2sync/internal/config"
	"github.com/iudanet/sm2sync/internal/server/handlers"
	"github.com/iudanet/sm2sync/internal/server/middleware"
)

const healthPath = "/api/v1/health"

// Storage объединяет всё, что нужно обработчикам от базы данных
type Storage interface {
	handlers.AnswerStorage
	handlers.ProgressStorage
	handlers.QuestionStorage
	handlers.Pinger
}

// Server собирает маршруты, middleware и http.Server
type Server struct {
	cfg     *config.ServerConfig
	logger  *slog.Logger
	limiter *middleware.RateLimiter
	handler http.Handler
}

// New создает сервер. Rate limiting выключен, если cfg.RateLimit == 0.
func New(cfg *config.ServerConfig, store Storage, logger *slog.Logger, version string) *Server {
	s := &Server{
		cfg:    cfg,
		logger: logger,
	}

	jwtConfig := handlers.JWTConfig{
		Secret:         []byte(cfg.JWTSecret),
		AccessTokenTTL: cfg.TokenTTL,
	}
	auth := middleware.AuthMiddleware(logger, jwtConfig)

	answersHandler := handlers.NewAnswersHandler(logger, store)
	progressHandler := handlers.NewProgressHandler(logger, store)
	questionsHandler := handlers.NewQuestionsHandler(logger, store)
	healthHandler := handlers.NewHealthHandler(logger, store, version)

	mux := http.NewServeMux()
	mux.HandleFunc("GET "+healthPath, healthHandler.Health)
	mux.Handle("POST /api/v1/answers", auth(http.HandlerFunc(answersHandler.BulkInsert)))
	mux.Handle("POST /api/v1/users/{userID}/progress", auth(http.HandlerFunc(progressHandler.Create)))
	mux.Handle("GET /api/v1/users/{userID}/progress", auth(http.HandlerFunc(progressHandler.List)))
	mux.Handle("PUT /api/v1/users/{userID}/progress/{docID}", auth(http.HandlerFunc(progressHandler.Update)))
	mux.Handle("GET /api/v1/questions/{id}", auth(http.HandlerFunc(questionsHandler.Get)))
	mux.Handle("PUT /api/v1/questions/{id}", auth(http.HandlerFunc(questionsHandler.Put)))

	// Порядок снаружи внутрь: request id, recovery, logging, rate limit, маршруты
	var h http.Handler = mux
	if cfg.RateLimit > 0 {
		s.limiter = middleware.NewRateLimiter(cfg.RateLimit, cfg.RateLimitWindow, clock.System())
		h = middleware.RateLimitMiddleware(s.limiter, logger, cfg.TrustProxy)(h)
	}
	h = middleware.LoggingMiddleware(logger, healthPath)(h)
	h = middleware.RecoveryMiddleware(logger)(h)
	h = middleware.RequestIDMiddleware(h)
	s.handler = h

	return s
}

// Handler возвращает корневой http.Handler (используется в тестах)
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run слушает cfg.Addr до отмены ctx
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve обслуживает запросы на ln. После отмены ctx сервер перестает
// принимать соединения и ждет активные запросы не дольше cfg.ShutdownTimeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	if s.limiter != nil {
		s.limiter.StartCleanup()
		defer s.limiter.Stop()
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Server started", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server", "timeout", s.cfg.ShutdownTimeout)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}

	s.logger.Info("Server stopped")
	return nil
}
