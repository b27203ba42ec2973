package middleware

import (
	"fmt"
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/iudanet/sm2sync/internal/clock"
	"github.com/iudanet/sm2sync/internal/server/handlers"
)

// RateLimiter ограничивает число запросов на ключ (IP адрес) в окне фиксированной длины
type RateLimiter struct {
	clock    clock.Clock
	buckets  map[string]*bucket
	stop     chan struct{}
	stopOnce sync.Once
	rate     int
	window   time.Duration
	mu       sync.Mutex
}

// bucket представляет bucket для конкретного IP/ключа
type bucket struct {
	windowStart time.Time
	tokens      int
}

// NewRateLimiter создает новый rate limiter.
// rate - максимальное количество запросов за window.
func NewRateLimiter(rate int, window time.Duration, clk clock.Clock) *RateLimiter {
	return &RateLimiter{
		clock:   clk,
		buckets: make(map[string]*bucket),
		stop:    make(chan struct{}),
		rate:    rate,
		window:  window,
	}
}

// StartCleanup периодически удаляет неактивные buckets до вызова Stop
func (rl *RateLimiter) StartCleanup() {
	go func() {
		ticker := time.NewTicker(rl.window * 2)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				rl.cleanupOldBuckets()
			case <-rl.stop:
				return
			}
		}
	}()
}

// Stop останавливает cleanup goroutine
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

// cleanupOldBuckets удаляет buckets, окно которых давно истекло
func (rl *RateLimiter) cleanupOldBuckets() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.clock.Now()
	for key, b := range rl.buckets {
		if now.Sub(b.windowStart) > rl.window*2 {
			delete(rl.buckets, key)
		}
	}
}

// Allow проверяет, разрешен ли запрос для данного ключа.
// Если нет, возвращает время до начала следующего окна.
func (rl *RateLimiter) Allow(key string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.clock.Now()
	b, ok := rl.buckets[key]
	if !ok || now.Sub(b.windowStart) >= rl.window {
		b = &bucket{windowStart: now, tokens: rl.rate}
		rl.buckets[key] = b
	}

	if b.tokens > 0 {
		b.tokens--
		return true, 0
	}

	return false, b.windowStart.Add(rl.window).Sub(now)
}

// RateLimitMiddleware отвечает 429 с Retry-After, когда лимит исчерпан.
// Клиент считает 429 временной ошибкой и повторит синхронизацию позже.
func RateLimitMiddleware(limiter *RateLimiter, logger *slog.Logger, trustProxy bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientIP(r, trustProxy)

			allowed, retryAfter := limiter.Allow(key)
			if !allowed {
				logger.Warn("Rate limit exceeded",
					"ip", key,
					"method", r.Method,
					"request_id", RequestID(r.Context()),
				)

				seconds := int(math.Ceil(retryAfter.Seconds()))
				w.Header().Set("Retry-After", strconv.Itoa(max(seconds, 1)))
				handlers.WriteError(w, logger, http.StatusTooManyRequests,
					fmt.Sprintf("rate limit exceeded, retry in %ds", max(seconds, 1)))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP извлекает IP адрес клиента из запроса.
// Заголовкам X-Forwarded-For и X-Real-IP верим только за доверенным прокси.
func clientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			first, _, _ := strings.Cut(xff, ",")
			return strings.TrimSpace(first)
		}
		if xri := r.Header.Get("X-Real-IP"); xri != "" {
			return strings.TrimSpace(xri)
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
