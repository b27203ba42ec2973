// Package config loads client and server settings.
// Sources in increasing priority: defaults, .env file, SM2SYNC_* environment variables,
// command-line flags (applied by the commands).
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment variable read by this package.
const EnvPrefix = "SM2SYNC_"

// ClientConfig holds client configuration
type ClientConfig struct {
	ServerURL     string
	DBPath        string
	RemoteTimeout time.Duration // RemoteTimeout bound of every remote call
	SyncInterval  time.Duration // SyncInterval period of background sync, 0 disables it
	LogLevel      slog.Level
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Addr            string
	DBPath          string
	JWTSecret       string
	TokenTTL        time.Duration
	RateLimitWindow time.Duration
	ShutdownTimeout time.Duration
	RateLimit       int // RateLimit requests per window per client IP, 0 disables limiting
	LogLevel        slog.Level
	TrustProxy      bool // TrustProxy take the client IP from X-Forwarded-For / X-Real-IP
}

// LoadEnvFile loads a .env file into the environment without overriding variables already set.
// A missing default .env file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		// Try to load .env file (ignore error if not exists)
		_ = godotenv.Load()
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// LoadClient reads client configuration from the environment
func LoadClient() (*ClientConfig, error) {
	cfg := &ClientConfig{
		ServerURL: getEnv("SERVER_URL", "http://localhost:8080"),
		DBPath:    getEnv("DB_PATH", "sm2sync-client.db"),
	}

	var err error
	if cfg.RemoteTimeout, err = getDuration("REMOTE_TIMEOUT", 15*time.Second); err != nil {
		return nil, err
	}
	if cfg.SyncInterval, err = getDuration("SYNC_INTERVAL", 0); err != nil {
		return nil, err
	}
	if cfg.LogLevel, err = getLevel("LOG_LEVEL", slog.LevelWarn); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks client configuration
func (c *ClientConfig) Validate() error {
	if c.ServerURL == "" {
		return fmt.Errorf("%sSERVER_URL is required", EnvPrefix)
	}
	if !strings.HasPrefix(c.ServerURL, "http://") && !strings.HasPrefix(c.ServerURL, "https://") {
		return fmt.Errorf("server url must start with http:// or https://, got %q", c.ServerURL)
	}
	if c.DBPath == "" {
		return fmt.Errorf("%sDB_PATH is required", EnvPrefix)
	}
	if c.RemoteTimeout <= 0 {
		return fmt.Errorf("remote timeout must be positive")
	}
	if c.SyncInterval < 0 {
		return fmt.Errorf("sync interval cannot be negative")
	}
	return nil
}

// LoadServer reads server configuration from the environment
func LoadServer() (*ServerConfig, error) {
	cfg := &ServerConfig{
		Addr:      getEnv("ADDR", ":8080"),
		DBPath:    getEnv("SERVER_DB_PATH", "sm2sync-server.db"),
		JWTSecret: os.Getenv(EnvPrefix + "JWT_SECRET"),
	}

	var err error
	if cfg.TokenTTL, err = getDuration("TOKEN_TTL", 30*24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.RateLimitWindow, err = getDuration("RATE_LIMIT_WINDOW", time.Minute); err != nil {
		return nil, err
	}
	if cfg.ShutdownTimeout, err = getDuration("SHUTDOWN_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.RateLimit, err = getInt("RATE_LIMIT", 600); err != nil {
		return nil, err
	}
	if cfg.LogLevel, err = getLevel("LOG_LEVEL", slog.LevelInfo); err != nil {
		return nil, err
	}
	if cfg.TrustProxy, err = getBool("TRUST_PROXY", false); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks server configuration.
// The JWT secret is only required by commands that sign or verify tokens.
func (c *ServerConfig) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("%sJWT_SECRET is required", EnvPrefix)
	}
	if len(c.JWTSecret) < 32 {
		return fmt.Errorf("jwt secret must be at least 32 bytes")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("token ttl must be positive")
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("rate limit cannot be negative")
	}
	if c.RateLimit > 0 && c.RateLimitWindow <= 0 {
		return fmt.Errorf("rate limit window must be positive")
	}
	return nil
}

// NewLogger creates a text slog logger
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// ParseLevel parses debug, info, warn or error
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(EnvPrefix + key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(EnvPrefix + key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s%s: %w", EnvPrefix, key, err)
	}
	return d, nil
}

func getInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(EnvPrefix + key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s%s: %w", EnvPrefix, key, err)
	}
	return n, nil
}

func getBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(EnvPrefix + key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s%s: %w", EnvPrefix, key, err)
	}
	return b, nil
}

func getLevel(key string, defaultValue slog.Level) (slog.Level, error) {
	value := os.Getenv(EnvPrefix + key)
	if value == "" {
		return defaultValue, nil
	}
	return ParseLevel(value)
}
