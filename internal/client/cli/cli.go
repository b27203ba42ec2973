package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/iudanet/sm2sync/internal/client/iocli"
	"github.com/iudanet/sm2sync/internal/client/progress"
	"github.com/iudanet/sm2sync/internal/client/questions"
	"github.com/iudanet/sm2sync/internal/client/storage"
	"github.com/iudanet/sm2sync/internal/client/sync"
	"github.com/iudanet/sm2sync/internal/clock"
	"github.com/iudanet/sm2sync/internal/config"
)

// TokenEnvVar holds the access token for non-interactive login
const TokenEnvVar = config.EnvPrefix + "TOKEN"

// Tokens are the non-interactive sources of an access token
type Tokens struct {
	FromFile string
	FromArgs string
}

// Cli wires the client services to the commands
type Cli struct {
	io          iocli.IO
	store       storage.LocalStore
	remote      Remote
	recorder    *progress.Recorder
	questions   *questions.Cache
	syncService sync.Service
	clock       clock.Clock
	logger      *slog.Logger
	cfg         *config.ClientConfig
}

// Deps are the collaborators of Cli
type Deps struct {
	IO          iocli.IO
	Store       storage.LocalStore
	Remote      Remote
	Recorder    *progress.Recorder
	Questions   *questions.Cache
	SyncService sync.Service
	Clock       clock.Clock
	Logger      *slog.Logger
	Config      *config.ClientConfig
}

// New creates Cli
func New(d Deps) *Cli {
	return &Cli{
		io:          d.IO,
		store:       d.Store,
		remote:      d.Remote,
		recorder:    d.Recorder,
		questions:   d.Questions,
		syncService: d.SyncService,
		clock:       d.Clock,
		logger:      d.Logger,
		cfg:         d.Config,
	}
}

// getAccessToken retrieves access token from various sources with priority:
// 1. Environment variable SM2SYNC_TOKEN
// 2. File specified in tokens.FromFile
// 3. Command-line parameter
// 4. Interactive prompt (fallback)
func (c *Cli) getAccessToken(tokens Tokens) (string, error) {
	// Priority 1: Environment variable
	if token := os.Getenv(TokenEnvVar); token != "" {
		return strings.TrimSpace(token), nil
	}

	// Priority 2: File
	if tokens.FromFile != "" {
		data, err := os.ReadFile(tokens.FromFile)
		if err != nil {
			return "", fmt.Errorf("failed to read token file: %w", err)
		}
		token := strings.TrimSpace(string(data))
		if token == "" {
			return "", fmt.Errorf("token file is empty")
		}
		return token, nil
	}

	// Priority 3: CLI parameter
	if tokens.FromArgs != "" {
		return tokens.FromArgs, nil
	}

	// Priority 4: Interactive prompt (fallback)
	token, err := c.io.ReadPassword("Access token: ")
	if err != nil {
		return "", fmt.Errorf("failed to read token: %w", err)
	}
	if token == "" {
		return "", fmt.Errorf("access token cannot be empty")
	}
	return token, nil
}

// warnNotDurable prints the warning shown while running on the memory store
func (c *Cli) warnNotDurable() {
	if c.store.Durable() {
		return
	}
	c.io.Println("⚠️  Local database is unavailable: progress is kept in memory and will be lost on exit.")
}
