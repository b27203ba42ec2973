// Package cli is the command line of the sm2sync server.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/iudanet/sm2sync/internal/clock"
	"github.com/iudanet/sm2sync/internal/config"
	"github.com/iudanet/sm2sync/internal/server"
	"github.com/iudanet/sm2sync/internal/server/handlers"
	"github.com/iudanet/sm2sync/internal/server/importer"
	"github.com/iudanet/sm2sync/internal/server/storage/sqlite"
	"github.com/iudanet/sm2sync/internal/validation"
)

// BuildInfo is set via ldflags during build
type BuildInfo struct {
	Version   string
	BuildDate string
	GitCommit string
}

type rootFlags struct {
	envFile  string
	dbPath   string
	logLevel string
}

type app struct {
	out    io.Writer
	cfg    *config.ServerConfig
	logger *slog.Logger
	clock  clock.Clock
	info   BuildInfo
	flags  rootFlags
}

// Execute runs the server command line
func Execute(ctx context.Context, out, errOut io.Writer, info BuildInfo, args []string) error {
	root := newRootCommand(out, errOut, info, clock.System())
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func newRootCommand(out, errOut io.Writer, info BuildInfo, clk clock.Clock) *cobra.Command {
	a := &app{out: out, info: info, clock: clk}

	root := &cobra.Command{
		Use:           "sm2sync-server",
		Short:         "Remote store for sm2sync answers, progress and questions",
		Version:       info.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetVersionTemplate(fmt.Sprintf("sm2sync server\nVersion:    %s\nBuild Date: %s\nGit Commit: %s\n",
		info.Version, info.BuildDate, info.GitCommit))
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.envFile, "env-file", "", "Load environment from this file")
	pf.StringVar(&a.flags.dbPath, "db", "", "Path to database (default from "+config.EnvPrefix+"SERVER_DB_PATH)")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	root.AddCommand(
		a.serveCommand(),
		a.tokenCommand(),
		a.importCommand(),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	if err := config.LoadEnvFile(a.flags.envFile); err != nil {
		return err
	}
	cfg, err := config.LoadServer()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.DBPath = a.flags.dbPath
	}
	if flags.Changed("log-level") {
		if cfg.LogLevel, err = config.ParseLevel(a.flags.logLevel); err != nil {
			return err
		}
	}

	a.cfg = cfg
	a.logger = config.NewLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	return nil
}

func (a *app) openStorage(ctx context.Context) (*sqlite.Storage, error) {
	store, err := sqlite.New(ctx, a.cfg.DBPath, sqlite.WithClock(a.clock))
	if err != nil {
		return nil, fmt.Errorf("failed to open storage %s: %w", a.cfg.DBPath, err)
	}
	return store, nil
}

func (a *app) serveCommand() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("addr") {
				a.cfg.Addr = addr
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			store, err := a.openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() {
				if err := store.Close(); err != nil {
					a.logger.Error("Failed to close storage", "error", err)
				}
			}()

			a.logger.Info("Starting sm2sync server",
				"version", a.info.Version,
				"addr", a.cfg.Addr,
				"db", a.cfg.DBPath,
				"rate_limit", a.cfg.RateLimit,
			)

			return server.New(a.cfg, store, a.logger, a.info.Version).Run(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from "+config.EnvPrefix+"ADDR)")
	return cmd
}

func (a *app) tokenCommand() *cobra.Command {
	var (
		admin bool
		ttl   time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token [user-id]",
		Short: "Issue an access token",
		Long:  "Issue an access token for the user. A new random user id is generated when none is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			userID := uuid.NewString()
			if len(args) == 1 {
				userID = args[0]
			}
			if err := validation.ValidateID("user id", userID); err != nil {
				return err
			}

			jwtConfig := handlers.JWTConfig{
				Secret:         []byte(a.cfg.JWTSecret),
				AccessTokenTTL: a.cfg.TokenTTL,
			}
			if cmd.Flags().Changed("ttl") {
				if ttl <= 0 {
					return fmt.Errorf("--ttl must be positive")
				}
				jwtConfig.AccessTokenTTL = ttl
			}

			token, expiresAt, err := handlers.GenerateAccessToken(jwtConfig, userID, admin, a.clock.Now())
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "User ID:    %s\n", userID)
			fmt.Fprintf(a.out, "Expires at: %s\n", expiresAt.UTC().Format(time.RFC3339))
			fmt.Fprintf(a.out, "Token:      %s\n", token)
			return nil
		},
	}
	cmd.Flags().BoolVar(&admin, "admin", false, "Allow the token to upload questions")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "Token lifetime (default from "+config.EnvPrefix+"TOKEN_TTL)")
	return cmd
}

func (a *app) importCommand() *cobra.Command {
	var sheet string
	cmd := &cobra.Command{
		Use:   "import <file.xlsx|file.csv>",
		Short: "Import questions from a spreadsheet",
		Long: "Import questions from a spreadsheet. The first row is a header with an \"" + importer.IDColumn +
			"\" column; other columns become fields of the question payload.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := a.openStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			result, err := importer.ImportFile(ctx, args[0], store, importer.Config{SheetName: sheet})
			if err != nil {
				return err
			}

			for _, msg := range result.Errors {
				fmt.Fprintf(a.out, "⚠️  %s\n", msg)
			}
			fmt.Fprintf(a.out, "✓ Imported %d question(s), skipped %d of %d row(s)\n",
				result.Imported, result.Skipped, result.Total)
			return nil
		},
	}
	cmd.Flags().StringVar(&sheet, "sheet", "", "Sheet name (default: first sheet)")
	return cmd
}
