package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/iudanet/sm2sync/internal/client/api"
	"github.com/iudanet/sm2sync/internal/client/iocli"
	"github.com/iudanet/sm2sync/internal/client/progress"
	"github.com/iudanet/sm2sync/internal/client/questions"
	"github.com/iudanet/sm2sync/internal/client/storage"
	"github.com/iudanet/sm2sync/internal/client/storage/boltdb"
	"github.com/iudanet/sm2sync/internal/client/storage/memory"
	"github.com/iudanet/sm2sync/internal/client/sync"
	"github.com/iudanet/sm2sync/internal/clock"
	"github.com/iudanet/sm2sync/internal/config"
)

// BuildInfo is set via ldflags during build
type BuildInfo struct {
	Version   string
	BuildDate string
	GitCommit string
}

type rootFlags struct {
	serverURL string
	dbPath    string
	envFile   string
	logLevel  string
	timeout   time.Duration
}

// app holds the Cli built by the persistent pre-run of the root command
type app struct {
	console iocli.IO
	cli     *Cli
	store   storage.LocalStore
	flags   rootFlags
}

// Execute runs the client command line and closes the local store afterwards
func Execute(ctx context.Context, console iocli.IO, info BuildInfo, args []string) error {
	root, a := newRootCommand(console, info)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if cerr := a.close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

func newRootCommand(console iocli.IO, info BuildInfo) (*cobra.Command, *app) {
	a := &app{console: console}

	root := &cobra.Command{
		Use:           "sm2sync",
		Short:         "Offline-first spaced repetition client",
		Version:       info.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetVersionTemplate(fmt.Sprintf("sm2sync client\nVersion:    %s\nBuild Date: %s\nGit Commit: %s\n",
		info.Version, info.BuildDate, info.GitCommit))
	root.SetOut(console)

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.serverURL, "server", "", "Server URL (default from "+config.EnvPrefix+"SERVER_URL)")
	pf.StringVar(&a.flags.dbPath, "db", "", "Path to local database (default from "+config.EnvPrefix+"DB_PATH)")
	pf.StringVar(&a.flags.envFile, "env-file", "", "Load environment from this file")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.DurationVar(&a.flags.timeout, "timeout", 0, "Timeout of every server call")

	root.AddCommand(
		a.loginCommand(),
		a.logoutCommand(),
		a.statusCommand(),
		a.answerCommand(),
		a.questionCommand(),
		a.dueCommand(),
		a.syncCommand(),
	)

	return root, a
}

func (a *app) setup(cmd *cobra.Command) error {
	if err := config.LoadEnvFile(a.flags.envFile); err != nil {
		return err
	}
	cfg, err := config.LoadClient()
	if err != nil {
		return err
	}

	// Флаги имеют приоритет над окружением
	flags := cmd.Flags()
	if flags.Changed("server") {
		cfg.ServerURL = a.flags.serverURL
	}
	if flags.Changed("db") {
		cfg.DBPath = a.flags.dbPath
	}
	if flags.Changed("timeout") {
		cfg.RemoteTimeout = a.flags.timeout
	}
	if flags.Changed("log-level") {
		if cfg.LogLevel, err = config.ParseLevel(a.flags.logLevel); err != nil {
			return err
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := config.NewLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a.store = openStore(ctx, cfg.DBPath, logger)

	clk := clock.System()
	apiClient := api.NewClient(cfg.ServerURL, api.WithTimeout(cfg.RemoteTimeout))

	a.cli = New(Deps{
		IO:          a.console,
		Store:       a.store,
		Remote:      apiClient,
		Recorder:    progress.NewRecorder(a.store, clk, logger),
		Questions:   questions.NewCache(apiClient, a.store, cfg.RemoteTimeout, logger),
		SyncService: sync.NewService(apiClient, a.store, clk, cfg.RemoteTimeout, logger),
		Clock:       clk,
		Logger:      logger,
		Config:      cfg,
	})
	return nil
}

// openStore opens the durable store, falling back to memory for this session
func openStore(ctx context.Context, path string, logger *slog.Logger) storage.LocalStore {
	store, err := boltdb.New(ctx, path)
	if err != nil {
		logger.Warn("Local storage unavailable, using in-memory store", "path", path, "error", err)
		return memory.New()
	}
	return store
}

func (a *app) close() error {
	if a.store == nil {
		return nil
	}
	err := a.store.Close()
	a.store = nil
	if err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}

func (a *app) loginCommand() *cobra.Command {
	var opts loginOptions
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store the access token of a user",
		Long: "Store the access token of a user. The token is taken from " + TokenEnvVar +
			", --token-file, --token or an interactive prompt, in this order.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.cli.runLogin(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringVar(&opts.FromArgs, "token", "", "Access token")
	cmd.Flags().StringVar(&opts.FromFile, "token-file", "", "Read access token from file")
	cmd.Flags().StringVar(&opts.UserID, "user", "", "User id (default: token subject)")
	cmd.Flags().BoolVar(&opts.Offline, "offline", false, "Do not contact the server")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "Discard unsynchronized data of another user")
	return cmd
}

func (a *app) logoutCommand() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Delete the stored access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.cli.runLogout(cmd.Context(), force)
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Logout even if some answers are not synchronized; they are kept until another user logs in")
	return cmd
}

func (a *app) statusCommand() *cobra.Command {
	var remote bool
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show session and synchronization status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.cli.runStatus(cmd.Context(), remote)
		},
	}
	cmd.Flags().BoolVar(&remote, "remote", false, "Also query progress stored on the server")
	return cmd
}

func (a *app) answerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "answer <question-id> <quality>",
		Short: "Record an answer with quality 0..5 and schedule the next review",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.cli.runAnswer(cmd.Context(), args[0], args[1])
		},
	}
}

func (a *app) questionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "question <id>",
		Short: "Show question content, fetching it from the server on first use",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.cli.runQuestion(cmd.Context(), args[0])
		},
	}
}

func (a *app) dueCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "due",
		Short: "List questions due for review today",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.cli.runDue(cmd.Context())
		},
	}
}

func (a *app) syncCommand() *cobra.Command {
	var (
		watch bool
		every time.Duration
	)
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Upload pending answers and progress to the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !watch {
				return a.cli.runSync(cmd.Context())
			}

			if every == 0 {
				every = a.cli.cfg.SyncInterval
			}
			if every <= 0 {
				return fmt.Errorf("--watch needs --every or %sSYNC_INTERVAL", config.EnvPrefix)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.cli.runSyncEvery(ctx, every)
		},
	}
	cmd.Flags().BoolVar(&watch, "watch", false, "Keep running and synchronize periodically")
	cmd.Flags().DurationVar(&every, "every", 0, "Period of background synchronization")
	return cmd
}
