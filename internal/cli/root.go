// Package cli implements the labpool command surface: one subcommand per
// account state transition plus pool-wide status and record purging.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/labpool/internal/account"
	"github.com/dmitrijs2005/labpool/internal/clock"
	"github.com/dmitrijs2005/labpool/internal/common"
	"github.com/dmitrijs2005/labpool/internal/config"
	"github.com/dmitrijs2005/labpool/internal/logging"
	"github.com/dmitrijs2005/labpool/internal/pool"
	"github.com/dmitrijs2005/labpool/internal/store"
	"github.com/dmitrijs2005/labpool/internal/store/memory"
	"github.com/dmitrijs2005/labpool/internal/store/postgres"
)

var (
	// Global flags
	cfgPath       string
	storeFlag     string
	dsnFlag       string
	askDBPassword bool
	verbose       bool
)

// rootCmd is the root command for labpool.
var rootCmd = &cobra.Command{
	Use:     "labpool",
	Version: "dev",
	Short:   "Lab account lending manager",
	Long: `labpool manages a pool of lab accounts lent out to requesters.

Accounts are identified by a numeric index and their state (assigned,
disabled, free) lives in a shared key-value store. The memory store is
per-process and only useful for trying things out; point labpool at
Postgres for shared state.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&storeFlag, "store", "", "store backend: memory or postgres")
	rootCmd.PersistentFlags().StringVar(&dsnFlag, "dsn", "", "PostgreSQL DSN (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&askDBPassword, "ask-db-password", false, "prompt for the database password instead of embedding it in the DSN")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(assignCmd)
	rootCmd.AddCommand(unassignCmd)
	rootCmd.AddCommand(enableCmd)
	rootCmd.AddCommand(disableCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(purgeCmd)
}

func newLogger() logging.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return logging.NewSlogLogger(slog.New(h))
}

// opCtx returns a context bounded by the configured timeout and cancelled on
// SIGINT/SIGTERM.
func opCtx(timeout time.Duration) (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	ctx, cancel := context.WithTimeout(ctx, timeout)
	return ctx, func() {
		cancel()
		stop()
	}
}

// newPoolForCmd loads the configuration, opens the selected store and builds
// the pool service. The returned cleanup closes backend handles.
func newPoolForCmd() (*pool.Pool, *config.Config, func(), error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, nil, err
	}
	if storeFlag != "" {
		cfg.Store = storeFlag
	}
	if dsnFlag != "" {
		cfg.DatabaseDSN = dsnFlag
	}

	log := newLogger()

	var st store.Store
	cleanup := func() {}

	switch cfg.Store {
	case config.StoreMemory:
		st = memory.New()
	case config.StorePostgres:
		dsn := cfg.DatabaseDSN
		if askDBPassword {
			pw, err := promptPassword(os.Stderr)
			if err != nil {
				return nil, nil, nil, err
			}
			dsn, err = withPassword(dsn, string(pw))
			if err != nil {
				return nil, nil, nil, err
			}
		}
		ctx, cancel := context.WithTimeout(context.Background(), cfg.OpTimeout)
		ps, db, err := postgres.Open(ctx, dsn)
		cancel()
		if err != nil {
			return nil, nil, nil, err
		}
		st = ps
		cleanup = func() { _ = db.Close() }
	default:
		return nil, nil, nil, fmt.Errorf("%w: unknown store %q", common.ErrInvalidArgument, cfg.Store)
	}

	naming := account.Naming{Prefix: cfg.NamePrefix, PadZeroes: cfg.PadZeroes}
	p, err := pool.New(naming, cfg.PoolSize, st, &clock.RealClock{}, log)
	if err != nil {
		cleanup()
		return nil, nil, nil, err
	}

	return p, cfg, cleanup, nil
}

// parseNum converts the positional account index argument.
func parseNum(arg string) (int, error) {
	num, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: account index %q is not a number", common.ErrInvalidArgument, arg)
	}
	return num, nil
}
