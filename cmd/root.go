// Package cmd implements the goalchaser CLI commands.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/goalchaser/internal/cli"
	"github.com/theirongolddev/goalchaser/internal/config"
	"github.com/theirongolddev/goalchaser/internal/goals"
	"github.com/theirongolddev/goalchaser/internal/logging"
	"github.com/theirongolddev/goalchaser/internal/store"
)

var (
	flagDB        string
	flagEphemeral bool
	flagVerbose   bool
	flagQuiet     bool
)

var rootCmd = &cobra.Command{
	Use:           "goalchaser",
	Short:         "Chase short goals one day at a time",
	Long:          "Track up to five short goals, tap each once a day, and collect rewards when they're done.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runList,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "  "+cli.Bad(goals.Message(err)))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Goal database path (default $XDG_DATA_HOME/goalchaser/goals.db)")
	rootCmd.PersistentFlags().BoolVar(&flagEphemeral, "ephemeral", false, "Keep goals in memory only")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug output to stderr")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress log output on stderr")
}

// session is what a command needs to work on the goal list.
type session struct {
	cfg   config.Config
	goals *goals.Store
	log   *slog.Logger
	close func()
}

// openSession loads config, sets up logging and opens the goal store.
// Log records also go to console unless --quiet is set.
func openSession(console io.Writer) (*session, error) {
	config.LoadEnvFile()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	level := config.GetLogLevel(cfg)
	if flagVerbose {
		level = "debug"
	}
	opts := logging.Options{Level: level, File: config.GetLogFile(cfg)}
	if !flagQuiet {
		opts.Console = console
	}
	logger, closeLog, err := logging.New(opts)
	if err != nil {
		return nil, err
	}

	var kv store.KV
	closeKV := func() error { return nil }
	if flagEphemeral {
		kv = store.NewMemory()
	} else {
		path := flagDB
		if path == "" {
			path = config.GetDBPath(cfg)
		}
		db, err := store.Open(path)
		if err != nil {
			_ = closeLog()
			return nil, fmt.Errorf("opening goal database: %w", err)
		}
		logger.Debug("goal database opened", "path", path)
		kv = db
		closeKV = db.Close
	}

	return &session{
		cfg:   cfg,
		goals: goals.Open(kv, goals.WithLogger(logger)),
		log:   logger,
		close: func() {
			if err := closeKV(); err != nil {
				logger.Warn("closing goal database", "err", err)
			}
			_ = closeLog()
		},
	}, nil
}
