package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/fenrel/daygrid/internal/config"
	"github.com/fenrel/daygrid/internal/db"
	"github.com/fenrel/daygrid/internal/logging"
	"github.com/fenrel/daygrid/internal/notify"
	"github.com/fenrel/daygrid/internal/schedule"
	"github.com/fenrel/daygrid/internal/version"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "daygrid",
	Short: "Drag-to-log time tracking for your terminal",
	// Bare `daygrid` opens the day view.
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

func Execute() error {
	// Deferred so main's build metadata injection is visible.
	rootCmd.Version = version.Info()
	return rootCmd.Execute()
}

func init() {
	cfg, _ = config.Load()

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// The TUI owns the terminal, so its logs go to a file instead.
		if err := logging.Init(cfg.LogLevel, cmd.Name() == "tui" || cmd == rootCmd); err != nil {
			return err
		}
		if cfg.Reminder.Enabled && os.Getenv("DAYGRID_NO_REMINDER") != "1" {
			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			_ = cancel // signal delivery cancels; process exit cleans up
			go schedule.RunConfigured(ctx, cfg, remindUnlogged)
		}
		return nil
	}

	rootCmd.AddCommand(tuiCmd, logCmd, listCmd, summaryCmd, importCmd)
}

// remindUnlogged nudges when the day has no entries yet.
func remindUnlogged() {
	dbh, err := db.Open()
	if err != nil {
		return
	}
	defer dbh.Close()

	n, err := db.CountEntriesForDay(dbh, today())
	if err != nil {
		return
	}
	title, msg := notify.FormatDailyPrompt(n)
	_ = notify.Info(title, msg)
}
