package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/notebot/internal/api"
	"github.com/at-ishikawa/notebot/internal/cli"
	"github.com/at-ishikawa/notebot/internal/store"
)

var (
	configFile string
	debugMode  bool

	logLevel slog.LevelVar
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		_ = cli.NewPrinter(os.Stderr, store.ThemeLight).Error(api.Message(err))
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "notebot",
		Short:         "Browse levels, courses and notes from the notebot catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger(debugMode)
		},
	}
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default is ./config.yml or $HOME/.config/notebot/config.yml)")
	flags.BoolVar(&debugMode, "debug", false, "enable debug logging")

	rootCmd.AddCommand(
		newStatsCommand(),
		newLevelsCommand(),
		newCoursesCommand(),
		newNotesCommand(),
		newSearchCommand(),
		newOpenCommand(),
		newFavoritesCommand(),
		newPreferencesCommand(),
		newExportCommand(),
		newImportCommand(),
		newBrowseCommand(),
	)
	return rootCmd
}

func setupLogger(debug bool) {
	if debug {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: &logLevel})
	slog.SetDefault(slog.New(handler))
}

// applyLogLevel uses the configured level unless --debug was given.
func applyLogLevel(level string) error {
	if debugMode || level == "" {
		return nil
	}
	if err := logLevel.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("logLevel.UnmarshalText(%s) > %w", level, err)
	}
	return nil
}
