package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/notebot/internal/bootstrap"
	"github.com/at-ishikawa/notebot/internal/cli"
	"github.com/at-ishikawa/notebot/internal/config"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

type sessionFunc func(ctx context.Context, session *bootstrap.Session, printer *cli.Printer) error

// runSession opens a session for the duration of fn. Pending writes are flushed
// when fn returns or the process is interrupted.
func runSession(cmd *cobra.Command, fn sessionFunc) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := applyLogLevel(cfg.Log.Level); err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	session, err := bootstrap.NewSession(ctx, *cfg, slog.Default())
	if err != nil {
		return fmt.Errorf("bootstrap.NewSession() > %w", err)
	}

	app := bootstrap.NewApp()
	app.AddShutdownHook(session.Close)
	return app.Run(ctx, func(ctx context.Context) error {
		printer := cli.NewPrinter(cmd.OutOrStdout(), session.Store.State().Preferences.Theme)
		return fn(ctx, session, printer)
	})
}
