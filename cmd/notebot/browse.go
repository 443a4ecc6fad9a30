package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/notebot/internal/bootstrap"
	"github.com/at-ishikawa/notebot/internal/cli"
	"github.com/at-ishikawa/notebot/internal/tui"
)

func newBrowseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse levels, courses and notes interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd, func(ctx context.Context, session *bootstrap.Session, printer *cli.Printer) error {
				program := tea.NewProgram(
					tui.New(ctx, session.Store, session.Loader),
					tea.WithContext(ctx),
					tea.WithAltScreen(),
				)
				if _, err := program.Run(); err != nil {
					return fmt.Errorf("program.Run() > %w", err)
				}

				state := session.Store.State()
				if len(state.RecentLinks) == 0 {
					return nil
				}
				return printer.RecentLinks(state)
			})
		},
	}
}
