package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/notebot/internal/bootstrap"
	"github.com/at-ishikawa/notebot/internal/cli"
	"github.com/at-ishikawa/notebot/internal/export"
)

func newExportCommand() *cobra.Command {
	var output string
	command := &cobra.Command{
		Use:   "export",
		Short: "Write favorites and preferences as YAML",
		Long: `Write favorites and preferences as YAML.

Recent links are kept only while a process runs, so an export from the command
line lists none. Only the favorites and preferences of an import are stored.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd, func(ctx context.Context, session *bootstrap.Session, printer *cli.Printer) error {
				snapshot := export.NewSnapshot(session.Store.State(), time.Now())
				if output == "" || output == "-" {
					return export.Write(cmd.OutOrStdout(), snapshot)
				}

				file, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("os.Create(%s) > %w", output, err)
				}
				if err := export.Write(file, snapshot); err != nil {
					_ = file.Close()
					return fmt.Errorf("export.Write() > %w", err)
				}
				if err := file.Close(); err != nil {
					return fmt.Errorf("file.Close() > %w", err)
				}
				return printer.Message("Exported to %s", output)
			})
		},
	}
	command.Flags().StringVarP(&output, "output", "o", "", "Output file. Writes to stdout when empty")
	return command
}

func newImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Restore favorites and preferences from an exported YAML file",
		Long: `Restore favorites and preferences from an exported YAML file.

Recent links in the file are ignored because they are not kept between runs.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot, err := readSnapshot(cmd, args[0])
			if err != nil {
				return err
			}
			return runSession(cmd, func(ctx context.Context, session *bootstrap.Session, printer *cli.Printer) error {
				snapshot.RecentLinks = nil
				export.Apply(session.Store, snapshot)
				state := session.Store.State()
				return printer.Message("Imported %d favorite notes and %d favorite courses",
					len(state.Favorites.Notes), len(state.Favorites.Courses))
			})
		},
	}
}

func readSnapshot(cmd *cobra.Command, path string) (export.Snapshot, error) {
	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return export.Snapshot{}, fmt.Errorf("os.Open(%s) > %w", path, err)
		}
		defer func() {
			_ = file.Close()
		}()
		r = file
	}

	snapshot, err := export.Read(r)
	if err != nil {
		return export.Snapshot{}, fmt.Errorf("export.Read() > %w", err)
	}
	return snapshot, nil
}
