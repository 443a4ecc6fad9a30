package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/notebot/internal/bootstrap"
	"github.com/at-ishikawa/notebot/internal/cli"
	"github.com/at-ishikawa/notebot/internal/store"
)

func newPreferencesCommand() *cobra.Command {
	prefsCmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show and change preferences",
	}
	prefsCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the current preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd, func(ctx context.Context, session *bootstrap.Session, printer *cli.Printer) error {
				return printer.Preferences(session.Store.State().Preferences)
			})
		},
	})
	prefsCmd.AddCommand(newPreferencesSetCommand())
	return prefsCmd
}

func newPreferencesSetCommand() *cobra.Command {
	var (
		theme        string
		language     string
		linkBehavior string
	)
	command := &cobra.Command{
		Use:   "set",
		Short: "Change one or more preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			var patch store.PreferencesPatch
			if flags.Changed("theme") {
				value := store.Theme(theme)
				if !value.Valid() {
					return fmt.Errorf("invalid theme %q, valid values are %s or %s", theme, store.ThemeLight, store.ThemeDark)
				}
				patch.Theme = &value
			}
			if flags.Changed("language") {
				if language == "" {
					return fmt.Errorf("language must not be empty")
				}
				patch.Language = &language
			}
			if flags.Changed("link-behavior") {
				value := store.LinkBehavior(linkBehavior)
				if !value.Valid() {
					return fmt.Errorf("invalid link behavior %q, valid values are %s or %s", linkBehavior, store.LinkBehaviorApp, store.LinkBehaviorBrowser)
				}
				patch.DefaultLinkBehavior = &value
			}
			if patch == (store.PreferencesPatch{}) {
				return fmt.Errorf("nothing to change, use --theme, --language or --link-behavior")
			}

			return runSession(cmd, func(ctx context.Context, session *bootstrap.Session, printer *cli.Printer) error {
				session.Store.Dispatch(store.UpdatePreferences{Patch: patch})
				return printer.Preferences(session.Store.State().Preferences)
			})
		},
	}
	flags := command.Flags()
	flags.StringVar(&theme, "theme", "", "light or dark")
	flags.StringVar(&language, "language", "", "Language code, such as en")
	flags.StringVar(&linkBehavior, "link-behavior", "", "Where notes are opened: app or browser")
	return command
}
