package main

import (
	"testing"
)

func TestPreferencesCommand(t *testing.T) {
	cfgPath := setupCommandTest(t, testCatalog())

	runSteps(t, cfgPath, []commandStep{
		{
			args: []string{"prefs", "show"},
			want: []string{"theme                  light", "language               en", "default_link_behavior  app"},
		},
		{
			args: []string{"prefs", "set", "--theme", "dark", "--link-behavior", "browser"},
			want: []string{"theme                  dark", "default_link_behavior  browser"},
		},
		{
			args: []string{"prefs", "show"},
			want: []string{"theme                  dark", "language               en", "default_link_behavior  browser"},
		},
		{
			args:     []string{"open", "N1"},
			want:     []string{"https://docs.google.com/document/d/abc/edit"},
			wantNone: []string{"abc/view"},
		},
		{
			args: []string{"prefs", "set", "--language", "fr"},
			want: []string{"theme                  dark", "language               fr"},
		},
		{args: []string{"prefs", "set"}, wantErr: "nothing to change"},
		{args: []string{"prefs", "set", "--theme", "blue"}, wantErr: `invalid theme "blue"`},
		{args: []string{"prefs", "set", "--link-behavior", "tab"}, wantErr: `invalid link behavior "tab"`},
		{args: []string{"prefs", "set", "--language", ""}, wantErr: "language must not be empty"},
	})
}
