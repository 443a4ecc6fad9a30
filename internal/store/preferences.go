package store

import (
	"github.com/at-ishikawa/notebot/internal/catalog"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// LinkBehavior decides where a note's file is opened.
type LinkBehavior string

const (
	LinkBehaviorApp     LinkBehavior = "app"
	LinkBehaviorBrowser LinkBehavior = "browser"
)

func (b LinkBehavior) Valid() bool {
	return b == LinkBehaviorApp || b == LinkBehaviorBrowser
}

type Preferences struct {
	Theme               Theme        `json:"theme" yaml:"theme"`
	Language            string       `json:"language" yaml:"language"`
	DefaultLinkBehavior LinkBehavior `json:"defaultLinkBehavior" yaml:"default_link_behavior"`
}

func DefaultPreferences() Preferences {
	return Preferences{
		Theme:               ThemeLight,
		Language:            "en",
		DefaultLinkBehavior: LinkBehaviorApp,
	}
}

// PreferencesPatch is a partial update. Nil fields are left unchanged.
type PreferencesPatch struct {
	Theme               *Theme        `json:"theme,omitempty"`
	Language            *string       `json:"language,omitempty"`
	DefaultLinkBehavior *LinkBehavior `json:"defaultLinkBehavior,omitempty"`
}

// Merge applies the valid fields of patch; invalid values keep the current ones.
func (p Preferences) Merge(patch PreferencesPatch) Preferences {
	if patch.Theme != nil && patch.Theme.Valid() {
		p.Theme = *patch.Theme
	}
	if patch.Language != nil && *patch.Language != "" {
		p.Language = *patch.Language
	}
	if patch.DefaultLinkBehavior != nil && patch.DefaultLinkBehavior.Valid() {
		p.DefaultLinkBehavior = *patch.DefaultLinkBehavior
	}
	return p
}

// Patch returns a patch that sets every field to the values of p.
func (p Preferences) Patch() PreferencesPatch {
	theme, language, behavior := p.Theme, p.Language, p.DefaultLinkBehavior
	return PreferencesPatch{
		Theme:               &theme,
		Language:            &language,
		DefaultLinkBehavior: &behavior,
	}
}

// LinkFor returns the URL a note is opened with under these preferences.
func (p Preferences) LinkFor(note catalog.Note) string {
	if p.DefaultLinkBehavior == LinkBehaviorBrowser {
		return catalog.BrowserURL(note.File)
	}
	return note.File
}

// ToggleTheme returns the patch switching between light and dark.
func (p Preferences) ToggleTheme() PreferencesPatch {
	next := ThemeDark
	if p.Theme == ThemeDark {
		next = ThemeLight
	}
	return PreferencesPatch{Theme: &next}
}
