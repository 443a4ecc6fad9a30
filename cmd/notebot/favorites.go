package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/notebot/internal/bootstrap"
	"github.com/at-ishikawa/notebot/internal/cli"
	"github.com/at-ishikawa/notebot/internal/store"
)

func newFavoritesCommand() *cobra.Command {
	favoritesCmd := &cobra.Command{
		Use:   "favorites",
		Short: "List and change favorite notes and courses",
		Args:  cobra.NoArgs,
		RunE:  runListFavorites,
	}
	favoritesCmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List favorite notes and courses",
			Args:  cobra.NoArgs,
			RunE:  runListFavorites,
		},
		&cobra.Command{
			Use:       "add (note|course) <id>",
			Short:     "Add a note or a course to the favorites",
			Args:      cobra.ExactArgs(2),
			ValidArgs: []string{"note", "course"},
			RunE: func(cmd *cobra.Command, args []string) error {
				kind, err := parseFavoriteKind(args[0])
				if err != nil {
					return err
				}
				return runSession(cmd, func(ctx context.Context, session *bootstrap.Session, printer *cli.Printer) error {
					return addFavorite(ctx, session, printer, kind, args[1])
				})
			},
		},
		&cobra.Command{
			Use:       "remove (note|course) <id>",
			Short:     "Remove a note or a course from the favorites",
			Args:      cobra.ExactArgs(2),
			ValidArgs: []string{"note", "course"},
			RunE: func(cmd *cobra.Command, args []string) error {
				kind, err := parseFavoriteKind(args[0])
				if err != nil {
					return err
				}
				id := args[1]
				return runSession(cmd, func(ctx context.Context, session *bootstrap.Session, printer *cli.Printer) error {
					if !session.Store.State().IsFavorite(kind, id) {
						return printer.Message("%s is not a favorite", id)
					}
					session.Store.Dispatch(store.RemoveFavorite{Kind: kind, ID: id})
					return printer.Message("Removed from favorites: %s", id)
				})
			},
		},
	)
	return favoritesCmd
}

func runListFavorites(cmd *cobra.Command, args []string) error {
	return runSession(cmd, func(ctx context.Context, session *bootstrap.Session, printer *cli.Printer) error {
		return printer.Favorites(session.Store.State())
	})
}

func parseFavoriteKind(value string) (store.FavoriteKind, error) {
	switch value {
	case "note", "notes":
		return store.FavoriteNotes, nil
	case "course", "courses":
		return store.FavoriteCourses, nil
	default:
		return "", fmt.Errorf("invalid favorite kind %q, valid values are note or course", value)
	}
}

// addFavorite stores the whole note or course so favorites can be listed offline.
func addFavorite(ctx context.Context, session *bootstrap.Session, printer *cli.Printer, kind store.FavoriteKind, id string) error {
	if kind == store.FavoriteCourses {
		if err := session.Loader.LoadCourses(ctx, ""); err != nil {
			return err
		}
		course, ok := findCourse(session.Store.State().Courses.Data, id)
		if !ok {
			return fmt.Errorf("course %s not found", id)
		}
		session.Store.Dispatch(store.FavoriteCourse(course))
		return printer.Message("Added to favorites: %s", course.Title)
	}

	if err := session.Loader.LoadNotes(ctx, ""); err != nil {
		return err
	}
	note, ok := findNote(session.Store.State().Notes.Data, id)
	if !ok {
		return fmt.Errorf("note %s not found", id)
	}
	session.Store.Dispatch(store.FavoriteNote(note))
	return printer.Message("Added to favorites: %s", note.Title)
}
