package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/at-ishikawa/notebot/internal/bootstrap"
	"github.com/at-ishikawa/notebot/internal/catalog"
	"github.com/at-ishikawa/notebot/internal/cli"
	"github.com/at-ishikawa/notebot/internal/store"
)

type CourseOrderFlag catalog.CourseOrder

// Set implements pflag.Value.
func (f *CourseOrderFlag) Set(v string) error {
	order, err := catalog.ParseCourseOrder(v)
	if err != nil {
		return fmt.Errorf("%w, valid values are %s", err, joinOrders(catalog.AllCourseOrders))
	}
	*f = CourseOrderFlag(order)
	return nil
}

// String implements pflag.Value.
func (f *CourseOrderFlag) String() string {
	if f == nil {
		return ""
	}
	return string(*f)
}

// Type implements pflag.Value.
func (f *CourseOrderFlag) Type() string {
	return "CourseOrder"
}

type NoteOrderFlag catalog.NoteOrder

// Set implements pflag.Value.
func (f *NoteOrderFlag) Set(v string) error {
	order, err := catalog.ParseNoteOrder(v)
	if err != nil {
		return fmt.Errorf("%w, valid values are %s", err, joinOrders(catalog.AllNoteOrders))
	}
	*f = NoteOrderFlag(order)
	return nil
}

// String implements pflag.Value.
func (f *NoteOrderFlag) String() string {
	if f == nil {
		return ""
	}
	return string(*f)
}

// Type implements pflag.Value.
func (f *NoteOrderFlag) Type() string {
	return "NoteOrder"
}

var (
	_ pflag.Value = (*CourseOrderFlag)(nil)
	_ pflag.Value = (*NoteOrderFlag)(nil)
)

func joinOrders[T ~string](orders []T) string {
	values := make([]string, 0, len(orders))
	for _, order := range orders {
		values = append(values, string(order))
	}
	return strings.Join(values, ", ")
}

func newStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show catalog totals and favorites",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd, func(ctx context.Context, session *bootstrap.Session, printer *cli.Printer) error {
				if err := session.Loader.LoadHome(ctx); err != nil {
					return err
				}
				return printer.Stats(session.Store.State())
			})
		},
	}
}

func newLevelsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "List levels with their number of courses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd, func(ctx context.Context, session *bootstrap.Session, printer *cli.Printer) error {
				if err := session.Loader.LoadHome(ctx); err != nil {
					return err
				}
				return printer.Levels(session.Store.State())
			})
		},
	}
}

func newCoursesCommand() *cobra.Command {
	var levelID string
	order := CourseOrderFlag(catalog.CourseOrderTitle)

	command := &cobra.Command{
		Use:   "courses",
		Short: "List courses, optionally of one level",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd, func(ctx context.Context, session *bootstrap.Session, printer *cli.Printer) error {
				if err := session.Loader.LoadCourses(ctx, levelID); err != nil {
					return err
				}
				state := session.Store.State()
				courses := catalog.CoursesForLevel(state.Courses.Data, levelID)
				return printer.Courses(state, catalog.SortCourses(courses, catalog.CourseOrder(order), state.Notes.Data))
			})
		},
	}
	flags := command.Flags()
	flags.StringVar(&levelID, "level", "", "Only list the courses of this level ID")
	flags.Var(&order, "sort", "Sort order for the output. Options: "+joinOrders(catalog.AllCourseOrders))
	return command
}

func newNotesCommand() *cobra.Command {
	var courseID string
	order := NoteOrderFlag(catalog.NoteOrderNewest)

	command := &cobra.Command{
		Use:   "notes",
		Short: "List notes, optionally of one course",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd, func(ctx context.Context, session *bootstrap.Session, printer *cli.Printer) error {
				if err := session.Loader.LoadNotes(ctx, courseID); err != nil {
					return err
				}
				state := session.Store.State()
				notes := catalog.NotesForCourse(state.Notes.Data, courseID)
				return printer.Notes(state, catalog.SortNotes(notes, catalog.NoteOrder(order)))
			})
		},
	}
	flags := command.Flags()
	flags.StringVar(&courseID, "course", "", "Only list the notes of this course ID")
	flags.Var(&order, "sort", "Sort order for the output. Options: "+joinOrders(catalog.AllNoteOrders))
	return command
}

func newSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search notes by note, course or level title",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			return runSession(cmd, func(ctx context.Context, session *bootstrap.Session, printer *cli.Printer) error {
				if err := session.Loader.LoadHome(ctx); err != nil {
					return err
				}
				state := session.Store.State()
				return printer.Notes(state, catalog.Search(query, state.Notes.Data, state.Courses.Data, state.Levels.Data))
			})
		},
	}
}

func newOpenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "open <note id>",
		Short: "Print the link a note is opened with",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd, func(ctx context.Context, session *bootstrap.Session, printer *cli.Printer) error {
				if err := session.Loader.LoadNotes(ctx, ""); err != nil {
					return err
				}
				state := session.Store.State()
				note, ok := findNote(state.Notes.Data, args[0])
				if !ok {
					return fmt.Errorf("note %s not found", args[0])
				}
				session.Store.Dispatch(store.AddRecentLink{Note: note})
				return printer.Link(note, state.Preferences.LinkFor(note))
			})
		},
	}
}

func findNote(notes []catalog.Note, id string) (catalog.Note, bool) {
	for _, note := range notes {
		if note.ID == id {
			return note, true
		}
	}
	return catalog.Note{}, false
}

func findCourse(courses []catalog.Course, id string) (catalog.Course, bool) {
	for _, course := range courses {
		if course.ID == id {
			return course, true
		}
	}
	return catalog.Course{}, false
}
