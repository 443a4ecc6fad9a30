// Package loader runs the fetch cycles of the catalog screens and records their
// outcome in the store.
package loader

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/at-ishikawa/notebot/internal/api"
	"github.com/at-ishikawa/notebot/internal/store"
)

type Loader struct {
	client api.Client
	store  *store.Store
	logger *slog.Logger
}

func New(client api.Client, s *store.Store, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		client: client,
		store:  s,
		logger: logger.With("component", "loader"),
	}
}

type fetch struct {
	section store.Section
	run     func(ctx context.Context) (store.SetData, error)
}

func (l *Loader) levels() fetch {
	return fetch{section: store.SectionLevels, run: func(ctx context.Context) (store.SetData, error) {
		levels, err := l.client.Levels(ctx)
		return store.SetLevels(levels), err
	}}
}

func (l *Loader) courses(levelID string) fetch {
	return fetch{section: store.SectionCourses, run: func(ctx context.Context) (store.SetData, error) {
		if levelID != "" {
			courses, err := l.client.CoursesByLevel(ctx, levelID)
			return store.SetCourses(courses), err
		}
		courses, err := l.client.Courses(ctx)
		return store.SetCourses(courses), err
	}}
}

func (l *Loader) notes(courseID string) fetch {
	return fetch{section: store.SectionNotes, run: func(ctx context.Context) (store.SetData, error) {
		if courseID != "" {
			notes, err := l.client.NotesByCourse(ctx, courseID)
			return store.SetNotes(notes), err
		}
		notes, err := l.client.Notes(ctx)
		return store.SetNotes(notes), err
	}}
}

// LoadHome fetches everything the home screen summarizes.
func (l *Loader) LoadHome(ctx context.Context) error {
	return l.load(ctx, store.SectionLevels, l.levels(), l.courses(""), l.notes(""))
}

func (l *Loader) LoadLevels(ctx context.Context) error {
	return l.load(ctx, store.SectionLevels, l.levels())
}

// LoadCourses fetches the courses of levelID, or all courses when it is empty,
// together with the notes and levels used for counts and titles.
func (l *Loader) LoadCourses(ctx context.Context, levelID string) error {
	return l.load(ctx, store.SectionCourses, l.courses(levelID), l.notes(""), l.levels())
}

// LoadNotes fetches the notes of courseID, or all notes when it is empty,
// together with the courses and levels used for titles.
func (l *Loader) LoadNotes(ctx context.Context, courseID string) error {
	return l.load(ctx, store.SectionNotes, l.notes(courseID), l.courses(""), l.levels())
}

// load runs fetches concurrently and commits all of their data only when every
// fetch succeeded. Results for a section are dropped when a newer load of the
// same section started in the meantime.
func (l *Loader) load(ctx context.Context, primary store.Section, fetches ...fetch) error {
	tickets := make([]store.Ticket, len(fetches))
	var primaryTicket store.Ticket
	for i, f := range fetches {
		tickets[i] = l.store.Begin(f.section)
		if f.section == primary {
			primaryTicket = tickets[i]
		}
	}
	l.store.Commit(primaryTicket, store.SetLoading{Section: primary, Loading: true})

	results := make([]store.SetData, len(fetches))
	group, groupCtx := errgroup.WithContext(ctx)
	for i, f := range fetches {
		group.Go(func() error {
			data, err := f.run(groupCtx)
			if err != nil {
				return err
			}
			results[i] = data
			return nil
		})
	}
	err := group.Wait()

	if ctx.Err() != nil {
		l.logger.Debug("load canceled", "section", primary)
		l.store.Commit(primaryTicket, store.SetLoading{Section: primary, Loading: false})
		return ctx.Err()
	}
	if err != nil {
		l.logger.Warn("load failed", "section", primary, "error", err)
		l.store.Commit(primaryTicket, store.SetError{Section: primary, Message: api.Message(err)})
		return fmt.Errorf("load %s > %w", primary, err)
	}

	for i := range fetches {
		if !l.store.Commit(tickets[i], results[i]) {
			l.logger.Debug("dropped superseded result", "section", fetches[i].section)
		}
	}
	return nil
}
