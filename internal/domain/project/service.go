package project

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/kmsol/fabtrack/internal/repository"
)

// Service handles loading and saving of the project collection.
type Service struct {
	store    Store
	fallback FallbackProvider
	logger   *slog.Logger
	now      func() time.Time
}

// Option adjusts service construction.
type Option func(*Service)

// WithClock overrides the clock used for id assignment.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a new project service.
func NewService(store Store, fallback FallbackProvider, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{store: store, fallback: fallback, logger: logger, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load returns the persisted collection, or the fallback dataset when nothing
// has been saved yet. The fallback is never persisted here; persistence only
// happens on an explicit save. Corrupt persisted data propagates as an error.
func (s *Service) Load(ctx context.Context) ([]Project, error) {
	projects, err := s.store.Load(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			if s.logger != nil {
				s.logger.Debug("no persisted projects, serving fallback dataset")
			}
			return s.fallback.Projects(), nil
		}
		return nil, fmt.Errorf("loading projects: %w", err)
	}
	return projects, nil
}

// Save replaces the entry matching updated.ID in place, or, when no entry
// matches, assigns a fresh id and prepends the project. The resulting
// collection is persisted wholesale and returned. The input slice is not
// mutated.
func (s *Service) Save(ctx context.Context, current []Project, updated Project) ([]Project, error) {
	if len(updated.Items) == 0 {
		return nil, ErrNoItems
	}

	next := make([]Project, len(current))
	copy(next, current)

	_, idx, found := lo.FindIndexOf(next, func(p Project) bool { return p.ID == updated.ID })
	if found {
		next[idx] = updated
	} else {
		updated.ID = s.assignID(next)
		next = append([]Project{updated}, next...)
		if s.logger != nil {
			s.logger.Info("created project", "id", updated.ID, "company", updated.CompanyName)
		}
	}

	if err := s.store.Replace(ctx, next); err != nil {
		return nil, fmt.Errorf("saving projects: %w", err)
	}
	return next, nil
}

// Delete removes the entry with the given id. A missing id is a silent no-op;
// the (possibly unchanged) collection is still persisted and returned.
func (s *Service) Delete(ctx context.Context, current []Project, id string) ([]Project, error) {
	next := lo.Reject(current, func(p Project, _ int) bool { return p.ID == id })
	if err := s.store.Replace(ctx, next); err != nil {
		return nil, fmt.Errorf("deleting project: %w", err)
	}
	return next, nil
}

// EmptyTemplate returns a fresh project for the editor: stage FAT scheduled,
// one blank item, no history. The project id stays empty until save time.
func (s *Service) EmptyTemplate() Project {
	return Project{
		Stage: StageFATScheduled,
		Items: []ProjectItem{{
			ID:            uuid.NewString(),
			BOMStatus:     StatusNotStarted,
			DrawingStatus: StatusNotStarted,
			ProgramStatus: StatusNotStarted,
			TechSpecs:     []TechnicalSpec{},
		}},
		History: []HistoryLog{},
	}
}

// assignID derives a collection-unique id from the current time, bumping the
// millisecond value until it no longer collides.
func (s *Service) assignID(existing []Project) string {
	base := s.now().UnixMilli()
	for {
		id := strconv.FormatInt(base, 10)
		if !lo.ContainsBy(existing, func(p Project) bool { return p.ID == id }) {
			return id
		}
		base++
	}
}
