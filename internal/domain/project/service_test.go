package project_test

import (
	"context"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kmsol/fabtrack/internal/domain/project"
	"github.com/kmsol/fabtrack/internal/repository"
	"github.com/kmsol/fabtrack/internal/repository/mocks"
)

// staticFallback serves a fixed collection, standing in for the seed dataset.
type staticFallback []project.Project

func (f staticFallback) Projects() []project.Project { return f }

func fixtureProjects() []project.Project {
	item := func(id string) project.ProjectItem {
		return project.ProjectItem{
			ID:            id,
			SerialNumber:  "PSM000" + id,
			BOMStatus:     project.StatusNotStarted,
			DrawingStatus: project.StatusNotStarted,
			ProgramStatus: project.StatusNotStarted,
			TechSpecs:     []project.TechnicalSpec{},
		}
	}
	return []project.Project{
		{ID: "a", CompanyName: "SHANDONG", PM: "신경호", Stage: project.StageFATScheduled, Items: []project.ProjectItem{item("a1")}},
		{ID: "b", CompanyName: "HEALTHCARE", PM: "장홍기", Stage: project.StageFATConfirmed, Items: []project.ProjectItem{item("b1")}},
		{ID: "c", CompanyName: "AUTO PARTS", PM: "이영희", Stage: project.StageDeliveryConfirmed, Items: []project.ProjectItem{item("c1")}},
	}
}

func TestService_LoadFallsBackWhenEmpty(t *testing.T) {
	ctx := context.Background()
	store := &mocks.ProjectStore{}
	store.On("Load", ctx).Return(nil, repository.ErrNotFound)

	svc := project.NewService(store, staticFallback(fixtureProjects()), nil)
	projects, err := svc.Load(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 3)

	// The fallback must never be persisted by a plain load.
	store.AssertNotCalled(t, "Replace", mock.Anything, mock.Anything)
}

func TestService_LoadPersistedWins(t *testing.T) {
	ctx := context.Background()
	persisted := fixtureProjects()[:1]
	store := &mocks.ProjectStore{}
	store.On("Load", ctx).Return(persisted, nil)

	svc := project.NewService(store, staticFallback(fixtureProjects()), nil)
	projects, err := svc.Load(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	require.Equal(t, "a", projects[0].ID)
}

func TestService_LoadCorruptPropagates(t *testing.T) {
	ctx := context.Background()
	store := &mocks.ProjectStore{}
	store.On("Load", ctx).Return(nil, fmt.Errorf("%w: slot \"projects\"", repository.ErrCorrupt))

	svc := project.NewService(store, staticFallback(nil), nil)
	_, err := svc.Load(ctx)
	require.ErrorIs(t, err, repository.ErrCorrupt)
}

func TestService_SaveReplacesInPlace(t *testing.T) {
	ctx := context.Background()
	current := fixtureProjects()
	store := &mocks.ProjectStore{}
	store.On("Replace", ctx, mock.Anything).Return(nil)

	svc := project.NewService(store, staticFallback(nil), nil)

	updated := current[1]
	updated.CompanyName = "HEALTHCARE LTD"
	next, err := svc.Save(ctx, current, updated)
	require.NoError(t, err)

	require.Len(t, next, len(current))
	require.Equal(t, []string{"a", "b", "c"}, ids(next))
	require.Equal(t, "HEALTHCARE LTD", next[1].CompanyName)
	require.Equal(t, "SHANDONG", next[0].CompanyName)
	require.Equal(t, "AUTO PARTS", next[2].CompanyName)

	// The caller's slice stays untouched.
	require.Equal(t, "HEALTHCARE", current[1].CompanyName)
}

func TestService_SaveNewPrepends(t *testing.T) {
	ctx := context.Background()
	current := fixtureProjects()
	store := &mocks.ProjectStore{}
	store.On("Replace", ctx, mock.Anything).Return(nil)

	svc := project.NewService(store, staticFallback(nil), nil)

	fresh := svc.EmptyTemplate()
	fresh.CompanyName = "NEWCO"
	next, err := svc.Save(ctx, current, fresh)
	require.NoError(t, err)

	require.Len(t, next, len(current)+1)
	require.NotEmpty(t, next[0].ID)
	require.Equal(t, "NEWCO", next[0].CompanyName)
	require.Equal(t, []string{"a", "b", "c"}, ids(next[1:]))
	require.NotContains(t, ids(next[1:]), next[0].ID)
}

func TestService_SaveUnknownIDGetsFreshID(t *testing.T) {
	ctx := context.Background()
	current := fixtureProjects()
	store := &mocks.ProjectStore{}
	store.On("Replace", ctx, mock.Anything).Return(nil)

	svc := project.NewService(store, staticFallback(nil), nil)

	stray := current[0]
	stray.ID = "never-seen"
	next, err := svc.Save(ctx, current, stray)
	require.NoError(t, err)
	require.Len(t, next, 4)
	require.NotEqual(t, "never-seen", next[0].ID)
}

func TestService_SaveIDCollisionBumps(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, time.December, 20, 10, 0, 0, 0, time.UTC)
	taken := strconv.FormatInt(now.UnixMilli(), 10)

	current := fixtureProjects()
	current[0].ID = taken

	store := &mocks.ProjectStore{}
	store.On("Replace", ctx, mock.Anything).Return(nil)

	svc := project.NewService(store, staticFallback(nil), nil,
		project.WithClock(func() time.Time { return now }))

	fresh := svc.EmptyTemplate()
	next, err := svc.Save(ctx, current, fresh)
	require.NoError(t, err)
	require.Equal(t, strconv.FormatInt(now.UnixMilli()+1, 10), next[0].ID)
}

func TestService_SaveRejectsZeroItems(t *testing.T) {
	ctx := context.Background()
	store := &mocks.ProjectStore{}

	svc := project.NewService(store, staticFallback(nil), nil)
	_, err := svc.Save(ctx, fixtureProjects(), project.Project{ID: "a"})
	require.ErrorIs(t, err, project.ErrNoItems)
	store.AssertNotCalled(t, "Replace", mock.Anything, mock.Anything)
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	store := &mocks.ProjectStore{}
	store.On("Replace", ctx, mock.Anything).Return(nil)

	svc := project.NewService(store, staticFallback(nil), nil)
	next, err := svc.Delete(ctx, fixtureProjects(), "b")
	require.NoError(t, err)
	require.Equal(t, []string{"a", "c"}, ids(next))
}

func TestService_DeleteMissingIDIsNoop(t *testing.T) {
	ctx := context.Background()
	store := &mocks.ProjectStore{}
	store.On("Replace", ctx, mock.Anything).Return(nil)

	svc := project.NewService(store, staticFallback(nil), nil)
	next, err := svc.Delete(ctx, fixtureProjects(), "nope")
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, ids(next))
}

func TestService_EmptyTemplate(t *testing.T) {
	svc := project.NewService(&mocks.ProjectStore{}, staticFallback(nil), nil)

	tmpl := svc.EmptyTemplate()
	require.Empty(t, tmpl.ID)
	require.Equal(t, project.StageFATScheduled, tmpl.Stage)
	require.Len(t, tmpl.Items, 1)
	require.NotEmpty(t, tmpl.Items[0].ID)
	require.Equal(t, project.StatusNotStarted, tmpl.Items[0].BOMStatus)
	require.Equal(t, project.StatusNotStarted, tmpl.Items[0].DrawingStatus)
	require.Equal(t, project.StatusNotStarted, tmpl.Items[0].ProgramStatus)
	require.Empty(t, tmpl.History)
}

func ids(projects []project.Project) []string {
	out := make([]string, len(projects))
	for i, p := range projects {
		out[i] = p.ID
	}
	return out
}
