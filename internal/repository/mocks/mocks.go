package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/kmsol/fabtrack/internal/domain/notice"
	"github.com/kmsol/fabtrack/internal/domain/project"
)

// ProjectStore is a mock for repository.ProjectStore.
type ProjectStore struct {
	mock.Mock
}

func (m *ProjectStore) Load(ctx context.Context) ([]project.Project, error) {
	args := m.Called(ctx)
	if projects, ok := args.Get(0).([]project.Project); ok {
		return projects, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectStore) Replace(ctx context.Context, projects []project.Project) error {
	args := m.Called(ctx, projects)
	return args.Error(0)
}

// NoticeRepository is a mock for repository.NoticeRepository.
type NoticeRepository struct {
	mock.Mock
}

func (m *NoticeRepository) List(ctx context.Context) ([]notice.Notice, error) {
	args := m.Called(ctx)
	if notices, ok := args.Get(0).([]notice.Notice); ok {
		return notices, args.Error(1)
	}
	return nil, args.Error(1)
}
