package httpapi

import (
	"context"

	"github.com/kmsol/fabtrack/internal/domain/dashboard"
	"github.com/kmsol/fabtrack/internal/domain/notice"
	"github.com/kmsol/fabtrack/internal/domain/project"
)

// ProjectService is the project surface the API depends on.
type ProjectService interface {
	Load(ctx context.Context) ([]project.Project, error)
	Save(ctx context.Context, current []project.Project, updated project.Project) ([]project.Project, error)
	Delete(ctx context.Context, current []project.Project, id string) ([]project.Project, error)
	EmptyTemplate() project.Project
}

// DashboardService computes the derived dashboard figures.
type DashboardService interface {
	Stats(projects []project.Project) dashboard.Stats
	MonthlyPlan(projects []project.Project) []dashboard.MonthlyPlanRow
	ByPM(projects []project.Project) []dashboard.NameCount
	ByPIC(projects []project.Project) []dashboard.NameCount
}

// NoticeService serves the read-only notice board.
type NoticeService interface {
	List(ctx context.Context) ([]notice.Notice, error)
}
