package dashboard

import (
	"slices"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/kmsol/fabtrack/internal/dday"
	"github.com/kmsol/fabtrack/internal/domain/project"
)

const (
	// dueSoonWindowDays bounds the "due this week" counter.
	dueSoonWindowDays = 7
	// delayHorizonDays is how far ahead an incomplete dated task already
	// counts as delayed.
	delayHorizonDays = 90
	// unknownMonthLabel buckets projects without a delivery date.
	unknownMonthLabel = "Unknown"
)

// Service computes derived dashboard figures. Every method is a pure pass
// over the supplied collection; nothing is cached between calls.
type Service struct {
	now func() time.Time
}

// Option adjusts service construction.
type Option func(*Service)

// WithClock overrides the clock used for day-distance checks.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a new dashboard service.
func NewService(opts ...Option) *Service {
	s := &Service{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Stats computes the headline counters. Unparsable dates never crash the
// pass; they simply fall outside every day-distance predicate.
func (s *Service) Stats(projects []project.Project) Stats {
	now := s.now()
	stats := Stats{Total: len(projects)}

	stats.Confirmed = lo.CountBy(projects, func(p project.Project) bool {
		return p.Stage == project.StageFATConfirmed
	})
	stats.DueThisWeek = lo.CountBy(projects, func(p project.Project) bool {
		days, ok := dday.Days(p.DeliveryDate, now, dday.Midnight)
		return ok && days >= 0 && days <= dueSoonWindowDays
	})

	for _, p := range projects {
		for _, it := range p.Items {
			for _, kind := range project.TaskKinds {
				status, date := it.Task(kind)
				if taskDelayed(status, date, now) {
					stats.DelayedTasks++
				}
			}
		}
	}
	return stats
}

// taskDelayed reports whether an incomplete task with a date inside the delay
// horizon needs attention. A completed task is never delayed; an absent date
// means unset, not delayed.
func taskDelayed(status project.TaskStatus, date string, now time.Time) bool {
	if status == project.StatusComplete {
		return false
	}
	days, ok := dday.Days(date, now, dday.Midnight)
	return ok && days <= delayHorizonDays
}

// MonthlyPlan groups projects by the month of their delivery date and counts
// completed item tasks per kind. Rows sort lexicographically by the "MM월"
// label; the Unknown bucket lands after the numeric months.
func (s *Service) MonthlyPlan(projects []project.Project) []MonthlyPlanRow {
	index := map[string]int{}
	rows := []MonthlyPlanRow{}
	for _, p := range projects {
		label := monthLabel(p.DeliveryDate)
		i, ok := index[label]
		if !ok {
			i = len(rows)
			index[label] = i
			rows = append(rows, MonthlyPlanRow{Name: label})
		}
		for _, it := range p.Items {
			if it.BOMStatus == project.StatusComplete {
				rows[i].BOM++
			}
			if it.DrawingStatus == project.StatusComplete {
				rows[i].Drawing++
			}
			if it.ProgramStatus == project.StatusComplete {
				rows[i].Program++
			}
		}
	}
	slices.SortFunc(rows, func(a, b MonthlyPlanRow) int {
		return strings.Compare(a.Name, b.Name)
	})
	return rows
}

func monthLabel(deliveryDate string) string {
	if len(deliveryDate) < 7 {
		return unknownMonthLabel
	}
	return deliveryDate[5:7] + "월"
}

// ByPM counts projects per project manager, rows in first-appearance order.
func (s *Service) ByPM(projects []project.Project) []NameCount {
	return countByName(lo.Map(projects, func(p project.Project, _ int) string { return p.PM }))
}

// ByPIC counts items per assignee across all projects, skipping items with no
// assignee. Rows are in first-appearance order.
func (s *Service) ByPIC(projects []project.Project) []NameCount {
	var names []string
	for _, p := range projects {
		for _, it := range p.Items {
			if it.PIC != "" {
				names = append(names, it.PIC)
			}
		}
	}
	return countByName(names)
}

// countByName tallies occurrences preserving first-appearance order.
func countByName(names []string) []NameCount {
	index := map[string]int{}
	out := []NameCount{}
	for _, name := range names {
		i, ok := index[name]
		if !ok {
			i = len(out)
			index[name] = i
			out = append(out, NameCount{Name: name})
		}
		out[i].Value++
	}
	return out
}
