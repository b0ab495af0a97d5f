package project

import (
	"strings"

	"github.com/samber/lo"
)

// DefaultPageSize is the fixed page size of the list view.
const DefaultPageSize = 5

// Query narrows a project collection. Empty fields match everything. The
// search term matches the company name or any item serial number as a
// case-insensitive substring; the remaining fields require exact equality.
type Query struct {
	Search string
	Stage  Stage
	PM     string
	PIC    string
}

// Filter applies the query predicates, preserving the input order. The result
// is always a subset of the input.
func Filter(projects []Project, q Query) []Project {
	term := strings.ToLower(q.Search)
	return lo.Filter(projects, func(p Project, _ int) bool {
		if term != "" {
			matched := strings.Contains(strings.ToLower(p.CompanyName), term) ||
				lo.SomeBy(p.Items, func(it ProjectItem) bool {
					return strings.Contains(strings.ToLower(it.SerialNumber), term)
				})
			if !matched {
				return false
			}
		}
		if q.Stage != "" && p.Stage != q.Stage {
			return false
		}
		if q.PM != "" && p.PM != q.PM {
			return false
		}
		if q.PIC != "" && !lo.SomeBy(p.Items, func(it ProjectItem) bool { return it.PIC == q.PIC }) {
			return false
		}
		return true
	})
}

// Paginate returns the contiguous slice for the 1-based page. Pages below 1
// clamp to the first page; pages past the end yield an empty slice.
func Paginate(projects []Project, pageSize, page int) []Project {
	if pageSize <= 0 {
		return []Project{}
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	if start >= len(projects) {
		return []Project{}
	}
	end := min(start+pageSize, len(projects))
	return projects[start:end]
}

// PageCount reports how many pages the collection spans at the given size.
func PageCount(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// PMs lists distinct project managers in first-appearance order, for the
// filter dropdown.
func PMs(projects []Project) []string {
	return lo.Uniq(lo.Map(projects, func(p Project, _ int) string { return p.PM }))
}

// PICs lists distinct item assignees across all projects in first-appearance
// order.
func PICs(projects []Project) []string {
	return lo.Uniq(lo.FlatMap(projects, func(p Project, _ int) []string {
		return lo.Map(p.Items, func(it ProjectItem, _ int) string { return it.PIC })
	}))
}
