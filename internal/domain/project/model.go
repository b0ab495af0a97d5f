package project

import "slices"

// Stage marks the coarse lifecycle phase of a project, from scheduling the
// factory acceptance test through final delivery.
type Stage string

const (
	StageFATScheduled      Stage = "FAT scheduled"
	StageFATConfirmed      Stage = "FAT confirmed"
	StageFATComplete       Stage = "FAT complete"
	StageDeliveryConfirmed Stage = "delivery confirmed"
	StageDeliveryComplete  Stage = "delivery complete"
)

// TaskStatus is the state of one per-item preparation task.
type TaskStatus string

const (
	StatusNotStarted TaskStatus = "not started"
	StatusInProgress TaskStatus = "in progress"
	StatusComplete   TaskStatus = "complete"
)

// TaskKind identifies one of the three preparation tasks tracked per item.
type TaskKind string

const (
	TaskBOM     TaskKind = "bom"
	TaskDrawing TaskKind = "drawing"
	TaskProgram TaskKind = "program"
)

// TaskKinds lists the tracked task kinds in display order.
var TaskKinds = []TaskKind{TaskBOM, TaskDrawing, TaskProgram}

// TechnicalSpec is a free-text requirement with a completion checkbox,
// scoped to its parent item.
type TechnicalSpec struct {
	ID          string `json:"id"`
	Content     string `json:"content"`
	IsCompleted bool   `json:"isCompleted"`
}

// ProjectItem is one manufactured unit within a project. Item ids are unique
// within the parent project only. Task dates are "YYYY-MM-DD" or empty.
type ProjectItem struct {
	ID            string          `json:"id"`
	SerialNumber  string          `json:"serialNumber"`
	PIC           string          `json:"pic"`
	BOMStatus     TaskStatus      `json:"bomStatus"`
	BOMDate       string          `json:"bomDate,omitempty"`
	DrawingStatus TaskStatus      `json:"drawingStatus"`
	DrawingDate   string          `json:"drawingDate,omitempty"`
	ProgramStatus TaskStatus      `json:"programStatus"`
	ProgramDate   string          `json:"programDate,omitempty"`
	TechSpecs     []TechnicalSpec `json:"techSpecs"`
}

// Task returns the status and target date for the given task kind.
func (it ProjectItem) Task(kind TaskKind) (TaskStatus, string) {
	switch kind {
	case TaskBOM:
		return it.BOMStatus, it.BOMDate
	case TaskDrawing:
		return it.DrawingStatus, it.DrawingDate
	case TaskProgram:
		return it.ProgramStatus, it.ProgramDate
	default:
		return "", ""
	}
}

// HistoryLog is a display-only changelog entry. Nothing in this package
// mutates history.
type HistoryLog struct {
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
	Author    string `json:"author"`
	Message   string `json:"message"`
}

// Project is a client order holding one or more manufactured items. Project
// ids are opaque strings, immutable once assigned and unique across the
// collection.
type Project struct {
	ID           string        `json:"id"`
	CompanyName  string        `json:"companyName"`
	Country      string        `json:"country"`
	PM           string        `json:"pm"`
	Stage        Stage         `json:"stage"`
	FATDate      string        `json:"fatDate"`
	DeliveryDate string        `json:"deliveryDate"`
	Remarks      string        `json:"remarks"`
	Items        []ProjectItem `json:"items"`
	History      []HistoryLog  `json:"history"`
}

// RemoveItem drops the item with the given id and reports whether anything
// changed. The last remaining item can never be removed.
func (p *Project) RemoveItem(id string) bool {
	if len(p.Items) <= 1 {
		return false
	}
	idx := slices.IndexFunc(p.Items, func(it ProjectItem) bool { return it.ID == id })
	if idx < 0 {
		return false
	}
	p.Items = slices.Delete(p.Items, idx, idx+1)
	return true
}

// Find looks up a project by id.
func Find(projects []Project, id string) (Project, bool) {
	idx := slices.IndexFunc(projects, func(p Project) bool { return p.ID == id })
	if idx < 0 {
		return Project{}, false
	}
	return projects[idx], true
}
