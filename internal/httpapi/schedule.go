package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/kmsol/fabtrack/internal/dday"
	"github.com/kmsol/fabtrack/internal/domain/project"
)

// deadlineView is a dated milestone rendered in the D-Day convention.
type deadlineView struct {
	Date    string       `json:"date,omitempty"`
	Label   string       `json:"label,omitempty"`
	Urgency dday.Urgency `json:"urgency"`
}

type taskScheduleView struct {
	Kind   project.TaskKind   `json:"kind"`
	Status project.TaskStatus `json:"status"`
	deadlineView
}

type itemScheduleView struct {
	ItemID       string             `json:"itemId"`
	SerialNumber string             `json:"serialNumber"`
	Tasks        []taskScheduleView `json:"tasks"`
}

// projectSchedule serves the D-Day labels and urgency buckets for one
// project's milestones and per-item tasks, as shown on the detail view.
func (h *Handler) projectSchedule(c *gin.Context) {
	projects, err := h.svc.Projects.Load(c.Request.Context())
	if err != nil {
		h.fail(c, http.StatusInternalServerError, err)
		return
	}
	p, ok := project.Find(projects, c.Param("id"))
	if !ok {
		h.fail(c, http.StatusNotFound, project.ErrProjectNotFound)
		return
	}

	now := h.now()
	c.JSON(http.StatusOK, gin.H{
		"fat":      deadline(p.FATDate, p.Stage == project.StageFATComplete || p.Stage == project.StageDeliveryConfirmed || p.Stage == project.StageDeliveryComplete, now),
		"delivery": deadline(p.DeliveryDate, p.Stage == project.StageDeliveryComplete, now),
		"items": lo.Map(p.Items, func(it project.ProjectItem, _ int) itemScheduleView {
			return itemSchedule(it, now)
		}),
	})
}

func itemSchedule(it project.ProjectItem, now time.Time) itemScheduleView {
	tasks := lo.Map(project.TaskKinds, func(kind project.TaskKind, _ int) taskScheduleView {
		status, date := it.Task(kind)
		return taskScheduleView{
			Kind:         kind,
			Status:       status,
			deadlineView: deadline(date, status == project.StatusComplete, now),
		}
	})
	return itemScheduleView{ItemID: it.ID, SerialNumber: it.SerialNumber, Tasks: tasks}
}

func deadline(date string, completed bool, now time.Time) deadlineView {
	return deadlineView{
		Date:    date,
		Label:   dday.Label(date, now),
		Urgency: dday.Classify(date, completed, now),
	}
}
