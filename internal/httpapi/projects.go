package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kmsol/fabtrack/internal/domain/project"
)

// listProjects serves the filtered, paginated list view along with the
// distinct PM/PIC values the filter dropdowns need.
func (h *Handler) listProjects(c *gin.Context) {
	projects, err := h.svc.Projects.Load(c.Request.Context())
	if err != nil {
		h.fail(c, http.StatusInternalServerError, err)
		return
	}

	q := project.Query{
		Search: c.Query("search"),
		Stage:  project.Stage(c.Query("stage")),
		PM:     c.Query("pm"),
		PIC:    c.Query("pic"),
	}
	filtered := project.Filter(projects, q)

	page := 1
	if raw := c.Query("page"); raw != "" {
		p, err := strconv.Atoi(raw)
		if err != nil {
			h.fail(c, http.StatusBadRequest, fmt.Errorf("invalid page %q", raw))
			return
		}
		page = p
	}

	c.JSON(http.StatusOK, gin.H{
		"projects":  project.Paginate(filtered, project.DefaultPageSize, page),
		"total":     len(projects),
		"filtered":  len(filtered),
		"page":      page,
		"pageCount": project.PageCount(len(filtered), project.DefaultPageSize),
		"pms":       project.PMs(projects),
		"pics":      project.PICs(projects),
	})
}

func (h *Handler) getProject(c *gin.Context) {
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
	c.JSON(http.StatusOK, p)
}

func (h *Handler) projectTemplate(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Projects.EmptyTemplate())
}

// saveProject creates or replaces a project. A new project (unknown or empty
// id) is prepended to the collection, so it comes back as the first entry.
func (h *Handler) saveProject(c *gin.Context) {
	var updated project.Project
	if err := c.ShouldBindJSON(&updated); err != nil {
		h.fail(c, http.StatusBadRequest, fmt.Errorf("invalid project body: %w", err))
		return
	}

	ctx := c.Request.Context()
	current, err := h.svc.Projects.Load(ctx)
	if err != nil {
		h.fail(c, http.StatusInternalServerError, err)
		return
	}

	_, existed := project.Find(current, updated.ID)
	next, err := h.svc.Projects.Save(ctx, current, updated)
	if err != nil {
		if errors.Is(err, project.ErrNoItems) {
			h.fail(c, http.StatusBadRequest, err)
			return
		}
		h.fail(c, http.StatusInternalServerError, err)
		return
	}

	saved := next[0]
	if existed {
		saved, _ = project.Find(next, updated.ID)
	}
	c.JSON(http.StatusOK, gin.H{
		"project": saved,
		"count":   len(next),
	})
}

// deleteProject removes a project. The confirm flag is the one-shot gate in
// front of the destructive write; deleting an absent id is still a no-op
// success, matching the store contract.
func (h *Handler) deleteProject(c *gin.Context) {
	if c.Query("confirm") != "true" {
		h.fail(c, http.StatusUnprocessableEntity, errors.New("delete requires confirm=true"))
		return
	}

	ctx := c.Request.Context()
	current, err := h.svc.Projects.Load(ctx)
	if err != nil {
		h.fail(c, http.StatusInternalServerError, err)
		return
	}
	next, err := h.svc.Projects.Delete(ctx, current, c.Param("id"))
	if err != nil {
		h.fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(next)})
}
