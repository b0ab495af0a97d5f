package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// dashboard recomputes every derived figure from the current collection on
// each request; there is no caching layer to invalidate.
func (h *Handler) dashboard(c *gin.Context) {
	projects, err := h.svc.Projects.Load(c.Request.Context())
	if err != nil {
		h.fail(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":       h.svc.Dashboard.Stats(projects),
		"monthlyPlan": h.svc.Dashboard.MonthlyPlan(projects),
		"byPM":        h.svc.Dashboard.ByPM(projects),
		"byPIC":       h.svc.Dashboard.ByPIC(projects),
	})
}

func (h *Handler) listNotices(c *gin.Context) {
	notices, err := h.svc.Notices.List(c.Request.Context())
	if err != nil {
		h.fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notices": notices})
}
