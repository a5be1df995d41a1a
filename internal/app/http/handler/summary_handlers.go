package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prsummary/internal/app/dto"
	"prsummary/internal/domain/summary"
)

// SummaryGet returns the persisted record for one pull request.
// The repo full name is split across two path segments.
func (h *Handler) SummaryGet(c *gin.Context) {
	owner := c.Param("owner")
	name := c.Param("name")
	prID := c.Param("pr_id")

	if owner == "" || name == "" || prID == "" {
		h.badRequest(c, "owner, name and pr_id are required")
		return
	}

	rec, err := h.SummarySvc.Get(c.Request.Context(), summary.Key{
		PRID: prID,
		Repo: owner + "/" + name,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, struct {
		Summary dto.Summary `json:"summary"`
	}{
		Summary: dto.SummaryFromDomain(rec),
	})
}
