package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prsummary/internal/app/dto"
)

func (h *Handler) Webhook(c *gin.Context) {
	var body dto.PullRequestEvent
	if err := c.ShouldBindJSON(&body); err != nil {
		h.badRequest(c, "no payload provided")
		return
	}

	if body.Action == "" || body.Repository.FullName == "" || body.PullRequest.Number <= 0 {
		h.badRequest(c, "action, repository.full_name and pull_request.number are required")
		return
	}

	outcome, err := h.SummarySvc.Process(c.Request.Context(), body.ToDomain())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.WebhookResponse{Status: string(outcome)})
}
