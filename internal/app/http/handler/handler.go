package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"prsummary/internal/domain/summary"
)

type Handler struct {
	SummarySvc summary.Service
	Log        *zap.Logger
}

func New(summarySvc summary.Service, log *zap.Logger) *Handler {
	return &Handler{
		SummarySvc: summarySvc,
		Log:        log,
	}
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
