package httpapi

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"prsummary/internal/app/http/handler"
	"prsummary/internal/app/http/middleware"
)

func NewRouter(h *handler.Handler, log *zap.Logger) *gin.Engine {
	r := gin.New()

	r.Use(
		gin.Recovery(),
		middleware.ZapLogger(log),
		middleware.ZapRecovery(log),
	)

	r.GET("/health", h.Health)

	r.POST("/webhook", h.Webhook)

	r.GET("/summaries/:owner/:name/:pr_id", h.SummaryGet)

	return r
}
