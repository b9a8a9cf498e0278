package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/truck_invoice_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// PingFunc checks the database. A nil PingFunc makes /health a pure liveness probe.
type PingFunc func(ctx context.Context) error

// healthHandler godoc
// @Summary Health probe
// @Description Answers OK. When the database check is enabled the database is pinged first.
// @Tags root
// @Produce plain
// @Success 200 {string} string "OK"
// @Failure 503 {string} string "Database unavailable"
// @Router /health [get]
func healthHandler(ping PingFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ping != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := ping(ctx); err != nil {
				middleware.GetLoggerFromCtx(c.Request.Context()).Error("Health check failed", slog.String("error", err.Error()))
				c.String(http.StatusServiceUnavailable, "Database unavailable")
				return
			}
		}
		c.String(http.StatusOK, "OK")
	}
}
