package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Readiness reports whether the backing stores are usable, with a
// per-dependency breakdown for the response body.
type Readiness func() (ok bool, deps gin.H)

// OpsHandler serves the operational endpoints: liveness, readiness and
// Prometheus metrics.
type OpsHandler struct {
	ready   Readiness
	started time.Time
}

func NewOpsHandler(ready Readiness) *OpsHandler {
	return &OpsHandler{ready: ready, started: time.Now()}
}

func (h *OpsHandler) Register(r *gin.Engine) {
	r.GET("/health", h.Health)
	r.GET("/ready", h.Ready)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// Health is pure liveness: the process is up.
func (h *OpsHandler) Health(c *gin.Context) {
	c.String(http.StatusOK, "healthy")
}

// Ready reports degraded storage: serving from the memory fallback while a
// real store is configured counts as not ready.
func (h *OpsHandler) Ready(c *gin.Context) {
	ok, deps := h.ready()
	status := gin.H{
		"deps":   deps,
		"uptime": time.Since(h.started).String(),
	}
	if !ok {
		status["status"] = "not_ready"
		c.JSON(http.StatusServiceUnavailable, status)
		return
	}
	status["status"] = "ready"
	c.JSON(http.StatusOK, status)
}
