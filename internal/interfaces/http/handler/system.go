package handler

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ims/backend/internal/interfaces/http/dto"
)

// Pinger reports whether a backing service is reachable
type Pinger interface {
	Ping() error
}

// SystemHandler handles health and readiness endpoints
type SystemHandler struct {
	BaseHandler
	db        Pinger
	startTime time.Time
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(db Pinger) *SystemHandler {
	return &SystemHandler{
		db:        db,
		startTime: time.Now(),
	}
}

// HealthResponse reports process liveness
type HealthResponse struct {
	Status    string `json:"status"`
	GoVersion string `json:"go_version"`
	Uptime    string `json:"uptime"`
}

// Health reports that the process is alive. It never touches backing
// services.
func (h *SystemHandler) Health(c *gin.Context) {
	h.Success(c, HealthResponse{
		Status:    "ok",
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
	})
}

// Ready reports whether the service can take traffic
func (h *SystemHandler) Ready(c *gin.Context) {
	if err := h.db.Ping(); err != nil {
		c.JSON(http.StatusServiceUnavailable, dto.NewErrorResponseWithRequestID(
			dto.ErrCodeInternal,
			"Database is unreachable",
			getRequestID(c),
		))
		return
	}

	h.Success(c, gin.H{"status": "ready"})
}
