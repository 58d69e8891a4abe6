package handler

import (
	"github.com/gin-gonic/gin"
	reportapp "github.com/ims/backend/internal/application/report"
)

// DashboardHandler handles the dashboard summary endpoint
type DashboardHandler struct {
	BaseHandler
	dashboardService *reportapp.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *reportapp.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Summary returns the landing-page counters and the seven-day trend
func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.dashboardService.Summary(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, summary)
}
