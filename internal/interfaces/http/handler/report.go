package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	reportapp "github.com/ims/backend/internal/application/report"
	"github.com/ims/backend/internal/interfaces/http/middleware"
)

const reportDateLayout = "2006-01-02"

// ReportHandler handles PDF report generation
type ReportHandler struct {
	BaseHandler
	reportService *reportapp.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *reportapp.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GenerateReportRequest selects a report and an optional date window
type GenerateReportRequest struct {
	ReportType string `json:"report_type" binding:"required"`
	FromDate   string `json:"from_date" binding:"omitempty"`
	ToDate     string `json:"to_date" binding:"omitempty"`
}

// Generate renders the requested report and streams the PDF back as an
// attachment
func (h *ReportHandler) Generate(c *gin.Context) {
	var req GenerateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	from, err := parseReportDate(req.FromDate)
	if err != nil {
		h.BadRequest(c, "from_date must be formatted as YYYY-MM-DD")
		return
	}
	to, err := parseReportDate(req.ToDate)
	if err != nil {
		h.BadRequest(c, "to_date must be formatted as YYYY-MM-DD")
		return
	}

	generated, err := h.reportService.Generate(c.Request.Context(), req.ReportType, from, to)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", generated.Filename))
	c.Data(http.StatusOK, "application/pdf", generated.Data)
}

func parseReportDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(reportDateLayout, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
