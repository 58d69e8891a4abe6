package report

import (
	"context"
	"fmt"
	"time"

	"github.com/ims/backend/internal/domain/report"
	"github.com/ims/backend/internal/infrastructure/pdf"
	"go.uber.org/zap"
)

// GeneratedReport is a rendered PDF ready to be sent as an attachment
type GeneratedReport struct {
	Filename string
	Data     []byte
}

// ReportService builds report documents and renders them to PDF
type ReportService struct {
	orders   report.OrderReportRepository
	items    report.InventoryReportRepository
	renderer pdf.Renderer
	logger   *zap.Logger
}

// NewReportService creates a new ReportService
func NewReportService(
	orders report.OrderReportRepository,
	items report.InventoryReportRepository,
	renderer pdf.Renderer,
	logger *zap.Logger,
) *ReportService {
	return &ReportService{
		orders:   orders,
		items:    items,
		renderer: renderer,
		logger:   logger,
	}
}

// Generate runs the report query for the given type and renders the
// result. Unknown types fail with INVALID_REPORT_TYPE; the date window
// is widened to whole days.
func (s *ReportService) Generate(ctx context.Context, reportType string, from, to *time.Time) (*GeneratedReport, error) {
	kind, err := report.ParseKind(reportType)
	if err != nil {
		return nil, err
	}
	period := report.NewPeriod(from, to)

	var doc pdf.Document
	switch kind {
	case report.KindOrderSummary:
		summary, err := s.orders.OrderSummary(ctx, period)
		if err != nil {
			return nil, err
		}
		doc, err = pdf.OrderSummaryDocument(summary, period)
		if err != nil {
			return nil, err
		}
	case report.KindInventoryStock:
		stock, err := s.items.StockLevels(ctx)
		if err != nil {
			return nil, err
		}
		doc, err = pdf.InventoryStockDocument(stock)
		if err != nil {
			return nil, err
		}
	case report.KindSalesRegister:
		register, err := s.orders.SalesRegister(ctx, period)
		if err != nil {
			return nil, err
		}
		doc, err = pdf.SalesRegisterDocument(register, period)
		if err != nil {
			return nil, err
		}
	}

	data, err := s.renderer.Render(ctx, doc)
	if err != nil {
		s.logger.Error("report rendering failed",
			zap.String("report_type", string(kind)),
			zap.Error(err))
		return nil, err
	}

	return &GeneratedReport{
		Filename: fmt.Sprintf("%s_%s.pdf", kind, time.Now().Format("200601021504")),
		Data:     data,
	}, nil
}
