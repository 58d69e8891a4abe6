package report

import (
	"context"
	"time"

	"github.com/ims/backend/internal/domain/partner"
	"github.com/ims/backend/internal/domain/report"
	"github.com/ims/backend/internal/domain/trade"
)

// DashboardService computes the landing-page summary. Everything is
// recomputed from scratch on every request; there is no caching.
type DashboardService struct {
	items     report.InventoryReportRepository
	orders    trade.OrderRepository
	sales     report.SalesReportRepository
	suppliers partner.SupplierRepository
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	items report.InventoryReportRepository,
	orders trade.OrderRepository,
	sales report.SalesReportRepository,
	suppliers partner.SupplierRepository,
) *DashboardService {
	return &DashboardService{
		items:     items,
		orders:    orders,
		sales:     sales,
		suppliers: suppliers,
	}
}

// Summary computes today's counters and the trailing 7-day trend.
// "Today" is the server's local calendar date.
func (s *DashboardService) Summary(ctx context.Context) (*report.DashboardSummary, error) {
	totalInventory, err := s.items.TotalQuantity(ctx)
	if err != nil {
		return nil, err
	}

	pending, err := s.orders.CountByStatus(ctx, trade.StatusPending)
	if err != nil {
		return nil, err
	}

	today := time.Now()
	todaySales, err := s.sales.SalesForDay(ctx, today)
	if err != nil {
		return nil, err
	}

	supplierCount, err := s.suppliers.Count(ctx)
	if err != nil {
		return nil, err
	}

	trend := make([]report.DailyTrendItem, 0, 7)
	for offset := 6; offset >= 0; offset-- {
		day := today.AddDate(0, 0, -offset)

		inventoryAsOf, err := s.items.QuantityCreatedBy(ctx, day)
		if err != nil {
			return nil, err
		}
		daySales, err := s.sales.SalesForDay(ctx, day)
		if err != nil {
			return nil, err
		}

		trend = append(trend, report.DailyTrendItem{
			Label:     day.Format("Mon"),
			Inventory: inventoryAsOf,
			Sales:     daySales,
		})
	}

	return &report.DashboardSummary{
		TotalInventory: totalInventory,
		PendingOrders:  pending,
		TodaySales:     todaySales,
		SupplierCount:  supplierCount,
		Trend:          trend,
	}, nil
}
