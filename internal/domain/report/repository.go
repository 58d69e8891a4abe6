package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// OrderReportRepository runs the order-based report queries.
// Per-order totals fall back to the sum of line totals when the
// stored snapshot is missing.
type OrderReportRepository interface {
	OrderSummary(ctx context.Context, period Period) (*OrderSummary, error)
	SalesRegister(ctx context.Context, period Period) (*SalesRegister, error)
}

// InventoryReportRepository runs the stock report and dashboard
// inventory queries
type InventoryReportRepository interface {
	StockLevels(ctx context.Context) (*StockReport, error)
	TotalQuantity(ctx context.Context) (int64, error)
	// QuantityCreatedBy sums quantities of items created on or before the
	// end of the given day.
	QuantityCreatedBy(ctx context.Context, day time.Time) (int64, error)
}

// SalesReportRepository runs the dashboard sales queries
type SalesReportRepository interface {
	// SalesForDay sums sale amounts recorded on the given calendar day.
	SalesForDay(ctx context.Context, day time.Time) (decimal.Decimal, error)
}
