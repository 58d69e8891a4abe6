package report

import "github.com/shopspring/decimal"

// DashboardSummary is the landing-page snapshot
type DashboardSummary struct {
	TotalInventory int64            `json:"total_inventory"`
	PendingOrders  int64            `json:"pending_orders"`
	TodaySales     decimal.Decimal  `json:"today_sales"`
	SupplierCount  int64            `json:"supplier_count"`
	Trend          []DailyTrendItem `json:"trend"`
}

// DailyTrendItem is one day in the trailing 7-day series. Inventory
// is cumulative (items created on or before the day); sales cover
// exactly that day.
type DailyTrendItem struct {
	Label     string          `json:"label"`
	Inventory int64           `json:"inventory"`
	Sales     decimal.Decimal `json:"sales"`
}
