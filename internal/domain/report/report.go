package report

import (
	"time"

	"github.com/ims/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Kind identifies a report type
type Kind string

const (
	KindOrderSummary   Kind = "OrderSummary"
	KindInventoryStock Kind = "InventoryStock"
	KindSalesRegister  Kind = "SalesRegister"
)

// ParseKind validates a report type string
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindOrderSummary, KindInventoryStock, KindSalesRegister:
		return Kind(s), nil
	default:
		return "", shared.ErrInvalidReportType
	}
}

// Title returns the human-readable report title
func (k Kind) Title() string {
	switch k {
	case KindOrderSummary:
		return "Order Summary Report"
	case KindInventoryStock:
		return "Inventory Stock Report"
	case KindSalesRegister:
		return "Sales Register Report"
	default:
		return string(k)
	}
}

// Period is the inclusive date window a report covers. Nil bounds
// leave that side of the window open.
type Period struct {
	From *time.Time
	To   *time.Time
}

// NewPeriod normalizes raw dates into a report window: From is
// truncated to the start of its day, To is extended to the last
// instant of its day.
func NewPeriod(from, to *time.Time) Period {
	p := Period{}
	if from != nil {
		start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
		p.From = &start
	}
	if to != nil {
		end := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, to.Location()).
			Add(24*time.Hour - time.Nanosecond)
		p.To = &end
	}
	return p
}

// OrderSummaryRow is one order in the order summary report
type OrderSummaryRow struct {
	OrderID      uint
	CustomerName string
	OrderDate    time.Time
	Status       string
	Total        decimal.Decimal
}

// OrderSummary is the order summary report payload
type OrderSummary struct {
	Rows       []OrderSummaryRow
	OrderCount int
	GrandTotal decimal.Decimal
}

// StockRow is one item in the inventory stock report
type StockRow struct {
	Name         string
	SKU          string
	Category     string
	Quantity     int
	ReorderLevel int
	Price        decimal.Decimal
	LowStock     bool
}

// StockReport is the inventory stock report payload
type StockReport struct {
	Rows          []StockRow
	ItemCount     int
	LowStockCount int
}

// SalesRegisterRow is one completed order in the sales register
type SalesRegisterRow struct {
	OrderID      uint
	CustomerName string
	OrderDate    time.Time
	ItemsCount   int
	Total        decimal.Decimal
}

// SalesRegister is the sales register report payload
type SalesRegister struct {
	Rows       []SalesRegisterRow
	OrderCount int
	TotalSales decimal.Decimal
}
