package trade

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is a recorded sale amount tied to an order and product.
// Rows are written out-of-band; the dashboard reads them for the
// daily sales figures.
type Sale struct {
	ID         uint
	OrderID    uint
	ProductID  uint
	Quantity   int
	SaleAmount decimal.Decimal
	CreatedAt  time.Time
}
