package trade

import (
	"time"

	"github.com/ims/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Order statuses observed in practice. Status is free text and not a
// state machine; these constants cover the values the system writes.
const (
	StatusPending   = "Pending"
	StatusCompleted = "Completed"
)

// Order is a customer order with its line items
type Order struct {
	ID          uint
	CustomerID  uint
	OrderDate   time.Time
	Status      string
	TotalAmount *decimal.Decimal
	CreatedBy   uint
	Items       []OrderItem
}

// OrderItem is a single order line. UnitPrice is snapshotted from the
// inventory item at allocation time.
type OrderItem struct {
	ID          uint
	OrderID     uint
	InventoryID uint
	Quantity    int
	UnitPrice   decimal.Decimal
}

// TotalPrice is the computed line total. It is never stored.
func (i OrderItem) TotalPrice() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// NewOrder creates a pending order for a customer
func NewOrder(customerID, createdBy uint) (*Order, error) {
	if customerID == 0 {
		return nil, shared.NewValidationError("Customer is required")
	}

	return &Order{
		CustomerID: customerID,
		OrderDate:  time.Now(),
		Status:     StatusPending,
		CreatedBy:  createdBy,
	}, nil
}

// AddAllocatedItem appends a line whose stock has already been taken
// from inventory
func (o *Order) AddAllocatedItem(inventoryID uint, quantity int, unitPrice decimal.Decimal) {
	o.Items = append(o.Items, OrderItem{
		OrderID:     o.ID,
		InventoryID: inventoryID,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
	})
}

// RecalculateTotal snapshots the sum of line totals into TotalAmount
func (o *Order) RecalculateTotal() {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.TotalPrice())
	}
	o.TotalAmount = &total
}

// ItemCount returns the summed quantity across all lines
func (o *Order) ItemCount() int {
	count := 0
	for _, item := range o.Items {
		count += item.Quantity
	}
	return count
}

// IsCompleted reports whether the order counts toward sales figures
func (o *Order) IsCompleted() bool {
	return o.Status == StatusCompleted
}
