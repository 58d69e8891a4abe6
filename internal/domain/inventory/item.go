package inventory

import (
	"strings"
	"time"

	"github.com/ims/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// DefaultReorderLevel is applied when no reorder level is given
const DefaultReorderLevel = 10

// Item is a stocked product. Quantity may go negative: allocations
// never apply a floor check, matching the documented stock policy.
type Item struct {
	shared.BaseEntity
	Name         string
	SKU          string
	Category     string
	Quantity     int
	ReorderLevel int
	Price        *decimal.Decimal
	UpdatedAt    *time.Time
	CreatedBy    uint
}

// NewItem creates a new inventory item
func NewItem(name, sku, category string, quantity int, reorderLevel *int, price *decimal.Decimal, createdBy uint) (*Item, error) {
	name = strings.TrimSpace(name)
	sku = strings.TrimSpace(sku)

	if name == "" {
		return nil, shared.NewValidationError("Item name is required")
	}
	if len(name) > 100 {
		return nil, shared.NewValidationError("Item name must be at most 100 characters")
	}
	if sku == "" {
		return nil, shared.NewValidationError("SKU is required")
	}
	if len(sku) > 50 {
		return nil, shared.NewValidationError("SKU must be at most 50 characters")
	}
	if quantity < 0 {
		return nil, shared.NewValidationError("Quantity cannot be negative")
	}

	level := DefaultReorderLevel
	if reorderLevel != nil {
		if *reorderLevel < 0 {
			return nil, shared.NewValidationError("Reorder level cannot be negative")
		}
		level = *reorderLevel
	}

	return &Item{
		BaseEntity:   shared.NewBaseEntity(),
		Name:         name,
		SKU:          sku,
		Category:     strings.TrimSpace(category),
		Quantity:     quantity,
		ReorderLevel: level,
		Price:        price,
		CreatedBy:    createdBy,
	}, nil
}

// Update replaces the item's editable fields
func (i *Item) Update(name, sku, category string, quantity, reorderLevel int, price *decimal.Decimal) error {
	name = strings.TrimSpace(name)
	sku = strings.TrimSpace(sku)

	if name == "" {
		return shared.NewValidationError("Item name is required")
	}
	if len(name) > 100 {
		return shared.NewValidationError("Item name must be at most 100 characters")
	}
	if sku == "" {
		return shared.NewValidationError("SKU is required")
	}
	if len(sku) > 50 {
		return shared.NewValidationError("SKU must be at most 50 characters")
	}

	i.Name = name
	i.SKU = sku
	i.Category = strings.TrimSpace(category)
	i.Quantity = quantity
	i.ReorderLevel = reorderLevel
	i.Price = price
	i.touch()
	return nil
}

// EffectivePrice returns the unit price, treating an unset price as zero
func (i *Item) EffectivePrice() decimal.Decimal {
	if i.Price == nil {
		return decimal.Zero
	}
	return *i.Price
}

// Allocate removes stock for an order line. No floor check: the
// quantity is allowed to go negative.
func (i *Item) Allocate(quantity int) {
	i.Quantity -= quantity
	i.touch()
}

// Restore returns previously allocated stock
func (i *Item) Restore(quantity int) {
	i.Quantity += quantity
	i.touch()
}

// IsLowStock reports whether the item is at or below its reorder level
func (i *Item) IsLowStock() bool {
	return i.Quantity <= i.ReorderLevel
}

func (i *Item) touch() {
	now := time.Now()
	i.UpdatedAt = &now
}
