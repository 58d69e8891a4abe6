package inventory

import (
	"time"

	"github.com/ims/backend/internal/domain/inventory"
	"github.com/shopspring/decimal"
)

// CreateItemRequest represents a request to create an inventory item
type CreateItemRequest struct {
	Name         string           `json:"name" binding:"required,min=1,max=100"`
	SKU          string           `json:"sku" binding:"required,min=1,max=50"`
	Category     string           `json:"category" binding:"max=100"`
	Quantity     int              `json:"quantity" binding:"min=0"`
	ReorderLevel *int             `json:"reorder_level" binding:"omitempty,min=0"`
	Price        *decimal.Decimal `json:"price"`
}

// UpdateItemRequest replaces an item's editable fields
type UpdateItemRequest struct {
	Name         string           `json:"name" binding:"required,min=1,max=100"`
	SKU          string           `json:"sku" binding:"required,min=1,max=50"`
	Category     string           `json:"category" binding:"max=100"`
	Quantity     int              `json:"quantity"`
	ReorderLevel int              `json:"reorder_level" binding:"min=0"`
	Price        *decimal.Decimal `json:"price"`
}

// ItemResponse represents an inventory item in API responses
type ItemResponse struct {
	ID           uint            `json:"id"`
	Name         string          `json:"name"`
	SKU          string          `json:"sku"`
	Category     string          `json:"category"`
	Quantity     int             `json:"quantity"`
	ReorderLevel int             `json:"reorder_level"`
	Price        decimal.Decimal `json:"price"`
	LowStock     bool            `json:"low_stock"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    *time.Time      `json:"updated_at,omitempty"`
}

// ToItemResponse converts a domain item to its API representation
func ToItemResponse(i *inventory.Item) ItemResponse {
	return ItemResponse{
		ID:           i.ID,
		Name:         i.Name,
		SKU:          i.SKU,
		Category:     i.Category,
		Quantity:     i.Quantity,
		ReorderLevel: i.ReorderLevel,
		Price:        i.EffectivePrice(),
		LowStock:     i.IsLowStock(),
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
}
