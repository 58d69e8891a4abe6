package trade

import (
	"time"

	"github.com/ims/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// OrderLineRequest is one requested order line
type OrderLineRequest struct {
	InventoryID uint `json:"inventory_id" binding:"required"`
	Quantity    int  `json:"quantity" binding:"required,min=1"`
}

// CreateOrderRequest represents a request to place an order
type CreateOrderRequest struct {
	CustomerID uint               `json:"customer_id" binding:"required"`
	Items      []OrderLineRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateOrderRequest replaces an order's customer, status and lines
type UpdateOrderRequest struct {
	CustomerID uint               `json:"customer_id" binding:"required"`
	Status     string             `json:"status" binding:"required,max=50"`
	Items      []OrderLineRequest `json:"items" binding:"required,dive"`
}

// OrderItemResponse represents an order line in API responses
type OrderItemResponse struct {
	ID          uint            `json:"id"`
	InventoryID uint            `json:"inventory_id"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID          uint                `json:"id"`
	CustomerID  uint                `json:"customer_id"`
	OrderDate   time.Time           `json:"order_date"`
	Status      string              `json:"status"`
	TotalAmount decimal.Decimal     `json:"total_amount"`
	ItemCount   int                 `json:"item_count"`
	Items       []OrderItemResponse `json:"items"`
}

// OrderResult is the write-operation payload. SkippedItems counts
// requested lines whose inventory id did not exist; those lines are
// dropped without failing the order.
type OrderResult struct {
	Order        OrderResponse `json:"order"`
	SkippedItems int           `json:"skipped_items"`
}

// ToOrderResponse converts a domain order to its API representation
func ToOrderResponse(o *trade.Order) OrderResponse {
	response := OrderResponse{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		OrderDate:  o.OrderDate,
		Status:     o.Status,
		ItemCount:  o.ItemCount(),
		Items:      make([]OrderItemResponse, len(o.Items)),
	}
	if o.TotalAmount != nil {
		response.TotalAmount = *o.TotalAmount
	}
	for i, item := range o.Items {
		response.Items[i] = OrderItemResponse{
			ID:          item.ID,
			InventoryID: item.InventoryID,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.TotalPrice(),
		}
	}
	return response
}
