package trade

import "context"

// OrderRepository defines persistence operations for the Order
// aggregate. Items travel with the order: loads preload them and
// deletes cascade to them.
type OrderRepository interface {
	FindByID(ctx context.Context, id uint) (*Order, error)
	// FindAll returns orders with items preloaded, newest order date first.
	FindAll(ctx context.Context) ([]Order, error)
	Create(ctx context.Context, order *Order) error
	Update(ctx context.Context, order *Order) error
	Delete(ctx context.Context, id uint) error
	DeleteItems(ctx context.Context, orderID uint) error
	CountByStatus(ctx context.Context, status string) (int64, error)
}

// SaleRepository defines persistence operations for sale records
type SaleRepository interface {
	Create(ctx context.Context, sale *Sale) error
	FindByOrderID(ctx context.Context, orderID uint) ([]Sale, error)
}
