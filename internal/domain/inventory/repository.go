package inventory

import "context"

// ItemRepository defines persistence operations for inventory items
type ItemRepository interface {
	FindByID(ctx context.Context, id uint) (*Item, error)
	// FindAll returns every item, newest first.
	FindAll(ctx context.Context) ([]*Item, error)
	Save(ctx context.Context, item *Item) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}
