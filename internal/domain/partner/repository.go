package partner

import "context"

// CustomerRepository defines persistence operations for customers
type CustomerRepository interface {
	FindByID(ctx context.Context, id uint) (*Customer, error)
	// FindActive returns active customers, newest first.
	FindActive(ctx context.Context) ([]*Customer, error)
	Save(ctx context.Context, customer *Customer) error
	Delete(ctx context.Context, id uint) error
	// Count counts active customers.
	Count(ctx context.Context) (int64, error)
}

// SupplierRepository defines persistence operations for suppliers.
// There is no Delete: suppliers are deactivated through Save.
type SupplierRepository interface {
	FindByID(ctx context.Context, id uint) (*Supplier, error)
	// FindActive returns active suppliers, newest first.
	FindActive(ctx context.Context) ([]*Supplier, error)
	Save(ctx context.Context, supplier *Supplier) error
	// Count counts every supplier row, deactivated ones included.
	Count(ctx context.Context) (int64, error)
}
