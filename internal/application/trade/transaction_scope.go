package trade

import (
	"context"

	"github.com/ims/backend/internal/domain/audit"
	"github.com/ims/backend/internal/domain/inventory"
	"github.com/ims/backend/internal/domain/trade"
)

// TransactionScope runs a unit of work against repositories bound to a
// single database transaction. The function's error rolls everything
// back; nil commits.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories exposes the repositories an order workflow
// touches, all scoped to the same transaction.
type TransactionalRepositories interface {
	Orders() trade.OrderRepository
	Items() inventory.ItemRepository
	ActivityLogs() audit.ActivityLogRepository
}
