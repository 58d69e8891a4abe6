package persistence

import (
	"context"

	apptrade "github.com/ims/backend/internal/application/trade"
	"github.com/ims/backend/internal/domain/audit"
	"github.com/ims/backend/internal/domain/inventory"
	"github.com/ims/backend/internal/domain/trade"
	"gorm.io/gorm"
)

// GormTradeTransactionScope implements the trade TransactionScope by
// wrapping the unit of work in a GORM transaction
type GormTradeTransactionScope struct {
	db *gorm.DB
}

// NewGormTradeTransactionScope creates a new GormTradeTransactionScope
func NewGormTradeTransactionScope(db *gorm.DB) *GormTradeTransactionScope {
	return &GormTradeTransactionScope{db: db}
}

// Execute runs fn inside a transaction, handing it repositories bound
// to that transaction
func (s *GormTradeTransactionScope) Execute(ctx context.Context, fn func(repos apptrade.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTransactionalRepositories{tx: tx})
	})
}

type gormTransactionalRepositories struct {
	tx *gorm.DB
}

func (r *gormTransactionalRepositories) Orders() trade.OrderRepository {
	return NewGormOrderRepository(r.tx)
}

func (r *gormTransactionalRepositories) Items() inventory.ItemRepository {
	return NewGormItemRepository(r.tx)
}

func (r *gormTransactionalRepositories) ActivityLogs() audit.ActivityLogRepository {
	return NewGormActivityLogRepository(r.tx)
}

// Ensure GormTradeTransactionScope implements TransactionScope
var _ apptrade.TransactionScope = (*GormTradeTransactionScope)(nil)
