package trade

import (
	"context"
	"errors"
	"fmt"

	"github.com/ims/backend/internal/domain/audit"
	"github.com/ims/backend/internal/domain/identity"
	"github.com/ims/backend/internal/domain/shared"
	"github.com/ims/backend/internal/domain/trade"
	"go.uber.org/zap"
)

// OrderService runs the order workflow. Every write operation executes
// inside a single transaction: stock movement, order rows and audit
// entries commit or roll back together.
type OrderService struct {
	scope  TransactionScope
	orders trade.OrderRepository
	logger *zap.Logger
}

// NewOrderService creates a new OrderService
func NewOrderService(scope TransactionScope, orders trade.OrderRepository, logger *zap.Logger) *OrderService {
	return &OrderService{
		scope:  scope,
		orders: orders,
		logger: logger,
	}
}

// Create places an order. Each line allocates stock: the unit price is
// snapshotted from the inventory item and its quantity decremented with
// no floor check. Lines referencing unknown inventory ids are skipped
// and counted, never fatal.
func (s *OrderService) Create(ctx context.Context, principal identity.Principal, req CreateOrderRequest) (*OrderResult, error) {
	if principal.IsAnonymous() {
		return nil, shared.ErrUnauthenticated
	}

	order, err := trade.NewOrder(req.CustomerID, principal.UserID)
	if err != nil {
		return nil, err
	}

	var skipped int
	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		skipped, err = s.allocateLines(ctx, repos, order, req.Items)
		if err != nil {
			return err
		}
		order.RecalculateTotal()

		if err := repos.Orders().Create(ctx, order); err != nil {
			return err
		}

		s.recordActivity(ctx, repos, principal.UserID, fmt.Sprintf("Created order #%d", order.ID))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &OrderResult{Order: ToOrderResponse(order), SkippedItems: skipped}, nil
}

// Update rewrites an order: every existing line's stock is restored and
// the lines deleted, then the requested lines are allocated afresh.
// Customer and status come from the request.
func (s *OrderService) Update(ctx context.Context, principal identity.Principal, orderID uint, req UpdateOrderRequest) (*OrderResult, error) {
	if principal.IsAnonymous() {
		return nil, shared.ErrUnauthenticated
	}

	var (
		order   *trade.Order
		skipped int
	)
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		order, err = repos.Orders().FindByID(ctx, orderID)
		if err != nil {
			return err
		}

		if err := s.restoreLines(ctx, repos, order.Items); err != nil {
			return err
		}
		if err := repos.Orders().DeleteItems(ctx, orderID); err != nil {
			return err
		}

		order.CustomerID = req.CustomerID
		order.Status = req.Status
		order.Items = nil

		skipped, err = s.allocateLines(ctx, repos, order, req.Items)
		if err != nil {
			return err
		}
		order.RecalculateTotal()

		if err := repos.Orders().Update(ctx, order); err != nil {
			return err
		}

		s.recordActivity(ctx, repos, principal.UserID, fmt.Sprintf("Updated order #%d", order.ID))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &OrderResult{Order: ToOrderResponse(order), SkippedItems: skipped}, nil
}

// Delete removes an order, restoring each line's stock first
func (s *OrderService) Delete(ctx context.Context, principal identity.Principal, orderID uint) error {
	if principal.IsAnonymous() {
		return shared.ErrUnauthenticated
	}

	return s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		order, err := repos.Orders().FindByID(ctx, orderID)
		if err != nil {
			return err
		}

		if err := s.restoreLines(ctx, repos, order.Items); err != nil {
			return err
		}
		if err := repos.Orders().Delete(ctx, orderID); err != nil {
			return err
		}

		s.recordActivity(ctx, repos, principal.UserID, fmt.Sprintf("Deleted order #%d", orderID))
		return nil
	})
}

// GetByID retrieves an order with its lines
func (s *OrderService) GetByID(ctx context.Context, id uint) (*OrderResponse, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// List retrieves all orders, newest order date first
func (s *OrderService) List(ctx context.Context) ([]OrderResponse, error) {
	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToOrderResponse(&orders[i])
	}
	return responses, nil
}

// allocateLines takes stock for each requested line and appends it to
// the order. Unknown inventory ids are skipped and counted.
func (s *OrderService) allocateLines(ctx context.Context, repos TransactionalRepositories, order *trade.Order, lines []OrderLineRequest) (int, error) {
	skipped := 0
	for _, line := range lines {
		item, err := repos.Items().FindByID(ctx, line.InventoryID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				skipped++
				continue
			}
			return 0, err
		}

		unitPrice := item.EffectivePrice()
		item.Allocate(line.Quantity)
		if err := repos.Items().Save(ctx, item); err != nil {
			return 0, err
		}

		order.AddAllocatedItem(item.ID, line.Quantity, unitPrice)
	}
	return skipped, nil
}

// restoreLines returns each line's stock to its inventory row. Lines
// whose inventory row no longer exists are skipped.
func (s *OrderService) restoreLines(ctx context.Context, repos TransactionalRepositories, lines []trade.OrderItem) error {
	for _, line := range lines {
		item, err := repos.Items().FindByID(ctx, line.InventoryID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				continue
			}
			return err
		}

		item.Restore(line.Quantity)
		if err := repos.Items().Save(ctx, item); err != nil {
			return err
		}
	}
	return nil
}

// recordActivity appends an audit row inside the transaction. Audit
// failures are logged and never surfaced.
func (s *OrderService) recordActivity(ctx context.Context, repos TransactionalRepositories, userID uint, action string) {
	entry := audit.NewActivityLog(userID, action)
	if err := repos.ActivityLogs().Create(ctx, entry); err != nil {
		s.logger.Warn("failed to record activity",
			zap.Uint("user_id", userID),
			zap.String("action", action),
			zap.Error(err))
	}
}
