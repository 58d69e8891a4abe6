package trade

import (
	"context"
	"testing"

	"github.com/ims/backend/internal/domain/audit"
	"github.com/ims/backend/internal/domain/identity"
	"github.com/ims/backend/internal/domain/inventory"
	"github.com/ims/backend/internal/domain/shared"
	"github.com/ims/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockOrderRepository struct {
	mock.Mock
}

func (m *mockOrderRepository) FindByID(ctx context.Context, id uint) (*trade.Order, error) {
	args := m.Called(ctx, id)
	if o := args.Get(0); o != nil {
		return o.(*trade.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderRepository) FindAll(ctx context.Context) ([]trade.Order, error) {
	args := m.Called(ctx)
	if o := args.Get(0); o != nil {
		return o.([]trade.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderRepository) Create(ctx context.Context, order *trade.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *mockOrderRepository) Update(ctx context.Context, order *trade.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *mockOrderRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockOrderRepository) DeleteItems(ctx context.Context, orderID uint) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *mockOrderRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

type mockItemRepository struct {
	mock.Mock
}

func (m *mockItemRepository) FindByID(ctx context.Context, id uint) (*inventory.Item, error) {
	args := m.Called(ctx, id)
	if i := args.Get(0); i != nil {
		return i.(*inventory.Item), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockItemRepository) FindAll(ctx context.Context) ([]*inventory.Item, error) {
	args := m.Called(ctx)
	if i := args.Get(0); i != nil {
		return i.([]*inventory.Item), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockItemRepository) Save(ctx context.Context, item *inventory.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *mockItemRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockItemRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockActivityLogRepository struct {
	mock.Mock
}

func (m *mockActivityLogRepository) Create(ctx context.Context, entry *audit.ActivityLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *mockActivityLogRepository) FindRecent(ctx context.Context, limit int) ([]audit.ActivityLog, error) {
	args := m.Called(ctx, limit)
	if entries := args.Get(0); entries != nil {
		return entries.([]audit.ActivityLog), args.Error(1)
	}
	return nil, args.Error(1)
}

// stubScope runs the unit of work directly against the mocks, with no
// real transaction underneath.
type stubScope struct {
	orders *mockOrderRepository
	items  *mockItemRepository
	logs   *mockActivityLogRepository
}

func (s *stubScope) Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

func (s *stubScope) Orders() trade.OrderRepository            { return s.orders }
func (s *stubScope) Items() inventory.ItemRepository          { return s.items }
func (s *stubScope) ActivityLogs() audit.ActivityLogRepository { return s.logs }

func newOrderFixture() (*OrderService, *stubScope) {
	scope := &stubScope{
		orders: new(mockOrderRepository),
		items:  new(mockItemRepository),
		logs:   new(mockActivityLogRepository),
	}
	scope.logs.On("Create", mock.Anything, mock.Anything).Return(nil).Maybe()
	svc := NewOrderService(scope, scope.orders, zap.NewNop())
	return svc, scope
}

func testItem(t *testing.T, id uint, quantity int, price string) *inventory.Item {
	t.Helper()
	p := decimal.RequireFromString(price)
	item, err := inventory.NewItem("Widget", "A1", "", quantity, nil, &p, 1)
	require.NoError(t, err)
	item.ID = id
	return item
}

var testPrincipal = identity.Principal{UserID: 1, Username: "jane"}

func TestOrderService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("allocates stock and snapshots the unit price", func(t *testing.T) {
		svc, scope := newOrderFixture()
		item := testItem(t, 7, 10, "2.50")
		scope.items.On("FindByID", mock.Anything, uint(7)).Return(item, nil)
		scope.items.On("Save", mock.Anything, mock.MatchedBy(func(i *inventory.Item) bool {
			return i.ID == 7 && i.Quantity == 7
		})).Return(nil)
		scope.orders.On("Create", mock.Anything, mock.Anything).Return(nil)

		result, err := svc.Create(ctx, testPrincipal, CreateOrderRequest{
			CustomerID: 1,
			Items:      []OrderLineRequest{{InventoryID: 7, Quantity: 3}},
		})
		require.NoError(t, err)

		assert.Zero(t, result.SkippedItems)
		require.Len(t, result.Order.Items, 1)
		assert.True(t, result.Order.Items[0].UnitPrice.Equal(decimal.RequireFromString("2.50")))
		assert.True(t, result.Order.Items[0].TotalPrice.Equal(decimal.RequireFromString("7.50")))
		assert.True(t, result.Order.TotalAmount.Equal(decimal.RequireFromString("7.50")))
		assert.Equal(t, trade.StatusPending, result.Order.Status)
		scope.items.AssertExpectations(t)
	})

	t.Run("unknown inventory lines are skipped and counted", func(t *testing.T) {
		svc, scope := newOrderFixture()
		item := testItem(t, 7, 10, "2.50")
		scope.items.On("FindByID", mock.Anything, uint(7)).Return(item, nil)
		scope.items.On("FindByID", mock.Anything, uint(99)).Return(nil, shared.ErrNotFound)
		scope.items.On("Save", mock.Anything, mock.Anything).Return(nil)
		scope.orders.On("Create", mock.Anything, mock.Anything).Return(nil)

		result, err := svc.Create(ctx, testPrincipal, CreateOrderRequest{
			CustomerID: 1,
			Items: []OrderLineRequest{
				{InventoryID: 7, Quantity: 3},
				{InventoryID: 99, Quantity: 2},
			},
		})
		require.NoError(t, err)

		assert.Equal(t, 1, result.SkippedItems)
		assert.Len(t, result.Order.Items, 1)
	})

	t.Run("nil price snapshots as zero", func(t *testing.T) {
		svc, scope := newOrderFixture()
		item, err := inventory.NewItem("Widget", "A1", "", 10, nil, nil, 1)
		require.NoError(t, err)
		item.ID = 7
		scope.items.On("FindByID", mock.Anything, uint(7)).Return(item, nil)
		scope.items.On("Save", mock.Anything, mock.Anything).Return(nil)
		scope.orders.On("Create", mock.Anything, mock.Anything).Return(nil)

		result, err := svc.Create(ctx, testPrincipal, CreateOrderRequest{
			CustomerID: 1,
			Items:      []OrderLineRequest{{InventoryID: 7, Quantity: 3}},
		})
		require.NoError(t, err)
		assert.True(t, result.Order.Items[0].UnitPrice.IsZero())
		assert.True(t, result.Order.TotalAmount.IsZero())
	})

	t.Run("stock may go negative", func(t *testing.T) {
		svc, scope := newOrderFixture()
		item := testItem(t, 7, 2, "2.50")
		scope.items.On("FindByID", mock.Anything, uint(7)).Return(item, nil)
		scope.items.On("Save", mock.Anything, mock.MatchedBy(func(i *inventory.Item) bool {
			return i.Quantity == -3
		})).Return(nil)
		scope.orders.On("Create", mock.Anything, mock.Anything).Return(nil)

		_, err := svc.Create(ctx, testPrincipal, CreateOrderRequest{
			CustomerID: 1,
			Items:      []OrderLineRequest{{InventoryID: 7, Quantity: 5}},
		})
		require.NoError(t, err)
		scope.items.AssertExpectations(t)
	})

	t.Run("anonymous principal", func(t *testing.T) {
		svc, _ := newOrderFixture()
		_, err := svc.Create(ctx, identity.Anonymous(), CreateOrderRequest{CustomerID: 1})
		assert.ErrorIs(t, err, shared.ErrUnauthenticated)
	})
}

func TestOrderService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("restores old lines then allocates new ones", func(t *testing.T) {
		svc, scope := newOrderFixture()

		existing := &trade.Order{ID: 4, CustomerID: 1, Status: trade.StatusPending}
		existing.Items = []trade.OrderItem{{ID: 1, OrderID: 4, InventoryID: 7, Quantity: 3, UnitPrice: decimal.RequireFromString("2.50")}}
		scope.orders.On("FindByID", mock.Anything, uint(4)).Return(existing, nil)

		oldItem := testItem(t, 7, 7, "2.50")
		newItem := testItem(t, 8, 20, "4.00")
		scope.items.On("FindByID", mock.Anything, uint(7)).Return(oldItem, nil)
		scope.items.On("FindByID", mock.Anything, uint(8)).Return(newItem, nil)
		scope.items.On("Save", mock.Anything, mock.Anything).Return(nil)
		scope.orders.On("DeleteItems", mock.Anything, uint(4)).Return(nil)
		scope.orders.On("Update", mock.Anything, mock.Anything).Return(nil)

		result, err := svc.Update(ctx, testPrincipal, 4, UpdateOrderRequest{
			CustomerID: 2,
			Status:     trade.StatusCompleted,
			Items:      []OrderLineRequest{{InventoryID: 8, Quantity: 2}},
		})
		require.NoError(t, err)

		// old line restored, new line allocated
		assert.Equal(t, 10, oldItem.Quantity)
		assert.Equal(t, 18, newItem.Quantity)
		assert.Equal(t, uint(2), result.Order.CustomerID)
		assert.Equal(t, trade.StatusCompleted, result.Order.Status)
		assert.True(t, result.Order.TotalAmount.Equal(decimal.RequireFromString("8.00")))
		scope.orders.AssertCalled(t, "DeleteItems", mock.Anything, uint(4))
	})

	t.Run("missing inventory rows are skipped during restore", func(t *testing.T) {
		svc, scope := newOrderFixture()

		existing := &trade.Order{ID: 4, CustomerID: 1, Status: trade.StatusPending}
		existing.Items = []trade.OrderItem{{InventoryID: 99, Quantity: 3, UnitPrice: decimal.Zero}}
		scope.orders.On("FindByID", mock.Anything, uint(4)).Return(existing, nil)
		scope.items.On("FindByID", mock.Anything, uint(99)).Return(nil, shared.ErrNotFound)
		scope.orders.On("DeleteItems", mock.Anything, uint(4)).Return(nil)
		scope.orders.On("Update", mock.Anything, mock.Anything).Return(nil)

		_, err := svc.Update(ctx, testPrincipal, 4, UpdateOrderRequest{
			CustomerID: 1,
			Status:     trade.StatusPending,
			Items:      []OrderLineRequest{},
		})
		require.NoError(t, err)
	})

	t.Run("unknown order", func(t *testing.T) {
		svc, scope := newOrderFixture()
		scope.orders.On("FindByID", mock.Anything, uint(9)).Return(nil, shared.ErrNotFound)

		_, err := svc.Update(ctx, testPrincipal, 9, UpdateOrderRequest{CustomerID: 1, Status: trade.StatusPending})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestOrderService_Delete(t *testing.T) {
	ctx := context.Background()

	svc, scope := newOrderFixture()
	existing := &trade.Order{ID: 4, CustomerID: 1, Status: trade.StatusPending}
	existing.Items = []trade.OrderItem{{InventoryID: 7, Quantity: 3, UnitPrice: decimal.RequireFromString("2.50")}}
	scope.orders.On("FindByID", mock.Anything, uint(4)).Return(existing, nil)

	item := testItem(t, 7, 7, "2.50")
	scope.items.On("FindByID", mock.Anything, uint(7)).Return(item, nil)
	scope.items.On("Save", mock.Anything, mock.MatchedBy(func(i *inventory.Item) bool {
		return i.Quantity == 10
	})).Return(nil)
	scope.orders.On("Delete", mock.Anything, uint(4)).Return(nil)

	require.NoError(t, svc.Delete(ctx, testPrincipal, 4))
	scope.items.AssertExpectations(t)
	scope.orders.AssertExpectations(t)
}
