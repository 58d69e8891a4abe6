package trade_test

import (
	"context"
	"testing"

	apptrade "github.com/ims/backend/internal/application/trade"
	"github.com/ims/backend/internal/domain/identity"
	"github.com/ims/backend/internal/domain/inventory"
	"github.com/ims/backend/internal/domain/shared"
	domtrade "github.com/ims/backend/internal/domain/trade"
	"github.com/ims/backend/internal/infrastructure/persistence"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// End-to-end workflow against a real database: the service, the
// transaction scope and the gorm repositories together.
func newWorkflowFixture(t *testing.T) (*apptrade.OrderService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, (&persistence.Database{DB: db}).Migrate())

	scope := persistence.NewGormTradeTransactionScope(db)
	svc := apptrade.NewOrderService(scope, persistence.NewGormOrderRepository(db), zap.NewNop())
	return svc, db
}

func seedItem(t *testing.T, db *gorm.DB, sku string, quantity int, price string) *inventory.Item {
	t.Helper()
	p := decimal.RequireFromString(price)
	item, err := inventory.NewItem("Item "+sku, sku, "General", quantity, nil, &p, 1)
	require.NoError(t, err)
	require.NoError(t, persistence.NewGormItemRepository(db).Save(context.Background(), item))
	return item
}

func itemQuantity(t *testing.T, db *gorm.DB, id uint) int {
	t.Helper()
	item, err := persistence.NewGormItemRepository(db).FindByID(context.Background(), id)
	require.NoError(t, err)
	return item.Quantity
}

func testPrincipal() identity.Principal {
	return identity.Principal{UserID: 1, Username: "jane"}
}

func TestOrderWorkflow_CreateThenDelete(t *testing.T) {
	svc, db := newWorkflowFixture(t)
	ctx := context.Background()

	item := seedItem(t, db, "A1", 10, "2.50")

	result, err := svc.Create(ctx, testPrincipal(), apptrade.CreateOrderRequest{
		CustomerID: 1,
		Items:      []apptrade.OrderLineRequest{{InventoryID: item.ID, Quantity: 3}},
	})
	require.NoError(t, err)

	assert.Equal(t, 7, itemQuantity(t, db, item.ID))
	assert.True(t, result.Order.TotalAmount.Equal(decimal.RequireFromString("7.50")))

	require.NoError(t, svc.Delete(ctx, testPrincipal(), result.Order.ID))
	assert.Equal(t, 10, itemQuantity(t, db, item.ID))

	_, err = svc.GetByID(ctx, result.Order.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestOrderWorkflow_EditRestoresThenReapplies(t *testing.T) {
	svc, db := newWorkflowFixture(t)
	ctx := context.Background()

	first := seedItem(t, db, "A1", 10, "2.50")
	second := seedItem(t, db, "B2", 20, "4.00")

	result, err := svc.Create(ctx, testPrincipal(), apptrade.CreateOrderRequest{
		CustomerID: 1,
		Items:      []apptrade.OrderLineRequest{{InventoryID: first.ID, Quantity: 3}},
	})
	require.NoError(t, err)
	require.Equal(t, 7, itemQuantity(t, db, first.ID))

	updated, err := svc.Update(ctx, testPrincipal(), result.Order.ID, apptrade.UpdateOrderRequest{
		CustomerID: 1,
		Status:     domtrade.StatusCompleted,
		Items:      []apptrade.OrderLineRequest{{InventoryID: second.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	assert.Equal(t, 10, itemQuantity(t, db, first.ID))
	assert.Equal(t, 18, itemQuantity(t, db, second.ID))
	assert.Equal(t, domtrade.StatusCompleted, updated.Order.Status)
	assert.True(t, updated.Order.TotalAmount.Equal(decimal.RequireFromString("8.00")))
}

func TestOrderWorkflow_SkippedLinesDoNotFailTheOrder(t *testing.T) {
	svc, db := newWorkflowFixture(t)
	ctx := context.Background()

	item := seedItem(t, db, "A1", 10, "2.50")

	result, err := svc.Create(ctx, testPrincipal(), apptrade.CreateOrderRequest{
		CustomerID: 1,
		Items: []apptrade.OrderLineRequest{
			{InventoryID: item.ID, Quantity: 3},
			{InventoryID: 9999, Quantity: 2},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.SkippedItems)
	assert.Len(t, result.Order.Items, 1)
	assert.Equal(t, 7, itemQuantity(t, db, item.ID))
}
