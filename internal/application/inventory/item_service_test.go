package inventory

import (
	"context"
	"testing"

	"github.com/ims/backend/internal/domain/identity"
	"github.com/ims/backend/internal/domain/inventory"
	"github.com/ims/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

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

var testPrincipal = identity.Principal{UserID: 1, Username: "jane"}

func TestItemService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults the reorder level", func(t *testing.T) {
		repo := new(mockItemRepository)
		repo.On("Save", mock.Anything, mock.Anything).Return(nil)
		svc := NewItemService(repo)

		item, err := svc.Create(ctx, testPrincipal, CreateItemRequest{Name: "Widget", SKU: "A1", Quantity: 10})
		require.NoError(t, err)
		assert.Equal(t, inventory.DefaultReorderLevel, item.ReorderLevel)
		assert.True(t, item.Price.IsZero())
		assert.True(t, item.LowStock)
	})

	t.Run("anonymous principal", func(t *testing.T) {
		svc := NewItemService(new(mockItemRepository))
		_, err := svc.Create(ctx, identity.Anonymous(), CreateItemRequest{Name: "Widget", SKU: "A1"})
		assert.ErrorIs(t, err, shared.ErrUnauthenticated)
	})

	t.Run("missing sku", func(t *testing.T) {
		svc := NewItemService(new(mockItemRepository))
		_, err := svc.Create(ctx, testPrincipal, CreateItemRequest{Name: "Widget"})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	})
}

func TestItemService_Update(t *testing.T) {
	ctx := context.Background()
	price := decimal.RequireFromString("2.50")

	existing, err := inventory.NewItem("Widget", "A1", "", 10, nil, &price, 1)
	require.NoError(t, err)
	existing.ID = 4

	repo := new(mockItemRepository)
	repo.On("FindByID", mock.Anything, uint(4)).Return(existing, nil)
	repo.On("Save", mock.Anything, existing).Return(nil)
	svc := NewItemService(repo)

	item, err := svc.Update(ctx, 4, UpdateItemRequest{
		Name: "Widget v2", SKU: "A1", Quantity: 25, ReorderLevel: 5, Price: &price,
	})
	require.NoError(t, err)
	assert.Equal(t, "Widget v2", item.Name)
	assert.Equal(t, 25, item.Quantity)
	assert.False(t, item.LowStock)
	assert.NotNil(t, item.UpdatedAt)
}
