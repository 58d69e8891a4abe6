package inventory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem_Defaults(t *testing.T) {
	item, err := NewItem("Widget", "A1", "Hardware", 10, nil, nil, 1)
	require.NoError(t, err)

	assert.Equal(t, DefaultReorderLevel, item.ReorderLevel)
	assert.Nil(t, item.Price)
	assert.True(t, item.EffectivePrice().IsZero())
}

func TestNewItem_Validation(t *testing.T) {
	_, err := NewItem("", "A1", "", 1, nil, nil, 1)
	assert.Error(t, err)

	_, err = NewItem("Widget", "", "", 1, nil, nil, 1)
	assert.Error(t, err)

	_, err = NewItem("Widget", "A1", "", -1, nil, nil, 1)
	assert.Error(t, err)

	negative := -1
	_, err = NewItem("Widget", "A1", "", 1, &negative, nil, 1)
	assert.Error(t, err)
}

func TestItem_AllocateAndRestore(t *testing.T) {
	item, err := NewItem("Widget", "A1", "", 10, nil, nil, 1)
	require.NoError(t, err)

	item.Allocate(3)
	assert.Equal(t, 7, item.Quantity)
	require.NotNil(t, item.UpdatedAt)

	item.Restore(3)
	assert.Equal(t, 10, item.Quantity)
}

func TestItem_AllocateAllowsNegativeStock(t *testing.T) {
	item, err := NewItem("Widget", "A1", "", 2, nil, nil, 1)
	require.NoError(t, err)

	item.Allocate(5)
	assert.Equal(t, -3, item.Quantity)
}

func TestItem_IsLowStock(t *testing.T) {
	level := 5
	item, err := NewItem("Widget", "A1", "", 6, &level, nil, 1)
	require.NoError(t, err)
	assert.False(t, item.IsLowStock())

	// Boundary: equal to reorder level counts as low.
	item.Quantity = 5
	assert.True(t, item.IsLowStock())

	item.Quantity = 4
	assert.True(t, item.IsLowStock())
}

func TestItem_EffectivePrice(t *testing.T) {
	price := decimal.NewFromFloat(12.50)
	item, err := NewItem("Widget", "A1", "", 1, nil, &price, 1)
	require.NoError(t, err)

	assert.True(t, item.EffectivePrice().Equal(price))
}
