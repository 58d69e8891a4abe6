package persistence

import (
	"context"
	"errors"

	"github.com/ims/backend/internal/domain/inventory"
	"github.com/ims/backend/internal/domain/shared"
	"github.com/ims/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormItemRepository implements ItemRepository using GORM
type GormItemRepository struct {
	db *gorm.DB
}

// NewGormItemRepository creates a new GormItemRepository
func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// FindByID finds an inventory item by its ID
func (r *GormItemRepository) FindByID(ctx context.Context, id uint) (*inventory.Item, error) {
	var model models.InventoryItemModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns all inventory items, newest first
func (r *GormItemRepository) FindAll(ctx context.Context) ([]*inventory.Item, error) {
	var list []models.InventoryItemModel
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	items := make([]*inventory.Item, len(list))
	for i := range list {
		items[i] = list[i].ToDomain()
	}
	return items, nil
}

// Save creates or updates an inventory item
func (r *GormItemRepository) Save(ctx context.Context, item *inventory.Item) error {
	model := models.InventoryItemModelFromDomain(item)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return err
	}
	item.ID = model.ID
	return nil
}

// Delete removes an inventory item permanently
func (r *GormItemRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.InventoryItemModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts all inventory items
func (r *GormItemRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.InventoryItemModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormItemRepository implements ItemRepository
var _ inventory.ItemRepository = (*GormItemRepository)(nil)
