package persistence

import (
	"context"
	"errors"

	"github.com/ims/backend/internal/domain/shared"
	"github.com/ims/backend/internal/domain/trade"
	"github.com/ims/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByID finds an order by its ID with items preloaded
func (r *GormOrderRepository) FindByID(ctx context.Context, id uint) (*trade.Order, error) {
	var model models.OrderModel
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns all orders with items preloaded, newest order date first
func (r *GormOrderRepository) FindAll(ctx context.Context) ([]trade.Order, error) {
	var list []models.OrderModel
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Order("order_date DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	orders := make([]trade.Order, len(list))
	for i := range list {
		orders[i] = *list[i].ToDomain()
	}
	return orders, nil
}

// Create inserts an order together with its items
func (r *GormOrderRepository) Create(ctx context.Context, order *trade.Order) error {
	model := models.OrderModelFromDomain(order)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	order.ID = model.ID
	for i := range model.Items {
		order.Items[i].ID = model.Items[i].ID
		order.Items[i].OrderID = model.Items[i].OrderID
	}
	return nil
}

// Update persists the order header and inserts its current items.
// Callers replace lines by deleting the old ones first.
func (r *GormOrderRepository) Update(ctx context.Context, order *trade.Order) error {
	model := models.OrderModelFromDomain(order)
	items := model.Items
	model.Items = nil

	result := r.db.WithContext(ctx).Model(&models.OrderModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"customer_id":  model.CustomerID,
			"order_date":   model.OrderDate,
			"status":       model.Status,
			"total_amount": model.TotalAmount,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}

	for i := range items {
		items[i].OrderID = model.ID
		if err := r.db.WithContext(ctx).Create(&items[i]).Error; err != nil {
			return err
		}
		order.Items[i].ID = items[i].ID
		order.Items[i].OrderID = items[i].OrderID
	}
	return nil
}

// Delete removes an order and its items
func (r *GormOrderRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).
		Delete(&models.OrderItemModel{}, "order_id = ?", id).Error; err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&models.OrderModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteItems removes all items belonging to an order
func (r *GormOrderRepository) DeleteItems(ctx context.Context, orderID uint) error {
	return r.db.WithContext(ctx).
		Delete(&models.OrderItemModel{}, "order_id = ?", orderID).Error
}

// CountByStatus counts orders with the given status
func (r *GormOrderRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("status = ?", status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormOrderRepository implements OrderRepository
var _ trade.OrderRepository = (*GormOrderRepository)(nil)

// GormSaleRepository implements SaleRepository using GORM
type GormSaleRepository struct {
	db *gorm.DB
}

// NewGormSaleRepository creates a new GormSaleRepository
func NewGormSaleRepository(db *gorm.DB) *GormSaleRepository {
	return &GormSaleRepository{db: db}
}

// Create inserts a sale record
func (r *GormSaleRepository) Create(ctx context.Context, sale *trade.Sale) error {
	model := models.SaleModelFromDomain(sale)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	sale.ID = model.ID
	return nil
}

// FindByOrderID returns all sale records for an order
func (r *GormSaleRepository) FindByOrderID(ctx context.Context, orderID uint) ([]trade.Sale, error) {
	var list []models.SaleModel
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Find(&list).Error; err != nil {
		return nil, err
	}
	sales := make([]trade.Sale, len(list))
	for i := range list {
		sales[i] = *list[i].ToDomain()
	}
	return sales, nil
}

// Ensure GormSaleRepository implements SaleRepository
var _ trade.SaleRepository = (*GormSaleRepository)(nil)
