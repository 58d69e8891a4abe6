package persistence

import (
	"context"
	"errors"

	"github.com/ims/backend/internal/domain/partner"
	"github.com/ims/backend/internal/domain/shared"
	"github.com/ims/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormSupplierRepository implements SupplierRepository using GORM.
// Suppliers are never hard-deleted; removal flips the active flag via Save.
type GormSupplierRepository struct {
	db *gorm.DB
}

// NewGormSupplierRepository creates a new GormSupplierRepository
func NewGormSupplierRepository(db *gorm.DB) *GormSupplierRepository {
	return &GormSupplierRepository{db: db}
}

// FindByID finds a supplier by its ID
func (r *GormSupplierRepository) FindByID(ctx context.Context, id uint) (*partner.Supplier, error) {
	var model models.SupplierModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindActive returns all active suppliers, newest first
func (r *GormSupplierRepository) FindActive(ctx context.Context) ([]*partner.Supplier, error) {
	var list []models.SupplierModel
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	suppliers := make([]*partner.Supplier, len(list))
	for i := range list {
		suppliers[i] = list[i].ToDomain()
	}
	return suppliers, nil
}

// Save creates or updates a supplier
func (r *GormSupplierRepository) Save(ctx context.Context, supplier *partner.Supplier) error {
	model := models.SupplierModelFromDomain(supplier)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return err
	}
	supplier.ID = model.ID
	return nil
}

// Count counts all suppliers, deactivated ones included. The dashboard
// supplier counter covers every row.
func (r *GormSupplierRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.SupplierModel{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormSupplierRepository implements SupplierRepository
var _ partner.SupplierRepository = (*GormSupplierRepository)(nil)
