package persistence

import (
	"context"
	"errors"

	"github.com/ims/backend/internal/domain/partner"
	"github.com/ims/backend/internal/domain/shared"
	"github.com/ims/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormCustomerRepository implements CustomerRepository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// FindByID finds a customer by its ID
func (r *GormCustomerRepository) FindByID(ctx context.Context, id uint) (*partner.Customer, error) {
	var model models.CustomerModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindActive returns all active customers, newest first
func (r *GormCustomerRepository) FindActive(ctx context.Context) ([]*partner.Customer, error) {
	var list []models.CustomerModel
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	customers := make([]*partner.Customer, len(list))
	for i := range list {
		customers[i] = list[i].ToDomain()
	}
	return customers, nil
}

// Save creates or updates a customer
func (r *GormCustomerRepository) Save(ctx context.Context, customer *partner.Customer) error {
	model := models.CustomerModelFromDomain(customer)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return err
	}
	customer.ID = model.ID
	return nil
}

// Delete removes a customer permanently
func (r *GormCustomerRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.CustomerModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts all active customers
func (r *GormCustomerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.CustomerModel{}).
		Where("active = ?", true).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormCustomerRepository implements CustomerRepository
var _ partner.CustomerRepository = (*GormCustomerRepository)(nil)
