package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/ims/backend/internal/domain/identity"
	"github.com/ims/backend/internal/domain/shared"
	"github.com/ims/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormUserRepository implements UserRepository using GORM
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GormUserRepository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// FindByID finds a user by its ID
func (r *GormUserRepository) FindByID(ctx context.Context, id uint) (*identity.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIdentifier finds a user by username or email
func (r *GormUserRepository) FindByIdentifier(ctx context.Context, identifier string) (*identity.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).
		Where("username = ? OR email = ?", identifier, strings.ToLower(identifier)).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// ExistsByUsername checks if a user with the given username exists
func (r *GormUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistsByEmail checks if a user with the given email exists
func (r *GormUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("email = ?", strings.ToLower(email)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a user
func (r *GormUserRepository) Save(ctx context.Context, user *identity.User) error {
	model := models.UserModelFromDomain(user)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return err
	}
	user.ID = model.ID
	return nil
}

// Count counts all users
func (r *GormUserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.UserModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormUserRepository implements UserRepository
var _ identity.UserRepository = (*GormUserRepository)(nil)
