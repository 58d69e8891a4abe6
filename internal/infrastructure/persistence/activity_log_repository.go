package persistence

import (
	"context"

	"github.com/ims/backend/internal/domain/audit"
	"github.com/ims/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormActivityLogRepository implements ActivityLogRepository using GORM
type GormActivityLogRepository struct {
	db *gorm.DB
}

// NewGormActivityLogRepository creates a new GormActivityLogRepository
func NewGormActivityLogRepository(db *gorm.DB) *GormActivityLogRepository {
	return &GormActivityLogRepository{db: db}
}

// Create inserts an activity log entry
func (r *GormActivityLogRepository) Create(ctx context.Context, entry *audit.ActivityLog) error {
	model := models.ActivityLogModelFromDomain(entry)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	entry.ID = model.ID
	return nil
}

// FindRecent returns the most recent entries, newest first
func (r *GormActivityLogRepository) FindRecent(ctx context.Context, limit int) ([]audit.ActivityLog, error) {
	var list []models.ActivityLogModel
	if err := r.db.WithContext(ctx).
		Order("timestamp DESC").
		Limit(limit).
		Find(&list).Error; err != nil {
		return nil, err
	}
	entries := make([]audit.ActivityLog, len(list))
	for i := range list {
		entries[i] = *list[i].ToDomain()
	}
	return entries, nil
}

// Ensure GormActivityLogRepository implements ActivityLogRepository
var _ audit.ActivityLogRepository = (*GormActivityLogRepository)(nil)
