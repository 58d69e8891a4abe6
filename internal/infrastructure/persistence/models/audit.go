package models

import (
	"time"

	"github.com/ims/backend/internal/domain/audit"
)

// ActivityLogModel is the persistence model for audit entries.
type ActivityLogModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	UserID    uint      `gorm:"not null;index"`
	Action    string    `gorm:"type:varchar(255);not null"`
	Timestamp time.Time `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (ActivityLogModel) TableName() string {
	return "activity_logs"
}

// ToDomain converts the persistence model to a domain ActivityLog.
func (m *ActivityLogModel) ToDomain() *audit.ActivityLog {
	return &audit.ActivityLog{
		ID:        m.ID,
		UserID:    m.UserID,
		Action:    m.Action,
		Timestamp: m.Timestamp,
	}
}

// ActivityLogModelFromDomain creates a new persistence model from a domain ActivityLog.
func ActivityLogModelFromDomain(e *audit.ActivityLog) *ActivityLogModel {
	return &ActivityLogModel{
		ID:        e.ID,
		UserID:    e.UserID,
		Action:    e.Action,
		Timestamp: e.Timestamp,
	}
}
