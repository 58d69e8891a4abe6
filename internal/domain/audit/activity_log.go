package audit

import (
	"context"
	"time"
)

// ActivityLog is a single audit trail entry
type ActivityLog struct {
	ID        uint
	UserID    uint
	Action    string
	Timestamp time.Time
}

// NewActivityLog records an action performed by a user. Actions are
// truncated to the column width rather than rejected.
func NewActivityLog(userID uint, action string) *ActivityLog {
	if len(action) > 255 {
		action = action[:255]
	}
	return &ActivityLog{
		UserID:    userID,
		Action:    action,
		Timestamp: time.Now(),
	}
}

// ActivityLogRepository defines persistence operations for audit entries
type ActivityLogRepository interface {
	Create(ctx context.Context, entry *ActivityLog) error
	FindRecent(ctx context.Context, limit int) ([]ActivityLog, error)
}
