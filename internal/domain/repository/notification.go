package repository

import (
	"context"

	"github.com/itlabs/orderflow/internal/domain/model"
)

// NotificationRepository describes persistence operations for notifications.
type NotificationRepository interface {
	// CreateBatch inserts one row per notification and returns the number of
	// rows created.
	CreateBatch(ctx context.Context, notifications []model.Notification) (int, error)
	ListByUser(ctx context.Context, userID int64, unreadOnly bool) ([]model.Notification, error)
	MarkRead(ctx context.Context, id, userID int64) error
}

// TimeEntryRepository describes persistence operations for time entries.
type TimeEntryRepository interface {
	Create(ctx context.Context, entry *model.TimeEntry) (*model.TimeEntry, error)
	ListByOrder(ctx context.Context, orderID int64) ([]model.TimeEntry, error)
}
