package usecase

import (
	"context"

	"github.com/itlabs/orderflow/internal/domain/model"
	"github.com/itlabs/orderflow/internal/domain/repository"
)

// NotificationUseCase serves a user's notification feed.
type NotificationUseCase struct {
	notifications repository.NotificationRepository
}

// NewNotificationUseCase constructs NotificationUseCase.
func NewNotificationUseCase(notifications repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{notifications: notifications}
}

// List returns the user's notifications, newest first.
func (u *NotificationUseCase) List(ctx context.Context, userID int64, unreadOnly bool) ([]model.Notification, error) {
	return u.notifications.ListByUser(ctx, userID, unreadOnly)
}

// MarkRead stamps the notification read. Only the owning user can mark it.
func (u *NotificationUseCase) MarkRead(ctx context.Context, id, userID int64) error {
	return u.notifications.MarkRead(ctx, id, userID)
}
