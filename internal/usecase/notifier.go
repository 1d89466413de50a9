package usecase

import (
	"context"

	"github.com/itlabs/orderflow/internal/domain/model"
	"github.com/itlabs/orderflow/internal/domain/repository"
)

// Notifier resolves internal recipients for workflow events and persists one
// notification row per recipient.
type Notifier struct {
	users         repository.UserRepository
	notifications repository.NotificationRepository
}

// NewNotifier constructs Notifier.
func NewNotifier(users repository.UserRepository, notifications repository.NotificationRepository) *Notifier {
	return &Notifier{users: users, notifications: notifications}
}

// OrderRecipients returns the order's manager (when set) plus every admin and
// manager, deduplicated.
func (n *Notifier) OrderRecipients(ctx context.Context, order *model.Order) ([]int64, error) {
	ids, err := n.StaffRecipients(ctx)
	if err != nil {
		return nil, err
	}
	if order.ManagerID != nil {
		ids = append(ids, *order.ManagerID)
	}
	return dedupe(ids), nil
}

// StaffRecipients returns all users with role ADMIN or MANAGER.
func (n *Notifier) StaffRecipients(ctx context.Context) ([]int64, error) {
	staff, err := n.users.ListByRoles(ctx, model.RoleAdmin, model.RoleManager)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(staff))
	for _, u := range staff {
		ids = append(ids, u.ID)
	}
	return ids, nil
}

// FanOut persists one copy of the draft per recipient and returns the number
// of rows created.
func (n *Notifier) FanOut(ctx context.Context, userIDs []int64, draft model.Notification) (int, error) {
	userIDs = dedupe(userIDs)
	items := make([]model.Notification, 0, len(userIDs))
	for _, id := range userIDs {
		item := draft
		item.UserID = id
		items = append(items, item)
	}
	return n.notifications.CreateBatch(ctx, items)
}

func dedupe(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	result := ids[:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
