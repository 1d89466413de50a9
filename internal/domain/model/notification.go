package model

import "time"

// NotificationType categorizes internal notifications.
type NotificationType string

const (
	NotificationTypeStatus   NotificationType = "STATUS"
	NotificationTypeDeadline NotificationType = "DEADLINE"
	NotificationTypePayment  NotificationType = "PAYMENT"
)

// Notification is one (event, recipient) record. Created once, only ReadAt is
// ever updated afterwards.
type Notification struct {
	ID          int64
	UserID      int64
	Type        NotificationType
	Title       string
	Description string
	LinkURL     string
	EntityType  string
	EntityID    int64
	CreatedAt   time.Time
	ReadAt      *time.Time
}
