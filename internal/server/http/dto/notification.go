package dto

import "time"

// NotificationResponse describes one feed entry.
type NotificationResponse struct {
	ID          int64      `json:"id"`
	Type        string     `json:"type"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	LinkURL     string     `json:"link_url,omitempty"`
	EntityType  string     `json:"entity_type,omitempty"`
	EntityID    int64      `json:"entity_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	ReadAt      *time.Time `json:"read_at,omitempty"`
}
