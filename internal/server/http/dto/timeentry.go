package dto

import "time"

// TimeEntryRequest describes time entry creation payload.
type TimeEntryRequest struct {
	Hours       float64    `json:"hours" binding:"required"`
	Description string     `json:"description"`
	EntryDate   *time.Time `json:"entry_date"`
}

// TimeEntryResponse describes logged hours.
type TimeEntryResponse struct {
	ID          int64     `json:"id"`
	OrderID     int64     `json:"order_id"`
	UserID      int64     `json:"user_id"`
	Hours       float64   `json:"hours"`
	Description string    `json:"description,omitempty"`
	EntryDate   time.Time `json:"entry_date"`
	CreatedAt   time.Time `json:"created_at"`
}
