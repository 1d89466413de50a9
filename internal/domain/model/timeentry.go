package model

import "time"

// TimeEntry records hours a staff member spent on an order.
type TimeEntry struct {
	ID          int64
	OrderID     int64
	UserID      int64
	Hours       float64
	Description string
	EntryDate   time.Time
	CreatedAt   time.Time
}
