package model

import "time"

// Priority ranks orders for planning purposes.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// Order is a client project, the central unit of work.
type Order struct {
	ID              int64
	Number          string
	ClientID        int64
	ManagerID       *int64
	StatusID        int64
	Title           string
	Priority        Priority
	Deadline        *time.Time
	ActualStartDate *time.Time
	ActualEndDate   *time.Time
	CreatedAt       time.Time
}

// OrderStatusChange is one append-only entry of the order status log.
type OrderStatusChange struct {
	ID          int64
	OrderID     int64
	ToStatusID  int64
	ChangedByID *int64
	CreatedAt   time.Time
}

// OrderFilter narrows order listings. Nil fields are ignored.
type OrderFilter struct {
	ClientID  *int64
	StatusID  *int64
	ManagerID *int64
}
