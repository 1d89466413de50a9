package dto

import "time"

// OrderRequest describes order creation payload.
type OrderRequest struct {
	ClientID  int64      `json:"client_id" binding:"required"`
	ManagerID *int64     `json:"manager_id"`
	StatusID  *int64     `json:"status_id"`
	Title     string     `json:"title" binding:"required"`
	Priority  string     `json:"priority"`
	Deadline  *time.Time `json:"deadline"`
}

// OrderResponse describes an order.
type OrderResponse struct {
	ID        int64      `json:"id"`
	Number    string     `json:"number"`
	ClientID  int64      `json:"client_id"`
	ManagerID *int64     `json:"manager_id,omitempty"`
	StatusID  int64      `json:"status_id"`
	Title     string     `json:"title"`
	Priority  string     `json:"priority"`
	Deadline  *time.Time `json:"deadline,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// OrderStatusRequest describes order status transition payload.
type OrderStatusRequest struct {
	StatusID int64 `json:"status_id" binding:"required"`
}

// StatusChangeResponse describes one status log entry.
type StatusChangeResponse struct {
	ID          int64     `json:"id"`
	ToStatusID  int64     `json:"to_status_id"`
	ChangedByID *int64    `json:"changed_by_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
