package dto

import "time"

// MilestoneRequest describes milestone creation payload.
type MilestoneRequest struct {
	Title            string     `json:"title" binding:"required"`
	RequiresApproval bool       `json:"requires_approval"`
	DueDate          *time.Time `json:"due_date"`
}

// MilestoneResponse describes a milestone.
type MilestoneResponse struct {
	ID               int64      `json:"id"`
	OrderID          int64      `json:"order_id"`
	Title            string     `json:"title"`
	Status           string     `json:"status"`
	RequiresApproval bool       `json:"requires_approval"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
	ClientApprovedAt *time.Time `json:"client_approved_at,omitempty"`
	DueDate          *time.Time `json:"due_date,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

// StatusUpdateRequest carries a bare status value for workflow transitions.
type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

// TaskRequest describes task creation payload.
type TaskRequest struct {
	Title      string     `json:"title" binding:"required"`
	AssigneeID *int64     `json:"assignee_id"`
	DueDate    *time.Time `json:"due_date"`
}

// TaskResponse describes a task.
type TaskResponse struct {
	ID         int64      `json:"id"`
	OrderID    int64      `json:"order_id"`
	Title      string     `json:"title"`
	Status     string     `json:"status"`
	AssigneeID *int64     `json:"assignee_id,omitempty"`
	DueDate    *time.Time `json:"due_date,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}
