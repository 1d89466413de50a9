package model

import "time"

// TaskStatus describes the task lifecycle.
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "TODO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusDone       TaskStatus = "DONE"
	TaskStatusCancelled  TaskStatus = "CANCELLED"
)

// Task is a unit of work inside an order, optionally assigned to a staff member.
type Task struct {
	ID         int64
	OrderID    int64
	Title      string
	Status     TaskStatus
	AssigneeID *int64
	DueDate    *time.Time
	CreatedAt  time.Time
}
