package usecase

import (
	"context"
	"time"

	"github.com/itlabs/orderflow/internal/domain/model"
	"github.com/itlabs/orderflow/internal/domain/repository"
)

// TaskUseCase manages tasks inside orders.
type TaskUseCase struct {
	tasks  repository.TaskRepository
	orders repository.OrderRepository
}

// NewTaskUseCase constructs TaskUseCase.
func NewTaskUseCase(tasks repository.TaskRepository, orders repository.OrderRepository) *TaskUseCase {
	return &TaskUseCase{tasks: tasks, orders: orders}
}

// CreateTaskInput carries caller-supplied attributes of a new task.
type CreateTaskInput struct {
	Title      string
	AssigneeID *int64
	DueDate    *time.Time
}

// Create adds a task to an order in TODO state.
func (u *TaskUseCase) Create(ctx context.Context, orderID int64, input CreateTaskInput) (*model.Task, error) {
	if _, err := u.orders.GetByID(ctx, orderID); err != nil {
		return nil, err
	}
	return u.tasks.Create(ctx, &model.Task{
		OrderID:    orderID,
		Title:      input.Title,
		Status:     model.TaskStatusTodo,
		AssigneeID: input.AssigneeID,
		DueDate:    input.DueDate,
	})
}

// ListByOrder returns an order's tasks.
func (u *TaskUseCase) ListByOrder(ctx context.Context, orderID int64) ([]model.Task, error) {
	return u.tasks.ListByOrder(ctx, orderID)
}
