package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/itlabs/orderflow/internal/domain/errors"
	"github.com/itlabs/orderflow/internal/domain/model"
)

func TestTaskUseCaseCreate(t *testing.T) {
	orders := &stubOrderRepository{orders: map[int64]*model.Order{
		5: {ID: 5, ClientID: 7},
	}}
	uc := NewTaskUseCase(&stubTaskRepository{}, orders)

	assignee := int64(3)
	task, err := uc.Create(context.Background(), 5, CreateTaskInput{Title: "Wireframes", AssigneeID: &assignee})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if task.OrderID != 5 || task.Status != model.TaskStatusTodo {
		t.Fatalf("unexpected task: %+v", task)
	}
	if task.AssigneeID == nil || *task.AssigneeID != 3 {
		t.Fatalf("expected assignee 3, got %v", task.AssigneeID)
	}
}

func TestTaskUseCaseCreateMissingOrder(t *testing.T) {
	uc := NewTaskUseCase(&stubTaskRepository{}, &stubOrderRepository{})

	if _, err := uc.Create(context.Background(), 404, CreateTaskInput{Title: "Wireframes"}); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
