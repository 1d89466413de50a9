package usecase

import (
	"context"

	"github.com/gosimple/slug"

	"github.com/itlabs/orderflow/internal/domain/model"
	"github.com/itlabs/orderflow/internal/domain/repository"
)

// StatusUseCase manages the order-status reference data.
type StatusUseCase struct {
	statuses repository.OrderStatusRepository
}

// NewStatusUseCase constructs StatusUseCase.
func NewStatusUseCase(statuses repository.OrderStatusRepository) *StatusUseCase {
	return &StatusUseCase{statuses: statuses}
}

// CreateStatusInput carries caller-supplied attributes of a new status.
type CreateStatusInput struct {
	Name         string
	Color        string
	Position     int
	IsFinal      bool
	NotifyClient bool
}

// Create adds a status with a code derived from the name.
func (u *StatusUseCase) Create(ctx context.Context, input CreateStatusInput) (*model.OrderStatus, error) {
	return u.statuses.Create(ctx, &model.OrderStatus{
		Code:         slug.Make(input.Name),
		Name:         input.Name,
		Color:        input.Color,
		Position:     input.Position,
		IsFinal:      input.IsFinal,
		NotifyClient: input.NotifyClient,
		IsActive:     true,
	})
}

// List returns all statuses in sort order.
func (u *StatusUseCase) List(ctx context.Context) ([]model.OrderStatus, error) {
	return u.statuses.List(ctx)
}

// SetInitial marks the status as the one new orders start in. Exactly one
// status carries the flag at any time.
func (u *StatusUseCase) SetInitial(ctx context.Context, id int64) error {
	return u.statuses.SetInitial(ctx, id)
}
