package repository

import (
	"context"

	"github.com/itlabs/orderflow/internal/domain/model"
)

// OrderStatusRepository manages the mutable order-status reference data.
type OrderStatusRepository interface {
	Create(ctx context.Context, status *model.OrderStatus) (*model.OrderStatus, error)
	GetByID(ctx context.Context, id int64) (*model.OrderStatus, error)
	GetInitial(ctx context.Context) (*model.OrderStatus, error)
	List(ctx context.Context) ([]model.OrderStatus, error)
	// SetInitial marks one status initial and clears the flag on all others
	// within a single transaction.
	SetInitial(ctx context.Context, id int64) error
}

// OrderRepository describes persistence operations for orders.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	List(ctx context.Context, filter model.OrderFilter) ([]model.Order, error)
	// UpdateStatus moves the order to the given status and appends one status
	// log entry, both inside a single transaction.
	UpdateStatus(ctx context.Context, orderID, statusID int64, changedBy *int64) error
	StatusHistory(ctx context.Context, orderID int64) ([]model.OrderStatusChange, error)
}
