package repository

import (
	"context"

	"github.com/itlabs/orderflow/internal/domain/model"
)

// UserRepository describes persistence operations for staff users.
type UserRepository interface {
	Create(ctx context.Context, email, name, passwordHash string, role model.Role) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	ListByRoles(ctx context.Context, roles ...model.Role) ([]model.User, error)
}
