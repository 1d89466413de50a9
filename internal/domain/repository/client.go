package repository

import (
	"context"

	"github.com/itlabs/orderflow/internal/domain/model"
)

// ClientRepository describes persistence operations for clients. Delete
// cascades down the whole ownership tree of the client.
type ClientRepository interface {
	Create(ctx context.Context, client *model.Client) (*model.Client, error)
	GetByID(ctx context.Context, id int64) (*model.Client, error)
	GetByEmail(ctx context.Context, email string) (*model.Client, error)
	List(ctx context.Context) ([]model.Client, error)
	Delete(ctx context.Context, id int64) error
}
