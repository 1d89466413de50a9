package usecase

import (
	"context"

	"github.com/itlabs/orderflow/internal/domain/model"
	"github.com/itlabs/orderflow/internal/domain/repository"
)

// ClientUseCase manages the client directory. Deleting a client removes its
// whole record tree via the storage cascade.
type ClientUseCase struct {
	clients repository.ClientRepository
}

// NewClientUseCase constructs ClientUseCase.
func NewClientUseCase(clients repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{clients: clients}
}

// Create registers a client.
func (u *ClientUseCase) Create(ctx context.Context, client *model.Client) (*model.Client, error) {
	client.Email = normalizeEmail(client.Email)
	return u.clients.Create(ctx, client)
}

// GetByID fetches one client.
func (u *ClientUseCase) GetByID(ctx context.Context, id int64) (*model.Client, error) {
	return u.clients.GetByID(ctx, id)
}

// List returns all clients.
func (u *ClientUseCase) List(ctx context.Context) ([]model.Client, error) {
	return u.clients.List(ctx)
}

// Delete removes a client and everything that belongs to it.
func (u *ClientUseCase) Delete(ctx context.Context, id int64) error {
	return u.clients.Delete(ctx, id)
}
