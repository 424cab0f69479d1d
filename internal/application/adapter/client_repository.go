package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/cohetebrands/backoffice/internal/domain/entity"
)

// ClientRepository defines persistence operations for agency clients.
type ClientRepository interface {
	// Create creates a new client.
	Create(ctx context.Context, client *entity.Client) error

	// FindByID retrieves a client by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Client, error)

	// FindAll retrieves all clients ordered by name.
	FindAll(ctx context.Context) ([]*entity.Client, error)

	// Update updates an existing client.
	Update(ctx context.Context, client *entity.Client) error

	// Delete hard-deletes a client, nulling client_id on ledger entries and
	// templates that reference it.
	Delete(ctx context.Context, id uuid.UUID) error
}
