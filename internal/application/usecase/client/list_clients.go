package client

import (
	"context"
	"fmt"

	"github.com/cohetebrands/backoffice/internal/application/adapter"
	"github.com/cohetebrands/backoffice/internal/domain/entity"
)

// ListClientsUseCase retrieves all clients.
type ListClientsUseCase struct {
	clientRepo adapter.ClientRepository
}

// NewListClientsUseCase creates a new ListClientsUseCase instance.
func NewListClientsUseCase(clientRepo adapter.ClientRepository) *ListClientsUseCase {
	return &ListClientsUseCase{
		clientRepo: clientRepo,
	}
}

// Execute returns all clients ordered by name.
func (uc *ListClientsUseCase) Execute(ctx context.Context) ([]*entity.Client, error) {
	clients, err := uc.clientRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}
