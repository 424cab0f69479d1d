// Package client contains client registry use cases.
package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/cohetebrands/backoffice/internal/application/adapter"
	"github.com/cohetebrands/backoffice/internal/domain/entity"
	domainerror "github.com/cohetebrands/backoffice/internal/domain/error"
)

// CreateClientInput represents the input for client creation.
type CreateClientInput struct {
	Name    string
	Company string
	Email   string
	Phone   string
	RFC     string
}

// CreateClientUseCase handles client creation.
type CreateClientUseCase struct {
	clientRepo adapter.ClientRepository
	clock      adapter.Clock
}

// NewCreateClientUseCase creates a new CreateClientUseCase instance.
func NewCreateClientUseCase(clientRepo adapter.ClientRepository, clock adapter.Clock) *CreateClientUseCase {
	return &CreateClientUseCase{
		clientRepo: clientRepo,
		clock:      clock,
	}
}

// Execute performs the client creation.
func (uc *CreateClientUseCase) Execute(ctx context.Context, input CreateClientInput) (*entity.Client, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerror.ErrClientNameRequired
	}

	client := entity.NewClient(input.Name, input.Company, input.Email, input.Phone, input.RFC, uc.clock.Now())

	if err := uc.clientRepo.Create(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}
