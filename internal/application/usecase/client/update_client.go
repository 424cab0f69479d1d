package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/cohetebrands/backoffice/internal/application/adapter"
	"github.com/cohetebrands/backoffice/internal/domain/entity"
	domainerror "github.com/cohetebrands/backoffice/internal/domain/error"
)

// UpdateClientInput represents a partial client update. Nil fields are left
// unchanged.
type UpdateClientInput struct {
	ClientID uuid.UUID
	Name     *string
	Company  *string
	Email    *string
	Phone    *string
	RFC      *string
	IsActive *bool
}

// UpdateClientUseCase handles client updates.
type UpdateClientUseCase struct {
	clientRepo adapter.ClientRepository
	clock      adapter.Clock
}

// NewUpdateClientUseCase creates a new UpdateClientUseCase instance.
func NewUpdateClientUseCase(clientRepo adapter.ClientRepository, clock adapter.Clock) *UpdateClientUseCase {
	return &UpdateClientUseCase{
		clientRepo: clientRepo,
		clock:      clock,
	}
}

// Execute applies the update and returns the stored client.
func (uc *UpdateClientUseCase) Execute(ctx context.Context, input UpdateClientInput) (*entity.Client, error) {
	client, err := uc.clientRepo.FindByID(ctx, input.ClientID)
	if err != nil {
		if errors.Is(err, domainerror.ErrClientNotFound) {
			return nil, domainerror.ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to load client: %w", err)
	}

	if input.Name != nil {
		client.Name = *input.Name
	}
	if input.Company != nil {
		client.Company = *input.Company
	}
	if input.Email != nil {
		client.Email = *input.Email
	}
	if input.Phone != nil {
		client.Phone = *input.Phone
	}
	if input.RFC != nil {
		client.RFC = *input.RFC
	}
	if input.IsActive != nil {
		client.IsActive = *input.IsActive
	}

	client.UpdatedAt = uc.clock.Now()

	if err := uc.clientRepo.Update(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to update client: %w", err)
	}

	return client, nil
}
