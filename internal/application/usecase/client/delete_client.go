package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/cohetebrands/backoffice/internal/application/adapter"
	domainerror "github.com/cohetebrands/backoffice/internal/domain/error"
)

// DeleteClientUseCase hard-deletes a client. Ledger entries and templates
// referencing it keep existing with their client link nulled.
type DeleteClientUseCase struct {
	clientRepo adapter.ClientRepository
}

// NewDeleteClientUseCase creates a new DeleteClientUseCase instance.
func NewDeleteClientUseCase(clientRepo adapter.ClientRepository) *DeleteClientUseCase {
	return &DeleteClientUseCase{
		clientRepo: clientRepo,
	}
}

// Execute deletes the client.
func (uc *DeleteClientUseCase) Execute(ctx context.Context, clientID uuid.UUID) error {
	if err := uc.clientRepo.Delete(ctx, clientID); err != nil {
		if errors.Is(err, domainerror.ErrClientNotFound) {
			return domainerror.ErrClientNotFound
		}
		return fmt.Errorf("failed to delete client: %w", err)
	}
	return nil
}
