package recurring

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/cohetebrands/backoffice/internal/application/adapter"
	domainerror "github.com/cohetebrands/backoffice/internal/domain/error"
)

// DeleteTemplateUseCase hard-deletes a recurring template. Transactions it
// spawned keep living in the ledger with their template link nulled.
type DeleteTemplateUseCase struct {
	templateRepo adapter.RecurringTemplateRepository
}

// NewDeleteTemplateUseCase creates a new DeleteTemplateUseCase instance.
func NewDeleteTemplateUseCase(templateRepo adapter.RecurringTemplateRepository) *DeleteTemplateUseCase {
	return &DeleteTemplateUseCase{
		templateRepo: templateRepo,
	}
}

// Execute deletes the template.
func (uc *DeleteTemplateUseCase) Execute(ctx context.Context, templateID uuid.UUID) error {
	if err := uc.templateRepo.Delete(ctx, templateID); err != nil {
		if errors.Is(err, domainerror.ErrTemplateNotFound) {
			return domainerror.NewRecurringError(
				domainerror.ErrCodeTemplateNotFound,
				"recurring template not found",
				domainerror.ErrTemplateNotFound,
			)
		}
		return fmt.Errorf("failed to delete recurring template: %w", err)
	}
	return nil
}
