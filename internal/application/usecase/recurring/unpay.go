package recurring

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/cohetebrands/backoffice/internal/application/adapter"
	domainerror "github.com/cohetebrands/backoffice/internal/domain/error"
)

// UnpayUseCase reverts an obligation's settlement marker so it surfaces as
// pending again. The ledger entry created by the settlement is deliberately
// left in place: the books keep the audit trail, only the template's
// last_execution_date is reset.
type UnpayUseCase struct {
	templateRepo adapter.RecurringTemplateRepository
}

// NewUnpayUseCase creates a new UnpayUseCase instance.
func NewUnpayUseCase(templateRepo adapter.RecurringTemplateRepository) *UnpayUseCase {
	return &UnpayUseCase{
		templateRepo: templateRepo,
	}
}

// Execute clears the template's last execution marker.
func (uc *UnpayUseCase) Execute(ctx context.Context, templateID uuid.UUID) error {
	if _, err := uc.templateRepo.FindByID(ctx, templateID); err != nil {
		if errors.Is(err, domainerror.ErrTemplateNotFound) {
			return domainerror.NewRecurringError(
				domainerror.ErrCodeTemplateNotFound,
				"recurring template not found",
				domainerror.ErrTemplateNotFound,
			)
		}
		return fmt.Errorf("failed to load recurring template: %w", err)
	}

	if err := uc.templateRepo.ClearLastExecution(ctx, templateID); err != nil {
		return fmt.Errorf("failed to clear last execution: %w", err)
	}

	return nil
}
