package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/cohetebrands/backoffice/internal/application/adapter"
	domainerror "github.com/cohetebrands/backoffice/internal/domain/error"
)

// DeleteTransactionUseCase hard-deletes a ledger entry.
type DeleteTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(transactionRepo adapter.TransactionRepository) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute deletes the entry.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, transactionID uuid.UUID) error {
	if err := uc.transactionRepo.Delete(ctx, transactionID); err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	return nil
}
