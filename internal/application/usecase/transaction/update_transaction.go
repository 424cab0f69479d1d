package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cohetebrands/backoffice/internal/application/adapter"
	"github.com/cohetebrands/backoffice/internal/domain/entity"
	domainerror "github.com/cohetebrands/backoffice/internal/domain/error"
)

// UpdateTransactionInput represents a partial ledger entry update. Nil
// fields are left unchanged.
type UpdateTransactionInput struct {
	TransactionID uuid.UUID
	Type          *entity.TransactionType
	Category      *entity.Category
	Amount        *decimal.Decimal
	Date          *time.Time
	Fiscal        *entity.FiscalDetails
	IsPaid        *bool
	PaidDate      *time.Time
	ClientID      *uuid.UUID
	ClearClient   bool
}

// UpdateTransactionUseCase handles ledger entry updates.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	clientRepo      adapter.ClientRepository
	clock           adapter.Clock
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	clientRepo adapter.ClientRepository,
	clock adapter.Clock,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		clientRepo:      clientRepo,
		clock:           clock,
	}
}

// Execute applies the update and returns the stored entry.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*entity.Transaction, error) {
	transaction, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load transaction: %w", err)
	}

	if input.Type != nil {
		transaction.Type = *input.Type
	}
	if input.Category != nil {
		transaction.Category = *input.Category
	}
	if input.Amount != nil {
		transaction.Amount = *input.Amount
	}
	if input.Date != nil {
		transaction.Date = *input.Date
	}
	if input.Fiscal != nil {
		transaction.Fiscal = *input.Fiscal
	}
	if input.IsPaid != nil {
		transaction.IsPaid = *input.IsPaid
		if !transaction.IsPaid {
			transaction.PaidDate = nil
		}
	}
	if input.PaidDate != nil {
		transaction.PaidDate = input.PaidDate
	}
	if input.ClearClient {
		transaction.ClientID = nil
	} else if input.ClientID != nil {
		if _, err := uc.clientRepo.FindByID(ctx, *input.ClientID); err != nil {
			if errors.Is(err, domainerror.ErrClientNotFound) {
				return nil, domainerror.NewTransactionError(
					domainerror.ErrCodeTxnClientNotFound,
					"client not found",
					domainerror.ErrClientNotFoundForTransaction,
				)
			}
			return nil, fmt.Errorf("failed to verify client: %w", err)
		}
		transaction.ClientID = input.ClientID
	}

	if err := ValidateEntryFields(transaction.Type, transaction.Category, transaction.Amount); err != nil {
		return nil, err
	}

	transaction.UpdatedAt = uc.clock.Now()

	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return transaction, nil
}
