// Package transaction contains ledger-related use cases.
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

// CreateTransactionInput represents the input for ledger entry creation.
type CreateTransactionInput struct {
	Type     entity.TransactionType
	Category entity.Category
	Amount   decimal.Decimal
	Date     time.Time
	Fiscal   entity.FiscalDetails
	IsPaid   bool
	PaidDate *time.Time
	ClientID *uuid.UUID
}

// CreateTransactionUseCase handles ledger entry creation.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	clientRepo      adapter.ClientRepository
	clock           adapter.Clock
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	clientRepo adapter.ClientRepository,
	clock adapter.Clock,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		clientRepo:      clientRepo,
		clock:           clock,
	}
}

// Execute performs the ledger entry creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*entity.Transaction, error) {
	if err := ValidateEntryFields(input.Type, input.Category, input.Amount); err != nil {
		return nil, err
	}

	if input.ClientID != nil {
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
	}

	now := uc.clock.Now()

	transaction := entity.NewTransaction(input.Type, input.Category, input.Amount, input.Date, now)
	transaction.Fiscal = input.Fiscal
	transaction.ClientID = input.ClientID
	transaction.IsPaid = input.IsPaid
	if input.IsPaid {
		paidDate := now
		if input.PaidDate != nil {
			paidDate = *input.PaidDate
		}
		transaction.PaidDate = &paidDate
	}

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return transaction, nil
}

// ValidateEntryFields enforces the type/category/amount domain rules shared
// by create and update.
func ValidateEntryFields(transactionType entity.TransactionType, category entity.Category, amount decimal.Decimal) error {
	if !entity.IsValidTransactionType(transactionType) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"type must be 'income' or 'expense'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if !entity.IsValidCategory(transactionType, category) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidCategory,
			fmt.Sprintf("category %q is not valid for type %q", category, transactionType),
			domainerror.ErrInvalidCategory,
		)
	}

	if !amount.IsPositive() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidAmount,
			"amount must be positive",
			domainerror.ErrInvalidAmount,
		)
	}

	return nil
}
