package recurring

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

// CreateTemplateInput represents the input for template creation.
type CreateTemplateInput struct {
	Name       string
	Type       entity.TransactionType
	Category   entity.Category
	Amount     decimal.Decimal
	Fiscal     entity.FiscalDetails
	Frequency  entity.Frequency
	DayOfMonth *int
	DayOfWeek  *int
	ClientID   *uuid.UUID
	// NextExecutionDate overrides the derived first due date.
	NextExecutionDate *time.Time
	// AlreadyPaid marks the current period as settled on creation and
	// materializes a same-day paid ledger entry.
	AlreadyPaid bool
}

// CreateTemplateOutput represents the output of template creation.
type CreateTemplateOutput struct {
	Template *entity.RecurringTemplate
	// Transaction is the companion ledger entry created when AlreadyPaid is
	// set; nil otherwise.
	Transaction *entity.Transaction
}

// CreateTemplateUseCase handles recurring template creation.
type CreateTemplateUseCase struct {
	templateRepo adapter.RecurringTemplateRepository
	clientRepo   adapter.ClientRepository
	clock        adapter.Clock
}

// NewCreateTemplateUseCase creates a new CreateTemplateUseCase instance.
func NewCreateTemplateUseCase(
	templateRepo adapter.RecurringTemplateRepository,
	clientRepo adapter.ClientRepository,
	clock adapter.Clock,
) *CreateTemplateUseCase {
	return &CreateTemplateUseCase{
		templateRepo: templateRepo,
		clientRepo:   clientRepo,
		clock:        clock,
	}
}

// Execute performs the template creation.
func (uc *CreateTemplateUseCase) Execute(ctx context.Context, input CreateTemplateInput) (*CreateTemplateOutput, error) {
	if err := validateScheduleFields(input.Type, input.Category, input.Amount, input.Frequency, input.DayOfMonth, input.DayOfWeek); err != nil {
		return nil, err
	}

	if err := verifyClientLink(ctx, uc.clientRepo, input.ClientID); err != nil {
		return nil, err
	}

	now := uc.clock.Now()

	nextExecution := InitialExecution(now, input.Frequency, input.DayOfMonth, input.DayOfWeek)
	if input.NextExecutionDate != nil {
		nextExecution = *input.NextExecutionDate
	}

	template := &entity.RecurringTemplate{
		ID:                uuid.New(),
		Name:              input.Name,
		Type:              input.Type,
		Category:          input.Category,
		Amount:            input.Amount,
		Fiscal:            input.Fiscal,
		Frequency:         input.Frequency,
		DayOfMonth:        input.DayOfMonth,
		DayOfWeek:         input.DayOfWeek,
		ClientID:          input.ClientID,
		IsActive:          true,
		NextExecutionDate: nextExecution,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if input.AlreadyPaid {
		template.LastExecutionDate = &now
		// Keep the schedule ahead of the settlement so the next batch run
		// does not charge the period again.
		if !template.NextExecutionDate.After(now) {
			template.NextExecutionDate = NextExecution(template.NextExecutionDate, template.Frequency, template.DayOfMonth)
		}
	}

	output := &CreateTemplateOutput{Template: template}

	if input.AlreadyPaid {
		// One repo transaction: a settled template without its ledger row
		// would leave the period unbillable.
		transaction := transactionFromTemplate(template, now, now)
		if err := uc.templateRepo.CreateWithTransaction(ctx, template, transaction); err != nil {
			return nil, fmt.Errorf("failed to create recurring template: %w", err)
		}
		output.Transaction = transaction
		return output, nil
	}

	if err := uc.templateRepo.Create(ctx, template); err != nil {
		return nil, fmt.Errorf("failed to create recurring template: %w", err)
	}

	return output, nil
}

// verifyClientLink checks that a linked client exists before it is attached
// to a template, mirroring the ledger entry path.
func verifyClientLink(ctx context.Context, clientRepo adapter.ClientRepository, clientID *uuid.UUID) error {
	if clientID == nil {
		return nil
	}
	if _, err := clientRepo.FindByID(ctx, *clientID); err != nil {
		if errors.Is(err, domainerror.ErrClientNotFound) {
			return domainerror.NewTransactionError(
				domainerror.ErrCodeTxnClientNotFound,
				"client not found",
				domainerror.ErrClientNotFoundForTransaction,
			)
		}
		return fmt.Errorf("failed to verify client: %w", err)
	}
	return nil
}

// validateScheduleFields enforces the domain rules shared by template create
// and update: a known type, a category from that type's closed set, a
// positive amount, a known frequency, and an anchor day matching it.
func validateScheduleFields(
	transactionType entity.TransactionType,
	category entity.Category,
	amount decimal.Decimal,
	frequency entity.Frequency,
	dayOfMonth, dayOfWeek *int,
) error {
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

	if !entity.IsValidFrequency(frequency) {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidFrequency,
			"frequency must be weekly, biweekly, monthly, quarterly, or yearly",
			domainerror.ErrInvalidFrequency,
		)
	}

	switch frequency {
	case entity.FrequencyMonthly:
		if dayOfMonth == nil || *dayOfMonth < 1 || *dayOfMonth > 31 {
			return domainerror.NewRecurringError(
				domainerror.ErrCodeInvalidScheduleDay,
				"monthly templates require day_of_month between 1 and 31",
				domainerror.ErrInvalidScheduleDay,
			)
		}
	case entity.FrequencyWeekly:
		if dayOfWeek == nil || *dayOfWeek < 0 || *dayOfWeek > 6 {
			return domainerror.NewRecurringError(
				domainerror.ErrCodeInvalidScheduleDay,
				"weekly templates require day_of_week between 0 and 6",
				domainerror.ErrInvalidScheduleDay,
			)
		}
	}

	return nil
}
