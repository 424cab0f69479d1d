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

// UpdateTemplateInput represents a partial template update. Nil fields are
// left unchanged.
type UpdateTemplateInput struct {
	TemplateID        uuid.UUID
	Name              *string
	Type              *entity.TransactionType
	Category          *entity.Category
	Amount            *decimal.Decimal
	Fiscal            *entity.FiscalDetails
	Frequency         *entity.Frequency
	DayOfMonth        *int
	DayOfWeek         *int
	ClientID          *uuid.UUID
	ClearClient       bool
	IsActive          *bool
	NextExecutionDate *time.Time
}

// UpdateTemplateUseCase handles recurring template updates.
type UpdateTemplateUseCase struct {
	templateRepo adapter.RecurringTemplateRepository
	clientRepo   adapter.ClientRepository
	clock        adapter.Clock
}

// NewUpdateTemplateUseCase creates a new UpdateTemplateUseCase instance.
func NewUpdateTemplateUseCase(
	templateRepo adapter.RecurringTemplateRepository,
	clientRepo adapter.ClientRepository,
	clock adapter.Clock,
) *UpdateTemplateUseCase {
	return &UpdateTemplateUseCase{
		templateRepo: templateRepo,
		clientRepo:   clientRepo,
		clock:        clock,
	}
}

// Execute applies the update and returns the stored template.
func (uc *UpdateTemplateUseCase) Execute(ctx context.Context, input UpdateTemplateInput) (*entity.RecurringTemplate, error) {
	template, err := uc.templateRepo.FindByID(ctx, input.TemplateID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTemplateNotFound) {
			return nil, domainerror.NewRecurringError(
				domainerror.ErrCodeTemplateNotFound,
				"recurring template not found",
				domainerror.ErrTemplateNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load recurring template: %w", err)
	}

	if input.Name != nil {
		template.Name = *input.Name
	}
	if input.Type != nil {
		template.Type = *input.Type
	}
	if input.Category != nil {
		template.Category = *input.Category
	}
	if input.Amount != nil {
		template.Amount = *input.Amount
	}
	if input.Fiscal != nil {
		template.Fiscal = *input.Fiscal
	}
	if input.Frequency != nil {
		template.Frequency = *input.Frequency
	}
	if input.DayOfMonth != nil {
		template.DayOfMonth = input.DayOfMonth
	}
	if input.DayOfWeek != nil {
		template.DayOfWeek = input.DayOfWeek
	}
	if input.ClearClient {
		template.ClientID = nil
	} else if input.ClientID != nil {
		if err := verifyClientLink(ctx, uc.clientRepo, input.ClientID); err != nil {
			return nil, err
		}
		template.ClientID = input.ClientID
	}
	if input.IsActive != nil {
		template.IsActive = *input.IsActive
	}
	if input.NextExecutionDate != nil {
		template.NextExecutionDate = *input.NextExecutionDate
	}

	if err := validateScheduleFields(template.Type, template.Category, template.Amount, template.Frequency, template.DayOfMonth, template.DayOfWeek); err != nil {
		return nil, err
	}

	template.UpdatedAt = uc.clock.Now()

	if err := uc.templateRepo.Update(ctx, template); err != nil {
		return nil, fmt.Errorf("failed to update recurring template: %w", err)
	}

	return template, nil
}
