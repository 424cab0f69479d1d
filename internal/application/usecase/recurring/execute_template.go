package recurring

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cohetebrands/backoffice/internal/application/adapter"
	"github.com/cohetebrands/backoffice/internal/domain/entity"
	domainerror "github.com/cohetebrands/backoffice/internal/domain/error"
)

// ExecuteTemplateOutput represents the output of a single template execution.
type ExecuteTemplateOutput struct {
	Transaction *entity.Transaction
}

// ExecuteTemplateUseCase materializes one ledger entry from a due template
// and advances its schedule.
type ExecuteTemplateUseCase struct {
	templateRepo adapter.RecurringTemplateRepository
	clock        adapter.Clock
}

// NewExecuteTemplateUseCase creates a new ExecuteTemplateUseCase instance.
func NewExecuteTemplateUseCase(
	templateRepo adapter.RecurringTemplateRepository,
	clock adapter.Clock,
) *ExecuteTemplateUseCase {
	return &ExecuteTemplateUseCase{
		templateRepo: templateRepo,
		clock:        clock,
	}
}

// Execute performs a single execution of the template.
func (uc *ExecuteTemplateUseCase) Execute(ctx context.Context, templateID uuid.UUID) (*ExecuteTemplateOutput, error) {
	now := uc.clock.Now()

	template, err := loadActiveTemplate(ctx, uc.templateRepo, templateID)
	if err != nil {
		return nil, err
	}

	transaction, err := materialize(ctx, uc.templateRepo, template, now, now)
	if err != nil {
		return nil, err
	}

	return &ExecuteTemplateOutput{Transaction: transaction}, nil
}

// loadActiveTemplate fetches a template, treating missing and inactive
// templates the same way: the scheduler must never touch either.
func loadActiveTemplate(
	ctx context.Context,
	repo adapter.RecurringTemplateRepository,
	templateID uuid.UUID,
) (*entity.RecurringTemplate, error) {
	template, err := repo.FindByID(ctx, templateID)
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

	if !template.IsActive {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeTemplateNotFound,
			"recurring template is inactive",
			domainerror.ErrTemplateNotFound,
		)
	}

	return template, nil
}

// materialize creates the ledger entry for one execution and advances the
// template schedule in a single guarded write. executionDate becomes the
// transaction date, paid date, and last execution date; the schedule always
// advances one period from the template's current next_execution_date.
func materialize(
	ctx context.Context,
	repo adapter.RecurringTemplateRepository,
	template *entity.RecurringTemplate,
	executionDate time.Time,
	now time.Time,
) (*entity.Transaction, error) {
	advance := adapter.ScheduleAdvance{
		TemplateID:    template.ID,
		ExpectedNext:  template.NextExecutionDate,
		NewNext:       NextExecution(template.NextExecutionDate, template.Frequency, template.DayOfMonth),
		LastExecution: executionDate,
	}

	transaction := transactionFromTemplate(template, executionDate, now)

	if err := repo.MaterializeExecution(ctx, advance, transaction); err != nil {
		if errors.Is(err, domainerror.ErrScheduleConflict) {
			return nil, domainerror.NewRecurringError(
				domainerror.ErrCodeScheduleConflict,
				"template was executed concurrently",
				domainerror.ErrScheduleConflict,
			)
		}
		return nil, fmt.Errorf("failed to materialize execution: %w", err)
	}

	return transaction, nil
}

// transactionFromTemplate builds the paid ledger entry spawned by a template
// execution, tagged with its provenance.
func transactionFromTemplate(template *entity.RecurringTemplate, executionDate, now time.Time) *entity.Transaction {
	templateID := template.ID
	sourceID := templateID.String()
	paidDate := executionDate

	return &entity.Transaction{
		ID:                  uuid.New(),
		Type:                template.Type,
		Category:            template.Category,
		Amount:              template.Amount,
		Date:                executionDate,
		Fiscal:              template.Fiscal,
		IsPaid:              true,
		PaidDate:            &paidDate,
		ClientID:            template.ClientID,
		RecurringTemplateID: &templateID,
		IsRecurringInstance: true,
		Source:              entity.SourceRecurringTemplate,
		SourceID:            &sourceID,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}
