package recurring

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cohetebrands/backoffice/internal/application/adapter"
	"github.com/cohetebrands/backoffice/internal/domain/entity"
	domainerror "github.com/cohetebrands/backoffice/internal/domain/error"
)

// MarkPaidInput represents the input for manually settling an obligation.
type MarkPaidInput struct {
	TemplateID uuid.UUID
	// PaidDate overrides the settlement date. Defaults to the current time.
	PaidDate *time.Time
}

// MarkPaidOutput represents the output of settling an obligation.
type MarkPaidOutput struct {
	Transaction *entity.Transaction
}

// MarkPaidUseCase settles an obligation manually: a full single execution,
// except the ledger entry is dated with the caller-supplied paid date rather
// than one derived from the schedule.
type MarkPaidUseCase struct {
	templateRepo adapter.RecurringTemplateRepository
	clock        adapter.Clock
}

// NewMarkPaidUseCase creates a new MarkPaidUseCase instance.
func NewMarkPaidUseCase(
	templateRepo adapter.RecurringTemplateRepository,
	clock adapter.Clock,
) *MarkPaidUseCase {
	return &MarkPaidUseCase{
		templateRepo: templateRepo,
		clock:        clock,
	}
}

// Execute settles the obligation.
func (uc *MarkPaidUseCase) Execute(ctx context.Context, input MarkPaidInput) (*MarkPaidOutput, error) {
	now := uc.clock.Now()

	paidDate := now
	if input.PaidDate != nil {
		paidDate = *input.PaidDate
	}

	template, err := loadActiveTemplate(ctx, uc.templateRepo, input.TemplateID)
	if err != nil {
		return nil, err
	}

	// Double-payment guard: the caller only surfaces unpaid obligations, so a
	// second settlement inside the same calendar month is always a mistake.
	if template.ExecutedInMonth(paidDate) {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeAlreadyPaid,
			"obligation already paid this month",
			domainerror.ErrAlreadyPaid,
		)
	}

	transaction, err := materialize(ctx, uc.templateRepo, template, paidDate, now)
	if err != nil {
		return nil, err
	}

	return &MarkPaidOutput{Transaction: transaction}, nil
}
