package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/cohetebrands/backoffice/internal/application/adapter"
	"github.com/cohetebrands/backoffice/internal/application/usecase/recurring"
	"github.com/cohetebrands/backoffice/internal/domain/entity"
)

// ListObligationsInput selects the month to inspect. A zero Year/Month pair
// defaults to the current calendar month.
type ListObligationsInput struct {
	Year  int
	Month time.Month
}

// ListObligationsUseCase returns the recurring obligations still outstanding
// for a month: active templates due inside it that have not been settled
// within it. Payables are expense templates, receivables income ones.
type ListObligationsUseCase struct {
	templateRepo adapter.RecurringTemplateRepository
	clock        adapter.Clock
}

// NewListObligationsUseCase creates a new ListObligationsUseCase instance.
func NewListObligationsUseCase(
	templateRepo adapter.RecurringTemplateRepository,
	clock adapter.Clock,
) *ListObligationsUseCase {
	return &ListObligationsUseCase{
		templateRepo: templateRepo,
		clock:        clock,
	}
}

// Payables returns outstanding expense obligations for the month.
func (uc *ListObligationsUseCase) Payables(ctx context.Context, input ListObligationsInput) ([]*entity.RecurringTemplate, error) {
	return uc.list(ctx, entity.TransactionTypeExpense, input)
}

// Receivables returns outstanding income obligations for the month.
func (uc *ListObligationsUseCase) Receivables(ctx context.Context, input ListObligationsInput) ([]*entity.RecurringTemplate, error) {
	return uc.list(ctx, entity.TransactionTypeIncome, input)
}

func (uc *ListObligationsUseCase) list(ctx context.Context, transactionType entity.TransactionType, input ListObligationsInput) ([]*entity.RecurringTemplate, error) {
	year, month := input.Year, input.Month
	if year == 0 || month == 0 {
		now := uc.clock.Now()
		year, month = now.Year(), now.Month()
	}

	monthStart, monthEnd := recurring.MonthBounds(year, month, time.UTC)

	templates, err := uc.templateRepo.FindDueInMonth(ctx, transactionType, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list obligations: %w", err)
	}
	return templates, nil
}
