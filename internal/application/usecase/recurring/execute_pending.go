package recurring

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/cohetebrands/backoffice/internal/application/adapter"
	"github.com/cohetebrands/backoffice/internal/domain/entity"
)

// ExecutionFailure records a template the batch could not execute.
type ExecutionFailure struct {
	TemplateID uuid.UUID
	Reason     string
}

// ExecutePendingOutput represents the result of a batch due-scan.
type ExecutePendingOutput struct {
	Transactions []*entity.Transaction
	Failures     []ExecutionFailure
}

// ExecutePendingUseCase executes every active template whose
// next_execution_date has arrived. Templates are processed sequentially and
// independently: one failure never aborts the rest of the batch.
type ExecutePendingUseCase struct {
	templateRepo adapter.RecurringTemplateRepository
	clock        adapter.Clock
}

// NewExecutePendingUseCase creates a new ExecutePendingUseCase instance.
func NewExecutePendingUseCase(
	templateRepo adapter.RecurringTemplateRepository,
	clock adapter.Clock,
) *ExecutePendingUseCase {
	return &ExecutePendingUseCase{
		templateRepo: templateRepo,
		clock:        clock,
	}
}

// Execute runs the batch due-scan.
func (uc *ExecutePendingUseCase) Execute(ctx context.Context) (*ExecutePendingOutput, error) {
	now := uc.clock.Now()

	due, err := uc.templateRepo.FindDue(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("failed to scan due templates: %w", err)
	}

	slog.Info("Executing pending recurring templates",
		"due_count", len(due),
		"as_of", now.Format("2006-01-02"),
	)

	output := &ExecutePendingOutput{}
	for _, template := range due {
		transaction, err := materialize(ctx, uc.templateRepo, template, now, now)
		if err != nil {
			slog.Error("Failed to execute recurring template",
				"template_id", template.ID,
				"name", template.Name,
				"error", err,
			)
			output.Failures = append(output.Failures, ExecutionFailure{
				TemplateID: template.ID,
				Reason:     err.Error(),
			})
			continue
		}
		output.Transactions = append(output.Transactions, transaction)
	}

	return output, nil
}
