package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cohetebrands/backoffice/internal/domain/entity"
)

// ScheduleAdvance describes a template schedule transition for a single
// execution. ExpectedNext is the next_execution_date loaded by the caller;
// the materialization fails with ErrScheduleConflict when the stored value
// no longer matches it.
type ScheduleAdvance struct {
	TemplateID    uuid.UUID
	ExpectedNext  time.Time
	NewNext       time.Time
	LastExecution time.Time
}

// RecurringTemplateRepository defines persistence operations for recurring templates.
type RecurringTemplateRepository interface {
	// Create creates a new recurring template.
	Create(ctx context.Context, template *entity.RecurringTemplate) error

	// CreateWithTransaction atomically creates a template together with a
	// companion ledger entry. Either both rows are written or neither.
	CreateWithTransaction(ctx context.Context, template *entity.RecurringTemplate, transaction *entity.Transaction) error

	// FindByID retrieves a template by its ID, active or not.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.RecurringTemplate, error)

	// FindAll retrieves all templates, newest first.
	FindAll(ctx context.Context) ([]*entity.RecurringTemplate, error)

	// FindDue retrieves active templates with next_execution_date <= now,
	// oldest due first.
	FindDue(ctx context.Context, now time.Time) ([]*entity.RecurringTemplate, error)

	// FindDueInMonth retrieves active templates of the given type whose
	// next_execution_date falls inside [monthStart, monthEnd] and whose
	// last_execution_date is null or outside that range.
	FindDueInMonth(ctx context.Context, transactionType entity.TransactionType, monthStart, monthEnd time.Time) ([]*entity.RecurringTemplate, error)

	// Update updates an existing template.
	Update(ctx context.Context, template *entity.RecurringTemplate) error

	// MaterializeExecution atomically advances the template schedule and
	// inserts the spawned transaction. The advance is guarded by
	// advance.ExpectedNext; when a concurrent execution already moved the
	// schedule, nothing is written and ErrScheduleConflict is returned.
	MaterializeExecution(ctx context.Context, advance ScheduleAdvance, transaction *entity.Transaction) error

	// ClearLastExecution resets last_execution_date to null.
	ClearLastExecution(ctx context.Context, id uuid.UUID) error

	// Delete hard-deletes a template, nulling recurring_template_id on any
	// transactions it spawned. Historical transactions are never removed.
	Delete(ctx context.Context, id uuid.UUID) error
}
