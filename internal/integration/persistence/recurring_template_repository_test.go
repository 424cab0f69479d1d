package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cohetebrands/backoffice/internal/application/adapter"
	"github.com/cohetebrands/backoffice/internal/domain/entity"
	domainerror "github.com/cohetebrands/backoffice/internal/domain/error"
	"github.com/cohetebrands/backoffice/internal/integration/persistence/model"
)

func newTemplate(name string, transactionType entity.TransactionType, nextExecution time.Time) *entity.RecurringTemplate {
	category := entity.CategoryIguala
	if transactionType == entity.TransactionTypeExpense {
		category = entity.CategoryNomina
	}
	now := date(2025, time.January, 1)
	return &entity.RecurringTemplate{
		ID:                uuid.New(),
		Name:              name,
		Type:              transactionType,
		Category:          category,
		Amount:            decimal.NewFromInt(15000),
		Frequency:         entity.FrequencyMonthly,
		DayOfMonth:        intPtr(nextExecution.Day()),
		IsActive:          true,
		NextExecutionDate: nextExecution,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func spawnedTransaction(template *entity.RecurringTemplate, executionDate time.Time) *entity.Transaction {
	templateID := template.ID
	sourceID := templateID.String()
	paidDate := executionDate
	return &entity.Transaction{
		ID:                  uuid.New(),
		Type:                template.Type,
		Category:            template.Category,
		Amount:              template.Amount,
		Date:                executionDate,
		IsPaid:              true,
		PaidDate:            &paidDate,
		RecurringTemplateID: &templateID,
		IsRecurringInstance: true,
		Source:              entity.SourceRecurringTemplate,
		SourceID:            &sourceID,
		CreatedAt:           executionDate,
		UpdatedAt:           executionDate,
	}
}

func TestRecurringTemplateRepository_CreateWithTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("writes the template and its companion entry", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewRecurringTemplateRepository(db)

		template := newTemplate("Renta", entity.TransactionTypeExpense, date(2025, time.April, 1))
		transaction := spawnedTransaction(template, date(2025, time.March, 10))

		if err := repo.CreateWithTransaction(ctx, template, transaction); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := repo.FindByID(ctx, template.ID); err != nil {
			t.Fatalf("failed to reload template: %v", err)
		}
		var count int64
		db.Model(&model.TransactionModel{}).Where("recurring_template_id = ?", template.ID).Count(&count)
		if count != 1 {
			t.Errorf("companion transactions = %d, want 1", count)
		}
	})

	t.Run("rolls back the template when the ledger insert fails", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewRecurringTemplateRepository(db)
		transactionRepo := NewTransactionRepository(db)

		template := newTemplate("Renta", entity.TransactionTypeExpense, date(2025, time.April, 1))
		transaction := spawnedTransaction(template, date(2025, time.March, 10))

		// Occupy the companion's primary key so the second insert fails.
		conflicting := spawnedTransaction(newTemplate("Otra", entity.TransactionTypeExpense, date(2025, time.April, 1)), date(2025, time.March, 1))
		conflicting.ID = transaction.ID
		conflicting.RecurringTemplateID = nil
		if err := transactionRepo.Create(ctx, conflicting); err != nil {
			t.Fatalf("failed to seed conflicting transaction: %v", err)
		}

		if err := repo.CreateWithTransaction(ctx, template, transaction); err == nil {
			t.Fatal("expected an error from the conflicting ledger insert")
		}

		if _, err := repo.FindByID(ctx, template.ID); !errors.Is(err, domainerror.ErrTemplateNotFound) {
			t.Fatalf("template survived a failed companion insert, got error %v", err)
		}
	})
}

func TestRecurringTemplateRepository_MaterializeExecution(t *testing.T) {
	ctx := context.Background()

	t.Run("advances the schedule and inserts the transaction atomically", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewRecurringTemplateRepository(db)

		template := newTemplate("Renta", entity.TransactionTypeExpense, date(2025, time.March, 1))
		if err := repo.Create(ctx, template); err != nil {
			t.Fatalf("failed to create template: %v", err)
		}

		executionDate := date(2025, time.March, 1)
		transaction := spawnedTransaction(template, executionDate)
		advance := adapter.ScheduleAdvance{
			TemplateID:    template.ID,
			ExpectedNext:  template.NextExecutionDate,
			NewNext:       date(2025, time.April, 1),
			LastExecution: executionDate,
		}

		if err := repo.MaterializeExecution(ctx, advance, transaction); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		stored, err := repo.FindByID(ctx, template.ID)
		if err != nil {
			t.Fatalf("failed to reload template: %v", err)
		}
		if !stored.NextExecutionDate.Equal(date(2025, time.April, 1)) {
			t.Errorf("next execution = %s, want 2025-04-01", stored.NextExecutionDate.Format("2006-01-02"))
		}
		if stored.LastExecutionDate == nil || !stored.LastExecutionDate.Equal(executionDate) {
			t.Errorf("last execution = %v, want %s", stored.LastExecutionDate, executionDate.Format("2006-01-02"))
		}

		var count int64
		db.Model(&model.TransactionModel{}).Where("recurring_template_id = ?", template.ID).Count(&count)
		if count != 1 {
			t.Errorf("spawned transactions = %d, want 1", count)
		}
	})

	t.Run("stale expected date returns a conflict and writes nothing", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewRecurringTemplateRepository(db)

		template := newTemplate("Renta", entity.TransactionTypeExpense, date(2025, time.April, 1))
		if err := repo.Create(ctx, template); err != nil {
			t.Fatalf("failed to create template: %v", err)
		}

		// A concurrent run already advanced the schedule to April 1; this
		// caller still holds March 1.
		transaction := spawnedTransaction(template, date(2025, time.March, 1))
		advance := adapter.ScheduleAdvance{
			TemplateID:    template.ID,
			ExpectedNext:  date(2025, time.March, 1),
			NewNext:       date(2025, time.April, 1),
			LastExecution: date(2025, time.March, 1),
		}

		err := repo.MaterializeExecution(ctx, advance, transaction)
		if !errors.Is(err, domainerror.ErrScheduleConflict) {
			t.Fatalf("error = %v, want ErrScheduleConflict", err)
		}

		var count int64
		db.Model(&model.TransactionModel{}).Count(&count)
		if count != 0 {
			t.Errorf("transactions = %d, want 0 after a lost guard", count)
		}

		stored, _ := repo.FindByID(ctx, template.ID)
		if stored.LastExecutionDate != nil {
			t.Error("expected last execution to stay unset after a lost guard")
		}
	})

	t.Run("inactive templates never materialize", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewRecurringTemplateRepository(db)

		template := newTemplate("Renta", entity.TransactionTypeExpense, date(2025, time.March, 1))
		template.IsActive = false
		if err := repo.Create(ctx, template); err != nil {
			t.Fatalf("failed to create template: %v", err)
		}

		advance := adapter.ScheduleAdvance{
			TemplateID:    template.ID,
			ExpectedNext:  template.NextExecutionDate,
			NewNext:       date(2025, time.April, 1),
			LastExecution: date(2025, time.March, 1),
		}

		err := repo.MaterializeExecution(ctx, advance, spawnedTransaction(template, date(2025, time.March, 1)))
		if !errors.Is(err, domainerror.ErrScheduleConflict) {
			t.Errorf("error = %v, want ErrScheduleConflict", err)
		}
	})
}

func TestRecurringTemplateRepository_FindDue(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewRecurringTemplateRepository(db)

	overdue := newTemplate("Atrasada", entity.TransactionTypeExpense, date(2025, time.February, 1))
	dueToday := newTemplate("Hoy", entity.TransactionTypeExpense, date(2025, time.March, 10))
	future := newTemplate("Futura", entity.TransactionTypeExpense, date(2025, time.March, 20))
	inactive := newTemplate("Pausada", entity.TransactionTypeExpense, date(2025, time.February, 1))
	inactive.IsActive = false

	for _, template := range []*entity.RecurringTemplate{overdue, dueToday, future, inactive} {
		if err := repo.Create(ctx, template); err != nil {
			t.Fatalf("failed to create template: %v", err)
		}
	}

	due, err := repo.FindDue(ctx, date(2025, time.March, 10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(due) != 2 {
		t.Fatalf("due = %d, want 2", len(due))
	}
	// Oldest due first.
	if due[0].ID != overdue.ID || due[1].ID != dueToday.ID {
		t.Errorf("due order = %s, %s; want Atrasada, Hoy", due[0].Name, due[1].Name)
	}
}

func TestRecurringTemplateRepository_FindDueInMonth(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewRecurringTemplateRepository(db)

	monthStart := date(2025, time.March, 1)
	monthEnd := date(2025, time.March, 31)

	outstanding := newTemplate("Renta", entity.TransactionTypeExpense, date(2025, time.March, 5))

	settled := newTemplate("Nomina", entity.TransactionTypeExpense, date(2025, time.April, 15))
	settledDate := date(2025, time.March, 15)
	settled.LastExecutionDate = &settledDate
	// Settled mid-March: next execution already advanced out of the window
	// and the last execution sits inside it.

	settledLastMonth := newTemplate("Software", entity.TransactionTypeExpense, date(2025, time.March, 20))
	previousDate := date(2025, time.February, 20)
	settledLastMonth.LastExecutionDate = &previousDate

	income := newTemplate("Iguala", entity.TransactionTypeIncome, date(2025, time.March, 10))

	inactive := newTemplate("Pausada", entity.TransactionTypeExpense, date(2025, time.March, 5))
	inactive.IsActive = false

	outsideMonth := newTemplate("Anual", entity.TransactionTypeExpense, date(2025, time.June, 1))

	for _, template := range []*entity.RecurringTemplate{outstanding, settled, settledLastMonth, income, inactive, outsideMonth} {
		if err := repo.Create(ctx, template); err != nil {
			t.Fatalf("failed to create template: %v", err)
		}
	}

	payables, err := repo.FindDueInMonth(ctx, entity.TransactionTypeExpense, monthStart, monthEnd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	names := make(map[string]bool, len(payables))
	for _, template := range payables {
		names[template.Name] = true
	}
	if len(payables) != 2 || !names["Renta"] || !names["Software"] {
		t.Errorf("payables = %v, want Renta and Software", names)
	}

	receivables, err := repo.FindDueInMonth(ctx, entity.TransactionTypeIncome, monthStart, monthEnd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(receivables) != 1 || receivables[0].Name != "Iguala" {
		t.Errorf("receivables = %d, want only Iguala", len(receivables))
	}
}

func TestRecurringTemplateRepository_ClearLastExecution(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewRecurringTemplateRepository(db)

	template := newTemplate("Renta", entity.TransactionTypeExpense, date(2025, time.April, 1))
	settledDate := date(2025, time.March, 1)
	template.LastExecutionDate = &settledDate
	if err := repo.Create(ctx, template); err != nil {
		t.Fatalf("failed to create template: %v", err)
	}

	if err := repo.ClearLastExecution(ctx, template.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, _ := repo.FindByID(ctx, template.ID)
	if stored.LastExecutionDate != nil {
		t.Errorf("last execution = %v, want nil", stored.LastExecutionDate)
	}

	if err := repo.ClearLastExecution(ctx, uuid.New()); !errors.Is(err, domainerror.ErrTemplateNotFound) {
		t.Errorf("error = %v, want ErrTemplateNotFound", err)
	}
}

func TestRecurringTemplateRepository_Delete(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewRecurringTemplateRepository(db)
	transactionRepo := NewTransactionRepository(db)

	template := newTemplate("Renta", entity.TransactionTypeExpense, date(2025, time.March, 1))
	if err := repo.Create(ctx, template); err != nil {
		t.Fatalf("failed to create template: %v", err)
	}

	spawned := spawnedTransaction(template, date(2025, time.March, 1))
	if err := transactionRepo.Create(ctx, spawned); err != nil {
		t.Fatalf("failed to create transaction: %v", err)
	}

	if err := repo.Delete(ctx, template.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := repo.FindByID(ctx, template.ID); !errors.Is(err, domainerror.ErrTemplateNotFound) {
		t.Errorf("error = %v, want ErrTemplateNotFound after delete", err)
	}

	// The ledger keeps its history with the template link cleared.
	kept, err := transactionRepo.FindByID(ctx, spawned.ID)
	if err != nil {
		t.Fatalf("spawned transaction vanished: %v", err)
	}
	if kept.RecurringTemplateID != nil {
		t.Errorf("recurring_template_id = %v, want nil", kept.RecurringTemplateID)
	}

	if err := repo.Delete(ctx, uuid.New()); !errors.Is(err, domainerror.ErrTemplateNotFound) {
		t.Errorf("error = %v, want ErrTemplateNotFound for missing template", err)
	}
}
