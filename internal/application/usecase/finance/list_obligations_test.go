package finance

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cohetebrands/backoffice/internal/application/adapter"
	"github.com/cohetebrands/backoffice/internal/domain/entity"
	domainerror "github.com/cohetebrands/backoffice/internal/domain/error"
)

// stubTemplateRepo serves canned templates and records the month window the
// use case asked for.
type stubTemplateRepo struct {
	templates  []*entity.RecurringTemplate
	gotType    entity.TransactionType
	gotStart   time.Time
	gotEnd     time.Time
	callsCount int
}

func (r *stubTemplateRepo) Create(_ context.Context, _ *entity.RecurringTemplate) error { return nil }

func (r *stubTemplateRepo) CreateWithTransaction(_ context.Context, _ *entity.RecurringTemplate, _ *entity.Transaction) error {
	return nil
}

func (r *stubTemplateRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.RecurringTemplate, error) {
	return nil, domainerror.ErrTemplateNotFound
}

func (r *stubTemplateRepo) FindAll(_ context.Context) ([]*entity.RecurringTemplate, error) {
	return r.templates, nil
}

func (r *stubTemplateRepo) FindDue(_ context.Context, _ time.Time) ([]*entity.RecurringTemplate, error) {
	return nil, nil
}

func (r *stubTemplateRepo) FindDueInMonth(_ context.Context, transactionType entity.TransactionType, monthStart, monthEnd time.Time) ([]*entity.RecurringTemplate, error) {
	r.gotType = transactionType
	r.gotStart = monthStart
	r.gotEnd = monthEnd
	r.callsCount++

	var matched []*entity.RecurringTemplate
	for _, template := range r.templates {
		if template.Type == transactionType {
			matched = append(matched, template)
		}
	}
	return matched, nil
}

func (r *stubTemplateRepo) Update(_ context.Context, _ *entity.RecurringTemplate) error { return nil }

func (r *stubTemplateRepo) MaterializeExecution(_ context.Context, _ adapter.ScheduleAdvance, _ *entity.Transaction) error {
	return nil
}

func (r *stubTemplateRepo) ClearLastExecution(_ context.Context, _ uuid.UUID) error { return nil }
func (r *stubTemplateRepo) Delete(_ context.Context, _ uuid.UUID) error             { return nil }

func obligation(transactionType entity.TransactionType, name string) *entity.RecurringTemplate {
	category := entity.CategoryIguala
	if transactionType == entity.TransactionTypeExpense {
		category = entity.CategoryNomina
	}
	return &entity.RecurringTemplate{
		ID:        uuid.New(),
		Name:      name,
		Type:      transactionType,
		Category:  category,
		Amount:    decimal.NewFromInt(10000),
		Frequency: entity.FrequencyMonthly,
		IsActive:  true,
	}
}

func TestListObligations(t *testing.T) {
	t.Run("payables query expense templates for the requested month", func(t *testing.T) {
		repo := &stubTemplateRepo{templates: []*entity.RecurringTemplate{
			obligation(entity.TransactionTypeExpense, "Renta"),
			obligation(entity.TransactionTypeIncome, "Iguala Acme"),
		}}
		uc := NewListObligationsUseCase(repo, fixedClock{now: date(2025, time.June, 10)})

		payables, err := uc.Payables(context.Background(), ListObligationsInput{Year: 2025, Month: time.March})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(payables) != 1 || payables[0].Name != "Renta" {
			t.Fatalf("payables = %v, want only Renta", payables)
		}
		if repo.gotType != entity.TransactionTypeExpense {
			t.Errorf("queried type = %s, want expense", repo.gotType)
		}
		if !repo.gotStart.Equal(date(2025, time.March, 1)) || !repo.gotEnd.Equal(date(2025, time.March, 31)) {
			t.Errorf("window = %s..%s, want 2025-03-01..2025-03-31",
				repo.gotStart.Format("2006-01-02"), repo.gotEnd.Format("2006-01-02"))
		}
	})

	t.Run("receivables query income templates", func(t *testing.T) {
		repo := &stubTemplateRepo{templates: []*entity.RecurringTemplate{
			obligation(entity.TransactionTypeIncome, "Iguala Acme"),
		}}
		uc := NewListObligationsUseCase(repo, fixedClock{now: date(2025, time.June, 10)})

		receivables, err := uc.Receivables(context.Background(), ListObligationsInput{Year: 2025, Month: time.June})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(receivables) != 1 || receivables[0].Name != "Iguala Acme" {
			t.Fatalf("receivables = %v, want only Iguala Acme", receivables)
		}
		if repo.gotType != entity.TransactionTypeIncome {
			t.Errorf("queried type = %s, want income", repo.gotType)
		}
	})

	t.Run("zero input defaults to the current month", func(t *testing.T) {
		repo := &stubTemplateRepo{}
		uc := NewListObligationsUseCase(repo, fixedClock{now: date(2025, time.February, 14)})

		if _, err := uc.Payables(context.Background(), ListObligationsInput{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !repo.gotStart.Equal(date(2025, time.February, 1)) || !repo.gotEnd.Equal(date(2025, time.February, 28)) {
			t.Errorf("window = %s..%s, want 2025-02-01..2025-02-28",
				repo.gotStart.Format("2006-01-02"), repo.gotEnd.Format("2006-01-02"))
		}
	})
}
