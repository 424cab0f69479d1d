package recurring

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/cohetebrands/backoffice/internal/domain/entity"
)

func TestExecutePending(t *testing.T) {
	now := date(2025, time.March, 10)

	t.Run("executes every due template once", func(t *testing.T) {
		dueRent := monthlyTemplate(date(2025, time.March, 1), 1)
		dueToday := monthlyTemplate(date(2025, time.March, 10), 10)
		notDue := monthlyTemplate(date(2025, time.March, 20), 20)
		inactive := monthlyTemplate(date(2025, time.March, 1), 1)
		inactive.IsActive = false

		repo := newFakeTemplateRepo(dueRent, dueToday, notDue, inactive)
		uc := NewExecutePendingUseCase(repo, fixedClock{now: now})

		output, err := uc.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Transactions) != 2 {
			t.Fatalf("transactions = %d, want 2", len(output.Transactions))
		}
		if len(output.Failures) != 0 {
			t.Fatalf("failures = %d, want 0", len(output.Failures))
		}

		sources := map[uuid.UUID]bool{}
		for _, transaction := range output.Transactions {
			if transaction.RecurringTemplateID == nil {
				t.Fatal("expected transactions to reference their template")
			}
			sources[*transaction.RecurringTemplateID] = true
		}
		if !sources[dueRent.ID] || !sources[dueToday.ID] {
			t.Error("expected both due templates to execute")
		}
		if sources[notDue.ID] || sources[inactive.ID] {
			t.Error("expected future and inactive templates to be skipped")
		}
	})

	t.Run("a failing template does not abort the batch", func(t *testing.T) {
		healthy := monthlyTemplate(date(2025, time.March, 1), 1)
		doomed := monthlyTemplate(date(2025, time.March, 5), 5)

		repo := newFakeTemplateRepo(healthy, doomed)
		// Drop the doomed template from storage after the due-scan sees it,
		// so its guarded advance fails mid-batch.
		racing := &vanishingTemplateRepo{fakeTemplateRepo: repo, vanishID: doomed.ID}
		uc := NewExecutePendingUseCase(racing, fixedClock{now: now})

		output, err := uc.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Transactions) != 1 {
			t.Fatalf("transactions = %d, want 1", len(output.Transactions))
		}
		if len(output.Failures) != 1 {
			t.Fatalf("failures = %d, want 1", len(output.Failures))
		}
		if output.Failures[0].TemplateID != doomed.ID {
			t.Errorf("failed template = %s, want %s", output.Failures[0].TemplateID, doomed.ID)
		}
		if output.Failures[0].Reason == "" {
			t.Error("expected a failure reason")
		}
	})

	t.Run("empty due set yields an empty report", func(t *testing.T) {
		repo := newFakeTemplateRepo(monthlyTemplate(date(2025, time.April, 1), 1))
		uc := NewExecutePendingUseCase(repo, fixedClock{now: now})

		output, err := uc.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Transactions) != 0 || len(output.Failures) != 0 {
			t.Errorf("expected empty report, got %d transactions and %d failures",
				len(output.Transactions), len(output.Failures))
		}
	})
}

// vanishingTemplateRepo deletes one template after the due-scan returns it.
type vanishingTemplateRepo struct {
	*fakeTemplateRepo
	vanishID uuid.UUID
}

func (r *vanishingTemplateRepo) FindDue(ctx context.Context, now time.Time) ([]*entity.RecurringTemplate, error) {
	due, err := r.fakeTemplateRepo.FindDue(ctx, now)
	if err != nil {
		return nil, err
	}
	delete(r.templates, r.vanishID)
	return due, nil
}
