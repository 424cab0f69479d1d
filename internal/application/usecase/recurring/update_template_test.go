package recurring

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cohetebrands/backoffice/internal/domain/entity"
	domainerror "github.com/cohetebrands/backoffice/internal/domain/error"
)

func TestUpdateTemplate(t *testing.T) {
	now := date(2025, time.March, 10)

	t.Run("applies partial changes", func(t *testing.T) {
		template := monthlyTemplate(date(2025, time.April, 1), 1)
		repo := newFakeTemplateRepo(template)
		uc := NewUpdateTemplateUseCase(repo, newFakeClientRepo(), fixedClock{now: now})

		name := "Renta nueva oficina"
		amount := decimal.NewFromInt(32000)
		updated, err := uc.Execute(context.Background(), UpdateTemplateInput{
			TemplateID: template.ID,
			Name:       &name,
			Amount:     &amount,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Name != name || !updated.Amount.Equal(amount) {
			t.Errorf("got name %q amount %s", updated.Name, updated.Amount)
		}
		if updated.Category != template.Category {
			t.Errorf("untouched category changed to %q", updated.Category)
		}

		stored, _ := repo.FindByID(context.Background(), template.ID)
		if stored.Name != name {
			t.Errorf("stored name = %q, want %q", stored.Name, name)
		}
	})

	t.Run("links an existing client", func(t *testing.T) {
		template := monthlyTemplate(date(2025, time.April, 1), 1)
		repo := newFakeTemplateRepo(template)
		linked := entity.NewClient("Acme", "Acme SA de CV", "hola@acme.mx", "", "", now)
		uc := NewUpdateTemplateUseCase(repo, newFakeClientRepo(linked), fixedClock{now: now})

		updated, err := uc.Execute(context.Background(), UpdateTemplateInput{
			TemplateID: template.ID,
			ClientID:   &linked.ID,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.ClientID == nil || *updated.ClientID != linked.ID {
			t.Errorf("client id = %v, want %s", updated.ClientID, linked.ID)
		}
	})

	t.Run("rejects an unknown client", func(t *testing.T) {
		template := monthlyTemplate(date(2025, time.April, 1), 1)
		repo := newFakeTemplateRepo(template)
		uc := NewUpdateTemplateUseCase(repo, newFakeClientRepo(), fixedClock{now: now})

		unknown := uuid.New()
		_, err := uc.Execute(context.Background(), UpdateTemplateInput{
			TemplateID: template.ID,
			ClientID:   &unknown,
		})
		if !errors.Is(err, domainerror.ErrClientNotFoundForTransaction) {
			t.Fatalf("error = %v, want ErrClientNotFoundForTransaction", err)
		}

		stored, _ := repo.FindByID(context.Background(), template.ID)
		if stored.ClientID != nil {
			t.Errorf("dangling client link persisted: %s", stored.ClientID)
		}
	})

	t.Run("clears the client link without a lookup", func(t *testing.T) {
		template := monthlyTemplate(date(2025, time.April, 1), 1)
		clientID := uuid.New()
		template.ClientID = &clientID
		repo := newFakeTemplateRepo(template)
		uc := NewUpdateTemplateUseCase(repo, newFakeClientRepo(), fixedClock{now: now})

		updated, err := uc.Execute(context.Background(), UpdateTemplateInput{
			TemplateID:  template.ID,
			ClearClient: true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.ClientID != nil {
			t.Errorf("client id = %v, want nil", updated.ClientID)
		}
	})

	t.Run("missing template", func(t *testing.T) {
		uc := NewUpdateTemplateUseCase(newFakeTemplateRepo(), newFakeClientRepo(), fixedClock{now: now})

		_, err := uc.Execute(context.Background(), UpdateTemplateInput{TemplateID: uuid.New()})
		if !errors.Is(err, domainerror.ErrTemplateNotFound) {
			t.Fatalf("error = %v, want ErrTemplateNotFound", err)
		}
	})

	t.Run("validates the merged schedule", func(t *testing.T) {
		template := monthlyTemplate(date(2025, time.April, 1), 1)
		repo := newFakeTemplateRepo(template)
		uc := NewUpdateTemplateUseCase(repo, newFakeClientRepo(), fixedClock{now: now})

		frequency := entity.FrequencyWeekly
		_, err := uc.Execute(context.Background(), UpdateTemplateInput{
			TemplateID: template.ID,
			Frequency:  &frequency, // weekly now requires day_of_week
		})
		if !errors.Is(err, domainerror.ErrInvalidScheduleDay) {
			t.Fatalf("error = %v, want ErrInvalidScheduleDay", err)
		}
	})
}
