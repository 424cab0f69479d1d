package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/cohetebrands/backoffice/internal/domain/entity"
	domainerror "github.com/cohetebrands/backoffice/internal/domain/error"
)

func newClient(name string) *entity.Client {
	return entity.NewClient(name, name+" SA de CV", "contacto@"+name+".mx", "+52 55 1234 5678", "", date(2025, time.January, 1))
}

func TestClientRepository_CreateAndFindByID(t *testing.T) {
	db := newTestDB(t)
	repo := NewClientRepository(db)
	ctx := context.Background()

	client := newClient("acme")
	client.RFC = "ACM010101AB1"

	if err := repo.Create(ctx, client); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	found, err := repo.FindByID(ctx, client.ID)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if found.Name != "acme" || found.Company != "acme SA de CV" {
		t.Errorf("got name %q company %q", found.Name, found.Company)
	}
	if found.Email != "contacto@acme.mx" || found.RFC != "ACM010101AB1" {
		t.Errorf("got email %q rfc %q", found.Email, found.RFC)
	}
	if !found.IsActive {
		t.Error("new client should be active")
	}

	if _, err := repo.FindByID(ctx, uuid.New()); !errors.Is(err, domainerror.ErrClientNotFound) {
		t.Fatalf("got error %v, want ErrClientNotFound", err)
	}
}

func TestClientRepository_FindAll(t *testing.T) {
	db := newTestDB(t)
	repo := NewClientRepository(db)
	ctx := context.Background()

	for _, name := range []string{"zupermercado", "acme", "mango"} {
		if err := repo.Create(ctx, newClient(name)); err != nil {
			t.Fatalf("failed to seed client %q: %v", name, err)
		}
	}

	clients, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll returned error: %v", err)
	}
	if len(clients) != 3 {
		t.Fatalf("got %d clients, want 3", len(clients))
	}
	wantOrder := []string{"acme", "mango", "zupermercado"}
	for i, client := range clients {
		if client.Name != wantOrder[i] {
			t.Errorf("position %d: got %q, want %q", i, client.Name, wantOrder[i])
		}
	}
}

func TestClientRepository_Update(t *testing.T) {
	db := newTestDB(t)
	repo := NewClientRepository(db)
	ctx := context.Background()

	client := newClient("acme")
	if err := repo.Create(ctx, client); err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	client.Phone = ""
	client.IsActive = false
	if err := repo.Update(ctx, client); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	found, err := repo.FindByID(ctx, client.ID)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if found.Phone != "" {
		t.Errorf("got phone %q, want empty", found.Phone)
	}
	if found.IsActive {
		t.Error("client should be inactive after update")
	}

	missing := newClient("fantasma")
	if err := repo.Update(ctx, missing); !errors.Is(err, domainerror.ErrClientNotFound) {
		t.Fatalf("got error %v, want ErrClientNotFound", err)
	}
}

func TestClientRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	repo := NewClientRepository(db)
	transactionRepo := NewTransactionRepository(db)
	templateRepo := NewRecurringTemplateRepository(db)
	ctx := context.Background()

	client := newClient("acme")
	if err := repo.Create(ctx, client); err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	transaction := newLedgerEntry(entity.TransactionTypeIncome, entity.CategoryIguala, 20000, date(2025, time.March, 1))
	transaction.ClientID = &client.ID
	if err := transactionRepo.Create(ctx, transaction); err != nil {
		t.Fatalf("failed to create transaction: %v", err)
	}

	template := newTemplate("Iguala acme", entity.TransactionTypeIncome, date(2025, time.April, 1))
	template.ClientID = &client.ID
	if err := templateRepo.Create(ctx, template); err != nil {
		t.Fatalf("failed to create template: %v", err)
	}

	if err := repo.Delete(ctx, client.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	if _, err := repo.FindByID(ctx, client.ID); !errors.Is(err, domainerror.ErrClientNotFound) {
		t.Fatalf("client still present after delete, got error %v", err)
	}

	// Referencing rows survive with the link nulled.
	keptTransaction, err := transactionRepo.FindByID(ctx, transaction.ID)
	if err != nil {
		t.Fatalf("transaction lookup after client delete: %v", err)
	}
	if keptTransaction.ClientID != nil {
		t.Errorf("transaction client_id not nulled, got %v", keptTransaction.ClientID)
	}

	keptTemplate, err := templateRepo.FindByID(ctx, template.ID)
	if err != nil {
		t.Fatalf("template lookup after client delete: %v", err)
	}
	if keptTemplate.ClientID != nil {
		t.Errorf("template client_id not nulled, got %v", keptTemplate.ClientID)
	}

	if err := repo.Delete(ctx, client.ID); !errors.Is(err, domainerror.ErrClientNotFound) {
		t.Fatalf("got error %v, want ErrClientNotFound", err)
	}
}
