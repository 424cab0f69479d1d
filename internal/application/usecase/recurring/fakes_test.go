package recurring

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cohetebrands/backoffice/internal/application/adapter"
	"github.com/cohetebrands/backoffice/internal/domain/entity"
	domainerror "github.com/cohetebrands/backoffice/internal/domain/error"
)

// fixedClock returns a constant time for deterministic scheduling tests.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

// fakeTemplateRepo is an in-memory adapter.RecurringTemplateRepository. Its
// MaterializeExecution applies the same guarded-advance semantics as the
// database implementation.
type fakeTemplateRepo struct {
	templates    map[uuid.UUID]*entity.RecurringTemplate
	materialized []*entity.Transaction
}

func newFakeTemplateRepo(templates ...*entity.RecurringTemplate) *fakeTemplateRepo {
	repo := &fakeTemplateRepo{
		templates: make(map[uuid.UUID]*entity.RecurringTemplate),
	}
	for _, template := range templates {
		copied := *template
		repo.templates[template.ID] = &copied
	}
	return repo
}

func (r *fakeTemplateRepo) Create(_ context.Context, template *entity.RecurringTemplate) error {
	copied := *template
	r.templates[template.ID] = &copied
	return nil
}

func (r *fakeTemplateRepo) CreateWithTransaction(_ context.Context, template *entity.RecurringTemplate, transaction *entity.Transaction) error {
	copied := *template
	r.templates[template.ID] = &copied
	r.materialized = append(r.materialized, transaction)
	return nil
}

func (r *fakeTemplateRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.RecurringTemplate, error) {
	template, ok := r.templates[id]
	if !ok {
		return nil, domainerror.ErrTemplateNotFound
	}
	copied := *template
	return &copied, nil
}

func (r *fakeTemplateRepo) FindAll(_ context.Context) ([]*entity.RecurringTemplate, error) {
	templates := make([]*entity.RecurringTemplate, 0, len(r.templates))
	for _, template := range r.templates {
		copied := *template
		templates = append(templates, &copied)
	}
	return templates, nil
}

func (r *fakeTemplateRepo) FindDue(_ context.Context, now time.Time) ([]*entity.RecurringTemplate, error) {
	var due []*entity.RecurringTemplate
	for _, template := range r.templates {
		if template.IsActive && !template.NextExecutionDate.After(now) {
			copied := *template
			due = append(due, &copied)
		}
	}
	return due, nil
}

func (r *fakeTemplateRepo) FindDueInMonth(_ context.Context, transactionType entity.TransactionType, monthStart, monthEnd time.Time) ([]*entity.RecurringTemplate, error) {
	var due []*entity.RecurringTemplate
	for _, template := range r.templates {
		if !template.IsActive || template.Type != transactionType {
			continue
		}
		if template.NextExecutionDate.Before(monthStart) || template.NextExecutionDate.After(monthEnd) {
			continue
		}
		if template.LastExecutionDate != nil &&
			!template.LastExecutionDate.Before(monthStart) &&
			!template.LastExecutionDate.After(monthEnd) {
			continue
		}
		copied := *template
		due = append(due, &copied)
	}
	return due, nil
}

func (r *fakeTemplateRepo) Update(_ context.Context, template *entity.RecurringTemplate) error {
	if _, ok := r.templates[template.ID]; !ok {
		return domainerror.ErrTemplateNotFound
	}
	copied := *template
	r.templates[template.ID] = &copied
	return nil
}

func (r *fakeTemplateRepo) MaterializeExecution(_ context.Context, advance adapter.ScheduleAdvance, transaction *entity.Transaction) error {
	template, ok := r.templates[advance.TemplateID]
	if !ok || !template.IsActive || !template.NextExecutionDate.Equal(advance.ExpectedNext) {
		return domainerror.ErrScheduleConflict
	}

	template.NextExecutionDate = advance.NewNext
	lastExecution := advance.LastExecution
	template.LastExecutionDate = &lastExecution

	r.materialized = append(r.materialized, transaction)
	return nil
}

func (r *fakeTemplateRepo) ClearLastExecution(_ context.Context, id uuid.UUID) error {
	template, ok := r.templates[id]
	if !ok {
		return domainerror.ErrTemplateNotFound
	}
	template.LastExecutionDate = nil
	return nil
}

func (r *fakeTemplateRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.templates[id]; !ok {
		return domainerror.ErrTemplateNotFound
	}
	delete(r.templates, id)
	return nil
}

// fakeClientRepo is an in-memory adapter.ClientRepository holding a fixed
// set of clients.
type fakeClientRepo struct {
	clients map[uuid.UUID]*entity.Client
}

func newFakeClientRepo(clients ...*entity.Client) *fakeClientRepo {
	repo := &fakeClientRepo{clients: make(map[uuid.UUID]*entity.Client)}
	for _, c := range clients {
		copied := *c
		repo.clients[c.ID] = &copied
	}
	return repo
}

func (r *fakeClientRepo) Create(_ context.Context, client *entity.Client) error {
	copied := *client
	r.clients[client.ID] = &copied
	return nil
}

func (r *fakeClientRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Client, error) {
	client, ok := r.clients[id]
	if !ok {
		return nil, domainerror.ErrClientNotFound
	}
	copied := *client
	return &copied, nil
}

func (r *fakeClientRepo) FindAll(_ context.Context) ([]*entity.Client, error) {
	clients := make([]*entity.Client, 0, len(r.clients))
	for _, client := range r.clients {
		copied := *client
		clients = append(clients, &copied)
	}
	return clients, nil
}

func (r *fakeClientRepo) Update(_ context.Context, client *entity.Client) error {
	if _, ok := r.clients[client.ID]; !ok {
		return domainerror.ErrClientNotFound
	}
	copied := *client
	r.clients[client.ID] = &copied
	return nil
}

func (r *fakeClientRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.clients[id]; !ok {
		return domainerror.ErrClientNotFound
	}
	delete(r.clients, id)
	return nil
}
