package recurring

import (
	"context"
	"fmt"

	"github.com/cohetebrands/backoffice/internal/application/adapter"
	"github.com/cohetebrands/backoffice/internal/domain/entity"
)

// ListTemplatesUseCase retrieves all recurring templates.
type ListTemplatesUseCase struct {
	templateRepo adapter.RecurringTemplateRepository
}

// NewListTemplatesUseCase creates a new ListTemplatesUseCase instance.
func NewListTemplatesUseCase(templateRepo adapter.RecurringTemplateRepository) *ListTemplatesUseCase {
	return &ListTemplatesUseCase{
		templateRepo: templateRepo,
	}
}

// Execute returns all templates, active and inactive.
func (uc *ListTemplatesUseCase) Execute(ctx context.Context) ([]*entity.RecurringTemplate, error) {
	templates, err := uc.templateRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring templates: %w", err)
	}
	return templates, nil
}
