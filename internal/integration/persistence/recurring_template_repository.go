package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cohetebrands/backoffice/internal/application/adapter"
	"github.com/cohetebrands/backoffice/internal/domain/entity"
	domainerror "github.com/cohetebrands/backoffice/internal/domain/error"
	"github.com/cohetebrands/backoffice/internal/integration/persistence/model"
)

// recurringTemplateRepository implements adapter.RecurringTemplateRepository.
type recurringTemplateRepository struct {
	db *gorm.DB
}

// NewRecurringTemplateRepository creates a new recurring template repository instance.
func NewRecurringTemplateRepository(db *gorm.DB) adapter.RecurringTemplateRepository {
	return &recurringTemplateRepository{
		db: db,
	}
}

// Create creates a new recurring template in the database.
func (r *recurringTemplateRepository) Create(ctx context.Context, template *entity.RecurringTemplate) error {
	templateModel := model.RecurringTemplateFromEntity(template)
	result := r.db.WithContext(ctx).Create(templateModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// CreateWithTransaction creates a template and its companion ledger entry in
// a single database transaction.
func (r *recurringTemplateRepository) CreateWithTransaction(
	ctx context.Context,
	template *entity.RecurringTemplate,
	transaction *entity.Transaction,
) error {
	templateModel := model.RecurringTemplateFromEntity(template)
	transactionModel := model.TransactionFromEntity(transaction)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(templateModel).Error; err != nil {
			return err
		}
		return tx.Create(transactionModel).Error
	})
}

// FindByID retrieves a template by its ID, active or not.
func (r *recurringTemplateRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RecurringTemplate, error) {
	var templateModel model.RecurringTemplateModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&templateModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTemplateNotFound
		}
		return nil, result.Error
	}
	return templateModel.ToEntity(), nil
}

// FindAll retrieves all templates, newest first.
func (r *recurringTemplateRepository) FindAll(ctx context.Context) ([]*entity.RecurringTemplate, error) {
	var templateModels []model.RecurringTemplateModel
	result := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&templateModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toTemplateEntities(templateModels), nil
}

// FindDue retrieves active templates due at or before now, oldest due first.
func (r *recurringTemplateRepository) FindDue(ctx context.Context, now time.Time) ([]*entity.RecurringTemplate, error) {
	var templateModels []model.RecurringTemplateModel
	result := r.db.WithContext(ctx).
		Where("is_active = ? AND next_execution_date <= ?", true, now).
		Order("next_execution_date ASC").
		Find(&templateModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toTemplateEntities(templateModels), nil
}

// FindDueInMonth retrieves active templates of the given type whose next
// execution falls inside the month and whose last execution does not.
func (r *recurringTemplateRepository) FindDueInMonth(
	ctx context.Context,
	transactionType entity.TransactionType,
	monthStart, monthEnd time.Time,
) ([]*entity.RecurringTemplate, error) {
	var templateModels []model.RecurringTemplateModel
	result := r.db.WithContext(ctx).
		Where("is_active = ? AND type = ?", true, string(transactionType)).
		Where("next_execution_date >= ? AND next_execution_date <= ?", monthStart, monthEnd).
		Where("last_execution_date IS NULL OR last_execution_date < ? OR last_execution_date > ?", monthStart, monthEnd).
		Order("next_execution_date ASC").
		Find(&templateModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toTemplateEntities(templateModels), nil
}

// Update updates an existing template in the database.
func (r *recurringTemplateRepository) Update(ctx context.Context, template *entity.RecurringTemplate) error {
	templateModel := model.RecurringTemplateFromEntity(template)
	result := r.db.WithContext(ctx).
		Model(&model.RecurringTemplateModel{}).
		Where("id = ?", template.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(templateModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTemplateNotFound
	}
	return nil
}

// MaterializeExecution advances the template schedule and inserts the
// spawned transaction atomically. The schedule update is guarded by the
// next_execution_date the caller loaded; if a concurrent execution already
// advanced it, no rows match, nothing is written, and ErrScheduleConflict
// is returned.
func (r *recurringTemplateRepository) MaterializeExecution(
	ctx context.Context,
	advance adapter.ScheduleAdvance,
	transaction *entity.Transaction,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.RecurringTemplateModel{}).
			Where("id = ? AND is_active = ? AND next_execution_date = ?",
				advance.TemplateID, true, advance.ExpectedNext).
			Updates(map[string]interface{}{
				"next_execution_date": advance.NewNext,
				"last_execution_date": advance.LastExecution,
				"updated_at":          transaction.CreatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrScheduleConflict
		}

		transactionModel := model.TransactionFromEntity(transaction)
		if err := tx.Create(transactionModel).Error; err != nil {
			return err
		}
		return nil
	})
}

// ClearLastExecution resets last_execution_date to null.
func (r *recurringTemplateRepository) ClearLastExecution(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&model.RecurringTemplateModel{}).
		Where("id = ?", id).
		Update("last_execution_date", nil)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTemplateNotFound
	}
	return nil
}

// Delete hard-deletes a template, first nulling recurring_template_id on the
// transactions it spawned so the ledger keeps its audit trail.
func (r *recurringTemplateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.TransactionModel{}).
			Where("recurring_template_id = ?", id).
			Update("recurring_template_id", nil).Error; err != nil {
			return err
		}

		result := tx.Delete(&model.RecurringTemplateModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrTemplateNotFound
		}
		return nil
	})
}

func toTemplateEntities(templateModels []model.RecurringTemplateModel) []*entity.RecurringTemplate {
	templates := make([]*entity.RecurringTemplate, len(templateModels))
	for i, tm := range templateModels {
		templates[i] = tm.ToEntity()
	}
	return templates
}
