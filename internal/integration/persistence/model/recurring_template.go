package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cohetebrands/backoffice/internal/domain/entity"
)

// RecurringTemplateModel represents the recurring_transactions table.
type RecurringTemplateModel struct {
	ID       uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name     string          `gorm:"type:varchar(255);not null"`
	Type     string          `gorm:"type:varchar(10);not null;index"`
	Category string          `gorm:"type:varchar(40);not null"`
	Amount   decimal.Decimal `gorm:"type:decimal(15,2);not null"`

	Subtotal      *decimal.Decimal `gorm:"type:decimal(15,2)"`
	Tax           *decimal.Decimal `gorm:"type:decimal(15,2)"`
	Provider      string           `gorm:"type:varchar(255)"`
	ProviderRFC   string           `gorm:"type:varchar(13)"`
	InvoiceNumber string           `gorm:"type:varchar(50)"`

	Frequency  string `gorm:"type:varchar(10);not null"`
	DayOfMonth *int   `gorm:"type:integer"`
	DayOfWeek  *int   `gorm:"type:integer"`

	ClientID *uuid.UUID `gorm:"type:uuid;index"`

	IsActive          bool       `gorm:"index"`
	NextExecutionDate time.Time  `gorm:"type:date;not null;index"`
	LastExecutionDate *time.Time `gorm:"type:date"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Client *ClientModel `gorm:"foreignKey:ClientID;references:ID"`
}

// TableName returns the table name for the RecurringTemplateModel.
func (RecurringTemplateModel) TableName() string {
	return "recurring_transactions"
}

// ToEntity converts a RecurringTemplateModel to a domain RecurringTemplate entity.
func (m *RecurringTemplateModel) ToEntity() *entity.RecurringTemplate {
	return &entity.RecurringTemplate{
		ID:       m.ID,
		Name:     m.Name,
		Type:     entity.TransactionType(m.Type),
		Category: entity.Category(m.Category),
		Amount:   m.Amount,
		Fiscal: entity.FiscalDetails{
			Subtotal:      m.Subtotal,
			Tax:           m.Tax,
			Provider:      m.Provider,
			ProviderRFC:   m.ProviderRFC,
			InvoiceNumber: m.InvoiceNumber,
		},
		Frequency:         entity.Frequency(m.Frequency),
		DayOfMonth:        m.DayOfMonth,
		DayOfWeek:         m.DayOfWeek,
		ClientID:          m.ClientID,
		IsActive:          m.IsActive,
		NextExecutionDate: m.NextExecutionDate,
		LastExecutionDate: m.LastExecutionDate,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// RecurringTemplateFromEntity creates a RecurringTemplateModel from a domain entity.
func RecurringTemplateFromEntity(template *entity.RecurringTemplate) *RecurringTemplateModel {
	return &RecurringTemplateModel{
		ID:                template.ID,
		Name:              template.Name,
		Type:              string(template.Type),
		Category:          string(template.Category),
		Amount:            template.Amount,
		Subtotal:          template.Fiscal.Subtotal,
		Tax:               template.Fiscal.Tax,
		Provider:          template.Fiscal.Provider,
		ProviderRFC:       template.Fiscal.ProviderRFC,
		InvoiceNumber:     template.Fiscal.InvoiceNumber,
		Frequency:         string(template.Frequency),
		DayOfMonth:        template.DayOfMonth,
		DayOfWeek:         template.DayOfWeek,
		ClientID:          template.ClientID,
		IsActive:          template.IsActive,
		NextExecutionDate: template.NextExecutionDate,
		LastExecutionDate: template.LastExecutionDate,
		CreatedAt:         template.CreatedAt,
		UpdatedAt:         template.UpdatedAt,
	}
}
