// Package model defines database models for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cohetebrands/backoffice/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID       uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Type     string          `gorm:"type:varchar(10);not null;index"`
	Category string          `gorm:"type:varchar(40);not null;index"`
	Amount   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date     time.Time       `gorm:"type:date;not null;index"`

	Subtotal      *decimal.Decimal `gorm:"type:decimal(15,2)"`
	Tax           *decimal.Decimal `gorm:"type:decimal(15,2)"`
	Provider      string           `gorm:"type:varchar(255)"`
	ProviderRFC   string           `gorm:"type:varchar(13)"`
	InvoiceNumber string           `gorm:"type:varchar(50)"`

	IsPaid   bool       `gorm:"default:false"`
	PaidDate *time.Time `gorm:"type:date"`

	ClientID *uuid.UUID `gorm:"type:uuid;index"`

	RecurringTemplateID *uuid.UUID `gorm:"type:uuid;index"`
	IsRecurringInstance bool       `gorm:"default:false"`
	Source              string     `gorm:"type:varchar(40);not null"`
	SourceID            *string    `gorm:"type:varchar(64)"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Client *ClientModel `gorm:"foreignKey:ClientID;references:ID"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:       m.ID,
		Type:     entity.TransactionType(m.Type),
		Category: entity.Category(m.Category),
		Amount:   m.Amount,
		Date:     m.Date,
		Fiscal: entity.FiscalDetails{
			Subtotal:      m.Subtotal,
			Tax:           m.Tax,
			Provider:      m.Provider,
			ProviderRFC:   m.ProviderRFC,
			InvoiceNumber: m.InvoiceNumber,
		},
		IsPaid:              m.IsPaid,
		PaidDate:            m.PaidDate,
		ClientID:            m.ClientID,
		RecurringTemplateID: m.RecurringTemplateID,
		IsRecurringInstance: m.IsRecurringInstance,
		Source:              m.Source,
		SourceID:            m.SourceID,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:                  transaction.ID,
		Type:                string(transaction.Type),
		Category:            string(transaction.Category),
		Amount:              transaction.Amount,
		Date:                transaction.Date,
		Subtotal:            transaction.Fiscal.Subtotal,
		Tax:                 transaction.Fiscal.Tax,
		Provider:            transaction.Fiscal.Provider,
		ProviderRFC:         transaction.Fiscal.ProviderRFC,
		InvoiceNumber:       transaction.Fiscal.InvoiceNumber,
		IsPaid:              transaction.IsPaid,
		PaidDate:            transaction.PaidDate,
		ClientID:            transaction.ClientID,
		RecurringTemplateID: transaction.RecurringTemplateID,
		IsRecurringInstance: transaction.IsRecurringInstance,
		Source:              transaction.Source,
		SourceID:            transaction.SourceID,
		CreatedAt:           transaction.CreatedAt,
		UpdatedAt:           transaction.UpdatedAt,
	}
}
