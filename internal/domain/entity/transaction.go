// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of a ledger entry (income or expense).
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Category identifies a ledger category. Each transaction type has its own
// closed set of valid categories.
type Category string

// Income categories.
const (
	CategoryAnticipo      Category = "anticipo"
	CategoryPagoProyecto  Category = "pago_proyecto"
	CategoryIguala        Category = "iguala"
	CategoryConsultoria   Category = "consultoria"
	CategoryOtrosIngresos Category = "otros_ingresos"
)

// Expense categories.
const (
	CategoryNomina      Category = "nomina"
	CategorySoftware    Category = "software"
	CategoryPublicidad  Category = "publicidad"
	CategoryOficina     Category = "oficina"
	CategoryImpuestos   Category = "impuestos"
	CategoryServicios   Category = "servicios"
	CategoryOtrosGastos Category = "otros_gastos"
)

// IncomeCategories is the closed set of categories valid for income entries.
var IncomeCategories = []Category{
	CategoryAnticipo,
	CategoryPagoProyecto,
	CategoryIguala,
	CategoryConsultoria,
	CategoryOtrosIngresos,
}

// ExpenseCategories is the closed set of categories valid for expense entries.
var ExpenseCategories = []Category{
	CategoryNomina,
	CategorySoftware,
	CategoryPublicidad,
	CategoryOficina,
	CategoryImpuestos,
	CategoryServicios,
	CategoryOtrosGastos,
}

// IsValidTransactionType reports whether t is a known transaction type.
func IsValidTransactionType(t TransactionType) bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// IsValidCategory reports whether category belongs to the closed set for the
// given transaction type.
func IsValidCategory(transactionType TransactionType, category Category) bool {
	var set []Category
	switch transactionType {
	case TransactionTypeIncome:
		set = IncomeCategories
	case TransactionTypeExpense:
		set = ExpenseCategories
	default:
		return false
	}
	for _, c := range set {
		if c == category {
			return true
		}
	}
	return false
}

// Transaction source values. Source records how a ledger entry came to exist.
const (
	SourceManual            = "manual"
	SourceRecurringTemplate = "recurring_template"
)

// FiscalDetails holds optional invoicing fields attached to ledger entries
// and recurring templates.
type FiscalDetails struct {
	Subtotal      *decimal.Decimal
	Tax           *decimal.Decimal
	Provider      string
	ProviderRFC   string
	InvoiceNumber string
}

// Transaction represents a single entry in the agency ledger.
type Transaction struct {
	ID       uuid.UUID
	Type     TransactionType
	Category Category
	Amount   decimal.Decimal // Always positive; Type carries the sign.
	Date     time.Time
	Fiscal   FiscalDetails

	IsPaid   bool
	PaidDate *time.Time

	ClientID *uuid.UUID

	// Provenance. RecurringTemplateID is nulled (not cascaded) when the
	// originating template is deleted, so the audit trail survives.
	RecurringTemplateID *uuid.UUID
	IsRecurringInstance bool
	Source              string
	SourceID            *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTransaction creates a new Transaction entity with a fresh ID.
func NewTransaction(
	transactionType TransactionType,
	category Category,
	amount decimal.Decimal,
	date time.Time,
	now time.Time,
) *Transaction {
	return &Transaction{
		ID:        uuid.New(),
		Type:      transactionType,
		Category:  category,
		Amount:    amount,
		Date:      date,
		Source:    SourceManual,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
