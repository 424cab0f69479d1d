package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyPoint is one bucket of the financial trend series.
type MonthlyPoint struct {
	Date     time.Time // First day of the month.
	Label    string    // Abbreviated month name, e.g. "Ene".
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// FinancialSummary aggregates the ledger over a date window. It is derived,
// never persisted. CashFlow equals NetProfit: the ledger has no accrual
// model to distinguish them.
type FinancialSummary struct {
	StartDate     time.Time
	EndDate       time.Time
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	NetProfit     decimal.Decimal
	CashFlow      decimal.Decimal
	Monthly       []MonthlyPoint
}
