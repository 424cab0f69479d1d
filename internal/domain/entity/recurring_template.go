package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Frequency represents how often a recurring template executes.
type Frequency string

const (
	FrequencyWeekly    Frequency = "weekly"
	FrequencyBiweekly  Frequency = "biweekly"
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyYearly    Frequency = "yearly"
)

// IsValidFrequency reports whether f is a known frequency.
func IsValidFrequency(f Frequency) bool {
	switch f {
	case FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly, FrequencyQuarterly, FrequencyYearly:
		return true
	}
	return false
}

// RecurringTemplate is the rule that materializes ledger transactions on a
// schedule. NextExecutionDate always drives the due check; DayOfMonth is
// meaningful only for monthly templates and DayOfWeek only for weekly ones.
type RecurringTemplate struct {
	ID       uuid.UUID
	Name     string
	Type     TransactionType
	Category Category
	Amount   decimal.Decimal
	Fiscal   FiscalDetails

	Frequency  Frequency
	DayOfMonth *int // 1-31, monthly templates
	DayOfWeek  *int // 0 (Sunday) - 6, weekly templates

	ClientID *uuid.UUID

	IsActive          bool
	NextExecutionDate time.Time
	// LastExecutionDate in the current month marks the obligation as settled
	// for that month. Nil means never executed (or unpaid via revert).
	LastExecutionDate *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ExecutedInMonth reports whether the template's last execution falls inside
// the calendar month containing ref.
func (t *RecurringTemplate) ExecutedInMonth(ref time.Time) bool {
	if t.LastExecutionDate == nil {
		return false
	}
	last := *t.LastExecutionDate
	return last.Year() == ref.Year() && last.Month() == ref.Month()
}
