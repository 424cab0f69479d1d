// Package finance contains financial aggregation use cases.
package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cohetebrands/backoffice/internal/application/adapter"
	"github.com/cohetebrands/backoffice/internal/domain/entity"
	domainerror "github.com/cohetebrands/backoffice/internal/domain/error"
)

// defaultSummaryMonths is the trailing window used when no range is given.
const defaultSummaryMonths = 6

// GetSummaryInput represents the optional date window for the summary.
type GetSummaryInput struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// GetSummaryUseCase derives the dashboard financial summary from the ledger.
type GetSummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
	clock           adapter.Clock
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(
	transactionRepo adapter.TransactionRepository,
	clock adapter.Clock,
) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		transactionRepo: transactionRepo,
		clock:           clock,
	}
}

// Execute computes totals and the monthly trend series for the window.
// Months without transactions are zero-filled so the dashboard chart keeps
// continuity; buckets come back oldest first.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*entity.FinancialSummary, error) {
	now := uc.clock.Now()

	end := startOfDay(now)
	if input.EndDate != nil {
		end = *input.EndDate
	}
	start := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, end.Location()).
		AddDate(0, -(defaultSummaryMonths - 1), 0)
	if input.StartDate != nil {
		start = *input.StartDate
	}

	if end.Before(start) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"endDate must not be before startDate",
			domainerror.ErrInvalidTransactionDate,
		)
	}

	transactions, err := uc.transactionRepo.FindByDateRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for summary: %w", err)
	}

	summary := &entity.FinancialSummary{
		StartDate:     start,
		EndDate:       end,
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
		Monthly:       monthSeries(start, end),
	}

	buckets := make(map[string]int, len(summary.Monthly))
	for i, point := range summary.Monthly {
		buckets[monthKey(point.Date)] = i
	}

	for _, txn := range transactions {
		i, ok := buckets[monthKey(txn.Date)]
		if !ok {
			continue
		}
		switch txn.Type {
		case entity.TransactionTypeIncome:
			summary.TotalIncome = summary.TotalIncome.Add(txn.Amount)
			summary.Monthly[i].Income = summary.Monthly[i].Income.Add(txn.Amount)
		case entity.TransactionTypeExpense:
			summary.TotalExpenses = summary.TotalExpenses.Add(txn.Amount)
			summary.Monthly[i].Expenses = summary.Monthly[i].Expenses.Add(txn.Amount)
		}
	}

	summary.NetProfit = summary.TotalIncome.Sub(summary.TotalExpenses)
	summary.CashFlow = summary.NetProfit

	return summary, nil
}

// monthSeries generates one zero-valued bucket per calendar month between
// start and end, oldest first.
func monthSeries(start, end time.Time) []entity.MonthlyPoint {
	var series []entity.MonthlyPoint
	current := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, start.Location())
	for !current.After(end) {
		series = append(series, entity.MonthlyPoint{
			Date:     current,
			Label:    monthAbbreviations[current.Month()],
			Income:   decimal.Zero,
			Expenses: decimal.Zero,
		})
		current = current.AddDate(0, 1, 0)
	}
	return series
}

func monthKey(date time.Time) string {
	return date.Format("2006-01")
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// monthAbbreviations maps months to Spanish abbreviations for chart labels.
var monthAbbreviations = map[time.Month]string{
	time.January:   "Ene",
	time.February:  "Feb",
	time.March:     "Mar",
	time.April:     "Abr",
	time.May:       "May",
	time.June:      "Jun",
	time.July:      "Jul",
	time.August:    "Ago",
	time.September: "Sep",
	time.October:   "Oct",
	time.November:  "Nov",
	time.December:  "Dic",
}
