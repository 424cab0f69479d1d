package dto

import (
	"github.com/cohetebrands/backoffice/internal/domain/entity"
)

// SummaryQuery represents the query parameters for the financial summary.
// Both dates are optional; the default window is the last six months.
type SummaryQuery struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

// ObligationsQuery selects the month for the obligations report. Both
// fields default to the current calendar month.
type ObligationsQuery struct {
	Year  int `form:"year" binding:"omitempty,gte=2000,lte=2200"`
	Month int `form:"month" binding:"omitempty,gte=1,lte=12"`
}

// MonthlyPointResponse is one bucket of the trend series.
type MonthlyPointResponse struct {
	Date     string `json:"date"`
	Label    string `json:"label"`
	Income   string `json:"income"`
	Expenses string `json:"expenses"`
}

// FinancialSummaryResponse represents the aggregated ledger view.
type FinancialSummaryResponse struct {
	StartDate     string                 `json:"start_date"`
	EndDate       string                 `json:"end_date"`
	TotalIncome   string                 `json:"total_income"`
	TotalExpenses string                 `json:"total_expenses"`
	NetProfit     string                 `json:"net_profit"`
	CashFlow      string                 `json:"cash_flow"`
	Monthly       []MonthlyPointResponse `json:"monthly"`
}

// ObligationListResponse wraps the outstanding obligations for a month.
type ObligationListResponse struct {
	Obligations []RecurringTransactionResponse `json:"obligations"`
	Count       int                            `json:"count"`
}

// ToFinancialSummaryResponse converts the aggregate to its API representation.
func ToFinancialSummaryResponse(summary *entity.FinancialSummary) FinancialSummaryResponse {
	monthly := make([]MonthlyPointResponse, 0, len(summary.Monthly))
	for _, point := range summary.Monthly {
		monthly = append(monthly, MonthlyPointResponse{
			Date:     point.Date.Format(DateLayout),
			Label:    point.Label,
			Income:   point.Income.StringFixed(2),
			Expenses: point.Expenses.StringFixed(2),
		})
	}

	return FinancialSummaryResponse{
		StartDate:     summary.StartDate.Format(DateLayout),
		EndDate:       summary.EndDate.Format(DateLayout),
		TotalIncome:   summary.TotalIncome.StringFixed(2),
		TotalExpenses: summary.TotalExpenses.StringFixed(2),
		NetProfit:     summary.NetProfit.StringFixed(2),
		CashFlow:      summary.CashFlow.StringFixed(2),
		Monthly:       monthly,
	}
}

// ToObligationListResponse converts a collection of outstanding templates.
func ToObligationListResponse(templates []*entity.RecurringTemplate) ObligationListResponse {
	obligations := make([]RecurringTransactionResponse, 0, len(templates))
	for _, t := range templates {
		obligations = append(obligations, ToRecurringTransactionResponse(t))
	}
	return ObligationListResponse{
		Obligations: obligations,
		Count:       len(obligations),
	}
}
