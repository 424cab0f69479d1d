package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cohetebrands/backoffice/internal/application/usecase/recurring"
	"github.com/cohetebrands/backoffice/internal/domain/entity"
)

// CreateRecurringTransactionRequest represents the request body for template creation.
type CreateRecurringTransactionRequest struct {
	Name       string                `json:"name" binding:"required,min=1,max=255"`
	Type       string                `json:"type" binding:"required,oneof=income expense"`
	Category   string                `json:"category" binding:"required"`
	Amount     string                `json:"amount" binding:"required"`
	Fiscal     *FiscalDetailsRequest `json:"fiscal,omitempty"`
	Frequency  string                `json:"frequency" binding:"required,oneof=weekly biweekly monthly quarterly yearly"`
	DayOfMonth *int                  `json:"day_of_month,omitempty" binding:"omitempty,gte=1,lte=31"`
	DayOfWeek  *int                  `json:"day_of_week,omitempty" binding:"omitempty,gte=0,lte=6"`
	ClientID   *string               `json:"client_id,omitempty"`
	// NextExecutionDate overrides the derived first due date.
	NextExecutionDate *string `json:"next_execution_date,omitempty"`
	// AlreadyPaid marks the current period as settled on creation.
	AlreadyPaid bool `json:"already_paid,omitempty"`
}

// UpdateRecurringTransactionRequest represents a partial template update.
// Absent fields are left unchanged.
type UpdateRecurringTransactionRequest struct {
	Name              *string               `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Type              *string               `json:"type,omitempty" binding:"omitempty,oneof=income expense"`
	Category          *string               `json:"category,omitempty"`
	Amount            *string               `json:"amount,omitempty"`
	Fiscal            *FiscalDetailsRequest `json:"fiscal,omitempty"`
	Frequency         *string               `json:"frequency,omitempty" binding:"omitempty,oneof=weekly biweekly monthly quarterly yearly"`
	DayOfMonth        *int                  `json:"day_of_month,omitempty" binding:"omitempty,gte=1,lte=31"`
	DayOfWeek         *int                  `json:"day_of_week,omitempty" binding:"omitempty,gte=0,lte=6"`
	ClientID          *string               `json:"client_id,omitempty"`
	ClearClient       bool                  `json:"clear_client,omitempty"`
	IsActive          *bool                 `json:"is_active,omitempty"`
	NextExecutionDate *string               `json:"next_execution_date,omitempty"`
}

// MarkPaidRequest represents the request body for settling an obligation.
type MarkPaidRequest struct {
	PaidDate *string `json:"paid_date,omitempty"`
}

// RecurringTransactionResponse represents a template in API responses.
type RecurringTransactionResponse struct {
	ID                string                 `json:"id"`
	Name              string                 `json:"name"`
	Type              string                 `json:"type"`
	Category          string                 `json:"category"`
	Amount            string                 `json:"amount"`
	Fiscal            *FiscalDetailsResponse `json:"fiscal,omitempty"`
	Frequency         string                 `json:"frequency"`
	DayOfMonth        *int                   `json:"day_of_month,omitempty"`
	DayOfWeek         *int                   `json:"day_of_week,omitempty"`
	ClientID          *string                `json:"client_id,omitempty"`
	IsActive          bool                   `json:"is_active"`
	NextExecutionDate string                 `json:"next_execution_date"`
	LastExecutionDate *string                `json:"last_execution_date,omitempty"`
	CreatedAt         time.Time              `json:"created_at"`
	UpdatedAt         time.Time              `json:"updated_at"`
}

// RecurringTransactionListResponse wraps a collection of templates.
type RecurringTransactionListResponse struct {
	RecurringTransactions []RecurringTransactionResponse `json:"recurring_transactions"`
	Count                 int                            `json:"count"`
}

// CreateRecurringTransactionResponse is returned on template creation. The
// companion transaction is present only when the request was already_paid.
type CreateRecurringTransactionResponse struct {
	RecurringTransaction RecurringTransactionResponse `json:"recurring_transaction"`
	Transaction          *TransactionResponse         `json:"transaction,omitempty"`
}

// ExecutionFailureResponse reports one template that failed during a batch run.
type ExecutionFailureResponse struct {
	TemplateID string `json:"template_id"`
	Reason     string `json:"reason"`
}

// ExecutePendingResponse reports the outcome of a batch execution run.
type ExecutePendingResponse struct {
	Count        int                        `json:"count"`
	Transactions []TransactionResponse      `json:"transactions"`
	Failures     []ExecutionFailureResponse `json:"failures"`
}

// ToCreateTemplateInput converts the request to a use case input.
func (r *CreateRecurringTransactionRequest) ToCreateTemplateInput() (recurring.CreateTemplateInput, error) {
	amount, err := ParseMoney(r.Amount)
	if err != nil {
		return recurring.CreateTemplateInput{}, fmt.Errorf("amount %s", err)
	}

	fiscal, err := parseFiscal(r.Fiscal)
	if err != nil {
		return recurring.CreateTemplateInput{}, err
	}

	clientID, err := ParseOptionalUUID(r.ClientID, "client_id")
	if err != nil {
		return recurring.CreateTemplateInput{}, err
	}

	nextExecution, err := ParseOptionalDate(r.NextExecutionDate)
	if err != nil {
		return recurring.CreateTemplateInput{}, err
	}

	return recurring.CreateTemplateInput{
		Name:              r.Name,
		Type:              entity.TransactionType(r.Type),
		Category:          entity.Category(r.Category),
		Amount:            amount,
		Fiscal:            fiscal,
		Frequency:         entity.Frequency(r.Frequency),
		DayOfMonth:        r.DayOfMonth,
		DayOfWeek:         r.DayOfWeek,
		ClientID:          clientID,
		NextExecutionDate: nextExecution,
		AlreadyPaid:       r.AlreadyPaid,
	}, nil
}

// ToUpdateTemplateInput converts the request to a use case input.
func (r *UpdateRecurringTransactionRequest) ToUpdateTemplateInput(templateID uuid.UUID) (recurring.UpdateTemplateInput, error) {
	input := recurring.UpdateTemplateInput{
		TemplateID:  templateID,
		Name:        r.Name,
		DayOfMonth:  r.DayOfMonth,
		DayOfWeek:   r.DayOfWeek,
		ClearClient: r.ClearClient,
		IsActive:    r.IsActive,
	}

	if r.Type != nil {
		transactionType := entity.TransactionType(*r.Type)
		input.Type = &transactionType
	}
	if r.Category != nil {
		category := entity.Category(*r.Category)
		input.Category = &category
	}
	if r.Amount != nil {
		amount, err := ParseMoney(*r.Amount)
		if err != nil {
			return recurring.UpdateTemplateInput{}, fmt.Errorf("amount %s", err)
		}
		input.Amount = &amount
	}
	if r.Fiscal != nil {
		fiscal, err := parseFiscal(r.Fiscal)
		if err != nil {
			return recurring.UpdateTemplateInput{}, err
		}
		input.Fiscal = &fiscal
	}
	if r.Frequency != nil {
		frequency := entity.Frequency(*r.Frequency)
		input.Frequency = &frequency
	}

	clientID, err := ParseOptionalUUID(r.ClientID, "client_id")
	if err != nil {
		return recurring.UpdateTemplateInput{}, err
	}
	input.ClientID = clientID

	nextExecution, err := ParseOptionalDate(r.NextExecutionDate)
	if err != nil {
		return recurring.UpdateTemplateInput{}, err
	}
	input.NextExecutionDate = nextExecution

	return input, nil
}

// ToMarkPaidInput converts the request to a use case input.
func (r *MarkPaidRequest) ToMarkPaidInput(templateID uuid.UUID) (recurring.MarkPaidInput, error) {
	paidDate, err := ParseOptionalDate(r.PaidDate)
	if err != nil {
		return recurring.MarkPaidInput{}, err
	}
	return recurring.MarkPaidInput{
		TemplateID: templateID,
		PaidDate:   paidDate,
	}, nil
}

// ToRecurringTransactionResponse converts a template entity to its API representation.
func ToRecurringTransactionResponse(t *entity.RecurringTemplate) RecurringTransactionResponse {
	response := RecurringTransactionResponse{
		ID:                t.ID.String(),
		Name:              t.Name,
		Type:              string(t.Type),
		Category:          string(t.Category),
		Amount:            t.Amount.StringFixed(2),
		Fiscal:            toFiscalResponse(t.Fiscal),
		Frequency:         string(t.Frequency),
		DayOfMonth:        t.DayOfMonth,
		DayOfWeek:         t.DayOfWeek,
		IsActive:          t.IsActive,
		NextExecutionDate: t.NextExecutionDate.Format(DateLayout),
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}

	if t.ClientID != nil {
		clientID := t.ClientID.String()
		response.ClientID = &clientID
	}
	if t.LastExecutionDate != nil {
		lastExecution := t.LastExecutionDate.Format(DateLayout)
		response.LastExecutionDate = &lastExecution
	}

	return response
}

// ToRecurringTransactionListResponse converts a collection of templates.
func ToRecurringTransactionListResponse(templates []*entity.RecurringTemplate) RecurringTransactionListResponse {
	responses := make([]RecurringTransactionResponse, 0, len(templates))
	for _, t := range templates {
		responses = append(responses, ToRecurringTransactionResponse(t))
	}
	return RecurringTransactionListResponse{
		RecurringTransactions: responses,
		Count:                 len(responses),
	}
}

// ToExecutePendingResponse converts a batch run outcome.
func ToExecutePendingResponse(output *recurring.ExecutePendingOutput) ExecutePendingResponse {
	transactions := make([]TransactionResponse, 0, len(output.Transactions))
	for _, t := range output.Transactions {
		transactions = append(transactions, ToTransactionResponse(t))
	}

	failures := make([]ExecutionFailureResponse, 0, len(output.Failures))
	for _, f := range output.Failures {
		failures = append(failures, ExecutionFailureResponse{
			TemplateID: f.TemplateID.String(),
			Reason:     f.Reason,
		})
	}

	return ExecutePendingResponse{
		Count:        len(transactions),
		Transactions: transactions,
		Failures:     failures,
	}
}
