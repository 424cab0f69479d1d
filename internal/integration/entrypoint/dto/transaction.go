package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cohetebrands/backoffice/internal/application/usecase/transaction"
	"github.com/cohetebrands/backoffice/internal/domain/entity"
)

// DateLayout is the wire format for calendar dates. Dates carry no time of
// day; the scheduler and the aggregator both work on whole days.
const DateLayout = "2006-01-02"

// FiscalDetailsRequest carries the optional invoicing block on create and
// update requests. Money fields travel as strings.
type FiscalDetailsRequest struct {
	Subtotal      *string `json:"subtotal,omitempty"`
	Tax           *string `json:"tax,omitempty"`
	Provider      string  `json:"provider,omitempty" binding:"omitempty,max=255"`
	ProviderRFC   string  `json:"provider_rfc,omitempty" binding:"omitempty,max=13"`
	InvoiceNumber string  `json:"invoice_number,omitempty" binding:"omitempty,max=100"`
}

// CreateTransactionRequest represents the request body for ledger entry creation.
type CreateTransactionRequest struct {
	Type     string                `json:"type" binding:"required,oneof=income expense"`
	Category string                `json:"category" binding:"required"`
	Amount   string                `json:"amount" binding:"required"`
	Date     string                `json:"date" binding:"required"`
	Fiscal   *FiscalDetailsRequest `json:"fiscal,omitempty"`
	IsPaid   bool                  `json:"is_paid,omitempty"`
	PaidDate *string               `json:"paid_date,omitempty"`
	ClientID *string               `json:"client_id,omitempty"`
}

// UpdateTransactionRequest represents a partial ledger entry update. Absent
// fields are left unchanged.
type UpdateTransactionRequest struct {
	Type        *string               `json:"type,omitempty" binding:"omitempty,oneof=income expense"`
	Category    *string               `json:"category,omitempty"`
	Amount      *string               `json:"amount,omitempty"`
	Date        *string               `json:"date,omitempty"`
	Fiscal      *FiscalDetailsRequest `json:"fiscal,omitempty"`
	IsPaid      *bool                 `json:"is_paid,omitempty"`
	PaidDate    *string               `json:"paid_date,omitempty"`
	ClientID    *string               `json:"client_id,omitempty"`
	ClearClient bool                  `json:"clear_client,omitempty"`
}

// ListTransactionsQuery represents the query parameters for listing ledger entries.
type ListTransactionsQuery struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Type      string `form:"type" binding:"omitempty,oneof=income expense"`
	Category  string `form:"category"`
	ClientID  string `form:"client_id"`
	IsPaid    *bool  `form:"is_paid"`
}

// FiscalDetailsResponse mirrors FiscalDetailsRequest in API responses.
type FiscalDetailsResponse struct {
	Subtotal      *string `json:"subtotal,omitempty"`
	Tax           *string `json:"tax,omitempty"`
	Provider      string  `json:"provider,omitempty"`
	ProviderRFC   string  `json:"provider_rfc,omitempty"`
	InvoiceNumber string  `json:"invoice_number,omitempty"`
}

// TransactionResponse represents a single ledger entry in API responses.
type TransactionResponse struct {
	ID                  string                 `json:"id"`
	Type                string                 `json:"type"`
	Category            string                 `json:"category"`
	Amount              string                 `json:"amount"`
	Date                string                 `json:"date"`
	Fiscal              *FiscalDetailsResponse `json:"fiscal,omitempty"`
	IsPaid              bool                   `json:"is_paid"`
	PaidDate            *string                `json:"paid_date,omitempty"`
	ClientID            *string                `json:"client_id,omitempty"`
	RecurringTemplateID *string                `json:"recurring_template_id,omitempty"`
	IsRecurringInstance bool                   `json:"is_recurring_instance"`
	Source              string                 `json:"source"`
	SourceID            *string                `json:"source_id,omitempty"`
	CreatedAt           time.Time              `json:"created_at"`
	UpdatedAt           time.Time              `json:"updated_at"`
}

// TransactionListResponse wraps a collection of ledger entries.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Count        int                   `json:"count"`
}

// ToCreateTransactionInput converts the request to a use case input.
func (r *CreateTransactionRequest) ToCreateTransactionInput() (transaction.CreateTransactionInput, error) {
	amount, err := ParseMoney(r.Amount)
	if err != nil {
		return transaction.CreateTransactionInput{}, fmt.Errorf("amount %s", err)
	}

	date, err := ParseDate(r.Date)
	if err != nil {
		return transaction.CreateTransactionInput{}, err
	}

	fiscal, err := parseFiscal(r.Fiscal)
	if err != nil {
		return transaction.CreateTransactionInput{}, err
	}

	paidDate, err := ParseOptionalDate(r.PaidDate)
	if err != nil {
		return transaction.CreateTransactionInput{}, err
	}

	clientID, err := ParseOptionalUUID(r.ClientID, "client_id")
	if err != nil {
		return transaction.CreateTransactionInput{}, err
	}

	return transaction.CreateTransactionInput{
		Type:     entity.TransactionType(r.Type),
		Category: entity.Category(r.Category),
		Amount:   amount,
		Date:     date,
		Fiscal:   fiscal,
		IsPaid:   r.IsPaid,
		PaidDate: paidDate,
		ClientID: clientID,
	}, nil
}

// ToUpdateTransactionInput converts the request to a use case input.
func (r *UpdateTransactionRequest) ToUpdateTransactionInput(transactionID uuid.UUID) (transaction.UpdateTransactionInput, error) {
	input := transaction.UpdateTransactionInput{
		TransactionID: transactionID,
		IsPaid:        r.IsPaid,
		ClearClient:   r.ClearClient,
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
			return transaction.UpdateTransactionInput{}, fmt.Errorf("amount %s", err)
		}
		input.Amount = &amount
	}
	if r.Date != nil {
		date, err := ParseDate(*r.Date)
		if err != nil {
			return transaction.UpdateTransactionInput{}, err
		}
		input.Date = &date
	}
	if r.Fiscal != nil {
		fiscal, err := parseFiscal(r.Fiscal)
		if err != nil {
			return transaction.UpdateTransactionInput{}, err
		}
		input.Fiscal = &fiscal
	}

	paidDate, err := ParseOptionalDate(r.PaidDate)
	if err != nil {
		return transaction.UpdateTransactionInput{}, err
	}
	input.PaidDate = paidDate

	clientID, err := ParseOptionalUUID(r.ClientID, "client_id")
	if err != nil {
		return transaction.UpdateTransactionInput{}, err
	}
	input.ClientID = clientID

	return input, nil
}

// ToTransactionResponse converts a ledger entry entity to its API representation.
func ToTransactionResponse(t *entity.Transaction) TransactionResponse {
	response := TransactionResponse{
		ID:                  t.ID.String(),
		Type:                string(t.Type),
		Category:            string(t.Category),
		Amount:              t.Amount.StringFixed(2),
		Date:                t.Date.Format(DateLayout),
		Fiscal:              toFiscalResponse(t.Fiscal),
		IsPaid:              t.IsPaid,
		IsRecurringInstance: t.IsRecurringInstance,
		Source:              t.Source,
		SourceID:            t.SourceID,
		CreatedAt:           t.CreatedAt,
		UpdatedAt:           t.UpdatedAt,
	}

	if t.PaidDate != nil {
		paidDate := t.PaidDate.Format(DateLayout)
		response.PaidDate = &paidDate
	}
	if t.ClientID != nil {
		clientID := t.ClientID.String()
		response.ClientID = &clientID
	}
	if t.RecurringTemplateID != nil {
		templateID := t.RecurringTemplateID.String()
		response.RecurringTemplateID = &templateID
	}

	return response
}

// ToTransactionListResponse converts a collection of ledger entries.
func ToTransactionListResponse(transactions []*entity.Transaction) TransactionListResponse {
	responses := make([]TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		responses = append(responses, ToTransactionResponse(t))
	}
	return TransactionListResponse{
		Transactions: responses,
		Count:        len(responses),
	}
}

// ParseDate parses a wire-format calendar date.
func ParseDate(value string) (time.Time, error) {
	date, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("date must be in YYYY-MM-DD format")
	}
	return date, nil
}

// ParseOptionalDate parses a nullable wire-format calendar date.
func ParseOptionalDate(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	date, err := ParseDate(*value)
	if err != nil {
		return nil, err
	}
	return &date, nil
}

// ParseOptionalUUID parses a nullable UUID string, naming the field in the
// error message.
func ParseOptionalUUID(value *string, field string) (*uuid.UUID, error) {
	if value == nil {
		return nil, nil
	}
	id, err := uuid.Parse(*value)
	if err != nil {
		return nil, fmt.Errorf("%s must be a valid UUID", field)
	}
	return &id, nil
}

func parseFiscal(r *FiscalDetailsRequest) (entity.FiscalDetails, error) {
	if r == nil {
		return entity.FiscalDetails{}, nil
	}

	fiscal := entity.FiscalDetails{
		Provider:      r.Provider,
		ProviderRFC:   r.ProviderRFC,
		InvoiceNumber: r.InvoiceNumber,
	}

	if r.Subtotal != nil {
		subtotal, err := ParseOptionalMoney(*r.Subtotal)
		if err != nil {
			return entity.FiscalDetails{}, fmt.Errorf("fiscal.subtotal %s", err)
		}
		fiscal.Subtotal = &subtotal
	}
	if r.Tax != nil {
		tax, err := ParseOptionalMoney(*r.Tax)
		if err != nil {
			return entity.FiscalDetails{}, fmt.Errorf("fiscal.tax %s", err)
		}
		fiscal.Tax = &tax
	}

	return fiscal, nil
}

func toFiscalResponse(fiscal entity.FiscalDetails) *FiscalDetailsResponse {
	if fiscal.Subtotal == nil && fiscal.Tax == nil &&
		fiscal.Provider == "" && fiscal.ProviderRFC == "" && fiscal.InvoiceNumber == "" {
		return nil
	}

	response := &FiscalDetailsResponse{
		Provider:      fiscal.Provider,
		ProviderRFC:   fiscal.ProviderRFC,
		InvoiceNumber: fiscal.InvoiceNumber,
	}
	if fiscal.Subtotal != nil {
		subtotal := fiscal.Subtotal.StringFixed(2)
		response.Subtotal = &subtotal
	}
	if fiscal.Tax != nil {
		tax := fiscal.Tax.StringFixed(2)
		response.Tax = &tax
	}
	return response
}
