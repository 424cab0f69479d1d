package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cohetebrands/backoffice/internal/application/adapter"
	"github.com/cohetebrands/backoffice/internal/application/usecase/transaction"
	"github.com/cohetebrands/backoffice/internal/domain/entity"
	domainerror "github.com/cohetebrands/backoffice/internal/domain/error"
	"github.com/cohetebrands/backoffice/internal/integration/entrypoint/dto"
)

// TransactionController handles ledger entry endpoints.
type TransactionController struct {
	listUseCase   *transaction.ListTransactionsUseCase
	createUseCase *transaction.CreateTransactionUseCase
	updateUseCase *transaction.UpdateTransactionUseCase
	deleteUseCase *transaction.DeleteTransactionUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	listUseCase *transaction.ListTransactionsUseCase,
	createUseCase *transaction.CreateTransactionUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
) *TransactionController {
	return &TransactionController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /transactions requests.
func (c *TransactionController) List(ctx *gin.Context) {
	filter := adapter.TransactionFilter{}

	if startDate := ctx.Query("start_date"); startDate != "" {
		date, err := dto.ParseDate(startDate)
		if err != nil {
			respondBadRequest(ctx, err, string(domainerror.ErrCodeInvalidTransactionDate))
			return
		}
		filter.StartDate = &date
	}
	if endDate := ctx.Query("end_date"); endDate != "" {
		date, err := dto.ParseDate(endDate)
		if err != nil {
			respondBadRequest(ctx, err, string(domainerror.ErrCodeInvalidTransactionDate))
			return
		}
		filter.EndDate = &date
	}
	if typeParam := ctx.Query("type"); typeParam != "" {
		transactionType := entity.TransactionType(typeParam)
		filter.Type = &transactionType
	}
	if category := ctx.Query("category"); category != "" {
		value := entity.Category(category)
		filter.Category = &value
	}
	if clientID := ctx.Query("client_id"); clientID != "" {
		id, err := uuid.Parse(clientID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "client_id must be a valid UUID"})
			return
		}
		filter.ClientID = &id
	}
	if isPaid := ctx.Query("is_paid"); isPaid != "" {
		value := isPaid == "true"
		filter.IsPaid = &value
	}

	transactions, err := c.listUseCase.Execute(ctx.Request.Context(), filter)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(transactions))
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	var request dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(err, string(domainerror.ErrCodeMissingTransactionFields)))
		return
	}

	input, err := request.ToCreateTransactionInput()
	if err != nil {
		respondBadRequest(ctx, err, string(domainerror.ErrCodeMissingTransactionFields))
		return
	}

	created, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(created))
}

// Update handles PUT /transactions/:id requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	transactionID, ok := parsePathID(ctx)
	if !ok {
		return
	}

	var request dto.UpdateTransactionRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(err, string(domainerror.ErrCodeMissingTransactionFields)))
		return
	}

	input, err := request.ToUpdateTransactionInput(transactionID)
	if err != nil {
		respondBadRequest(ctx, err, string(domainerror.ErrCodeMissingTransactionFields))
		return
	}

	updated, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(updated))
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	transactionID, ok := parsePathID(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), transactionID); err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":    "Transaction deleted",
		"deleted_at": time.Now().UTC().Format(time.RFC3339),
	})
}
