package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cohetebrands/backoffice/internal/application/usecase/recurring"
	domainerror "github.com/cohetebrands/backoffice/internal/domain/error"
	"github.com/cohetebrands/backoffice/internal/integration/entrypoint/dto"
)

// RecurringController handles recurring template endpoints.
type RecurringController struct {
	listUseCase           *recurring.ListTemplatesUseCase
	createUseCase         *recurring.CreateTemplateUseCase
	updateUseCase         *recurring.UpdateTemplateUseCase
	deleteUseCase         *recurring.DeleteTemplateUseCase
	executeUseCase        *recurring.ExecuteTemplateUseCase
	executePendingUseCase *recurring.ExecutePendingUseCase
	markPaidUseCase       *recurring.MarkPaidUseCase
	unpayUseCase          *recurring.UnpayUseCase
}

// NewRecurringController creates a new recurring controller instance.
func NewRecurringController(
	listUseCase *recurring.ListTemplatesUseCase,
	createUseCase *recurring.CreateTemplateUseCase,
	updateUseCase *recurring.UpdateTemplateUseCase,
	deleteUseCase *recurring.DeleteTemplateUseCase,
	executeUseCase *recurring.ExecuteTemplateUseCase,
	executePendingUseCase *recurring.ExecutePendingUseCase,
	markPaidUseCase *recurring.MarkPaidUseCase,
	unpayUseCase *recurring.UnpayUseCase,
) *RecurringController {
	return &RecurringController{
		listUseCase:           listUseCase,
		createUseCase:         createUseCase,
		updateUseCase:         updateUseCase,
		deleteUseCase:         deleteUseCase,
		executeUseCase:        executeUseCase,
		executePendingUseCase: executePendingUseCase,
		markPaidUseCase:       markPaidUseCase,
		unpayUseCase:          unpayUseCase,
	}
}

// List handles GET /recurring-transactions requests.
func (c *RecurringController) List(ctx *gin.Context) {
	templates, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecurringTransactionListResponse(templates))
}

// Create handles POST /recurring-transactions requests.
func (c *RecurringController) Create(ctx *gin.Context) {
	var request dto.CreateRecurringTransactionRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(err, string(domainerror.ErrCodeInvalidFrequency)))
		return
	}

	input, err := request.ToCreateTemplateInput()
	if err != nil {
		respondBadRequest(ctx, err, string(domainerror.ErrCodeMissingTransactionFields))
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	response := dto.CreateRecurringTransactionResponse{
		RecurringTransaction: dto.ToRecurringTransactionResponse(output.Template),
	}
	if output.Transaction != nil {
		transactionResponse := dto.ToTransactionResponse(output.Transaction)
		response.Transaction = &transactionResponse
	}

	ctx.JSON(http.StatusCreated, response)
}

// Update handles PUT /recurring-transactions/:id requests.
func (c *RecurringController) Update(ctx *gin.Context) {
	templateID, ok := parsePathID(ctx)
	if !ok {
		return
	}

	var request dto.UpdateRecurringTransactionRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(err, string(domainerror.ErrCodeInvalidFrequency)))
		return
	}

	input, err := request.ToUpdateTemplateInput(templateID)
	if err != nil {
		respondBadRequest(ctx, err, string(domainerror.ErrCodeMissingTransactionFields))
		return
	}

	updated, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecurringTransactionResponse(updated))
}

// Delete handles DELETE /recurring-transactions/:id requests. Historical
// transactions spawned by the template survive the deletion.
func (c *RecurringController) Delete(ctx *gin.Context) {
	templateID, ok := parsePathID(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), templateID); err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Recurring transaction deleted"})
}

// Execute handles POST /recurring-transactions/:id/execute requests. It
// forces a single execution regardless of the due date.
func (c *RecurringController) Execute(ctx *gin.Context) {
	templateID, ok := parsePathID(ctx)
	if !ok {
		return
	}

	output, err := c.executeUseCase.Execute(ctx.Request.Context(), templateID)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// ExecutePending handles POST /recurring-transactions/execute-pending
// requests. Failures on individual templates do not abort the batch; they
// are reported alongside the materialized transactions.
func (c *RecurringController) ExecutePending(ctx *gin.Context) {
	output, err := c.executePendingUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExecutePendingResponse(output))
}

// Pay handles POST /finance/obligations/:id/pay requests.
func (c *RecurringController) Pay(ctx *gin.Context) {
	templateID, ok := parsePathID(ctx)
	if !ok {
		return
	}

	request := dto.MarkPaidRequest{}
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&request); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(err, string(domainerror.ErrCodeInvalidTransactionDate)))
			return
		}
	}

	input, err := request.ToMarkPaidInput(templateID)
	if err != nil {
		respondBadRequest(ctx, err, string(domainerror.ErrCodeInvalidTransactionDate))
		return
	}

	output, err := c.markPaidUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// Unpay handles POST /finance/obligations/:id/unpay requests. The template
// becomes outstanding again; the ledger entry from the payment is kept.
func (c *RecurringController) Unpay(ctx *gin.Context) {
	templateID, ok := parsePathID(ctx)
	if !ok {
		return
	}

	if err := c.unpayUseCase.Execute(ctx.Request.Context(), templateID); err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Obligation reverted to unpaid"})
}
