package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cohetebrands/backoffice/internal/application/usecase/finance"
	domainerror "github.com/cohetebrands/backoffice/internal/domain/error"
	"github.com/cohetebrands/backoffice/internal/integration/entrypoint/dto"
)

// FinanceController handles financial reporting endpoints.
type FinanceController struct {
	summaryUseCase     *finance.GetSummaryUseCase
	obligationsUseCase *finance.ListObligationsUseCase
}

// NewFinanceController creates a new finance controller instance.
func NewFinanceController(
	summaryUseCase *finance.GetSummaryUseCase,
	obligationsUseCase *finance.ListObligationsUseCase,
) *FinanceController {
	return &FinanceController{
		summaryUseCase:     summaryUseCase,
		obligationsUseCase: obligationsUseCase,
	}
}

// Summary handles GET /finance/summary requests.
func (c *FinanceController) Summary(ctx *gin.Context) {
	input := finance.GetSummaryInput{}

	if startDate := ctx.Query("start_date"); startDate != "" {
		date, err := dto.ParseDate(startDate)
		if err != nil {
			respondBadRequest(ctx, err, string(domainerror.ErrCodeInvalidTransactionDate))
			return
		}
		input.StartDate = &date
	}
	if endDate := ctx.Query("end_date"); endDate != "" {
		date, err := dto.ParseDate(endDate)
		if err != nil {
			respondBadRequest(ctx, err, string(domainerror.ErrCodeInvalidTransactionDate))
			return
		}
		input.EndDate = &date
	}

	summary, err := c.summaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFinancialSummaryResponse(summary))
}

// Payables handles GET /finance/obligations/payables requests.
func (c *FinanceController) Payables(ctx *gin.Context) {
	input, ok := c.obligationsInput(ctx)
	if !ok {
		return
	}

	templates, err := c.obligationsUseCase.Payables(ctx.Request.Context(), input)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToObligationListResponse(templates))
}

// Receivables handles GET /finance/obligations/receivables requests.
func (c *FinanceController) Receivables(ctx *gin.Context) {
	input, ok := c.obligationsInput(ctx)
	if !ok {
		return
	}

	templates, err := c.obligationsUseCase.Receivables(ctx.Request.Context(), input)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToObligationListResponse(templates))
}

func (c *FinanceController) obligationsInput(ctx *gin.Context) (finance.ListObligationsInput, bool) {
	var query dto.ObligationsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(err, string(domainerror.ErrCodeInvalidTransactionDate)))
		return finance.ListObligationsInput{}, false
	}

	return finance.ListObligationsInput{
		Year:  query.Year,
		Month: time.Month(query.Month),
	}, true
}
