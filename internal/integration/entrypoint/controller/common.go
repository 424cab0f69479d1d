// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/cohetebrands/backoffice/internal/domain/error"
	"github.com/cohetebrands/backoffice/internal/integration/entrypoint/dto"
)

// respondDomainError maps a use case error onto the HTTP surface. Coded
// domain errors keep their code in the payload; anything unrecognized is a
// 500 with the detail kept out of the response.
func respondDomainError(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, domainerror.ErrTransactionNotFound),
		errors.Is(err, domainerror.ErrTemplateNotFound),
		errors.Is(err, domainerror.ErrClientNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, domainerror.ErrAlreadyPaid),
		errors.Is(err, domainerror.ErrScheduleConflict),
		errors.Is(err, domainerror.ErrEmailAlreadyExists):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, domainerror.ErrInvalidCredentials),
		errors.Is(err, domainerror.ErrInvalidToken):
		status = http.StatusUnauthorized
		message = err.Error()
	case errors.Is(err, domainerror.ErrInvalidTransactionType),
		errors.Is(err, domainerror.ErrInvalidCategory),
		errors.Is(err, domainerror.ErrInvalidAmount),
		errors.Is(err, domainerror.ErrInvalidTransactionDate),
		errors.Is(err, domainerror.ErrInvalidFrequency),
		errors.Is(err, domainerror.ErrInvalidScheduleDay),
		errors.Is(err, domainerror.ErrClientNameRequired),
		errors.Is(err, domainerror.ErrClientNotFoundForTransaction):
		status = http.StatusBadRequest
		message = err.Error()
	}

	if status == http.StatusInternalServerError {
		slog.Error("request failed", "path", ctx.FullPath(), "error", err)
	}

	ctx.JSON(status, dto.ErrorResponse{
		Error: message,
		Code:  errorCode(err),
	})
}

// errorCode extracts the domain error code, if the error carries one.
func errorCode(err error) string {
	var transactionErr *domainerror.TransactionError
	if errors.As(err, &transactionErr) {
		return string(transactionErr.Code)
	}
	var recurringErr *domainerror.RecurringError
	if errors.As(err, &recurringErr) {
		return string(recurringErr.Code)
	}

	switch {
	case errors.Is(err, domainerror.ErrClientNotFound):
		return string(domainerror.ErrCodeClientNotFound)
	case errors.Is(err, domainerror.ErrClientNameRequired):
		return string(domainerror.ErrCodeClientNameRequired)
	case errors.Is(err, domainerror.ErrEmailAlreadyExists):
		return string(domainerror.ErrCodeEmailAlreadyExists)
	case errors.Is(err, domainerror.ErrInvalidCredentials):
		return string(domainerror.ErrCodeInvalidCredentials)
	case errors.Is(err, domainerror.ErrInvalidToken):
		return string(domainerror.ErrCodeInvalidToken)
	}
	return ""
}

// respondBadRequest reports a request that failed parsing before it reached
// a use case.
func respondBadRequest(ctx *gin.Context, err error, code string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: err.Error(),
		Code:  code,
	})
}

// parsePathID parses the :id path parameter.
func parsePathID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "id must be a valid UUID",
		})
		return uuid.Nil, false
	}
	return id, true
}
