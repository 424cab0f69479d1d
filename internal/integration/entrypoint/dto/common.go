// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// FieldError describes a single failing field in a validation error.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is the common error envelope for all endpoints.
type ErrorResponse struct {
	Error   string       `json:"error"`
	Code    string       `json:"code,omitempty"`
	Details []FieldError `json:"details,omitempty"`
}

// NewValidationErrorResponse maps a binding error to an ErrorResponse.
// Every failing field is reported, not just the first one.
func NewValidationErrorResponse(err error, code string) ErrorResponse {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  code,
		}
	}

	details := make([]FieldError, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		details = append(details, FieldError{
			Field:   toSnakeCase(fieldError.Field()),
			Message: messageForTag(fieldError),
		})
	}

	return ErrorResponse{
		Error:   "Validation failed",
		Code:    code,
		Details: details,
	}
}

// ParseMoney parses a money field submitted as a string. Amounts must be
// positive and carry at most two decimal places; floats never enter the
// pipeline, so there is no rounding drift to paper over.
func ParseMoney(value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, fmt.Errorf("must be a numeric string")
	}
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("must be greater than zero")
	}
	if amount.Exponent() < -2 {
		return decimal.Zero, fmt.Errorf("must have at most two decimal places")
	}
	return amount, nil
}

// ParseOptionalMoney parses an optional money field, allowing zero for
// fiscal subtotal/tax breakdowns.
func ParseOptionalMoney(value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, fmt.Errorf("must be a numeric string")
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("must not be negative")
	}
	if amount.Exponent() < -2 {
		return decimal.Zero, fmt.Errorf("must have at most two decimal places")
	}
	return amount, nil
}

func messageForTag(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fieldError.Param())
	case "min":
		return fmt.Sprintf("must be at least %s characters", fieldError.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fieldError.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fieldError.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fieldError.Param())
	default:
		return fmt.Sprintf("failed %s validation", fieldError.Tag())
	}
}

func toSnakeCase(field string) string {
	var b strings.Builder
	for i, r := range field {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
