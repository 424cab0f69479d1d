// Package error defines domain-specific errors for the back-office API.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a ledger entry is not found.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionType is returned when the transaction type is invalid.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidCategory is returned when the category does not belong to the
	// closed set for the transaction type.
	ErrInvalidCategory = errors.New("invalid category for transaction type")

	// ErrInvalidAmount is returned when the amount is not a positive
	// two-decimal value.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidTransactionDate is returned when the transaction date is invalid.
	ErrInvalidTransactionDate = errors.New("invalid transaction date")

	// ErrClientNotFoundForTransaction is returned when the linked client does not exist.
	ErrClientNotFoundForTransaction = errors.New("client not found")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType   TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidCategory          TransactionErrorCode = "TXN-010002"
	ErrCodeInvalidAmount            TransactionErrorCode = "TXN-010003"
	ErrCodeInvalidTransactionDate   TransactionErrorCode = "TXN-010004"
	ErrCodeTransactionNotFound      TransactionErrorCode = "TXN-010005"
	ErrCodeTxnClientNotFound        TransactionErrorCode = "TXN-010006"
	ErrCodeMissingTransactionFields TransactionErrorCode = "TXN-010007"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
