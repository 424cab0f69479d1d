package error

import "errors"

// Recurring template and scheduler domain errors.
var (
	// ErrTemplateNotFound is returned when a recurring template is missing or
	// inactive. Inactive templates are treated as not found by the scheduler.
	ErrTemplateNotFound = errors.New("recurring template not found")

	// ErrInvalidFrequency is returned when the frequency is not one of the
	// supported values.
	ErrInvalidFrequency = errors.New("invalid frequency")

	// ErrInvalidScheduleDay is returned when day_of_month/day_of_week is out
	// of range or does not match the frequency.
	ErrInvalidScheduleDay = errors.New("invalid schedule day")

	// ErrAlreadyPaid is returned when an obligation has already been settled
	// in the same calendar month.
	ErrAlreadyPaid = errors.New("obligation already paid this month")

	// ErrScheduleConflict is returned when a concurrent execution advanced
	// the template's schedule first. The losing call creates nothing.
	ErrScheduleConflict = errors.New("schedule advanced concurrently")
)

// RecurringErrorCode defines error codes for recurring scheduler errors.
// Format: REC-XXYYYY where XX is category and YYYY is specific error.
type RecurringErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidFrequency   RecurringErrorCode = "REC-010001"
	ErrCodeInvalidScheduleDay RecurringErrorCode = "REC-010002"
	ErrCodeTemplateNotFound   RecurringErrorCode = "REC-010003"

	// Execution errors (02XXXX)
	ErrCodeAlreadyPaid      RecurringErrorCode = "REC-020001"
	ErrCodeScheduleConflict RecurringErrorCode = "REC-020002"
)

// RecurringError represents a scheduler error with code and message.
type RecurringError struct {
	Code    RecurringErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RecurringError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RecurringError) Unwrap() error {
	return e.Err
}

// NewRecurringError creates a new RecurringError with the given code and message.
func NewRecurringError(code RecurringErrorCode, message string, err error) *RecurringError {
	return &RecurringError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
